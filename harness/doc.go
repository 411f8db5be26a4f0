// Package harness drives reproducible routing experiments: seeded
// topology generation, fixed batches of source-destination trials
// through the embedder/oracle/forwarder stack, and churn-round
// simulations that exercise the controller's rebuild path.
package harness
