// Package oracle holds the generation-tagged handle shared by the
// forwarding FSM and the churn controller: a read-mostly, atomically
// swappable reference to the currently installed (coordinates, TZ
// tables, spanning tree) triple. Forwarding only ever reads through
// Handle.Load; only the churn controller publishes new snapshots.
package oracle
