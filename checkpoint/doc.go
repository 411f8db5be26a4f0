// Package checkpoint persists and restores a node's routing state: its
// coordinate and version, and its neighbor id/address list. Checkpoints
// are versioned envelopes encoded either as YAML, for human-inspectable
// single-node dumps, or JSON, for the harness's bulk report dumps.
package checkpoint
