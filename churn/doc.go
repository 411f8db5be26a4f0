// Package churn tracks per-neighbor liveness, declares nodes suspect and
// dead on timeout, and drives the surviving-subgraph rebuild that
// installs a fresh routing snapshot behind an oracle.Handle.
package churn
