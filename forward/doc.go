// Package forward implements the per-hop routing state machine:
// Gravity → Pressure → TZ → Tree, with loop avoidance, pressure
// budgeting, and sticky-recovery hysteresis. Decide is a pure function
// of (current node, packet, oracle snapshot, local adjacency); it never
// blocks and never allocates beyond growing the packet's own visited
// set and pressure map.
package forward
