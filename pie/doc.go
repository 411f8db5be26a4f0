// Package pie embeds a netview.View into the Poincaré disk: a BFS spanning
// tree rooted at the max-degree node receives polar coordinates that
// converge toward the boundary with depth, guaranteeing that greedy
// forwarding along tree edges strictly reduces hyperbolic distance to any
// descendant.
//
// Embed reports components other than the root's as Disconnected rather
// than failing outright; it does not embed them, and no caller in this
// module embeds them separately either (the churn controller only logs
// them).
package pie
