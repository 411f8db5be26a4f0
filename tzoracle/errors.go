package tzoracle

import "errors"

// ErrEmptyView is returned by Build when the view has no nodes.
var ErrEmptyView = errors.New("tzoracle: empty view")

// ErrUnknownNode names an id absent from the oracle (never built, or
// pruned by a prior rebuild). Neither query returns it: NextHop reports
// such an id through its ok result, and Stretch through ErrNoRoute.
var ErrUnknownNode = errors.New("tzoracle: unknown node")

// ErrNoRoute is returned by Stretch when NextHop cannot reach the
// destination within the view's node count (a broken or stale oracle).
var ErrNoRoute = errors.New("tzoracle: no route to destination")
