package pie

import "errors"

// ErrEmptyView indicates the view has no nodes to embed.
var ErrEmptyView = errors.New("pie: view has no nodes")

// ErrInvalidRoot indicates a WithRootSelector callback returned an id not
// present in the view.
var ErrInvalidRoot = errors.New("pie: root selector returned an unknown node")
