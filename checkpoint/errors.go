package checkpoint

import "errors"

// ErrUnsupportedVersion is raised when a decoded envelope's Version
// field falls outside CurrentVersion's supported range.
var ErrUnsupportedVersion = errors.New("checkpoint: unsupported version")
