package mcp

import "errors"

// ErrMissingDetagService indicates the server was built without the
// detag service port.
var ErrMissingDetagService = errors.New("detag service is required")
