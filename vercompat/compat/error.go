package compat

import "errors"

// ErrAmbiguousPolicy is the value wrapped by the panic raised when the
// reserved "semver" configuration token is looked up. It is deliberately not
// a recoverable return value: collapsing it into the ordinary
// unrecognized-token case would let configurations silently change meaning.
var ErrAmbiguousPolicy = errors.New("ambiguous compatibility policy")
