package handler

import "errors"

// errNoHandlersAreCreated is returned by NewHandlers when the server
// configuration enables no listener.
var errNoHandlersAreCreated = errors.New("no handlers are created")
