package server

import "errors"

// errNoHTTPAddress is returned by NewServer when no HTTP listen address is
// configured. This is a fatal misconfiguration: without a transport the
// process has nothing to serve.
var errNoHTTPAddress = errors.New("no HTTP address is configured")
