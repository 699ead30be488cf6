package hmm

import _ "embed"

// Version exposes the version of the tool.
//
//go:embed VERSION
var Version string
