// Package data embeds files shipped with the binary.
package data

import _ "embed"

// ExampleConfig is a commented wordclock.yaml holding the default values.
//
//go:embed wordclock.example.yaml
var ExampleConfig []byte
