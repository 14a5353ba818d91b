// embed.go - embedded resource declaration.
// It must stay in the project root next to data/, because //go:embed can only
// reach files in its own package directory and below.
package main

import "embed"

//go:embed data/game.yaml
var dataFS embed.FS
