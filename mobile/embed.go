//go:build mobile

package mobile

import "embed"

//go:embed data/game.yaml
var dataFS embed.FS
