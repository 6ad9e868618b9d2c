// Package gamedata provides the embedded presentation data (glyphs, colors,
// option labels) and helpers for loading it.
package gamedata

import "embed"

// dataFS embeds the theme and any other JSON data in this directory.
//
//go:embed *.json
var dataFS embed.FS
