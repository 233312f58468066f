// Package assets embeds the shipped level files.
package assets

import (
	"embed"

	"github.com/quiltvale/woolfang/leveldata"
)

//go:embed levels/*.tmx
var FS embed.FS

// MustLoadLevels loads every embedded level, sorted by filename. Shipped
// levels are validated at build time by the loader tests, so a failure
// here is a packaging bug and panics.
func MustLoadLevels() []leveldata.Level {
	levels, err := leveldata.LoadAllLevels(FS, "levels")
	if err != nil {
		panic("embedded levels failed to load: " + err.Error())
	}
	return levels
}
