package components

import (
	"github.com/automoto/meadow/shared/tunables"
	"github.com/yohamta/donburi"
)

// TunablesData watches the tunables file for hot reload.
type TunablesData struct {
	Path    string
	Watcher *tunables.Watcher
	Reloads int
}

var Tunables = donburi.NewComponentType[TunablesData]()
