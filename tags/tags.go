package tags

import "github.com/yohamta/donburi"

var (
	Avatar = donburi.NewTag().SetName("Avatar")
	Wall   = donburi.NewTag().SetName("Wall")
	Grass  = donburi.NewTag().SetName("Grass")
)

// Resolv tags for bounds collision
const (
	ResolvSolid  = "solid"
	ResolvAvatar = "Avatar"
)
