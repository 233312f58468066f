package tags

import "github.com/yohamta/donburi"

var (
	Player      = donburi.NewTag().SetName("Player")
	Sheep       = donburi.NewTag().SetName("Sheep")
	Enemy       = donburi.NewTag().SetName("Enemy")
	Collectible = donburi.NewTag().SetName("Collectible")
)

// Resolv tags for the interaction space.
const (
	ResolvPlayer      = "player"
	ResolvSheep       = "sheep"
	ResolvEnemy       = "enemy"
	ResolvCollectible = "collectible"
)
