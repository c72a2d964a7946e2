package system

import (
	"image/color"
	"strings"

	"golang.org/x/image/colornames"
)

var (
	defaultBeamColor  = colornames.Gold
	defaultEnemyColor = colornames.Mediumpurple
	wallColor         = colornames.Slategray
)

func colorByName(name string, fallback color.RGBA) color.RGBA {
	if c, ok := colornames.Map[strings.ToLower(name)]; ok {
		return c
	}
	return fallback
}

// EnemyColor resolves a prefab colour name for enemies.
func EnemyColor(name string) color.RGBA {
	return colorByName(name, defaultEnemyColor)
}
