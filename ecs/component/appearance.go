package component

import "image/color"

// Appearance is the placeholder look of an entity. Higher layers draw on top.
type Appearance struct {
	Color color.RGBA
	Layer int
}

var AppearanceComponent = NewComponent[Appearance]()
