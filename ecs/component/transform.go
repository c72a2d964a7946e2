package component

// Transform is the centre of an entity in world pixels. A negative ScaleX
// mirrors the entity to face left.
type Transform struct {
	X      float64
	Y      float64
	ScaleX float64
	ScaleY float64
}

var TransformComponent = NewComponent[Transform]()
