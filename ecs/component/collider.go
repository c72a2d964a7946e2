package component

// Collider is an axis-aligned box centred on the entity transform.
type Collider struct {
	Width  float64
	Height float64
}

var ColliderComponent = NewComponent[Collider]()
