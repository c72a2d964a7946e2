package component

// DeathRequest marks an entity that should die at the next behaviour update,
// after it has released anything it spawned.
type DeathRequest struct{}

var DeathRequestComponent = NewComponent[DeathRequest]()
