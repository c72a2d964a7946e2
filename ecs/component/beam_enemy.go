package component

import "github.com/milk9111/beamwalker/enemy"

// BeamEnemy binds a behaviour controller to an entity. WandX and WandY are
// the beam origin relative to the transform while facing right.
type BeamEnemy struct {
	Controller *enemy.Controller
	WandX      float64
	WandY      float64
}

var BeamEnemyComponent = NewComponent[BeamEnemy]()
