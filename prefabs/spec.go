package prefabs

import (
	"fmt"
	"log"

	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type TransformSpec struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	ScaleX float64 `yaml:"scale_x"`
	ScaleY float64 `yaml:"scale_y"`
}

type ColliderSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type PointSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type BeamEnemySpec struct {
	Name        string       `yaml:"name"`
	MoveSpeed   float64      `yaml:"move_speed"`
	AttackDelay float64      `yaml:"attack_delay"`
	Beam        string       `yaml:"beam"`
	Wand        PointSpec    `yaml:"wand"`
	Collider    ColliderSpec `yaml:"collider"`
	Color       string       `yaml:"color"`
}

func LoadBeamEnemySpec() (*BeamEnemySpec, error) {
	spec, err := LoadSpec[BeamEnemySpec]("beam_enemy.yaml")
	if err != nil {
		return nil, err
	}
	if spec.AttackDelay <= 2 {
		log.Printf("prefabs: %s attack_delay %.2f overlaps charge and sustain windows", spec.Name, spec.AttackDelay)
	}
	return &spec, nil
}

type BeamSpec struct {
	Kind      string  `yaml:"kind"`
	Length    float64 `yaml:"length"`
	Thickness float64 `yaml:"thickness"`
	Lifetime  float64 `yaml:"lifetime"`
	Color     string  `yaml:"color"`
}

type BeamsSpec struct {
	Beams []BeamSpec `yaml:"beams"`
}

// LoadBeamSpecs returns the beam kinds keyed by name.
func LoadBeamSpecs() (map[string]BeamSpec, error) {
	spec, err := LoadSpec[BeamsSpec]("beam.yaml")
	if err != nil {
		return nil, err
	}
	out := make(map[string]BeamSpec, len(spec.Beams))
	for _, b := range spec.Beams {
		if b.Kind == "" {
			return nil, fmt.Errorf("prefabs: beam.yaml: beam without kind")
		}
		if _, dup := out[b.Kind]; dup {
			return nil, fmt.Errorf("prefabs: beam.yaml: duplicate kind %q", b.Kind)
		}
		out[b.Kind] = b
	}
	return out, nil
}

type SegmentSpec struct {
	A      PointSpec `yaml:"a"`
	B      PointSpec `yaml:"b"`
	Radius float64   `yaml:"radius"`
}

type SpawnSpec struct {
	Prefab    string        `yaml:"prefab"`
	Transform TransformSpec `yaml:"transform"`
}

type LevelSpec struct {
	Name   string        `yaml:"name"`
	Width  float64       `yaml:"width"`
	Height float64       `yaml:"height"`
	Walls  []SegmentSpec `yaml:"walls"`
	Spawns []SpawnSpec   `yaml:"spawns"`
}

func LoadLevelSpec(name string) (*LevelSpec, error) {
	if name == "" {
		name = "level.yaml"
	}
	spec, err := LoadSpec[LevelSpec](name)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}
