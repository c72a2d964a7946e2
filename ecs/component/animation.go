package component

// AnimationParams holds named parameters read by the animation layer.
type AnimationParams struct {
	Bools map[string]bool
}

const AnimParamAttack = "attack"

func (p *AnimationParams) SetBool(name string, v bool) {
	if p.Bools == nil {
		p.Bools = make(map[string]bool)
	}
	p.Bools[name] = v
}

var AnimationParamsComponent = NewComponent[AnimationParams]()
