package factory

// Recipe is a transformation consuming and producing items in fixed ratios
// at a machine. Inputs and Outputs map item identifiers to per-craft counts.
type Recipe struct {
	ID                     string             `json:"id" validate:"required"`
	Machine                string             `json:"machine" validate:"required"`
	BaseCraftsPerMin       float64            `json:"base_crafts_per_min" validate:"gte=0"`
	Inputs                 map[string]float64 `json:"inputs" validate:"dive,gte=0"`
	Outputs                map[string]float64 `json:"outputs" validate:"dive,gte=0"`
	SpeedMultiplier        *float64           `json:"speed_multiplier,omitempty" validate:"omitempty,gte=0"`
	ProductivityMultiplier *float64           `json:"productivity_multiplier,omitempty" validate:"omitempty,gte=1"`
}

// EffectiveRate is base_crafts_per_min scaled by speed_multiplier. Zero
// means the recipe is disabled and its variable is pinned to 0 in the LP.
// Callers run ApplyDefaults before Solve, so SpeedMultiplier is never nil
// here in practice; a nil pointer is still read as the documented default.
func (r Recipe) EffectiveRate() float64 {
	return r.BaseCraftsPerMin * r.speedMultiplier()
}

func (r Recipe) speedMultiplier() float64 {
	if r.SpeedMultiplier == nil {
		return 1
	}
	return *r.SpeedMultiplier
}

func (r Recipe) productivityMultiplier() float64 {
	if r.ProductivityMultiplier == nil {
		return 1
	}
	return *r.ProductivityMultiplier
}

// Target names the requested item and its required steady-state rate.
type Target struct {
	Item       string  `json:"item" validate:"required"`
	RatePerMin float64 `json:"rate_per_min" validate:"gt=0"`
}

// Input is the complete, defaulted, validated request to the Factory LP
// Engine. ioshell decodes the request body directly into this type,
// validates it against the struct tags below, then runs ApplyDefaults,
// before calling Solve.
type Input struct {
	Recipes   []Recipe           `json:"recipes" validate:"required,dive"`
	Machines  map[string]float64 `json:"machines" validate:"dive,gte=0"`
	RawSupply map[string]float64 `json:"raw_supply" validate:"dive,gte=0"`
	Target    Target             `json:"target" validate:"required"`
}

// ApplyDefaults fills in the documented defaults for optional fields:
// speed_multiplier and productivity_multiplier default to 1 when the caller
// omits them from the request entirely. An explicit speed_multiplier of 0
// is left untouched, since it disables the recipe rather than falling back
// to the default. It is idempotent.
func (in *Input) ApplyDefaults() {
	one := 1.0
	for i := range in.Recipes {
		if in.Recipes[i].SpeedMultiplier == nil {
			in.Recipes[i].SpeedMultiplier = &one
		}
		if in.Recipes[i].ProductivityMultiplier == nil {
			in.Recipes[i].ProductivityMultiplier = &one
		}
	}
}

// OkOutput is the response when the requested target rate is achievable.
type OkOutput struct {
	Status       string             `json:"status"`
	CraftsPerMin map[string]float64 `json:"crafts_per_min"`
	MachinesUsed map[string]float64 `json:"machines_used"`
	Production   map[string]float64 `json:"production"`
}

// InfeasibleOutput is the response when the requested target rate cannot be
// achieved. MaxRate is the best achievable rate under the same machine and
// raw-material constraints; Bottlenecks names the constraints binding there.
type InfeasibleOutput struct {
	Status      string   `json:"status"`
	Reason      string   `json:"reason"`
	MaxRate     float64  `json:"max_rate"`
	Bottlenecks []string `json:"bottlenecks"`
}

// materials classifies every item referenced by the recipe set.
type materials struct {
	raw          []string // appears in RawSupply
	intermediate []string // produced and consumed, not raw, not target
	byproduct    []string // produced, never consumed, not target
	all          []string // union of every item referenced anywhere
}
