package elementary

import (
	"runtime"
	"strconv"

	"spacetime-ca/internal/core"
)

// Parameters reports grid, engine and injection state for the HUD.
func (a *Automaton) Parameters() core.ParameterSnapshot {
	pending := "none"
	if x, y, ok := a.Pending(); ok {
		pending = strconv.Itoa(x) + "," + strconv.Itoa(y)
	}
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				intParam("w", "Width", a.w),
				intParam("h", "Height", a.h),
				intParam("generation", "Generation", a.generation),
				{Key: "pending", Label: "Pending cell", Type: core.ParamTypeString, Value: pending},
			},
		},
		{
			Name: "Engine",
			Params: []core.Parameter{
				{Key: "strategy", Label: "Strategy", Type: core.ParamTypeEnum, Value: a.Kind().String()},
				intParam("workers", "Workers", a.workers),
			},
		},
	}}
}

// ParameterControls lists the HUD-adjustable parameters.
func (a *Automaton) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "strategy", Label: "Strategy", Type: core.ParamTypeEnum, Step: 1, Min: 0, Max: len(kindNames) - 1},
		{Key: "workers", Label: "Workers", Type: core.ParamTypeInt, Step: 1, Min: 1, Max: runtime.NumCPU()},
	}
}

// IntParameter returns the integer value behind an adjustable parameter.
func (a *Automaton) IntParameter(key string) (int, bool) {
	switch key {
	case "strategy":
		return int(a.Kind()), true
	case "workers":
		return a.workers, true
	}
	return 0, false
}

// SetIntParameter applies a HUD adjustment. Changing the strategy resets the
// grid.
func (a *Automaton) SetIntParameter(key string, value int) bool {
	switch key {
	case "strategy":
		k := Kind(value)
		if !k.Valid() {
			return false
		}
		if k == a.Kind() {
			return true
		}
		return a.SetStrategy(k) == nil
	case "workers":
		if value < 1 {
			return false
		}
		a.SetWorkers(value)
		return true
	}
	return false
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}
