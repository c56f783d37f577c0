package ui

import (
	"image"
	"math"
	"strconv"

	"github.com/Vanguardbots/synoptic-audio-visualizer/internal/core"
)

// controlState tracks one adjustable parameter row: the control metadata,
// the last value parsed from the sketch snapshot, and the button hit areas
// the drawing layer fills in.
type controlState struct {
	control core.ParameterControl
	value   string

	intValue   int
	floatValue float64
	hasValue   bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

// controlPanel owns the adjustable rows and the setter plumbing. It is kept
// free of any rendering so the adjustment rules can be exercised headlessly.
type controlPanel struct {
	controls    []controlState
	intSetter   core.IntParameterSetter
	floatSetter core.FloatParameterSetter
}

func newControlPanel(sketch core.Sketch) *controlPanel {
	p := &controlPanel{}
	if provider, ok := sketch.(core.ParameterControlsProvider); ok {
		controls := provider.ParameterControls()
		p.controls = make([]controlState, len(controls))
		for i, ctrl := range controls {
			p.controls[i] = controlState{control: ctrl, value: "--"}
		}
	}
	if setter, ok := sketch.(core.IntParameterSetter); ok {
		p.intSetter = setter
	}
	if setter, ok := sketch.(core.FloatParameterSetter); ok {
		p.floatSetter = setter
	}
	return p
}

// refresh re-parses every row's current value from the parameter snapshot.
// Rows whose key is missing from the snapshot are disabled.
func (p *controlPanel) refresh(snapshot core.ParameterSnapshot) {
	if len(p.controls) == 0 {
		return
	}
	paramMap := map[string]core.Parameter{}
	for _, group := range snapshot.Groups {
		for _, param := range group.Params {
			paramMap[param.Key] = param
		}
	}
	for i := range p.controls {
		state := &p.controls[i]
		param, ok := paramMap[state.control.Key]
		if !ok {
			state.hasValue = false
			state.value = "--"
			continue
		}
		switch state.control.Type {
		case core.ParamTypeInt:
			parsed, err := strconv.Atoi(param.Value)
			if err != nil {
				state.hasValue = false
				state.value = "--"
				continue
			}
			state.intValue = parsed
			state.floatValue = float64(parsed)
			state.value = strconv.Itoa(parsed)
			state.hasValue = true
		case core.ParamTypeFloat:
			parsed, err := strconv.ParseFloat(param.Value, 64)
			if err != nil {
				state.hasValue = false
				state.value = "--"
				continue
			}
			state.floatValue = parsed
			state.value = formatControlValue(state.control, parsed)
			state.hasValue = true
		default:
			state.hasValue = false
			state.value = "--"
		}
	}
}

// adjust nudges row i by one step in the given direction, clamped to the
// control's bounds, and reports whether the sketch accepted the change.
func (p *controlPanel) adjust(i, direction int) bool {
	if i < 0 || i >= len(p.controls) || direction == 0 {
		return false
	}
	state := &p.controls[i]
	if !state.hasValue {
		return false
	}
	switch state.control.Type {
	case core.ParamTypeInt:
		if p.intSetter == nil {
			return false
		}
		step := int(math.Round(state.control.Step))
		if step <= 0 {
			step = 1
		}
		target := state.intValue + direction*step
		if state.control.HasMin && target < int(math.Round(state.control.Min)) {
			target = int(math.Round(state.control.Min))
		}
		if state.control.HasMax && target > int(math.Round(state.control.Max)) {
			target = int(math.Round(state.control.Max))
		}
		if target == state.intValue {
			return false
		}
		if !p.intSetter.SetIntParameter(state.control.Key, target) {
			return false
		}
		state.intValue = target
		state.floatValue = float64(target)
		state.value = strconv.Itoa(target)
		return true
	case core.ParamTypeFloat:
		if p.floatSetter == nil {
			return false
		}
		step := state.control.Step
		if step <= 0 {
			step = 0.05
		}
		target := state.floatValue + float64(direction)*step
		if state.control.HasMin && target < state.control.Min {
			target = state.control.Min
		}
		if state.control.HasMax && target > state.control.Max {
			target = state.control.Max
		}
		if math.Abs(target-state.floatValue) < 1e-9 {
			return false
		}
		if !p.floatSetter.SetFloatParameter(state.control.Key, target) {
			return false
		}
		state.floatValue = target
		state.value = formatControlValue(state.control, target)
		return true
	}
	return false
}

// canAdjust reports whether a step in the given direction would change row i.
func (p *controlPanel) canAdjust(i, direction int) bool {
	if i < 0 || i >= len(p.controls) || direction == 0 {
		return false
	}
	state := &p.controls[i]
	if !state.hasValue {
		return false
	}
	switch state.control.Type {
	case core.ParamTypeInt:
		if p.intSetter == nil {
			return false
		}
		step := int(math.Round(state.control.Step))
		if step <= 0 {
			step = 1
		}
		target := state.intValue + direction*step
		if state.control.HasMin && direction < 0 && target < int(math.Round(state.control.Min)) {
			return state.intValue > int(math.Round(state.control.Min))
		}
		if state.control.HasMax && direction > 0 && target > int(math.Round(state.control.Max)) {
			return state.intValue < int(math.Round(state.control.Max))
		}
		return true
	case core.ParamTypeFloat:
		if p.floatSetter == nil {
			return false
		}
		step := state.control.Step
		if step <= 0 {
			step = 0.05
		}
		target := state.floatValue + float64(direction)*step
		if state.control.HasMin && direction < 0 && target < state.control.Min {
			return state.floatValue > state.control.Min+1e-9
		}
		if state.control.HasMax && direction > 0 && target > state.control.Max {
			return state.floatValue < state.control.Max-1e-9
		}
		return true
	}
	return false
}

// formatControlValue prints a float with precision derived from its step.
func formatControlValue(ctrl core.ParameterControl, value float64) string {
	step := ctrl.Step
	if step <= 0 {
		step = 0.05
	}
	precision := 2
	switch {
	case step < 0.001:
		precision = 4
	case step < 0.01:
		precision = 3
	case step < 0.1:
		precision = 2
	default:
		precision = 1
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}
