package enums

import "fmt"

// InvalidValueError reports a string that is not a member of the enum it was
// coerced into.
type InvalidValueError struct {
	Enum  string
	Value string
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("invalid %s value %q", e.Enum, e.Value)
}

// State is the lifecycle state of a record.
type State string

const (
	StateActive  State = "active"
	StateDeleted State = "deleted"
)

// Valid reports whether the state is a known member.
func (s State) Valid() bool {
	switch s {
	case StateActive, StateDeleted:
		return true
	}
	return false
}

func (s State) String() string { return string(s) }

// ParseState coerces a raw string into a State.
func ParseState(value string) (State, error) {
	s := State(value)
	if !s.Valid() {
		return "", &InvalidValueError{Enum: "State", Value: value}
	}
	return s, nil
}

// Phase is the workflow stage of a project.
type Phase string

const (
	PhasePlanning  Phase = "planning"
	PhaseOutlining Phase = "outlining"
	PhaseDrafting  Phase = "drafting"
	PhaseRevising  Phase = "revising"
	PhaseOnHold    Phase = "on hold"
	PhaseFinished  Phase = "finished"
	PhaseAbandoned Phase = "abandoned"
)

// Valid reports whether the phase is a known member.
func (p Phase) Valid() bool {
	switch p {
	case PhasePlanning, PhaseOutlining, PhaseDrafting, PhaseRevising,
		PhaseOnHold, PhaseFinished, PhaseAbandoned:
		return true
	}
	return false
}

func (p Phase) String() string { return string(p) }

// ParsePhase coerces a raw string into a Phase.
func ParsePhase(value string) (Phase, error) {
	p := Phase(value)
	if !p.Valid() {
		return "", &InvalidValueError{Enum: "Phase", Value: value}
	}
	return p, nil
}

// Measure is the unit a tally counts writing progress in.
type Measure string

const (
	MeasureWord    Measure = "word"
	MeasureTime    Measure = "time"
	MeasurePage    Measure = "page"
	MeasureChapter Measure = "chapter"
	MeasureScene   Measure = "scene"
	MeasureLine    Measure = "line"
)

// Valid reports whether the measure is a known member.
func (m Measure) Valid() bool {
	switch m {
	case MeasureWord, MeasureTime, MeasurePage, MeasureChapter, MeasureScene, MeasureLine:
		return true
	}
	return false
}

func (m Measure) String() string { return string(m) }

// ParseMeasure coerces a raw string into a Measure.
func ParseMeasure(value string) (Measure, error) {
	m := Measure(value)
	if !m.Valid() {
		return "", &InvalidValueError{Enum: "Measure", Value: value}
	}
	return m, nil
}

// Color is a tag display color from the fixed TrackBear palette.
type Color string

const (
	ColorDefault Color = "default"
	ColorRed     Color = "red"
	ColorOrange  Color = "orange"
	ColorYellow  Color = "yellow"
	ColorGreen   Color = "green"
	ColorBlue    Color = "blue"
	ColorPurple  Color = "purple"
	ColorBrown   Color = "brown"
	ColorGray    Color = "gray"
	ColorWhite   Color = "white"
	ColorBlack   Color = "black"
)

// Valid reports whether the color is a known member.
func (c Color) Valid() bool {
	switch c {
	case ColorDefault, ColorRed, ColorOrange, ColorYellow, ColorGreen,
		ColorBlue, ColorPurple, ColorBrown, ColorGray, ColorWhite, ColorBlack:
		return true
	}
	return false
}

func (c Color) String() string { return string(c) }

// ParseColor coerces a raw string into a Color.
func ParseColor(value string) (Color, error) {
	c := Color(value)
	if !c.Valid() {
		return "", &InvalidValueError{Enum: "Color", Value: value}
	}
	return c, nil
}
