package core

import (
	"math"
	"strconv"
)

// ParamType enumerates supported parameter value kinds.
type ParamType string

const (
	// ParamTypeInt denotes integer-valued parameters.
	ParamTypeInt ParamType = "int"
	// ParamTypeFloat denotes floating-point parameters.
	ParamTypeFloat ParamType = "float"
	// ParamTypeBool denotes boolean parameters.
	ParamTypeBool ParamType = "bool"
	// ParamTypeString denotes free-form or enumerated parameters.
	ParamTypeString ParamType = "string"
)

// Parameter describes a single tunable value exposed by a sketch.
type Parameter struct {
	Key   string
	Label string
	Type  ParamType
	Value string
}

// ParameterGroup clusters related parameters for presentation purposes.
type ParameterGroup struct {
	Name   string
	Params []Parameter
}

// ParameterSnapshot captures the current set of tunables exposed by a sketch.
type ParameterSnapshot struct {
	Groups []ParameterGroup
}

// IntParam builds an integer parameter entry.
func IntParam(key, label string, value int) Parameter {
	return Parameter{Key: key, Label: label, Type: ParamTypeInt, Value: strconv.Itoa(value)}
}

// Int64Param builds an integer parameter entry from an int64.
func Int64Param(key, label string, value int64) Parameter {
	return Parameter{Key: key, Label: label, Type: ParamTypeInt, Value: strconv.FormatInt(value, 10)}
}

// FloatParam builds a floating point parameter entry.
func FloatParam(key, label string, value float64) Parameter {
	return Parameter{Key: key, Label: label, Type: ParamTypeFloat, Value: strconv.FormatFloat(value, 'f', -1, 64)}
}

// BoolParam builds a boolean parameter entry.
func BoolParam(key, label string, value bool) Parameter {
	return Parameter{Key: key, Label: label, Type: ParamTypeBool, Value: strconv.FormatBool(value)}
}

// StringParam builds a string parameter entry.
func StringParam(key, label, value string) Parameter {
	return Parameter{Key: key, Label: label, Type: ParamTypeString, Value: value}
}

// Flatten returns every parameter in group order.
func (s ParameterSnapshot) Flatten() []Parameter {
	var out []Parameter
	for _, g := range s.Groups {
		out = append(out, g.Params...)
	}
	return out
}

// ParseInt reads key from cfg into dst when it parses and satisfies ok.
func ParseInt(cfg map[string]string, key string, dst *int, ok func(int) bool) {
	v, found := cfg[key]
	if !found {
		return
	}
	if parsed, err := strconv.Atoi(v); err == nil && (ok == nil || ok(parsed)) {
		*dst = parsed
	}
}

// ParseInt64 reads key from cfg into dst when it parses.
func ParseInt64(cfg map[string]string, key string, dst *int64) {
	if v, found := cfg[key]; found {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			*dst = parsed
		}
	}
}

// ParseFloat reads key from cfg into dst when it parses to a finite value
// and satisfies ok.
func ParseFloat(cfg map[string]string, key string, dst *float64, ok func(float64) bool) {
	v, found := cfg[key]
	if !found {
		return
	}
	parsed, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(parsed) || math.IsInf(parsed, 0) {
		return
	}
	if ok == nil || ok(parsed) {
		*dst = parsed
	}
}

// ParseBool reads key from cfg into dst when it parses.
func ParseBool(cfg map[string]string, key string, dst *bool) {
	if v, found := cfg[key]; found {
		if parsed, err := strconv.ParseBool(v); err == nil {
			*dst = parsed
		}
	}
}

// Positive accepts values greater than zero.
func Positive[T int | float64](v T) bool { return v > 0 }

// NonNegative accepts values greater than or equal to zero.
func NonNegative[T int | float64](v T) bool { return v >= 0 }
