package feature

import (
	"fmt"
	"math"
)

// Assemble builds the fixed-order feature vector from the given values.
// Every field must be present, within its allowed range, and integral
// for ordinal and binary fields. Unknown keys are rejected so a typo in
// a caller never silently drops a measurement.
func Assemble(values map[string]float64) ([]float64, error) {
	for key := range values {
		if _, ok := fieldIndex[key]; !ok {
			return nil, fmt.Errorf("unknown feature %q", key)
		}
	}

	vector := make([]float64, len(fields))
	for i, f := range fields {
		value, ok := values[f.Key]
		if !ok {
			return nil, fmt.Errorf("missing feature %q", f.Key)
		}
		if math.IsNaN(value) || math.IsInf(value, 0) {
			return nil, fmt.Errorf("feature %q is not a finite number", f.Key)
		}
		if value < f.Min || value > f.Max {
			return nil, fmt.Errorf("feature %q value %g outside allowed range [%g, %g]", f.Key, value, f.Min, f.Max)
		}
		if f.Kind != KindContinuous && value != math.Trunc(value) {
			return nil, fmt.Errorf("feature %q value %g must be a whole number", f.Key, value)
		}
		vector[i] = value
	}
	return vector, nil
}

// Defaults returns the pre-selected form values keyed by field.
func Defaults() map[string]float64 {
	values := make(map[string]float64, len(fields))
	for _, f := range fields {
		values[f.Key] = f.Default
	}
	return values
}
