// Package features turns heterogeneous prediction input into the fixed
// 8-feature vector consumed by the trained model.
package features

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Count is the number of clinical features the model consumes.
const Count = 8

// Vector is the ordered feature vector. The index order is a hard contract
// with the trained scaler/classifier artifacts and must only change together
// with a retrained model.
type Vector [Count]float64

// Indexes into Vector, in artifact order.
const (
	IdxPregnancies = iota
	IdxGlucose
	IdxBloodPressure
	IdxSkinThickness
	IdxInsulin
	IdxBMI
	IdxDiabetesPedigree
	IdxAge
)

// field describes one canonical feature: its primary key, the ordered list
// of accepted alternate keys, and the default used when no key is present.
type field struct {
	name    string
	aliases []string
	def     float64
}

// fields is the aliasing contract. Lookup order per feature: canonical key
// first, then aliases in declaration order, then the default.
var fields = [Count]field{
	{name: "Pregnancies", aliases: []string{"pregnancies"}, def: 0},
	{name: "Glucose", aliases: []string{"glucose"}, def: 0},
	{name: "BloodPressure", aliases: []string{"blood_pressure"}, def: 0},
	{name: "SkinThickness", aliases: []string{"skin_thickness"}, def: 0},
	{name: "Insulin", aliases: []string{"insulin"}, def: 0},
	{name: "BMI", aliases: []string{"bmi"}, def: 0},
	{name: "DiabetesPedigreeFunction", aliases: []string{"diabetes_pedigree", "diabetesPedigreeFunction"}, def: 0.5},
	{name: "Age", aliases: []string{"age"}, def: 30},
}

// requiredFields must be present (under canonical or lowercase key) before
// normalization runs; everything else falls back to defaults.
var requiredFields = []string{"Glucose", "BMI", "Age"}

// InvalidValueError reports a feature value that could not be coerced to a
// finite number.
type InvalidValueError struct {
	Field string
	Value interface{}
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("invalid value for feature %s: %v", e.Field, e.Value)
}

// MissingRequired returns the names of required fields absent from the raw
// payload under both their canonical and lowercase spellings.
func MissingRequired(raw map[string]interface{}) []string {
	var missing []string
	for _, name := range requiredFields {
		if _, ok := raw[name]; ok {
			continue
		}
		if _, ok := raw[strings.ToLower(name)]; ok {
			continue
		}
		missing = append(missing, name)
	}
	return missing
}

// Normalize resolves each canonical feature from the raw payload (canonical
// key, then aliases, then default) and coerces it to a finite float64.
// It is a pure function: the input map is never modified.
func Normalize(raw map[string]interface{}) (Vector, error) {
	var v Vector
	for i, f := range fields {
		val, found := lookup(raw, f)
		if !found {
			v[i] = f.def
			continue
		}
		n, ok := coerce(val)
		if !ok {
			return Vector{}, &InvalidValueError{Field: f.name, Value: val}
		}
		v[i] = n
	}
	return v, nil
}

// lookup returns the first value present under the field's canonical key or
// one of its aliases. A key present with a null value still resolves here;
// coercion rejects it afterwards.
func lookup(raw map[string]interface{}, f field) (interface{}, bool) {
	if val, ok := raw[f.name]; ok {
		return val, true
	}
	for _, alias := range f.aliases {
		if val, ok := raw[alias]; ok {
			return val, true
		}
	}
	return nil, false
}

// coerce converts a JSON-decoded value to a finite float64.
func coerce(val interface{}) (float64, bool) {
	var n float64
	switch t := val.(type) {
	case float64:
		n = t
	case float32:
		n = float64(t)
	case int:
		n = float64(t)
	case int64:
		n = float64(t)
	case string:
		parsed, err := strconv.ParseFloat(t, 64)
		if err != nil {
			return 0, false
		}
		n = parsed
	default:
		return 0, false
	}
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}
