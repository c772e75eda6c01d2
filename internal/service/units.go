package service

import (
	"fmt"
	"math"
	"strings"
)

type unitKind string

const (
	unitKindMass   unitKind = "mass"
	unitKindLength unitKind = "length"
	unitKindVolume unitKind = "volume"
)

type unitDef struct {
	kind       unitKind
	toBaseUnit float64
}

var unitTable = map[string]unitDef{
	// mass (base = kg)
	"g":   {kind: unitKindMass, toBaseUnit: 0.001},
	"kg":  {kind: unitKindMass, toBaseUnit: 1},
	"oz":  {kind: unitKindMass, toBaseUnit: 0.028349523125},
	"lb":  {kind: unitKindMass, toBaseUnit: 0.45359237},
	"lbs": {kind: unitKindMass, toBaseUnit: 0.45359237},

	// length (base = cm)
	"cm": {kind: unitKindLength, toBaseUnit: 1},
	"m":  {kind: unitKindLength, toBaseUnit: 100},
	"in": {kind: unitKindLength, toBaseUnit: 2.54},
	"ft": {kind: unitKindLength, toBaseUnit: 30.48},

	// volume (base = ml)
	"ml":    {kind: unitKindVolume, toBaseUnit: 1},
	"l":     {kind: unitKindVolume, toBaseUnit: 1000},
	"cup":   {kind: unitKindVolume, toBaseUnit: 236.5882365},
	"fl-oz": {kind: unitKindVolume, toBaseUnit: 29.5735295625},
}

// ConvertUnit converts between units of the same kind.
func ConvertUnit(value float64, fromUnit, toUnit string) (float64, error) {
	from, ok := resolveUnit(fromUnit)
	if !ok {
		return 0, fmt.Errorf("unsupported unit %q", fromUnit)
	}
	to, ok := resolveUnit(toUnit)
	if !ok {
		return 0, fmt.Errorf("unsupported unit %q", toUnit)
	}
	if from.kind != to.kind {
		return 0, fmt.Errorf("cannot convert %s (%s) to %s (%s)", fromUnit, from.kind, toUnit, to.kind)
	}
	return value * from.toBaseUnit / to.toBaseUnit, nil
}

// WeightKG normalizes a body weight to kilograms, rounded to 0.1 kg.
func WeightKG(value float64, unit string) (float64, error) {
	return convertTo(value, unit, "kg", unitKindMass, 10)
}

// HeightCM normalizes a height to centimetres, rounded to 0.1 cm.
func HeightCM(value float64, unit string) (float64, error) {
	return convertTo(value, unit, "cm", unitKindLength, 10)
}

// WaterML normalizes a drink volume to whole millilitres.
func WaterML(value float64, unit string) (int, error) {
	ml, err := convertTo(value, unit, "ml", unitKindVolume, 1)
	if err != nil {
		return 0, err
	}
	return int(ml), nil
}

func convertTo(value float64, unit, base string, kind unitKind, precision float64) (float64, error) {
	if strings.TrimSpace(unit) == "" {
		unit = base
	}
	def, ok := resolveUnit(unit)
	if !ok || def.kind != kind {
		return 0, fmt.Errorf("unsupported %s unit %q", kind, unit)
	}
	out, err := ConvertUnit(value, unit, base)
	if err != nil {
		return 0, err
	}
	return math.Round(out*precision) / precision, nil
}

func resolveUnit(unit string) (unitDef, bool) {
	u := strings.ToLower(strings.TrimSpace(unit))
	def, ok := unitTable[u]
	return def, ok
}
