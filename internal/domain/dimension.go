package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Dimension identifies one of the fixed risk axes
type Dimension int

const (
	DimensionEmergencyFund Dimension = iota
	DimensionDebtBurden
	DimensionSavingsRate
	DimensionInsuranceCover
	DimensionRetirementReadiness
	DimensionInflationProtection

	dimensionCount
)

// Dimensions lists every dimension in display order
var Dimensions = [dimensionCount]Dimension{
	DimensionEmergencyFund,
	DimensionDebtBurden,
	DimensionSavingsRate,
	DimensionInsuranceCover,
	DimensionRetirementReadiness,
	DimensionInflationProtection,
}

var dimensionNames = [dimensionCount]string{
	"Emergency Fund",
	"Debt Burden",
	"Savings Rate",
	"Insurance Cover",
	"Retirement Readiness",
	"Inflation Protection",
}

// String returns the display name of the dimension
func (d Dimension) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Dimension(%d)", int(d))
	}
	return dimensionNames[d]
}

// Valid reports whether d is one of the known dimensions
func (d Dimension) Valid() bool {
	return d >= 0 && d < dimensionCount
}

// ParseDimension resolves a display name to a Dimension
func ParseDimension(name string) (Dimension, error) {
	for _, d := range Dimensions {
		if dimensionNames[d] == name {
			return d, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDimension, name)
}

// MarshalJSON encodes the dimension as its display name
func (d Dimension) MarshalJSON() ([]byte, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownDimension, int(d))
	}
	return json.Marshal(dimensionNames[d])
}

// UnmarshalJSON decodes a display name
func (d *Dimension) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	parsed, err := ParseDimension(name)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Scores holds a 0–100 score for every dimension.
// Higher means safer.
type Scores [dimensionCount]float64

// Get returns the score for a dimension
func (s Scores) Get(d Dimension) float64 {
	return s[d]
}

// Average returns the mean across all dimensions
func (s Scores) Average() float64 {
	var sum float64
	for _, v := range s {
		sum += v
	}
	return sum / float64(dimensionCount)
}

// MarshalJSON encodes scores as an object keyed by dimension name, in display order
func (s Scores) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, d := range Dimensions {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, _ := json.Marshal(dimensionNames[d])
		val, err := json.Marshal(s[d])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes an object keyed by dimension name.
// All six dimensions must be present.
func (s *Scores) UnmarshalJSON(data []byte) error {
	var raw map[string]float64
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	var out Scores
	for _, d := range Dimensions {
		v, ok := raw[dimensionNames[d]]
		if !ok {
			return fmt.Errorf("%w: missing %q", ErrIncompleteScores, dimensionNames[d])
		}
		out[d] = v
	}
	*s = out
	return nil
}

// DimensionChange is a before/after score pair for one dimension
type DimensionChange struct {
	Dimension Dimension `json:"dimension"`
	Before    float64   `json:"before"`
	After     float64   `json:"after"`
	Change    float64   `json:"change"`
}

// DiffScores returns per-dimension changes from before to after, in display order
func DiffScores(before, after Scores) []DimensionChange {
	out := make([]DimensionChange, 0, dimensionCount)
	for _, d := range Dimensions {
		out = append(out, DimensionChange{
			Dimension: d,
			Before:    before[d],
			After:     after[d],
			Change:    after[d] - before[d],
		})
	}
	return out
}
