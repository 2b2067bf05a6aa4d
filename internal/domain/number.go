package domain

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Number is a float64 that decodes leniently from JSON.
// Numbers and numeric strings decode as-is; null, booleans, non-numeric
// strings and non-finite values decode to 0.
type Number float64

// UnmarshalJSON implements json.Unmarshaler
func (n *Number) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*n = 0
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			*n = 0
			return nil
		}
		*n = parseNumber(s)
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		*n = 0
		return nil
	}
	*n = Number(finite(f))
	return nil
}

// UnmarshalYAML lets profile files use the same lenient decoding
func (n *Number) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var raw interface{}
	if err := unmarshal(&raw); err != nil {
		*n = 0
		return nil
	}
	switch v := raw.(type) {
	case int:
		*n = Number(v)
	case int64:
		*n = Number(v)
	case float64:
		*n = Number(finite(v))
	case string:
		*n = parseNumber(v)
	default:
		*n = 0
	}
	return nil
}

// Float returns the value as a float64
func (n Number) Float() float64 {
	return float64(n)
}

func parseNumber(s string) Number {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return Number(finite(f))
}

func finite(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}
