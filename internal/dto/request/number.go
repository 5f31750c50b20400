package request

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Number is a loosely typed numeric field. Clients send numbers, numeric
// strings, empty strings or null; anything else still decodes, but with
// Valid unset, so the caller decides how to treat it.
type Number struct {
	Present bool
	Valid   bool
	Value   float64
}

// Num builds a present, valid Number
func Num(v float64) Number {
	return Number{Present: true, Valid: true, Value: v}
}

func (n *Number) UnmarshalJSON(data []byte) error {
	*n = Number{}

	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch v := raw.(type) {
	case float64:
		n.Present, n.Valid, n.Value = true, true, v
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return nil
		}
		n.Present = true
		if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
			n.Valid, n.Value = true, f
		}
	default:
		n.Present = true
	}

	return nil
}

func (n Number) MarshalJSON() ([]byte, error) {
	if !n.Present || !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.Value)
}

// Int returns the value when it is a whole number that fits an int64
func (n Number) Int() (int64, bool) {
	if !n.Valid || n.Value != math.Trunc(n.Value) || n.Value >= math.MaxInt64 || n.Value < math.MinInt64 {
		return 0, false
	}
	return int64(n.Value), true
}

// StringList accepts either a JSON array of strings or one comma separated string
type StringList []string

func (l *StringList) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*l = list
		return nil
	}

	var csv string
	if err := json.Unmarshal(data, &csv); err != nil {
		*l = StringList{}
		return nil
	}

	parts := StringList{}
	for _, p := range strings.Split(csv, ",") {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	*l = parts
	return nil
}
