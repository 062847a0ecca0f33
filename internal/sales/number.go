package sales

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Number is a float64 that also accepts numeric strings when decoded from
// JSON. Empty strings and null decode to zero.
type Number float64

// Float64 returns n as a float64.
func (n Number) Float64() float64 {
	return float64(n)
}

// UnmarshalJSON implements json.Unmarshaler.
func (n *Number) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*n = 0
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			*n = 0
			return nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("invalid numeric string %q: %w", s, err)
		}
		if !isFinite(f) {
			return fmt.Errorf("invalid numeric string %q: not a finite number", s)
		}
		*n = Number(f)
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*n = Number(f)
	return nil
}

// ID is a string identifier that also accepts JSON numbers, which are kept
// in their literal form ("id": 7 decodes to "7").
type ID string

// UnmarshalJSON implements json.Unmarshaler.
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*id = ""
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}

	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return fmt.Errorf("invalid id %s: %w", data, err)
	}
	*id = ID(num.String())
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// round2 rounds v to two decimal places, half away from zero. NaN and
// infinities are returned unchanged.
func round2(v float64) float64 {
	if !isFinite(v) {
		return v
	}
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

// sum2 adds monetary values exactly and rounds the total to two decimals.
// If any value is not finite the plain float sum is returned.
func sum2(values ...float64) float64 {
	total := decimal.Zero
	for _, v := range values {
		if !isFinite(v) {
			return floatSum(values)
		}
		total = total.Add(decimal.NewFromFloat(v))
	}
	return total.Round(2).InexactFloat64()
}

func floatSum(values []float64) float64 {
	var total float64
	for _, v := range values {
		total += v
	}
	return total
}
