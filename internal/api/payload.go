package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// intField is an integer body field that also takes a numeric string ("7")
// or a float with no fractional part (7.0).
type intField int64

func (f *intField) UnmarshalJSON(data []byte) error {
	raw := bytes.TrimSpace(data)
	if len(raw) > 0 && raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return err
		}
		raw = []byte(strings.TrimSpace(s))
	}

	text := string(raw)
	if n, err := strconv.ParseInt(text, 10, 64); err == nil {
		*f = intField(n)
		return nil
	}

	v, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return fmt.Errorf("value is not a valid integer: %s", data)
	}
	if v != math.Trunc(v) || v < math.MinInt64 || v >= math.MaxInt64 {
		return fmt.Errorf("value is not a valid integer: %s", data)
	}
	*f = intField(v)
	return nil
}

// stringField is a text body field that also takes a JSON number, kept in
// its literal form.
type stringField string

func (f *stringField) UnmarshalJSON(data []byte) error {
	raw := bytes.TrimSpace(data)
	if len(raw) > 0 && raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return err
		}
		*f = stringField(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return fmt.Errorf("value is not a valid string: %s", data)
	}
	*f = stringField(n.String())
	return nil
}
