package types

import (
	"encoding/json"
	"math"
	"strconv"
)

// Number is a float64 that survives JSON encoding when it is not finite.
// NaN and the infinities are written as the strings "NaN", "+Inf" and "-Inf";
// every other value is a plain JSON number.
type Number float64

// MarshalJSON implements json.Marshaler
func (n Number) MarshalJSON() ([]byte, error) {
	f := float64(n)
	switch {
	case math.IsNaN(f):
		return []byte(`"NaN"`), nil
	case math.IsInf(f, 1):
		return []byte(`"+Inf"`), nil
	case math.IsInf(f, -1):
		return []byte(`"-Inf"`), nil
	}
	return json.Marshal(f)
}

// UnmarshalJSON implements json.Unmarshaler
func (n *Number) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return err
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

// MarshalJSON writes the tuple as an array of Numbers
func (t Tuple) MarshalJSON() ([]byte, error) {
	return json.Marshal([3]Number{Number(t[0]), Number(t[1]), Number(t[2])})
}

// UnmarshalJSON implements json.Unmarshaler
func (t *Tuple) UnmarshalJSON(data []byte) error {
	var n [3]Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*t = Tuple{float64(n[0]), float64(n[1]), float64(n[2])}
	return nil
}
