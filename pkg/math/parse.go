package math

import (
	"strconv"
	"strings"

	errorsmod "cosmossdk.io/errors"
)

var coordLabels = [3]string{"x", "y", "z"}

// Parse reads a vector in any of the forms produced by String or GoString,
// or as bare comma separated coordinates:
//
//	(1.0, 2.0, 3.0)
//	Vector3(x=1.0, y=2.0, z=3.0)
//	1,2,3
func Parse(s string) (*Vector3, error) {
	body := strings.TrimSpace(s)
	labeled := false
	if strings.HasPrefix(body, "Vector3(") {
		body = strings.TrimPrefix(body, "Vector3")
		labeled = true
	}
	if strings.HasPrefix(body, "(") {
		if !strings.HasSuffix(body, ")") {
			return nil, errorsmod.Wrapf(ErrInvalidVector, "%q: unbalanced parenthesis", s)
		}
		body = body[1 : len(body)-1]
	}

	parts := strings.Split(body, ",")
	if len(parts) != 3 {
		return nil, errorsmod.Wrapf(ErrInvalidVector, "%q: expected 3 coordinates, got %d", s, len(parts))
	}

	var c [3]float64
	for i, part := range parts {
		part = strings.TrimSpace(part)
		if labeled {
			label, value, found := strings.Cut(part, "=")
			if !found || strings.TrimSpace(label) != coordLabels[i] {
				return nil, errorsmod.Wrapf(ErrInvalidVector, "%q: expected %s=<value>", s, coordLabels[i])
			}
			part = strings.TrimSpace(value)
		}
		f, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, errorsmod.Wrapf(ErrInvalidVector, "%q: coordinate %s: %v", s, coordLabels[i], err)
		}
		c[i] = f
	}

	return NewVector3(c[0], c[1], c[2]), nil
}
