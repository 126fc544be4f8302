package geometry

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidInput is returned when a coordinate cannot be read as a finite number.
// The message is what API clients see.
var ErrInvalidInput = errors.New("x, y, and z must be numeric")

// CoordinateError reports which axis failed to parse and why.
type CoordinateError struct {
	Axis  string
	Value string
	Err   error
}

func (e *CoordinateError) Error() string {
	return fmt.Sprintf("coordinate %s=%q: %v", e.Axis, e.Value, e.Err)
}

// Unwrap lets errors.Is match ErrInvalidInput.
func (e *CoordinateError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrInvalidInput}
	}
	return []error{ErrInvalidInput, e.Err}
}

// ParseCoordinate reads one coordinate from query text.
//
// Absent and empty (whitespace-only) values are 0. Anything else must parse
// completely as a float64 and be finite: "abc", "3abc", "NaN", "Inf" and
// out-of-range values like "1e400" are all rejected.
func ParseCoordinate(axis, raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) {
			err = numErr.Err
		}
		return 0, &CoordinateError{Axis: axis, Value: raw, Err: err}
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &CoordinateError{Axis: axis, Value: raw, Err: errors.New("not finite")}
	}
	return v, nil
}

// ParsePoint reads x, y and z from their raw text.
// Axes are checked in x, y, z order and the first failure is returned.
func ParsePoint(x, y, z string) (Point, error) {
	var p Point
	var err error
	if p.X, err = ParseCoordinate("x", x); err != nil {
		return Point{}, err
	}
	if p.Y, err = ParseCoordinate("y", y); err != nil {
		return Point{}, err
	}
	if p.Z, err = ParseCoordinate("z", z); err != nil {
		return Point{}, err
	}
	return p, nil
}
