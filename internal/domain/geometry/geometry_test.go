package geometry

import (
	"errors"
	"math"
	"math/rand"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistance_KnownTriples(t *testing.T) {
	tests := []struct {
		name string
		p    Point
		want float64
	}{
		{"origin", Point{}, 0},
		{"3-4-0", Point{X: 3, Y: 4}, 5},
		{"1-2-2", Point{X: 1, Y: 2, Z: 2}, 3},
		{"negative", Point{X: -3, Y: -4}, 5},
		{"unit cube diagonal", Point{X: 1, Y: 1, Z: 1}, 1.73},
		{"fractional", Point{X: 0.1, Y: 0.2, Z: 0.3}, 0.37},
		{"single axis", Point{Z: 7.256}, 7.26},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Distance(tt.p)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDistance_MatchesFormula(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for i := 0; i < 1000; i++ {
		p := Point{
			X: (r.Float64() - 0.5) * 2000,
			Y: (r.Float64() - 0.5) * 2000,
			Z: (r.Float64() - 0.5) * 2000,
		}
		want := math.Round(math.Sqrt(p.X*p.X+p.Y*p.Y+p.Z*p.Z)*100) / 100
		got, err := Distance(p)
		require.NoError(t, err)
		assert.InDelta(t, want, got, 1e-9, "point %+v", p)
	}
}

func TestDistance_LargeCoordinatesDoNotOverflow(t *testing.T) {
	got, err := Distance(Point{X: 3e200, Y: 4e200})
	require.NoError(t, err)
	assert.InEpsilon(t, 5e200, got, 1e-12)
}

func TestDistance_OverflowIsInvalid(t *testing.T) {
	_, err := Distance(Point{X: math.MaxFloat64, Y: math.MaxFloat64})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 2.24, Round2(math.Sqrt(5)))
	assert.Equal(t, 0.0, Round2(0.004))
	assert.Equal(t, 0.01, Round2(0.005))
	assert.Equal(t, -1.5, Round2(-1.499))
	assert.Equal(t, 1e300, Round2(1e300))
	assert.True(t, math.IsInf(Round2(math.Inf(1)), 1))
}

func TestParseCoordinate(t *testing.T) {
	tests := []struct {
		raw     string
		want    float64
		wantErr bool
	}{
		{"", 0, false},
		{"   ", 0, false},
		{"0", 0, false},
		{"3", 3, false},
		{" 4.5 ", 4.5, false},
		{"-2", -2, false},
		{"1e3", 1000, false},
		{".5", 0.5, false},
		{"abc", 0, true},
		{"3abc", 0, true},
		{"NaN", 0, true},
		{"nan", 0, true},
		{"Inf", 0, true},
		{"-Infinity", 0, true},
		{"1e400", 0, true},
		{"1,5", 0, true},
	}
	for _, tt := range tests {
		t.Run(strconv.Quote(tt.raw), func(t *testing.T) {
			got, err := ParseCoordinate("x", tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseCoordinate_ErrorNamesAxis(t *testing.T) {
	_, err := ParseCoordinate("y", "abc")
	require.Error(t, err)

	var cerr *CoordinateError
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, "y", cerr.Axis)
	assert.Equal(t, "abc", cerr.Value)
	assert.ErrorIs(t, err, strconv.ErrSyntax)
	assert.Contains(t, err.Error(), `y="abc"`)
}

func TestParsePoint(t *testing.T) {
	p, err := ParsePoint("3", "", "0")
	require.NoError(t, err)
	assert.Equal(t, Point{X: 3}, p)

	_, err = ParsePoint("1", "2", "zzz")
	var cerr *CoordinateError
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, "z", cerr.Axis)

	// x is reported before z
	_, err = ParsePoint("bad", "2", "worse")
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, "x", cerr.Axis)
}
