package ecc

import (
	"crypto/elliptic"
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog(t *testing.T) {
	r := seeded(1)

	assert.Len(t, CurveNames(), 21)

	for _, name := range CurveNames() {
		name := name
		t.Run(name.String(), func(t *testing.T) {
			c, err := NewCurve(name)
			require.NoError(t, err)

			got, ok := c.Name()
			assert.True(t, ok)
			assert.Equal(t, name, got)
			assert.Equal(t, name.String(), c.String())

			assert.Equal(t, 1, c.H())
			assert.True(t, c.IsOnCurve(c.G()))
			assert.LessOrEqual(t, c.P().BitLen(), c.Length())
			assert.True(t, c.A().Cmp(c.P()) < 0 && c.A().Sign() >= 0)

			parsed, err := ParseCurveName(name.String())
			require.NoError(t, err)
			assert.Equal(t, name, parsed)

			assert.NoError(t, c.Validate(r))
		})
	}
}

func TestNewCurveMemoized(t *testing.T) {
	a, err := NewCurve(Secp256k1)
	require.NoError(t, err)
	b, err := NewCurve(Secp256k1)
	require.NoError(t, err)
	assert.Same(t, a, b)
}

func TestUnknownCurve(t *testing.T) {
	for _, name := range []CurveName{0, BN254 + 1, -4} {
		_, err := NewCurve(name)
		assert.True(t, errors.Is(err, ErrUnknownCurve), "name %d", int(name))
	}

	_, err := ParseCurveName("secp999r1")
	assert.True(t, errors.Is(err, ErrUnknownCurve))

	n, err := ParseCurveName("SECP256K1")
	require.NoError(t, err)
	assert.Equal(t, Secp256k1, n)

	assert.Equal(t, "CurveName(0)", CurveName(0).String())
	assert.Panics(t, func() { MustCurve(0) })
}

func TestCatalogMatchesStdlib(t *testing.T) {
	tests := []struct {
		name CurveName
		std  elliptic.Curve
	}{
		{Secp224r1, elliptic.P224()},
		{Secp256r1, elliptic.P256()},
		{NISTP256, elliptic.P256()},
		{NISTP384, elliptic.P384()},
		{NISTP521, elliptic.P521()},
	}

	for _, tt := range tests {
		c := MustCurve(tt.name)
		std := tt.std.Params()

		assert.Equal(t, std.P.String(), c.P().String(), tt.name.String())
		assert.Equal(t, std.B.String(), c.B().String(), tt.name.String())
		assert.Equal(t, std.N.String(), c.N().String(), tt.name.String())

		gx, gy, _ := c.G().Coordinates()
		assert.Equal(t, std.Gx.String(), gx.String(), tt.name.String())
		assert.Equal(t, std.Gy.String(), gy.String(), tt.name.String())

		// crypto/elliptic curves all use a = -3.
		minusThree := new(big.Int).Sub(std.P, big.NewInt(3))
		assert.Equal(t, minusThree.String(), c.A().String(), tt.name.String())
	}
}

func TestNewCustomCurveShape(t *testing.T) {
	base := toyCurve(t).Params()

	tests := []struct {
		name   string
		mutate func(p *Params)
	}{
		{"missing P", func(p *Params) { p.P = nil }},
		{"missing Gy", func(p *Params) { p.Gy = nil }},
		{"zero P", func(p *Params) { p.P = big.NewInt(0) }},
		{"negative N", func(p *Params) { p.N = big.NewInt(-19) }},
		{"zero cofactor", func(p *Params) { p.H = 0 }},
		{"zero length", func(p *Params) { p.Length = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := base
			tt.mutate(&params)

			_, err := NewCustomCurve(params)
			assert.True(t, errors.Is(err, ErrInvalidArgument))
		})
	}
}

func TestNewCustomCurveTrustsCaller(t *testing.T) {
	// An off-curve generator is accepted at construction and rejected by
	// Validate and by the point operations.
	params := toyCurve(t).Params()
	params.Gy = big.NewInt(2)

	c, err := NewCustomCurve(params)
	require.NoError(t, err)
	assert.False(t, c.IsOnCurve(c.G()))

	err = c.Validate(seeded(1))
	assert.True(t, errors.Is(err, ErrInvalidPoint))

	_, err = c.G().Double()
	assert.True(t, errors.Is(err, ErrInvalidPoint))
}

func TestValidate(t *testing.T) {
	r := seeded(5)

	require.NoError(t, toyCurve(t).Validate(r))

	tests := []struct {
		name   string
		params Params
		kind   error
	}{
		{
			name: "field too small",
			params: Params{P: big.NewInt(3), A: big.NewInt(0), B: big.NewInt(1),
				Gx: big.NewInt(0), Gy: big.NewInt(1), N: big.NewInt(3), H: 1, Length: 2},
			kind: ErrInvalidArgument,
		},
		{
			name: "composite field",
			params: Params{P: big.NewInt(15), A: big.NewInt(2), B: big.NewInt(2),
				Gx: big.NewInt(5), Gy: big.NewInt(1), N: big.NewInt(19), H: 1, Length: 4},
			kind: ErrInvalidArgument,
		},
		{
			// y² = x³ has a cusp at the origin.
			name: "singular",
			params: Params{P: big.NewInt(17), A: big.NewInt(0), B: big.NewInt(0),
				Gx: big.NewInt(1), Gy: big.NewInt(1), N: big.NewInt(17), H: 1, Length: 5},
			kind: ErrInvalidArgument,
		},
		{
			name: "composite order",
			params: Params{P: big.NewInt(17), A: big.NewInt(2), B: big.NewInt(2),
				Gx: big.NewInt(5), Gy: big.NewInt(1), N: big.NewInt(21), H: 1, Length: 5},
			kind: ErrInvalidArgument,
		},
		{
			name: "wrong order",
			params: Params{P: big.NewInt(17), A: big.NewInt(2), B: big.NewInt(2),
				Gx: big.NewInt(5), Gy: big.NewInt(1), N: big.NewInt(23), H: 1, Length: 5},
			kind: ErrInvalidArgument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewCustomCurve(tt.params)
			require.NoError(t, err)

			err = c.Validate(r)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.kind), "got %v", err)
		})
	}
}

func TestParamsAreCopies(t *testing.T) {
	c := MustCurve(Secp160r1)
	params := c.Params()
	params.P.SetInt64(7)
	params.Gx.SetInt64(7)

	assert.NotEqual(t, "7", c.P().String())
	assert.True(t, c.IsOnCurve(c.G()))
}
