package numerics

import (
	"crypto/rand"
	"errors"
	"math/big"
	mrand "math/rand"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seeded(seed int64) *mrand.Rand {
	return mrand.New(mrand.NewSource(seed))
}

func assertBigEqual(t *testing.T, expected, actual *big.Int, msgAndArgs ...interface{}) {
	t.Helper()
	assert.Equal(t, expected.String(), actual.String(), msgAndArgs...)
}

func TestModulus(t *testing.T) {
	tests := []struct {
		value, m, expected int64
	}{
		{10, 7, 3},
		{-10, 7, 4},
		{-7, 7, 0},
		{0, 5, 0},
		{-1, 97, 96},
	}

	for _, tt := range tests {
		got := Modulus(big.NewInt(tt.value), big.NewInt(tt.m))
		assertBigEqual(t, big.NewInt(tt.expected), got, "%d mod %d", tt.value, tt.m)
	}
}

func TestModularInverse(t *testing.T) {
	t.Run("small values", func(t *testing.T) {
		inv, err := ModularInverse(big.NewInt(3), big.NewInt(11))
		require.NoError(t, err)
		assertBigEqual(t, big.NewInt(4), inv)

		inv, err = ModularInverse(big.NewInt(-3), big.NewInt(11))
		require.NoError(t, err)
		assertBigEqual(t, big.NewInt(7), inv)
	})

	t.Run("value larger than modulus", func(t *testing.T) {
		inv, err := ModularInverse(big.NewInt(25), big.NewInt(11))
		require.NoError(t, err)
		assertBigEqual(t, big.NewInt(4), inv)
	})

	t.Run("round trip", func(t *testing.T) {
		m, _ := new(big.Int).SetString("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEFFFFFC2F", 16)
		r := seeded(7)

		for i := 0; i < 100; i++ {
			v, err := RandomBits(r, 300)
			require.NoError(t, err)
			if v.Sign() == 0 || Modulus(v, m).Sign() == 0 {
				continue
			}
			if i%2 == 1 {
				v.Neg(v)
			}

			inv, err := ModularInverse(v, m)
			require.NoError(t, err)

			product := new(big.Int).Mul(v, inv)
			assertBigEqual(t, big.NewInt(1), Modulus(product, m))
			assertBigEqual(t, new(big.Int).ModInverse(Modulus(v, m), m), inv)
		}
	})

	t.Run("gcd not unity", func(t *testing.T) {
		_, err := ModularInverse(big.NewInt(6), big.NewInt(9))
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrGCDNotUnity))

		var gcdErr *GCDError
		require.True(t, errors.As(err, &gcdErr))
		assertBigEqual(t, big.NewInt(3), gcdErr.GCD)

		_, err = ModularInverse(big.NewInt(-18), big.NewInt(9))
		assert.True(t, errors.Is(err, ErrGCDNotUnity))
	})

	t.Run("zero value", func(t *testing.T) {
		_, err := ModularInverse(big.NewInt(0), big.NewInt(11))
		assert.True(t, errors.Is(err, ErrZeroValue))
	})

	t.Run("degenerate modulus", func(t *testing.T) {
		_, err := ModularInverse(big.NewInt(3), big.NewInt(1))
		assert.True(t, errors.Is(err, ErrInvalidInput))
	})
}

func TestIsProbablyPrime(t *testing.T) {
	r := seeded(1)

	for _, p := range []int64{2, 3, 5, 7, 61, 7919, 104729} {
		ok, err := IsProbablyPrime(r, big.NewInt(p), DefaultWitnesses)
		require.NoError(t, err)
		assert.True(t, ok, "%d should be prime", p)
	}

	// 561, 1105 and 1729 are Carmichael numbers.
	for _, c := range []int64{4, 9, 15, 561, 1105, 1729, 104727} {
		ok, err := IsProbablyPrime(r, big.NewInt(c), DefaultWitnesses)
		require.NoError(t, err)
		assert.False(t, ok, "%d should be composite", c)
	}
}

func TestIsProbablyPrimeMatchesStdlib(t *testing.T) {
	r := seeded(2)

	for v := int64(2); v < 3000; v++ {
		n := big.NewInt(v)
		ok, err := IsProbablyPrime(r, n, 20)
		require.NoError(t, err)
		assert.Equal(t, n.ProbablyPrime(20), ok, "disagreement on %d", v)
	}
}

func TestIsProbablyPrimeLarge(t *testing.T) {
	p, _ := new(big.Int).SetString("FFFFFFFF00000001000000000000000000000000FFFFFFFFFFFFFFFFFFFFFFFF", 16)
	ok, err := IsProbablyPrime(rand.Reader, p, DefaultWitnesses)
	require.NoError(t, err)
	assert.True(t, ok)

	composite := new(big.Int).Mul(p, big.NewInt(3))
	ok, err = IsProbablyPrime(rand.Reader, composite, DefaultWitnesses)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestIsProbablyPrimeInvalidInput(t *testing.T) {
	for _, v := range []int64{1, 0, -7} {
		_, err := IsProbablyPrime(rand.Reader, big.NewInt(v), DefaultWitnesses)
		assert.True(t, errors.Is(err, ErrInvalidInput), "value %d", v)
	}

	_, err := IsProbablyPrime(rand.Reader, big.NewInt(7), 0)
	assert.True(t, errors.Is(err, ErrInvalidInput))
}

func TestRandomBits(t *testing.T) {
	r := seeded(3)

	for _, bits := range []int{1, 7, 8, 9, 160, 521} {
		for i := 0; i < 50; i++ {
			n, err := RandomBits(r, bits)
			require.NoError(t, err)
			assert.LessOrEqual(t, n.BitLen(), bits)
			assert.GreaterOrEqual(t, n.Sign(), 0)
		}
	}

	_, err := RandomBits(r, 0)
	assert.True(t, errors.Is(err, ErrInvalidInput))

	readErr := errors.New("entropy exhausted")
	_, err = RandomBits(iotest.ErrReader(readErr), 64)
	assert.True(t, errors.Is(err, readErr))
}

func TestNumberFromGroup(t *testing.T) {
	r := seeded(4)

	t.Run("units of composite modulus", func(t *testing.T) {
		m := big.NewInt(2 * 3 * 5 * 7 * 11)
		for i := 0; i < 200; i++ {
			n, err := NumberFromGroup(r, m, 16)
			require.NoError(t, err)
			assert.True(t, n.Cmp(m) < 0 && n.Sign() >= 0)
			assertBigEqual(t, big.NewInt(1), new(big.Int).GCD(nil, nil, n, m))
		}
	})

	t.Run("curve order", func(t *testing.T) {
		n, _ := new(big.Int).SetString("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEBAAEDCE6AF48A03BBFD25E8CD0364141", 16)
		k, err := NumberFromGroup(r, n, 256)
		require.NoError(t, err)
		assert.True(t, k.Sign() > 0 && k.Cmp(n) < 0)
	})

	t.Run("invalid modulus", func(t *testing.T) {
		_, err := NumberFromGroup(r, big.NewInt(0), 16)
		assert.True(t, errors.Is(err, ErrInvalidInput))
	})
}

func BenchmarkModularInverse(b *testing.B) {
	m, _ := new(big.Int).SetString("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEFFFFFC2F", 16)
	v, _ := new(big.Int).SetString("79BE667EF9DCBBAC55A06295CE870B07029BFCDB2DCE28D959F2815B16F81798", 16)

	for i := 0; i < b.N; i++ {
		if _, err := ModularInverse(v, m); err != nil {
			b.Fatal(err)
		}
	}
}
