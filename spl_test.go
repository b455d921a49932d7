package fvad

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestSatW32ToW16Clamps(t *testing.T) {
	require.Equal(t, word16Max, satW32ToW16(int32(word16Max)+1000))
	require.Equal(t, word16Min, satW32ToW16(int32(word16Min)-1000))
	require.Equal(t, int16(42), satW32ToW16(42))
}

func TestNormW32ZeroCase(t *testing.T) {
	require.Equal(t, int16(31), normW32(0))
}

func TestNormW32ShiftsIntoBit30(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		v := rapid.Int32().Draw(rt, "v")
		shift := normW32(v)
		require.GreaterOrEqual(t, shift, int16(0))
		require.LessOrEqual(t, shift, int16(31))

		shifted := v
		if shifted < 0 {
			shifted = ^shifted
		}
		if shifted == 0 {
			require.Equal(t, int16(31), shift)
		} else {
			require.NotZero(t, (shifted<<uint(shift))&0x40000000)
		}
	})
}

func TestNormW16ZeroCase(t *testing.T) {
	require.Equal(t, int16(15), normW16(0))
}

func TestDivW32W16ZeroDenominator(t *testing.T) {
	require.Zero(t, divW32W16(12345, 0))
}

func TestDivW32W16ResW16Saturates(t *testing.T) {
	got := divW32W16ResW16(int32(word16Max)*100, 1)
	require.Equal(t, word16Max, got)
}

func TestLog2Q8ZeroAndNegative(t *testing.T) {
	require.Zero(t, log2Q8(0))
	require.Zero(t, log2Q8(-5))
}

// Log2Q8 must track 256*log2(x) to within a small integer tolerance
// across the full range the energy accumulator can produce.
func TestLog2Q8RoundTripProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		x := rapid.Int32Range(1, 1<<30).Draw(rt, "x")
		got := log2Q8(x)
		want := int16(math.Round(256 * math.Log2(float64(x))))

		diff := got - want
		if diff < 0 {
			diff = -diff
		}
		require.LessOrEqual(t, diff, int16(3))
	})
}

func TestLog2Q8Monotonic(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		a := rapid.Int32Range(1, 1<<30).Draw(rt, "a")
		b := rapid.Int32Range(1, 1<<30).Draw(rt, "b")
		if a > b {
			a, b = b, a
		}
		require.LessOrEqual(t, log2Q8(a), log2Q8(b))
	})
}
