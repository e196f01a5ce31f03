package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToCents(t *testing.T) {
	cases := []struct {
		in   float64
		want int64
	}{
		{100.00, 10000},
		{0.01, 1},
		{12.34, 1234},
		{19.99, 1999},
		{50, 5000},
		{40.10, 4010},
	}
	for _, tc := range cases {
		got, err := ToCents(tc.in)
		require.NoError(t, err, "amount %v", tc.in)
		assert.Equal(t, tc.want, got, "amount %v", tc.in)
	}
}

func TestToCentsRejectsNonPositive(t *testing.T) {
	for _, in := range []float64{0, -1, -0.01} {
		_, err := ToCents(in)
		assert.ErrorIs(t, err, ErrInvalidAmount, "amount %v", in)
	}
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "50.00", Format(5000))
	assert.Equal(t, "0.05", Format(5))
	assert.Equal(t, "1234.56", Format(123456))
	assert.Equal(t, "-7.50", Format(-750))
}
