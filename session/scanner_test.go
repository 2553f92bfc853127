package session

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScanner_Int(t *testing.T) {
	t.Parallel()

	s := NewScanner(strings.NewReader("  1\n-2\t3 \n\n 40 "))
	for _, want := range []int64{1, -2, 3, 40} {
		got, err := s.Int("v", math.MinInt64, math.MaxInt64)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
	require.Equal(t, 4, s.Consumed())

	_, err := s.Int("next value", 0, 1)
	require.ErrorIs(t, err, ErrUnexpectedEOF)
	require.Contains(t, err.Error(), "reading next value")
}

func TestScanner_IntErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		lo    int64
		hi    int64
		want  error
	}{
		{"word", "abc", math.MinInt64, math.MaxInt64, ErrMalformedInput},
		{"float", "1.5", math.MinInt64, math.MaxInt64, ErrMalformedInput},
		{"too large for int64", "99999999999999999999", math.MinInt64, math.MaxInt64, ErrValueOutOfRange},
		{"above bound", "2147483648", math.MinInt32, math.MaxInt32, ErrValueOutOfRange},
		{"below bound", "-2147483649", math.MinInt32, math.MaxInt32, ErrValueOutOfRange},
		{"empty", "", 0, 1, ErrUnexpectedEOF},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := NewScanner(strings.NewReader(tt.input)).Int("x", tt.lo, tt.hi)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestScanner_Dim(t *testing.T) {
	t.Parallel()

	d, err := NewScanner(strings.NewReader("5")).Dim("rows", 10)
	require.NoError(t, err)
	require.Equal(t, 5, d)

	_, err = NewScanner(strings.NewReader("0")).Dim("rows", 10)
	require.ErrorIs(t, err, ErrNonPositiveDimension)

	_, err = NewScanner(strings.NewReader("-4")).Dim("rows", 10)
	require.ErrorIs(t, err, ErrNonPositiveDimension)

	_, err = NewScanner(strings.NewReader("11")).Dim("rows", 10)
	require.ErrorIs(t, err, ErrDimensionTooLarge)
}

func TestOrdinalAndLabel(t *testing.T) {
	t.Parallel()

	require.Equal(t, "first", ordinal(0))
	require.Equal(t, "tenth", ordinal(9))
	require.Equal(t, "11th", ordinal(10))
	require.Equal(t, "21st", ordinal(20))
	require.Equal(t, "22nd", ordinal(21))
	require.Equal(t, "112th", ordinal(111))

	require.Equal(t, "A", label(0))
	require.Equal(t, "Z", label(25))
	require.Equal(t, "M27", label(26))
}
