package session

import (
	"bytes"
	"strings"
	"testing"

	"github.com/katalvlaran/intmat/matrix"
	"github.com/katalvlaran/intmat/render"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, input string, opts Options) (*Session, *Result, string, error) {
	t.Helper()
	var out bytes.Buffer
	s := New(strings.NewReader(input), &out, opts)
	res, err := s.Run()

	return s, res, out.String(), err
}

func TestRun_Quiet(t *testing.T) {
	t.Parallel()

	_, res, out, err := run(t, "2 2 2 2\n1 2 3 4\n1 2 3 4\n", Options{})
	require.NoError(t, err)
	require.Equal(t, "7 10\n15 22\n", out)
	require.Len(t, res.Operands, 2)

	rows, err := matrix.ToRows(res.Product)
	require.NoError(t, err)
	require.Equal(t, [][]int64{{7, 10}, {15, 22}}, rows)
}

func TestRun_RowVectorTimesColumnVector(t *testing.T) {
	t.Parallel()

	// one value per line, like a typed dialogue
	input := strings.Join([]string{"1", "3", "3", "1", "1", "2", "3", "4", "5", "6"}, "\n")
	_, _, out, err := run(t, input, Options{})
	require.NoError(t, err)
	require.Equal(t, "32\n", out)
}

func TestRun_WithPrompts(t *testing.T) {
	t.Parallel()

	_, _, out, err := run(t, "2\n2\n2\n2\n1\n2\n3\n4\n1\n2\n3\n4\n", Options{Prompts: true})
	require.NoError(t, err)

	want := strings.Join([]string{
		"Enter the number of rows in the first matrix:",
		"Enter the number of columns in the first matrix:",
		"Enter the number of rows in the second matrix:",
		"Enter the number of columns in the second matrix:",
		"Enter the elements of the first matrix:",
		"Enter the elements of the second matrix:",
		"The product of the matrices is:",
		"7 10",
		"15 22",
		"",
	}, "\n")
	require.Equal(t, want, out)
}

func TestRun_MismatchStopsReading(t *testing.T) {
	t.Parallel()

	// A is 2×3, B is 2×2; trailing garbage must never be touched.
	s, res, out, err := run(t, "2 3 2 2 not numbers at all", Options{})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	require.Nil(t, res)
	require.Equal(t, MsgNotPossible+"\n", out)
	require.Equal(t, 4, s.in.Consumed())
}

func TestRun_MismatchWithPrompts(t *testing.T) {
	t.Parallel()

	_, _, out, err := run(t, "1 2 3 1", Options{Prompts: true})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	require.True(t, strings.HasSuffix(out, MsgNotPossible+"\n"))
	require.NotContains(t, out, "elements")
}

func TestRun_InputErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		opts  Options
		want  error
		msg   string
	}{
		{"zero rows", "0 2 2 2", Options{}, ErrNonPositiveDimension, "rows of A"},
		{"bad dim token", "2 x 2 2", Options{}, ErrMalformedInput, "columns of A"},
		{"too large", "2 2 2 2000", Options{}, ErrDimensionTooLarge, "columns of B"},
		{"custom limit", "3 3 3 3", Options{MaxDim: 2}, ErrDimensionTooLarge, "rows of A"},
		{"bad element", "1 1 1 1 5 five", Options{}, ErrMalformedInput, "element B[0][0]"},
		{"short input", "2 2 2 2 1 2 3 4 1 2", Options{}, ErrUnexpectedEOF, "element B[1][0]"},
		{"int32 bound", "1 1 1 1 3000000000 1", Options{Int32Input: true}, ErrValueOutOfRange, "element A[0][0]"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, res, _, err := run(t, tt.input, tt.opts)
			require.ErrorIs(t, err, tt.want)
			require.Contains(t, err.Error(), tt.msg)
			require.Nil(t, res)
		})
	}
}

func TestRun_WideInputWithoutInt32Limit(t *testing.T) {
	t.Parallel()

	_, _, out, err := run(t, "1 1 1 1 3000000000 2", Options{})
	require.NoError(t, err)
	require.Equal(t, "6000000000\n", out)
}

func TestRun_Overflow(t *testing.T) {
	t.Parallel()

	_, _, _, err := run(t, "1 1 1 1 9223372036854775807 2", Options{})
	require.ErrorIs(t, err, matrix.ErrOverflow)

	_, _, out, err := run(t, "1 2 2 1 50000 50000 50000 50000", Options{Overflow: matrix.OverflowWrap32})
	require.NoError(t, err)
	require.Equal(t, "705032704\n", out)
}

func TestRun_GridFormat(t *testing.T) {
	t.Parallel()

	_, _, out, err := run(t, "1 1 1 1 6 7", Options{Format: render.Grid})
	require.NoError(t, err)
	require.Contains(t, out, "42")
	require.Contains(t, out, "┌")
}

func TestRunChain(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	// shapes: 2×2, 2×2, 2×1; then elements
	input := "2 2 2 2 2 1  1 2 3 4  0 1 1 0  2 3"
	s := New(strings.NewReader(input), &out, Options{})
	res, err := s.RunChain(3)
	require.NoError(t, err)
	require.Len(t, res.Operands, 3)
	require.Equal(t, "7\n17\n", out.String())
}

func TestRunChain_MismatchAtLaterLink(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	s := New(strings.NewReader("2 2 2 3 2 2 1 1 1 1"), &out, Options{Prompts: true})
	_, err := s.RunChain(3)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	require.Contains(t, err.Error(), "second matrix (3) != rows of third matrix (2)")
	require.Contains(t, out.String(), "Enter the number of columns in the third matrix:")
	require.Equal(t, 6, s.in.Consumed())
}

func TestRunChain_Single(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	s := New(strings.NewReader("1 2 5 6"), &out, Options{})
	_, err := s.RunChain(1)
	require.NoError(t, err)
	require.Equal(t, "5 6\n", out.String())

	_, err = New(strings.NewReader(""), &out, Options{}).RunChain(0)
	require.ErrorIs(t, err, matrix.ErrEmptyChain)
}

func TestPromptsFor(t *testing.T) {
	t.Parallel()

	yes := func() bool { return true }
	no := func() bool { return false }

	require.True(t, PromptsFor("always", no))
	require.False(t, PromptsFor("never", yes))
	require.True(t, PromptsFor("auto", yes))
	require.False(t, PromptsFor("auto", no))
	require.False(t, PromptsFor("auto", nil))

	require.False(t, IsInteractive(nil))
	require.False(t, IsInteractive(strings.NewReader("1 2")))
}
