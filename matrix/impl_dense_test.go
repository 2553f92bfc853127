// Package matrix_test contains unit tests for the Dense implementation
// of the Matrix interface in the matrix package.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/intmat/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)                      // zero rows
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions

	_, err = matrix.NewDense(5, 0)                       // zero columns
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions

	_, err = matrix.NewDense(-1, 3)                      // negative rows
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions
}

// TestRowsCols verifies that Rows() and Cols() return correct dimension values.
func TestRowsCols(t *testing.T) {
	rows, cols := 3, 4
	m, err := matrix.NewDense(rows, cols)
	require.NoError(t, err)

	require.Equal(t, rows, m.Rows())
	require.Equal(t, cols, m.Cols())
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)                          // negative row index
	require.ErrorIs(t, err, matrix.ErrOutOfRange) // expect ErrOutOfRange

	_, err = m.At(0, 2)                           // column index out of range
	require.ErrorIs(t, err, matrix.ErrOutOfRange) // expect ErrOutOfRange

	err = m.Set(2, 0, 7)                          // row index out of range
	require.ErrorIs(t, err, matrix.ErrOutOfRange) // expect ErrOutOfRange

	err = m.Set(0, -1, 4)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.Contains(t, err.Error(), "Dense.Set(0,-1)") // call site is recorded
}

// TestSetGet validates correct behavior of Set() followed by At() on valid indices.
func TestSetGet(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 2, -789))

	val, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, int64(-789), val)
}

// TestNewFromRows covers the literal constructor, including ragged input.
func TestNewFromRows(t *testing.T) {
	t.Parallel()

	m := MustFromRows(t, [][]int64{{1, 2, 3}, {4, 5, 6}})
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())
	require.Equal(t, int64(6), MustAt(t, m, 1, 2))

	_, err := matrix.NewFromRows([][]int64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrRaggedRows)

	_, err = matrix.NewFromRows(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewFromRows([][]int64{{}})
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestNewFromRowsCopies ensures the source slices are not aliased.
func TestNewFromRowsCopies(t *testing.T) {
	t.Parallel()

	src := [][]int64{{1, 2}, {3, 4}}
	m := MustFromRows(t, src)
	src[0][0] = 100

	require.Equal(t, int64(1), MustAt(t, m, 0, 0))
}

// TestCloneIndependence ensures Clone() returns a deep copy that does not share storage.
func TestCloneIndependence(t *testing.T) {
	m := MustFromRows(t, [][]int64{{1, 0}, {0, 2}})

	clone := m.Clone()
	MustSet(t, clone, 0, 0, 3) // modify the clone, but not the original

	require.Equal(t, int64(1), MustAt(t, m, 0, 0))
	require.Equal(t, int64(3), MustAt(t, clone, 0, 0))
}

// TestRowCopy checks Row returns a detached copy and validates its index.
func TestRowCopy(t *testing.T) {
	t.Parallel()

	m := MustFromRows(t, [][]int64{{1, 2}, {3, 4}})
	row, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, []int64{3, 4}, row)

	row[0] = 99
	require.Equal(t, int64(3), MustAt(t, m, 1, 0))

	_, err = m.Row(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestStringOutput checks that String() formats the matrix as expected.
func TestStringOutput(t *testing.T) {
	m := MustFromRows(t, [][]int64{{1, -2}, {3, 4}})

	expected := "[1, -2]\n[3, 4]\n"
	require.Equal(t, expected, m.String())
}
