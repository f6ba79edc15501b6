package interpolate

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// PivotTolerance is the smallest pivot magnitude Invert accepts.
const PivotTolerance = 1e-10

// Inversion is the result of a Gauss-Jordan inversion.
type Inversion struct {
	Inverse *mat.Dense
	// Skipped lists the columns whose best pivot was below PivotTolerance.
	// Elimination on those columns was skipped, so Inverse is inexact.
	Skipped []int
}

// Err returns a *SingularMatrixError when any pivot was skipped.
func (r Inversion) Err() error {
	if len(r.Skipped) == 0 {
		return nil
	}
	return &SingularMatrixError{Columns: append([]int(nil), r.Skipped...)}
}

// Invert computes the inverse of the square matrix a by Gauss-Jordan
// elimination with partial pivoting. A near-zero pivot does not abort the
// inversion: the column is recorded in Skipped and elimination continues.
// Non-square, empty or non-finite input is rejected.
//
// Complexity: O(n^3) time, O(n^2) memory.
func Invert(a mat.Matrix) (Inversion, error) {
	r, c := a.Dims()
	if r != c || r == 0 {
		return Inversion{}, &ConfigError{Field: "matrix", Value: float64(c), Reason: "must be square and non-empty"}
	}
	n := r

	// [A | I]
	aug := mat.NewDense(n, 2*n, nil)
	for i := 0; i < n; i++ {
		row := aug.RawRowView(i)
		for j := 0; j < n; j++ {
			v := a.At(i, j)
			if !finite(v) {
				return Inversion{}, &NumericInputError{Index: i*n + j, Field: "matrix element", Value: v}
			}
			row[j] = v
		}
		row[n+i] = 1
	}

	var skipped []int
	for col := 0; col < n; col++ {
		best := col
		for i := col + 1; i < n; i++ {
			if math.Abs(aug.At(i, col)) > math.Abs(aug.At(best, col)) {
				best = i
			}
		}
		if best != col {
			swapRows(aug.RawRowView(col), aug.RawRowView(best))
		}

		pivotRow := aug.RawRowView(col)
		pivot := pivotRow[col]
		if math.Abs(pivot) < PivotTolerance {
			skipped = append(skipped, col)
			continue
		}
		for j := range pivotRow {
			pivotRow[j] /= pivot
		}

		for i := 0; i < n; i++ {
			if i == col {
				continue
			}
			row := aug.RawRowView(i)
			factor := row[col]
			if factor == 0 {
				continue
			}
			for j := range row {
				row[j] -= factor * pivotRow[j]
			}
		}
	}

	inv := mat.NewDense(n, n, nil)
	inv.Copy(aug.Slice(0, n, n, 2*n))
	return Inversion{Inverse: inv, Skipped: skipped}, nil
}

func swapRows(a, b []float64) {
	for j := range a {
		a[j], b[j] = b[j], a[j]
	}
}
