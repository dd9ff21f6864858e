package internal

import (
	"context"
	"fmt"

	mat "github.com/nathanhack/sparsemat"
	"github.com/sirupsen/logrus"
)

// findPivotRowGF2 returns the first row at or below forRow with a 1 in column forRow, or -1.
func findPivotRowGF2(m mat.SparseMat, forRow int) int {
	rows, _ := m.Dims()
	for r := forRow; r < rows; r++ {
		if m.Row(r).At(forRow) == 1 {
			return r
		}
	}
	return -1
}

//GaussianJordanEliminationGF2 reduces G (k×n, k <= n) to reduced row echelon form with the
// leftmost k×k block equal to the identity. Only rows are swapped so the row space
// (the code) is left unchanged. An error is returned when the rows of G are not linearly
// independent or the ctx is done.
func GaussianJordanEliminationGF2(ctx context.Context, G mat.SparseMat) (mat.SparseMat, error) {
	rows, cols := G.Dims()
	if cols < rows {
		return nil, fmt.Errorf("matrix shape == (rows, cols) where rows <= cols required but found (%v, %v)", rows, cols)
	}
	result := mat.CSRMatCopy(G)

	logrus.Debugf("Row echelon")
	for r := 0; r < rows; r++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		pivot := findPivotRowGF2(result, r)
		if pivot == -1 {
			return nil, fmt.Errorf("rows not linearly independent: no pivot for column %v", r)
		}
		if pivot != r {
			result.SwapRows(r, pivot)
		}

		eliminateLowerRows(r, result)
	}

	// at this point all rows are linearly independent and the
	// lower triangle is done so we'll take care of the top
	logrus.Debugf("Reduced row echelon")
	for r := rows - 1; r >= 0; r-- {
		eliminateUpperRows(r, result)
	}

	logrus.Debugf("Gaussian-Jordan Elimination complete")
	return result, nil
}

func eliminateLowerRows(rowIndex int, result mat.SparseMat) {
	rows, _ := result.Dims()
	rrow := result.Row(rowIndex)

	//in GF2 subtract is add
	for p := rowIndex + 1; p < rows; p++ {
		prow := result.Row(p)
		if prow.At(rowIndex) == 0 {
			continue
		}
		prow.Add(prow, rrow)
		result.SetRow(p, prow)
	}
}

func eliminateUpperRows(rowIndex int, result mat.SparseMat) {
	rrow := result.Row(rowIndex)

	for p := rowIndex - 1; p >= 0; p-- {
		prow := result.Row(p)
		if prow.At(rowIndex) == 0 {
			continue
		}
		prow.Add(prow, rrow)
		result.SetRow(p, prow)
	}
}

//CalculateRank returns the GF2 rank of H. H is not modified.
func CalculateRank(H mat.SparseMat) int {
	if H == nil {
		return -1
	}

	tmp := mat.CSRMatCopy(H)
	rows, cols := tmp.Dims()

	rank := 0
	for c := 0; c < cols && rank < rows; c++ {
		pivot := -1
		for r := rank; r < rows; r++ {
			if tmp.Row(r).At(c) == 1 {
				pivot = r
				break
			}
		}
		if pivot == -1 {
			continue
		}
		if pivot != rank {
			tmp.SwapRows(rank, pivot)
		}

		rrow := tmp.Row(rank)
		for r := rank + 1; r < rows; r++ {
			prow := tmp.Row(r)
			if prow.At(c) == 1 {
				prow.Add(prow, rrow)
				tmp.SetRow(r, prow)
			}
		}
		rank++
	}
	return rank
}
