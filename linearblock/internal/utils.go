package internal

import (
	"fmt"

	mat "github.com/nathanhack/sparsemat"
	"github.com/sirupsen/logrus"
)

//IsSystematic tests if the leftmost k×k block of the k×n matrix G is the identity.
func IsSystematic(G mat.SparseMat) bool {
	k, n := G.Dims()
	if n < k {
		return false
	}
	return G.Slice(0, 0, k, k).Equals(mat.CSRIdentity(k))
}

//ParityCheckFromSystematic takes G=[I,P] and returns H=[P^T,I] where P^T is the transpose of P.
func ParityCheckFromSystematic(G mat.SparseMat) mat.SparseMat {
	k, n := G.Dims()
	r := n - k
	if r <= 0 {
		panic(fmt.Sprintf("generator shape == (k, n) where k < n required but found (%v, %v)", k, n))
	}

	P := G.Slice(0, k, k, r)
	PT := P.T()

	H := mat.DOKMat(r, n)
	H.SetMatrix(PT, 0, 0)
	H.SetMatrix(mat.CSRIdentity(r), 0, k)

	logrus.Debugf("Parity check matrix complete")
	return mat.CSRMatCopy(H)
}

//DistinctColumns returns an error if any column of H is zero or equal to another column.
// Single bit errors are only locatable when every column is unique and nonzero.
func DistinctColumns(H mat.SparseMat) error {
	_, cols := H.Dims()
	seen := make(map[string]int, cols)
	for c := 0; c < cols; c++ {
		column := H.Column(c)
		if column.IsZero() {
			return fmt.Errorf("column %v of H is zero", c)
		}
		key := column.String()
		if prev, has := seen[key]; has {
			return fmt.Errorf("columns %v and %v of H are equal", prev, c)
		}
		seen[key] = c
	}
	return nil
}

//ValidateHGMatrices tests if G*H.T ==0 where H.T is the transpose of H
func ValidateHGMatrices(G, H mat.SparseMat) bool {
	rows, _ := G.Dims()
	cols, _ := H.Dims()

	//we cache the rows of H, which are the columns of H.T
	cache := make([]mat.SparseVector, cols)
	for i := 0; i < cols; i++ {
		cache[i] = H.Row(i)
	}
	for i := 0; i < rows; i++ {
		row := G.Row(i)
		for j := 0; j < cols; j++ {
			//equiv to G*H.T
			if row.Dot(cache[j]) > 0 {
				return false
			}
		}
	}

	return true
}
