package hamming

import (
	"context"
	"fmt"
	"math/bits"

	"github.com/AnqurEnayet/robolab-project-g35/linearblock"
	mat "github.com/nathanhack/sparsemat"
)

// New creates the systematic hamming code with paritySymbols number of parity symbols.
// Hamming codes can detect up to two-bit errors or correct one-bit errors without
// detection of uncorrected errors.
func New(ctx context.Context, paritySymbols int) (*linearblock.LinearBlock, error) {
	if paritySymbols < 2 {
		return nil, fmt.Errorf("hamming codes require >=2 parity symbols but found %v", paritySymbols)
	}
	if paritySymbols > linearblock.MaxTableParitySymbols {
		return nil, fmt.Errorf("hamming codes support <=%v parity symbols but found %v", linearblock.MaxTableParitySymbols, paritySymbols)
	}
	n := 1<<paritySymbols - 1
	k := n - paritySymbols
	G := mat.CSRMat(k, n)

	//To make Hamming codes the columns of H must be every nonzero number from 1 to n.
	// H=[P^T,I] already has the weight one numbers in I so the rows of P
	// are the numbers with two or more bits set.
	row := 0
	for i := 1; i <= n; i++ {
		if bits.OnesCount(uint(i)) < 2 {
			continue
		}
		vec := mat.CSRVec(n)
		vec.Set(row, 1)
		for j := 0; j < paritySymbols; j++ {
			if i&(1<<j) > 0 {
				vec.Set(k+j, 1)
			}
		}
		G.SetRow(row, vec)
		row++
	}

	return linearblock.New(ctx, G)
}
