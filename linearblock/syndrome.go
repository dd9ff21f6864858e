package linearblock

import (
	"fmt"

	mat "github.com/nathanhack/sparsemat"
)

//MaxTableParitySymbols bounds the dense syndrome table at 2^20 entries.
const MaxTableParitySymbols = 20

//SyndromeTable maps a syndrome to the codeword position whose single bit flip produces it.
// It is indexed by the integer value of the syndrome where row i of H is bit i.
type SyndromeTable []int

//NewSyndromeTable records, for every column of H, the column index under that column's value.
// Entries for syndromes that no single column produces are -1. Columns are expected to be
// distinct; see LinearBlock.DistinctColumns.
func NewSyndromeTable(H mat.SparseMat) SyndromeTable {
	rows, cols := H.Dims()
	if rows > MaxTableParitySymbols {
		panic(fmt.Sprintf("parity symbols <= %v required but found %v", MaxTableParitySymbols, rows))
	}

	table := make(SyndromeTable, 1<<rows)
	for i := range table {
		table[i] = -1
	}

	for c := 0; c < cols; c++ {
		table[SyndromeIndex(H.Column(c))] = c
	}
	return table
}

//SyndromeIndex packs the syndrome into an int, element i becoming bit i.
func SyndromeIndex(syndrome mat.SparseVector) int {
	index := 0
	for _, i := range syndrome.NonzeroArray() {
		index |= 1 << i
	}
	return index
}

//Lookup returns the position of the single bit error that produces syndrome.
func (s SyndromeTable) Lookup(syndrome mat.SparseVector) (position int, ok bool) {
	index := SyndromeIndex(syndrome)
	if index >= len(s) {
		return -1, false
	}
	position = s[index]
	return position, position >= 0
}
