package linearblock

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/AnqurEnayet/robolab-project-g35/linearblock/internal"
	mat "github.com/nathanhack/sparsemat"
	"github.com/sirupsen/logrus"
)

//LinearBlock contains the systematic generator G=[I,P] and the parity check matrix H=[P^T,I].
type LinearBlock struct {
	G mat.SparseMat // systematic generator matrix
	H mat.SparseMat // parity check matrix
}

//// For JSON unmarshalling
type linearblock struct {
	G mat.CSRMatrix
	H mat.CSRMatrix
}

//UnmarshalJSON is needed because LinearBlock has a mat.SparseMat and requires special handling
func (l *LinearBlock) UnmarshalJSON(bytes []byte) error {
	var lb linearblock
	err := json.Unmarshal(bytes, &lb)
	if err != nil {
		return err
	}

	l.G = &lb.G
	l.H = &lb.H
	return nil
}

//New creates a LinearBlock from any full rank generator matrix. The generator is reduced to
// its systematic form and the parity check matrix derived from it.
func New(ctx context.Context, generator mat.SparseMat) (*LinearBlock, error) {
	logrus.Debugf("Creating systematic generator matrix")
	G, err := internal.GaussianJordanEliminationGF2(ctx, generator)
	if err != nil {
		return nil, fmt.Errorf("unable to create systematic generator (rank %v): %w", internal.CalculateRank(generator), err)
	}

	if !internal.IsSystematic(G) {
		return nil, fmt.Errorf("generator is not of the form [I,P]:\n%v", G)
	}

	k, n := G.Dims()
	if k == n {
		return nil, fmt.Errorf("generator shape == (k, n) where k < n required but found (%v, %v)", k, n)
	}

	logrus.Debugf("Creating parity check matrix")
	l := &LinearBlock{
		G: G,
		H: internal.ParityCheckFromSystematic(G),
	}

	if !l.Validate() {
		return nil, fmt.Errorf("G*H.T != 0")
	}

	return l, nil
}

//Encode take in a message and encodes it using the linear block, returning a codeword
func (l *LinearBlock) Encode(message mat.SparseVector) (codeword mat.SparseVector) {
	rows, cols := l.G.Dims()
	if message.Len() != rows {
		panic(fmt.Sprintf("message length == %v is required but found %v", rows, message.Len()))
	}

	codeword = mat.DOKVec(cols)
	codeword.MulMat(message, l.G)
	return codeword
}

//Decode takes in a codeword and returns the message contained in it.
// No correction is done, since G is systematic the message is the first MessageLength symbols.
func (l *LinearBlock) Decode(codeword mat.SparseVector) (message mat.SparseVector) {
	if codeword.Len() != l.CodewordLength() {
		panic(fmt.Sprintf("codeword length == %v required but found %v", l.CodewordLength(), codeword.Len()))
	}

	return codeword.Slice(0, l.MessageLength())
}

//Syndrome returns H*codeword, which is zero for every valid codeword.
func (l *LinearBlock) Syndrome(codeword mat.SparseVector) (syndrome mat.SparseVector) {
	if codeword.Len() != l.CodewordLength() {
		panic(fmt.Sprintf("codeword length == %v required but found %v", l.CodewordLength(), codeword.Len()))
	}

	syndrome = mat.CSRVec(l.ParitySymbols())
	syndrome.MatMul(l.H, codeword)
	return
}

func (l *LinearBlock) MessageLength() int {
	k, _ := l.G.Dims()
	return k
}
func (l *LinearBlock) ParitySymbols() int {
	m, _ := l.H.Dims()
	return m
}
func (l *LinearBlock) CodewordLength() int {
	_, n := l.H.Dims()
	return n
}
func (l *LinearBlock) CodeRate() float64 {
	return float64(l.MessageLength()) / float64(l.CodewordLength())
}

//CheckDims returns an error unless G is k×n and H is (n-k)×n with k < n.
func (l *LinearBlock) CheckDims() error {
	if l.G == nil || l.H == nil {
		return fmt.Errorf("G and H are required")
	}
	k, n := l.G.Dims()
	r, hn := l.H.Dims()
	if k >= n {
		return fmt.Errorf("G shape == (k, n) where k < n required but found (%v, %v)", k, n)
	}
	if hn != n || r != n-k {
		return fmt.Errorf("H shape == (%v, %v) required but found (%v, %v)", n-k, n, r, hn)
	}
	return nil
}

//Validate will test if this linearblock satisfies G*H.T=0, where G is the generator matrix and H.T is the transpose of H
func (l *LinearBlock) Validate() bool {
	return l.CheckDims() == nil && internal.IsSystematic(l.G) && internal.ValidateHGMatrices(l.G, l.H)
}

//DistinctColumns returns an error unless every column of H is nonzero and unique.
func (l *LinearBlock) DistinctColumns() error {
	return internal.DistinctColumns(l.H)
}

func (l *LinearBlock) String() string {
	buf := strings.Builder{}
	buf.WriteString("{\nG:\n")
	buf.WriteString(l.G.String())
	buf.WriteString("\nH:\n")
	buf.WriteString(l.H.String())
	buf.WriteString("\n}\n")
	return buf.String()
}
