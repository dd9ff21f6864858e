package secded

import (
	"context"
	"errors"
	"fmt"

	"github.com/AnqurEnayet/robolab-project-g35/linearblock"
	mat "github.com/nathanhack/sparsemat"
	"github.com/sirupsen/logrus"
)

var (
	ErrLength = errors.New("wrong word length")
	ErrBit    = errors.New("bit values must be 0 or 1")
)

// seedGenerator is the built-in non-systematic 6×10 generator.
var seedGenerator = []int{
	1, 1, 1, 0, 0, 0, 0, 1, 0, 0,
	0, 1, 0, 0, 1, 0, 0, 1, 0, 0,
	1, 0, 0, 1, 0, 1, 0, 0, 0, 0,
	0, 0, 0, 1, 0, 0, 1, 1, 0, 0,
	1, 1, 0, 1, 0, 0, 0, 1, 1, 0,
	1, 0, 0, 1, 0, 0, 0, 1, 0, 1,
}

//SeedGenerator returns a copy of the built-in generator the (11,6) code is derived from.
func SeedGenerator() mat.SparseMat {
	return mat.CSRMat(6, 10, seedGenerator...)
}

//Code is a linear block code extended with an overall parity bit making it
// single error correcting and double error detecting. A Code is never modified
// after it is created so it is safe for concurrent use.
type Code struct {
	block *linearblock.LinearBlock
	table linearblock.SyndromeTable
}

//New creates the (11,6) code from the built-in generator.
func New() (*Code, error) {
	return FromGenerator(context.Background(), SeedGenerator())
}

//FromGenerator reduces G to systematic form and creates the extended code from it.
func FromGenerator(ctx context.Context, G mat.SparseMat) (*Code, error) {
	block, err := linearblock.New(ctx, G)
	if err != nil {
		return nil, err
	}
	return FromLinearBlock(block)
}

//FromLinearBlock extends a systematic linear block code with an overall parity bit.
// Every column of the block's H must be nonzero and unique.
func FromLinearBlock(block *linearblock.LinearBlock) (*Code, error) {
	if block == nil {
		return nil, fmt.Errorf("linearblock required")
	}
	if err := block.CheckDims(); err != nil {
		return nil, err
	}
	if block.ParitySymbols() > linearblock.MaxTableParitySymbols {
		return nil, fmt.Errorf("parity symbols <= %v required but found %v", linearblock.MaxTableParitySymbols, block.ParitySymbols())
	}
	if !block.Validate() {
		return nil, fmt.Errorf("linearblock is not systematic or G*H.T != 0")
	}
	if err := block.DistinctColumns(); err != nil {
		return nil, fmt.Errorf("single bit errors are not locatable: %w", err)
	}

	table := linearblock.NewSyndromeTable(block.H)
	logrus.Debugf("Syndrome table complete")

	return &Code{
		block: block,
		table: table,
	}, nil
}

//Block returns the underlying (non extended) linear block code.
func (c *Code) Block() *linearblock.LinearBlock {
	return c.block
}

//MessageLength is the number of data bits.
func (c *Code) MessageLength() int {
	return c.block.MessageLength()
}

//CodewordLength is the number of bits in a codeword, overall parity bit included.
func (c *Code) CodewordLength() int {
	return c.block.CodewordLength() + 1
}

//ParityPosition is the index of the overall parity bit, the last bit of the codeword.
func (c *Code) ParityPosition() int {
	return c.block.CodewordLength()
}

//Encode returns the codeword for data.
func (c *Code) Encode(data []int) ([]int, error) {
	if len(data) != c.MessageLength() {
		return nil, fmt.Errorf("%w: data length == %v required but found %v", ErrLength, c.MessageLength(), len(data))
	}
	message, err := toVector(data)
	if err != nil {
		return nil, err
	}
	return toBits(c.EncodeVector(message)), nil
}

//Decode returns the data contained in codeword, correcting a single bit error if present.
func (c *Code) Decode(codeword []int) (Result, error) {
	if len(codeword) != c.CodewordLength() {
		return nil, fmt.Errorf("%w: codeword length == %v required but found %v", ErrLength, c.CodewordLength(), len(codeword))
	}
	received, err := toVector(codeword)
	if err != nil {
		return nil, err
	}
	return c.DecodeVector(received), nil
}

//EncodeVector multiplies message by G and appends the overall parity bit.
func (c *Code) EncodeVector(message mat.SparseVector) (codeword mat.SparseVector) {
	encoded := c.block.Encode(message)

	codeword = mat.CSRVec(c.CodewordLength())
	for _, i := range encoded.NonzeroArray() {
		codeword.Set(i, 1)
	}
	codeword.Set(c.ParityPosition(), encoded.HammingWeight()%2)
	return codeword
}

//DecodeVector is Decode for vectors.
func (c *Code) DecodeVector(codeword mat.SparseVector) Result {
	if codeword.Len() != c.CodewordLength() {
		panic(fmt.Sprintf("codeword length == %v required but found %v", c.CodewordLength(), codeword.Len()))
	}

	n := c.block.CodewordLength()
	protected := mat.CSRVecCopy(codeword.Slice(0, n))
	parityError := protected.HammingWeight()%2 != codeword.At(n)

	syndrome := c.block.Syndrome(protected)

	switch {
	case syndrome.IsZero() && !parityError:
		return Valid{Data: toBits(c.block.Decode(protected))}
	case syndrome.IsZero():
		// only the overall parity bit was flipped
		return Corrected{Data: toBits(c.block.Decode(protected)), Position: n}
	case parityError:
		position, ok := c.table.Lookup(syndrome)
		if !ok {
			logrus.Debugf("syndrome %v has no single bit error", syndrome)
			break
		}
		protected.Set(position, protected.At(position)^1)
		return Corrected{Data: toBits(c.block.Decode(protected)), Position: position}
	}

	// either even overall parity with a nonzero syndrome (two errors) or
	// a syndrome no single bit error produces
	return Uncorrectable{}
}

func toVector(bits []int) (mat.SparseVector, error) {
	vec := mat.CSRVec(len(bits))
	for i, b := range bits {
		switch b {
		case 0:
		case 1:
			vec.Set(i, 1)
		default:
			return nil, fmt.Errorf("%w: found %v at index %v", ErrBit, b, i)
		}
	}
	return vec, nil
}

func toBits(vec mat.SparseVector) []int {
	bits := make([]int, vec.Len())
	for _, i := range vec.NonzeroArray() {
		bits[i] = 1
	}
	return bits
}
