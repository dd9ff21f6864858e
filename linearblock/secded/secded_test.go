package secded

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"testing"

	"github.com/AnqurEnayet/robolab-project-g35/linearblock"
	"github.com/AnqurEnayet/robolab-project-g35/linearblock/hamming"
	mat "github.com/nathanhack/sparsemat"
	"golang.org/x/exp/slices"
)

func newCode(t testing.TB) *Code {
	code, err := New()
	if err != nil {
		t.Fatalf("expected no error but found: %v", err)
	}
	return code
}

func dataWord(value, length int) []int {
	data := make([]int, length)
	for i := range data {
		data[i] = (value >> (length - 1 - i)) & 1
	}
	return data
}

func flip(word []int, positions ...int) []int {
	result := slices.Clone(word)
	for _, p := range positions {
		result[p] ^= 1
	}
	return result
}

func TestNew_Matrices(t *testing.T) {
	code := newCode(t)
	block := code.Block()

	expectedG := mat.CSRMat(6, 10,
		1, 0, 0, 0, 0, 0, 1, 0, 0, 1,
		0, 1, 0, 0, 0, 0, 0, 0, 1, 1,
		0, 0, 1, 0, 0, 0, 1, 1, 1, 0,
		0, 0, 0, 1, 0, 0, 1, 1, 0, 0,
		0, 0, 0, 0, 1, 0, 0, 1, 1, 1,
		0, 0, 0, 0, 0, 1, 0, 1, 0, 1,
	)
	if !expectedG.Equals(block.G) {
		t.Fatalf("expected \n%v\n but found \n%v\n", expectedG, block.G)
	}

	if !block.G.Slice(0, 0, 6, 6).Equals(mat.CSRIdentity(6)) {
		t.Fatalf("expected the leftmost 6x6 block of G to be the identity")
	}

	expectedH := mat.CSRMat(4, 10,
		1, 0, 1, 1, 0, 0, 1, 0, 0, 0,
		0, 0, 1, 1, 1, 1, 0, 1, 0, 0,
		0, 1, 1, 0, 1, 0, 0, 0, 1, 0,
		1, 1, 0, 0, 1, 1, 0, 0, 0, 1,
	)
	if !expectedH.Equals(block.H) {
		t.Fatalf("expected \n%v\n but found \n%v\n", expectedH, block.H)
	}

	//G*H.T == 0
	for i := 0; i < 6; i++ {
		for j := 0; j < 4; j++ {
			if block.G.Row(i).Dot(block.H.Row(j)) != 0 {
				t.Fatalf("expected row %v of G to be orthogonal to row %v of H", i, j)
			}
		}
	}

	if code.MessageLength() != 6 || code.CodewordLength() != 11 || code.ParityPosition() != 10 {
		t.Fatalf("expected (11,6) code but found (%v,%v)", code.CodewordLength(), code.MessageLength())
	}
}

func TestCode_Golden(t *testing.T) {
	code := newCode(t)
	data := []int{1, 0, 1, 1, 0, 0}
	expected := []int{1, 0, 1, 1, 0, 0, 1, 0, 1, 1, 0}

	codeword, err := code.Encode(data)
	if err != nil {
		t.Fatalf("expected no error but found: %v", err)
	}
	if !slices.Equal(expected, codeword) {
		t.Fatalf("expected %v but found %v", expected, codeword)
	}

	result, err := code.Decode(flip(codeword, 3))
	if err != nil {
		t.Fatalf("expected no error but found: %v", err)
	}
	corrected, ok := result.(Corrected)
	if !ok {
		t.Fatalf("expected %v but found %v", StatusCorrected, result.Status())
	}
	if !slices.Equal(data, corrected.Data) || corrected.Position != 3 {
		t.Fatalf("expected %v at 3 but found %v at %v", data, corrected.Data, corrected.Position)
	}
}

func TestCode_RoundTrip(t *testing.T) {
	code := newCode(t)

	for d := 0; d < 64; d++ {
		data := dataWord(d, 6)
		codeword, err := code.Encode(data)
		if err != nil {
			t.Fatalf("expected no error but found: %v", err)
		}

		result, err := code.Decode(codeword)
		if err != nil {
			t.Fatalf("expected no error but found: %v", err)
		}
		valid, ok := result.(Valid)
		if !ok {
			t.Fatalf("%v: expected %v but found %v", data, StatusValid, result.Status())
		}
		if !slices.Equal(data, valid.Data) {
			t.Fatalf("expected %v but found %v", data, valid.Data)
		}
	}
}

func TestCode_SingleBitCorrection(t *testing.T) {
	code := newCode(t)

	for i := 0; i < code.CodewordLength(); i++ {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			for d := 0; d < 64; d++ {
				data := dataWord(d, 6)
				codeword, _ := code.Encode(data)

				result, err := code.Decode(flip(codeword, i))
				if err != nil {
					t.Fatalf("expected no error but found: %v", err)
				}
				corrected, ok := result.(Corrected)
				if !ok {
					t.Fatalf("%v: expected %v but found %v", data, StatusCorrected, result.Status())
				}
				if !slices.Equal(data, corrected.Data) {
					t.Fatalf("expected %v but found %v", data, corrected.Data)
				}
				if corrected.Position != i {
					t.Fatalf("expected position %v but found %v", i, corrected.Position)
				}
			}
		})
	}
}

func TestCode_CheckBitOnly(t *testing.T) {
	code := newCode(t)

	for d := 0; d < 64; d++ {
		data := dataWord(d, 6)
		codeword, _ := code.Encode(data)

		result, _ := code.Decode(flip(codeword, code.ParityPosition()))
		if result.Status() != StatusCorrected {
			t.Fatalf("expected %v but found %v", StatusCorrected, result.Status())
		}
		actual, ok := Message(result)
		if !ok || !slices.Equal(data, actual) {
			t.Fatalf("expected %v but found %v", data, actual)
		}
	}
}

func TestCode_DoubleBitDetection(t *testing.T) {
	code := newCode(t)

	//every pair of the 11 bits is detected by this matrix
	for i := 0; i < code.CodewordLength(); i++ {
		for j := i + 1; j < code.CodewordLength(); j++ {
			t.Run(fmt.Sprintf("%v_%v", i, j), func(t *testing.T) {
				for d := 0; d < 64; d++ {
					codeword, _ := code.Encode(dataWord(d, 6))

					result, err := code.Decode(flip(codeword, i, j))
					if err != nil {
						t.Fatalf("expected no error but found: %v", err)
					}
					if _, ok := result.(Uncorrectable); !ok {
						t.Fatalf("expected %v but found %v", StatusUncorrectable, result.Status())
					}
					if data, ok := Message(result); ok || data != nil {
						t.Fatalf("expected no data but found %v", data)
					}
				}
			})
		}
	}
}

func TestCode_UnmappedSyndrome(t *testing.T) {
	code := newCode(t)
	codeword, _ := code.Encode(make([]int, 6))

	//three flips give a parity error and a syndrome no single column of H has
	result, _ := code.Decode(flip(codeword, 0, 1, 3))
	if result.Status() != StatusUncorrectable {
		t.Fatalf("expected %v but found %v", StatusUncorrectable, result.Status())
	}

	//while others are miscorrected
	result, _ = code.Decode(flip(codeword, 0, 1, 2))
	corrected, ok := result.(Corrected)
	if !ok {
		t.Fatalf("expected %v but found %v", StatusCorrected, result.Status())
	}
	expected := []int{1, 1, 1, 0, 0, 0}
	if !slices.Equal(expected, corrected.Data) {
		t.Fatalf("expected %v but found %v", expected, corrected.Data)
	}
}

func TestCode_LengthValidation(t *testing.T) {
	code := newCode(t)

	for _, length := range []int{0, 5, 7} {
		_, err := code.Encode(make([]int, length))
		if !errors.Is(err, ErrLength) {
			t.Fatalf("encode length %v: expected %v but found %v", length, ErrLength, err)
		}
	}

	for _, length := range []int{0, 10, 12} {
		_, err := code.Decode(make([]int, length))
		if !errors.Is(err, ErrLength) {
			t.Fatalf("decode length %v: expected %v but found %v", length, ErrLength, err)
		}
	}
}

func TestCode_BitValidation(t *testing.T) {
	code := newCode(t)

	_, err := code.Encode([]int{1, 0, 2, 0, 0, 0})
	if !errors.Is(err, ErrBit) {
		t.Fatalf("expected %v but found %v", ErrBit, err)
	}

	_, err = code.Decode([]int{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, -1})
	if !errors.Is(err, ErrBit) {
		t.Fatalf("expected %v but found %v", ErrBit, err)
	}
}

func TestCode_DecodeVectorPanics(t *testing.T) {
	code := newCode(t)
	defer func() {
		if recover() == nil {
			t.Fatalf("expected a panic")
		}
	}()
	code.DecodeVector(mat.CSRVec(10))
}

func TestCode_Concurrent(t *testing.T) {
	code := newCode(t)

	wg := sync.WaitGroup{}
	errs := make(chan error, 64)
	for d := 0; d < 64; d++ {
		wg.Add(1)
		go func(d int) {
			defer wg.Done()
			data := dataWord(d, 6)
			codeword, _ := code.Encode(data)
			for i := 0; i < code.CodewordLength(); i++ {
				actual, ok := Message(code.DecodeVector(mustVector(flip(codeword, i))))
				if !ok || !slices.Equal(data, actual) {
					errs <- fmt.Errorf("expected %v but found %v", data, actual)
					return
				}
			}
		}(d)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Fatal(err)
	}
}

func mustVector(bits []int) mat.SparseVector {
	vec, err := toVector(bits)
	if err != nil {
		panic(err)
	}
	return vec
}

func TestFromGenerator_NotFullRank(t *testing.T) {
	G := mat.CSRMat(2, 5, 1, 1, 0, 1, 0, 1, 1, 0, 1, 0)
	_, err := FromGenerator(context.Background(), G)
	if err == nil {
		t.Fatalf("expected an error")
	}
}

func TestFromLinearBlock_RepeatedColumns(t *testing.T) {
	//P has two equal rows so H has two equal columns
	G := mat.CSRMat(2, 4, 1, 0, 1, 1, 0, 1, 1, 1)
	_, err := FromGenerator(context.Background(), G)
	if err == nil {
		t.Fatalf("expected an error")
	}
}

func TestFromLinearBlock_Shapes(t *testing.T) {
	G := SeedGenerator()
	block, err := linearblock.New(context.Background(), G)
	if err != nil {
		t.Fatalf("expected no error but found: %v", err)
	}

	tests := []*linearblock.LinearBlock{
		nil,
		{G: block.G},
		{G: block.G, H: mat.CSRMat(4, 13)},
		{G: block.G, H: mat.CSRMat(5, 10)},
		{G: block.H, H: block.G},
		{G: mat.CSRMat(1, 22), H: mat.CSRMat(21, 22)},
	}
	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			_, err := FromLinearBlock(test)
			if err == nil {
				t.Fatalf("expected an error")
			}
		})
	}
}

func TestFromLinearBlock_Hamming(t *testing.T) {
	tests := []struct {
		paritySymbols int
	}{
		{3},
		{4},
	}
	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			block, err := hamming.New(context.Background(), test.paritySymbols)
			if err != nil {
				t.Fatalf("expected no error but found: %v", err)
			}
			code, err := FromLinearBlock(block)
			if err != nil {
				t.Fatalf("expected no error but found: %v", err)
			}

			k := code.MessageLength()
			data := dataWord(1<<k-1, k)
			codeword, _ := code.Encode(data)
			for p := 0; p < code.CodewordLength(); p++ {
				result, _ := code.Decode(flip(codeword, p))
				actual, ok := Message(result)
				if result.Status() != StatusCorrected || !ok || !slices.Equal(data, actual) {
					t.Fatalf("position %v: expected %v but found %v %v", p, data, result.Status(), actual)
				}
			}

			result, _ := code.Decode(flip(codeword, 0, 1))
			if result.Status() != StatusUncorrectable {
				t.Fatalf("expected %v but found %v", StatusUncorrectable, result.Status())
			}
		})
	}
}

func TestStatus_Text(t *testing.T) {
	for _, status := range []Status{StatusValid, StatusCorrected, StatusUncorrectable} {
		text, err := status.MarshalText()
		if err != nil {
			t.Fatalf("expected no error but found: %v", err)
		}
		if string(text) != status.String() {
			t.Fatalf("expected %v but found %v", status.String(), string(text))
		}

		var actual Status
		if err := actual.UnmarshalText(text); err != nil || actual != status {
			t.Fatalf("expected %v but found %v (%v)", status, actual, err)
		}
	}

	if _, err := Status(42).MarshalText(); err == nil {
		t.Fatalf("expected an error for an unknown status")
	}
}

func ExampleCode_Decode() {
	code, _ := New()

	codeword, _ := code.Encode([]int{1, 0, 1, 1, 0, 0})
	fmt.Println("codeword:", codeword)

	codeword[3] ^= 1
	result, _ := code.Decode(codeword)
	data, _ := Message(result)
	fmt.Println(result.Status(), data)

	codeword[5] ^= 1
	result, _ = code.Decode(codeword)
	fmt.Println(result.Status())
	//Output:
	// codeword: [1 0 1 1 0 0 1 0 1 1 0]
	// CORRECTED [1 0 1 1 0 0]
	// UNCORRECTABLE
}

func BenchmarkCode_Decode(b *testing.B) {
	code := newCode(b)
	codeword, _ := code.Encode([]int{1, 0, 1, 1, 0, 0})
	received := flip(codeword, 3)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		code.Decode(received)
	}
}
