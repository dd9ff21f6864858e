package benchmarking

import (
	"context"
	"fmt"
	"math"
	"sync"

	"github.com/AnqurEnayet/robolab-project-g35/linearblock/secded"
	"github.com/cheggaaa/pb/v3"
	"github.com/nathanhack/avgstd"
	mat "github.com/nathanhack/sparsemat"
	"github.com/nathanhack/threadpool"
	mat2 "gonum.org/v1/gonum/mat"
)

type Stats struct {
	ChannelBitError avgstd.AvgStd // probability of a codeword bit error introduced by the channel
	MessageError    avgstd.AvgStd // probability of a message bit error after decoding, only delivered words count
	Valid           int
	Corrected       int
	Uncorrectable   int
	Miscorrected    int // delivered (valid or corrected) with data different from what was sent
}

//Trials is the number of codewords decoded so far.
func (s Stats) Trials() int {
	return s.Valid + s.Corrected + s.Uncorrectable
}

func (s Stats) String() string {
	return fmt.Sprintf("{Channel:%0.02f(+/-%0.02f), Message:%0.02f(+/-%0.02f), Valid:%v, Corrected:%v, Uncorrectable:%v, Miscorrected:%v}",
		s.ChannelBitError.Mean, math.Sqrt(s.ChannelBitError.SampledVariance()),
		s.MessageError.Mean, math.Sqrt(s.MessageError.SampledVariance()),
		s.Valid, s.Corrected, s.Uncorrectable, s.Miscorrected,
	)
}

func (s *Stats) update(message, codeword, channelInducedCodeword mat.SparseVector, result secded.Result) {
	s.ChannelBitError.Update(float64(codeword.HammingDistance(channelInducedCodeword)) / float64(codeword.Len()))

	switch result.(type) {
	case secded.Valid:
		s.Valid++
	case secded.Corrected:
		s.Corrected++
	case secded.Uncorrectable:
		s.Uncorrectable++
		return
	}

	data, _ := secded.Message(result)
	messageErrors := HammingDistanceBits(data, message)
	if messageErrors > 0 {
		s.Miscorrected++
	}
	s.MessageError.Update(float64(messageErrors) / float64(message.Len()))
}

type Checkpoints func(updatedStats Stats)

type BinaryMessageConstructor func(trial int) (message mat.SparseVector)

//specific to BSC
type BinarySymmetricChannel func(codeword mat.SparseVector) (channelInducedCodeword mat.SparseVector)

//specific to BPSK
type BPSKChannel func(codeword mat2.Vector) (channelInducedCodeword mat2.Vector)

//BenchmarkBSCContinueStats decodes codewords sent through a binary channel until trials
// codewords have been decoded, counting previousStats as already done.
func BenchmarkBSCContinueStats(ctx context.Context,
	code *secded.Code,
	trials int, threads int,
	createMessage BinaryMessageConstructor,
	channel BinarySymmetricChannel,
	checkpoints Checkpoints,
	previousStats Stats,
	showProgress bool) Stats {
	return benchmark(ctx, code, trials, threads, createMessage, channel, checkpoints, previousStats, showProgress)
}

//BenchmarkBPSKContinueStats modulates each codeword, sends it through the channel and
// makes a hard decision (>=0 is a 1) on every symbol before decoding.
func BenchmarkBPSKContinueStats(ctx context.Context,
	code *secded.Code,
	trials int, threads int,
	createMessage BinaryMessageConstructor,
	channel BPSKChannel,
	checkpoints Checkpoints,
	previousStats Stats,
	showProgress bool) Stats {
	hardDecision := func(codeword mat.SparseVector) mat.SparseVector {
		return BPSKToBits(channel(BitsToBPSK(codeword)), 0)
	}
	return benchmark(ctx, code, trials, threads, createMessage, hardDecision, checkpoints, previousStats, showProgress)
}

func benchmark(ctx context.Context,
	code *secded.Code,
	trials int, threads int,
	createMessage BinaryMessageConstructor,
	channel BinarySymmetricChannel,
	checkpoints Checkpoints,
	previousStats Stats,
	showProgress bool) Stats {
	trialsToRun := trials - previousStats.Trials()
	if trialsToRun <= 0 {
		return previousStats
	}

	var bar *pb.ProgressBar
	if showProgress {
		bar = pb.StartNew(trialsToRun)
	}

	pool := threadpool.NewFixedSize(ctx, threads, trialsToRun)
	statsMux := sync.Mutex{}

	trial := func(i int) {
		if showProgress {
			bar.Increment()
		}
		//we create a random message
		message := createMessage(i)

		// encode to get our codeword
		codeword := code.EncodeVector(message)

		// send through the channel to get channel induced errors
		channelInducedCodeword := channel(codeword)

		// decode (correcting if possible)
		result := code.DecodeVector(channelInducedCodeword)

		statsMux.Lock()
		previousStats.update(message, codeword, channelInducedCodeword, result)
		if checkpoints != nil {
			checkpoints(previousStats) //give them the updated checkpoint
		}
		statsMux.Unlock()
	}

	for i := previousStats.Trials(); i < trials; i++ {
		tmp := i
		pool.Add(func() { trial(tmp) })
	}
	pool.Wait()
	if showProgress {
		bar.Finish()
	}
	return previousStats
}

//HammingDistanceBits calculates number of bits different.
// If a and b are different sizes it assumes they are
// both aligned with the zero index (the difference is at the end)
func HammingDistanceBits(a []int, b mat.SparseVector) int {
	min := len(a)
	max := b.Len()
	if min > max {
		min = b.Len()
		max = len(a)
	}

	count := 0
	for i := 0; i < min; i++ {
		if a[i] != b.At(i) {
			count++
		}
	}
	return max - min + count
}

//BitsToBPSK converts a [0,1] matrix to a [-1,1] matrix
func BitsToBPSK(a mat.SparseVector) mat2.Vector {
	output := mat2.NewVecDense(a.Len(), nil)

	for i := 0; i < a.Len(); i++ {
		if a.At(i) > 0 {
			output.SetVec(i, 1)
		} else {
			output.SetVec(i, -1)
		}
	}

	return output
}

//BPSKToBits conversts a BPSK vector [-1,1] to sparse vector [0,1].
// Values >= boundary will be considered a 1, otherwise a 0.
func BPSKToBits(a mat2.Vector, boundary float64) mat.SparseVector {
	result := mat.CSRVec(a.Len())

	for i := 0; i < a.Len(); i++ {
		if a.AtVec(i) >= boundary {
			result.Set(i, 1)
		}
	}
	return result
}
