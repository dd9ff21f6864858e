package bsc

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"sync"

	"github.com/AnqurEnayet/robolab-project-g35/benchmarking"
	"github.com/AnqurEnayet/robolab-project-g35/cmd/internal/tools"
	"github.com/AnqurEnayet/robolab-project-g35/linearblock/secded"
	mat "github.com/nathanhack/sparsemat"
	"github.com/spf13/cobra"
)

const bitLimit = 64

var (
	Trials           uint
	ErrorProbability []float64
	Threads          uint
)

const typeInfo = "BSC:secded"

var BscRun = func(cmd *cobra.Command, args []string) {
	//first get the ECC to use
	code, err := tools.LoadCode(args[0])
	if err != nil {
		fmt.Println(err)
		return
	}

	//next we see if the RESULT_JSON exists if so we load it and validate we're running it against the right thing
	data, err := tools.LoadOrCreateResults(args[1], typeInfo, code)
	if err != nil {
		fmt.Println(err)
		return
	}

	ctx, cancel := tools.SignalContext()
	defer cancel()

	run := func(ctx context.Context, p float64, trials, threads int, previousStats benchmarking.Stats, checkpoints benchmarking.Checkpoints) benchmarking.Stats {
		return RunBSC(ctx, code, p, trials, threads, previousStats, checkpoints, false)
	}
	tools.RunSimulation(ctx, data, ErrorProbability, int(Trials), int(Threads), args[1], run)

	err = tools.SaveResults(args[1], data)
	if err != nil {
		fmt.Println(err)
	}
}

//RunBSC simulates a binary symmetric channel flipping each bit with crossoverProbability.
func RunBSC(ctx context.Context,
	code *secded.Code,
	crossoverProbability float64, trials, threads int,
	previousStats benchmarking.Stats,
	checkpoints benchmarking.Checkpoints,
	showProgress bool) benchmarking.Stats {
	channel := func(originalCodeword mat.SparseVector) (erroredCodeword mat.SparseVector) {
		return benchmarking.RandomFlipBits(originalCodeword, crossoverProbability)
	}

	return benchmarking.BenchmarkBSCContinueStats(ctx, code, trials, threads, MessageConstructor(code.MessageLength()), channel, checkpoints, previousStats, showProgress)
}

//MessageConstructor creates random messages avoiding repeats until every message of
// length messageLength has been used.
func MessageConstructor(messageLength int) benchmarking.BinaryMessageConstructor {
	messageHistory := make(map[string]bool)
	messageHistoryMux := sync.RWMutex{}
	messageHistoryMax := math.Pow(2, float64(messageLength))

	return func(trial int) mat.SparseVector {
		message := mat.CSRVec(messageLength)
		messageHistoryMux.RLock()
		_, has := messageHistory[message.String()]
		messageHistoryMux.RUnlock()
		for has {
			reset := false
			for i := 0; i < messageLength; i++ {
				message.Set(i, rand.Intn(2))
			}
			messageHistoryMux.RLock()
			_, has = messageHistory[message.String()]
			reset = float64(len(messageHistory)) >= messageHistoryMax
			messageHistoryMux.RUnlock()

			if reset {
				messageHistoryMux.Lock()
				messageHistory = make(map[string]bool)
				messageHistoryMux.Unlock()
			}
		}
		messageHistoryMux.Lock()
		//when the message is relatively small we'll keep track so we don't have dups
		if message.Len() < bitLimit || message.IsZero() {
			messageHistory[message.String()] = true
		}
		messageHistoryMux.Unlock()
		return message
	}
}
