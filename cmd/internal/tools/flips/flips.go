package flips

import (
	"context"
	"fmt"

	"github.com/AnqurEnayet/robolab-project-g35/benchmarking"
	"github.com/AnqurEnayet/robolab-project-g35/cmd/internal/tools"
	"github.com/AnqurEnayet/robolab-project-g35/linearblock/secded"
	mat "github.com/nathanhack/sparsemat"
	"github.com/spf13/cobra"
)

var (
	Trials  uint
	Weights []int
	Threads uint
)

const typeInfo = "FLIPS:secded"

var FlipsRun = func(cmd *cobra.Command, args []string) {
	code, err := tools.LoadCode(args[0])
	if err != nil {
		fmt.Println(err)
		return
	}

	points := make([]float64, len(Weights))
	for i, w := range Weights {
		if w < 0 || w > code.CodewordLength() {
			fmt.Printf("error weights must be in [0, %v] but found %v\n", code.CodewordLength(), w)
			return
		}
		points[i] = float64(w)
	}

	data, err := tools.LoadOrCreateResults(args[1], typeInfo, code)
	if err != nil {
		fmt.Println(err)
		return
	}

	ctx, cancel := tools.SignalContext()
	defer cancel()

	run := func(ctx context.Context, weight float64, trials, threads int, previousStats benchmarking.Stats, checkpoints benchmarking.Checkpoints) benchmarking.Stats {
		return RunFlips(ctx, code, int(weight), trials, threads, previousStats, checkpoints, false)
	}
	tools.RunSimulation(ctx, data, points, int(Trials), int(Threads), args[1], run)

	err = tools.SaveResults(args[1], data)
	if err != nil {
		fmt.Println(err)
	}
}

//RunFlips flips exactly weight random bits of every codeword of random messages.
func RunFlips(ctx context.Context,
	code *secded.Code,
	weight int, trials, threads int,
	previousStats benchmarking.Stats,
	checkpoints benchmarking.Checkpoints,
	showProgress bool) benchmarking.Stats {
	message := func(trial int) mat.SparseVector {
		return benchmarking.RandomMessage(code.MessageLength())
	}
	channel := func(originalCodeword mat.SparseVector) (erroredCodeword mat.SparseVector) {
		return benchmarking.RandomFlipBitCount(originalCodeword, weight)
	}

	return benchmarking.BenchmarkBSCContinueStats(ctx, code, trials, threads, message, channel, checkpoints, previousStats, showProgress)
}
