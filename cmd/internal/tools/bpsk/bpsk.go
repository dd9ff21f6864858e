package bpsk

import (
	"context"
	"fmt"

	"github.com/AnqurEnayet/robolab-project-g35/benchmarking"
	"github.com/AnqurEnayet/robolab-project-g35/cmd/internal/tools"
	"github.com/AnqurEnayet/robolab-project-g35/cmd/internal/tools/bsc"
	"github.com/AnqurEnayet/robolab-project-g35/linearblock/secded"
	"github.com/spf13/cobra"
	mat2 "gonum.org/v1/gonum/mat"
)

var (
	Trials  uint
	EbN0    []float64
	Threads uint
)

const typeInfo = "BPSK:secded"

var BpskRun = func(cmd *cobra.Command, args []string) {
	code, err := tools.LoadCode(args[0])
	if err != nil {
		fmt.Println(err)
		return
	}

	data, err := tools.LoadOrCreateResults(args[1], typeInfo, code)
	if err != nil {
		fmt.Println(err)
		return
	}

	ctx, cancel := tools.SignalContext()
	defer cancel()

	run := func(ctx context.Context, dB float64, trials, threads int, previousStats benchmarking.Stats, checkpoints benchmarking.Checkpoints) benchmarking.Stats {
		return RunBPSK(ctx, code, dB, trials, threads, previousStats, checkpoints, false)
	}
	tools.RunSimulation(ctx, data, EbN0, int(Trials), int(Threads), args[1], run)

	err = tools.SaveResults(args[1], data)
	if err != nil {
		fmt.Println(err)
	}
}

//RunBPSK simulates BPSK over an AWGN channel at E_b/N_0 given in dB. The energy per
// information bit is spread over the codeword so the symbol noise is scaled by the code rate.
func RunBPSK(ctx context.Context,
	code *secded.Code,
	dB float64, trials, threads int,
	previousStats benchmarking.Stats,
	checkpoints benchmarking.Checkpoints,
	showProgress bool) benchmarking.Stats {
	rate := float64(code.MessageLength()) / float64(code.CodewordLength())
	esN0 := benchmarking.DecibelsToRatio(dB) * rate

	channel := func(originalCodeword mat2.Vector) (erroredCodeword mat2.Vector) {
		return benchmarking.RandomNoiseBPSK(originalCodeword, esN0)
	}

	return benchmarking.BenchmarkBPSKContinueStats(ctx, code, trials, threads, bsc.MessageConstructor(code.MessageLength()), channel, checkpoints, previousStats, showProgress)
}
