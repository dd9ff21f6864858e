package tools

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/AnqurEnayet/robolab-project-g35/benchmarking"
	"github.com/cheggaaa/pb/v3"
	"github.com/sirupsen/logrus"
)

//PointRunner runs a channel simulation at a single point (a probability or an E_b/N_0)
// until trials codewords have been decoded.
type PointRunner func(ctx context.Context, point float64, trials, threads int, previousStats benchmarking.Stats, checkpoints benchmarking.Checkpoints) benchmarking.Stats

//RunSimulation interleaves the points, running a few trials of each at a time, so a
// cancelled run still has results for every point. Results are checkpointed to outputFilename.
func RunSimulation(ctx context.Context, data *SimulationStats, points []float64, trials, threads int, outputFilename string, run PointRunner) {
	checkpointMux := sync.Mutex{}
	checkpointCount := 0

	numberOfThread := threads
	if numberOfThread == 0 {
		numberOfThread = runtime.NumCPU()
	}

	trialsPerIter := numberOfThread * 10
	bar := pb.StartNew(trials * len(points))
	for _, p := range points {
		bar.Add(data.Stats[p].Trials())
	}

trialLoops:
	for t := trialsPerIter; ; t += trialsPerIter {
		select {
		case <-ctx.Done():
			break trialLoops
		default:
		}

		target := min(t, trials)
		for _, p := range points {
			checkpoint := func(stats benchmarking.Stats) {
				//we want to save the checkpoint
				checkpointMux.Lock()
				defer checkpointMux.Unlock()

				data.Stats[p] = stats

				if checkpointCount%trialsPerIter == 0 {
					err := SaveResults(outputFilename, data)
					if err != nil {
						fmt.Println(err)
					}
				}
				checkpointCount++
			}

			before := data.Stats[p].Trials()
			data.Stats[p] = run(ctx, p, target, numberOfThread, data.Stats[p], checkpoint)
			bar.Add(data.Stats[p].Trials() - before)
		}

		if target == trials {
			break
		}
	}
	bar.Finish()

	for _, p := range points {
		logrus.Infof("%v: %v", p, data.Stats[p])
	}
}
