package tools

import (
	"fmt"
	"sort"

	"github.com/AnqurEnayet/robolab-project-g35/benchmarking"
)

//Metric returns the named value of s. Rates are per decoded codeword.
func Metric(name string, s benchmarking.Stats) (float64, error) {
	trials := float64(s.Trials())
	rate := func(count int) float64 {
		if trials == 0 {
			return 0
		}
		return float64(count) / trials
	}

	switch name {
	case "channel":
		return s.ChannelBitError.Mean, nil
	case "message":
		return s.MessageError.Mean, nil
	case "valid":
		return rate(s.Valid), nil
	case "corrected":
		return rate(s.Corrected), nil
	case "uncorrectable":
		return rate(s.Uncorrectable), nil
	case "miscorrected":
		return rate(s.Miscorrected), nil
	default:
		return 0, fmt.Errorf("unknown metric %q", name)
	}
}

//LoadAllResults loads every results file and returns them with the sorted union of their points.
func LoadAllResults(filepaths []string) ([]*SimulationStats, []float64, error) {
	stats := make([]*SimulationStats, len(filepaths))
	points := make(map[float64]bool)
	for i, resultFile := range filepaths {
		s, err := LoadResults(resultFile)
		if err != nil {
			return nil, nil, err
		}
		if s == nil {
			return nil, nil, fmt.Errorf("results file %v does not exist", resultFile)
		}
		for p := range s.Stats {
			points[p] = true
		}
		stats[i] = s
	}

	sorted := make([]float64, 0, len(points))
	for p := range points {
		sorted = append(sorted, p)
	}
	sort.Float64s(sorted)
	return stats, sorted, nil
}
