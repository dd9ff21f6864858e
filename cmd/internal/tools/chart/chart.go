package chart

import (
	"fmt"
	"os"

	"github.com/AnqurEnayet/robolab-project-g35/benchmarking"
	"github.com/AnqurEnayet/robolab-project-g35/cmd/internal/tools"
	"github.com/spf13/cobra"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

var OutputFile string
var Metric string

var ChartRun = func(cmd *cobra.Command, args []string) {
	// loop through all the results files and collect data needed for displaying
	stats, xvalues, err := tools.LoadAllResults(args)
	if err != nil {
		fmt.Println(err)
		return
	}

	xnames := make([]string, len(xvalues))
	for i, x := range xvalues {
		xnames[i] = fmt.Sprint(x)
	}

	//check the metric before anything is written
	if _, err := tools.Metric(Metric, benchmarking.Stats{}); err != nil {
		fmt.Println(err)
		return
	}

	f, err := os.Create(OutputFile)
	if err != nil {
		fmt.Println(err)
		return
	}
	defer f.Close()

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Results",
			Subtitle: Metric,
			Left:     "20%",
		}),
		charts.WithLegendOpts(opts.Legend{Show: true,
			Orient: "vertical",
			Right:  "0",
			Top:    "top",
			Type:   "scroll",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name:      "Channel",
			SplitLine: &opts.SplitLine{Show: true},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:      "Rate",
			SplitLine: &opts.SplitLine{Show: true},
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true}),
	)

	bar.SetXAxis(xnames)

	for i, s := range stats {
		data, err := series(s, xvalues)
		if err != nil {
			fmt.Println(err)
			return
		}
		bar.AddSeries(args[i], data)
	}

	err = bar.Render(f)
	if err != nil {
		fmt.Println(err)
	}
}

func series(stat *tools.SimulationStats, values []float64) ([]opts.BarData, error) {
	results := make([]opts.BarData, len(values))
	null := opts.BarData{Value: nil}
	for i, v := range values {
		x, has := stat.Stats[v]
		if !has {
			results[i] = null
			continue
		}

		value, err := tools.Metric(Metric, x)
		if err != nil {
			return nil, err
		}
		results[i] = opts.BarData{
			Value: value,
		}
	}
	return results, nil
}
