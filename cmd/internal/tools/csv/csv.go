package csv

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/AnqurEnayet/robolab-project-g35/benchmarking"
	"github.com/AnqurEnayet/robolab-project-g35/cmd/internal/tools"
	"github.com/spf13/cobra"
)

var OutputFile string
var Metric string

var CSVRun = func(cmd *cobra.Command, args []string) {
	stats, points, err := tools.LoadAllResults(args)
	if err != nil {
		fmt.Println(err)
		return
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
	w := csv.NewWriter(f)
	defer w.Flush()

	//first write headers
	header := []string{"Results File"}
	for _, p := range points {
		header = append(header, fmt.Sprintf("%v", p))
	}

	err = w.Write(header)
	if err != nil {
		fmt.Println(err)
		return
	}

	for i, s := range stats {
		record := make([]string, len(header))
		record[0] = strings.TrimSuffix(args[i], filepath.Ext(args[i]))

		for j, p := range points {
			v, has := s.Stats[p]
			if !has {
				continue
			}
			value, err := tools.Metric(Metric, v)
			if err != nil {
				fmt.Println(err)
				return
			}
			record[j+1] = fmt.Sprintf("%v", value)
		}

		err = w.Write(record)
		if err != nil {
			fmt.Println(err)
			return
		}
	}
}
