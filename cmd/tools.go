package cmd

import (
	"github.com/AnqurEnayet/robolab-project-g35/cmd/internal/tools/bpsk"
	"github.com/AnqurEnayet/robolab-project-g35/cmd/internal/tools/bsc"
	"github.com/AnqurEnayet/robolab-project-g35/cmd/internal/tools/chart"
	"github.com/AnqurEnayet/robolab-project-g35/cmd/internal/tools/csv"
	"github.com/AnqurEnayet/robolab-project-g35/cmd/internal/tools/flips"

	"github.com/spf13/cobra"
)

// toolsCmd represents the tools command
var toolsCmd = &cobra.Command{
	Use:     "tools",
	Aliases: []string{"t"},
	Short:   "Tools for ECCs",
	Long:    `Tools for ECCs`,
}

// toolsChansimCmd represents the chansim command
var toolsChansimCmd = &cobra.Command{
	Use:     "chansim",
	Aliases: []string{"cs", "c"},
	Short:   "Channel simulators",
	Long:    `Channel simulators for SECDED ECCs`,
}

// toolsLinearblockCmd represents the linearblock command
var toolsLinearblockCmd = &cobra.Command{
	Use:     "linearblock",
	Aliases: []string{"lb", "l"},
	Short:   "Linearblock channel simulators",
	Long:    `Channel simulators for SECDED ECCs`,
}

// toolsHarddecisionCmd represents the harddecision command
var toolsHarddecisionCmd = &cobra.Command{
	Use:     "harddecision",
	Aliases: []string{"hard", "h"},
	Short:   "Using hard decisions",
	Long:    `Channel simulators for SECDED ECCs using hard decisions`,
}

// toolsBscCmd represents the bsc command
var toolsBscCmd = &cobra.Command{
	Use:   "bsc ECC_JSON_FILE RESULT_JSON",
	Short: "A binary symmetric channel simulator",
	Long: `A binary symmetric channel simulator for SECDED ECCs. Use "" as the ECC_JSON_FILE
for the built-in (11,6) code.`,
	Args: cobra.ExactArgs(2),
	Run:  bsc.BscRun,
}

// toolsBpskCmd represents the bpsk command
var toolsBpskCmd = &cobra.Command{
	Use:   "bpsk ECC_JSON_FILE RESULT_JSON",
	Short: "A BPSK over AWGN channel simulator",
	Long: `A BPSK over AWGN channel simulator for SECDED ECCs, the received symbols are hard
decided before decoding. Use "" as the ECC_JSON_FILE for the built-in (11,6) code.`,
	Args: cobra.ExactArgs(2),
	Run:  bpsk.BpskRun,
}

// toolsFlipsCmd represents the flips command
var toolsFlipsCmd = &cobra.Command{
	Use:   "flips ECC_JSON_FILE RESULT_JSON",
	Short: "A fixed error weight channel simulator",
	Long: `A channel simulator for SECDED ECCs flipping exactly the given number of bits of every
codeword. Use "" as the ECC_JSON_FILE for the built-in (11,6) code.`,
	Args: cobra.ExactArgs(2),
	Run:  flips.FlipsRun,
}

// toolsResultsCmd represents the results command
var toolsResultsCmd = &cobra.Command{
	Use:     "results",
	Aliases: []string{"r"},
	Short:   "A tool to organize results for graphing and comparison",
	Long:    `A tool to organize results for graphing and comparison`,
}

// toolsCSVCmd represents the csv command
var toolsCSVCmd = &cobra.Command{
	Use:     "csv RESULTS_JSON [RESULTS_JSON] ...",
	Aliases: []string{"c"},
	Short:   "Export to a CSV file",
	Long:    `Export to a CSV file`,
	Args:    cobra.MinimumNArgs(1),
	Run:     csv.CSVRun,
}

// toolsChartCmd represents the chart command
var toolsChartCmd = &cobra.Command{
	Use:     "chart RESULTS_JSON [RESULTS_JSON] ...",
	Aliases: []string{"ch"},
	Short:   "Export to an HTML chart",
	Long:    `Export to an HTML bar chart`,
	Args:    cobra.MinimumNArgs(1),
	Run:     chart.ChartRun,
}

func init() {
	rootCmd.AddCommand(toolsCmd)
	toolsCmd.AddCommand(toolsChansimCmd)
	toolsCmd.AddCommand(toolsResultsCmd)

	toolsChansimCmd.AddCommand(toolsLinearblockCmd)
	toolsLinearblockCmd.AddCommand(toolsHarddecisionCmd)

	toolsHarddecisionCmd.AddCommand(toolsBscCmd)
	toolsBscCmd.Flags().UintVarP(&bsc.Trials, "trials", "t", 1_000_000, "the number of trials per step")
	toolsBscCmd.Flags().Float64SliceVarP(&bsc.ErrorProbability, "probability", "p", []float64{0.001, 0.005, 0.01, 0.02, 0.05, 0.10, 0.15, 0.20, 0.25, 0.30}, "probability of crossover errors to test [0, 0.5]")
	toolsBscCmd.Flags().UintVar(&bsc.Threads, "threads", 0, "number of threads to use (0 means to use the # of threads equal to the # of CPUs)")

	toolsHarddecisionCmd.AddCommand(toolsBpskCmd)
	toolsBpskCmd.Flags().UintVarP(&bpsk.Trials, "trials", "t", 1_000_000, "the number of trials per step")
	toolsBpskCmd.Flags().Float64SliceVarP(&bpsk.EbN0, "ebn0", "e", []float64{0, 1, 2, 3, 4, 5, 6, 7, 8}, "E_b/N_0 values in dB to test")
	toolsBpskCmd.Flags().UintVar(&bpsk.Threads, "threads", 0, "number of threads to use (0 means to use the # of threads equal to the # of CPUs)")

	toolsHarddecisionCmd.AddCommand(toolsFlipsCmd)
	toolsFlipsCmd.Flags().UintVarP(&flips.Trials, "trials", "t", 100_000, "the number of trials per step")
	toolsFlipsCmd.Flags().IntSliceVarP(&flips.Weights, "weights", "w", []int{1, 2, 3}, "number of bits flipped per codeword to test")
	toolsFlipsCmd.Flags().UintVar(&flips.Threads, "threads", 0, "number of threads to use (0 means to use the # of threads equal to the # of CPUs)")

	toolsResultsCmd.AddCommand(toolsCSVCmd)
	toolsCSVCmd.Flags().StringVarP(&csv.OutputFile, "output", "o", "results.csv", "filename of the combined csv")
	toolsCSVCmd.Flags().StringVarP(&csv.Metric, "metric", "m", "channel", "the metric to output: channel, message, valid, corrected, uncorrectable or miscorrected")

	toolsResultsCmd.AddCommand(toolsChartCmd)
	toolsChartCmd.Flags().StringVarP(&chart.OutputFile, "output", "o", "results.html", "filename of the chart")
	toolsChartCmd.Flags().StringVarP(&chart.Metric, "metric", "m", "channel", "the metric to chart: channel, message, valid, corrected, uncorrectable or miscorrected")
}
