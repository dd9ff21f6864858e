package cmd

import (
	"github.com/AnqurEnayet/robolab-project-g35/cmd/internal/create/hamming"
	"github.com/AnqurEnayet/robolab-project-g35/cmd/internal/create/secded"

	"github.com/spf13/cobra"
)

// createCmd represents the create command
var createCmd = &cobra.Command{
	Use:     "create",
	Aliases: []string{"c"},
	Short:   "used to create a new ECC",
	Long:    `create provides the ability to make a new ECC from the list of built-in ECCs and save them so they can be used later by the codec and the tools.`,
}

// createlinearblockCmd represents the linearblock command
var createlinearblockCmd = &cobra.Command{
	Use:     "linearblock",
	Aliases: []string{"lb", "l"},
	Short:   "creates linearblock ECCs",
	Long:    `Creates linearblock ECCs.`,
}

// createSecdedCmd represents the secded command
var createSecdedCmd = &cobra.Command{
	Use:     "secded OUTPUT_ECC_JSON",
	Aliases: []string{"s"},
	Short:   "Saves the built-in (11,6) SECDED code",
	Long:    `Derives the systematic generator and parity check matrices of the built-in (11,6) code and saves them.`,
	Args:    cobra.ExactArgs(1),
	Run:     secded.SecdedRun,
}

// createHammingCmd represents the Hamming command
var createHammingCmd = &cobra.Command{
	Use:     "hamming OUTPUT_ECC_JSON",
	Aliases: []string{"h", "ham"},
	Short:   "Creates a new Hamming code based ECC",
	Long:    `Creates a new Hamming code based ECC. When used by the codec and the tools it is extended with an overall parity bit.`,
	Args:    cobra.ExactArgs(1),
	Run:     hamming.HammingRun,
}

func init() {
	rootCmd.AddCommand(createCmd)
	createCmd.AddCommand(createlinearblockCmd)

	createlinearblockCmd.AddCommand(createSecdedCmd)

	createlinearblockCmd.AddCommand(createHammingCmd)
	createHammingCmd.Flags().UintVarP(&hamming.ParityBits, "parity", "p", 4, "the parity >=2, sets codeword size (cs) == 2^parity-1 and message size == cs-parity")
}
