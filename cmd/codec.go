package cmd

import (
	"github.com/AnqurEnayet/robolab-project-g35/cmd/internal/codec"

	"github.com/spf13/cobra"
)

// encodeCmd represents the encode command
var encodeCmd = &cobra.Command{
	Use:     "encode DATA_BITS",
	Aliases: []string{"e"},
	Short:   "Encodes a data word",
	Long:    `Encodes a data word, such as 101100, into a codeword carrying an overall parity bit.`,
	Args:    cobra.ExactArgs(1),
	RunE:    codec.EncodeRun,
}

// decodeCmd represents the decode command
var decodeCmd = &cobra.Command{
	Use:     "decode CODEWORD_BITS",
	Aliases: []string{"d"},
	Short:   "Decodes a received word",
	Long: `Decodes a received word, such as 10110010110, printing the data word and one of
VALID, CORRECTED or UNCORRECTABLE. An UNCORRECTABLE word has no data and should be retransmitted.`,
	Args: cobra.ExactArgs(1),
	RunE: codec.DecodeRun,
}

func init() {
	rootCmd.AddCommand(encodeCmd)
	encodeCmd.Flags().StringVarP(&codec.CodeFile, "code", "c", "", "an ECC_JSON_FILE to use instead of the built-in (11,6) code")
	encodeCmd.Flags().BoolVarP(&codec.JSONOutput, "json", "j", false, "output JSON")

	rootCmd.AddCommand(decodeCmd)
	decodeCmd.Flags().StringVarP(&codec.CodeFile, "code", "c", "", "an ECC_JSON_FILE to use instead of the built-in (11,6) code")
	decodeCmd.Flags().BoolVarP(&codec.JSONOutput, "json", "j", false, "output JSON")
}
