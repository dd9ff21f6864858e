package codec

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/AnqurEnayet/robolab-project-g35/cmd/internal/tools"
	"github.com/AnqurEnayet/robolab-project-g35/linearblock/secded"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	CodeFile   string
	JSONOutput bool
)

//Decoded is the JSON form of a decode result.
type Decoded struct {
	Data     []int         `json:"data"`
	Status   secded.Status `json:"status"`
	Position *int          `json:"position,omitempty"`
}

var EncodeRun = func(cmd *cobra.Command, args []string) error {
	code, err := tools.LoadCode(CodeFile)
	if err != nil {
		logrus.Fatalf("Unable to create the code: %v", err)
	}

	data, err := ParseBits(args[0])
	if err != nil {
		return err
	}

	codeword, err := code.Encode(data)
	if err != nil {
		return err
	}

	if JSONOutput {
		return json.NewEncoder(cmd.OutOrStdout()).Encode(codeword)
	}
	fmt.Fprintln(cmd.OutOrStdout(), FormatBits(codeword))
	return nil
}

var DecodeRun = func(cmd *cobra.Command, args []string) error {
	code, err := tools.LoadCode(CodeFile)
	if err != nil {
		logrus.Fatalf("Unable to create the code: %v", err)
	}

	codeword, err := ParseBits(args[0])
	if err != nil {
		return err
	}

	result, err := code.Decode(codeword)
	if err != nil {
		return err
	}

	return WriteResult(cmd.OutOrStdout(), result, JSONOutput)
}

//WriteResult writes result either as "DATA STATUS" or as JSON.
func WriteResult(w io.Writer, result secded.Result, asJSON bool) error {
	decoded := Decoded{Status: result.Status()}
	switch r := result.(type) {
	case secded.Valid:
		decoded.Data = r.Data
	case secded.Corrected:
		decoded.Data = r.Data
		decoded.Position = &r.Position
		logrus.Debugf("corrected bit %v", r.Position)
	case secded.Uncorrectable:
		logrus.Debugf("uncorrectable codeword, request retransmission")
	}

	if asJSON {
		return json.NewEncoder(w).Encode(decoded)
	}

	data := "-"
	if decoded.Data != nil {
		data = FormatBits(decoded.Data)
	}
	_, err := fmt.Fprintln(w, data, decoded.Status)
	return err
}

//ParseBits reads a word such as "101100" or "1,0,1,1,0,0". Spaces, commas and
// underscores separate bits and are ignored.
func ParseBits(word string) ([]int, error) {
	bits := make([]int, 0, len(word))
	for i, r := range word {
		switch r {
		case '0':
			bits = append(bits, 0)
		case '1':
			bits = append(bits, 1)
		case ' ', ',', '_':
		default:
			return nil, fmt.Errorf("%w: found %q at index %v", secded.ErrBit, r, i)
		}
	}
	return bits, nil
}

//FormatBits is the inverse of ParseBits.
func FormatBits(bits []int) string {
	buf := strings.Builder{}
	for _, b := range bits {
		fmt.Fprint(&buf, b)
	}
	return buf.String()
}
