package hamming

import (
	"fmt"

	"github.com/AnqurEnayet/robolab-project-g35/cmd/internal/tools"
	"github.com/AnqurEnayet/robolab-project-g35/linearblock/hamming"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	ParityBits uint
)

var HammingRun = func(cmd *cobra.Command, args []string) {
	ctx, cancel := tools.SignalContext()
	defer cancel()

	h, err := hamming.New(ctx, int(ParityBits))
	if err != nil {
		fmt.Println("Unable to create hamming code: ", err)
		return
	}

	err = tools.SaveLinearBlockECC(args[0], h)
	if err != nil {
		fmt.Println(err)
		return
	}
	logrus.Infof("Saved (%v,%v) hamming code to %v", h.CodewordLength(), h.MessageLength(), args[0])
}
