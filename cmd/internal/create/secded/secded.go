package secded

import (
	"fmt"

	"github.com/AnqurEnayet/robolab-project-g35/cmd/internal/tools"
	"github.com/AnqurEnayet/robolab-project-g35/linearblock/secded"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var SecdedRun = func(cmd *cobra.Command, args []string) {
	code, err := secded.New()
	if err != nil {
		logrus.Fatalf("Unable to create the SECDED code: %v", err)
	}

	logrus.Debugf("Derived code:\n%v", code.Block())

	err = tools.SaveLinearBlockECC(args[0], code.Block())
	if err != nil {
		fmt.Println(err)
		return
	}
	logrus.Infof("Saved (%v,%v) SECDED code to %v", code.CodewordLength(), code.MessageLength(), args[0])
}
