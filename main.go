package main

import "github.com/AnqurEnayet/robolab-project-g35/cmd"

func main() {
	cmd.Execute()
}
