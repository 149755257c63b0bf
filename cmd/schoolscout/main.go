package main

import (
	// Open day times resolve against Europe/Amsterdam even on hosts
	// without a system zone database.
	_ "time/tzdata"

	"github.com/avdberg/schoolscout/pkg/cli"
)

func main() {
	cli.Execute()
}
