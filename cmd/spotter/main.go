package main

import (
	"os"

	"github.com/homegym/spotter/app"
	"github.com/homegym/spotter/report"
)

func run(args []string) error {
	return app.Get().Run(args)
}

func main() {
	if err := run(os.Args); err != nil {
		report.Quit(err)
	}
}
