package main

import (
	"os"

	"github.com/fieldops/subnet-ctl/cmd"
	"github.com/fieldops/subnet-ctl/internal/errors"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(errors.GetExitCode(err))
	}
}
