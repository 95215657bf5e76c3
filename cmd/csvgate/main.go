package main

import (
	"fmt"
	"os"

	"github.com/csvgate/csvgate/internal/adapters/inbound/cli"
	"github.com/csvgate/csvgate/internal/domain"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(domain.ExitCode(err))
	}
}
