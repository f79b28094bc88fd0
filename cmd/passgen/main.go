package main

import (
	"fmt"
	"os"

	"github.com/passgen/passgen-go/internal/cli"
)

func main() {
	if err := cli.New().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
