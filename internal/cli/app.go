package cli

import (
	"github.com/urfave/cli/v2"
)

// New assembles the passgen command-line application. The default action
// generates passwords; `serve` runs the HTTP API.
func New() *cli.App {
	opts := &generateConfig{Length: 16, Count: 1}

	return &cli.App{
		Name:  "passgen",
		Usage: "generate cryptographically strong random passwords",
		Flags: generateFlags(opts),
		Action: func(c *cli.Context) error {
			return runGenerate(*opts, c.App.Writer, c.App.ErrWriter)
		},
		Commands: []*cli.Command{
			newServeCommand(),
		},
	}
}
