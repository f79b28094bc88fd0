package cli

import (
	"fmt"
	"io"

	"github.com/urfave/cli/v2"

	"github.com/passgen/passgen-go/internal/clipboard"
	"github.com/passgen/passgen-go/internal/crypto"
)

// generateConfig holds the flag destinations for the default action. Each
// app instance binds its flags to its own config, so parsed values never
// leak between instances.
type generateConfig struct {
	Length           int
	Count            int
	NoLower          bool
	NoUpper          bool
	NoDigits         bool
	NoSymbols        bool
	ExcludeAmbiguous bool
	Copy             bool
}

func generateFlags(opts *generateConfig) []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:        "length",
			Aliases:     []string{"l"},
			Usage:       "password length",
			Value:       opts.Length,
			Destination: &opts.Length,
		},
		&cli.IntFlag{
			Name:        "count",
			Aliases:     []string{"c"},
			Usage:       "how many passwords to generate",
			Value:       opts.Count,
			Destination: &opts.Count,
		},
		&cli.BoolFlag{
			Name:        "no-lower",
			Usage:       "exclude lowercase letters",
			Destination: &opts.NoLower,
		},
		&cli.BoolFlag{
			Name:        "no-upper",
			Usage:       "exclude uppercase letters",
			Destination: &opts.NoUpper,
		},
		&cli.BoolFlag{
			Name:        "no-digits",
			Usage:       "exclude digits",
			Destination: &opts.NoDigits,
		},
		&cli.BoolFlag{
			Name:        "no-symbols",
			Usage:       "exclude symbols",
			Destination: &opts.NoSymbols,
		},
		&cli.BoolFlag{
			Name:        "exclude-ambiguous",
			Usage:       "exclude ambiguous characters like 'I', 'l', '1', 'O', '0'",
			Destination: &opts.ExcludeAmbiguous,
		},
		&cli.BoolFlag{
			Name:        "copy",
			Usage:       "copy the last generated password to the clipboard",
			Destination: &opts.Copy,
		},
	}
}

// runGenerate produces cfg.Count passwords and writes them to stdout, one
// per line. Status messages go to stderr so stdout stays pipeable.
// Generation failures exit with code 2; a failed clipboard copy is
// reported but does not change the exit code.
func runGenerate(cfg generateConfig, stdout, stderr io.Writer) error {
	opts := optionsFrom(cfg)

	count := cfg.Count
	if count < 1 {
		count = 1
	}

	var last string
	for i := 0; i < count; i++ {
		password, err := crypto.Generate(opts)
		if err != nil {
			return cli.Exit(fmt.Sprintf("Error: %v", err), 2)
		}
		fmt.Fprintln(stdout, password)
		last = password
	}

	if cfg.Copy {
		if err := clipboard.Copy(last); err != nil {
			fmt.Fprintf(stderr, "cannot copy to clipboard: %v\n", err)
		} else {
			fmt.Fprintln(stderr, "Last password copied to clipboard.")
		}
	}

	return nil
}

func optionsFrom(cfg generateConfig) crypto.Options {
	return crypto.Options{
		Length:           cfg.Length,
		Lowercase:        !cfg.NoLower,
		Uppercase:        !cfg.NoUpper,
		Digits:           !cfg.NoDigits,
		Symbols:          !cfg.NoSymbols,
		ExcludeAmbiguous: cfg.ExcludeAmbiguous,
	}
}
