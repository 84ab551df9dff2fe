// pan2tf converts Palo Alto Panorama XML exports into Terraform
// configuration for the PAN-OS provider.
//
// It can also split a multi-device-group export into standalone
// per-group configurations, dump the resolved object catalogs as YAML,
// and browse an export interactively.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/devnullNZ/Panorama2Terraform/pkg/cli"
	"github.com/devnullNZ/Panorama2Terraform/pkg/logging"
)

var (
	logLevel  string
	logFormat string
)

// newFlagSet returns a flag set carrying the logging flags every
// subcommand shares.
func newFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	fs.StringVar(&logFormat, "log-format", "auto", "log format (auto, text, json)")
	return fs
}

func setupLogging() error {
	return logging.Setup(os.Stderr, logLevel, logFormat)
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			if exitErr.Message != "" {
				fmt.Fprintln(os.Stderr, exitErr.Message)
			}
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	root := &cli.Command{
		Name:    "pan2tf",
		Summary: "Convert Palo Alto Panorama XML exports to Terraform",
		Description: "pan2tf converts Palo Alto Panorama XML exports into Terraform\n" +
			"configuration for the PAN-OS provider. A multi-device-group export\n" +
			"can first be split into standalone per-group configurations, each of\n" +
			"which converts like a single-firewall export.",
		Subcommands: []*cli.Command{
			convertCommand(),
			splitCommand(),
			inspectCommand(),
			shellCommand(),
		},
	}
	return root.Execute(args)
}
