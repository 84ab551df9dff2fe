package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/devnullNZ/Panorama2Terraform/pkg/cli"
	"github.com/devnullNZ/Panorama2Terraform/pkg/panxml"
	"github.com/devnullNZ/Panorama2Terraform/pkg/resolve"
	"github.com/devnullNZ/Panorama2Terraform/pkg/shell"
)

func shellCommand() *cli.Command {
	return &cli.Command{
		Name:    "shell",
		Summary: "Browse an export interactively",
		Usage:   "pan2tf shell <export.xml>",
		Examples: []cli.Example{
			{
				Description: "Explore objects with show commands and tab completion",
				Command:     "pan2tf shell panorama_export.xml",
			},
		},
		Flags: func() *pflag.FlagSet {
			return newFlagSet("shell")
		},
		Run: runShell,
	}
}

func runShell(args []string) error {
	if err := setupLogging(); err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("usage: pan2tf shell <export.xml>")
	}
	input := args[0]

	if _, err := os.Stat(input); err != nil {
		return &cli.ExitError{Code: 1, Message: fmt.Sprintf("Error: Input file '%s' not found", input)}
	}

	root, err := panxml.ParseFile(input)
	if err != nil {
		return &cli.ExitError{Code: 1, Message: fmt.Sprintf("Error: Failed to parse XML file: %v", err)}
	}

	return shell.New(input, root, resolve.Build(root)).Run()
}
