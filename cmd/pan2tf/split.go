package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/devnullNZ/Panorama2Terraform/pkg/cli"
	"github.com/devnullNZ/Panorama2Terraform/pkg/panxml"
	"github.com/devnullNZ/Panorama2Terraform/pkg/split"
)

var splitOutputDir string

func splitCommand() *cli.Command {
	return &cli.Command{
		Name:        "split",
		Summary:     "Split a Panorama export into per-device-group configurations",
		Description: "Splits a Panorama export into separate configurations per device group.\nUseful for multi-HA-pair to multi-virtual-router migrations.",
		Usage:       "pan2tf split <export.xml> [flags]",
		Examples: []cli.Example{
			{
				Description: "Split an export into split_configs next to the input",
				Command:     "pan2tf split panorama_export.xml",
			},
			{
				Description: "Specify a custom output directory",
				Command:     "pan2tf split panorama_export.xml --output-dir ./device-groups",
			},
			{
				Description: "Then convert each device group separately",
				Command:     "pan2tf convert device-groups/DG-Internet.xml --output-dir internet-tf",
			},
		},
		Flags: func() *pflag.FlagSet {
			fs := newFlagSet("split")
			fs.StringVarP(&splitOutputDir, "output-dir", "o", "",
				"output directory for split configs")
			return fs
		},
		Run: runSplit,
	}
}

func runSplit(args []string) error {
	if err := setupLogging(); err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("usage: pan2tf split <export.xml> [flags]")
	}
	input := args[0]

	if _, err := os.Stat(input); err != nil {
		return &cli.ExitError{Code: 1, Message: fmt.Sprintf("Error: Input file not found: %s", input)}
	}

	root, err := panxml.ParseFile(input)
	if err != nil {
		return &cli.ExitError{Code: 1, Message: fmt.Sprintf("Error: Failed to parse XML file: %v", err)}
	}

	groups := split.Groups(root)
	if len(groups) == 0 {
		return &cli.ExitError{
			Code: 1,
			Message: "No device groups found in Panorama configuration.\n" +
				"This may be a single firewall export, not a Panorama export.",
		}
	}

	fmt.Printf("\nFound %d device groups:\n", len(groups))
	for _, g := range groups {
		fmt.Printf("  - %s\n", g)
	}

	outDir := splitOutputDir
	if outDir == "" {
		outDir = split.DefaultOutputDir(input)
	}

	fmt.Printf("\nSplitting configurations into: %s\n", outDir)

	for _, g := range groups {
		fmt.Printf("\nProcessing device group: %s\n", g)

		bundle, err := split.Extract(root, g)
		if err != nil {
			fmt.Printf("  ⚠ Warning: Could not extract config for %s\n", g)
			slog.Warn("device group extraction failed", "group", g, "error", err)
			continue
		}

		path, err := split.Write(outDir, bundle)
		if err != nil {
			return &cli.ExitError{Code: 1, Message: fmt.Sprintf("Error: %v", err)}
		}
		fmt.Printf("  ✓ Saved to: %s\n", path)
	}

	fmt.Printf("\n✓ Successfully split %d device groups\n", len(groups))
	fmt.Println("\nNext steps:")
	fmt.Printf("  1. cd %s\n", outDir)
	fmt.Println("  2. Run pan2tf convert on each XML file:")
	fmt.Println("     pan2tf convert <device-group>.xml --output-dir <device-group>-tf")

	return nil
}
