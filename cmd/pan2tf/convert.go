package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/devnullNZ/Panorama2Terraform/pkg/cli"
	"github.com/devnullNZ/Panorama2Terraform/pkg/panxml"
	"github.com/devnullNZ/Panorama2Terraform/pkg/render"
	"github.com/devnullNZ/Panorama2Terraform/pkg/resolve"
)

var convertOutputDir string

func convertCommand() *cli.Command {
	return &cli.Command{
		Name:    "convert",
		Summary: "Generate Terraform configuration from a Panorama export",
		Usage:   "pan2tf convert <export.xml> [flags]",
		Examples: []cli.Example{
			{
				Description: "Convert an export into ./terraform_output",
				Command:     "pan2tf convert panorama_export.xml",
			},
			{
				Description: "Convert into a custom directory",
				Command:     "pan2tf convert panorama_export.xml --output-dir dmz-tf",
			},
		},
		Flags: func() *pflag.FlagSet {
			fs := newFlagSet("convert")
			fs.StringVar(&convertOutputDir, "output-dir", "terraform_output",
				"output directory for Terraform files")
			return fs
		},
		Run: runConvert,
	}
}

func runConvert(args []string) error {
	if err := setupLogging(); err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("usage: pan2tf convert <export.xml> [flags]")
	}
	input := args[0]

	if _, err := os.Stat(input); err != nil {
		return &cli.ExitError{Code: 1, Message: fmt.Sprintf("Error: Input file '%s' not found", input)}
	}

	fmt.Printf("Parsing Panorama configuration from %s...\n", input)
	root, err := panxml.ParseFile(input)
	if err != nil {
		return &cli.ExitError{Code: 1, Message: fmt.Sprintf("Error: Failed to parse XML file: %v", err)}
	}

	fmt.Println("Extracting configuration elements...")
	cfg := resolve.Build(root)
	slog.Debug("export resolved", "file", input)

	printSummary(cfg)

	fmt.Printf("\nGenerating Terraform configuration in %s...\n", convertOutputDir)
	if err := render.New(convertOutputDir).RenderAll(cfg); err != nil {
		return &cli.ExitError{Code: 1, Message: fmt.Sprintf("Error: %v", err)}
	}

	hasVPN := len(cfg.IKEGateways) > 0 || len(cfg.IPsecTunnels) > 0

	fmt.Println("\n✓ Successfully generated Terraform configuration!")
	fmt.Println("\n📄 Generated Migration Reports:")
	fmt.Println("  - INTERFACE_MIGRATION_REPORT.txt (Interface and IP inventory)")
	if hasVPN {
		fmt.Println("  - VPN_MIGRATION_REPORT.txt ⚠️  (VPN config with key management instructions)")
	}
	fmt.Println("\nNext steps:")
	fmt.Printf("  1. cd %s\n", convertOutputDir)
	fmt.Println("  2. Review INTERFACE_MIGRATION_REPORT.txt for interface mapping")
	if hasVPN {
		fmt.Println("  3. ⚠️  Review VPN_MIGRATION_REPORT.txt and update pre-shared keys!")
	}
	fmt.Println("  4. Review the generated .tf files")
	fmt.Println("  5. Create terraform.tfvars with your credentials")
	if hasVPN {
		fmt.Println("  6. ⚠️  Add VPN pre-shared keys to terraform.tfvars (DO NOT COMMIT)")
	}
	fmt.Println("  7. Run: terraform init")
	fmt.Println("  8. Run: terraform plan")
	fmt.Println("  9. Run: terraform apply")

	return nil
}

// printSummary reports the per-type object counts. Router lines split
// into legacy and advanced-routing counts when the export carries
// logical routers.
func printSummary(cfg *resolve.Config) {
	fmt.Println("\nFound:")
	fmt.Printf("  - %d device groups\n", len(cfg.DeviceGroups))
	fmt.Printf("  - %d tags\n", len(cfg.Tags))
	fmt.Printf("  - %d regions\n", len(cfg.Regions))
	fmt.Printf("  - %d custom URL categories\n", len(cfg.CustomURLCategories))
	fmt.Printf("  - %d application groups\n", len(cfg.ApplicationGroups))
	fmt.Printf("  - %d application filters\n", len(cfg.ApplicationFilters))
	fmt.Printf("  - %d external lists\n", len(cfg.ExternalLists))
	fmt.Printf("  - %d schedules\n", len(cfg.Schedules))
	fmt.Printf("  - %d address objects\n", len(cfg.Addresses))
	fmt.Printf("  - %d address groups\n", len(cfg.AddressGroups))
	fmt.Printf("  - %d service objects\n", len(cfg.Services))
	fmt.Printf("  - %d service groups\n", len(cfg.ServiceGroups))
	fmt.Printf("  - %d security rules\n", len(cfg.SecurityRules))
	fmt.Printf("  - %d NAT rules\n", len(cfg.NATRules))
	fmt.Printf("  - %d decryption rules\n", len(cfg.DecryptionRules))
	fmt.Printf("  - %d policy-based forwarding rules\n", len(cfg.PBFRules))
	fmt.Printf("  - %d application override rules\n", len(cfg.AppOverrideRules))
	fmt.Printf("  - %d zones\n", len(cfg.Zones))
	fmt.Printf("  - %d interfaces\n", len(cfg.Interfaces))

	virtual, logical := 0, 0
	for _, r := range cfg.Routers {
		if r.Kind == resolve.RouterLogical {
			logical++
		} else {
			virtual++
		}
	}
	if logical > 0 {
		fmt.Printf("  - %d virtual routers (legacy)\n", virtual)
		fmt.Printf("  - %d logical routers (advanced routing)\n", logical)
		fmt.Printf("  - %d total routers\n", len(cfg.Routers))
	} else {
		fmt.Printf("  - %d virtual routers\n", virtual)
	}

	sp := cfg.SecurityProfiles
	profileCount := len(sp.Antivirus) + len(sp.Vulnerability) + len(sp.AntiSpyware) +
		len(sp.URLFiltering) + len(sp.FileBlocking) + len(sp.WildfireAnalysis)
	fmt.Printf("  - %d security profiles\n", profileCount)
	fmt.Printf("  - %d security profile groups\n", len(cfg.ProfileGroups))
	fmt.Printf("  - %d zone protection profiles\n", len(cfg.ZoneProtectionProfiles))
	fmt.Printf("  - %d log forwarding profiles\n", len(cfg.LogForwardingProfiles))
	fmt.Printf("  - %d QoS profiles\n", len(cfg.QoSProfiles))
	fmt.Printf("  - %d tunnel monitor profiles\n", len(cfg.TunnelMonitorProfiles))

	if cfg.BGP != nil {
		fmt.Printf("  - BGP enabled with %d peers\n", len(cfg.BGP.Peers))
	}
	if cfg.OSPF != nil {
		fmt.Printf("  - OSPF enabled with %d areas\n", len(cfg.OSPF.Areas))
	}

	fmt.Printf("  - %d IKE gateways\n", len(cfg.IKEGateways))
	fmt.Printf("  - %d IPsec tunnels\n", len(cfg.IPsecTunnels))
}
