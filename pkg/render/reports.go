package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/devnullNZ/Panorama2Terraform/pkg/resolve"
)

var (
	reportBar = strings.Repeat("=", 80)
	reportSub = strings.Repeat("-", 80)
)

// renderInterfaceReport writes the plain-text interface inventory used
// for planning interface mapping onto a new platform.
func (r *Renderer) renderInterfaceReport(cfg *resolve.Config) error {
	if len(cfg.Interfaces) == 0 {
		return nil
	}

	var b strings.Builder
	b.WriteString(reportBar + "\n")
	b.WriteString("INTERFACE AND IP ADDRESS MIGRATION REPORT\n")
	b.WriteString("Generated for Firewall Migration Planning\n")
	b.WriteString(reportBar + "\n\n")

	b.WriteString("This report lists all interfaces and their assigned IP addresses from the\n")
	b.WriteString("source configuration. Use this to plan interface mapping for the new platform.\n\n")

	b.WriteString(reportBar + "\n")
	b.WriteString("INTERFACE SUMMARY\n")
	b.WriteString(reportBar + "\n\n")

	byType := make(map[string][]resolve.Interface)
	for _, iface := range cfg.Interfaces {
		byType[iface.Type] = append(byType[iface.Type], iface)
	}
	types := make([]string, 0, len(byType))
	for t := range byType {
		types = append(types, t)
	}
	sort.Strings(types)

	for _, t := range types {
		list := append([]resolve.Interface(nil), byType[t]...)
		sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })

		fmt.Fprintf(&b, "\n%s INTERFACES (%d)\n", strings.ToUpper(t), len(list))
		b.WriteString(reportSub + "\n")

		for _, iface := range list {
			fmt.Fprintf(&b, "\nInterface: %s\n", iface.Name)
			fmt.Fprintf(&b, "  Type: %s\n", iface.Type)
			fmt.Fprintf(&b, "  Mode: %s\n", iface.Mode)
			if iface.Comment != "" {
				fmt.Fprintf(&b, "  Comment: %s\n", iface.Comment)
			}
			if len(iface.IPAddresses) > 0 {
				b.WriteString("  IPv4 Addresses:\n")
				for _, ip := range iface.IPAddresses {
					fmt.Fprintf(&b, "    - %s\n", ip)
				}
			}
			if len(iface.IPv6Addresses) > 0 {
				b.WriteString("  IPv6 Addresses:\n")
				for _, ip := range iface.IPv6Addresses {
					fmt.Fprintf(&b, "    - %s\n", ip)
				}
			}
			if iface.ManagementProfile != "" {
				fmt.Fprintf(&b, "  Management Profile: %s\n", iface.ManagementProfile)
			}
			if iface.VLANTag != "" {
				fmt.Fprintf(&b, "  VLAN Tag: %s\n", iface.VLANTag)
			}
		}
	}

	b.WriteString("\n" + reportBar + "\n")
	b.WriteString("MIGRATION CHECKLIST\n")
	b.WriteString(reportBar + "\n\n")

	b.WriteString("1. Review interface naming differences between platforms\n")
	b.WriteString("2. Map source interfaces to target platform interfaces\n")
	b.WriteString("3. Verify IP addressing scheme is compatible\n")
	b.WriteString("4. Check for interface-specific features that may not translate\n")
	b.WriteString("5. Update zone and virtual router configurations accordingly\n")
	b.WriteString("6. Test connectivity after migration\n\n")

	b.WriteString(reportBar + "\n")
	b.WriteString("PLATFORM MIGRATION NOTES\n")
	b.WriteString(reportBar + "\n\n")

	b.WriteString("Common Interface Naming Patterns:\n\n")
	b.WriteString("  PA-200/500 Series:    ethernet1/1 - ethernet1/8\n")
	b.WriteString("  PA-800 Series:        ethernet1/1 - ethernet1/8\n")
	b.WriteString("  PA-3000 Series:       ethernet1/1 - ethernet1/20+\n")
	b.WriteString("  PA-5000 Series:       ethernet1/1 - ethernet1/24+\n")
	b.WriteString("  PA-7000 Series:       ethernet1/1 - ethernet1/48+ (per slot)\n")
	b.WriteString("  VM-Series:            ethernet1/1 - ethernet1/X (configurable)\n\n")

	b.WriteString("Remember:\n")
	b.WriteString("  - Management interface naming varies by platform\n")
	b.WriteString("  - Some platforms support additional interface types (QSFP, SFP+, etc.)\n")
	b.WriteString("  - Aggregate interfaces may have different limitations\n")
	b.WriteString("  - Verify transceiver compatibility for the new platform\n\n")

	return r.write("INTERFACE_MIGRATION_REPORT.txt", []byte(b.String()))
}

// renderVPNReport writes the key-management companion to vpn.tf.
func (r *Renderer) renderVPNReport(cfg *resolve.Config) error {
	if len(cfg.IKEGateways) == 0 && len(cfg.IPsecTunnels) == 0 {
		return nil
	}

	var b strings.Builder
	b.WriteString(reportBar + "\n")
	b.WriteString("VPN CONFIGURATION MIGRATION REPORT\n")
	b.WriteString(reportBar + "\n\n")

	b.WriteString("⚠️  CRITICAL: PRE-SHARED KEY MANAGEMENT\n\n")
	b.WriteString("Pre-shared keys are NOT included in Panorama exports for security reasons.\n")
	fmt.Fprintf(&b, "All VPN configurations use placeholder keys: %s\n\n", resolve.PreSharedKeyPlaceholder)
	b.WriteString("REQUIRED ACTIONS:\n")
	b.WriteString("1. Retrieve actual pre-shared keys from your secure key management system\n")
	b.WriteString("2. Update vpn.tf file with real keys before applying\n")
	b.WriteString("3. Consider using Terraform variables or secrets management\n")
	b.WriteString("4. Never commit actual keys to version control\n\n")

	b.WriteString(reportBar + "\n")
	b.WriteString("IKE GATEWAYS\n")
	b.WriteString(reportBar + "\n\n")

	for _, gw := range cfg.IKEGateways {
		fmt.Fprintf(&b, "Gateway: %s\n", gw.Name)
		fmt.Fprintf(&b, "  Version: %s\n", gw.Version)
		fmt.Fprintf(&b, "  Peer Address: %s\n", orDefault(gw.PeerAddress, "N/A"))
		local := gw.LocalAddress
		if local == "" {
			local = orDefault(gw.LocalAddressInterface, "N/A")
		}
		fmt.Fprintf(&b, "  Local Address: %s\n", local)
		fmt.Fprintf(&b, "  Auth Type: %s\n", gw.AuthType)
		if gw.AuthType == "pre-shared-key" {
			b.WriteString("  ⚠️  Pre-Shared Key: ***MUST BE UPDATED***\n")
			fmt.Fprintf(&b, "     Current placeholder: %s\n", resolve.PreSharedKeyPlaceholder)
			b.WriteString("     Action: Replace with actual key in vpn.tf\n")
		}
		fmt.Fprintf(&b, "  IKE Crypto Profile: %s\n", orDefault(gw.IKECryptoProfile, "N/A"))
		b.WriteString("\n")
	}

	b.WriteString(reportBar + "\n")
	b.WriteString("IPSEC TUNNELS\n")
	b.WriteString(reportBar + "\n\n")

	for _, tunnel := range cfg.IPsecTunnels {
		fmt.Fprintf(&b, "Tunnel: %s\n", tunnel.Name)
		fmt.Fprintf(&b, "  Type: %s\n", orDefault(tunnel.Kind, "auto-key"))
		fmt.Fprintf(&b, "  Tunnel Interface: %s\n", orDefault(tunnel.TunnelInterface, "N/A"))
		fmt.Fprintf(&b, "  IKE Gateway: %s\n", orDefault(tunnel.IKEGateway, "N/A"))
		fmt.Fprintf(&b, "  IPsec Crypto Profile: %s\n", orDefault(tunnel.IPsecCryptoProfile, "N/A"))
		if len(tunnel.ProxyIDs) > 0 {
			b.WriteString("  Proxy IDs:\n")
			for _, proxy := range tunnel.ProxyIDs {
				fmt.Fprintf(&b, "    - %s: %s <-> %s\n",
					proxy.Name, orDefault(proxy.Local, "any"), orDefault(proxy.Remote, "any"))
			}
		}
		b.WriteString("\n")
	}

	b.WriteString(reportBar + "\n")
	b.WriteString("KEY MANAGEMENT BEST PRACTICES\n")
	b.WriteString(reportBar + "\n\n")

	sub := strings.Repeat("-", 40)
	b.WriteString("Option 1: Terraform Variables (Recommended)\n")
	b.WriteString(sub + "\n")
	b.WriteString("Create terraform.tfvars (DO NOT COMMIT):\n")
	b.WriteString("  vpn_psk_gateway1 = \"actual-pre-shared-key-here\"\n")
	b.WriteString("  vpn_psk_gateway2 = \"actual-pre-shared-key-here\"\n\n")

	b.WriteString("Update vpn.tf:\n")
	b.WriteString("  pre_shared_key = var.vpn_psk_gateway1\n\n")

	b.WriteString("Option 2: Environment Variables\n")
	b.WriteString(sub + "\n")
	b.WriteString("Set environment variables:\n")
	b.WriteString("  export TF_VAR_vpn_psk_gateway1=\"actual-key\"\n\n")

	b.WriteString("Option 3: Secrets Management\n")
	b.WriteString(sub + "\n")
	b.WriteString("Use HashiCorp Vault, AWS Secrets Manager, or similar:\n")
	b.WriteString("  data \"vault_generic_secret\" \"vpn_keys\" {\n")
	b.WriteString("    path = \"secret/vpn-keys\"\n")
	b.WriteString("  }\n\n")

	b.WriteString("Option 4: Manual Entry (Least Secure)\n")
	b.WriteString(sub + "\n")
	b.WriteString("Directly in vpn.tf (NOT RECOMMENDED):\n")
	b.WriteString("  pre_shared_key = \"actual-key\"  # DO NOT COMMIT TO GIT\n\n")

	b.WriteString(reportBar + "\n")
	b.WriteString("MIGRATION CHECKLIST\n")
	b.WriteString(reportBar + "\n\n")

	b.WriteString("[ ] Retrieve all VPN pre-shared keys from secure storage\n")
	b.WriteString("[ ] Update vpn.tf with actual keys (use variables/secrets)\n")
	b.WriteString("[ ] Verify IKE gateway peer addresses\n")
	b.WriteString("[ ] Confirm tunnel interface assignments\n")
	b.WriteString("[ ] Check proxy ID configurations\n")
	b.WriteString("[ ] Validate crypto profile settings\n")
	b.WriteString("[ ] Test VPN connectivity in lab\n")
	b.WriteString("[ ] Verify routing through tunnels\n")
	b.WriteString("[ ] Monitor Phase 1 and Phase 2 negotiations\n")
	b.WriteString("[ ] Ensure .gitignore includes terraform.tfvars\n\n")

	b.WriteString(reportBar + "\n")
	b.WriteString("IMPORTANT SECURITY NOTES\n")
	b.WriteString(reportBar + "\n\n")

	b.WriteString("1. Never commit pre-shared keys to version control\n")
	b.WriteString("2. Use .gitignore to exclude terraform.tfvars and *.auto.tfvars\n")
	b.WriteString("3. Rotate keys regularly according to security policy\n")
	b.WriteString("4. Use strong, unique keys for each VPN tunnel\n")
	b.WriteString("5. Consider using certificate-based authentication\n")
	b.WriteString("6. Implement proper key escrow and recovery procedures\n")
	b.WriteString("7. Audit key access and usage\n\n")

	return r.write("VPN_MIGRATION_REPORT.txt", []byte(b.String()))
}

// readmeLines is kept as a slice because markdown code fences rule out a
// raw string literal.
var readmeLines = []string{
	"# Palo Alto Terraform Configuration",
	"",
	"This directory contains Terraform configuration files generated from Palo Alto Panorama export.",
	"",
	"## Prerequisites",
	"",
	"1. Install Terraform (>= 1.0)",
	"2. Install the Palo Alto Networks PAN-OS provider",
	"",
	"## Configuration",
	"",
	"1. Set up authentication variables in `terraform.tfvars`:",
	"",
	"```hcl",
	`panos_hostname = "your-panorama-hostname-or-ip"`,
	`panos_username = "admin"`,
	`panos_password = "your-password"`,
	`device_group   = "your-device-group"`,
	"```",
	"",
	"Or use environment variables:",
	"```bash",
	`export PANOS_HOSTNAME="your-panorama-hostname-or-ip"`,
	`export PANOS_USERNAME="admin"`,
	`export PANOS_PASSWORD="your-password"`,
	"```",
	"",
	"2. Initialize Terraform:",
	"```bash",
	"terraform init",
	"```",
	"",
	"3. Review the plan:",
	"```bash",
	"terraform plan",
	"```",
	"",
	"4. Apply the configuration:",
	"```bash",
	"terraform apply",
	"```",
	"",
	"## File Structure",
	"",
	"- `provider.tf` - Provider configuration",
	"- `variables.tf` - Variable definitions",
	"- `address_objects.tf` - Address object configurations",
	"- `address_groups.tf` - Address group configurations",
	"- `service_objects.tf` - Service object configurations",
	"- `service_groups.tf` - Service group configurations",
	"- `security_rules.tf` - Security policy rules",
	"- `nat_rules.tf` - NAT policy rules",
	"",
	"## Important Notes",
	"",
	"- Review all configurations before applying",
	"- Test in a non-production environment first",
	"- Back up your existing configuration",
	"- Adjust rule ordering as needed",
	"- Some features may require manual adjustment",
	"",
	"## Provider Documentation",
	"",
	"For more information on the PAN-OS Terraform provider:",
	"https://registry.terraform.io/providers/PaloAltoNetworks/panos/latest/docs",
}

func (r *Renderer) renderReadme(cfg *resolve.Config) error {
	return r.write("README.md", []byte(strings.Join(readmeLines, "\n")+"\n"))
}
