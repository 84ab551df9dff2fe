package render

import (
	"fmt"
	"strings"

	"github.com/devnullNZ/Panorama2Terraform/pkg/resolve"
)

func (r *Renderer) renderSecurityRules(cfg *resolve.Config) error {
	if len(cfg.SecurityRules) == 0 {
		return nil
	}
	d := newDoc("Security Policy Rules")
	for _, rule := range cfg.SecurityRules {
		b := d.resource("panos_security_rule_group", sanitizeName(rule.Name))
		setString(b, "position_keyword", "bottom")
		b.AppendNewline()
		rb := b.AppendNewBlock("rule", nil).Body()
		setString(rb, "name", rule.Name)
		setOptional(rb, "description", rule.Description)
		setList(rb, "source_zones", rule.SourceZones)
		setList(rb, "source_addresses", rule.SourceAddresses)
		setList(rb, "destination_zones", rule.DestinationZones)
		setList(rb, "destination_addresses", rule.DestinationAddresses)
		setList(rb, "applications", rule.Applications)
		setList(rb, "services", rule.Services)
		setString(rb, "action", rule.Action)
		if rule.LogStart {
			setBool(rb, "log_start", true)
		}
		if rule.LogEnd {
			setBool(rb, "log_end", true)
		}
		if rule.Disabled {
			setBool(rb, "disabled", true)
		}
	}
	return r.write("security_rules.tf", d.bytes())
}

func (r *Renderer) renderNATRules(cfg *resolve.Config) error {
	if len(cfg.NATRules) == 0 {
		return nil
	}
	d := newDoc("NAT Policy Rules")
	for _, rule := range cfg.NATRules {
		b := d.resource("panos_nat_rule_group", sanitizeName(rule.Name))
		setString(b, "position_keyword", "bottom")
		b.AppendNewline()
		rb := b.AppendNewBlock("rule", nil).Body()
		setString(rb, "name", rule.Name)
		setOptional(rb, "description", rule.Description)

		op := rb.AppendNewBlock("original_packet", nil).Body()
		setList(op, "source_zones", rule.SourceZones)
		setOptional(op, "destination_zone", rule.DestinationZone)
		setList(op, "source_addresses", rule.SourceAddresses)
		setList(op, "destination_addresses", rule.DestinationAddresses)
		setOptional(op, "service", rule.Service)
		rb.AppendNewline()

		if rule.SourceTranslationType != "" {
			st := rb.AppendNewBlock("source_translation", nil).Body()
			setString(st, "type", rule.SourceTranslationType)
			setList(st, "translated_addresses", rule.SourceTranslationAddresses)
			rb.AppendNewline()
		}
		if rule.DestinationTranslationAddress != "" {
			dt := rb.AppendNewBlock("destination_translation", nil).Body()
			setString(dt, "translated_address", rule.DestinationTranslationAddress)
			setOptional(dt, "translated_port", rule.DestinationTranslationPort)
			rb.AppendNewline()
		}
		if rule.Disabled {
			setBool(rb, "disabled", true)
		}
	}
	return r.write("nat_rules.tf", d.bytes())
}

// renderDecryptionRules writes an inventory only: decryption rules carry
// SSL/TLS settings that have to be rebuilt by hand on the target.
func (r *Renderer) renderDecryptionRules(cfg *resolve.Config) error {
	if len(cfg.DecryptionRules) == 0 {
		return nil
	}
	var b strings.Builder
	b.WriteString("# Decryption Rules\n")
	b.WriteString("# Note: Decryption rules require detailed SSL/TLS configuration\n")
	b.WriteString("# Manual Terraform configuration is required\n\n")
	for _, rule := range cfg.DecryptionRules {
		fmt.Fprintf(&b, "# Rule: %s\n", rule.Name)
		fmt.Fprintf(&b, "#   Type: %s\n", orDefault(rule.Kind, "unknown"))
		fmt.Fprintf(&b, "#   Action: %s\n", orDefault(rule.Action, "unknown"))
		fmt.Fprintf(&b, "#   Profile: %s\n", orDefault(rule.Profile, "none"))
		if rule.Description != "" {
			fmt.Fprintf(&b, "#   Description: %s\n", rule.Description)
		}
		b.WriteString("\n")
	}
	return r.write("decryption_rules.tf", []byte(b.String()))
}

func (r *Renderer) renderPBFRules(cfg *resolve.Config) error {
	if len(cfg.PBFRules) == 0 {
		return nil
	}
	var b strings.Builder
	b.WriteString("# Policy-Based Forwarding Rules\n")
	b.WriteString("# Note: PBF rules require careful configuration with virtual routers\n")
	b.WriteString("# Manual Terraform configuration is required\n\n")
	for _, rule := range cfg.PBFRules {
		fmt.Fprintf(&b, "# Rule: %s\n", rule.Name)
		if rule.Action != nil {
			if rule.Action.Kind == "forward" {
				fmt.Fprintf(&b, "#   Action: Forward to %s via %s\n",
					rule.Action.NexthopIP, rule.Action.EgressInterface)
			} else {
				fmt.Fprintf(&b, "#   Action: %s\n", rule.Action.Kind)
			}
		}
		if rule.Description != "" {
			fmt.Fprintf(&b, "#   Description: %s\n", rule.Description)
		}
		b.WriteString("\n")
	}
	return r.write("pbf_rules.tf", []byte(b.String()))
}

func (r *Renderer) renderAppOverrideRules(cfg *resolve.Config) error {
	if len(cfg.AppOverrideRules) == 0 {
		return nil
	}
	var b strings.Builder
	b.WriteString("# Application Override Rules\n")
	b.WriteString("# Note: Application override rules require manual configuration\n\n")
	for _, rule := range cfg.AppOverrideRules {
		fmt.Fprintf(&b, "# Rule: %s\n", rule.Name)
		fmt.Fprintf(&b, "#   Protocol: %s\n", orDefault(rule.Protocol, "unknown"))
		fmt.Fprintf(&b, "#   Port: %s\n", orDefault(rule.Port, "any"))
		fmt.Fprintf(&b, "#   Application: %s\n", orDefault(rule.Application, "unknown"))
		b.WriteString("\n")
	}
	return r.write("application_override_rules.tf", []byte(b.String()))
}
