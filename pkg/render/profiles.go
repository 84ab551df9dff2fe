package render

import (
	"fmt"
	"strings"

	"github.com/devnullNZ/Panorama2Terraform/pkg/resolve"
)

// renderSecurityProfiles writes an inventory of the six profile families.
// Full profile bodies do not survive the translation into provider
// resources, so each profile is listed with the resource address a
// manual import would use.
func (r *Renderer) renderSecurityProfiles(cfg *resolve.Config) error {
	p := cfg.SecurityProfiles
	if len(p.Antivirus) == 0 && len(p.Vulnerability) == 0 && len(p.AntiSpyware) == 0 &&
		len(p.URLFiltering) == 0 && len(p.FileBlocking) == 0 && len(p.WildfireAnalysis) == 0 {
		return nil
	}

	var b strings.Builder
	b.WriteString("# Security Profiles\n")
	b.WriteString("# Note: These are simplified profile references.\n")
	b.WriteString("# Detailed profile rules must be configured manually or imported.\n\n")

	families := []struct {
		header   string
		resource string
		profiles []resolve.Profile
	}{
		{"Antivirus Profiles", "panos_antivirus_security_profile", p.Antivirus},
		{"Vulnerability Protection Profiles", "panos_vulnerability_security_profile", p.Vulnerability},
		{"Anti-Spyware Profiles", "panos_anti_spyware_security_profile", p.AntiSpyware},
		{"URL Filtering Profiles", "panos_url_filtering_security_profile", p.URLFiltering},
		{"File Blocking Profiles", "panos_file_blocking_security_profile", p.FileBlocking},
		{"WildFire Analysis Profiles", "panos_wildfire_analysis_security_profile", p.WildfireAnalysis},
	}
	for _, fam := range families {
		if len(fam.profiles) == 0 {
			continue
		}
		fmt.Fprintf(&b, "# %s\n", fam.header)
		for _, prof := range fam.profiles {
			fmt.Fprintf(&b, "# Profile: %s\n", prof.Name)
			if prof.Description != "" {
				fmt.Fprintf(&b, "# Description: %s\n", prof.Description)
			}
			fmt.Fprintf(&b, "# Resource: %s.%s\n\n", fam.resource, sanitizeName(prof.Name))
		}
	}
	return r.write("security_profiles.tf", []byte(b.String()))
}

func (r *Renderer) renderProfileGroups(cfg *resolve.Config) error {
	if len(cfg.ProfileGroups) == 0 {
		return nil
	}
	d := newDoc("Security Profile Groups")
	for _, grp := range cfg.ProfileGroups {
		b := d.resource("panos_security_profile_group", sanitizeName(grp.Name))
		setString(b, "name", grp.Name)
		// The group resource takes one profile per family.
		if len(grp.Virus) > 0 {
			setString(b, "virus", grp.Virus[0])
		}
		if len(grp.Spyware) > 0 {
			setString(b, "spyware", grp.Spyware[0])
		}
		if len(grp.Vulnerability) > 0 {
			setString(b, "vulnerability", grp.Vulnerability[0])
		}
		if len(grp.URLFiltering) > 0 {
			setString(b, "url_filtering", grp.URLFiltering[0])
		}
		if len(grp.FileBlocking) > 0 {
			setString(b, "file_blocking", grp.FileBlocking[0])
		}
		if len(grp.WildfireAnalysis) > 0 {
			setString(b, "wildfire_analysis", grp.WildfireAnalysis[0])
		}
	}
	return r.write("security_profile_groups.tf", d.bytes())
}

func (r *Renderer) renderZoneProtectionProfiles(cfg *resolve.Config) error {
	if len(cfg.ZoneProtectionProfiles) == 0 {
		return nil
	}
	var b strings.Builder
	b.WriteString("# Zone Protection Profiles\n")
	b.WriteString("# Note: Zone protection profiles require detailed configuration\n")
	b.WriteString("# Manual Terraform configuration is required\n\n")
	for _, prof := range cfg.ZoneProtectionProfiles {
		fmt.Fprintf(&b, "# Profile: %s\n", prof.Name)
		if prof.Description != "" {
			fmt.Fprintf(&b, "#   Description: %s\n", prof.Description)
		}
		b.WriteString("\n")
	}
	return r.write("zone_protection_profiles.tf", []byte(b.String()))
}

func (r *Renderer) renderLogForwardingProfiles(cfg *resolve.Config) error {
	if len(cfg.LogForwardingProfiles) == 0 {
		return nil
	}
	var b strings.Builder
	b.WriteString("# Log Forwarding Profiles\n")
	b.WriteString("# Note: Log forwarding profiles require syslog/email configuration\n")
	b.WriteString("# Manual Terraform configuration is required\n\n")
	for _, prof := range cfg.LogForwardingProfiles {
		fmt.Fprintf(&b, "# Profile: %s\n", prof.Name)
		if prof.Description != "" {
			fmt.Fprintf(&b, "#   Description: %s\n", prof.Description)
		}
		b.WriteString("\n")
	}
	return r.write("log_settings.tf", []byte(b.String()))
}

func (r *Renderer) renderQoSProfiles(cfg *resolve.Config) error {
	if len(cfg.QoSProfiles) == 0 {
		return nil
	}
	var b strings.Builder
	b.WriteString("# QoS Profiles\n")
	b.WriteString("# Note: QoS profiles require bandwidth and class configuration\n")
	b.WriteString("# Manual Terraform configuration is required\n\n")
	for _, prof := range cfg.QoSProfiles {
		fmt.Fprintf(&b, "# Profile: %s\n", prof.Name)
		if len(prof.Classes) > 0 {
			names := make([]string, len(prof.Classes))
			for i, c := range prof.Classes {
				names[i] = c.Name
			}
			fmt.Fprintf(&b, "#   Classes: %s\n", strings.Join(names, ", "))
		}
		b.WriteString("\n")
	}
	return r.write("qos_profiles.tf", []byte(b.String()))
}

func (r *Renderer) renderTunnelMonitorProfiles(cfg *resolve.Config) error {
	if len(cfg.TunnelMonitorProfiles) == 0 {
		return nil
	}
	var b strings.Builder
	b.WriteString("# Tunnel Monitor Profiles\n")
	b.WriteString("# Note: Tunnel monitor profiles require destination IP configuration\n")
	b.WriteString("# Manual Terraform configuration is required\n\n")
	for _, prof := range cfg.TunnelMonitorProfiles {
		fmt.Fprintf(&b, "# Profile: %s\n", prof.Name)
		fmt.Fprintf(&b, "#   Interval: %s\n", orDefault(prof.Interval, "unknown"))
		fmt.Fprintf(&b, "#   Threshold: %s\n", orDefault(prof.Threshold, "unknown"))
		fmt.Fprintf(&b, "#   Action: %s\n", orDefault(prof.Action, "unknown"))
		b.WriteString("\n")
	}
	return r.write("tunnel_monitor_profiles.tf", []byte(b.String()))
}
