package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/devnullNZ/Panorama2Terraform/pkg/cli"
	"github.com/devnullNZ/Panorama2Terraform/pkg/panxml"
	"github.com/devnullNZ/Panorama2Terraform/pkg/resolve"
)

var inspectType string

func inspectCommand() *cli.Command {
	return &cli.Command{
		Name:    "inspect",
		Summary: "Dump resolved configuration as YAML",
		Usage:   "pan2tf inspect <export.xml> [flags]",
		Examples: []cli.Example{
			{
				Description: "Summarize the export's object counts",
				Command:     "pan2tf inspect panorama_export.xml",
			},
			{
				Description: "Dump one catalog",
				Command:     "pan2tf inspect panorama_export.xml --type addresses",
			},
		},
		Flags: func() *pflag.FlagSet {
			fs := newFlagSet("inspect")
			fs.StringVar(&inspectType, "type", "", "dump one catalog instead of the summary")
			return fs
		},
		Run: runInspect,
	}
}

// Catalog accessors keyed by the field names of the summary/YAML output.
var catalogs = map[string]func(*resolve.Config) any{
	"device_groups":              func(c *resolve.Config) any { return c.DeviceGroups },
	"addresses":                  func(c *resolve.Config) any { return c.Addresses },
	"address_groups":             func(c *resolve.Config) any { return c.AddressGroups },
	"services":                   func(c *resolve.Config) any { return c.Services },
	"service_groups":             func(c *resolve.Config) any { return c.ServiceGroups },
	"tags":                       func(c *resolve.Config) any { return c.Tags },
	"regions":                    func(c *resolve.Config) any { return c.Regions },
	"custom_url_categories":      func(c *resolve.Config) any { return c.CustomURLCategories },
	"application_groups":         func(c *resolve.Config) any { return c.ApplicationGroups },
	"application_filters":        func(c *resolve.Config) any { return c.ApplicationFilters },
	"external_lists":             func(c *resolve.Config) any { return c.ExternalLists },
	"schedules":                  func(c *resolve.Config) any { return c.Schedules },
	"security_rules":             func(c *resolve.Config) any { return c.SecurityRules },
	"nat_rules":                  func(c *resolve.Config) any { return c.NATRules },
	"decryption_rules":           func(c *resolve.Config) any { return c.DecryptionRules },
	"pbf_rules":                  func(c *resolve.Config) any { return c.PBFRules },
	"application_override_rules": func(c *resolve.Config) any { return c.AppOverrideRules },
	"zones":                      func(c *resolve.Config) any { return c.Zones },
	"interfaces":                 func(c *resolve.Config) any { return c.Interfaces },
	"routers":                    func(c *resolve.Config) any { return c.Routers },
	"security_profiles":          func(c *resolve.Config) any { return c.SecurityProfiles },
	"profile_groups":             func(c *resolve.Config) any { return c.ProfileGroups },
	"zone_protection_profiles":   func(c *resolve.Config) any { return c.ZoneProtectionProfiles },
	"log_forwarding_profiles":    func(c *resolve.Config) any { return c.LogForwardingProfiles },
	"qos_profiles":               func(c *resolve.Config) any { return c.QoSProfiles },
	"tunnel_monitor_profiles":    func(c *resolve.Config) any { return c.TunnelMonitorProfiles },
	"bgp":                        func(c *resolve.Config) any { return c.BGP },
	"ospf":                       func(c *resolve.Config) any { return c.OSPF },
	"ipsec_tunnels":              func(c *resolve.Config) any { return c.IPsecTunnels },
	"ike_gateways":               func(c *resolve.Config) any { return c.IKEGateways },
	"ike_crypto_profiles":        func(c *resolve.Config) any { return c.IKECryptoProfiles },
	"ipsec_crypto_profiles":      func(c *resolve.Config) any { return c.IPsecCryptoProfiles },
}

// inspectSummary mirrors the converter's Found: list as YAML counts.
type inspectSummary struct {
	Source                   string `yaml:"source"`
	DeviceGroups             int    `yaml:"device_groups"`
	Tags                     int    `yaml:"tags"`
	Regions                  int    `yaml:"regions"`
	CustomURLCategories      int    `yaml:"custom_url_categories"`
	ApplicationGroups        int    `yaml:"application_groups"`
	ApplicationFilters       int    `yaml:"application_filters"`
	ExternalLists            int    `yaml:"external_lists"`
	Schedules                int    `yaml:"schedules"`
	Addresses                int    `yaml:"addresses"`
	AddressGroups            int    `yaml:"address_groups"`
	Services                 int    `yaml:"services"`
	ServiceGroups            int    `yaml:"service_groups"`
	SecurityRules            int    `yaml:"security_rules"`
	NATRules                 int    `yaml:"nat_rules"`
	DecryptionRules          int    `yaml:"decryption_rules"`
	PBFRules                 int    `yaml:"pbf_rules"`
	ApplicationOverrideRules int    `yaml:"application_override_rules"`
	Zones                    int    `yaml:"zones"`
	Interfaces               int    `yaml:"interfaces"`
	VirtualRouters           int    `yaml:"virtual_routers"`
	LogicalRouters           int    `yaml:"logical_routers"`
	SecurityProfiles         int    `yaml:"security_profiles"`
	ProfileGroups            int    `yaml:"profile_groups"`
	ZoneProtectionProfiles   int    `yaml:"zone_protection_profiles"`
	LogForwardingProfiles    int    `yaml:"log_forwarding_profiles"`
	QoSProfiles              int    `yaml:"qos_profiles"`
	TunnelMonitorProfiles    int    `yaml:"tunnel_monitor_profiles"`
	BGPPeers                 int    `yaml:"bgp_peers,omitempty"`
	OSPFAreas                int    `yaml:"ospf_areas,omitempty"`
	IKEGateways              int    `yaml:"ike_gateways"`
	IPsecTunnels             int    `yaml:"ipsec_tunnels"`
}

func runInspect(args []string) error {
	if err := setupLogging(); err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("usage: pan2tf inspect <export.xml> [flags]")
	}
	input := args[0]

	if _, err := os.Stat(input); err != nil {
		return &cli.ExitError{Code: 1, Message: fmt.Sprintf("Error: Input file '%s' not found", input)}
	}

	root, err := panxml.ParseFile(input)
	if err != nil {
		return &cli.ExitError{Code: 1, Message: fmt.Sprintf("Error: Failed to parse XML file: %v", err)}
	}
	cfg := resolve.Build(root)

	var value any
	if inspectType == "" {
		value = buildSummary(input, cfg)
	} else {
		accessor, ok := catalogs[inspectType]
		if !ok {
			return fmt.Errorf("unknown type %q (valid: %s)", inspectType, strings.Join(catalogNames(), ", "))
		}
		value = accessor(cfg)
	}

	out, err := yaml.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	os.Stdout.Write(out)
	return nil
}

func buildSummary(source string, cfg *resolve.Config) inspectSummary {
	virtual, logical := 0, 0
	for _, r := range cfg.Routers {
		if r.Kind == resolve.RouterLogical {
			logical++
		} else {
			virtual++
		}
	}
	sp := cfg.SecurityProfiles
	s := inspectSummary{
		Source:                   source,
		DeviceGroups:             len(cfg.DeviceGroups),
		Tags:                     len(cfg.Tags),
		Regions:                  len(cfg.Regions),
		CustomURLCategories:      len(cfg.CustomURLCategories),
		ApplicationGroups:        len(cfg.ApplicationGroups),
		ApplicationFilters:       len(cfg.ApplicationFilters),
		ExternalLists:            len(cfg.ExternalLists),
		Schedules:                len(cfg.Schedules),
		Addresses:                len(cfg.Addresses),
		AddressGroups:            len(cfg.AddressGroups),
		Services:                 len(cfg.Services),
		ServiceGroups:            len(cfg.ServiceGroups),
		SecurityRules:            len(cfg.SecurityRules),
		NATRules:                 len(cfg.NATRules),
		DecryptionRules:          len(cfg.DecryptionRules),
		PBFRules:                 len(cfg.PBFRules),
		ApplicationOverrideRules: len(cfg.AppOverrideRules),
		Zones:                    len(cfg.Zones),
		Interfaces:               len(cfg.Interfaces),
		VirtualRouters:           virtual,
		LogicalRouters:           logical,
		SecurityProfiles: len(sp.Antivirus) + len(sp.Vulnerability) + len(sp.AntiSpyware) +
			len(sp.URLFiltering) + len(sp.FileBlocking) + len(sp.WildfireAnalysis),
		ProfileGroups:          len(cfg.ProfileGroups),
		ZoneProtectionProfiles: len(cfg.ZoneProtectionProfiles),
		LogForwardingProfiles:  len(cfg.LogForwardingProfiles),
		QoSProfiles:            len(cfg.QoSProfiles),
		TunnelMonitorProfiles:  len(cfg.TunnelMonitorProfiles),
		IKEGateways:            len(cfg.IKEGateways),
		IPsecTunnels:           len(cfg.IPsecTunnels),
	}
	if cfg.BGP != nil {
		s.BGPPeers = len(cfg.BGP.Peers)
	}
	if cfg.OSPF != nil {
		s.OSPFAreas = len(cfg.OSPF.Areas)
	}
	return s
}

func catalogNames() []string {
	names := make([]string, 0, len(catalogs))
	for name := range catalogs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
