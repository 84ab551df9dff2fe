package resolve

import "github.com/devnullNZ/Panorama2Terraform/pkg/panxml"

// Config is everything the resolver extracts from one export, in catalog
// order per type. BGP and OSPF are nil when no virtual router enables
// them.
type Config struct {
	DeviceGroups []DeviceGroup `yaml:"device_groups,omitempty"`

	Addresses     []Address      `yaml:"addresses,omitempty"`
	AddressGroups []AddressGroup `yaml:"address_groups,omitempty"`
	Services      []Service      `yaml:"services,omitempty"`
	ServiceGroups []ServiceGroup `yaml:"service_groups,omitempty"`

	Tags                []Tag               `yaml:"tags,omitempty"`
	Regions             []Region            `yaml:"regions,omitempty"`
	CustomURLCategories []CustomURLCategory `yaml:"custom_url_categories,omitempty"`
	ApplicationGroups   []ApplicationGroup  `yaml:"application_groups,omitempty"`
	ApplicationFilters  []ApplicationFilter `yaml:"application_filters,omitempty"`
	ExternalLists       []ExternalList      `yaml:"external_lists,omitempty"`
	Schedules           []Schedule          `yaml:"schedules,omitempty"`

	SecurityRules    []SecurityRule    `yaml:"security_rules,omitempty"`
	NATRules         []NATRule         `yaml:"nat_rules,omitempty"`
	DecryptionRules  []DecryptionRule  `yaml:"decryption_rules,omitempty"`
	PBFRules         []PBFRule         `yaml:"pbf_rules,omitempty"`
	AppOverrideRules []AppOverrideRule `yaml:"application_override_rules,omitempty"`

	Zones      []Zone      `yaml:"zones,omitempty"`
	Interfaces []Interface `yaml:"interfaces,omitempty"`
	Routers    []Router    `yaml:"routers,omitempty"`

	SecurityProfiles       SecurityProfiles       `yaml:"security_profiles,omitempty"`
	ProfileGroups          []ProfileGroup         `yaml:"profile_groups,omitempty"`
	ZoneProtectionProfiles []Profile              `yaml:"zone_protection_profiles,omitempty"`
	LogForwardingProfiles  []Profile              `yaml:"log_forwarding_profiles,omitempty"`
	QoSProfiles            []QoSProfile           `yaml:"qos_profiles,omitempty"`
	TunnelMonitorProfiles  []TunnelMonitorProfile `yaml:"tunnel_monitor_profiles,omitempty"`

	BGP  *BGP  `yaml:"bgp,omitempty"`
	OSPF *OSPF `yaml:"ospf,omitempty"`

	IPsecTunnels        []IPsecTunnel        `yaml:"ipsec_tunnels,omitempty"`
	IKEGateways         []IKEGateway         `yaml:"ike_gateways,omitempty"`
	IKECryptoProfiles   []IKECryptoProfile   `yaml:"ike_crypto_profiles,omitempty"`
	IPsecCryptoProfiles []IPsecCryptoProfile `yaml:"ipsec_crypto_profiles,omitempty"`
}

// Build resolves every object type against the tree. The tree is not
// modified; Build may be called repeatedly and returns equal configs for
// the same tree.
func Build(root *panxml.Node) *Config {
	return &Config{
		DeviceGroups: deviceGroups(root),

		Addresses:     addresses(root),
		AddressGroups: addressGroups(root),
		Services:      services(root),
		ServiceGroups: serviceGroups(root),

		Tags:                tags(root),
		Regions:             regions(root),
		CustomURLCategories: urlCategories(root),
		ApplicationGroups:   appGroups(root),
		ApplicationFilters:  appFilters(root),
		ExternalLists:       externalLists(root),
		Schedules:           schedules(root),

		SecurityRules:    securityRules(root),
		NATRules:         natRules(root),
		DecryptionRules:  decryptionRules(root),
		PBFRules:         pbfRules(root),
		AppOverrideRules: appOverrideRules(root),

		Zones:      zones(root),
		Interfaces: interfaces(root),
		Routers:    Routers(root),

		SecurityProfiles:       securityProfiles(root),
		ProfileGroups:          profileGroups(root),
		ZoneProtectionProfiles: namedProfiles(root, zoneProtectionType),
		LogForwardingProfiles:  namedProfiles(root, logForwardingType),
		QoSProfiles:            qosProfiles(root),
		TunnelMonitorProfiles:  tunnelMonitorProfiles(root),

		BGP:  bgp(root),
		OSPF: ospf(root),

		IPsecTunnels:        ipsecTunnels(root),
		IKEGateways:         ikeGateways(root),
		IKECryptoProfiles:   ikeCryptoProfiles(root),
		IPsecCryptoProfiles: ipsecCryptoProfiles(root),
	}
}
