package resolve

import "github.com/devnullNZ/Panorama2Terraform/pkg/panxml"

// Descriptors for every resolvable object type. Search paths follow the
// scope precedence of the export format: device-group definitions are
// scanned before shared and bare sections for the override-capable object
// families, rulebases are scanned base then pre then post, and network
// types add the devices/entry variant used by template contents.
var (
	deviceGroupType = TypeDesc{
		Name:  "device-group",
		Paths: []string{"//device-group/entry"},
	}

	addressType = TypeDesc{
		Name: "address",
		Paths: []string{
			"//device-group/entry/address/entry",
			"//shared/address/entry",
			"//address/entry",
		},
		Stub: addressStub,
	}

	addressGroupType = TypeDesc{
		Name: "address-group",
		Paths: []string{
			"//device-group/entry/address-group/entry",
			"//shared/address-group/entry",
			"//address-group/entry",
		},
		Stub: addressGroupStub,
	}

	serviceType = TypeDesc{
		Name: "service",
		Paths: []string{
			"//device-group/entry/service/entry",
			"//shared/service/entry",
			"//service/entry",
		},
		Stub: serviceStub,
	}

	serviceGroupType = TypeDesc{
		Name: "service-group",
		Paths: []string{
			"//device-group/entry/service-group/entry",
			"//shared/service-group/entry",
			"//service-group/entry",
		},
		Stub: serviceGroupStub,
	}

	tagType = TypeDesc{
		Name: "tag",
		Paths: []string{
			"//tag/entry",
			"//device-group/entry/tag/entry",
		},
	}

	regionType = TypeDesc{
		Name: "region",
		Paths: []string{
			"//region/entry",
			"//device-group/entry/region/entry",
		},
	}

	urlCategoryType = TypeDesc{
		Name: "custom-url-category",
		Paths: []string{
			"//custom-url-category/entry",
			"//device-group/entry/custom-url-category/entry",
		},
	}

	appGroupType = TypeDesc{
		Name: "application-group",
		Paths: []string{
			"//application-group/entry",
			"//device-group/entry/application-group/entry",
		},
	}

	appFilterType = TypeDesc{
		Name: "application-filter",
		Paths: []string{
			"//application-filter/entry",
			"//device-group/entry/application-filter/entry",
		},
	}

	externalListType = TypeDesc{
		Name: "external-list",
		Paths: []string{
			"//external-list/entry",
			"//device-group/entry/external-list/entry",
		},
	}

	scheduleType = TypeDesc{
		Name: "schedule",
		Paths: []string{
			"//schedule/entry",
			"//device-group/entry/schedule/entry",
		},
	}

	securityRuleType = TypeDesc{
		Name: "security-rule",
		Paths: []string{
			"//security/rules/entry",
			"//device-group/entry/pre-rulebase/security/rules/entry",
			"//device-group/entry/post-rulebase/security/rules/entry",
		},
	}

	natRuleType = TypeDesc{
		Name: "nat-rule",
		Paths: []string{
			"//nat/rules/entry",
			"//device-group/entry/pre-rulebase/nat/rules/entry",
			"//device-group/entry/post-rulebase/nat/rules/entry",
		},
	}

	decryptionRuleType = TypeDesc{
		Name: "decryption-rule",
		Paths: []string{
			"//decryption/rules/entry",
			"//device-group/entry/pre-rulebase/decryption/rules/entry",
			"//device-group/entry/post-rulebase/decryption/rules/entry",
		},
	}

	pbfRuleType = TypeDesc{
		Name: "pbf-rule",
		Paths: []string{
			"//pbf/rules/entry",
			"//device-group/entry/pre-rulebase/pbf/rules/entry",
			"//device-group/entry/post-rulebase/pbf/rules/entry",
		},
	}

	appOverrideRuleType = TypeDesc{
		Name: "application-override-rule",
		Paths: []string{
			"//application-override/rules/entry",
			"//device-group/entry/pre-rulebase/application-override/rules/entry",
			"//device-group/entry/post-rulebase/application-override/rules/entry",
		},
	}

	zoneType = TypeDesc{
		Name: "zone",
		Paths: []string{
			"//zone/entry",
			"//vsys/entry/zone/entry",
			"//devices/entry/vsys/entry/zone/entry",
		},
	}

	ethernetIfaceType = TypeDesc{
		Name: "ethernet-interface",
		Paths: []string{
			"//network/interface/ethernet/entry",
			"//devices/entry/network/interface/ethernet/entry",
		},
	}

	vlanIfaceType = TypeDesc{
		Name: "vlan-interface",
		Paths: []string{
			"//network/interface/vlan/units/entry",
			"//devices/entry/network/interface/vlan/units/entry",
		},
	}

	loopbackIfaceType = TypeDesc{
		Name: "loopback-interface",
		Paths: []string{
			"//network/interface/loopback/units/entry",
			"//devices/entry/network/interface/loopback/units/entry",
		},
	}

	tunnelIfaceType = TypeDesc{
		Name: "tunnel-interface",
		Paths: []string{
			"//network/interface/tunnel/units/entry",
			"//devices/entry/network/interface/tunnel/units/entry",
		},
	}

	aggregateIfaceType = TypeDesc{
		Name: "aggregate-interface",
		Paths: []string{
			"//network/interface/aggregate-ethernet/entry",
			"//devices/entry/network/interface/aggregate-ethernet/entry",
		},
	}

	virusProfileType        = profileType("antivirus-profile", "virus")
	vulnProfileType         = profileType("vulnerability-profile", "vulnerability")
	spywareProfileType      = profileType("spyware-profile", "spyware")
	urlFilteringProfileType = profileType("url-filtering-profile", "url-filtering")
	fileBlockingProfileType = profileType("file-blocking-profile", "file-blocking")
	wildfireProfileType     = profileType("wildfire-analysis-profile", "wildfire-analysis")

	profileGroupType = TypeDesc{
		Name: "profile-group",
		Paths: []string{
			"//profile-group/entry",
			"//device-group/entry/profile-group/entry",
			"//shared/profile-group/entry",
		},
	}

	zoneProtectionType = TypeDesc{
		Name: "zone-protection-profile",
		Paths: []string{
			"//zone-protection-profile/entry",
			"//device-group/entry/zone-protection-profile/entry",
			"//network/profiles/zone-protection-profile/entry",
		},
	}

	logForwardingType = TypeDesc{
		Name: "log-forwarding-profile",
		Paths: []string{
			"//log-settings/profiles/entry",
			"//device-group/entry/log-settings/profiles/entry",
			"//shared/log-settings/profiles/entry",
		},
	}

	qosProfileType = TypeDesc{
		Name: "qos-profile",
		Paths: []string{
			"//qos/profile/entry",
			"//device-group/entry/qos/profile/entry",
			"//network/qos/profile/entry",
		},
	}

	tunnelMonitorType = TypeDesc{
		Name: "tunnel-monitor-profile",
		Paths: []string{
			"//network/tunnel/global-protect-gateway/Default/tunnel-monitor/monitor-profile/entry",
			"//network/tunnel-monitor/monitor-profile/entry",
			"//devices/entry/network/tunnel-monitor/monitor-profile/entry",
		},
	}

	ipsecTunnelType = TypeDesc{
		Name: "ipsec-tunnel",
		Paths: []string{
			"//network/tunnel/ipsec/entry",
			"//devices/entry/network/tunnel/ipsec/entry",
		},
	}

	ikeGatewayType = TypeDesc{
		Name: "ike-gateway",
		Paths: []string{
			"//network/ike/gateway/entry",
			"//devices/entry/network/ike/gateway/entry",
		},
	}

	ikeCryptoType = TypeDesc{
		Name: "ike-crypto-profile",
		Paths: []string{
			"//network/ike/crypto-profiles/ike-crypto-profiles/entry",
			"//devices/entry/network/ike/crypto-profiles/ike-crypto-profiles/entry",
		},
	}

	ipsecCryptoType = TypeDesc{
		Name: "ipsec-crypto-profile",
		Paths: []string{
			"//network/ike/crypto-profiles/ipsec-crypto-profiles/entry",
			"//devices/entry/network/ike/crypto-profiles/ipsec-crypto-profiles/entry",
		},
	}
)

// The six security profile families share one path shape.
func profileType(name, tag string) TypeDesc {
	return TypeDesc{
		Name: name,
		Paths: []string{
			"//profiles/" + tag + "/entry",
			"//device-group/entry/profiles/" + tag + "/entry",
			"//shared/profiles/" + tag + "/entry",
		},
	}
}

var typeTable = []TypeDesc{
	deviceGroupType,
	addressType,
	addressGroupType,
	serviceType,
	serviceGroupType,
	tagType,
	regionType,
	urlCategoryType,
	appGroupType,
	appFilterType,
	externalListType,
	scheduleType,
	securityRuleType,
	natRuleType,
	decryptionRuleType,
	pbfRuleType,
	appOverrideRuleType,
	zoneType,
	ethernetIfaceType,
	vlanIfaceType,
	loopbackIfaceType,
	tunnelIfaceType,
	aggregateIfaceType,
	virusProfileType,
	vulnProfileType,
	spywareProfileType,
	urlFilteringProfileType,
	fileBlockingProfileType,
	wildfireProfileType,
	profileGroupType,
	zoneProtectionType,
	logForwardingType,
	qosProfileType,
	tunnelMonitorType,
	ipsecTunnelType,
	ikeGatewayType,
	ikeCryptoType,
	ipsecCryptoType,
}

// Types returns every registered type descriptor.
func Types() []TypeDesc {
	return typeTable
}

// TypeByName looks up a descriptor by its CLI-facing name.
func TypeByName(name string) (TypeDesc, bool) {
	for _, t := range typeTable {
		if t.Name == name {
			return t, true
		}
	}
	return TypeDesc{}, false
}

// Device groups carry id-only entries that reference shared objects
// without defining them. An entry is a stub when the id marker is present
// and every content field of its family is absent.

func addressStub(n *panxml.Node) bool {
	return n.HasChild("id") &&
		!n.HasChild("ip-netmask") &&
		!n.HasChild("ip-range") &&
		!n.HasChild("fqdn") &&
		!n.HasChild("description")
}

func addressGroupStub(n *panxml.Node) bool {
	return n.HasChild("id") &&
		n.Find("//static") == nil &&
		n.Find("//dynamic") == nil &&
		!n.HasChild("description")
}

func serviceStub(n *panxml.Node) bool {
	return n.HasChild("id") &&
		!n.HasChild("protocol") &&
		!n.HasChild("description")
}

func serviceGroupStub(n *panxml.Node) bool {
	return n.HasChild("id") &&
		n.Find("//members") == nil &&
		!n.HasChild("description")
}
