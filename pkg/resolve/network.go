package resolve

import "github.com/devnullNZ/Panorama2Terraform/pkg/panxml"

// Zone is a security zone with its network mode and member interfaces.
type Zone struct {
	Name                  string   `yaml:"name"`
	Mode                  string   `yaml:"mode"` // layer3, layer2, tap, virtual-wire, tunnel
	Interfaces            []string `yaml:"interfaces,omitempty"`
	ZoneProtectionProfile string   `yaml:"zone_protection_profile,omitempty"`
}

// Interface is one dataplane interface. Unit interfaces (vlan, loopback,
// tunnel) carry their family prefix in Name; aggregate subinterfaces are
// emitted as separate entries alongside their parent.
type Interface struct {
	Name              string   `yaml:"name"`
	Type              string   `yaml:"type"` // ethernet, vlan, loopback, tunnel, aggregate, aggregate-subinterface
	Mode              string   `yaml:"mode,omitempty"`
	IPAddresses       []string `yaml:"ip_addresses,omitempty"`
	IPv6Addresses     []string `yaml:"ipv6_addresses,omitempty"`
	ManagementProfile string   `yaml:"management_profile,omitempty"`
	Comment           string   `yaml:"comment,omitempty"`
	VLANTag           string   `yaml:"vlan_tag,omitempty"`
}

func zones(root *panxml.Node) []Zone {
	var out []Zone
	for _, obj := range Resolve(root, zoneType).All() {
		z := Zone{Name: obj.Name, Mode: "layer3"}
		switch {
		case obj.Node.Find("network/layer2") != nil:
			z.Mode = "layer2"
		case obj.Node.Find("network/tap") != nil:
			z.Mode = "tap"
		case obj.Node.Find("network/virtual-wire") != nil:
			z.Mode = "virtual-wire"
		case obj.Node.Find("network/tunnel") != nil:
			z.Mode = "tunnel"
		}
		for _, m := range obj.Node.FindAll("//network/*/member") {
			if m.Text != "" {
				z.Interfaces = append(z.Interfaces, m.Text)
			}
		}
		if p := obj.Node.Find("//zone-protection-profile"); p != nil {
			z.ZoneProtectionProfile = p.Text
		}
		out = append(out, z)
	}
	return out
}

// interfaces walks the five interface families in a fixed order. Unit
// entries are named bare in the export ("100"), so the family prefix is
// prepended to give the dataplane name ("vlan.100").
func interfaces(root *panxml.Node) []Interface {
	var out []Interface

	for _, obj := range Resolve(root, ethernetIfaceType).All() {
		iface := Interface{
			Name:    obj.Name,
			Type:    "ethernet",
			Comment: obj.Node.FindText("comment"),
		}
		switch {
		case obj.Node.HasChild("layer3"):
			fillLayer3(&iface, obj.Node.Child("layer3"))
			iface.IPv6Addresses = entryNames(obj.Node.Child("layer3"), "//ipv6/address/entry")
		case obj.Node.HasChild("layer2"):
			iface.Mode = "layer2"
		case obj.Node.HasChild("virtual-wire"):
			iface.Mode = "virtual-wire"
		case obj.Node.HasChild("tap"):
			iface.Mode = "tap"
		case obj.Node.HasChild("ha"):
			iface.Mode = "ha"
		case obj.Node.HasChild("aggregate-group"):
			iface.Mode = "aggregate-group"
		}
		out = append(out, iface)
	}

	for _, obj := range Resolve(root, vlanIfaceType).All() {
		out = append(out, Interface{
			Name:              "vlan." + obj.Name,
			Type:              "vlan",
			Mode:              "layer3",
			IPAddresses:       entryNames(obj.Node, "//ip/entry"),
			IPv6Addresses:     entryNames(obj.Node, "//ipv6/address/entry"),
			ManagementProfile: obj.Node.FindText("interface-management-profile"),
			Comment:           obj.Node.FindText("comment"),
			VLANTag:           obj.Node.FindText("tag"),
		})
	}

	for _, obj := range Resolve(root, loopbackIfaceType).All() {
		out = append(out, Interface{
			Name:          "loopback." + obj.Name,
			Type:          "loopback",
			Mode:          "layer3",
			IPAddresses:   entryNames(obj.Node, "//ip/entry"),
			IPv6Addresses: entryNames(obj.Node, "//ipv6/address/entry"),
			Comment:       obj.Node.FindText("comment"),
		})
	}

	for _, obj := range Resolve(root, tunnelIfaceType).All() {
		out = append(out, Interface{
			Name:              "tunnel." + obj.Name,
			Type:              "tunnel",
			Mode:              "layer3",
			IPAddresses:       entryNames(obj.Node, "//ip/entry"),
			IPv6Addresses:     entryNames(obj.Node, "//ipv6/address/entry"),
			ManagementProfile: obj.Node.FindText("interface-management-profile"),
			Comment:           obj.Node.FindText("comment"),
		})
	}

	for _, obj := range Resolve(root, aggregateIfaceType).All() {
		iface := Interface{
			Name:    obj.Name,
			Type:    "aggregate",
			Comment: obj.Node.FindText("comment"),
		}
		if l3 := obj.Node.Child("layer3"); l3 != nil {
			fillLayer3(&iface, l3)
			// Subinterfaces hang off the aggregate's layer3 node and are
			// listed ahead of their parent.
			for _, unit := range l3.FindAll("//units/entry") {
				if unit.Name() == "" {
					continue
				}
				out = append(out, Interface{
					Name:              unit.Name(),
					Type:              "aggregate-subinterface",
					Mode:              "layer3",
					IPAddresses:       entryNames(unit, "//ip/entry"),
					ManagementProfile: unit.FindText("interface-management-profile"),
					Comment:           unit.FindText("comment"),
					VLANTag:           unit.FindText("tag"),
				})
			}
			out = append(out, iface)
			continue
		}
		if obj.Node.HasChild("layer2") {
			iface.Mode = "layer2"
		}
		out = append(out, iface)
	}

	return out
}

func fillLayer3(iface *Interface, l3 *panxml.Node) {
	iface.Mode = "layer3"
	iface.IPAddresses = entryNames(l3, "//ip/entry")
	iface.ManagementProfile = l3.FindText("interface-management-profile")
}

// Addresses on an interface are entry names, not texts.
func entryNames(n *panxml.Node, path string) []string {
	var out []string
	for _, e := range n.FindAll(path) {
		if e.Name() != "" {
			out = append(out, e.Name())
		}
	}
	return out
}
