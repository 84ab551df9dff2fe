package resolve

import "github.com/devnullNZ/Panorama2Terraform/pkg/panxml"

// BGP aggregates the BGP configuration found across virtual-router
// protocol sections. Scalar fields take the last enabled section's value;
// peer groups, peers, and redistribution rules accumulate.
type BGP struct {
	RouterID    string          `yaml:"router_id,omitempty"`
	ASNumber    string          `yaml:"as_number,omitempty"`
	PeerGroups  []BGPPeerGroup  `yaml:"peer_groups,omitempty"`
	Peers       []BGPPeer       `yaml:"peers,omitempty"`
	RedistRules []BGPRedistRule `yaml:"redistribution_rules,omitempty"`
}

type BGPPeerGroup struct {
	Name          string `yaml:"name"`
	Type          string `yaml:"type,omitempty"`
	ExportNexthop string `yaml:"export_nexthop,omitempty"`
	ImportNexthop string `yaml:"import_nexthop,omitempty"`
}

type BGPPeer struct {
	Name                  string `yaml:"name"`
	PeerAS                string `yaml:"peer_as,omitempty"`
	LocalAddressInterface string `yaml:"local_address_interface,omitempty"`
	LocalAddressIP        string `yaml:"local_address_ip,omitempty"`
	PeerAddressIP         string `yaml:"peer_address_ip,omitempty"`
	Enable                bool   `yaml:"enable"`
	PeerGroup             string `yaml:"peer_group,omitempty"`
}

type BGPRedistRule struct {
	Name          string `yaml:"name"`
	Enable        bool   `yaml:"enable"`
	AddressFamily string `yaml:"address_family,omitempty"`
}

// OSPF aggregates the OSPF configuration across virtual-router protocol
// sections, same accumulation rules as BGP.
type OSPF struct {
	RouterID   string          `yaml:"router_id,omitempty"`
	Areas      []OSPFArea      `yaml:"areas,omitempty"`
	Interfaces []OSPFInterface `yaml:"interfaces,omitempty"`
}

type OSPFArea struct {
	AreaID string   `yaml:"area_id"`
	Type   string   `yaml:"type"` // normal, stub, nssa
	Ranges []string `yaml:"ranges,omitempty"`
}

type OSPFInterface struct {
	Name     string `yaml:"name"`
	Enable   bool   `yaml:"enable"`
	Passive  bool   `yaml:"passive"`
	LinkType string `yaml:"link_type,omitempty"`
	Metric   string `yaml:"metric,omitempty"`
}

// bgp returns nil unless at least one virtual router has BGP enabled.
func bgp(root *panxml.Node) *BGP {
	var cfg *BGP
	paths := []string{
		"//network/virtual-router/entry/protocol/bgp",
		"//devices/entry/network/virtual-router/entry/protocol/bgp",
	}
	// The second path is a subset of the first inside template contents;
	// visit each section once so peers do not accumulate twice.
	seen := make(map[*panxml.Node]bool)
	for _, path := range paths {
		for _, node := range root.FindAll(path) {
			if seen[node] || node.FindText("enable") != "yes" {
				continue
			}
			seen[node] = true
			if cfg == nil {
				cfg = &BGP{}
			}
			if v := node.FindText("router-id"); v != "" {
				cfg.RouterID = v
			}
			if v := node.FindText("local-as"); v != "" {
				cfg.ASNumber = v
			}
			for _, pg := range node.FindAll("//peer-group/entry") {
				if pg.Name() == "" {
					continue
				}
				cfg.PeerGroups = append(cfg.PeerGroups, BGPPeerGroup{
					Name:          pg.Name(),
					Type:          pg.FindText("type"),
					ExportNexthop: pg.FindText("export-nexthop"),
					ImportNexthop: pg.FindText("import-nexthop"),
				})
			}
			for _, peer := range node.FindAll("//peer/entry") {
				if peer.Name() == "" {
					continue
				}
				cfg.Peers = append(cfg.Peers, BGPPeer{
					Name:                  peer.Name(),
					PeerAS:                peer.FindText("peer-as"),
					LocalAddressInterface: peer.FindText("local-address/interface"),
					LocalAddressIP:        peer.FindText("local-address/ip"),
					PeerAddressIP:         peer.FindText("peer-address/ip"),
					Enable:                yes(peer, "enable"),
					PeerGroup:             peer.FindText("peer-group"),
				})
			}
			for _, redist := range node.FindAll("//redist-rules/entry") {
				if redist.Name() == "" {
					continue
				}
				cfg.RedistRules = append(cfg.RedistRules, BGPRedistRule{
					Name:          redist.Name(),
					Enable:        yes(redist, "enable"),
					AddressFamily: redist.FindText("address-family-identifier"),
				})
			}
		}
	}
	return cfg
}

// ospf returns nil unless at least one virtual router has OSPF enabled.
func ospf(root *panxml.Node) *OSPF {
	var cfg *OSPF
	paths := []string{
		"//network/virtual-router/entry/protocol/ospf",
		"//devices/entry/network/virtual-router/entry/protocol/ospf",
	}
	seen := make(map[*panxml.Node]bool)
	for _, path := range paths {
		for _, node := range root.FindAll(path) {
			if seen[node] || node.FindText("enable") != "yes" {
				continue
			}
			seen[node] = true
			if cfg == nil {
				cfg = &OSPF{}
			}
			if v := node.FindText("router-id"); v != "" {
				cfg.RouterID = v
			}
			for _, area := range node.FindAll("//area/entry") {
				if area.Name() == "" {
					continue
				}
				a := OSPFArea{AreaID: area.Name(), Type: "normal"}
				if area.Find("type/stub") != nil {
					a.Type = "stub"
				} else if area.Find("type/nssa") != nil {
					a.Type = "nssa"
				}
				for _, rng := range area.FindAll("//range/entry") {
					if rng.Name() != "" {
						a.Ranges = append(a.Ranges, rng.Name())
					}
				}
				cfg.Areas = append(cfg.Areas, a)
			}
			for _, iface := range node.FindAll("//interface/entry") {
				if iface.Name() == "" {
					continue
				}
				cfg.Interfaces = append(cfg.Interfaces, OSPFInterface{
					Name:     iface.Name(),
					Enable:   yes(iface, "enable"),
					Passive:  yes(iface, "passive"),
					LinkType: iface.FindText("link-type"),
					Metric:   iface.FindText("metric"),
				})
			}
		}
	}
	return cfg
}
