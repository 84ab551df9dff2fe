package resolve

import "github.com/devnullNZ/Panorama2Terraform/pkg/panxml"

// SecurityRule is one security policy rule drawn from the device rulebase
// or a device-group pre/post rulebase.
type SecurityRule struct {
	Name                 string   `yaml:"name"`
	SourceZones          []string `yaml:"source_zones,omitempty"`
	SourceAddresses      []string `yaml:"source_addresses,omitempty"`
	DestinationZones     []string `yaml:"destination_zones,omitempty"`
	DestinationAddresses []string `yaml:"destination_addresses,omitempty"`
	Applications         []string `yaml:"applications,omitempty"`
	Services             []string `yaml:"services,omitempty"`
	Action               string   `yaml:"action,omitempty"`
	Description          string   `yaml:"description,omitempty"`
	LogStart             bool     `yaml:"log_start,omitempty"`
	LogEnd               bool     `yaml:"log_end,omitempty"`
	Disabled             bool     `yaml:"disabled,omitempty"`
}

// NATRule keeps the subset of NAT fields the renderer can express:
// original packet match, dynamic-ip-and-port source translation, and
// static destination translation.
type NATRule struct {
	Name                          string   `yaml:"name"`
	SourceZones                   []string `yaml:"source_zones,omitempty"`
	DestinationZone               string   `yaml:"destination_zone,omitempty"`
	SourceAddresses               []string `yaml:"source_addresses,omitempty"`
	DestinationAddresses          []string `yaml:"destination_addresses,omitempty"`
	Service                       string   `yaml:"service,omitempty"`
	Description                   string   `yaml:"description,omitempty"`
	SourceTranslationType         string   `yaml:"source_translation_type,omitempty"`
	SourceTranslationAddresses    []string `yaml:"source_translation_addresses,omitempty"`
	DestinationTranslationAddress string   `yaml:"destination_translation_address,omitempty"`
	DestinationTranslationPort    string   `yaml:"destination_translation_port,omitempty"`
	Disabled                      bool     `yaml:"disabled,omitempty"`
}

type DecryptionRule struct {
	Name                 string   `yaml:"name"`
	UUID                 string   `yaml:"uuid,omitempty"`
	SourceZones          []string `yaml:"source_zones,omitempty"`
	DestinationZones     []string `yaml:"destination_zones,omitempty"`
	SourceAddresses      []string `yaml:"source_addresses,omitempty"`
	DestinationAddresses []string `yaml:"destination_addresses,omitempty"`
	SourceUsers          []string `yaml:"source_users,omitempty"`
	Categories           []string `yaml:"categories,omitempty"`
	Services             []string `yaml:"services,omitempty"`
	Action               string   `yaml:"action,omitempty"`
	Kind                 string   `yaml:"kind,omitempty"` // ssl-forward-proxy, ssl-inbound-inspection, ssh-proxy
	Profile              string   `yaml:"profile,omitempty"`
	Description          string   `yaml:"description,omitempty"`
	LogSetting           string   `yaml:"log_setting,omitempty"`
	Disabled             bool     `yaml:"disabled,omitempty"`
}

// PBFAction is the action clause of a policy-based forwarding rule.
type PBFAction struct {
	Kind            string `yaml:"kind"` // forward, discard, no-pbf
	NexthopIP       string `yaml:"nexthop_ip,omitempty"`
	EgressInterface string `yaml:"egress_interface,omitempty"`
}

type PBFRule struct {
	Name                   string     `yaml:"name"`
	UUID                   string     `yaml:"uuid,omitempty"`
	Description            string     `yaml:"description,omitempty"`
	SourceZones            []string   `yaml:"source_zones,omitempty"`
	SourceAddresses        []string   `yaml:"source_addresses,omitempty"`
	SourceUsers            []string   `yaml:"source_users,omitempty"`
	DestinationAddresses   []string   `yaml:"destination_addresses,omitempty"`
	Applications           []string   `yaml:"applications,omitempty"`
	Services               []string   `yaml:"services,omitempty"`
	Action                 *PBFAction `yaml:"action,omitempty"`
	EnforceSymmetricReturn bool       `yaml:"enforce_symmetric_return,omitempty"`
	Disabled               bool       `yaml:"disabled,omitempty"`
}

type AppOverrideRule struct {
	Name                 string   `yaml:"name"`
	Description          string   `yaml:"description,omitempty"`
	SourceZones          []string `yaml:"source_zones,omitempty"`
	DestinationZones     []string `yaml:"destination_zones,omitempty"`
	SourceAddresses      []string `yaml:"source_addresses,omitempty"`
	DestinationAddresses []string `yaml:"destination_addresses,omitempty"`
	Port                 string   `yaml:"port,omitempty"`
	Protocol             string   `yaml:"protocol,omitempty"`
	Application          string   `yaml:"application,omitempty"`
	Disabled             bool     `yaml:"disabled,omitempty"`
}

func yes(n *panxml.Node, path string) bool {
	return n.FindText(path) == "yes"
}

func securityRules(root *panxml.Node) []SecurityRule {
	var out []SecurityRule
	for _, obj := range Resolve(root, securityRuleType).All() {
		out = append(out, SecurityRule{
			Name:                 obj.Name,
			SourceZones:          obj.Node.Members("from"),
			SourceAddresses:      obj.Node.Members("source"),
			DestinationZones:     obj.Node.Members("to"),
			DestinationAddresses: obj.Node.Members("destination"),
			Applications:         obj.Node.Members("application"),
			Services:             obj.Node.Members("service"),
			Action:               obj.Node.FindText("action"),
			Description:          obj.Node.FindText("description"),
			LogStart:             yes(obj.Node, "log-start"),
			LogEnd:               yes(obj.Node, "log-end"),
			Disabled:             yes(obj.Node, "disabled"),
		})
	}
	return out
}

func natRules(root *panxml.Node) []NATRule {
	var out []NATRule
	for _, obj := range Resolve(root, natRuleType).All() {
		r := NATRule{
			Name:                 obj.Name,
			SourceZones:          obj.Node.Members("from"),
			DestinationZone:      obj.Node.FindText("to-interface"),
			SourceAddresses:      obj.Node.Members("source"),
			DestinationAddresses: obj.Node.Members("destination"),
			Service:              obj.Node.FindText("service"),
			Description:          obj.Node.FindText("description"),
			Disabled:             yes(obj.Node, "disabled"),
		}
		if st := obj.Node.Find("//source-translation"); st != nil {
			if diap := st.Child("dynamic-ip-and-port"); diap != nil {
				if ta := diap.Find("//translated-address"); ta != nil {
					r.SourceTranslationType = "dynamic-ip-and-port"
					for _, m := range ta.FindAll("member") {
						if m.Text != "" {
							r.SourceTranslationAddresses = append(r.SourceTranslationAddresses, m.Text)
						}
					}
				}
			}
		}
		if dt := obj.Node.Find("//destination-translation"); dt != nil {
			r.DestinationTranslationAddress = dt.FindText("translated-address")
			r.DestinationTranslationPort = dt.FindText("translated-port")
		}
		out = append(out, r)
	}
	return out
}

func decryptionRules(root *panxml.Node) []DecryptionRule {
	var out []DecryptionRule
	for _, obj := range Resolve(root, decryptionRuleType).All() {
		r := DecryptionRule{
			Name:                 obj.Name,
			UUID:                 obj.Node.Attr("uuid"),
			SourceZones:          obj.Node.Members("from"),
			DestinationZones:     obj.Node.Members("to"),
			SourceAddresses:      obj.Node.Members("source"),
			DestinationAddresses: obj.Node.Members("destination"),
			SourceUsers:          obj.Node.Members("source-user"),
			Categories:           obj.Node.Members("category"),
			Services:             obj.Node.Members("service"),
			Action:               obj.Node.FindText("action"),
			Profile:              obj.Node.FindText("profile"),
			Description:          obj.Node.FindText("description"),
			LogSetting:           obj.Node.FindText("log-setting"),
			Disabled:             yes(obj.Node, "disabled"),
		}
		if typ := obj.Node.Child("type"); typ != nil {
			for _, kind := range []string{"ssl-forward-proxy", "ssl-inbound-inspection", "ssh-proxy"} {
				if typ.Child(kind) != nil {
					r.Kind = kind
					break
				}
			}
		}
		out = append(out, r)
	}
	return out
}

func pbfRules(root *panxml.Node) []PBFRule {
	var out []PBFRule
	for _, obj := range Resolve(root, pbfRuleType).All() {
		r := PBFRule{
			Name:                 obj.Name,
			UUID:                 obj.Node.Attr("uuid"),
			Description:          obj.Node.FindText("description"),
			SourceAddresses:      obj.Node.Members("source"),
			SourceUsers:          obj.Node.Members("source-user"),
			DestinationAddresses: obj.Node.Members("destination"),
			Applications:         obj.Node.Members("application"),
			Services:             obj.Node.Members("service"),
			Disabled:             yes(obj.Node, "disabled"),
		}
		if from := obj.Node.Child("from"); from != nil {
			for _, z := range from.FindAll("//zone/member") {
				if z.Text != "" {
					r.SourceZones = append(r.SourceZones, z.Text)
				}
			}
		}
		if action := obj.Node.Child("action"); action != nil {
			if fwd := action.Child("forward"); fwd != nil {
				r.Action = &PBFAction{
					Kind:            "forward",
					NexthopIP:       fwd.FindText("nexthop/ip-address"),
					EgressInterface: fwd.FindText("egress-interface"),
				}
			}
			if action.Child("discard") != nil {
				r.Action = &PBFAction{Kind: "discard"}
			}
			if action.Child("no-pbf") != nil {
				r.Action = &PBFAction{Kind: "no-pbf"}
			}
		}
		if en := obj.Node.Find("//enforce-symmetric-return/enabled"); en != nil {
			r.EnforceSymmetricReturn = en.Text == "yes"
		}
		out = append(out, r)
	}
	return out
}

func appOverrideRules(root *panxml.Node) []AppOverrideRule {
	var out []AppOverrideRule
	for _, obj := range Resolve(root, appOverrideRuleType).All() {
		out = append(out, AppOverrideRule{
			Name:                 obj.Name,
			Description:          obj.Node.FindText("description"),
			SourceZones:          obj.Node.Members("from"),
			DestinationZones:     obj.Node.Members("to"),
			SourceAddresses:      obj.Node.Members("source"),
			DestinationAddresses: obj.Node.Members("destination"),
			Port:                 obj.Node.FindText("port"),
			Protocol:             obj.Node.FindText("protocol"),
			Application:          obj.Node.FindText("application"),
			Disabled:             yes(obj.Node, "disabled"),
		})
	}
	return out
}
