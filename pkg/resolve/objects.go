package resolve

import "github.com/devnullNZ/Panorama2Terraform/pkg/panxml"

// DeviceGroup is one device-group entry, used by the converter summary and
// the splitter's group inventory.
type DeviceGroup struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
}

// Address is a named address object. Stub entries carry only the name.
type Address struct {
	Name        string   `yaml:"name"`
	Kind        string   `yaml:"kind,omitempty"` // ip-netmask, ip-range, fqdn
	Value       string   `yaml:"value,omitempty"`
	Description string   `yaml:"description,omitempty"`
	Tags        []string `yaml:"tags,omitempty"`
	Stub        bool     `yaml:"stub,omitempty"`
}

type AddressGroup struct {
	Name          string   `yaml:"name"`
	StaticMembers []string `yaml:"static_members,omitempty"`
	DynamicFilter string   `yaml:"dynamic_filter,omitempty"`
	Description   string   `yaml:"description,omitempty"`
	Stub          bool     `yaml:"stub,omitempty"`
}

type Service struct {
	Name        string `yaml:"name"`
	Protocol    string `yaml:"protocol,omitempty"` // tcp, udp
	Port        string `yaml:"port,omitempty"`
	Description string `yaml:"description,omitempty"`
	Stub        bool   `yaml:"stub,omitempty"`
}

type ServiceGroup struct {
	Name        string   `yaml:"name"`
	Members     []string `yaml:"members,omitempty"`
	Description string   `yaml:"description,omitempty"`
	Stub        bool     `yaml:"stub,omitempty"`
}

type Tag struct {
	Name     string `yaml:"name"`
	Color    string `yaml:"color,omitempty"`
	Comments string `yaml:"comments,omitempty"`
}

type Region struct {
	Name      string   `yaml:"name"`
	Addresses []string `yaml:"addresses,omitempty"`
}

type CustomURLCategory struct {
	Name        string   `yaml:"name"`
	Kind        string   `yaml:"kind,omitempty"`
	Sites       []string `yaml:"sites,omitempty"`
	Description string   `yaml:"description,omitempty"`
}

type ApplicationGroup struct {
	Name    string   `yaml:"name"`
	Members []string `yaml:"members,omitempty"`
}

type ApplicationFilter struct {
	Name                  string   `yaml:"name"`
	Categories            []string `yaml:"categories,omitempty"`
	Subcategories         []string `yaml:"subcategories,omitempty"`
	Technologies          []string `yaml:"technologies,omitempty"`
	Risks                 []string `yaml:"risks,omitempty"`
	Evasive               string   `yaml:"evasive,omitempty"`
	ExcessiveBandwidthUse string   `yaml:"excessive_bandwidth_use,omitempty"`
	ProneToMisuse         string   `yaml:"prone_to_misuse,omitempty"`
	IsSaaS                string   `yaml:"is_saas,omitempty"`
	TransfersFiles        string   `yaml:"transfers_files,omitempty"`
	TunnelsOtherApps      string   `yaml:"tunnels_other_apps,omitempty"`
	UsedByMalware         string   `yaml:"used_by_malware,omitempty"`
}

// ExternalList is an external dynamic list: source URL plus the refresh
// schedule granularity when one is configured.
type ExternalList struct {
	Name        string `yaml:"name"`
	Kind        string `yaml:"kind,omitempty"` // ip, domain, url
	URL         string `yaml:"url,omitempty"`
	Recurring   string `yaml:"recurring,omitempty"` // hourly, five-minute, daily
	Description string `yaml:"description,omitempty"`
}

type Schedule struct {
	Name             string   `yaml:"name"`
	Kind             string   `yaml:"kind,omitempty"` // recurring, non-recurring
	RecurringEntries []string `yaml:"recurring_entries,omitempty"`
}

func deviceGroups(root *panxml.Node) []DeviceGroup {
	var out []DeviceGroup
	for _, obj := range Resolve(root, deviceGroupType).All() {
		out = append(out, DeviceGroup{
			Name:        obj.Name,
			Description: obj.Node.FindText("description"),
		})
	}
	return out
}

func addresses(root *panxml.Node) []Address {
	var out []Address
	for _, obj := range Resolve(root, addressType).All() {
		if obj.Stub {
			out = append(out, Address{Name: obj.Name, Stub: true})
			continue
		}
		a := Address{
			Name:        obj.Name,
			Description: obj.Node.FindText("description"),
			Tags:        obj.Node.Members("tag"),
		}
		for _, kind := range []string{"ip-netmask", "ip-range", "fqdn"} {
			if v := obj.Node.Child(kind); v != nil {
				a.Kind = kind
				a.Value = v.Text
			}
		}
		out = append(out, a)
	}
	return out
}

func addressGroups(root *panxml.Node) []AddressGroup {
	var out []AddressGroup
	for _, obj := range Resolve(root, addressGroupType).All() {
		if obj.Stub {
			out = append(out, AddressGroup{Name: obj.Name, Stub: true})
			continue
		}
		g := AddressGroup{
			Name:          obj.Name,
			StaticMembers: obj.Node.Members("static"),
			Description:   obj.Node.FindText("description"),
		}
		if f := obj.Node.Find("//dynamic/filter"); f != nil {
			g.DynamicFilter = f.Text
		}
		out = append(out, g)
	}
	return out
}

func services(root *panxml.Node) []Service {
	var out []Service
	for _, obj := range Resolve(root, serviceType).All() {
		if obj.Stub {
			out = append(out, Service{Name: obj.Name, Stub: true})
			continue
		}
		s := Service{
			Name:        obj.Name,
			Description: obj.Node.FindText("description"),
		}
		if proto := obj.Node.Child("protocol"); proto != nil {
			for _, kind := range []string{"tcp", "udp"} {
				if p := proto.Child(kind); p != nil {
					s.Protocol = kind
					s.Port = p.FindText("port")
					break
				}
			}
		}
		out = append(out, s)
	}
	return out
}

func serviceGroups(root *panxml.Node) []ServiceGroup {
	var out []ServiceGroup
	for _, obj := range Resolve(root, serviceGroupType).All() {
		if obj.Stub {
			out = append(out, ServiceGroup{Name: obj.Name, Stub: true})
			continue
		}
		out = append(out, ServiceGroup{
			Name:        obj.Name,
			Members:     obj.Node.Members("members"),
			Description: obj.Node.FindText("description"),
		})
	}
	return out
}

func tags(root *panxml.Node) []Tag {
	var out []Tag
	for _, obj := range Resolve(root, tagType).All() {
		out = append(out, Tag{
			Name:     obj.Name,
			Color:    obj.Node.FindText("color"),
			Comments: obj.Node.FindText("comments"),
		})
	}
	return out
}

func regions(root *panxml.Node) []Region {
	var out []Region
	for _, obj := range Resolve(root, regionType).All() {
		r := Region{Name: obj.Name}
		for _, m := range obj.Node.FindAll("//address/member") {
			if m.Text != "" {
				r.Addresses = append(r.Addresses, m.Text)
			}
		}
		out = append(out, r)
	}
	return out
}

func urlCategories(root *panxml.Node) []CustomURLCategory {
	var out []CustomURLCategory
	for _, obj := range Resolve(root, urlCategoryType).All() {
		c := CustomURLCategory{
			Name:        obj.Name,
			Kind:        obj.Node.FindText("type"),
			Description: obj.Node.FindText("description"),
		}
		for _, m := range obj.Node.FindAll("//list/member") {
			if m.Text != "" {
				c.Sites = append(c.Sites, m.Text)
			}
		}
		out = append(out, c)
	}
	return out
}

func appGroups(root *panxml.Node) []ApplicationGroup {
	var out []ApplicationGroup
	for _, obj := range Resolve(root, appGroupType).All() {
		out = append(out, ApplicationGroup{
			Name:    obj.Name,
			Members: obj.Node.Members("members"),
		})
	}
	return out
}

func appFilters(root *panxml.Node) []ApplicationFilter {
	var out []ApplicationFilter
	for _, obj := range Resolve(root, appFilterType).All() {
		out = append(out, ApplicationFilter{
			Name:                  obj.Name,
			Categories:            obj.Node.Members("category"),
			Subcategories:         obj.Node.Members("subcategory"),
			Technologies:          obj.Node.Members("technology"),
			Risks:                 obj.Node.Members("risk"),
			Evasive:               obj.Node.FindText("evasive"),
			ExcessiveBandwidthUse: obj.Node.FindText("excessive-bandwidth-use"),
			ProneToMisuse:         obj.Node.FindText("prone-to-misuse"),
			IsSaaS:                obj.Node.FindText("is-saas"),
			TransfersFiles:        obj.Node.FindText("transfers-files"),
			TunnelsOtherApps:      obj.Node.FindText("tunnels-other-apps"),
			UsedByMalware:         obj.Node.FindText("used-by-malware"),
		})
	}
	return out
}

func externalLists(root *panxml.Node) []ExternalList {
	var out []ExternalList
	for _, obj := range Resolve(root, externalListType).All() {
		e := ExternalList{
			Name:        obj.Name,
			Description: obj.Node.FindText("description"),
		}
		if typ := obj.Node.Child("type"); typ != nil {
			for _, kind := range []string{"ip", "domain", "url"} {
				if typ.Child(kind) == nil {
					continue
				}
				e.Kind = kind
				e.URL = typ.FindText(kind + "/url")
				switch {
				case typ.Find("//recurring/hourly") != nil:
					e.Recurring = "hourly"
				case typ.Find("//recurring/five-minute") != nil:
					e.Recurring = "five-minute"
				case typ.Find("//recurring/daily") != nil:
					e.Recurring = "daily"
				}
				break
			}
		}
		out = append(out, e)
	}
	return out
}

func schedules(root *panxml.Node) []Schedule {
	var out []Schedule
	for _, obj := range Resolve(root, scheduleType).All() {
		s := Schedule{Name: obj.Name}
		if rec := obj.Node.Find("schedule-type/recurring"); rec != nil {
			s.Kind = "recurring"
			for _, e := range rec.FindAll("entry") {
				if e.Name() != "" {
					s.RecurringEntries = append(s.RecurringEntries, e.Name())
				}
			}
		}
		if obj.Node.Find("schedule-type/non-recurring") != nil {
			s.Kind = "non-recurring"
		}
		out = append(out, s)
	}
	return out
}
