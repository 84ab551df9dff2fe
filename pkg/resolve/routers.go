package resolve

import (
	"sort"
	"strings"

	"github.com/devnullNZ/Panorama2Terraform/pkg/panxml"
)

// Router kinds. Virtual routers are the legacy routing engine; logical
// routers are the advanced routing engine of PAN-OS 10.2+.
const (
	RouterVirtual = "virtual"
	RouterLogical = "logical"
)

// Template attributed to routers found outside any template scope.
const DeviceSpecific = "device-specific"

// StaticRoute is one entry of a router's IPv4 routing table. NextRouter
// holds the next-vr (virtual) or next-lr (logical) hop when the route
// points at another router instead of an IP.
type StaticRoute struct {
	Name        string `yaml:"name"`
	Destination string `yaml:"destination,omitempty"`
	NexthopIP   string `yaml:"nexthop_ip,omitempty"`
	NextRouter  string `yaml:"next_router,omitempty"`
	Metric      string `yaml:"metric,omitempty"`
}

// Router is one deduplicated router definition. The same router is
// typically repeated across template scopes; descriptors are keyed by
// name plus an interface signature so that distinct same-name routers
// survive while repeats collapse.
type Router struct {
	Name         string        `yaml:"name"`
	Kind         string        `yaml:"kind"`
	Template     string        `yaml:"template,omitempty"`
	Interfaces   []string      `yaml:"interfaces,omitempty"`
	StaticRoutes []StaticRoute `yaml:"static_routes,omitempty"`
}

// Signature identifies a router configuration: the name joined with the
// first five interface names in sorted order. Two same-name routers with
// different signatures are different routers.
func (r Router) Signature() string {
	ifaces := append([]string(nil), r.Interfaces...)
	if len(ifaces) > 5 {
		ifaces = ifaces[:5]
	}
	sort.Strings(ifaces)
	return r.Name + "_" + strings.Join(ifaces, ",")
}

// routerSet keeps one Router per signature in first-seen order. A
// replacement must carry strictly more interfaces than the stored
// descriptor; an equally complete repeat never displaces the original,
// so the first template keeps the attribution.
type routerSet struct {
	index map[string]int
	items []Router
}

func newRouterSet() *routerSet {
	return &routerSet{index: make(map[string]int)}
}

func (s *routerSet) add(r Router) {
	sig := r.Signature()
	if i, ok := s.index[sig]; ok {
		if len(r.Interfaces) > len(s.items[i].Interfaces) {
			s.items[i] = r
		}
		return
	}
	s.index[sig] = len(s.items)
	s.items = append(s.items, r)
}

// Routers collects every virtual and logical router in the export:
// template scopes first, then device-level definitions. The two kinds are
// aggregated in separate signature spaces, so a virtual and a logical
// router may share a name and signature and both survive.
func Routers(root *panxml.Node) []Router {
	out := collectRouters(root, RouterVirtual, "virtual-router", "next-vr")
	return append(out, collectRouters(root, RouterLogical, "logical-router", "next-lr")...)
}

func collectRouters(root *panxml.Node, kind, tag, nextHopTag string) []Router {
	set := newRouterSet()
	for _, tmpl := range root.FindAll("//template/entry") {
		for _, entry := range tmpl.FindAll("//network/" + tag + "/entry") {
			if entry.Name() == "" {
				continue
			}
			set.add(buildRouter(entry, kind, tmpl.Name(), nextHopTag))
		}
	}
	for _, entry := range root.FindAll("//devices/entry/network/" + tag + "/entry") {
		if entry.Name() == "" {
			continue
		}
		set.add(buildRouter(entry, kind, DeviceSpecific, nextHopTag))
	}
	return set.items
}

func buildRouter(entry *panxml.Node, kind, template, nextHopTag string) Router {
	r := Router{
		Name:     entry.Name(),
		Kind:     kind,
		Template: template,
	}
	for _, m := range entry.FindAll("//interface/member") {
		if m.Text != "" {
			r.Interfaces = append(r.Interfaces, m.Text)
		}
	}
	for _, route := range entry.FindAll("//routing-table/ip/static-route/entry") {
		if route.Name() == "" {
			continue
		}
		r.StaticRoutes = append(r.StaticRoutes, StaticRoute{
			Name:        route.Name(),
			Destination: route.FindText("destination"),
			NexthopIP:   route.FindText("nexthop/ip-address"),
			NextRouter:  route.FindText("nexthop/" + nextHopTag),
			Metric:      route.FindText("metric"),
		})
	}
	return r
}
