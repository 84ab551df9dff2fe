package render

import (
	"fmt"

	"github.com/devnullNZ/Panorama2Terraform/pkg/resolve"
)

func (r *Renderer) renderZones(cfg *resolve.Config) error {
	if len(cfg.Zones) == 0 {
		return nil
	}
	d := newDoc("Zone Configurations")
	for _, z := range cfg.Zones {
		b := d.resource("panos_zone", sanitizeName(z.Name))
		setString(b, "name", z.Name)
		setString(b, "mode", z.Mode)
		setList(b, "interfaces", z.Interfaces)
		setOptional(b, "zone_protection_profile", z.ZoneProtectionProfile)
	}
	return r.write("zones.tf", d.bytes())
}

// renderRouters emits every router as panos_virtual_router. Logical
// routers get the same resource type with a note, since provider support
// for panos_logical_router varies by version.
func (r *Renderer) renderRouters(cfg *resolve.Config) error {
	if len(cfg.Routers) == 0 {
		return nil
	}
	virtual, logical := 0, 0
	for _, rt := range cfg.Routers {
		if rt.Kind == "logical" {
			logical++
		} else {
			virtual++
		}
	}

	d := newDoc(
		"Router Configurations",
		"Supports both Virtual Routers (legacy) and Logical Routers (Advanced Routing Engine)",
	)
	if logical > 0 {
		d.comment(
			"NOTE: Your config uses Advanced Routing Engine (PAN-OS 10.2+)",
			fmt.Sprintf("- %d Virtual Routers (legacy)", virtual),
			fmt.Sprintf("- %d Logical Routers (advanced)", logical),
			"",
			"Terraform provider panos supports both types.",
			"Virtual routers use: panos_virtual_router",
			"Logical routers use: panos_logical_router (if supported by provider version)",
			"Check: https://registry.terraform.io/providers/PaloAltoNetworks/panos/latest/docs",
		)
		d.blank()
	}

	// Same-name routers from different templates collide after
	// sanitizing; later ones get a numeric suffix.
	counts := make(map[string]int)
	for _, rt := range cfg.Routers {
		base := sanitizeName(rt.Name)
		counts[base]++
		resourceName := base
		if counts[base] > 1 {
			resourceName = fmt.Sprintf("%s_%d", base, counts[base])
		}

		kind := "Virtual Router (Legacy)"
		if rt.Kind == "logical" {
			kind = "Logical Router (Advanced Routing Engine)"
		}
		d.comment(
			"Source: "+orDefault(rt.Template, "unknown"),
			"Type: "+kind,
		)
		if rt.Kind == "logical" {
			d.comment(
				"NOTE: Terraform provider may use panos_virtual_router for logical routers",
				"Check provider documentation for logical router support",
			)
		}
		b := d.resource("panos_virtual_router", resourceName)
		setString(b, "name", rt.Name)
		setList(b, "interfaces", rt.Interfaces)

		for _, route := range rt.StaticRoutes {
			rb := d.resource("panos_static_route_ipv4", sanitizeName(resourceName+"_"+route.Name))
			setString(rb, "name", route.Name)
			setRef(rb, "virtual_router", "panos_virtual_router", resourceName, "name")
			setOptional(rb, "destination", route.Destination)
			if route.NexthopIP != "" {
				setString(rb, "next_hop", route.NexthopIP)
			} else if route.NextRouter != "" {
				setString(rb, "interface", route.NextRouter)
			}
			setNumber(rb, "metric", route.Metric)
		}
	}
	return r.write("virtual_routers.tf", d.bytes())
}

func (r *Renderer) renderInterfaces(cfg *resolve.Config) error {
	if len(cfg.Interfaces) == 0 {
		return nil
	}
	d := newDoc(
		"Ethernet Interface Configurations",
		"Note: These are reference configurations. Adjust for your hardware platform.",
	)
	for _, iface := range cfg.Interfaces {
		if iface.Type != "ethernet" {
			continue
		}
		switch iface.Mode {
		case "layer3":
			b := d.resource("panos_ethernet_interface", sanitizeName(iface.Name))
			setString(b, "name", iface.Name)
			setString(b, "mode", "layer3")
			setOptional(b, "comment", iface.Comment)
			setList(b, "static_ips", iface.IPAddresses)
			setOptional(b, "management_profile", iface.ManagementProfile)
		case "layer2":
			b := d.resource("panos_layer2_subinterface", sanitizeName(iface.Name))
			setString(b, "name", iface.Name)
			setOptional(b, "comment", iface.Comment)
		}
	}
	return r.write("interfaces.tf", d.bytes())
}

func (r *Renderer) renderBGP(cfg *resolve.Config) error {
	if cfg.BGP == nil {
		return nil
	}
	d := newDoc(
		"BGP Configuration",
		"Note: BGP configuration requires careful validation.",
		"Verify all peer addresses and AS numbers before applying.",
	)

	b := d.resource("panos_bgp", "default")
	setRef(b, "virtual_router", "panos_virtual_router", "default", "name")
	setBool(b, "enable", true)
	setOptional(b, "router_id", cfg.BGP.RouterID)
	setOptional(b, "as_number", cfg.BGP.ASNumber)

	for _, pg := range cfg.BGP.PeerGroups {
		b := d.resource("panos_bgp_peer_group", sanitizeName("pg_"+pg.Name))
		setRef(b, "virtual_router", "panos_virtual_router", "default", "name")
		setString(b, "name", pg.Name)
		setOptional(b, "type", pg.Type)
		setDependsOn(b, "panos_bgp", "default")
	}

	for _, peer := range cfg.BGP.Peers {
		b := d.resource("panos_bgp_peer", sanitizeName("peer_"+peer.Name))
		setRef(b, "virtual_router", "panos_virtual_router", "default", "name")
		setString(b, "bgp_peer_group", peer.PeerGroup)
		setString(b, "name", peer.Name)
		setBool(b, "enable", peer.Enable)
		setOptional(b, "peer_as", peer.PeerAS)
		setOptional(b, "local_address_interface", peer.LocalAddressInterface)
		setOptional(b, "local_address_ip", peer.LocalAddressIP)
		setOptional(b, "peer_address_ip", peer.PeerAddressIP)
		setDependsOn(b, "panos_bgp", "default")
	}
	return r.write("bgp.tf", d.bytes())
}

func (r *Renderer) renderOSPF(cfg *resolve.Config) error {
	if cfg.OSPF == nil {
		return nil
	}
	d := newDoc(
		"OSPF Configuration",
		"Note: OSPF configuration requires careful validation.",
		"Verify all area configurations and interface assignments.",
	)

	b := d.resource("panos_ospf", "default")
	setRef(b, "virtual_router", "panos_virtual_router", "default", "name")
	setBool(b, "enable", true)
	setOptional(b, "router_id", cfg.OSPF.RouterID)

	for _, area := range cfg.OSPF.Areas {
		b := d.resource("panos_ospf_area", sanitizeName("area_"+area.AreaID))
		setRef(b, "virtual_router", "panos_virtual_router", "default", "name")
		setString(b, "name", area.AreaID)
		if area.Type != "" && area.Type != "normal" {
			setString(b, "type", area.Type)
		}
		setDependsOn(b, "panos_ospf", "default")
	}

	for _, iface := range cfg.OSPF.Interfaces {
		b := d.resource("panos_ospf_area_interface", sanitizeName("ospf_"+iface.Name))
		setRef(b, "virtual_router", "panos_virtual_router", "default", "name")
		setStringComment(b, "ospf_area", "0.0.0.0", "Adjust to correct area")
		setString(b, "name", iface.Name)
		setBool(b, "enable", iface.Enable)
		if iface.Passive {
			setBool(b, "passive", true)
		}
		setNumber(b, "metric", iface.Metric)
	}
	return r.write("ospf.tf", d.bytes())
}
