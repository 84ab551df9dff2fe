package render

import (
	"github.com/devnullNZ/Panorama2Terraform/pkg/resolve"
)

// renderVPN writes crypto profiles, IKE gateways, tunnels, and proxy IDs
// into one file. Pre-shared keys never appear in exports, so every
// gateway gets the placeholder and a warning the operator cannot miss.
func (r *Renderer) renderVPN(cfg *resolve.Config) error {
	if len(cfg.IKEGateways) == 0 && len(cfg.IPsecTunnels) == 0 {
		return nil
	}
	d := newDoc(
		"IPsec VPN Configuration",
		"IMPORTANT: Pre-shared keys are set to generic placeholders.",
		"You MUST update all pre-shared keys before applying!",
		`Search for "`+resolve.PreSharedKeyPlaceholder+`" and replace with actual keys.`,
	)

	if len(cfg.IKECryptoProfiles) > 0 {
		d.comment("IKE Crypto Profiles")
		d.blank()
		for _, prof := range cfg.IKECryptoProfiles {
			b := d.resource("panos_ike_crypto_profile", sanitizeName("ike_profile_"+prof.Name))
			setString(b, "name", prof.Name)
			setList(b, "dh_groups", prof.DHGroups)
			setList(b, "authentications", prof.Authentications)
			setList(b, "encryptions", prof.Encryptions)
			setNumber(b, "lifetime_hours", prof.LifetimeHours)
		}
	}

	if len(cfg.IPsecCryptoProfiles) > 0 {
		d.comment("IPsec Crypto Profiles")
		d.blank()
		for _, prof := range cfg.IPsecCryptoProfiles {
			b := d.resource("panos_ipsec_crypto_profile", sanitizeName("ipsec_profile_"+prof.Name))
			setString(b, "name", prof.Name)
			setString(b, "protocol", orDefault(prof.Protocol, "esp"))
			setList(b, "encryptions", prof.Encryptions)
			setList(b, "authentications", prof.Authentications)
			setOptional(b, "dh_group", prof.DHGroup)
			setNumber(b, "lifetime_hours", prof.LifetimeHours)
		}
	}

	if len(cfg.IKEGateways) > 0 {
		d.comment(
			"IKE Gateways",
			`WARNING: Pre-shared keys use placeholder "`+resolve.PreSharedKeyPlaceholder+`"`,
			"Update these with actual keys from your key management system!",
		)
		d.blank()
		for _, gw := range cfg.IKEGateways {
			b := d.resource("panos_ike_gateway", sanitizeName("ike_gw_"+gw.Name))
			setString(b, "name", gw.Name)
			setString(b, "version", gw.Version)
			if gw.PeerAddress != "" {
				if gw.PeerAddressType == "fqdn" {
					setString(b, "peer_address_type", "fqdn")
				} else {
					setString(b, "peer_address_type", "ip")
				}
				setString(b, "peer_address_value", gw.PeerAddress)
			}
			if gw.LocalAddressInterface != "" {
				setString(b, "interface", gw.LocalAddressInterface)
			} else if gw.LocalAddress != "" {
				setString(b, "local_address_value", gw.LocalAddress)
			}
			setString(b, "auth_type", gw.AuthType)
			if gw.AuthType == "pre-shared-key" {
				setStringComment(b, "pre_shared_key", gw.PreSharedKey, "*** CHANGE THIS KEY ***")
			}
			if gw.IKECryptoProfile != "" {
				setRef(b, "ike_crypto_profile",
					"panos_ike_crypto_profile", sanitizeName("ike_profile_"+gw.IKECryptoProfile), "name")
			}
			if gw.LocalID != "" {
				setString(b, "local_id_type", "ufqdn")
				setString(b, "local_id_value", gw.LocalID)
			}
			if gw.PeerID != "" {
				setString(b, "peer_id_type", "ufqdn")
				setString(b, "peer_id_value", gw.PeerID)
			}
		}
	}

	if len(cfg.IPsecTunnels) > 0 {
		d.comment("IPsec Tunnels")
		d.blank()
		for _, tunnel := range cfg.IPsecTunnels {
			tunnelResource := sanitizeName("tunnel_" + tunnel.Name)
			b := d.resource("panos_ipsec_tunnel", tunnelResource)
			setString(b, "name", tunnel.Name)
			setOptional(b, "tunnel_interface", tunnel.TunnelInterface)
			if tunnel.Kind == "auto-key" {
				setString(b, "type", "auto-key")
				if tunnel.IKEGateway != "" {
					setRef(b, "ak_ike_gateway",
						"panos_ike_gateway", sanitizeName("ike_gw_"+tunnel.IKEGateway), "name")
				}
				if tunnel.IPsecCryptoProfile != "" {
					setRef(b, "ak_ipsec_crypto_profile",
						"panos_ipsec_crypto_profile", sanitizeName("ipsec_profile_"+tunnel.IPsecCryptoProfile), "name")
				}
			}

			for _, proxy := range tunnel.ProxyIDs {
				pb := d.resource("panos_ipsec_tunnel_proxy_id_ipv4",
					sanitizeName("proxy_"+tunnel.Name+"_"+proxy.Name))
				setRef(pb, "ipsec_tunnel", "panos_ipsec_tunnel", tunnelResource, "name")
				setString(pb, "name", proxy.Name)
				setOptional(pb, "local", proxy.Local)
				setOptional(pb, "remote", proxy.Remote)
				setNumber(pb, "protocol_number", proxy.Protocol)
			}
		}
	}
	return r.write("vpn.tf", d.bytes())
}
