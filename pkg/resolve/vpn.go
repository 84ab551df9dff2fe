package resolve

import "github.com/devnullNZ/Panorama2Terraform/pkg/panxml"

// PreSharedKeyPlaceholder substitutes for IKE pre-shared keys, which
// PAN-OS never includes in exports. Anything generated from a gateway
// carries this marker until the operator supplies the real key.
const PreSharedKeyPlaceholder = "***CHANGE_ME***"

// ProxyID is one proxy-id entry of an auto-key IPsec tunnel.
type ProxyID struct {
	Name     string `yaml:"name"`
	Local    string `yaml:"local,omitempty"`
	Remote   string `yaml:"remote,omitempty"`
	Protocol string `yaml:"protocol,omitempty"`
}

type IPsecTunnel struct {
	Name               string    `yaml:"name"`
	TunnelInterface    string    `yaml:"tunnel_interface,omitempty"`
	Kind               string    `yaml:"kind"` // auto-key, manual-key
	IKEGateway         string    `yaml:"ike_gateway,omitempty"`
	IPsecCryptoProfile string    `yaml:"ipsec_crypto_profile,omitempty"`
	ProxyIDs           []ProxyID `yaml:"proxy_ids,omitempty"`
}

type IKEGateway struct {
	Name                  string `yaml:"name"`
	Version               string `yaml:"version"` // ikev1, ikev2
	PeerAddress           string `yaml:"peer_address,omitempty"`
	PeerAddressType       string `yaml:"peer_address_type,omitempty"` // fqdn when set
	LocalAddress          string `yaml:"local_address,omitempty"`
	LocalAddressInterface string `yaml:"local_address_interface,omitempty"`
	AuthType              string `yaml:"auth_type"` // pre-shared-key, certificate
	PreSharedKey          string `yaml:"pre_shared_key,omitempty"`
	CertificateProfile    string `yaml:"certificate_profile,omitempty"`
	IKECryptoProfile      string `yaml:"ike_crypto_profile,omitempty"`
	LocalID               string `yaml:"local_id,omitempty"`
	PeerID                string `yaml:"peer_id,omitempty"`
}

type IKECryptoProfile struct {
	Name            string   `yaml:"name"`
	DHGroups        []string `yaml:"dh_groups,omitempty"`
	Authentications []string `yaml:"authentications,omitempty"`
	Encryptions     []string `yaml:"encryptions,omitempty"`
	LifetimeHours   string   `yaml:"lifetime_hours,omitempty"`
}

type IPsecCryptoProfile struct {
	Name            string   `yaml:"name"`
	Protocol        string   `yaml:"protocol"` // esp, ah
	Encryptions     []string `yaml:"encryptions,omitempty"`
	Authentications []string `yaml:"authentications,omitempty"`
	DHGroup         string   `yaml:"dh_group,omitempty"`
	LifetimeHours   string   `yaml:"lifetime_hours,omitempty"`
	LifetimeKB      string   `yaml:"lifetime_kb,omitempty"`
}

func ipsecTunnels(root *panxml.Node) []IPsecTunnel {
	var out []IPsecTunnel
	for _, obj := range Resolve(root, ipsecTunnelType).All() {
		t := IPsecTunnel{
			Name:            obj.Name,
			TunnelInterface: obj.Node.FindText("tunnel-interface"),
			Kind:            "auto-key",
		}
		if ak := obj.Node.Child("auto-key"); ak != nil {
			if gw := ak.Find("ike-gateway/entry"); gw != nil {
				t.IKEGateway = gw.Name()
			}
			t.IPsecCryptoProfile = ak.FindText("ipsec-crypto-profile")
			for _, proxy := range ak.FindAll("//proxy-id/entry") {
				if proxy.Name() == "" {
					continue
				}
				t.ProxyIDs = append(t.ProxyIDs, ProxyID{
					Name:     proxy.Name(),
					Local:    proxy.FindText("local"),
					Remote:   proxy.FindText("remote"),
					Protocol: proxy.FindText("protocol/number"),
				})
			}
		}
		if obj.Node.HasChild("manual-key") {
			t.Kind = "manual-key"
		}
		out = append(out, t)
	}
	return out
}

func ikeGateways(root *panxml.Node) []IKEGateway {
	var out []IKEGateway
	for _, obj := range Resolve(root, ikeGatewayType).All() {
		gw := IKEGateway{
			Name:         obj.Name,
			Version:      "ikev1",
			AuthType:     "pre-shared-key",
			PreSharedKey: PreSharedKeyPlaceholder,
		}
		if proto := obj.Node.Child("protocol"); proto != nil {
			if proto.HasChild("ikev2") {
				gw.Version = "ikev2"
			}
			if vn := proto.Child(gw.Version); vn != nil {
				gw.IKECryptoProfile = vn.FindText("ike-crypto-profile")
			}
		}
		if ip := obj.Node.Find("//peer-address/ip"); ip != nil {
			gw.PeerAddress = ip.Text
		}
		if fqdn := obj.Node.Find("//peer-address/fqdn"); fqdn != nil {
			gw.PeerAddress = fqdn.Text
			gw.PeerAddressType = "fqdn"
		}
		if ip := obj.Node.Find("//local-address/ip"); ip != nil {
			gw.LocalAddress = ip.Text
		}
		if iface := obj.Node.Find("//local-address/interface"); iface != nil {
			gw.LocalAddressInterface = iface.Text
		}
		if auth := obj.Node.Child("authentication"); auth != nil {
			if cert := auth.Child("certificate"); cert != nil && !auth.HasChild("pre-shared-key") {
				gw.AuthType = "certificate"
				gw.CertificateProfile = cert.FindText("profile")
			}
		}
		gw.LocalID = obj.Node.FindText("local-id/id")
		gw.PeerID = obj.Node.FindText("peer-id/id")
		out = append(out, gw)
	}
	return out
}

func ikeCryptoProfiles(root *panxml.Node) []IKECryptoProfile {
	var out []IKECryptoProfile
	for _, obj := range Resolve(root, ikeCryptoType).All() {
		out = append(out, IKECryptoProfile{
			Name:            obj.Name,
			DHGroups:        obj.Node.Members("dh-group"),
			Authentications: obj.Node.Members("authentication"),
			Encryptions:     obj.Node.Members("encryption"),
			LifetimeHours:   obj.Node.FindText("lifetime/hours"),
		})
	}
	return out
}

func ipsecCryptoProfiles(root *panxml.Node) []IPsecCryptoProfile {
	var out []IPsecCryptoProfile
	for _, obj := range Resolve(root, ipsecCryptoType).All() {
		p := IPsecCryptoProfile{
			Name:            obj.Name,
			Protocol:        "esp",
			Encryptions:     obj.Node.Members("esp/encryption"),
			Authentications: obj.Node.Members("esp/authentication"),
			DHGroup:         obj.Node.FindText("dh-group"),
			LifetimeHours:   obj.Node.FindText("lifetime/hours"),
			LifetimeKB:      obj.Node.FindText("lifetime/kilobytes"),
		}
		if obj.Node.HasChild("ah") {
			p.Protocol = "ah"
			p.Authentications = obj.Node.Members("ah/authentication")
		}
		out = append(out, p)
	}
	return out
}
