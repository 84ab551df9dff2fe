package resolve

import (
	"reflect"
	"testing"
)

func TestAddressKinds(t *testing.T) {
	input := `<config>
  <shared>
    <address>
      <entry name="host">
        <ip-netmask>10.1.1.1/32</ip-netmask>
        <description>a host</description>
        <tag>
          <member>prod</member>
        </tag>
      </entry>
      <entry name="pool">
        <ip-range>10.1.1.10-10.1.1.20</ip-range>
      </entry>
      <entry name="site">
        <fqdn>www.example.com</fqdn>
      </entry>
    </address>
  </shared>
</config>`
	got := addresses(mustParse(t, input))
	want := []Address{
		{Name: "host", Kind: "ip-netmask", Value: "10.1.1.1/32", Description: "a host", Tags: []string{"prod"}},
		{Name: "pool", Kind: "ip-range", Value: "10.1.1.10-10.1.1.20"},
		{Name: "site", Kind: "fqdn", Value: "www.example.com"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("addresses mismatch:\n got %+v\nwant %+v", got, want)
	}
}

func TestAddressGroups(t *testing.T) {
	input := `<config>
  <shared>
    <address-group>
      <entry name="web-servers">
        <static>
          <member>web1</member>
          <member>web2</member>
        </static>
      </entry>
      <entry name="tagged">
        <dynamic>
          <filter>'prod' and 'dmz'</filter>
        </dynamic>
      </entry>
    </address-group>
  </shared>
</config>`
	got := addressGroups(mustParse(t, input))
	if len(got) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(got))
	}
	if !reflect.DeepEqual(got[0].StaticMembers, []string{"web1", "web2"}) {
		t.Errorf("unexpected static members: %v", got[0].StaticMembers)
	}
	if got[1].DynamicFilter != "'prod' and 'dmz'" {
		t.Errorf("unexpected dynamic filter: %q", got[1].DynamicFilter)
	}
}

func TestServiceProtocols(t *testing.T) {
	input := `<config>
  <shared>
    <service>
      <entry name="http-8080">
        <protocol>
          <tcp>
            <port>8080</port>
          </tcp>
        </protocol>
      </entry>
      <entry name="dns-udp">
        <protocol>
          <udp>
            <port>53</port>
          </udp>
        </protocol>
        <description>dns over udp</description>
      </entry>
    </service>
  </shared>
</config>`
	got := services(mustParse(t, input))
	want := []Service{
		{Name: "http-8080", Protocol: "tcp", Port: "8080"},
		{Name: "dns-udp", Protocol: "udp", Port: "53", Description: "dns over udp"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("services mismatch:\n got %+v\nwant %+v", got, want)
	}
}

func TestExternalListKinds(t *testing.T) {
	input := `<config>
  <shared>
    <external-list>
      <entry name="bad-ips">
        <type>
          <ip>
            <url>https://feeds.example.com/bad-ips.txt</url>
            <recurring>
              <five-minute/>
            </recurring>
          </ip>
        </type>
      </entry>
      <entry name="bad-domains">
        <type>
          <domain>
            <url>https://feeds.example.com/bad-domains.txt</url>
            <recurring>
              <daily>
                <at>01</at>
              </daily>
            </recurring>
          </domain>
        </type>
        <description>threat feed</description>
      </entry>
    </external-list>
  </shared>
</config>`
	got := externalLists(mustParse(t, input))
	if len(got) != 2 {
		t.Fatalf("expected 2 lists, got %d", len(got))
	}
	if got[0].Kind != "ip" || got[0].Recurring != "five-minute" {
		t.Errorf("unexpected ip list: %+v", got[0])
	}
	if got[0].URL != "https://feeds.example.com/bad-ips.txt" {
		t.Errorf("unexpected url: %q", got[0].URL)
	}
	if got[1].Kind != "domain" || got[1].Recurring != "daily" {
		t.Errorf("unexpected domain list: %+v", got[1])
	}
}

func TestSchedules(t *testing.T) {
	input := `<config>
  <shared>
    <schedule>
      <entry name="work-hours">
        <schedule-type>
          <recurring>
            <entry name="weekly-mon"/>
            <entry name="weekly-fri"/>
          </recurring>
        </schedule-type>
      </entry>
      <entry name="maintenance">
        <schedule-type>
          <non-recurring/>
        </schedule-type>
      </entry>
    </schedule>
  </shared>
</config>`
	got := schedules(mustParse(t, input))
	if len(got) != 2 {
		t.Fatalf("expected 2 schedules, got %d", len(got))
	}
	if got[0].Kind != "recurring" || !reflect.DeepEqual(got[0].RecurringEntries, []string{"weekly-mon", "weekly-fri"}) {
		t.Errorf("unexpected recurring schedule: %+v", got[0])
	}
	if got[1].Kind != "non-recurring" {
		t.Errorf("unexpected schedule kind: %q", got[1].Kind)
	}
}

func TestSecurityRules(t *testing.T) {
	input := `<config>
  <devices>
    <entry name="localhost.localdomain">
      <device-group>
        <entry name="DG-A">
          <pre-rulebase>
            <security>
              <rules>
                <entry name="allow-web">
                  <from>
                    <member>trust</member>
                  </from>
                  <to>
                    <member>untrust</member>
                  </to>
                  <source>
                    <member>any</member>
                  </source>
                  <destination>
                    <member>web-servers</member>
                  </destination>
                  <application>
                    <member>web-browsing</member>
                    <member>ssl</member>
                  </application>
                  <service>
                    <member>application-default</member>
                  </service>
                  <action>allow</action>
                  <log-end>yes</log-end>
                </entry>
                <entry name="deny-old">
                  <action>deny</action>
                  <disabled>yes</disabled>
                </entry>
              </rules>
            </security>
          </pre-rulebase>
        </entry>
      </device-group>
    </entry>
  </devices>
</config>`
	got := securityRules(mustParse(t, input))
	if len(got) != 2 {
		t.Fatalf("expected 2 rules, got %d", len(got))
	}
	r := got[0]
	if r.Action != "allow" || !r.LogEnd || r.LogStart {
		t.Errorf("unexpected rule flags: %+v", r)
	}
	if !reflect.DeepEqual(r.Applications, []string{"web-browsing", "ssl"}) {
		t.Errorf("unexpected applications: %v", r.Applications)
	}
	if !got[1].Disabled {
		t.Error("expected deny-old to be disabled")
	}
}

func TestNATRuleTranslations(t *testing.T) {
	input := `<config>
  <devices>
    <entry name="localhost.localdomain">
      <device-group>
        <entry name="DG-A">
          <pre-rulebase>
            <nat>
              <rules>
                <entry name="outbound-snat">
                  <from>
                    <member>trust</member>
                  </from>
                  <source>
                    <member>10.0.0.0/8</member>
                  </source>
                  <destination>
                    <member>any</member>
                  </destination>
                  <service>any</service>
                  <source-translation>
                    <dynamic-ip-and-port>
                      <translated-address>
                        <member>203.0.113.10</member>
                      </translated-address>
                    </dynamic-ip-and-port>
                  </source-translation>
                </entry>
                <entry name="inbound-dnat">
                  <destination-translation>
                    <translated-address>10.0.0.80</translated-address>
                    <translated-port>8080</translated-port>
                  </destination-translation>
                </entry>
              </rules>
            </nat>
          </pre-rulebase>
        </entry>
      </device-group>
    </entry>
  </devices>
</config>`
	got := natRules(mustParse(t, input))
	if len(got) != 2 {
		t.Fatalf("expected 2 rules, got %d", len(got))
	}
	snat := got[0]
	if snat.SourceTranslationType != "dynamic-ip-and-port" {
		t.Errorf("unexpected source translation type: %q", snat.SourceTranslationType)
	}
	if !reflect.DeepEqual(snat.SourceTranslationAddresses, []string{"203.0.113.10"}) {
		t.Errorf("unexpected translated addresses: %v", snat.SourceTranslationAddresses)
	}
	dnat := got[1]
	if dnat.DestinationTranslationAddress != "10.0.0.80" || dnat.DestinationTranslationPort != "8080" {
		t.Errorf("unexpected destination translation: %+v", dnat)
	}
}

func TestPBFRuleActions(t *testing.T) {
	input := `<config>
  <devices>
    <entry name="localhost.localdomain">
      <device-group>
        <entry name="DG-A">
          <pre-rulebase>
            <pbf>
              <rules>
                <entry name="via-isp2">
                  <from>
                    <zone>
                      <member>trust</member>
                    </zone>
                  </from>
                  <action>
                    <forward>
                      <nexthop>
                        <ip-address>198.51.100.1</ip-address>
                      </nexthop>
                      <egress-interface>ethernet1/4</egress-interface>
                    </forward>
                  </action>
                  <enforce-symmetric-return>
                    <enabled>yes</enabled>
                  </enforce-symmetric-return>
                </entry>
                <entry name="drop-guest">
                  <action>
                    <discard/>
                  </action>
                </entry>
              </rules>
            </pbf>
          </pre-rulebase>
        </entry>
      </device-group>
    </entry>
  </devices>
</config>`
	got := pbfRules(mustParse(t, input))
	if len(got) != 2 {
		t.Fatalf("expected 2 rules, got %d", len(got))
	}
	fwd := got[0]
	if fwd.Action == nil || fwd.Action.Kind != "forward" {
		t.Fatalf("unexpected action: %+v", fwd.Action)
	}
	if fwd.Action.NexthopIP != "198.51.100.1" || fwd.Action.EgressInterface != "ethernet1/4" {
		t.Errorf("unexpected forward action: %+v", fwd.Action)
	}
	if !fwd.EnforceSymmetricReturn {
		t.Error("expected symmetric return enforcement")
	}
	if !reflect.DeepEqual(fwd.SourceZones, []string{"trust"}) {
		t.Errorf("unexpected source zones: %v", fwd.SourceZones)
	}
	if got[1].Action == nil || got[1].Action.Kind != "discard" {
		t.Errorf("unexpected discard action: %+v", got[1].Action)
	}
}

func TestBuildSummaryCounts(t *testing.T) {
	cfg := Build(mustParse(t, overrideConfig))
	if len(cfg.Addresses) != 2 {
		t.Errorf("expected 2 addresses, got %d", len(cfg.Addresses))
	}
	if len(cfg.DeviceGroups) != 1 || cfg.DeviceGroups[0].Name != "DG-A" {
		t.Errorf("unexpected device groups: %+v", cfg.DeviceGroups)
	}
	if cfg.BGP != nil || cfg.OSPF != nil {
		t.Error("expected no routing protocol configs")
	}
}
