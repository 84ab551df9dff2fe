package resolve

import (
	"reflect"
	"testing"
)

// Two templates define VR1 with the same first-five interface signature;
// the second definition carries one more interface. A third template
// defines a VR1 wired to different interfaces entirely.
const routersConfig = `<config>
  <devices>
    <entry name="localhost.localdomain">
      <template>
        <entry name="TPL-Branch">
          <config>
            <devices>
              <entry name="localhost.localdomain">
                <network>
                  <virtual-router>
                    <entry name="VR1">
                      <interface>
                        <member>ethernet1/1</member>
                        <member>ethernet1/2</member>
                        <member>ethernet1/3</member>
                        <member>ethernet1/4</member>
                        <member>ethernet1/5</member>
                      </interface>
                      <routing-table>
                        <ip>
                          <static-route>
                            <entry name="default">
                              <destination>0.0.0.0/0</destination>
                              <nexthop>
                                <ip-address>10.0.0.1</ip-address>
                              </nexthop>
                              <metric>10</metric>
                            </entry>
                          </static-route>
                        </ip>
                      </routing-table>
                    </entry>
                  </virtual-router>
                </network>
              </entry>
            </devices>
          </config>
        </entry>
        <entry name="TPL-Branch-Full">
          <config>
            <devices>
              <entry name="localhost.localdomain">
                <network>
                  <virtual-router>
                    <entry name="VR1">
                      <interface>
                        <member>ethernet1/1</member>
                        <member>ethernet1/2</member>
                        <member>ethernet1/3</member>
                        <member>ethernet1/4</member>
                        <member>ethernet1/5</member>
                        <member>ethernet1/6</member>
                      </interface>
                    </entry>
                  </virtual-router>
                </network>
              </entry>
            </devices>
          </config>
        </entry>
        <entry name="TPL-DC">
          <config>
            <devices>
              <entry name="localhost.localdomain">
                <network>
                  <virtual-router>
                    <entry name="VR1">
                      <interface>
                        <member>ethernet1/9</member>
                        <member>ethernet1/10</member>
                      </interface>
                    </entry>
                  </virtual-router>
                </network>
              </entry>
            </devices>
          </config>
        </entry>
      </template>
    </entry>
  </devices>
</config>`

func TestRouterSameSignatureKeepsMoreComplete(t *testing.T) {
	routers := Routers(mustParse(t, routersConfig))

	// VR1 five-interface and six-interface variants share a signature
	// (first five sorted); the six-interface definition must win. The
	// two-interface VR1 has a different signature and coexists.
	if len(routers) != 2 {
		t.Fatalf("expected 2 routers, got %d", len(routers))
	}
	big := routers[0]
	if len(big.Interfaces) != 6 {
		t.Errorf("expected the more complete definition to win, got %d interfaces", len(big.Interfaces))
	}
	if big.Kind != RouterVirtual {
		t.Errorf("expected virtual kind, got %q", big.Kind)
	}
}

func TestRouterDifferentSignaturesCoexist(t *testing.T) {
	routers := Routers(mustParse(t, routersConfig))
	var sigs []string
	for _, r := range routers {
		if r.Name != "VR1" {
			t.Errorf("unexpected router %q", r.Name)
		}
		sigs = append(sigs, r.Signature())
	}
	if len(sigs) != 2 || sigs[0] == sigs[1] {
		t.Errorf("expected two distinct signatures, got %v", sigs)
	}
}

func TestRouterTemplateAttributionStable(t *testing.T) {
	routers := Routers(mustParse(t, routersConfig))
	// The six-interface replacement came from TPL-Branch-Full, so the
	// stored descriptor carries that template. The device-level re-scan
	// (the same entries match the devices/entry path inside template
	// contents) must not steal attribution: equal interface counts never
	// replace.
	if routers[0].Template != "TPL-Branch-Full" {
		t.Errorf("expected template TPL-Branch-Full, got %q", routers[0].Template)
	}
	if routers[1].Template != "TPL-DC" {
		t.Errorf("expected template TPL-DC, got %q", routers[1].Template)
	}
}

func TestRouterStaticRoutes(t *testing.T) {
	routers := Routers(mustParse(t, routersConfig))
	// Static routes ride along with the winning descriptor. The five-
	// interface VR1 lost to the six-interface one, which has no routes.
	if len(routers[0].StaticRoutes) != 0 {
		t.Errorf("expected no routes on winning descriptor, got %d", len(routers[0].StaticRoutes))
	}

	single := `<config>
  <devices>
    <entry name="localhost.localdomain">
      <network>
        <virtual-router>
          <entry name="edge">
            <interface>
              <member>ethernet1/1</member>
            </interface>
            <routing-table>
              <ip>
                <static-route>
                  <entry name="to-core">
                    <destination>10.20.0.0/16</destination>
                    <nexthop>
                      <ip-address>10.0.0.254</ip-address>
                    </nexthop>
                    <metric>50</metric>
                  </entry>
                </static-route>
              </ip>
            </routing-table>
          </entry>
        </virtual-router>
      </network>
    </entry>
  </devices>
</config>`
	routers = Routers(mustParse(t, single))
	if len(routers) != 1 {
		t.Fatalf("expected 1 router, got %d", len(routers))
	}
	r := routers[0]
	if r.Template != DeviceSpecific {
		t.Errorf("expected device-specific attribution, got %q", r.Template)
	}
	want := []StaticRoute{{
		Name:        "to-core",
		Destination: "10.20.0.0/16",
		NexthopIP:   "10.0.0.254",
		Metric:      "50",
	}}
	if !reflect.DeepEqual(r.StaticRoutes, want) {
		t.Errorf("unexpected static routes: %+v", r.StaticRoutes)
	}
}

func TestVirtualAndLogicalRoutersSeparate(t *testing.T) {
	input := `<config>
  <devices>
    <entry name="localhost.localdomain">
      <network>
        <virtual-router>
          <entry name="core">
            <interface>
              <member>ethernet1/1</member>
            </interface>
          </entry>
        </virtual-router>
        <logical-router>
          <entry name="core">
            <interface>
              <member>ethernet1/1</member>
            </interface>
            <routing-table>
              <ip>
                <static-route>
                  <entry name="peer">
                    <destination>0.0.0.0/0</destination>
                    <nexthop>
                      <next-lr>other-lr</next-lr>
                    </nexthop>
                  </entry>
                </static-route>
              </ip>
            </routing-table>
          </entry>
        </logical-router>
      </network>
    </entry>
  </devices>
</config>`
	routers := Routers(mustParse(t, input))
	// Same name, same interfaces, but different kinds: both survive.
	if len(routers) != 2 {
		t.Fatalf("expected virtual and logical routers to coexist, got %d", len(routers))
	}
	if routers[0].Kind != RouterVirtual || routers[1].Kind != RouterLogical {
		t.Errorf("unexpected kinds: %q, %q", routers[0].Kind, routers[1].Kind)
	}
	// next-lr is read for logical routers only.
	if got := routers[1].StaticRoutes[0].NextRouter; got != "other-lr" {
		t.Errorf("expected next-lr hop, got %q", got)
	}
}
