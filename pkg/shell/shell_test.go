package shell

import (
	"bytes"
	"strings"
	"testing"

	"github.com/devnullNZ/Panorama2Terraform/pkg/panxml"
	"github.com/devnullNZ/Panorama2Terraform/pkg/resolve"
)

const shellFixture = `<config version="10.1.0">
  <devices>
    <entry name="localhost.localdomain">
      <device-group>
        <entry name="Branch">
          <description>Branch offices</description>
        </entry>
      </device-group>
      <template>
        <entry name="TPL-Branch"/>
      </template>
    </entry>
  </devices>
  <shared>
    <address>
      <entry name="web-server">
        <ip-netmask>10.0.0.5/32</ip-netmask>
        <description>Primary web</description>
        <tag>
          <member>prod</member>
        </tag>
      </entry>
      <entry name="dns-server">
        <ip-netmask>10.0.0.53/32</ip-netmask>
      </entry>
    </address>
    <service>
      <entry name="http-svc">
        <protocol>
          <tcp>
            <port>80</port>
          </tcp>
        </protocol>
      </entry>
    </service>
  </shared>
</config>`

func newTestShell(t *testing.T) (*Shell, *bytes.Buffer) {
	t.Helper()
	root, err := panxml.Parse(strings.NewReader(shellFixture))
	if err != nil {
		t.Fatalf("parse fixture: %v", err)
	}
	s := New("export.xml", root, resolve.Build(root))
	buf := &bytes.Buffer{}
	s.out = buf
	return s, buf
}

func TestShowAddresses(t *testing.T) {
	s, buf := newTestShell(t)
	if err := s.dispatch("show addresses"); err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"web-server", "10.0.0.5/32", "dns-server", "Total: 2 address objects"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestShowAddressDetail(t *testing.T) {
	s, buf := newTestShell(t)
	if err := s.dispatch("show address web-server"); err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Address: web-server", "ip-netmask", "Primary web", "Tags: prod"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestShowAddressNotFound(t *testing.T) {
	s, _ := newTestShell(t)
	err := s.dispatch("show address nonesuch")
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Errorf("expected not-found error, got %v", err)
	}
}

func TestShowDeviceGroupsAndTemplates(t *testing.T) {
	s, buf := newTestShell(t)
	if err := s.dispatch("show device-groups"); err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	if err := s.dispatch("show templates"); err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "Branch") || !strings.Contains(out, "Branch offices") {
		t.Errorf("device group listing incomplete:\n%s", out)
	}
	if !strings.Contains(out, "TPL-Branch") {
		t.Errorf("template listing missing TPL-Branch:\n%s", out)
	}
}

func TestShowSummary(t *testing.T) {
	s, buf := newTestShell(t)
	if err := s.dispatch("show summary"); err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "export.xml") {
		t.Errorf("summary missing source file:\n%s", out)
	}
	if !strings.Contains(out, "Address objects:") {
		t.Errorf("summary missing address count:\n%s", out)
	}
}

func TestDispatchQuit(t *testing.T) {
	s, _ := newTestShell(t)
	if err := s.dispatch("quit"); err != errExit {
		t.Errorf("quit returned %v, want errExit", err)
	}
	if err := s.dispatch("exit"); err != errExit {
		t.Errorf("exit returned %v, want errExit", err)
	}
}

func TestDispatchUnknownCommand(t *testing.T) {
	s, _ := newTestShell(t)
	err := s.dispatch("frobnicate")
	if err == nil || !strings.Contains(err.Error(), "unknown command") {
		t.Errorf("expected unknown command error, got %v", err)
	}
}

func TestCompleteTopLevel(t *testing.T) {
	s, _ := newTestShell(t)
	c := &completer{shell: s}

	line := []rune("sh")
	got, n := c.Do(line, len(line))
	if n != 2 {
		t.Errorf("partial length = %d, want 2", n)
	}
	if len(got) != 1 || string(got[0]) != "ow " {
		t.Errorf("completion = %q, want [\"ow \"]", got)
	}
}

func TestCompleteShowTargets(t *testing.T) {
	s, _ := newTestShell(t)
	c := &completer{shell: s}

	line := []rune("show ")
	got, n := c.Do(line, len(line))
	if n != 0 {
		t.Errorf("partial length = %d, want 0", n)
	}
	if len(got) != len(showTargets) {
		t.Errorf("expected %d candidates, got %d", len(showTargets), len(got))
	}
}

func TestCompleteAddressNames(t *testing.T) {
	s, _ := newTestShell(t)
	c := &completer{shell: s}

	line := []rune("show address web")
	got, n := c.Do(line, len(line))
	if n != 3 {
		t.Errorf("partial length = %d, want 3", n)
	}
	if len(got) != 1 || string(got[0]) != "-server " {
		t.Errorf("completion = %q, want [\"-server \"]", got)
	}
}
