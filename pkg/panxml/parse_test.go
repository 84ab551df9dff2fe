package panxml

import (
	"errors"
	"strings"
	"testing"
)

const sampleConfig = `<?xml version="1.0"?>
<config version="10.1.0">
  <shared>
    <address>
      <entry name="web-server">
        <ip-netmask>10.0.0.10/32</ip-netmask>
        <description>primary web</description>
        <tag>
          <member>prod</member>
          <member>dmz</member>
        </tag>
      </entry>
      <entry name="db-server">
        <ip-netmask>10.0.0.20/32</ip-netmask>
      </entry>
    </address>
  </shared>
  <devices>
    <entry name="localhost.localdomain">
      <device-group>
        <entry name="DG-Branch">
          <address>
            <entry name="branch-lan">
              <ip-netmask>192.168.1.0/24</ip-netmask>
            </entry>
          </address>
        </entry>
      </device-group>
    </entry>
  </devices>
</config>`

func TestParseTree(t *testing.T) {
	root, err := Parse(strings.NewReader(sampleConfig))
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if root.Tag != "config" {
		t.Errorf("expected root tag config, got %q", root.Tag)
	}
	if got := root.Attr("version"); got != "10.1.0" {
		t.Errorf("expected version 10.1.0, got %q", got)
	}
	if got := len(root.Children); got != 2 {
		t.Fatalf("expected 2 root children, got %d", got)
	}
	if root.Children[0].Tag != "shared" || root.Children[1].Tag != "devices" {
		t.Errorf("children out of order: %q, %q", root.Children[0].Tag, root.Children[1].Tag)
	}

	entry := root.Find("shared/address/entry")
	if entry == nil {
		t.Fatal("shared/address/entry not found")
	}
	if entry.Name() != "web-server" {
		t.Errorf("expected first entry web-server, got %q", entry.Name())
	}
	if got := entry.FindText("ip-netmask"); got != "10.0.0.10/32" {
		t.Errorf("expected ip-netmask 10.0.0.10/32, got %q", got)
	}
	if got := entry.FindText("fqdn"); got != "" {
		t.Errorf("expected empty text for missing path, got %q", got)
	}
}

func TestFindAllDescendant(t *testing.T) {
	root, err := Parse(strings.NewReader(sampleConfig))
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	// "//address/entry" reaches both the shared and the device-group
	// entries, in document order.
	entries := root.FindAll("//address/entry")
	if len(entries) != 3 {
		t.Fatalf("expected 3 address entries, got %d", len(entries))
	}
	names := []string{entries[0].Name(), entries[1].Name(), entries[2].Name()}
	want := []string{"web-server", "db-server", "branch-lan"}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("entry %d: expected %q, got %q", i, want[i], names[i])
		}
	}

	scoped := root.FindAll("//device-group/entry/address/entry")
	if len(scoped) != 1 || scoped[0].Name() != "branch-lan" {
		t.Errorf("device-group scope: expected [branch-lan], got %d entries", len(scoped))
	}
}

func TestFindAllWildcard(t *testing.T) {
	input := `<zone>
  <network>
    <layer3>
      <member>ethernet1/1</member>
    </layer3>
    <layer2>
      <member>ethernet1/2</member>
    </layer2>
  </network>
</zone>`
	root, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	members := root.FindAll("//network/*/member")
	if len(members) != 2 {
		t.Fatalf("expected 2 members, got %d", len(members))
	}
	if members[0].Text != "ethernet1/1" || members[1].Text != "ethernet1/2" {
		t.Errorf("unexpected member texts: %q, %q", members[0].Text, members[1].Text)
	}
}

func TestMembers(t *testing.T) {
	root, err := Parse(strings.NewReader(sampleConfig))
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	entry := root.Find("shared/address/entry")
	tags := entry.Members("tag")
	if len(tags) != 2 || tags[0] != "prod" || tags[1] != "dmz" {
		t.Errorf("expected [prod dmz], got %v", tags)
	}
	if got := entry.Members("nonexistent"); got != nil {
		t.Errorf("expected nil members for missing path, got %v", got)
	}
}

func TestParseMalformed(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"unclosed element", `<config><shared></config>`},
		{"empty document", ``},
		{"whitespace only", "\n  \n"},
		{"junk after root", `<config/><config/>`},
		{"bad token", `<config><<entry/></config>`},
	}
	for _, tc := range cases {
		_, err := Parse(strings.NewReader(tc.input))
		if err == nil {
			t.Errorf("%s: expected error, got none", tc.name)
			continue
		}
		var pe *ParseError
		if !errors.As(err, &pe) {
			t.Errorf("%s: expected ParseError, got %T: %v", tc.name, err, err)
		}
	}
}

func TestParseErrorMessage(t *testing.T) {
	e := &ParseError{Path: "panorama.xml", Line: 12, Msg: "unexpected EOF"}
	if got := e.Error(); got != "panorama.xml:12: unexpected EOF" {
		t.Errorf("unexpected error string: %q", got)
	}
	e = &ParseError{Msg: "no element found"}
	if got := e.Error(); got != "no element found" {
		t.Errorf("unexpected error string: %q", got)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	root, err := Parse(strings.NewReader(sampleConfig))
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	out := Marshal(root)
	if !strings.HasPrefix(string(out), `<?xml version="1.0"`) {
		t.Errorf("missing XML declaration: %q", string(out[:40]))
	}

	again, err := Parse(strings.NewReader(string(out)))
	if err != nil {
		t.Fatalf("reparse error: %v", err)
	}
	entries := again.FindAll("//address/entry")
	if len(entries) != 3 {
		t.Errorf("expected 3 entries after round trip, got %d", len(entries))
	}
	if got := again.Find("shared/address/entry").FindText("description"); got != "primary web" {
		t.Errorf("expected description to survive round trip, got %q", got)
	}
}

func TestMarshalEscaping(t *testing.T) {
	root := &Node{
		Tag:   "entry",
		Attrs: []Attr{{Key: "name", Value: `a<b&"c"`}},
		Children: []*Node{
			{Tag: "description", Text: "1 < 2 && 3 > 2"},
		},
	}
	out := string(Marshal(root))
	if strings.Contains(out, `a<b`) {
		t.Errorf("attribute not escaped: %q", out)
	}
	if strings.Contains(out, "&& 3 >") && !strings.Contains(out, "&amp;&amp;") {
		t.Errorf("text not escaped: %q", out)
	}
	again, err := Parse(strings.NewReader(out))
	if err != nil {
		t.Fatalf("reparse error: %v", err)
	}
	if got := again.Name(); got != `a<b&"c"` {
		t.Errorf("attribute did not survive round trip: %q", got)
	}
	if got := again.FindText("description"); got != "1 < 2 && 3 > 2" {
		t.Errorf("text did not survive round trip: %q", got)
	}
}

func TestMarshalSelfClosing(t *testing.T) {
	root := &Node{Tag: "config", Children: []*Node{
		{Tag: "shared"},
		{Tag: "mode", Children: []*Node{{Tag: "layer3"}}},
	}}
	out := string(Marshal(root))
	if !strings.Contains(out, "<shared/>") {
		t.Errorf("expected self-closing empty element, got %q", out)
	}
	if !strings.Contains(out, "  <mode>\n    <layer3/>\n  </mode>") {
		t.Errorf("expected two-space indentation, got %q", out)
	}
}
