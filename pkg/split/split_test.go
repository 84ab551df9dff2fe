package split

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/devnullNZ/Panorama2Terraform/pkg/panxml"
)

func mustParse(t *testing.T, input string) *panxml.Node {
	t.Helper()
	root, err := panxml.Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("parse fixture: %v", err)
	}
	return root
}

const panoramaConfig = `<config version="10.1.0">
  <devices>
    <entry name="localhost.localdomain">
      <device-group>
        <entry name="DG-Branch">
          <address>
            <entry name="branch-lan">
              <ip-netmask>10.1.0.0/24</ip-netmask>
            </entry>
          </address>
        </entry>
        <entry name="DG-DC">
          <address>
            <entry name="dc-lan">
              <ip-netmask>10.2.0.0/24</ip-netmask>
            </entry>
          </address>
        </entry>
        <entry name="DG-Guest"/>
      </device-group>
      <template>
        <entry name="Branch">
          <config>
            <devices>
              <entry name="localhost.localdomain"/>
            </devices>
          </config>
        </entry>
        <entry name="Corp-DG-DC-Network">
          <config/>
        </entry>
      </template>
      <template-stack>
        <entry name="branch-stack">
          <templates>
            <member>Branch</member>
          </templates>
          <devices>
            <entry name="DG-Branch"/>
          </devices>
        </entry>
      </template-stack>
    </entry>
  </devices>
  <shared>
    <address>
      <entry name="dns-primary">
        <ip-netmask>8.8.8.8/32</ip-netmask>
      </entry>
    </address>
    <tag>
      <entry name="prod">
        <color>color1</color>
      </entry>
    </tag>
  </shared>
  <shared>
    <address>
      <entry name="dns-secondary">
        <ip-netmask>8.8.4.4/32</ip-netmask>
      </entry>
      <entry name="dns-primary">
        <ip-netmask>9.9.9.9/32</ip-netmask>
      </entry>
    </address>
    <service>
      <entry name="tcp-8443">
        <protocol>
          <tcp>
            <port>8443</port>
          </tcp>
        </protocol>
      </entry>
    </service>
  </shared>
</config>`

func TestGroups(t *testing.T) {
	root := mustParse(t, panoramaConfig)
	want := []string{"DG-Branch", "DG-DC", "DG-Guest"}
	if got := Groups(root); !reflect.DeepEqual(got, want) {
		t.Errorf("Groups() = %v, want %v", got, want)
	}
}

func TestGroupsDeduplicates(t *testing.T) {
	input := `<config>
  <device-group>
    <entry name="DG-A"/>
    <entry name="DG-B"/>
  </device-group>
  <device-group>
    <entry name="DG-A"/>
  </device-group>
</config>`
	root := mustParse(t, input)
	want := []string{"DG-A", "DG-B"}
	if got := Groups(root); !reflect.DeepEqual(got, want) {
		t.Errorf("Groups() = %v, want %v", got, want)
	}
}

func TestExtractBundle(t *testing.T) {
	root := mustParse(t, panoramaConfig)
	b, err := Extract(root, "DG-Branch")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if b.Root.Tag != "config" || b.Root.Attr("version") != "10.1.0" {
		t.Errorf("unexpected root: tag=%q version=%q", b.Root.Tag, b.Root.Attr("version"))
	}
	if got := b.Root.Find("devices/entry"); got == nil || got.Name() != "localhost.localdomain" {
		t.Errorf("expected localhost.localdomain devices entry, got %v", got)
	}
	if dg := b.Root.Find("//device-group/entry"); dg == nil || dg.Name() != "DG-Branch" {
		t.Errorf("expected device group DG-Branch in bundle, got %v", dg)
	}
	if b.Template == nil || b.Template.Name() != "Branch" {
		t.Errorf("expected template Branch, got %v", b.Template)
	}
	if b.TemplateStack == nil || b.TemplateStack.Name() != "branch-stack" {
		t.Errorf("expected template stack branch-stack, got %v", b.TemplateStack)
	}

	if b.Shared == nil {
		t.Fatal("expected merged shared section")
	}
	var tags []string
	for _, cat := range b.Shared.Children {
		tags = append(tags, cat.Tag)
	}
	if want := []string{"address", "tag", "service"}; !reflect.DeepEqual(tags, want) {
		t.Errorf("merged categories = %v, want %v", tags, want)
	}
}

func TestMergedSharedKeepsBothDistinctEntries(t *testing.T) {
	input := `<config version="10.0.0">
  <shared>
    <address>
      <entry name="A1">
        <ip-netmask>10.0.0.1/32</ip-netmask>
      </entry>
    </address>
  </shared>
  <shared>
    <address>
      <entry name="A2">
        <ip-netmask>10.0.0.2/32</ip-netmask>
      </entry>
    </address>
  </shared>
</config>`
	merged := mergeShared(mustParse(t, input))
	if merged == nil {
		t.Fatal("expected merged shared section")
	}
	counts := make(map[string]int)
	for _, e := range merged.FindAll("//address/entry") {
		counts[e.Name()]++
	}
	if counts["A1"] != 1 || counts["A2"] != 1 || len(counts) != 2 {
		t.Errorf("unexpected merged entries: %v", counts)
	}
}

func TestMergedSharedDropsDuplicateName(t *testing.T) {
	root := mustParse(t, panoramaConfig)
	merged := mergeShared(root)
	if merged == nil {
		t.Fatal("expected merged shared section")
	}
	entries := merged.FindAll("//address/entry")
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	if want := []string{"dns-primary", "dns-secondary"}; !reflect.DeepEqual(names, want) {
		t.Errorf("merged address entries = %v, want %v", names, want)
	}
	// The first-adopted definition keeps its content.
	if got := entries[0].FindText("ip-netmask"); got != "8.8.8.8/32" {
		t.Errorf("dns-primary = %q, want first-adopted 8.8.8.8/32", got)
	}
}

func TestMergedSharedAppendsAtCategoryTopLevel(t *testing.T) {
	input := `<config>
  <shared>
    <profiles>
      <virus>
        <entry name="av-base"/>
      </virus>
    </profiles>
  </shared>
  <shared>
    <profiles>
      <virus>
        <entry name="av-extra">
          <decoder>
            <entry name="http"/>
          </decoder>
        </entry>
      </virus>
    </profiles>
  </shared>
  <shared>
    <profiles>
      <virus>
        <entry name="http"/>
      </virus>
    </profiles>
  </shared>
</config>`
	merged := mergeShared(mustParse(t, input))
	cat := merged.Child("profiles")
	if cat == nil {
		t.Fatal("expected profiles category")
	}
	// Cross-section entries land at the category's top level, not spliced
	// into the nested position they came from.
	if len(cat.Children) != 2 || cat.Children[1].Name() != "av-extra" {
		t.Errorf("unexpected category children: %+v", cat.Children)
	}
	count := 0
	for _, e := range merged.FindAll("//entry") {
		if e.Name() == "http" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("entry http appears %d times, want 1", count)
	}
}

func TestExtractDoesNotTouchSource(t *testing.T) {
	root := mustParse(t, panoramaConfig)
	first := root.FindAll("//shared")[0].Child("address")
	before := len(first.Children)

	b1, err := Extract(root, "DG-Branch")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	b2, err := Extract(root, "DG-Branch")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}

	if got := len(first.Children); got != before {
		t.Errorf("source shared section grew from %d to %d children", before, got)
	}
	if !bytes.Equal(panxml.Marshal(b1.Root), panxml.Marshal(b2.Root)) {
		t.Error("repeated extraction produced different documents")
	}
}

func TestExtractNotFoundContinuesBatch(t *testing.T) {
	root := mustParse(t, panoramaConfig)
	var bundles []*Bundle
	var notFound []string
	for _, name := range []string{"DG-Branch", "DG-DoesNotExist", "DG-DC"} {
		b, err := Extract(root, name)
		if err != nil {
			if !errors.Is(err, ErrNotFound) {
				t.Fatalf("Extract(%q): %v", name, err)
			}
			notFound = append(notFound, name)
			continue
		}
		bundles = append(bundles, b)
	}
	if len(bundles) != 2 {
		t.Errorf("expected 2 bundles, got %d", len(bundles))
	}
	if !reflect.DeepEqual(notFound, []string{"DG-DoesNotExist"}) {
		t.Errorf("unexpected not-found groups: %v", notFound)
	}
}

func TestTemplateSubstringFallback(t *testing.T) {
	root := mustParse(t, panoramaConfig)
	b, err := Extract(root, "DG-DC")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if b.Template == nil || b.Template.Name() != "Corp-DG-DC-Network" {
		t.Errorf("expected substring-matched template, got %v", b.Template)
	}
	if b.TemplateStack != nil {
		t.Errorf("expected no template stack, got %v", b.TemplateStack)
	}
}

func TestTemplateOmittedWhenNoMatch(t *testing.T) {
	root := mustParse(t, panoramaConfig)
	b, err := Extract(root, "DG-Guest")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if b.Template != nil {
		t.Errorf("expected no template, got %q", b.Template.Name())
	}
	if tpl := b.Root.Find("//template"); tpl != nil {
		t.Error("bundle carries an empty template container")
	}
}

func TestTemplateTieBreakDocumentOrder(t *testing.T) {
	input := `<config>
  <device-group>
    <entry name="DG-Edge"/>
  </device-group>
  <template>
    <entry name="Corp-DG-Edge-East"/>
    <entry name="Corp-DG-Edge-West"/>
  </template>
</config>`
	root := mustParse(t, input)
	b, err := Extract(root, "DG-Edge")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	// Several templates contain the group name; document order decides.
	if b.Template == nil || b.Template.Name() != "Corp-DG-Edge-East" {
		t.Errorf("expected first substring match, got %v", b.Template)
	}
}

func TestDefaultVersionWhenMissing(t *testing.T) {
	input := `<config>
  <device-group>
    <entry name="DG-A"/>
  </device-group>
</config>`
	b, err := Extract(mustParse(t, input), "DG-A")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if got := b.Root.Attr("version"); got != "10.0.0" {
		t.Errorf("version = %q, want default 10.0.0", got)
	}
	if b.Shared != nil {
		t.Error("expected no shared section in bundle")
	}
}

func TestSafeFileName(t *testing.T) {
	cases := []struct {
		group string
		want  string
	}{
		{"DG-Branch", "DG-Branch.xml"},
		{"DG West/Coast", "DG_West_Coast.xml"},
		{"a b/c d", "a_b_c_d.xml"},
	}
	for _, tc := range cases {
		if got := SafeFileName(tc.group); got != tc.want {
			t.Errorf("SafeFileName(%q) = %q, want %q", tc.group, got, tc.want)
		}
	}
}

func TestDefaultOutputDir(t *testing.T) {
	got := DefaultOutputDir(filepath.Join("exports", "panorama.xml"))
	want := filepath.Join("exports", "split_configs")
	if got != want {
		t.Errorf("DefaultOutputDir = %q, want %q", got, want)
	}
}

func TestWriteBundle(t *testing.T) {
	root := mustParse(t, panoramaConfig)
	b, err := Extract(root, "DG-Branch")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	dir := filepath.Join(t.TempDir(), "split_configs")
	path, err := Write(dir, b)
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	if filepath.Base(path) != "DG-Branch.xml" {
		t.Errorf("unexpected file name %q", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	out := string(data)
	if !strings.HasPrefix(out, "<?xml") {
		t.Errorf("output missing XML declaration: %q", out[:20])
	}
	if !strings.Contains(out, `<entry name="DG-Branch">`) {
		t.Error("output missing device group entry")
	}
	if !strings.Contains(out, `<entry name="dns-secondary">`) {
		t.Error("output missing merged shared entry")
	}
}
