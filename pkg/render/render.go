// Package render writes the Terraform rendition of a resolved PAN-OS
// configuration into an output directory: one .tf file per object family,
// generated with hclwrite so the output is always well-formed HCL, plus
// text reports for the parts of a migration that need human follow-up.
// Families the panos provider cannot express as full resources are written
// as commented inventories instead.
package render

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"

	"github.com/devnullNZ/Panorama2Terraform/pkg/resolve"
)

// Renderer writes all output files for one resolved configuration.
type Renderer struct {
	dir string
}

func New(dir string) *Renderer {
	return &Renderer{dir: dir}
}

// RenderAll writes the provider scaffolding, one .tf file per populated
// object family, the migration reports, and a README. Families with no
// objects produce no file.
func (r *Renderer) RenderAll(cfg *resolve.Config) error {
	if err := os.MkdirAll(r.dir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	steps := []func(*resolve.Config) error{
		r.renderProvider,
		r.renderVariables,
		r.renderTags,
		r.renderURLCategories,
		r.renderApplicationGroups,
		r.renderApplicationFilters,
		r.renderExternalLists,
		r.renderSchedules,
		r.renderAddressObjects,
		r.renderAddressGroups,
		r.renderServiceObjects,
		r.renderServiceGroups,
		r.renderZones,
		r.renderRouters,
		r.renderInterfaces,
		r.renderSecurityProfiles,
		r.renderProfileGroups,
		r.renderZoneProtectionProfiles,
		r.renderLogForwardingProfiles,
		r.renderQoSProfiles,
		r.renderTunnelMonitorProfiles,
		r.renderSecurityRules,
		r.renderNATRules,
		r.renderDecryptionRules,
		r.renderPBFRules,
		r.renderAppOverrideRules,
		r.renderBGP,
		r.renderOSPF,
		r.renderVPN,
		r.renderVPNReport,
		r.renderInterfaceReport,
		r.renderReadme,
	}
	for _, step := range steps {
		if err := step(cfg); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) write(name string, data []byte) error {
	if err := os.WriteFile(filepath.Join(r.dir, name), data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}

var nonAlnum = regexp.MustCompile(`[^a-zA-Z0-9_]`)

// sanitizeName turns an object name into a Terraform resource name:
// non-alphanumerics become underscores, surrounding underscores are
// trimmed, a leading digit gets a guard underscore, and the result is
// lowercased.
func sanitizeName(name string) string {
	s := nonAlnum.ReplaceAllString(name, "_")
	s = strings.Trim(s, "_")
	if s != "" && s[0] >= '0' && s[0] <= '9' {
		s = "_" + s
	}
	return strings.ToLower(s)
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

// doc accumulates one .tf output file: leading comment lines followed by
// generated HCL blocks.
type doc struct {
	header strings.Builder
	file   *hclwrite.File
}

func newDoc(comments ...string) *doc {
	d := &doc{file: hclwrite.NewEmptyFile()}
	for _, c := range comments {
		d.header.WriteString("# " + c + "\n")
	}
	d.header.WriteString("\n")
	return d
}

// resource opens a resource block and returns its body. A blank line is
// appended after the block so consecutive resources stay separated.
func (d *doc) resource(kind, name string) *hclwrite.Body {
	blk := d.file.Body().AppendNewBlock("resource", []string{kind, name})
	d.file.Body().AppendNewline()
	return blk.Body()
}

// comment writes standalone comment lines between blocks.
func (d *doc) comment(lines ...string) {
	d.file.Body().AppendUnstructuredTokens(commentTokens(lines...))
}

func (d *doc) blank() {
	d.file.Body().AppendNewline()
}

func (d *doc) bytes() []byte {
	return append([]byte(d.header.String()), d.file.Bytes()...)
}

func commentTokens(lines ...string) hclwrite.Tokens {
	toks := make(hclwrite.Tokens, 0, len(lines))
	for _, l := range lines {
		text := "#\n"
		if l != "" {
			text = "# " + l + "\n"
		}
		toks = append(toks, &hclwrite.Token{
			Type:  hclsyntax.TokenComment,
			Bytes: []byte(text),
		})
	}
	return toks
}

func setString(b *hclwrite.Body, name, value string) {
	b.SetAttributeValue(name, cty.StringVal(value))
}

func setOptional(b *hclwrite.Body, name, value string) {
	if value != "" {
		b.SetAttributeValue(name, cty.StringVal(value))
	}
}

func setList(b *hclwrite.Body, name string, values []string) {
	if len(values) == 0 {
		return
	}
	vals := make([]cty.Value, len(values))
	for i, v := range values {
		vals[i] = cty.StringVal(v)
	}
	b.SetAttributeValue(name, cty.ListVal(vals))
}

func setBool(b *hclwrite.Body, name string, value bool) {
	b.SetAttributeValue(name, cty.BoolVal(value))
}

// setNumber emits a bare numeric attribute from XML text. Non-numeric
// text is dropped rather than quoted so the attribute keeps its type.
func setNumber(b *hclwrite.Body, name, text string) {
	if text == "" {
		return
	}
	n, err := strconv.Atoi(text)
	if err != nil {
		return
	}
	b.SetAttributeValue(name, cty.NumberIntVal(int64(n)))
}

func traversal(parts ...string) hcl.Traversal {
	tr := hcl.Traversal{hcl.TraverseRoot{Name: parts[0]}}
	for _, p := range parts[1:] {
		tr = append(tr, hcl.TraverseAttr{Name: p})
	}
	return tr
}

// setRef emits a reference to another resource's attribute, such as
// panos_virtual_router.default.name.
func setRef(b *hclwrite.Body, name string, parts ...string) {
	b.SetAttributeTraversal(name, traversal(parts...))
}

func setDependsOn(b *hclwrite.Body, parts ...string) {
	toks := hclwrite.Tokens{{Type: hclsyntax.TokenOBrack, Bytes: []byte("[")}}
	toks = append(toks, hclwrite.TokensForTraversal(traversal(parts...))...)
	toks = append(toks, &hclwrite.Token{Type: hclsyntax.TokenCBrack, Bytes: []byte("]")})
	b.SetAttributeRaw("depends_on", toks)
}

// setStringComment emits a string attribute with a trailing comment.
func setStringComment(b *hclwrite.Body, name, value, comment string) {
	toks := hclwrite.TokensForValue(cty.StringVal(value))
	toks = append(toks, &hclwrite.Token{
		Type:  hclsyntax.TokenComment,
		Bytes: []byte("# " + comment),
	})
	b.SetAttributeRaw(name, toks)
}

func (r *Renderer) renderProvider(*resolve.Config) error {
	d := newDoc("Palo Alto Networks PAN-OS Provider Configuration")
	tf := d.file.Body().AppendNewBlock("terraform", nil).Body()
	req := tf.AppendNewBlock("required_providers", nil).Body()
	req.SetAttributeValue("panos", cty.ObjectVal(map[string]cty.Value{
		"source":  cty.StringVal("PaloAltoNetworks/panos"),
		"version": cty.StringVal("~> 2.0.7"),
	}))
	d.blank()
	prov := d.file.Body().AppendNewBlock("provider", []string{"panos"}).Body()
	prov.AppendUnstructuredTokens(commentTokens(
		"Configure these variables or use environment variables:",
		"PANOS_HOSTNAME, PANOS_USERNAME, PANOS_PASSWORD",
		"hostname = var.panos_hostname",
		"username = var.panos_username",
		"password = var.panos_password",
	))
	return r.write("provider.tf", d.bytes())
}

func (r *Renderer) renderVariables(*resolve.Config) error {
	d := newDoc("Variables for Palo Alto Configuration")
	vars := []struct {
		name        string
		description string
		sensitive   bool
		def         string
	}{
		{"panos_hostname", "Hostname or IP of the Palo Alto firewall/Panorama", true, ""},
		{"panos_username", "Username for authentication", true, ""},
		{"panos_password", "Password for authentication", true, ""},
		{"device_group", "Device group name for Panorama", false, "shared"},
	}
	for _, v := range vars {
		b := d.file.Body().AppendNewBlock("variable", []string{v.name}).Body()
		setString(b, "description", v.description)
		b.SetAttributeRaw("type", hclwrite.TokensForIdentifier("string"))
		if v.sensitive {
			setBool(b, "sensitive", true)
		}
		if v.def != "" {
			setString(b, "default", v.def)
		}
		d.blank()
	}
	return r.write("variables.tf", d.bytes())
}
