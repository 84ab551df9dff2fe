package render

import (
	"fmt"
	"strings"

	"github.com/devnullNZ/Panorama2Terraform/pkg/resolve"
)

func (r *Renderer) renderTags(cfg *resolve.Config) error {
	if len(cfg.Tags) == 0 {
		return nil
	}
	d := newDoc("Tags")
	for _, tag := range cfg.Tags {
		b := d.resource("panos_administrative_tag", sanitizeName(tag.Name))
		setString(b, "name", tag.Name)
		setOptional(b, "color", tag.Color)
		setOptional(b, "comment", tag.Comments)
	}
	return r.write("tags.tf", d.bytes())
}

func (r *Renderer) renderURLCategories(cfg *resolve.Config) error {
	if len(cfg.CustomURLCategories) == 0 {
		return nil
	}
	d := newDoc("Custom URL Categories")
	for _, cat := range cfg.CustomURLCategories {
		b := d.resource("panos_custom_url_category", sanitizeName(cat.Name))
		setString(b, "name", cat.Name)
		setOptional(b, "description", cat.Description)
		setList(b, "sites", cat.Sites)
	}
	return r.write("custom_url_categories.tf", d.bytes())
}

func (r *Renderer) renderApplicationGroups(cfg *resolve.Config) error {
	if len(cfg.ApplicationGroups) == 0 {
		return nil
	}
	d := newDoc("Application Groups")
	for _, ag := range cfg.ApplicationGroups {
		b := d.resource("panos_application_group", sanitizeName(ag.Name))
		setString(b, "name", ag.Name)
		setList(b, "applications", ag.Members)
	}
	return r.write("application_groups.tf", d.bytes())
}

func (r *Renderer) renderApplicationFilters(cfg *resolve.Config) error {
	if len(cfg.ApplicationFilters) == 0 {
		return nil
	}
	d := newDoc(
		"Application Filters",
		"Note: Application filters may require manual configuration of all attributes",
	)
	for _, af := range cfg.ApplicationFilters {
		b := d.resource("panos_application_filter", sanitizeName(af.Name))
		setString(b, "name", af.Name)
		setList(b, "category", af.Categories)
		setList(b, "subcategory", af.Subcategories)
		setList(b, "technology", af.Technologies)
		setList(b, "risk", af.Risks)
		if af.Evasive == "yes" {
			setBool(b, "evasive", true)
		}
	}
	return r.write("application_filters.tf", d.bytes())
}

func (r *Renderer) renderExternalLists(cfg *resolve.Config) error {
	if len(cfg.ExternalLists) == 0 {
		return nil
	}
	d := newDoc("External Dynamic Lists")
	for _, el := range cfg.ExternalLists {
		b := d.resource("panos_external_list", sanitizeName(el.Name))
		setString(b, "name", el.Name)
		setOptional(b, "type", el.Kind)
		setOptional(b, "url", el.URL)
		setOptional(b, "recurring", el.Recurring)
		setOptional(b, "description", el.Description)
	}
	return r.write("external_lists.tf", d.bytes())
}

// renderSchedules writes an inventory only: schedule resources need the
// full recurring structure which does not survive this translation.
func (r *Renderer) renderSchedules(cfg *resolve.Config) error {
	if len(cfg.Schedules) == 0 {
		return nil
	}
	var b strings.Builder
	b.WriteString("# Schedules\n")
	b.WriteString("# Note: Schedules require detailed recurring/non-recurring configuration\n")
	b.WriteString("# Manual configuration may be needed for complex schedules\n\n")
	for _, s := range cfg.Schedules {
		fmt.Fprintf(&b, "# Schedule: %s\n", s.Name)
		fmt.Fprintf(&b, "# Type: %s\n", orDefault(s.Kind, "unknown"))
		b.WriteString("# Manual Terraform configuration required\n\n")
	}
	return r.write("schedules.tf", []byte(b.String()))
}

func (r *Renderer) renderAddressObjects(cfg *resolve.Config) error {
	if len(cfg.Addresses) == 0 {
		return nil
	}
	d := newDoc("Address Objects")
	for _, addr := range cfg.Addresses {
		if addr.Stub {
			continue
		}
		b := d.resource("panos_address_object", sanitizeName(addr.Name))
		setString(b, "name", addr.Name)
		setOptional(b, "description", addr.Description)
		// ip-netmask is the provider default and stays implicit.
		if addr.Kind == "ip-range" || addr.Kind == "fqdn" {
			setString(b, "type", addr.Kind)
		}
		setString(b, "value", addr.Value)
		setList(b, "tags", addr.Tags)
	}
	return r.write("address_objects.tf", d.bytes())
}

func (r *Renderer) renderAddressGroups(cfg *resolve.Config) error {
	if len(cfg.AddressGroups) == 0 {
		return nil
	}
	d := newDoc("Address Groups")
	for _, grp := range cfg.AddressGroups {
		if grp.Stub {
			continue
		}
		b := d.resource("panos_address_group", sanitizeName(grp.Name))
		setString(b, "name", grp.Name)
		setOptional(b, "description", grp.Description)
		setList(b, "static_value", grp.StaticMembers)
		setOptional(b, "dynamic_value", grp.DynamicFilter)
	}
	return r.write("address_groups.tf", d.bytes())
}

func (r *Renderer) renderServiceObjects(cfg *resolve.Config) error {
	if len(cfg.Services) == 0 {
		return nil
	}
	d := newDoc("Service Objects")
	for _, svc := range cfg.Services {
		if svc.Stub {
			continue
		}
		b := d.resource("panos_service_object", sanitizeName(svc.Name))
		setString(b, "name", svc.Name)
		setOptional(b, "description", svc.Description)
		setString(b, "protocol", orDefault(svc.Protocol, "tcp"))
		setOptional(b, "destination_port", svc.Port)
	}
	return r.write("service_objects.tf", d.bytes())
}

func (r *Renderer) renderServiceGroups(cfg *resolve.Config) error {
	if len(cfg.ServiceGroups) == 0 {
		return nil
	}
	d := newDoc("Service Groups")
	for _, grp := range cfg.ServiceGroups {
		if grp.Stub {
			continue
		}
		b := d.resource("panos_service_group", sanitizeName(grp.Name))
		setString(b, "name", grp.Name)
		setOptional(b, "description", grp.Description)
		setList(b, "services", grp.Members)
	}
	return r.write("service_groups.tf", d.bytes())
}
