package resolve

import "github.com/devnullNZ/Panorama2Terraform/pkg/panxml"

// Profile is a name-and-description inventory entry. The converter keeps
// only enough of each profile to report it; the detailed settings stay
// manual-migration work.
type Profile struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
}

// SecurityProfiles groups the six security profile families.
type SecurityProfiles struct {
	Antivirus        []Profile `yaml:"antivirus,omitempty"`
	Vulnerability    []Profile `yaml:"vulnerability,omitempty"`
	AntiSpyware      []Profile `yaml:"anti_spyware,omitempty"`
	URLFiltering     []Profile `yaml:"url_filtering,omitempty"`
	FileBlocking     []Profile `yaml:"file_blocking,omitempty"`
	WildfireAnalysis []Profile `yaml:"wildfire_analysis,omitempty"`
}

// ProfileGroup is a security profile group with its member profiles per
// family.
type ProfileGroup struct {
	Name             string   `yaml:"name"`
	Virus            []string `yaml:"virus,omitempty"`
	Spyware          []string `yaml:"spyware,omitempty"`
	Vulnerability    []string `yaml:"vulnerability,omitempty"`
	URLFiltering     []string `yaml:"url_filtering,omitempty"`
	FileBlocking     []string `yaml:"file_blocking,omitempty"`
	WildfireAnalysis []string `yaml:"wildfire_analysis,omitempty"`
}

// QoSClass is one class entry of a QoS profile.
type QoSClass struct {
	Name     string `yaml:"name"`
	Priority string `yaml:"priority,omitempty"`
}

type QoSProfile struct {
	Name    string     `yaml:"name"`
	Classes []QoSClass `yaml:"classes,omitempty"`
}

type TunnelMonitorProfile struct {
	Name      string `yaml:"name"`
	Interval  string `yaml:"interval,omitempty"`
	Threshold string `yaml:"threshold,omitempty"`
	Action    string `yaml:"action,omitempty"`
}

func securityProfiles(root *panxml.Node) SecurityProfiles {
	return SecurityProfiles{
		Antivirus:        namedProfiles(root, virusProfileType),
		Vulnerability:    namedProfiles(root, vulnProfileType),
		AntiSpyware:      namedProfiles(root, spywareProfileType),
		URLFiltering:     namedProfiles(root, urlFilteringProfileType),
		FileBlocking:     namedProfiles(root, fileBlockingProfileType),
		WildfireAnalysis: namedProfiles(root, wildfireProfileType),
	}
}

func namedProfiles(root *panxml.Node, desc TypeDesc) []Profile {
	var out []Profile
	for _, obj := range Resolve(root, desc).All() {
		out = append(out, Profile{
			Name:        obj.Name,
			Description: obj.Node.FindText("description"),
		})
	}
	return out
}

func profileGroups(root *panxml.Node) []ProfileGroup {
	var out []ProfileGroup
	for _, obj := range Resolve(root, profileGroupType).All() {
		out = append(out, ProfileGroup{
			Name:             obj.Name,
			Virus:            obj.Node.Members("virus"),
			Spyware:          obj.Node.Members("spyware"),
			Vulnerability:    obj.Node.Members("vulnerability"),
			URLFiltering:     obj.Node.Members("url-filtering"),
			FileBlocking:     obj.Node.Members("file-blocking"),
			WildfireAnalysis: obj.Node.Members("wildfire-analysis"),
		})
	}
	return out
}

func qosProfiles(root *panxml.Node) []QoSProfile {
	var out []QoSProfile
	for _, obj := range Resolve(root, qosProfileType).All() {
		p := QoSProfile{Name: obj.Name}
		for _, cls := range obj.Node.FindAll("//class/entry") {
			if cls.Name() == "" {
				continue
			}
			p.Classes = append(p.Classes, QoSClass{
				Name:     cls.Name(),
				Priority: cls.FindText("priority"),
			})
		}
		out = append(out, p)
	}
	return out
}

func tunnelMonitorProfiles(root *panxml.Node) []TunnelMonitorProfile {
	var out []TunnelMonitorProfile
	for _, obj := range Resolve(root, tunnelMonitorType).All() {
		out = append(out, TunnelMonitorProfile{
			Name:      obj.Name,
			Interval:  obj.Node.FindText("interval"),
			Threshold: obj.Node.FindText("threshold"),
			Action:    obj.Node.FindText("action"),
		})
	}
	return out
}
