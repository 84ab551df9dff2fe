// Package shell implements the interactive explorer over a loaded
// Panorama export.
package shell

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/chzyer/readline"

	"github.com/devnullNZ/Panorama2Terraform/pkg/panxml"
	"github.com/devnullNZ/Panorama2Terraform/pkg/resolve"
)

// Shell browses one parsed export through show commands.
type Shell struct {
	rl   *readline.Instance
	out  io.Writer
	root *panxml.Node
	cfg  *resolve.Config
	file string
}

// New creates a shell over an already-parsed export. file is the source
// path shown in the banner and summary.
func New(file string, root *panxml.Node, cfg *resolve.Config) *Shell {
	return &Shell{out: os.Stdout, root: root, cfg: cfg, file: file}
}

// Run starts the interactive loop.
func (s *Shell) Run() error {
	var err error
	s.rl, err = readline.NewEx(&readline.Config{
		Prompt:          "pan2tf> ",
		HistoryFile:     "/tmp/pan2tf_history",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		AutoComplete:    &completer{shell: s},
	})
	if err != nil {
		return fmt.Errorf("readline init: %w", err)
	}
	defer s.rl.Close()

	fmt.Fprintf(s.out, "Loaded %s\n", s.file)
	fmt.Fprintln(s.out, "Type '?' for help")
	fmt.Fprintln(s.out)

	for {
		line, err := s.rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				continue
			}
			if err == io.EOF {
				break
			}
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if err := s.dispatch(line); err != nil {
			if err == errExit {
				return nil
			}
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
	}
	return nil
}

var errExit = fmt.Errorf("exit")

func (s *Shell) dispatch(line string) error {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return nil
	}

	switch parts[0] {
	case "show":
		return s.handleShow(parts[1:])

	case "quit", "exit":
		return errExit

	case "?", "help":
		s.showHelp()
		return nil

	default:
		return fmt.Errorf("unknown command: %s", parts[0])
	}
}

func (s *Shell) handleShow(args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(s.out, "show: specify what to show")
		fmt.Fprintln(s.out, "  device-groups    Show device groups")
		fmt.Fprintln(s.out, "  addresses        Show address objects")
		fmt.Fprintln(s.out, "  address <name>   Show one address object")
		fmt.Fprintln(s.out, "  services         Show service objects")
		fmt.Fprintln(s.out, "  routers          Show routers")
		fmt.Fprintln(s.out, "  templates        Show templates")
		fmt.Fprintln(s.out, "  zones            Show zones")
		fmt.Fprintln(s.out, "  rules            Show security rules")
		fmt.Fprintln(s.out, "  summary          Show object counts")
		return nil
	}

	switch args[0] {
	case "device-groups":
		return s.showDeviceGroups()

	case "addresses":
		return s.showAddresses()

	case "address":
		if len(args) < 2 {
			return fmt.Errorf("show address: missing name")
		}
		return s.showAddress(args[1])

	case "services":
		return s.showServices()

	case "routers":
		return s.showRouters()

	case "templates":
		return s.showTemplates()

	case "zones":
		return s.showZones()

	case "rules":
		return s.showRules()

	case "summary":
		return s.showSummary()

	default:
		return fmt.Errorf("unknown show target: %s", args[0])
	}
}

func (s *Shell) showDeviceGroups() error {
	if len(s.cfg.DeviceGroups) == 0 {
		fmt.Fprintln(s.out, "No device groups found")
		return nil
	}
	for _, dg := range s.cfg.DeviceGroups {
		if dg.Description != "" {
			fmt.Fprintf(s.out, "  %-32s %s\n", dg.Name, dg.Description)
		} else {
			fmt.Fprintf(s.out, "  %s\n", dg.Name)
		}
	}
	fmt.Fprintf(s.out, "Total: %d device groups\n", len(s.cfg.DeviceGroups))
	return nil
}

func (s *Shell) showAddresses() error {
	if len(s.cfg.Addresses) == 0 {
		fmt.Fprintln(s.out, "No address objects found")
		return nil
	}
	fmt.Fprintf(s.out, "  %-32s %-12s %s\n", "Name", "Kind", "Value")
	for _, a := range s.cfg.Addresses {
		kind := a.Kind
		if a.Stub {
			kind = "(ref)"
		}
		fmt.Fprintf(s.out, "  %-32s %-12s %s\n", a.Name, kind, a.Value)
	}
	fmt.Fprintf(s.out, "Total: %d address objects\n", len(s.cfg.Addresses))
	return nil
}

func (s *Shell) showAddress(name string) error {
	for _, a := range s.cfg.Addresses {
		if a.Name != name {
			continue
		}
		fmt.Fprintf(s.out, "Address: %s\n", a.Name)
		if a.Stub {
			fmt.Fprintln(s.out, "  Referenced by rules or groups but never defined")
			return nil
		}
		fmt.Fprintf(s.out, "  Kind:  %s\n", a.Kind)
		fmt.Fprintf(s.out, "  Value: %s\n", a.Value)
		if a.Description != "" {
			fmt.Fprintf(s.out, "  Description: %s\n", a.Description)
		}
		if len(a.Tags) > 0 {
			fmt.Fprintf(s.out, "  Tags: %s\n", strings.Join(a.Tags, ", "))
		}
		return nil
	}
	return fmt.Errorf("address %s not found", name)
}

func (s *Shell) showServices() error {
	if len(s.cfg.Services) == 0 {
		fmt.Fprintln(s.out, "No service objects found")
		return nil
	}
	fmt.Fprintf(s.out, "  %-32s %-8s %s\n", "Name", "Proto", "Port")
	for _, svc := range s.cfg.Services {
		proto := svc.Protocol
		if svc.Stub {
			proto = "(ref)"
		}
		fmt.Fprintf(s.out, "  %-32s %-8s %s\n", svc.Name, proto, svc.Port)
	}
	fmt.Fprintf(s.out, "Total: %d service objects\n", len(s.cfg.Services))
	return nil
}

func (s *Shell) showRouters() error {
	if len(s.cfg.Routers) == 0 {
		fmt.Fprintln(s.out, "No routers found")
		return nil
	}
	for _, r := range s.cfg.Routers {
		fmt.Fprintf(s.out, "Router: %s (%s)\n", r.Name, r.Kind)
		if r.Template != "" {
			fmt.Fprintf(s.out, "  Template: %s\n", r.Template)
		}
		if len(r.Interfaces) > 0 {
			fmt.Fprintf(s.out, "  Interfaces: %s\n", strings.Join(r.Interfaces, ", "))
		}
		fmt.Fprintf(s.out, "  Static routes: %d\n", len(r.StaticRoutes))
		fmt.Fprintln(s.out)
	}
	return nil
}

func (s *Shell) showTemplates() error {
	templates := s.root.FindAll("//template/entry")
	if len(templates) == 0 {
		fmt.Fprintln(s.out, "No templates found")
		return nil
	}
	for _, t := range templates {
		fmt.Fprintf(s.out, "  %s\n", t.Name())
	}
	fmt.Fprintf(s.out, "Total: %d templates\n", len(templates))
	return nil
}

func (s *Shell) showZones() error {
	if len(s.cfg.Zones) == 0 {
		fmt.Fprintln(s.out, "No zones found")
		return nil
	}
	for _, z := range s.cfg.Zones {
		fmt.Fprintf(s.out, "Zone: %s (%s)\n", z.Name, z.Mode)
		if len(z.Interfaces) > 0 {
			fmt.Fprintf(s.out, "  Interfaces: %s\n", strings.Join(z.Interfaces, ", "))
		}
		if z.ZoneProtectionProfile != "" {
			fmt.Fprintf(s.out, "  Zone protection: %s\n", z.ZoneProtectionProfile)
		}
		fmt.Fprintln(s.out)
	}
	return nil
}

func (s *Shell) showRules() error {
	if len(s.cfg.SecurityRules) == 0 {
		fmt.Fprintln(s.out, "No security rules found")
		return nil
	}
	for _, r := range s.cfg.SecurityRules {
		fmt.Fprintf(s.out, "Rule: %s\n", r.Name)
		fmt.Fprintf(s.out, "  Zones: %v -> %v\n", r.SourceZones, r.DestinationZones)
		fmt.Fprintf(s.out, "  Match: src=%v dst=%v app=%v svc=%v\n",
			r.SourceAddresses, r.DestinationAddresses, r.Applications, r.Services)
		fmt.Fprintf(s.out, "  Action: %s\n", r.Action)
		if r.Disabled {
			fmt.Fprintln(s.out, "  Disabled: yes")
		}
		fmt.Fprintln(s.out)
	}
	fmt.Fprintf(s.out, "Total: %d security rules\n", len(s.cfg.SecurityRules))
	return nil
}

func (s *Shell) showSummary() error {
	cfg := s.cfg
	counts := []struct {
		name string
		n    int
	}{
		{"Device groups:", len(cfg.DeviceGroups)},
		{"Address objects:", len(cfg.Addresses)},
		{"Address groups:", len(cfg.AddressGroups)},
		{"Service objects:", len(cfg.Services)},
		{"Service groups:", len(cfg.ServiceGroups)},
		{"Security rules:", len(cfg.SecurityRules)},
		{"NAT rules:", len(cfg.NATRules)},
		{"Zones:", len(cfg.Zones)},
		{"Interfaces:", len(cfg.Interfaces)},
		{"Routers:", len(cfg.Routers)},
		{"IKE gateways:", len(cfg.IKEGateways)},
		{"IPsec tunnels:", len(cfg.IPsecTunnels)},
	}
	fmt.Fprintf(s.out, "Configuration summary for %s:\n", s.file)
	for _, c := range counts {
		fmt.Fprintf(s.out, "  %-20s %d\n", c.name, c.n)
	}
	return nil
}

func (s *Shell) showHelp() {
	fmt.Fprintln(s.out, "Commands:")
	fmt.Fprintln(s.out, "  show device-groups    List device groups")
	fmt.Fprintln(s.out, "  show addresses        List address objects")
	fmt.Fprintln(s.out, "  show address <name>   Show one address object")
	fmt.Fprintln(s.out, "  show services         List service objects")
	fmt.Fprintln(s.out, "  show routers          List routers")
	fmt.Fprintln(s.out, "  show templates        List templates")
	fmt.Fprintln(s.out, "  show zones            List zones")
	fmt.Fprintln(s.out, "  show rules            List security rules")
	fmt.Fprintln(s.out, "  show summary          Show object counts")
	fmt.Fprintln(s.out, "  quit                  Exit the shell")
}

// --- Tab completion ---

// completer implements readline.AutoCompleter over the shell's command
// words and the loaded object names.
type completer struct {
	shell *Shell
}

var showTargets = []string{
	"address", "addresses", "device-groups", "routers", "rules",
	"services", "summary", "templates", "zones",
}

func (c *completer) Do(line []rune, pos int) ([][]rune, int) {
	text := string(line[:pos])
	words := strings.Fields(text)
	trailingSpace := len(text) > 0 && text[len(text)-1] == ' '

	var partial string
	if !trailingSpace && len(words) > 0 {
		partial = words[len(words)-1]
		words = words[:len(words)-1]
	}

	var result [][]rune
	for _, cand := range c.candidates(words) {
		if strings.HasPrefix(cand, partial) {
			result = append(result, []rune(cand[len(partial):]+" "))
		}
	}
	return result, len(partial)
}

// candidates returns the completion set following the completed words.
func (c *completer) candidates(words []string) []string {
	switch {
	case len(words) == 0:
		return []string{"exit", "help", "quit", "show"}

	case len(words) == 1 && words[0] == "show":
		return showTargets

	case len(words) == 2 && words[0] == "show" && words[1] == "address":
		names := make([]string, 0, len(c.shell.cfg.Addresses))
		for _, a := range c.shell.cfg.Addresses {
			names = append(names, a.Name)
		}
		sort.Strings(names)
		return names
	}
	return nil
}
