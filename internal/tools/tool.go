package tools

import (
	"context"
	"fmt"
	"os/exec"
	"regexp"
	"strings"
)

// ExternalTool represents a dependency on an external system tool.
type ExternalTool struct {
	Name     string
	Required bool
	Note     string // why it's needed
	path     string
	version  string
	checked  bool
}

// ToolStatus holds the result of a dependency check.
type ToolStatus struct {
	Name      string
	Available bool
	Path      string
	Version   string
	Required  bool
	Note      string
}

var versionRe = regexp.MustCompile(`(\d+\.\d+[\.\d]*)`)

// Check verifies if the tool exists and gets its version.
func (t *ExternalTool) Check() ToolStatus {
	if !t.checked {
		t.checked = true
		if path, err := exec.LookPath(t.Name); err == nil {
			t.path = path
			t.version = getVersion(t.Name)
		}
	}

	return ToolStatus{
		Name:      t.Name,
		Available: t.path != "",
		Path:      t.path,
		Version:   t.version,
		Required:  t.Required,
		Note:      t.Note,
	}
}

func getVersion(name string) string {
	ctx := context.Background()
	for _, flag := range []string{"--version", "-V", "version"} {
		out, err := RunCapture(ctx, name, flag)
		if err == nil && out != "" {
			if match := versionRe.FindString(out); match != "" {
				return match
			}
		}
	}
	return ""
}

// DependencyChecker manages the external tools the interface configurator
// shells out to.
type DependencyChecker struct {
	tools []*ExternalTool
}

func NewDependencyChecker() *DependencyChecker {
	return &DependencyChecker{
		tools: []*ExternalTool{
			{Name: "ip", Required: true, Note: "bring the interface up/down"},
			{Name: "iw", Required: true, Note: "monitor mode and channel control"},
			{Name: "iwconfig", Required: false, Note: "fallback for older drivers"},
		},
	}
}

// InstallHint returns an install message for the required tools.
func InstallHint() string {
	return "apt install iproute2 iw wireless-tools"
}

// CheckAll verifies all dependencies and returns their status.
func (dc *DependencyChecker) CheckAll() []ToolStatus {
	results := make([]ToolStatus, len(dc.tools))
	for i, tool := range dc.tools {
		results[i] = tool.Check()
	}
	return results
}

// MissingRequired returns required tools that are not installed.
func (dc *DependencyChecker) MissingRequired() []string {
	var missing []string
	for _, tool := range dc.tools {
		if s := tool.Check(); s.Required && !s.Available {
			missing = append(missing, tool.Name)
		}
	}
	return missing
}

// FormatStatus returns a formatted dependency report.
func FormatStatus(statuses []ToolStatus) string {
	var sb strings.Builder
	for _, s := range statuses {
		if s.Available {
			ver := s.Version
			if ver == "" {
				ver = "ok"
			}
			fmt.Fprintf(&sb, " [+] %-10s %-8s %s\n", s.Name, ver, s.Path)
		} else {
			label := "(optional)"
			if s.Required {
				label = "(REQUIRED)"
			}
			note := ""
			if s.Note != "" {
				note = " -- " + s.Note
			}
			fmt.Fprintf(&sb, " [-] %-10s %-8s %s%s\n", s.Name, "--", label, note)
		}
	}
	return sb.String()
}
