package llm

import "strings"

// ParsePackages splits a comma-separated model reply into package names,
// trimming whitespace and dropping empty entries.
func ParsePackages(raw string) []string {
	var packages []string
	for _, part := range strings.Split(raw, ",") {
		name := strings.TrimSpace(part)
		if name != "" {
			packages = append(packages, name)
		}
	}
	return packages
}
