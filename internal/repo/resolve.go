package repo

import (
	"net/url"
	"regexp"
	"slices"
	"strings"
)

// DefaultHost is the hosting provider used when no allow-list is configured.
const DefaultHost = "github.com"

// defaultTargetName is used when no directory name can be derived from a reference.
const defaultTargetName = "template"

// shorthandPattern matches "owner/name" built from word characters, dots and hyphens.
var shorthandPattern = regexp.MustCompile(`^([\w.-]+)/([\w.-]+)$`)

// Resolver normalizes repository references against an allow-list of hosts.
// The first host is the one shorthand references expand to.
type Resolver struct {
	hosts []string
}

// NewResolver creates a Resolver for the given hosts. An empty list
// falls back to DefaultHost. Hosts are compared case-insensitively.
func NewResolver(hosts ...string) *Resolver {
	clean := make([]string, 0, len(hosts))
	for _, h := range hosts {
		h = strings.ToLower(strings.TrimSpace(h))
		if h != "" && !slices.Contains(clean, h) {
			clean = append(clean, h)
		}
	}
	if len(clean) == 0 {
		clean = []string{DefaultHost}
	}
	return &Resolver{hosts: clean}
}

// Hosts returns a copy of the allow-list.
func (r *Resolver) Hosts() []string {
	return slices.Clone(r.hosts)
}

// Normalize turns a reference into a clone URL.
//
// Shorthand "owner/name" becomes https://<host>/owner/name.git. A URL whose
// host is allow-listed is returned unchanged. Anything else fails with an
// *InvalidRefError.
func (r *Resolver) Normalize(ref string) (string, error) {
	if m := shorthandPattern.FindStringSubmatch(ref); m != nil {
		return "https://" + r.hosts[0] + "/" + m[1] + "/" + m[2] + ".git", nil
	}

	u, err := url.Parse(ref)
	if err == nil && u.IsAbs() && slices.Contains(r.hosts, strings.ToLower(u.Hostname())) {
		return ref, nil
	}

	return "", &InvalidRefError{Ref: ref, Hosts: r.Hosts()}
}

// TargetName derives a directory name from the last path segment of ref,
// without a trailing ".git". It returns "template" when nothing usable
// remains, including "." and "..".
func TargetName(ref string) string {
	name := ref
	if i := strings.LastIndex(ref, "/"); i >= 0 {
		name = ref[i+1:]
	}
	name = strings.TrimSuffix(name, ".git")
	if name == "" || name == "." || name == ".." {
		return defaultTargetName
	}
	return name
}
