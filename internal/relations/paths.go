package relations

import (
	"regexp"
	"strings"
)

// Reserved step and clause actions that never name an operation.
const (
	actionEmit   = "emit"
	actionReturn = "return"
	actionDeny   = "deny"
)

// callPattern matches action text that looks like a call, e.g. "charge(order)".
var callPattern = regexp.MustCompile(`^\s*([A-Za-z_][A-Za-z0-9_]*)\s*\(`)

// calledName returns the identifier of a call-like action.
func calledName(action string) (string, bool) {
	m := callPattern.FindStringSubmatch(action)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// normalizePath strips trailing slashes; the root path stays "/".
func normalizePath(p string) string {
	p = strings.TrimRight(strings.TrimSpace(p), "/")
	if p == "" {
		return "/"
	}
	return p
}
