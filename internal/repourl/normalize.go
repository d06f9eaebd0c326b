// Package repourl turns user-entered GitHub repository references into cloneable URLs.
package repourl

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/NielsdaWheelz/stackup/internal/errors"
)

const githubHost = "github.com"

// Shape identifies which accepted input form a reference was written in.
type Shape string

const (
	ShapeHTTPS     Shape = "https"
	ShapeSSH       Shape = "ssh"
	ShapeShorthand Shape = "shorthand"
)

// Ref is a normalized repository reference.
type Ref struct {
	// CloneURL is always https://github.com/<owner>/<repo>.git
	CloneURL string
	Owner    string
	// Name is the repo name without .git; usable as a folder name.
	Name  string
	Shape Shape
}

// Slug returns "owner/repo".
func (r Ref) Slug() string {
	return r.Owner + "/" + r.Name
}

// validNamePattern matches valid GitHub owner/repo names: [A-Za-z0-9_.-]+
var validNamePattern = regexp.MustCompile(`^[A-Za-z0-9_.\-]+$`)

// Normalize parses raw into a Ref. Accepted forms, first match wins:
//   - https://github.com/owner/repo[.git] (http:// is upgraded)
//   - git@github.com:owner/repo[.git]
//   - owner/repo[.git]
//
// Returns E_INVALID_REPO_URL for anything else, including other hosts and ssh:// URLs.
func Normalize(raw string) (Ref, error) {
	s := strings.TrimRight(strings.TrimSpace(raw), "/")
	if s == "" {
		return Ref{}, invalid(raw, "repository URL is empty")
	}

	var (
		path  string
		shape Shape
	)
	switch {
	case hasSchemePrefix(s):
		rest, ok := trimHTTPHost(s)
		if !ok {
			return Ref{}, invalid(raw, "only https://github.com/<owner>/<repo> URLs are supported")
		}
		path, shape = rest, ShapeHTTPS
	case strings.HasPrefix(s, "git@"):
		rest, ok := strings.CutPrefix(s, "git@"+githubHost+":")
		if !ok {
			return Ref{}, invalid(raw, "only git@github.com:<owner>/<repo>.git SSH URLs are supported")
		}
		path, shape = rest, ShapeSSH
	default:
		path, shape = s, ShapeShorthand
	}

	owner, name, ok := splitOwnerRepo(path)
	if !ok {
		return Ref{}, invalid(raw, "expected <owner>/<repo>")
	}

	return Ref{
		CloneURL: fmt.Sprintf("https://%s/%s/%s.git", githubHost, owner, name),
		Owner:    owner,
		Name:     name,
		Shape:    shape,
	}, nil
}

func hasSchemePrefix(s string) bool {
	return strings.Contains(s, "://")
}

// trimHTTPHost strips http(s)://github.com/ and returns the remaining path.
func trimHTTPHost(s string) (string, bool) {
	for _, prefix := range []string{"https://" + githubHost + "/", "http://" + githubHost + "/"} {
		if rest, ok := strings.CutPrefix(s, prefix); ok {
			return rest, true
		}
	}
	return "", false
}

// splitOwnerRepo extracts owner/repo from "owner/repo.git" or "owner/repo".
func splitOwnerRepo(path string) (owner, repo string, ok bool) {
	path = strings.TrimSuffix(path, ".git")

	parts := strings.Split(path, "/")
	if len(parts) != 2 {
		return "", "", false
	}
	owner, repo = parts[0], parts[1]

	if owner == "" || repo == "" {
		return "", "", false
	}
	if !validNamePattern.MatchString(owner) || !validNamePattern.MatchString(repo) {
		return "", "", false
	}
	// "." and ".." would escape the destination when used as a folder name.
	if repo == "." || repo == ".." || owner == "." || owner == ".." {
		return "", "", false
	}
	return owner, repo, true
}

func invalid(raw, msg string) error {
	return errors.NewWithDetails(errors.EInvalidRepoURL, msg, map[string]string{"url": raw})
}
