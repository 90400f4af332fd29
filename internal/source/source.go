package source

import (
	"fmt"
	"net/url"
	"strings"
)

// Kind selects which sampling strategy runs for a Location.
type Kind int

const (
	// KindLocal samples a directory on the local filesystem.
	KindLocal Kind = iota
	// KindRemote samples a GitHub repository over the REST API.
	KindRemote
)

// Location identifies where repository content comes from. It is
// immutable once constructed.
type Location struct {
	Kind  Kind
	Path  string // local directory root (KindLocal)
	Owner string // repository owner (KindRemote)
	Repo  string // repository name (KindRemote)
	Token string // optional bearer credential (KindRemote)
}

// LocalDir returns a Location for a local directory root.
func LocalDir(path string) Location {
	return Location{Kind: KindLocal, Path: path}
}

// ParseRepoURL parses a GitHub repository URL into a remote Location.
// The URL must carry at least an owner and a repository segment; a
// trailing ".git" suffix is stripped. Malformed URLs are rejected here,
// before any network call.
func ParseRepoURL(repoURL, token string) (Location, error) {
	u, err := url.Parse(repoURL)
	if err != nil {
		return Location{}, fmt.Errorf("invalid repository URL %q: %w", repoURL, err)
	}

	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return Location{}, fmt.Errorf("invalid repository URL %q: expected https://github.com/<owner>/<repo>", repoURL)
	}

	return Location{
		Kind:  KindRemote,
		Owner: parts[0],
		Repo:  strings.TrimSuffix(parts[1], ".git"),
		Token: token,
	}, nil
}

// String returns "owner/repo" for remote locations and the directory
// path for local ones.
func (l Location) String() string {
	if l.Kind == KindRemote {
		return l.Owner + "/" + l.Repo
	}
	return l.Path
}
