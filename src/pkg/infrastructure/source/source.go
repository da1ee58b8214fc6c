// Package source models where releases are resolved and downloaded from.
package source

import (
	"strings"

	"github.com/pkg/errors"
)

const (
	// DefaultHost is the public host releases are served from.
	DefaultHost = "github.com"
	// DefaultAPIBaseURL is the release index endpoint for the public host.
	DefaultAPIBaseURL = "https://api.github.com"
)

// Source is the immutable install source configuration. It is built once at
// process start from flags, environment and the config file; the pipeline
// stages receive it by value and never read ambient state themselves.
type Source struct {
	Host       string // release download host
	User       string // repository owner
	Repo       string // repository name
	APIBaseURL string // release index endpoint
	Token      string // attached as "Authorization: token {value}" when set
	Version    string // explicit version override, skips release resolution
	InstallDir string // explicit install destination override
}

// New validates a repository identifier and derives the API base URL for the
// chosen host. A non-default host without an explicit API URL gets the
// conventional enterprise endpoint https://{host}/api/v3.
func New(repo, host, apiBaseURL, token, version, installDir string) (Source, error) {
	user, name, err := splitRepo(repo)
	if err != nil {
		return Source{}, err
	}

	if host == "" {
		host = DefaultHost
	}
	if apiBaseURL == "" {
		if bareHost(host) == DefaultHost {
			apiBaseURL = DefaultAPIBaseURL
		} else {
			apiBaseURL = withScheme(host) + "/api/v3"
		}
	}

	return Source{
		Host:       host,
		User:       user,
		Repo:       name,
		APIBaseURL: apiBaseURL,
		Token:      token,
		Version:    version,
		InstallDir: installDir,
	}, nil
}

// RepoSlug returns the owner/name identifier.
func (s Source) RepoSlug() string {
	return s.User + "/" + s.Repo
}

// BaseURL returns the root URL for release asset downloads on this host.
func (s Source) BaseURL() string {
	return withScheme(s.Host)
}

func splitRepo(repo string) (user, name string, err error) {
	parts := strings.Split(repo, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", errors.Errorf("repository identifier %q must take the form org/name", repo)
	}
	return parts[0], parts[1], nil
}

// withScheme leaves hosts that already carry a scheme alone so tests can
// point the installer at plain HTTP servers.
func withScheme(host string) string {
	if strings.Contains(host, "://") {
		return host
	}
	return "https://" + host
}

func bareHost(host string) string {
	if i := strings.Index(host, "://"); i != -1 {
		return host[i+3:]
	}
	return host
}
