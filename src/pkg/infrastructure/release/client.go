package release

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/go-github/github"
	"github.com/pkg/errors"

	"github.com/entur/openapi-validator-cli/src/pkg/infrastructure/source"
)

// ReleasesAPI wraps the go-github release lookup so tests can fake it.
type ReleasesAPI interface {
	GetLatestRelease(ctx context.Context, owner, repo string) (*github.RepositoryRelease, *github.Response, error)
}

type githubReleasesAdapter struct {
	client *github.Client
}

func (a githubReleasesAdapter) GetLatestRelease(ctx context.Context, owner, repo string) (*github.RepositoryRelease, *github.Response, error) {
	return a.client.Repositories.GetLatestRelease(ctx, owner, repo)
}

// NewReleasesAPI builds a release index client for the configured source,
// pointing go-github at the source's API base URL.
func NewReleasesAPI(src source.Source) (ReleasesAPI, error) {
	client := github.NewClient(&http.Client{
		Timeout:   30 * time.Second,
		Transport: &tokenTransport{token: src.Token},
	})

	base := src.APIBaseURL
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	u, err := url.Parse(base)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid API base URL %q", src.APIBaseURL)
	}
	client.BaseURL = u

	return githubReleasesAdapter{client: client}, nil
}

// tokenTransport attaches the release host's token auth scheme to every
// request. The zero token leaves requests untouched.
type tokenTransport struct {
	token string
	base  http.RoundTripper
}

func (t *tokenTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.token != "" {
		req = req.Clone(req.Context())
		req.Header.Set("Authorization", "token "+t.token)
	}
	rt := t.base
	if rt == nil {
		rt = http.DefaultTransport
	}
	return rt.RoundTrip(req)
}
