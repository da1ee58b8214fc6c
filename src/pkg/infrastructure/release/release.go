// Package release resolves which oav version to install and where its
// archive lives.
package release

import (
	"context"
	"strings"

	"github.com/Masterminds/semver"
	"github.com/pkg/errors"

	"github.com/entur/openapi-validator-cli/src/pkg/infrastructure/print"
	"github.com/entur/openapi-validator-cli/src/pkg/infrastructure/source"
)

// Resolve determines the version to install. An explicit override is
// returned verbatim, trusting the caller; otherwise the latest published
// release is fetched from the release index and its tag stripped of the
// leading v.
func Resolve(ctx context.Context, api ReleasesAPI, src source.Source) (string, error) {
	if src.Version != "" {
		print.Verb("using explicit version override", src.Version)
		return src.Version, nil
	}

	rel, _, err := api.GetLatestRelease(ctx, src.User, src.Repo)
	if err != nil {
		return "", errors.Wrapf(err, "failed to fetch latest release of %s", src.RepoSlug())
	}

	tag := ""
	if rel != nil {
		tag = rel.GetTagName()
	}
	if tag == "" {
		return "", errors.New("unable to determine latest release tag")
	}

	version := strings.TrimPrefix(tag, "v")
	if _, err := semver.NewVersion(version); err != nil {
		print.Verb("release tag", tag, "does not parse as a semantic version")
	}

	return version, nil
}
