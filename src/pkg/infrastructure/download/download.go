// Package download retrieves release assets into the scoped workspace and
// unpacks verified archives.
package download

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"

	"github.com/entur/openapi-validator-cli/src/pkg/infrastructure/fs"
	"github.com/entur/openapi-validator-cli/src/pkg/infrastructure/print"
)

var clientFactory = func() *http.Client { return &http.Client{Timeout: 60 * time.Second} }

// HTTPDoer lets us test HTTP clients
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Fetch retrieves one asset into destPath, preserving exact byte content.
// A failed fetch is terminal for the install, so there is no retry here: the
// error names the asset and the transport outcome and the caller aborts.
func Fetch(ctx context.Context, location, destPath, token string) error {
	return FetchWithClient(ctx, clientFactory(), location, destPath, token)
}

func FetchWithClient(ctx context.Context, client HTTPDoer, location, destPath, token string) error {
	print.Verb("downloading", location, "to", destPath)
	if client == nil {
		client = clientFactory()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, location, nil)
	if err != nil {
		return errors.Wrap(err, "failed to create request")
	}
	req.Header.Set("User-Agent", "oav-install")
	req.Header.Set("Accept", "application/octet-stream, application/*, */*")
	if token != "" {
		req.Header.Set("Authorization", "token "+token)
	}

	resp, err := client.Do(req)
	if err != nil {
		return errors.Wrapf(err, "failed to download %s", location)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.CopyN(io.Discard, resp.Body, 32*1024)
		return errors.Errorf("failed to download %s: unexpected status code %d", location, resp.StatusCode)
	}

	if err := fs.WriteFromReaderAtomic(destPath, resp.Body, fs.PermDirPrivate, fs.PermFileShared); err != nil {
		return errors.Wrapf(err, "failed to write %s to workspace", location)
	}
	return nil
}
