package download

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchWritesExactBytes(t *testing.T) {
	payload := []byte("release archive bytes")
	var auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/octet-stream")
		_, _ = w.Write(payload)
	}))
	defer srv.Close()

	dest := filepath.Join(t.TempDir(), "asset.tar.gz")
	err := FetchWithClient(context.Background(), srv.Client(), srv.URL+"/asset.tar.gz", dest, "s3cret")
	require.NoError(t, err)

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, payload, data)
	assert.Equal(t, "token s3cret", auth)
}

func TestFetchNoAuthHeaderWithoutToken(t *testing.T) {
	var sawAuth bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, sawAuth = r.Header["Authorization"]
		_, _ = w.Write([]byte("ok"))
	}))
	defer srv.Close()

	dest := filepath.Join(t.TempDir(), "asset")
	require.NoError(t, FetchWithClient(context.Background(), srv.Client(), srv.URL, dest, ""))
	assert.False(t, sawAuth)
}

func TestFetchDoesNotRetry(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("nope"))
	}))
	defer srv.Close()

	dest := filepath.Join(t.TempDir(), "asset")
	err := FetchWithClient(context.Background(), srv.Client(), srv.URL+"/missing", dest, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
	assert.Contains(t, err.Error(), "/missing")
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits), "a failed fetch aborts, no retries")
	assert.NoFileExists(t, dest, "failed fetch must not leave a partial file")
}

func writeTarGz(t *testing.T, entries map[string]string) string {
	t.Helper()
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gz)
	for name, content := range entries {
		require.NoError(t, tw.WriteHeader(&tar.Header{
			Name:     name,
			Mode:     0o755,
			Size:     int64(len(content)),
			Typeflag: tar.TypeReg,
		}))
		_, err := tw.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, tw.Close())
	require.NoError(t, gz.Close())

	path := filepath.Join(t.TempDir(), "archive.tar.gz")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
	return path
}

func TestUntarFlatArchive(t *testing.T) {
	archive := writeTarGz(t, map[string]string{
		"oav":       "#!binary",
		"README.md": "docs",
	})

	dst := t.TempDir()
	files, err := Untar(archive, dst)
	require.NoError(t, err)
	require.Len(t, files, 2)

	data, err := os.ReadFile(files["oav"])
	require.NoError(t, err)
	assert.Equal(t, []byte("#!binary"), data)
	assert.Equal(t, filepath.Join(dst, "oav"), files["oav"])
}

func TestUntarFlattensPathComponents(t *testing.T) {
	archive := writeTarGz(t, map[string]string{
		"../escape": "nope",
	})

	dst := t.TempDir()
	files, err := Untar(archive, dst)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dst, "escape"), files["../escape"])
}

func TestUntarRejectsNonArchive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "not-an-archive")
	require.NoError(t, os.WriteFile(path, []byte("plain text"), 0o644))

	_, err := Untar(path, t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gzip")
}
