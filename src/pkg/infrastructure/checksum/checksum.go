// Package checksum verifies downloaded archives against their published
// SHA-256 checksum files.
package checksum

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

const hexDigestLength = sha256.Size * 2

// FileDigest computes the SHA-256 digest of a file as lowercase hex.
func FileDigest(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", errors.Wrap(err, "failed to open file for checksum")
	}
	defer func() {
		_ = f.Close()
	}()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", errors.Wrap(err, "failed to read file for checksum")
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// ExpectedDigest extracts the digest a checksum file records for assetName.
// The conventional format is "{hex-digest}  {filename}" lines; a digest is
// only accepted when its filename column names the asset, so a checksum file
// for some other archive fails verification rather than passing silently.
func ExpectedDigest(data []byte, assetName string) (string, error) {
	text := strings.TrimSpace(string(data))
	if text == "" {
		return "", errors.New("checksum file is empty")
	}

	// A bare digest with no filename column still binds to the one asset the
	// companion file was downloaded for.
	if isHexDigest(text) {
		return strings.ToLower(text), nil
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		digest := fields[0]
		if !isHexDigest(digest) {
			continue
		}
		if filepath.Base(fields[len(fields)-1]) == assetName {
			return strings.ToLower(digest), nil
		}
	}

	return "", errors.Errorf("checksum file does not record a digest for %s", assetName)
}

// VerifyFile recomputes the digest of archivePath and compares it against
// the digest recorded for archiveName in the checksum file at sumPath.
func VerifyFile(archivePath, sumPath, archiveName string) error {
	data, err := os.ReadFile(sumPath)
	if err != nil {
		return errors.Wrap(err, "failed to read checksum file")
	}

	expected, err := ExpectedDigest(data, archiveName)
	if err != nil {
		return err
	}

	actual, err := FileDigest(archivePath)
	if err != nil {
		return err
	}

	if !strings.EqualFold(expected, actual) {
		return errors.Errorf("checksum mismatch for %s: expected %s, got %s", archiveName, expected, actual)
	}
	return nil
}

func isHexDigest(value string) bool {
	if len(value) != hexDigestLength {
		return false
	}
	for _, ch := range value {
		if (ch < '0' || ch > '9') && (ch < 'a' || ch > 'f') && (ch < 'A' || ch > 'F') {
			return false
		}
	}
	return true
}
