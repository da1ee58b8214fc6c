package checksum

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeArchive(t *testing.T, content string) (path, digest string) {
	t.Helper()
	path = filepath.Join(t.TempDir(), "oav-0.2.0-x86_64-unknown-linux-gnu.tar.gz")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	sum := sha256.Sum256([]byte(content))
	return path, hex.EncodeToString(sum[:])
}

func writeSumFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sums.sha256")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestVerifyFileMatch(t *testing.T) {
	archive, digest := writeArchive(t, "archive bytes")
	sums := writeSumFile(t, digest+"  oav-0.2.0-x86_64-unknown-linux-gnu.tar.gz\n")

	assert.NoError(t, VerifyFile(archive, sums, "oav-0.2.0-x86_64-unknown-linux-gnu.tar.gz"))
}

func TestVerifyFileMatchIsCaseInsensitive(t *testing.T) {
	archive, digest := writeArchive(t, "archive bytes")
	sums := writeSumFile(t, strings.ToUpper(digest)+"  oav-0.2.0-x86_64-unknown-linux-gnu.tar.gz\n")

	assert.NoError(t, VerifyFile(archive, sums, "oav-0.2.0-x86_64-unknown-linux-gnu.tar.gz"))
}

func TestVerifyFileMismatch(t *testing.T) {
	archive, _ := writeArchive(t, "archive bytes")
	wrong := strings.Repeat("ab", 32)
	sums := writeSumFile(t, wrong+"  oav-0.2.0-x86_64-unknown-linux-gnu.tar.gz\n")

	err := VerifyFile(archive, sums, "oav-0.2.0-x86_64-unknown-linux-gnu.tar.gz")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "checksum mismatch")
}

func TestVerifyFileWrongFilenameReference(t *testing.T) {
	archive, digest := writeArchive(t, "archive bytes")
	sums := writeSumFile(t, digest+"  some-other-file.tar.gz\n")

	err := VerifyFile(archive, sums, "oav-0.2.0-x86_64-unknown-linux-gnu.tar.gz")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not record a digest")
}

func TestVerifyFileEmptyChecksumFile(t *testing.T) {
	archive, _ := writeArchive(t, "archive bytes")
	sums := writeSumFile(t, "\n")

	err := VerifyFile(archive, sums, "oav-0.2.0-x86_64-unknown-linux-gnu.tar.gz")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty")
}

func TestExpectedDigestBareDigest(t *testing.T) {
	digest := strings.Repeat("0a", 32)
	got, err := ExpectedDigest([]byte(digest+"\n"), "anything.tar.gz")
	require.NoError(t, err)
	assert.Equal(t, digest, got)
}
