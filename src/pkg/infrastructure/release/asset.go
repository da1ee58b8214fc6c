package release

import (
	"fmt"

	"github.com/entur/openapi-validator-cli/src/pkg/infrastructure/platform"
	"github.com/entur/openapi-validator-cli/src/pkg/infrastructure/source"
)

// BinaryName is the executable shipped inside every release archive.
const BinaryName = "oav"

// AssetPair names the archive and its checksum companion for one release on
// one target, along with the URL they download from.
type AssetPair struct {
	ArchiveName  string
	ChecksumName string
	BaseURL      string
}

// AssetPairFor is a pure function of the resolved version, target triple and
// install source.
func AssetPairFor(src source.Source, version string, triple platform.Triple) AssetPair {
	archive := fmt.Sprintf("%s-%s-%s.tar.gz", BinaryName, version, triple)
	return AssetPair{
		ArchiveName:  archive,
		ChecksumName: archive + ".sha256",
		BaseURL:      fmt.Sprintf("%s/%s/releases/download/v%s", src.BaseURL(), src.RepoSlug(), version),
	}
}

// ArchiveURL is the full download location of the release archive.
func (p AssetPair) ArchiveURL() string {
	return p.BaseURL + "/" + p.ArchiveName
}

// ChecksumURL is the full download location of the checksum file.
func (p AssetPair) ChecksumURL() string {
	return p.BaseURL + "/" + p.ChecksumName
}
