package download

import (
	"archive/tar"
	"compress/gzip"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// Untar unpacks a gzipped tarball into dst. Release archives are flat, so
// every regular file lands directly in dst under its base name; anything
// trying to escape via path components is flattened away. Returns a map of
// archive entry names to extracted paths.
func Untar(src, dst string) (files map[string]string, err error) {
	reader, err := os.Open(src)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open archive")
	}
	defer func() {
		if errClose := reader.Close(); errClose != nil && err == nil {
			err = errClose
		}
	}()

	gz, err := gzip.NewReader(reader)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create gzip reader")
	}
	defer func() {
		if errClose := gz.Close(); errClose != nil && err == nil {
			err = errClose
		}
	}()
	tr := tar.NewReader(gz)

	files = make(map[string]string)
	for {
		header, readErr := tr.Next()
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return nil, errors.Wrap(readErr, "unhandled error while parsing archive")
		}
		if header == nil || header.Typeflag != tar.TypeReg || header.Name == "" {
			continue
		}

		name := filepath.Base(filepath.Clean(header.Name))
		if name == "." || name == ".." || name == string(filepath.Separator) {
			continue
		}
		target := filepath.Join(dst, name)

		file, openErr := os.OpenFile(target, os.O_CREATE|os.O_RDWR|os.O_TRUNC, os.FileMode(header.Mode))
		if openErr != nil {
			return nil, errors.Wrap(openErr, "failed to open extract target file")
		}
		if _, copyErr := io.Copy(file, tr); copyErr != nil {
			_ = file.Close()
			return nil, errors.Wrap(copyErr, "failed to copy archive file to destination")
		}
		if errClose := file.Close(); errClose != nil {
			return nil, errors.Wrap(errClose, "failed to close extract target file")
		}

		files[header.Name] = target
	}
	return files, nil
}
