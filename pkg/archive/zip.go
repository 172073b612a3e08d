package archive

import (
	"archive/zip"
	"io/ioutil"
	"path/filepath"

	"github.com/pkg/errors"
)

// DefaultContentCap is the size above which LoadZip withholds file
// content, keeping only path, hash and size. Exported archives are
// mostly small XML; anything bigger is usually an embedded binary
// attachment that the diff engine can only compare by hash anyway.
const DefaultContentCap = 2 << 20

// LoadZip reads an exported archive from disk into a Snapshot. Files
// larger than contentCap (bytes) get a nil Content; pass
// DefaultContentCap unless you have a reason not to. Directory
// entries are skipped.
func LoadZip(path string, contentCap int64) (*Snapshot, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening archive %s", path)
	}
	defer r.Close()

	snap := &Snapshot{Source: filepath.Base(path)}
	for _, f := range r.File {
		if f.FileInfo().IsDir() {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, errors.Wrapf(err, "opening %s in archive", f.Name)
		}
		data, err := ioutil.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, errors.Wrapf(err, "reading %s in archive", f.Name)
		}
		rec := FileRecord{
			Path: f.Name,
			Hash: HashContent(data),
			Size: int64(len(data)),
		}
		if rec.Size <= contentCap {
			content := string(data)
			rec.Content = &content
		}
		snap.Files = append(snap.Files, rec)
	}
	return snap, nil
}
