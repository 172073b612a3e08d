package archive

import (
	"crypto/sha256"
	"encoding/hex"
)

// FileRecord is one file in an exported archive snapshot. Content may
// be withheld (nil) for large or non-critical files; consumers must
// treat a nil Content as "unknown", not as an empty file.
type FileRecord struct {
	Path    string
	Hash    string // hex sha256 of the raw content
	Size    int64
	Content *string
}

// HasContent reports whether the record carries its content.
func (r FileRecord) HasContent() bool {
	return r.Content != nil
}

// Snapshot is the file listing of one exported archive. Files keep
// the order they were read in; the engine does not depend on it.
type Snapshot struct {
	Source string // where the snapshot came from (informational)
	Files  []FileRecord
}

// HashContent returns the digest used for FileRecord.Hash.
func HashContent(content []byte) string {
	sum := sha256.Sum256(content)
	return hex.EncodeToString(sum[:])
}

// MakeRecord builds a record with its content attached, computing
// hash and size. Mostly useful for constructing inputs in tests and
// in the CLI.
func MakeRecord(path, content string) FileRecord {
	return FileRecord{
		Path:    path,
		Hash:    HashContent([]byte(content)),
		Size:    int64(len(content)),
		Content: &content,
	}
}
