// Package paths derives remote paths for file records.
package paths

import (
	"path"
	"strings"

	"github.com/google/uuid"
)

// Normalize converts a relative path to forward slashes and collapses
// duplicate separators.
func Normalize(p string) string {
	p = strings.ReplaceAll(p, "\\", "/")
	for strings.Contains(p, "//") {
		p = strings.ReplaceAll(p, "//", "/")
	}
	return strings.TrimPrefix(p, "/")
}

// EmbedID rewrites a filename to stem.<dataset-id>.ext. If the filename
// already contains the id it is returned unchanged, so embedding is
// idempotent. A destination filename collision on shared storage can then
// only happen for the exact same dataset.
func EmbedID(filename string, id uuid.UUID) string {
	s := id.String()
	if strings.Contains(filename, s) {
		return filename
	}
	ext := path.Ext(filename)
	stem := strings.TrimSuffix(filename, ext)
	return stem + "." + s + ext
}

// Resolve returns the absolute path of a file record on its endpoint:
// repository root joined with the normalized relative path. When embedID is
// true (any authoritative destination) the filename component is rewritten
// with the dataset id embedded.
func Resolve(root, relPath string, datasetID uuid.UUID, embedID bool) string {
	rel := Normalize(relPath)
	if embedID {
		dir, file := path.Split(rel)
		rel = dir + EmbedID(file, datasetID)
	}

	root = strings.TrimRight(Normalize(root), "/")
	if root == "" {
		return "/" + rel
	}
	return "/" + root + "/" + rel
}

// Dir returns the parent directory of an absolute resolved path.
func Dir(p string) string {
	return path.Dir(p)
}

// Base returns the filename component of an absolute resolved path.
func Base(p string) string {
	return path.Base(p)
}
