package gallery

import (
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

var imageExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".gif":  {},
	".webp": {},
	".bmp":  {},
	".svg":  {},
	".ico":  {},
	".tiff": {},
	".tif":  {},
}

// Entry is one image file from the gallery directory.
type Entry struct {
	Name      string
	SizeBytes int64
}

// Store lists and reads image files from a single local directory. It is the
// file-enumeration and file-read collaborator for the metadata extractor.
type Store struct {
	dir string
}

func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// List returns the directory's image files sorted by name. Subdirectories and
// files without a recognized image extension are skipped.
func (s *Store) List() ([]Entry, error) {
	dirEntries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read gallery dir: %w", err)
	}

	var entries []Entry

	for _, de := range dirEntries {
		if de.IsDir() || !IsImage(de.Name()) {
			continue
		}

		info, err := de.Info()
		if err != nil {
			continue
		}

		entries = append(entries, Entry{
			Name:      de.Name(),
			SizeBytes: info.Size(),
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})

	return entries, nil
}

// Read returns the raw bytes and size of a single image file by base name.
func (s *Store) Read(name string) ([]byte, int64, error) {
	path, err := s.path(name)
	if err != nil {
		return nil, 0, err
	}

	bs, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read file: %w", err)
	}

	return bs, int64(len(bs)), nil
}

// path resolves a name within the gallery dir. Only plain base names of
// recognized image files are accepted, so requests cannot reach outside the
// directory.
func (s *Store) path(name string) (string, error) {
	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		return "", fmt.Errorf("invalid file name: %q", name)
	}

	if !IsImage(name) {
		return "", fmt.Errorf("not an image file: %q", name)
	}

	return filepath.Join(s.dir, name), nil
}

// IsImage reports whether the file name has a recognized image extension,
// matched case-insensitively.
func IsImage(name string) bool {
	_, ok := imageExtensions[strings.ToLower(filepath.Ext(name))]

	return ok
}

// ContentType returns the MIME type to serve a file with, based on its
// extension.
func ContentType(name string) string {
	if t := mime.TypeByExtension(strings.ToLower(filepath.Ext(name))); t != "" {
		return t
	}

	return "application/octet-stream"
}
