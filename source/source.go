// Package source provides uniform access to the raw files of a layout
// export, whether it arrives as a ZIP archive or as a plain directory tree
// mirroring the archive layout.
package source

import (
	"archive/zip"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// Source-related errors.
var (
	ErrUnsupported = errors.New("source: not a ZIP archive or directory")
	ErrNotFound    = errors.New("source: file not found")
)

// Source enumerates and reads the files of one layout export.
type Source interface {
	// Files returns all file names as slash-separated paths relative to the
	// source root, in a stable order.
	Files() []string

	// Read returns the content of the named file.
	Read(name string) ([]byte, error)

	// Close releases any resources held by the source.
	Close() error
}

// Open opens a source at path. A directory becomes a directory source; a
// regular file is sniffed for the ZIP magic bytes and opened as an archive.
// Extension is ignored on purpose, content decides.
func Open(path string) (Source, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	if info.IsDir() {
		return openDir(path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	magic := make([]byte, 4)
	n, _ := io.ReadFull(f, magic)
	f.Close()

	// ZIP magic: PK\x03\x04
	if n < 4 || magic[0] != 0x50 || magic[1] != 0x4B || magic[2] != 0x03 || magic[3] != 0x04 {
		return nil, ErrUnsupported
	}

	return openZip(path)
}

type zipSource struct {
	zr    *zip.ReadCloser
	names []string
	files map[string]*zip.File
}

func openZip(path string) (*zipSource, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, err
	}

	s := &zipSource{
		zr:    zr,
		files: make(map[string]*zip.File, len(zr.File)),
	}
	for _, f := range zr.File {
		if f.FileInfo().IsDir() {
			continue
		}
		s.names = append(s.names, f.Name)
		s.files[f.Name] = f
	}
	return s, nil
}

func (s *zipSource) Files() []string {
	return s.names
}

func (s *zipSource) Read(name string) ([]byte, error) {
	f, ok := s.files[name]
	if !ok {
		return nil, ErrNotFound
	}
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

func (s *zipSource) Close() error {
	return s.zr.Close()
}

type dirSource struct {
	root  string
	names []string
}

func openDir(root string) (*dirSource, error) {
	s := &dirSource{root: root}

	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		s.names = append(s.names, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (s *dirSource) Files() []string {
	return s.names
}

func (s *dirSource) Read(name string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(s.root, filepath.FromSlash(name)))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotFound
	}
	return data, err
}

func (s *dirSource) Close() error {
	return nil
}
