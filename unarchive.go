package main

import (
	"archive/zip"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pierrec/lz4"
)

// openDataset opens path and, for compressed inputs, wraps it in a
// decompressing reader. The returned name has the archive suffix removed so
// the caller can pick a parser by the inner extension.
func openDataset(path string) (io.ReadCloser, string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".zip":
		return openZipArchive(path)
	case ".gz":
		rc, err := openGzipArchive(path)
		return rc, strings.TrimSuffix(path, filepath.Ext(path)), err
	case ".lz4":
		rc, err := openLZ4Archive(path)
		return rc, strings.TrimSuffix(path, filepath.Ext(path)), err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("open %s: %w", path, err)
	}
	return f, path, nil
}

// multiCloser closes the decompressor and then the file under it.
type multiCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *multiCloser) Close() error {
	var errs []error
	for _, c := range m.closers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// openZipArchive opens the largest file inside the archive.
func openZipArchive(path string) (io.ReadCloser, string, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return nil, "", fmt.Errorf("open zip %s: %w", path, err)
	}

	var largestFile *zip.File
	var largestSize uint64
	for _, f := range r.File {
		if f.FileInfo().IsDir() {
			continue
		}
		if largestFile == nil || f.UncompressedSize64 > largestSize {
			largestFile = f
			largestSize = f.UncompressedSize64
		}
	}
	if largestFile == nil {
		r.Close()
		return nil, "", fmt.Errorf("zip %s: no files in archive", path)
	}

	rc, err := largestFile.Open()
	if err != nil {
		r.Close()
		return nil, "", fmt.Errorf("open %s in %s: %w", largestFile.Name, path, err)
	}
	return &multiCloser{Reader: rc, closers: []io.Closer{rc, r}}, largestFile.Name, nil
}

func openGzipArchive(path string) (io.ReadCloser, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	gr, err := gzip.NewReader(file)
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("gzip %s: %w", path, err)
	}
	return &multiCloser{Reader: gr, closers: []io.Closer{gr, file}}, nil
}

func openLZ4Archive(path string) (io.ReadCloser, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return &multiCloser{Reader: lz4.NewReader(file), closers: []io.Closer{file}}, nil
}
