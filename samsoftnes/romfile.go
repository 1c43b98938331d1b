package samsoftnes

import (
	"archive/zip"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bodgit/sevenzip"
	"github.com/cespare/xxhash"
	"github.com/edsrzf/mmap-go"
	"github.com/golang/glog"
)

// LoadROMFile reads the file at path and decodes it into a Cartridge. This
// is the entry point for callers that work with files rather than buffers;
// it performs the only I/O in the package.
func LoadROMFile(path string) (*Cartridge, error) {
	data, err := ReadROMFile(path)
	if err != nil {
		return nil, err
	}

	cart, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	cart.Path = path
	cart.Hash = xxhash.Sum64(data)

	glog.V(1).Infof("loaded %s: mapper %d (%s), PRG %s, CHR %s, hash %016x",
		filepath.Base(path), cart.Header.Mapper, MapperName(cart.Header.Mapper),
		FormatByteSize(cart.Header.PRGROMSize), FormatByteSize(cart.Header.CHRROMSize),
		cart.Hash)

	return cart, nil
}

// ReadROMFile reads a ROM image from disk. Archives are unpacked
// transparently: .zip and .7z yield their first member, .gz the decompressed
// stream. Anything else is read as-is.
func ReadROMFile(path string) ([]byte, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".zip":
		return readZipROM(path)
	case ".gz":
		return readGzipROM(path)
	case ".7z":
		return readSevenZipROM(path)
	}
	return readPlainROM(path)
}

// readPlainROM maps the file read-only and copies the bytes out, falling
// back to a regular read when the file refuses to map (empty files do).
func readPlainROM(path string) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	m, err := mmap.Map(file, mmap.RDONLY, 0)
	if err != nil {
		return io.ReadAll(file)
	}
	defer m.Unmap()

	return append([]byte(nil), m...), nil
}

func readZipROM(path string) ([]byte, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	if len(r.File) == 0 {
		return nil, fmt.Errorf("%s: empty archive", filepath.Base(path))
	}
	rc, err := r.File[0].Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	return io.ReadAll(rc)
}

func readGzipROM(path string) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	gz, err := gzip.NewReader(file)
	if err != nil {
		return nil, err
	}
	defer gz.Close()

	return io.ReadAll(gz)
}

func readSevenZipROM(path string) ([]byte, error) {
	r, err := sevenzip.OpenReader(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	if len(r.File) == 0 {
		return nil, fmt.Errorf("%s: empty archive", filepath.Base(path))
	}
	rc, err := r.File[0].Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	return io.ReadAll(rc)
}
