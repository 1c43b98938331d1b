package samsoftnes

import (
	"archive/zip"
	"bytes"
	"compress/gzip"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeTestROM(t *testing.T) (string, []byte) {
	t.Helper()
	rom := buildROM(nromHeader, filled(2*PRG_BLOCK_SIZE, 0xAA), filled(CHR_BLOCK_SIZE, 0xBB))
	path := filepath.Join(t.TempDir(), "test.nes")
	if err := os.WriteFile(path, rom, 0644); err != nil {
		t.Fatal(err)
	}
	return path, rom
}

func TestLoadROMFile(t *testing.T) {
	path, rom := writeTestROM(t)

	cart, err := LoadROMFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if cart.Path != path {
		t.Errorf("path %q, want %q", cart.Path, path)
	}
	if cart.Hash == 0 {
		t.Error("hash not set")
	}
	if cart.Header.Mapper != 0 || cart.Header.PRGROMSize != 2*PRG_BLOCK_SIZE {
		t.Errorf("header %+v", cart.Header)
	}
	if !bytes.Equal(cart.PRGROM, rom[HEADER_SIZE:HEADER_SIZE+2*PRG_BLOCK_SIZE]) {
		t.Error("PRG ROM does not match file contents")
	}
}

func TestLoadROMFileMissing(t *testing.T) {
	if _, err := LoadROMFile(filepath.Join(t.TempDir(), "nope.nes")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestLoadROMFileInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.nes")
	if err := os.WriteFile(path, []byte("short"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadROMFile(path); !errors.Is(err, ErrTooShort) {
		t.Errorf("expected ErrTooShort, got %v", err)
	}
}

func TestReadROMFileZip(t *testing.T) {
	_, rom := writeTestROM(t)

	path := filepath.Join(t.TempDir(), "test.zip")
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("test.nes")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := w.Write(rom); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatal(err)
	}

	data, err := ReadROMFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(data, rom) {
		t.Errorf("zip read: %d bytes, want %d", len(data), len(rom))
	}
}

func TestReadROMFileGzip(t *testing.T) {
	_, rom := writeTestROM(t)

	path := filepath.Join(t.TempDir(), "test.nes.gz")
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	if _, err := gz.Write(rom); err != nil {
		t.Fatal(err)
	}
	if err := gz.Close(); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatal(err)
	}

	data, err := ReadROMFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(data, rom) {
		t.Errorf("gzip read: %d bytes, want %d", len(data), len(rom))
	}
}

// the content hash identifies the image, not its container: a zipped copy
// hashes the same as the plain file.
func TestLoadROMFileHashStable(t *testing.T) {
	path, rom := writeTestROM(t)

	plain, err := LoadROMFile(path)
	if err != nil {
		t.Fatal(err)
	}

	zipPath := filepath.Join(t.TempDir(), "test.zip")
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("test.nes")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := w.Write(rom); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(zipPath, buf.Bytes(), 0644); err != nil {
		t.Fatal(err)
	}

	zipped, err := LoadROMFile(zipPath)
	if err != nil {
		t.Fatal(err)
	}
	if plain.Hash != zipped.Hash {
		t.Errorf("hash %016x vs %016x", plain.Hash, zipped.Hash)
	}
}
