package samsoftnes

import "testing"

func TestHeaderSummary(t *testing.T) {
	h, err := ParseHeader(nromHeader)
	if err != nil {
		t.Fatal(err)
	}

	lines := h.Summary()
	want := []string{
		"Format: iNES 1.0",
		"Mapper: 0 (NROM)",
		"PRG ROM: 32 KB",
		"CHR ROM: 8 KB",
		"PRG RAM: none declared",
		"Mirroring: Vertical",
		"Battery-backed RAM: no",
		"Trainer present: no",
		"TV System: NTSC",
	}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines %q, want %d", len(lines), lines, len(want))
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d: %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestHeaderSummaryNES2(t *testing.T) {
	header := []byte{'N', 'E', 'S', 0x1a, 2, 1, 0x12, 0x09, 0x10, 0, 0x71, 0, 1, 0, 0, 0}
	h, err := ParseHeader(header)
	if err != nil {
		t.Fatal(err)
	}

	lines := h.Summary()
	want := []string{
		"Format: NES 2.0",
		"Mapper: 1 (MMC1 (SxROM))  Submapper: 1",
		"PRG ROM: 32 KB",
		"CHR ROM: 8 KB",
		"PRG RAM: 128 B (NV: 8 KB)",
		"Mirroring: Horizontal",
		"Battery-backed RAM: yes",
		"Trainer present: no",
		"Console type: VS System",
		"TV System: PAL",
	}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines %q, want %d", len(lines), lines, len(want))
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d: %q, want %q", i, lines[i], want[i])
		}
	}
}
