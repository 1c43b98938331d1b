package samsoftnes

import "fmt"

// Cartridge is a fully validated cartridge image. It owns copies of its data
// regions and is never modified after construction; opening a new ROM
// replaces the whole value.
type Cartridge struct {
	Header Header

	Trainer []byte // 512 bytes when present, nil otherwise
	PRGROM  []byte
	CHRROM  []byte // empty when the board uses CHR-RAM

	// RawHeader keeps the undecoded header bytes for diagnostics.
	RawHeader [HEADER_SIZE]byte

	// Path and Hash identify the source image. Both are set by LoadROMFile
	// and left zero when a cartridge is decoded straight from a buffer.
	Path string
	Hash uint64
}

// LoadCartridge slices the data regions declared by an already parsed header
// out of buf: an optional 512 byte trainer at offset 16, then PRG-ROM, then
// CHR-ROM. Every region is checked against the remaining buffer length
// before any slice is taken, so a Cartridge never exists with less data than
// its header declares.
func LoadCartridge(buf []byte, h Header) (*Cartridge, error) {
	if len(buf) < HEADER_SIZE {
		return nil, fmt.Errorf("%w: have %d bytes, need %d", ErrTooShort, len(buf), HEADER_SIZE)
	}

	cart := &Cartridge{Header: h}
	copy(cart.RawHeader[:], buf[:HEADER_SIZE])

	offset := HEADER_SIZE
	if h.HasTrainer {
		if len(buf) < offset+TRAINER_SIZE {
			return nil, fmt.Errorf("%w: have %d of %d bytes", ErrTruncatedTrainer, len(buf)-offset, TRAINER_SIZE)
		}
		cart.Trainer = append([]byte(nil), buf[offset:offset+TRAINER_SIZE]...)
		offset += TRAINER_SIZE
	}

	if len(buf) < offset+h.PRGROMSize {
		return nil, fmt.Errorf("%w: PRG ROM is smaller than the header declares", ErrTruncatedROM)
	}
	cart.PRGROM = append([]byte(nil), buf[offset:offset+h.PRGROMSize]...)
	offset += h.PRGROMSize

	if len(buf) < offset+h.CHRROMSize {
		return nil, fmt.Errorf("%w: CHR ROM is smaller than the header declares", ErrTruncatedROM)
	}
	cart.CHRROM = append([]byte(nil), buf[offset:offset+h.CHRROMSize]...)

	return cart, nil
}

// Decode parses the header of buf and loads the cartridge in one call.
func Decode(buf []byte) (*Cartridge, error) {
	h, err := ParseHeader(buf)
	if err != nil {
		return nil, err
	}
	return LoadCartridge(buf, h)
}
