// Package samsoftnes decodes NES cartridge images in the iNES / NES 2.0
// binary format.
// http://wiki.nesdev.com/w/index.php/INES
// http://wiki.nesdev.com/w/index.php/NES_2.0
package samsoftnes

import "fmt"

// 16KiB (0x4000)
const PRG_BLOCK_SIZE = 16384

// 8KiB (0x2000)
const CHR_BLOCK_SIZE = 8192

// iNES1 PRG-RAM units are 8KiB
const PRG_RAM_BLOCK_SIZE = 8192

const (
	HEADER_SIZE  = 16
	TRAINER_SIZE = 512
)

// Format identifies which of the two sibling header formats a cartridge
// image uses. NES 2.0 is detected from bits 2-3 of flags7.
type Format byte

const (
	FormatINES1 Format = iota
	FormatNES2
)

func (f Format) String() string {
	if f == FormatNES2 {
		return "NES 2.0"
	}
	return "iNES 1.0"
}

// MirrorMode is the nametable mirroring arrangement wired into the board.
type MirrorMode byte

const (
	MirrorHorizontal MirrorMode = iota
	MirrorVertical
	MirrorFourScreen
)

func (m MirrorMode) String() string {
	switch m {
	case MirrorVertical:
		return "Vertical"
	case MirrorFourScreen:
		return "Four-screen"
	default:
		return "Horizontal"
	}
}

// ConsoleType is the two bit console field of flags7.
type ConsoleType byte

const (
	ConsoleStandard ConsoleType = iota
	ConsoleVsSystem
	ConsolePlayChoice10
	ConsoleExtended
)

func (c ConsoleType) String() string {
	switch c {
	case ConsoleVsSystem:
		return "VS System"
	case ConsolePlayChoice10:
		return "PlayChoice-10"
	case ConsoleExtended:
		return "Extended"
	default:
		return "Standard"
	}
}

// TVSystem is the region the cartridge was released for.
type TVSystem byte

const (
	TVNTSC TVSystem = iota
	TVPAL
	TVMulti
	TVUnknown
)

func (tv TVSystem) String() string {
	switch tv {
	case TVPAL:
		return "PAL"
	case TVMulti:
		return "Multi-region"
	case TVUnknown:
		return "Unknown"
	default:
		return "NTSC"
	}
}

// Header is the decoded 16 byte iNES / NES 2.0 header. It is produced fully
// populated by ParseHeader and never modified afterwards.
type Header struct {
	Format    Format
	Mapper    uint16 // 8 bits for iNES 1.0, 12 bits for NES 2.0
	Submapper uint8  // NES 2.0 only, zero otherwise

	PRGROMSize int // bytes, multiple of PRG_BLOCK_SIZE
	CHRROMSize int // bytes, multiple of CHR_BLOCK_SIZE

	PRGRAMSize   int
	PRGNVRAMSize int
	CHRRAMSize   int
	CHRNVRAMSize int

	Mirroring  MirrorMode
	HasBattery bool
	HasTrainer bool

	Console  ConsoleType
	TVSystem TVSystem
}

// mappers whose boards always carry onboard PRG-RAM even when the iNES 1.0
// RAM byte is zero. Policy inherited from the iNES convention of treating a
// zero byte 8 as "8KiB" for MMC1 and MMC3 boards, not a hardware guarantee.
func mapperHasOnboardRAM(mapper uint16) bool {
	return mapper == 1 || mapper == 4
}

// decodeRAMSize decodes a NES 2.0 RAM/NVRAM exponent nibble: zero means no
// memory, otherwise the size is 64 << v bytes.
func decodeRAMSize(v byte) int {
	if v == 0 {
		return 0
	}
	return 64 << v
}

// ParseHeader validates and decodes the first 16 bytes of buf. Bytes beyond
// the header region are not inspected. On any validation failure no Header
// is returned.
func ParseHeader(buf []byte) (Header, error) {
	if len(buf) < HEADER_SIZE {
		return Header{}, fmt.Errorf("%w: have %d bytes, need %d", ErrTooShort, len(buf), HEADER_SIZE)
	}
	if buf[0] != 'N' || buf[1] != 'E' || buf[2] != 'S' || buf[3] != 0x1a {
		return Header{}, fmt.Errorf("%w: got % 02x", ErrBadMagic, buf[:4])
	}

	flags6 := buf[6]
	flags7 := buf[7]

	h := Header{Format: FormatINES1}
	if flags7&0x0C == 0x08 {
		h.Format = FormatNES2
	}

	h.Mapper = uint16(flags6>>4) | uint16(flags7&0xF0)
	prgUnits := int(buf[4])
	chrUnits := int(buf[5])
	if h.Format == FormatNES2 {
		h.Mapper |= uint16(buf[8]&0x0F) << 8
		h.Submapper = buf[8] >> 4
		// The extension nibbles are treated as plain numeric high bits. The
		// NES 2.0 exponent-multiplier encoding for a nibble of 0xF is not
		// decoded.
		prgUnits |= int(buf[9]&0x0F) << 8
		chrUnits |= int(buf[9]>>4) << 8
	}
	h.PRGROMSize = prgUnits * PRG_BLOCK_SIZE
	h.CHRROMSize = chrUnits * CHR_BLOCK_SIZE

	h.Mirroring = MirrorHorizontal
	if flags6&0x01 != 0 {
		h.Mirroring = MirrorVertical
	}
	if flags6&0x08 != 0 {
		// four-screen overrides the horizontal/vertical bit
		h.Mirroring = MirrorFourScreen
	}
	h.HasBattery = flags6&0x02 != 0
	h.HasTrainer = flags6&0x04 != 0
	h.Console = ConsoleType(flags7 & 0x03)

	if h.Format == FormatNES2 {
		h.PRGRAMSize = decodeRAMSize(buf[10] & 0x0F)
		h.PRGNVRAMSize = decodeRAMSize(buf[10] >> 4)
		h.CHRRAMSize = decodeRAMSize(buf[11] & 0x0F)
		h.CHRNVRAMSize = decodeRAMSize(buf[11] >> 4)
		h.TVSystem = TVSystem(buf[12] & 0x03)
	} else {
		if buf[8] != 0 {
			h.PRGRAMSize = int(buf[8]) * PRG_RAM_BLOCK_SIZE
		} else if mapperHasOnboardRAM(h.Mapper) {
			h.PRGRAMSize = PRG_RAM_BLOCK_SIZE
		}
		if chrUnits == 0 {
			// no CHR-ROM declared, the board supplies writable CHR memory
			h.CHRRAMSize = CHR_BLOCK_SIZE
		}
		h.TVSystem = TVNTSC
		if buf[9]&0x01 != 0 {
			h.TVSystem = TVPAL
		}
	}

	return h, nil
}

// HasCHRROM reports whether the image carries CHR-ROM data, as opposed to
// the board backing CHR with writable memory.
func (h Header) HasCHRROM() bool {
	return h.CHRROMSize > 0
}
