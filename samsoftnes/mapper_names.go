package samsoftnes

// UnknownMapperName is returned for mapper numbers without a table entry.
const UnknownMapperName = "Unknown/Custom"

// well-known mapper numbers. Many more exist; anything missing resolves to
// UnknownMapperName.
var mapperNames = map[uint16]string{
	0:   "NROM",
	1:   "MMC1 (SxROM)",
	2:   "UNROM (UxROM)",
	3:   "CNROM (CxROM)",
	4:   "MMC3 (TxROM)",
	5:   "MMC5 (ExROM)",
	7:   "AOROM (AxROM)",
	9:   "MMC2 (PxROM)",
	10:  "MMC4 (FxROM)",
	11:  "Color Dreams",
	13:  "CPROM",
	15:  "100-in-1",
	66:  "GxROM/MxROM",
	69:  "FME-7 / Sunsoft 5",
	71:  "Camerica (BF909x)",
	73:  "VRC3",
	75:  "VRC1",
	76:  "VRC4",
	78:  "Irem 74HC161/32",
	79:  "NINA-003/006",
	85:  "VRC7",
	87:  "VRC2",
	94:  "HVC-UN1ROM",
	118: "TxSROM",
	119: "TQROM",
	210: "Namco 129/163",
}

// MapperName resolves a mapper number to its common board name.
func MapperName(mapper uint16) string {
	if name, ok := mapperNames[mapper]; ok {
		return name
	}
	return UnknownMapperName
}
