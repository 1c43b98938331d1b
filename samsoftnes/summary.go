package samsoftnes

import "fmt"

// Summary returns human-readable report lines for the header, one field per
// line, ready for a log window or terminal.
func (h Header) Summary() []string {
	lines := []string{
		fmt.Sprintf("Format: %s", h.Format),
	}

	mapperLine := fmt.Sprintf("Mapper: %d (%s)", h.Mapper, MapperName(h.Mapper))
	if h.Format == FormatNES2 && h.Submapper != 0 {
		mapperLine += fmt.Sprintf("  Submapper: %d", h.Submapper)
	}
	lines = append(lines,
		mapperLine,
		fmt.Sprintf("PRG ROM: %s", FormatByteSize(h.PRGROMSize)),
		fmt.Sprintf("CHR ROM: %s", FormatByteSize(h.CHRROMSize)),
	)

	if h.PRGRAMSize > 0 || h.PRGNVRAMSize > 0 {
		line := fmt.Sprintf("PRG RAM: %s", FormatByteSize(h.PRGRAMSize))
		if h.PRGNVRAMSize > 0 {
			line += fmt.Sprintf(" (NV: %s)", FormatByteSize(h.PRGNVRAMSize))
		}
		lines = append(lines, line)
	} else {
		lines = append(lines, "PRG RAM: none declared")
	}

	if h.CHRRAMSize > 0 || h.CHRNVRAMSize > 0 {
		line := fmt.Sprintf("CHR RAM: %s", FormatByteSize(h.CHRRAMSize))
		if h.CHRNVRAMSize > 0 {
			line += fmt.Sprintf(" (NV: %s)", FormatByteSize(h.CHRNVRAMSize))
		}
		lines = append(lines, line)
	}

	lines = append(lines,
		fmt.Sprintf("Mirroring: %s", h.Mirroring),
		fmt.Sprintf("Battery-backed RAM: %s", yn(h.HasBattery)),
		fmt.Sprintf("Trainer present: %s", yn(h.HasTrainer)),
	)
	if h.Console != ConsoleStandard {
		lines = append(lines, fmt.Sprintf("Console type: %s", h.Console))
	}
	lines = append(lines, fmt.Sprintf("TV System: %s", h.TVSystem))

	return lines
}

func yn(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
