package samsoftnes

import "errors"

var (
	// ErrTooShort is returned when the buffer cannot hold a 16 byte header.
	ErrTooShort = errors.New("file too small to contain an iNES header")

	// ErrBadMagic is returned when the NES<0x1A> signature is missing.
	ErrBadMagic = errors.New("missing NES\x1a magic number")

	// ErrTruncatedTrainer is returned when flags6 declares a trainer but the
	// file ends before the 512 byte trainer block.
	ErrTruncatedTrainer = errors.New("header declares a trainer but the file ends before it")

	// ErrTruncatedROM is returned when a declared PRG or CHR region extends
	// past the end of the file. The wrapped message names the region.
	ErrTruncatedROM = errors.New("file truncated")
)
