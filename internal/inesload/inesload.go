// Package inesload decodes iNES-format ROM images into the Cartridge value
// the emulator core consumes. Header parsing lives outside the core package
// deliberately: the core only ever sees a fully decoded Cartridge, never a
// raw file.
package inesload

import (
	"fmt"
	"io"
	"os"

	"github.com/madrijkaard/rkd-emulator-nes/internal/nescore"
)

// magic is the four-byte signature at the start of every iNES file.
const magic = "NES\x1a"

// Load reads and decodes an iNES-format ROM image from path.
func Load(path string) (*nescore.Cartridge, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	buf, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	return Parse(buf)
}

// Parse decodes a complete iNES 1.0 image (16-byte header, optional 512-byte
// trainer, PRG-ROM, then CHR-ROM) into a Cartridge.
func Parse(buf []byte) (*nescore.Cartridge, error) {
	if len(buf) < 16 {
		return nil, &nescore.ErrInvalidCartridge{Reason: "file shorter than the iNES header"}
	}
	if string(buf[:4]) != magic {
		return nil, &nescore.ErrInvalidCartridge{Reason: "missing iNES magic number"}
	}

	prgSize := int(buf[4]) * 0x4000
	chrSize := int(buf[5]) * 0x2000
	flags6 := buf[6]
	flags7 := buf[7]

	mapperID := (flags7 & 0xF0) | (flags6 >> 4)

	off := 16
	if flags6&0x04 != 0 {
		off += 512 // trainer, discarded: not addressable by any mapper here
	}

	if len(buf) < off+prgSize {
		return nil, &nescore.ErrInvalidCartridge{Reason: fmt.Sprintf("truncated PRG-ROM: want %d bytes", prgSize)}
	}
	prg := buf[off : off+prgSize]
	off += prgSize

	if len(buf) < off+chrSize {
		return nil, &nescore.ErrInvalidCartridge{Reason: fmt.Sprintf("truncated CHR-ROM: want %d bytes", chrSize)}
	}
	chr := buf[off : off+chrSize]

	mirroring := nescore.MirrorHorizontal
	switch {
	case flags6&0x08 != 0:
		mirroring = nescore.MirrorFourScreen
	case flags6&0x01 != 0:
		mirroring = nescore.MirrorVertical
	}

	return &nescore.Cartridge{
		MapperID:  mapperID,
		Mirroring: mirroring,
		Battery:   flags6&0x02 != 0,
		PRGROM:    prg,
		CHRROM:    chr,
	}, nil
}
