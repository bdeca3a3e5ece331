package engine

import (
	"encoding/binary"

	"github.com/klauspost/compress/flate"
)

// writeHeader stages the container header ahead of the deflate body.
// Raw deflate has no envelope, so nothing is written for it.
func (st *state) writeHeader() {
	switch st.container {
	case containerGzip:
		// RFC 1952 member header: magic, CM=8 (deflate), no flags, zero
		// mtime, XFL hinting the level, OS unspecified.
		var xfl byte
		switch {
		case st.level == flate.BestCompression:
			xfl = 2
		case st.level == flate.BestSpeed:
			xfl = 4
		}
		st.pending.Write([]byte{
			0x1f, 0x8b, // magic number
			8,          // CM = deflate
			0,          // FLG
			0, 0, 0, 0, // MTIME
			xfl, // XFL
			255, // OS (unspecified)
		})

	case containerZlib:
		// RFC 1950 header. CINFO always advertises the full 32 KiB
		// window: the flate compressor uses the whole window regardless
		// of the configured windowBits, and a larger declared window is
		// always safe for decompressors.
		cmf := byte(8 | 7<<4)

		level := st.level
		if level == flate.DefaultCompression {
			level = 6
		}
		var flevel byte
		switch {
		case level < 2:
			flevel = 0
		case level < 6:
			flevel = 1
		case level == 6:
			flevel = 2
		default:
			flevel = 3
		}

		flg := flevel << 6
		if rem := (uint16(cmf)*256 + uint16(flg)) % 31; rem != 0 {
			flg += byte(31 - rem)
		}
		st.pending.Write([]byte{cmf, flg})
	}
}

// writeTrailer stages the container trailer after the final deflate block.
func (st *state) writeTrailer() {
	switch st.container {
	case containerGzip:
		// CRC32 and ISIZE, both little-endian.
		var trailer [8]byte
		binary.LittleEndian.PutUint32(trailer[0:4], st.digest.Sum32())
		binary.LittleEndian.PutUint32(trailer[4:8], st.isize)
		st.pending.Write(trailer[:])

	case containerZlib:
		// Adler-32 of the uncompressed data, big-endian.
		var trailer [4]byte
		binary.BigEndian.PutUint32(trailer[:], st.digest.Sum32())
		st.pending.Write(trailer[:])
	}
}
