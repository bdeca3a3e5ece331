package domain

// Format identifies the container envelope written around the raw deflate
// body. The envelope is what distinguishes the three codec variants; the
// compressed body bytes are produced by the same deflate engine in all cases.
type Format uint8

const (
	// FormatGzip wraps the deflate body in a gzip member:
	// header + CRC32 + input-size trailer.
	FormatGzip Format = iota + 1

	// FormatZlib wraps the deflate body in a zlib stream:
	// two-byte header + Adler-32 trailer.
	FormatZlib

	// FormatRawDeflate emits the deflate body with no envelope at all.
	FormatRawDeflate
)

// String returns the canonical lowercase name of the format.
// This is useful for logging, configuration, and error reporting.
func (f Format) String() string {
	switch f {
	case FormatGzip:
		return "gzip"
	case FormatZlib:
		return "zlib"
	case FormatRawDeflate:
		return "deflate"
	default:
		return "unknown"
	}
}

// CodecOptions configures a codec variant at construction time.
// The same option set applies to all three variants; the variant constructor
// decides how WindowBits is encoded for the engine.
type CodecOptions struct {
	// Level sets the compression level, between -1 and 9.
	// -1 selects the engine's default trade-off (roughly equivalent to 6),
	// 0 stores data without compression, 1 is fastest and 9 compresses best.
	Level int

	// WindowBits sets the size of the sliding history window as a power of
	// two, between 8 (256 bytes) and 15 (32 KiB). Larger windows find more
	// distant back-references at the cost of memory on both ends.
	// If set to 0, the default of 15 will be used.
	WindowBits int
}

// Status reports the outcome of a single successful Process call.
type Status uint8

const (
	// StatusOK indicates normal progress; the caller is expected to keep
	// supplying buffers.
	StatusOK Status = iota + 1

	// StatusEnd indicates the engine has emitted the stream terminator.
	// No further input may be fed to this stream without a reset.
	StatusEnd
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusEnd:
		return "end"
	default:
		return "unknown"
	}
}
