package codec

import "github.com/iamNilotpal/zstream/internal/core/domain"

// NewZlib returns a codec producing zlib-framed streams: a two-byte
// header, the deflate body, then an Adler-32 trailer. nil options select
// the defaults (default level, 32 KiB window).
func NewZlib(opts *domain.CodecOptions) (*Codec, error) {
	return newCodec(domain.FormatZlib, opts)
}
