package codec

import "github.com/iamNilotpal/zstream/internal/core/domain"

// NewGzip returns a codec producing gzip-framed streams: a member header,
// the deflate body, then a CRC32 and input-size trailer. nil options
// select the defaults (default level, 32 KiB window).
func NewGzip(opts *domain.CodecOptions) (*Codec, error) {
	return newCodec(domain.FormatGzip, opts)
}
