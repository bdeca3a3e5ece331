package codec

import "github.com/iamNilotpal/zstream/internal/core/domain"

// NewDeflate returns a codec producing headerless raw deflate streams,
// with no container bytes before or after the compressed body. nil
// options select the defaults (default level, 32 KiB window).
func NewDeflate(opts *domain.CodecOptions) (*Codec, error) {
	return newCodec(domain.FormatRawDeflate, opts)
}
