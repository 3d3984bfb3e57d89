package compress

import (
	"sync"

	"github.com/klauspost/compress/zstd"
)

// Encoder/decoder are stateless for EncodeAll/DecodeAll use and shared
// process-wide.
var (
	zstdInit    sync.Once
	zstdEncoder *zstd.Encoder
	zstdDecoder *zstd.Decoder
)

func zstdCodecs() (*zstd.Encoder, *zstd.Decoder) {
	zstdInit.Do(func() {
		zstdEncoder, _ = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
		zstdDecoder, _ = zstd.NewReader(nil)
	})
	return zstdEncoder, zstdDecoder
}

// Zstd compresses snapshots with zstandard. Good ratio, fast decode.
type Zstd struct{}

// Compress returns the zstd-compressed form of data.
func (Zstd) Compress(data []byte) ([]byte, error) {
	enc, _ := zstdCodecs()
	return enc.EncodeAll(data, nil), nil
}

// Decompress reverses Compress.
func (Zstd) Decompress(data []byte) ([]byte, error) {
	_, dec := zstdCodecs()
	return dec.DecodeAll(data, nil)
}

// Name returns the unique name of the compressor ("zstd").
func (Zstd) Name() string { return "zstd" }
