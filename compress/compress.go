// Package compress provides optional whole-snapshot compression for blob
// store persistence.
//
// Compression is opt-in and never applies to the legacy local file format,
// which is fixed byte-for-byte. Object store backends may wrap the encoded
// snapshot in a compressor to cut transfer size.
package compress

// Compressor compresses and decompresses a snapshot blob.
// Implementations must be safe for concurrent use.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
	Decompress(data []byte) ([]byte, error)
	Name() string
}

// ByName returns a built-in compressor by its stable name.
func ByName(name string) (Compressor, bool) {
	switch name {
	case "zstd":
		return Zstd{}, true
	case "lz4":
		return LZ4{}, true
	default:
		return nil, false
	}
}
