package compress

import (
	"encoding/binary"
	"errors"

	"github.com/pierrec/lz4/v4"
)

// lz4 block compression does not self-describe the uncompressed size, so each
// blob carries a fixed header:
// [UncompressedSize uint32][CompressedSize uint32][Data...]
// CompressedSize == 0 marks an incompressible blob stored raw.
const lz4HeaderSize = 8

// LZ4 compresses snapshots with lz4 block compression. Lower ratio than
// zstd but very fast.
type LZ4 struct{}

// Compress returns the lz4-compressed form of data, falling back to storing
// the blob raw when compression does not help.
func (LZ4) Compress(data []byte) ([]byte, error) {
	bound := lz4.CompressBlockBound(len(data))
	compressed := make([]byte, bound)

	n, err := lz4.CompressBlock(data, compressed, nil)
	if err != nil {
		return nil, err
	}

	if n == 0 || n >= len(data) {
		// Incompressible, store raw
		out := make([]byte, lz4HeaderSize+len(data))
		binary.LittleEndian.PutUint32(out[0:], uint32(len(data)))
		binary.LittleEndian.PutUint32(out[4:], 0)
		copy(out[lz4HeaderSize:], data)
		return out, nil
	}

	out := make([]byte, lz4HeaderSize+n)
	binary.LittleEndian.PutUint32(out[0:], uint32(len(data)))
	binary.LittleEndian.PutUint32(out[4:], uint32(n))
	copy(out[lz4HeaderSize:], compressed[:n])
	return out, nil
}

// Decompress reverses Compress.
func (LZ4) Decompress(data []byte) ([]byte, error) {
	if len(data) < lz4HeaderSize {
		return nil, errors.New("lz4: blob too small for header")
	}

	uncompressedSize := binary.LittleEndian.Uint32(data[0:])
	compressedSize := binary.LittleEndian.Uint32(data[4:])
	body := data[lz4HeaderSize:]

	if compressedSize == 0 {
		if uint32(len(body)) != uncompressedSize {
			return nil, errors.New("lz4: raw blob size mismatch")
		}
		out := make([]byte, len(body))
		copy(out, body)
		return out, nil
	}

	if uint32(len(body)) != compressedSize {
		return nil, errors.New("lz4: compressed blob size mismatch")
	}

	out := make([]byte, uncompressedSize)
	n, err := lz4.UncompressBlock(body, out)
	if err != nil {
		return nil, err
	}
	return out[:n], nil
}

// Name returns the unique name of the compressor ("lz4").
func (LZ4) Name() string { return "lz4" }
