// Package snapshot implements the persisted store format.
//
// A snapshot is a single byte stream:
//
//	offset 0..1  : uint16, big-endian record count
//	offset 2..EOF: UTF-8 payload, the serialized record sequence
//
// The count prefix is written correctly but is not consulted when decoding:
// the decoder skips exactly two bytes and parses everything after as the full
// record sequence. Implementations must not rely on the prefix for length
// determination.
//
// The on-file write is two-phase, matching the legacy format's behavior: the
// file is truncated and the count written first, then reopened and the
// payload appended. There is no atomicity across the phases; a crash between
// them leaves a file that fails to decode.
package snapshot

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/hupe1980/flatstore/codec"
	"github.com/hupe1980/flatstore/internal/fs"
	"github.com/hupe1980/flatstore/record"
)

// HeaderSize is the size of the count prefix in bytes.
const HeaderSize = 2

// ErrTooManyRecords is returned when a store exceeds the uint16 count prefix.
// The limit is a documented property of the format; counts are never
// silently wrapped.
var ErrTooManyRecords = errors.New("snapshot: record count exceeds 65535")

// ErrCorruptSnapshot indicates a snapshot whose payload cannot be parsed.
// There is no partial-recovery path; the error is fatal to the load.
//
// The underlying parse error can be accessed via errors.Unwrap.
type ErrCorruptSnapshot struct {
	Path  string
	cause error
}

func (e *ErrCorruptSnapshot) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("corrupt snapshot: %v", e.cause)
	}
	return fmt.Sprintf("corrupt snapshot %s: %v", e.Path, e.cause)
}

func (e *ErrCorruptSnapshot) Unwrap() error { return e.cause }

// Encode serializes the record sequence to the snapshot byte format.
// A nil codec selects codec.Default.
func Encode(recs []record.Record, c codec.Codec) ([]byte, error) {
	if c == nil {
		c = codec.Default
	}
	if len(recs) > math.MaxUint16 {
		return nil, ErrTooManyRecords
	}
	if recs == nil {
		// An empty store still serializes as an empty sequence.
		recs = []record.Record{}
	}

	payload, err := c.Marshal(recs)
	if err != nil {
		return nil, fmt.Errorf("snapshot: encode payload: %w", err)
	}

	buf := make([]byte, HeaderSize, HeaderSize+len(payload))
	binary.BigEndian.PutUint16(buf, uint16(len(recs)))
	return append(buf, payload...), nil
}

// Decode reconstructs the record sequence from snapshot bytes.
//
// The count prefix is read and discarded. Any parse failure of the payload is
// returned as *ErrCorruptSnapshot.
func Decode(data []byte, c codec.Codec) ([]record.Record, error) {
	if c == nil {
		c = codec.Default
	}
	if len(data) < HeaderSize {
		return nil, &ErrCorruptSnapshot{cause: fmt.Errorf("stream shorter than %d-byte count prefix", HeaderSize)}
	}

	_ = binary.BigEndian.Uint16(data[:HeaderSize]) // read, never used

	var recs []record.Record
	if err := c.Unmarshal(data[HeaderSize:], &recs); err != nil {
		return nil, &ErrCorruptSnapshot{cause: err}
	}
	return recs, nil
}

// WriteFile persists the record sequence to path, replacing prior content.
//
// The write is deliberately two-phase with no atomicity guarantee across the
// phases (see the package comment). Callers needing atomic persistence should
// use a blob store backend instead.
func WriteFile(fsys fs.FileSystem, path string, recs []record.Record, c codec.Codec) error {
	if fsys == nil {
		fsys = fs.Default
	}

	data, err := Encode(recs, c)
	if err != nil {
		return err
	}

	// Phase 1: truncate and write the count prefix.
	f, err := fsys.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("snapshot: open %s: %w", path, err)
	}
	if _, err := f.Write(data[:HeaderSize]); err != nil {
		_ = f.Close()
		return fmt.Errorf("snapshot: write count prefix: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("snapshot: close %s: %w", path, err)
	}

	// Phase 2: reopen and append the payload.
	f, err = fsys.OpenFile(path, os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("snapshot: reopen %s: %w", path, err)
	}
	if _, err := f.Write(data[HeaderSize:]); err != nil {
		_ = f.Close()
		return fmt.Errorf("snapshot: write payload: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("snapshot: close %s: %w", path, err)
	}

	return nil
}

// ReadFile loads the record sequence persisted at path.
//
// An absent file is not an error: it yields an empty store. A present file
// that fails to parse is fatal.
func ReadFile(fsys fs.FileSystem, path string, c codec.Codec) ([]record.Record, error) {
	if fsys == nil {
		fsys = fs.Default
	}

	f, err := fsys.OpenFile(path, os.O_RDONLY, 0)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("snapshot: open %s: %w", path, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("snapshot: read %s: %w", path, err)
	}

	recs, err := Decode(data, c)
	if err != nil {
		var corrupt *ErrCorruptSnapshot
		if errors.As(err, &corrupt) {
			corrupt.Path = path
		}
		return nil, err
	}
	return recs, nil
}
