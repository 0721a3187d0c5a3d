package ndio

import (
	"encoding/binary"
	"io"
	"os"
	"sort"
	"time"

	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack"

	"github.com/nda-dev/nda/internal/array"
)

const libraryVersion = "0.1.0" // Current nda version

// Writer writes named arrays to a .nda file.
type Writer struct {
	file   *os.File
	closed bool
}

// NewWriter creates a writer for path, truncating any existing file.
func NewWriter(path string) (*Writer, error) {
	//nolint:gosec // G304: file path comes from the caller, which is expected for array saving
	file, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrapf(err, "create %s", path)
	}
	return &Writer{file: file}, nil
}

// Write encodes arrays and metadata into the underlying file.
func (w *Writer) Write(arrays map[string]*array.RawArray, metadata map[string]string) error {
	if w.closed {
		return errors.New("writer is closed")
	}
	return WriteTo(w.file, arrays, metadata)
}

// Close closes the writer and the underlying file.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	return w.file.Close()
}

// Save writes arrays to path in .nda format.
func Save(path string, arrays map[string]*array.RawArray) error {
	w, err := NewWriter(path)
	if err != nil {
		return err
	}
	if err := w.Write(arrays, nil); err != nil {
		_ = w.Close() // Best effort close on error
		return err
	}
	return w.Close()
}

// WriteTo encodes arrays and metadata into out in .nda format. Array data is
// laid out in name order, so the same input always produces the same bytes.
func WriteTo(out io.Writer, arrays map[string]*array.RawArray, metadata map[string]string) error {
	if len(arrays) > MaxArrayCount {
		return errors.Wrapf(ErrTooManyArrays, "got %d, max %d", len(arrays), MaxArrayCount)
	}

	names := make([]string, 0, len(arrays))
	for name := range arrays {
		names = append(names, name)
	}
	sort.Strings(names)

	header := Header{
		FormatVersion:  FormatVersion,
		LibraryVersion: libraryVersion,
		CreatedAt:      time.Now().UTC(),
		Arrays:         make([]ArrayMeta, 0, len(arrays)),
		Metadata:       metadata,
	}
	if header.Metadata == nil {
		header.Metadata = make(map[string]string)
	}

	// Concatenate array data and assign offsets in name order.
	var payload []byte
	var offset int64
	for _, name := range names {
		if err := ValidateArrayName(name); err != nil {
			return err
		}
		raw := arrays[name]
		size := int64(raw.ByteSize())
		header.Arrays = append(header.Arrays, ArrayMeta{
			Name:   name,
			DType:  dtypeToString(raw.DType()),
			Shape:  []int(raw.Shape()),
			Offset: offset,
			Size:   size,
		})
		payload = append(payload, raw.Data()...)
		offset += size
	}

	checksum := ComputeChecksum(payload)

	headerBytes, err := msgpack.Marshal(&header)
	if err != nil {
		return errors.Wrap(err, "marshal header")
	}
	if len(headerBytes) > MaxHeaderSize {
		return errors.Wrapf(ErrHeaderTooLarge, "header is %d bytes, max %d", len(headerBytes), MaxHeaderSize)
	}

	headerSize := uint64(len(headerBytes))
	dataSize := uint64(len(payload))

	fixed := make([]byte, FixedHeaderSize)

	// 0x00-0x03: Magic bytes "NDAR"
	copy(fixed[0:4], MagicBytes)

	// 0x04-0x07: Version
	binary.LittleEndian.PutUint32(fixed[4:8], FormatVersion)

	// 0x08-0x0B: Flags
	flags := uint32(0)
	if len(header.Metadata) > 0 {
		flags |= FlagHasMetadata
	}
	binary.LittleEndian.PutUint32(fixed[8:12], flags)

	// 0x0C-0x0F: Reserved (0)

	// 0x10-0x17: Header size
	binary.LittleEndian.PutUint64(fixed[16:24], headerSize)

	// 0x18-0x1F: Data size
	binary.LittleEndian.PutUint64(fixed[24:32], dataSize)

	// 0x20-0x3F: SHA-256 checksum of the data section
	copy(fixed[ChecksumOffset:ChecksumOffset+ChecksumSize], checksum[:])

	if _, err := out.Write(fixed); err != nil {
		return errors.Wrap(err, "write fixed header")
	}

	if _, err := out.Write(headerBytes); err != nil {
		return errors.Wrap(err, "write header")
	}

	//nolint:gosec // G115: headerSize is bounded by MaxHeaderSize, conversion is safe
	pos := int64(FixedHeaderSize) + int64(headerSize)
	padding := (HeaderAlignment - (pos % HeaderAlignment)) % HeaderAlignment
	if padding > 0 {
		if _, err := out.Write(make([]byte, padding)); err != nil {
			return errors.Wrap(err, "write padding")
		}
	}

	if _, err := out.Write(payload); err != nil {
		return errors.Wrap(err, "write array data")
	}

	return nil
}
