package ndio

import (
	"encoding/binary"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack"

	"github.com/nda-dev/nda/internal/array"
)

// ReaderOptions configures reading behavior.
type ReaderOptions struct {
	// SkipChecksumValidation disables the SHA-256 check over the data
	// section. Faster for large files from trusted sources.
	SkipChecksumValidation bool

	// ValidationLevel controls header validation strictness.
	ValidationLevel ValidationLevel
}

// Reader reads named arrays from a .nda file.
type Reader struct {
	file       *os.File
	header     Header
	version    uint32
	flags      uint32
	dataOffset int64
	dataSize   int64
	checksum   [32]byte
	opts       ReaderOptions
	closed     bool
}

// NewReader opens a .nda file with strict validation and checksum checking.
func NewReader(path string) (*Reader, error) {
	return NewReaderWithOptions(path, ReaderOptions{ValidationLevel: ValidationStrict})
}

// NewReaderWithOptions opens a .nda file with the given options.
func NewReaderWithOptions(path string, opts ReaderOptions) (*Reader, error) {
	//nolint:gosec // G304: file path comes from the caller, which is expected for array loading
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}

	r := &Reader{file: file, opts: opts}
	if err := r.parseHeader(); err != nil {
		_ = file.Close() // Best effort close on error
		return nil, err
	}

	if !opts.SkipChecksumValidation {
		if err := r.validateChecksum(); err != nil {
			_ = file.Close()
			return nil, err
		}
	}

	return r, nil
}

func (r *Reader) parseHeader() error {
	fixed := make([]byte, FixedHeaderSize)
	if _, err := io.ReadFull(r.file, fixed); err != nil {
		return errors.Wrap(err, "read fixed header")
	}

	if string(fixed[0:4]) != MagicBytes {
		return errors.Wrapf(ErrInvalidMagic, "got %q, want %q", fixed[0:4], MagicBytes)
	}

	r.version = binary.LittleEndian.Uint32(fixed[4:8])
	if r.version != FormatVersion {
		return errors.Wrapf(ErrUnsupportedVersion, "got %d, want %d", r.version, FormatVersion)
	}

	r.flags = binary.LittleEndian.Uint32(fixed[8:12])
	if r.flags&FlagCompressed != 0 {
		return ErrCompressedPayload
	}

	headerSize := binary.LittleEndian.Uint64(fixed[16:24])
	if headerSize > MaxHeaderSize {
		return errors.Wrapf(ErrHeaderTooLarge, "header is %d bytes, max %d", headerSize, MaxHeaderSize)
	}

	copy(r.checksum[:], fixed[ChecksumOffset:ChecksumOffset+ChecksumSize])

	headerBytes := make([]byte, headerSize)
	if _, err := io.ReadFull(r.file, headerBytes); err != nil {
		return errors.Wrap(err, "read header")
	}

	if err := msgpack.Unmarshal(headerBytes, &r.header); err != nil {
		return errors.Wrap(err, "decode header")
	}

	//nolint:gosec // G115: headerSize is bounded by MaxHeaderSize, conversion is safe
	pos := int64(FixedHeaderSize) + int64(headerSize)
	r.dataOffset = pos + (HeaderAlignment-(pos%HeaderAlignment))%HeaderAlignment
	//nolint:gosec // G115: negative after conversion means the header lied, caught below
	r.dataSize = int64(binary.LittleEndian.Uint64(fixed[24:32]))

	info, err := r.file.Stat()
	if err != nil {
		return errors.Wrap(err, "stat file")
	}
	if r.dataSize < 0 || r.dataOffset+r.dataSize > info.Size() {
		return errors.Wrapf(ErrOutOfBounds, "data section [%d-%d] exceeds file size %d",
			r.dataOffset, r.dataOffset+r.dataSize, info.Size())
	}

	return ValidateHeader(&r.header, r.dataSize, r.opts.ValidationLevel)
}

// validateChecksum hashes the data section and compares against the checksum
// stored in the fixed header.
func (r *Reader) validateChecksum() error {
	if _, err := r.file.Seek(r.dataOffset, io.SeekStart); err != nil {
		return errors.Wrap(err, "seek to data section")
	}

	computed, err := ComputeChecksumReader(io.LimitReader(r.file, r.dataSize))
	if err != nil {
		return errors.Wrap(err, "read data section")
	}

	return ValidateChecksum(computed, r.checksum)
}

// Header returns the decoded file header.
func (r *Reader) Header() Header {
	return r.header
}

// Metadata returns the metadata map from the header.
func (r *Reader) Metadata() map[string]string {
	return r.header.Metadata
}

// ArrayNames returns the names of all arrays in the file, in file order.
func (r *Reader) ArrayNames() []string {
	names := make([]string, len(r.header.Arrays))
	for i, meta := range r.header.Arrays {
		names[i] = meta.Name
	}
	return names
}

// ArrayInfo returns the metadata for a named array.
func (r *Reader) ArrayInfo(name string) (*ArrayMeta, error) {
	for _, meta := range r.header.Arrays {
		if meta.Name == name {
			return &meta, nil
		}
	}
	return nil, errors.Errorf("array %q not found", name)
}

// ReadArrayData reads the raw bytes of a named array.
func (r *Reader) ReadArrayData(name string) ([]byte, error) {
	if r.closed {
		return nil, errors.New("reader is closed")
	}

	meta, err := r.ArrayInfo(name)
	if err != nil {
		return nil, err
	}

	if _, err := r.file.Seek(r.dataOffset+meta.Offset, io.SeekStart); err != nil {
		return nil, errors.Wrapf(err, "seek to array %q", name)
	}

	data := make([]byte, meta.Size)
	if _, err := io.ReadFull(r.file, data); err != nil {
		return nil, errors.Wrapf(err, "read array %q", name)
	}

	return data, nil
}

// LoadArray reads a named array into host memory on the CPU device.
func (r *Reader) LoadArray(name string) (*array.RawArray, error) {
	if r.closed {
		return nil, errors.New("reader is closed")
	}

	meta, err := r.ArrayInfo(name)
	if err != nil {
		return nil, err
	}

	data, err := r.ReadArrayData(name)
	if err != nil {
		return nil, err
	}

	return rawFromMeta(*meta, data)
}

// ReadAll loads every array in the file.
func (r *Reader) ReadAll() (map[string]*array.RawArray, error) {
	if r.closed {
		return nil, errors.New("reader is closed")
	}

	arrays := make(map[string]*array.RawArray, len(r.header.Arrays))
	for _, meta := range r.header.Arrays {
		raw, err := r.LoadArray(meta.Name)
		if err != nil {
			releaseAll(arrays)
			return nil, err
		}
		arrays[meta.Name] = raw
	}

	return arrays, nil
}

// Close closes the reader and the underlying file.
func (r *Reader) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	return r.file.Close()
}

// Load reads every array from a .nda file with strict validation.
func Load(path string) (map[string]*array.RawArray, error) {
	r, err := NewReader(path)
	if err != nil {
		return nil, err
	}

	arrays, err := r.ReadAll()
	if err != nil {
		_ = r.Close() // Best effort close on error
		return nil, err
	}

	return arrays, r.Close()
}

// ReadFrom decodes a .nda stream. The whole data section is buffered and the
// checksum is always verified.
func ReadFrom(in io.Reader) (map[string]*array.RawArray, Header, error) {
	fixed := make([]byte, FixedHeaderSize)
	if _, err := io.ReadFull(in, fixed); err != nil {
		return nil, Header{}, errors.Wrap(err, "read fixed header")
	}

	if string(fixed[0:4]) != MagicBytes {
		return nil, Header{}, errors.Wrapf(ErrInvalidMagic, "got %q, want %q", fixed[0:4], MagicBytes)
	}

	version := binary.LittleEndian.Uint32(fixed[4:8])
	if version != FormatVersion {
		return nil, Header{}, errors.Wrapf(ErrUnsupportedVersion, "got %d, want %d", version, FormatVersion)
	}

	flags := binary.LittleEndian.Uint32(fixed[8:12])
	if flags&FlagCompressed != 0 {
		return nil, Header{}, ErrCompressedPayload
	}

	headerSize := binary.LittleEndian.Uint64(fixed[16:24])
	if headerSize > MaxHeaderSize {
		return nil, Header{}, errors.Wrapf(ErrHeaderTooLarge, "header is %d bytes, max %d", headerSize, MaxHeaderSize)
	}

	//nolint:gosec // G115: negative after conversion means the header lied, caught below
	dataSize := int64(binary.LittleEndian.Uint64(fixed[24:32]))
	if dataSize < 0 {
		return nil, Header{}, errors.Wrap(ErrOutOfBounds, "data size overflows int64")
	}

	var checksum [32]byte
	copy(checksum[:], fixed[ChecksumOffset:ChecksumOffset+ChecksumSize])

	headerBytes := make([]byte, headerSize)
	if _, err := io.ReadFull(in, headerBytes); err != nil {
		return nil, Header{}, errors.Wrap(err, "read header")
	}

	var header Header
	if err := msgpack.Unmarshal(headerBytes, &header); err != nil {
		return nil, Header{}, errors.Wrap(err, "decode header")
	}

	//nolint:gosec // G115: headerSize is bounded by MaxHeaderSize, conversion is safe
	pos := int64(FixedHeaderSize) + int64(headerSize)
	if padding := (HeaderAlignment - (pos % HeaderAlignment)) % HeaderAlignment; padding > 0 {
		if _, err := io.CopyN(io.Discard, in, padding); err != nil {
			return nil, Header{}, errors.Wrap(err, "skip padding")
		}
	}

	if err := ValidateHeader(&header, dataSize, ValidationStrict); err != nil {
		return nil, Header{}, err
	}

	payload := make([]byte, dataSize)
	if _, err := io.ReadFull(in, payload); err != nil {
		return nil, Header{}, errors.Wrap(err, "read data section")
	}

	if err := ValidateChecksum(ComputeChecksum(payload), checksum); err != nil {
		return nil, Header{}, err
	}

	arrays := make(map[string]*array.RawArray, len(header.Arrays))
	for _, meta := range header.Arrays {
		raw, err := rawFromMeta(meta, payload[meta.Offset:meta.Offset+meta.Size])
		if err != nil {
			releaseAll(arrays)
			return nil, Header{}, err
		}
		arrays[meta.Name] = raw
	}

	return arrays, header, nil
}

// rawFromMeta builds a host RawArray from metadata and its payload bytes.
func rawFromMeta(meta ArrayMeta, data []byte) (*array.RawArray, error) {
	dtype, ok := stringToDtype(meta.DType)
	if !ok {
		return nil, errors.Errorf("array %q: unsupported dtype %q", meta.Name, meta.DType)
	}

	shape := array.Shape(meta.Shape)
	if err := shape.Validate(); err != nil {
		return nil, errors.Wrapf(err, "array %q", meta.Name)
	}

	if want := int64(shape.NumElements() * dtype.Size()); want != meta.Size {
		return nil, errors.Errorf("array %q: size %d does not match shape %v of %s (want %d bytes)",
			meta.Name, meta.Size, meta.Shape, meta.DType, want)
	}

	raw, err := array.NewRaw(shape, dtype, array.CPU)
	if err != nil {
		return nil, errors.Wrapf(err, "array %q", meta.Name)
	}
	copy(raw.Data(), data)

	return raw, nil
}

func releaseAll(arrays map[string]*array.RawArray) {
	for _, raw := range arrays {
		raw.Release()
	}
}
