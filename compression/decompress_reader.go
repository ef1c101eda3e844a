package compression

import (
	"bytes"
	"io"
)

// Decompress decompresses one block of any supported format, selected by its tag byte.
func Decompress(src []byte) ([]byte, error) {
	if len(src) == 0 {
		return nil, ErrEmptyInput
	}

	return decodeBlock(&sliceReader{src: src}, formatAny)
}

// DecompressFrom decompresses one block of any supported format read from r.
func DecompressFrom(r io.ByteReader) ([]byte, error) {
	return decodeBlock(r, formatAny)
}

// BlockSize walks one block of any supported format from r and returns how
// many input bytes it occupies.
func BlockSize(r io.ByteReader) (int, error) {
	return measureBlock(r, formatAny)
}

// DecompressFromReader reads the full stream then calls Decompress. No decoding logic of its own.
// opts may be nil; if opts.MaxInputSize > 0 and more bytes are read, returns ErrInputTooLarge.
func DecompressFromReader(r io.Reader, opts *ReaderOptions) ([]byte, error) {
	if opts == nil {
		opts = DefaultReaderOptions()
	}

	if opts.MaxInputSize > 0 {
		// Read one byte past the limit so an oversized stream is detected
		// without buffering all of it.
		r = io.LimitReader(r, int64(opts.MaxInputSize)+1)
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		return nil, err
	}

	if opts.MaxInputSize > 0 && buf.Len() > opts.MaxInputSize {
		return nil, ErrInputTooLarge
	}

	return Decompress(buf.Bytes())
}
