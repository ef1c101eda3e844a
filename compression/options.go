package compression

// CompressOptions configures LZ compression.
type CompressOptions struct {
	// VRAMSafe disables displacement 1 so the block can be decoded straight
	// into VRAM by the BIOS, which writes 16 bits at a time.
	VRAMSafe bool
}

// DefaultCompressOptions returns options for plain WRAM-safe output (displacements 1..4096).
func DefaultCompressOptions() *CompressOptions {
	return &CompressOptions{}
}

// ReaderOptions configures DecompressFromReader.
type ReaderOptions struct {
	// MaxInputSize limits how many bytes DecompressFromReader may read (0 = no limit).
	MaxInputSize int
}

// DefaultReaderOptions returns options with no input limit.
func DefaultReaderOptions() *ReaderOptions {
	return &ReaderOptions{}
}
