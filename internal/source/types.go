package source

type (
	// FileID uniquely identifies a message within a FileSet.
	FileID uint32
	// FileFlags encodes metadata about how a message was acquired.
	FileFlags uint8
)

const (
	// FileVirtual indicates the message was added from memory (flag, stdin, test).
	FileVirtual FileFlags = 1 << iota
	FileHadBOM
	FileNormalizedCRLF
)

// File captures metadata and content for a single commit message.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	LineIdx []uint32
	Hash    [32]byte
	Flags   FileFlags
}

// LineCol represents a human-readable position in a message.
type LineCol struct {
	Line uint32 // 1-based
	Col  uint32 // 1-based
}
