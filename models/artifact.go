package models

// DownloadedArtifact describes the single externally visible product of a
// successful run: the CSV result written to local storage.
type DownloadedArtifact struct {
	// LocalPath is the path the CSV content was written to.
	LocalPath string
	// ByteSize is the number of bytes written.
	ByteSize int64
}
