package filestorage

import "mime/multipart"

// FileStorage defines the interface for stored resume and photo files.
// Stored names are opaque: callers persist them on the profile and never
// derive anything from the original filename.
type FileStorage interface {
	// SaveFile stores an uploaded file under the given subdirectory and
	// returns the opaque stored name.
	SaveFile(fileHeader *multipart.FileHeader, subPath string) (string, error)

	// DeleteFile removes a stored file. Deleting a missing file is not an
	// error.
	DeleteFile(storedName string) error

	// FullPath returns the filesystem path for a stored name.
	FullPath(storedName string) string
}
