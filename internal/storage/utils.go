package storage

import (
	"github.com/google/uuid"
)

// GenerateFilename generates a fresh storage key preserving the upload's
// extension. The extension is expected to include the leading dot.
func GenerateFilename(extension string) string {
	newUUID := uuid.New().String()
	if extension != "" && extension[0] != '.' {
		return newUUID + "." + extension
	}
	return newUUID + extension
}
