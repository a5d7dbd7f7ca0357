package compression

import "strings"

// satu-satunya error yang dikenali: file sumber tidak ada
type MissingFilesError struct {
	Paths []string
}

func (e *MissingFilesError) Error() string {
	return "Missing files: " + strings.Join(e.Paths, ", ")
}
