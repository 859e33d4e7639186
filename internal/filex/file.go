// Package filex contains small filesystem helpers for the client.
package filex

import (
	"fmt"
	"os"
)

// MaxUploadSize caps how much of an upload candidate the client will
// read into memory.
const MaxUploadSize = 10 << 20

// ReadLimited reads the file at path, refusing directories and anything
// larger than limit bytes.
func ReadLimited(path string, limit int64) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", path)
	}
	if info.Size() > limit {
		return nil, fmt.Errorf("%s exceeds the upload size limit (%d bytes)", path, limit)
	}
	return os.ReadFile(path)
}
