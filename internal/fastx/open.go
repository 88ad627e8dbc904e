// internal/fastx/open.go
package fastx

import (
	"io"
	"os"
)

// Open resolves a CLI path argument to a readable source.
// "-" means stdin; the returned closer then leaves os.Stdin open.
func Open(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(path)
}
