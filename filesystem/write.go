// Package filesystem provides helpers for staging files in billy filesystems.
package filesystem

import (
	"io"
	"strings"

	billy "gopkg.in/src-d/go-billy.v4"
)

// WriteFile creates (or truncates) the named file in fs with the given content
func WriteFile(fs billy.Filesystem, name, content string) error {
	f, err := fs.Create(name)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = io.Copy(f, strings.NewReader(content))
	return err
}
