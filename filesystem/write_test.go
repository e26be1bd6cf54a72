package filesystem

import (
	"io/ioutil"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/src-d/go-billy.v4/memfs"
)

func TestWriteFile(t *testing.T) {
	fs := memfs.New()

	require.NoError(t, WriteFile(fs, "index.html", "<!DOCTYPE html>"))

	f, err := fs.Open("index.html")
	require.NoError(t, err)
	defer f.Close()
	content, err := ioutil.ReadAll(f)
	require.NoError(t, err)
	assert.Equal(t, "<!DOCTYPE html>", string(content))
}

func TestWriteFileTruncatesExisting(t *testing.T) {
	fs := memfs.New()

	require.NoError(t, WriteFile(fs, "README.md", "first version with some length"))
	require.NoError(t, WriteFile(fs, "README.md", "v2"))

	f, err := fs.Open("README.md")
	require.NoError(t, err)
	defer f.Close()
	content, err := ioutil.ReadAll(f)
	require.NoError(t, err)
	assert.Equal(t, "v2", string(content))
}
