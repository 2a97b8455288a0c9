package tools

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readerCall(t *testing.T, path string) Call {
	t.Helper()
	raw, err := json.Marshal(FileReadArgs{Path: path})
	require.NoError(t, err)
	return Call{MissionID: "m1", Arguments: raw}
}

func TestFileReaderTool_ReadsMarkdownInsideBase(t *testing.T) {
	base := t.TempDir()
	path := filepath.Join(base, "notes.md")
	require.NoError(t, os.WriteFile(path, []byte("# Notes\ncontent"), 0o644))

	tool, err := NewFileReaderTool(base)
	require.NoError(t, err)

	res, err := tool.Execute(context.Background(), readerCall(t, path))
	require.NoError(t, err)
	require.Nil(t, res.Error)
	assert.Equal(t, "# Notes\ncontent", res.Content)
	assert.Equal(t, []string{path}, res.FileInteractions)
}

func TestFileReaderTool_ReadsNestedDirectory(t *testing.T) {
	base := t.TempDir()
	nested := filepath.Join(base, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	path := filepath.Join(nested, "deep.md")
	require.NoError(t, os.WriteFile(path, []byte("deep"), 0o644))

	tool, err := NewFileReaderTool(base)
	require.NoError(t, err)

	res, err := tool.Execute(context.Background(), readerCall(t, path))
	require.NoError(t, err)
	require.Nil(t, res.Error)
	assert.Equal(t, "deep", res.Content)
}

func TestFileReaderTool_RejectsPathOutsideBase(t *testing.T) {
	base := t.TempDir()
	outside := t.TempDir()
	path := filepath.Join(outside, "secret.md")
	require.NoError(t, os.WriteFile(path, []byte("secret"), 0o644))

	tool, err := NewFileReaderTool(base)
	require.NoError(t, err)

	res, err := tool.Execute(context.Background(), readerCall(t, path))
	require.NoError(t, err)
	require.NotNil(t, res.Error)
	assert.Contains(t, res.Error.Message, "outside the allowed directory")
}

func TestFileReaderTool_RejectsTraversal(t *testing.T) {
	base := t.TempDir()
	outside := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(outside, "x.md"), []byte("x"), 0o644))

	tool, err := NewFileReaderTool(base)
	require.NoError(t, err)

	traversal := filepath.Join(base, "..", filepath.Base(outside), "x.md")
	res, err := tool.Execute(context.Background(), readerCall(t, traversal))
	require.NoError(t, err)
	require.NotNil(t, res.Error)
}

func TestFileReaderTool_RejectsUnsupportedExtension(t *testing.T) {
	base := t.TempDir()
	path := filepath.Join(base, "data.txt")
	require.NoError(t, os.WriteFile(path, []byte("text"), 0o644))

	tool, err := NewFileReaderTool(base)
	require.NoError(t, err)

	res, err := tool.Execute(context.Background(), readerCall(t, path))
	require.NoError(t, err)
	require.NotNil(t, res.Error)
	assert.Contains(t, res.Error.Message, "unsupported file extension")
}

func TestFileReaderTool_SymlinkedFileInAllowedDirIsTraversed(t *testing.T) {
	base := t.TempDir()
	outside := t.TempDir()
	target := filepath.Join(outside, "real.md")
	require.NoError(t, os.WriteFile(target, []byte("linked"), 0o644))

	link := filepath.Join(base, "link.md")
	require.NoError(t, os.Symlink(target, link))

	tool, err := NewFileReaderTool(base)
	require.NoError(t, err)

	// The link's containing directory is inside the base, so the read is
	// allowed even though the target lives elsewhere.
	res, err := tool.Execute(context.Background(), readerCall(t, link))
	require.NoError(t, err)
	require.Nil(t, res.Error)
	assert.Equal(t, "linked", res.Content)
}
