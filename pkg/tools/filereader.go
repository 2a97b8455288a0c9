package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/scribe-research/scribe/pkg/bus"
)

// FileReadArgs is the file reader's input schema.
type FileReadArgs struct {
	Path string `json:"path" jsonschema_description:"Path to a markdown file under the allowed base directory"`
}

// FileReaderTool reads markdown files whose containing directory lies
// within the allowed base path. Symlinked files are traversed, but the
// link's containing directory is what gets validated.
type FileReaderTool struct {
	basePath string
}

// NewFileReaderTool creates a file reader confined to basePath.
func NewFileReaderTool(basePath string) (*FileReaderTool, error) {
	abs, err := filepath.Abs(basePath)
	if err != nil {
		return nil, fmt.Errorf("resolve base path: %w", err)
	}
	return &FileReaderTool{basePath: abs}, nil
}

// Name implements Tool.
func (t *FileReaderTool) Name() string { return "read_file" }

// Description implements Tool.
func (t *FileReaderTool) Description() string {
	return "Reads a markdown file from the allowed document directory."
}

// InputSchema implements Tool.
func (t *FileReaderTool) InputSchema() any { return schemaFor[FileReadArgs]() }

// Execute implements Tool.
func (t *FileReaderTool) Execute(ctx context.Context, call Call) (*Result, error) {
	var args FileReadArgs
	if err := json.Unmarshal(call.Arguments, &args); err != nil {
		return &Result{Error: &ToolError{Message: fmt.Sprintf("invalid read_file arguments: %v", err)}}, nil
	}
	if args.Path == "" {
		return &Result{Error: &ToolError{Message: "read_file requires a path"}}, nil
	}

	if ext := strings.ToLower(filepath.Ext(args.Path)); ext != ".md" && ext != ".markdown" {
		return &Result{Error: &ToolError{
			Message: fmt.Sprintf("unsupported file extension %q: only markdown files can be read", ext),
		}}, nil
	}

	abs, err := filepath.Abs(args.Path)
	if err != nil {
		return &Result{Error: &ToolError{Message: fmt.Sprintf("invalid path %s: %v", args.Path, err)}}, nil
	}

	if !t.dirAllowed(filepath.Dir(abs)) {
		return &Result{Error: &ToolError{
			Message: fmt.Sprintf("access denied: %s is outside the allowed directory", args.Path),
		}}, nil
	}

	content, err := os.ReadFile(abs)
	if err != nil {
		return &Result{Error: &ToolError{Message: fmt.Sprintf("failed to read %s: %v", args.Path, err)}}, nil
	}

	call.feedback().Emit(ctx, bus.FeedbackFileRead, map[string]any{
		"path":  args.Path,
		"bytes": len(content),
	})

	return &Result{
		Content:          string(content),
		FileInteractions: []string{abs},
	}, nil
}

// dirAllowed reports whether dir is the base path or nested under it.
// The file's containing directory is validated; the file itself may be a
// symlink whose target lives elsewhere.
func (t *FileReaderTool) dirAllowed(dir string) bool {
	rel, err := filepath.Rel(t.basePath, dir)
	if err != nil {
		return false
	}
	return rel == "." || (!strings.HasPrefix(rel, "..") && !filepath.IsAbs(rel))
}
