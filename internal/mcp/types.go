package mcp

import (
	"github.com/1broseidon/xpdesk/internal/desktop"
	"github.com/1broseidon/xpdesk/internal/explorer"
	"github.com/1broseidon/xpdesk/internal/geometry"
)

// GetStatusInput is the input for the get_status tool.
type GetStatusInput struct{}

// GetStatusOutput is the output for the get_status tool.
type GetStatusOutput struct {
	SessionID     string        `json:"session_id"`
	UptimeSeconds int64         `json:"uptime_seconds"`
	WindowCount   int           `json:"window_count"`
	ActiveID      string        `json:"active_id,omitempty"`
	Viewport      geometry.Size `json:"viewport"`
}

// ListWindowsInput is the input for the list_windows tool.
type ListWindowsInput struct{}

// ListWindowsOutput is the output for the list_windows tool.
type ListWindowsOutput struct {
	Windows  []desktop.WindowState `json:"windows"`
	ActiveID string                `json:"active_id,omitempty"`
}

// OpenWindowInput is the input for the open_window tool.
type OpenWindowInput struct {
	Name string `json:"name" jsonschema:"required,Desktop icon name, e.g. My Computer or My Documents"`
}

// WindowIDInput is the input for close_window and activate_window.
type WindowIDInput struct {
	ID string `json:"id" jsonschema:"required,Window id as returned by list_windows or open_window"`
}

// MoveWindowInput is the input for the move_window tool.
type MoveWindowInput struct {
	ID string `json:"id" jsonschema:"required,Window id"`
	X  int    `json:"x" jsonschema:"required,Left edge in virtual pixels"`
	Y  int    `json:"y" jsonschema:"required,Top edge in virtual pixels"`
}

// WindowOutput is the output for the window mutation tools.
type WindowOutput struct {
	ID      string               `json:"id"`
	Changed bool                 `json:"changed"`
	Window  *desktop.WindowState `json:"window,omitempty"`
}

// ListDirectoryInput is the input for the list_directory tool.
type ListDirectoryInput struct {
	Path string `json:"path,omitempty" jsonschema:"Folder path (default: C:\\)"`
}

// DirectoryEntry describes one item in a folder listing.
type DirectoryEntry struct {
	Name     string `json:"name"`
	Kind     string `json:"kind"`
	FullPath string `json:"full_path"`
	Dialog   string `json:"dialog,omitempty"`
}

// ListDirectoryOutput is the output for the list_directory tool.
type ListDirectoryOutput struct {
	Path    string           `json:"path"`
	Parent  string           `json:"parent"`
	Entries []DirectoryEntry `json:"entries"`
}

// ReadFileInput is the input for the read_file tool.
type ReadFileInput struct {
	Path string `json:"path" jsonschema:"required,Full file path, e.g. C:\\About.txt"`
}

// ReadFileOutput is the output for the read_file tool.
type ReadFileOutput struct {
	Path     string           `json:"path"`
	Title    string           `json:"title"`
	Width    int              `json:"width"`
	Markdown string           `json:"markdown"`
	Content  explorer.Content `json:"content"`
}
