package mcp

import (
	"context"
	"fmt"
	"strings"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/1broseidon/xpdesk/internal/desktop"
	"github.com/1broseidon/xpdesk/internal/dialog"
	"github.com/1broseidon/xpdesk/internal/explorer"
	"github.com/1broseidon/xpdesk/internal/ipc"
	"github.com/1broseidon/xpdesk/internal/logging"
)

func (s *Server) logTool(tool, subject string, details map[string]interface{}) {
	if s.logger == nil {
		return
	}
	if details == nil {
		details = map[string]interface{}{}
	}
	details["tool"] = tool
	s.logger.Log(logging.ActionIPC, subject, details)
}

func (s *Server) handleGetStatus(_ context.Context, _ *mcpsdk.CallToolRequest, _ GetStatusInput) (*mcpsdk.CallToolResult, GetStatusOutput, error) {
	status, err := s.session.GetStatus()
	if err != nil {
		return nil, GetStatusOutput{}, err
	}
	s.logTool("get_status", status.SessionID, nil)
	return nil, GetStatusOutput{
		SessionID:     status.SessionID,
		UptimeSeconds: status.UptimeSeconds,
		WindowCount:   status.WindowCount,
		ActiveID:      status.ActiveID,
		Viewport:      status.Viewport,
	}, nil
}

func (s *Server) handleListWindows(_ context.Context, _ *mcpsdk.CallToolRequest, _ ListWindowsInput) (*mcpsdk.CallToolResult, ListWindowsOutput, error) {
	data, err := s.session.ListWindows()
	if err != nil {
		return nil, ListWindowsOutput{}, err
	}
	windows := data.Windows
	if windows == nil {
		windows = []desktop.WindowState{}
	}
	s.logTool("list_windows", "", map[string]interface{}{"count": len(windows)})
	return nil, ListWindowsOutput{Windows: windows, ActiveID: data.ActiveID}, nil
}

func (s *Server) handleOpenWindow(_ context.Context, _ *mcpsdk.CallToolRequest, args OpenWindowInput) (*mcpsdk.CallToolResult, WindowOutput, error) {
	name := strings.TrimSpace(args.Name)
	// Checked locally as well so a decorative icon fails without a session.
	if err := desktop.CheckOpenable(name); err != nil {
		return nil, WindowOutput{}, err
	}
	res, err := s.session.OpenWindow(name)
	if err != nil {
		return nil, WindowOutput{}, err
	}
	s.logTool("open_window", res.ID, map[string]interface{}{"title": name})
	return nil, windowOutput(res), nil
}

func (s *Server) handleCloseWindow(_ context.Context, _ *mcpsdk.CallToolRequest, args WindowIDInput) (*mcpsdk.CallToolResult, WindowOutput, error) {
	if args.ID == "" {
		return nil, WindowOutput{}, fmt.Errorf("id is required")
	}
	res, err := s.session.CloseWindow(args.ID)
	if err != nil {
		return nil, WindowOutput{}, err
	}
	s.logTool("close_window", args.ID, map[string]interface{}{"changed": res.Changed})
	return nil, windowOutput(res), nil
}

func (s *Server) handleActivateWindow(_ context.Context, _ *mcpsdk.CallToolRequest, args WindowIDInput) (*mcpsdk.CallToolResult, WindowOutput, error) {
	if args.ID == "" {
		return nil, WindowOutput{}, fmt.Errorf("id is required")
	}
	res, err := s.session.ActivateWindow(args.ID)
	if err != nil {
		return nil, WindowOutput{}, err
	}
	s.logTool("activate_window", args.ID, map[string]interface{}{"changed": res.Changed})
	return nil, windowOutput(res), nil
}

func (s *Server) handleMoveWindow(_ context.Context, _ *mcpsdk.CallToolRequest, args MoveWindowInput) (*mcpsdk.CallToolResult, WindowOutput, error) {
	if args.ID == "" {
		return nil, WindowOutput{}, fmt.Errorf("id is required")
	}
	res, err := s.session.MoveWindow(args.ID, args.X, args.Y)
	if err != nil {
		return nil, WindowOutput{}, err
	}
	s.logTool("move_window", args.ID, map[string]interface{}{"x": args.X, "y": args.Y, "changed": res.Changed})
	return nil, windowOutput(res), nil
}

func windowOutput(res *ipc.WindowResult) WindowOutput {
	return WindowOutput{ID: res.ID, Changed: res.Changed, Window: res.Window}
}

func (s *Server) handleListDirectory(_ context.Context, _ *mcpsdk.CallToolRequest, args ListDirectoryInput) (*mcpsdk.CallToolResult, ListDirectoryOutput, error) {
	path := explorer.Normalize(args.Path)
	entries := explorer.EntriesAt(path)
	if entries == nil {
		return nil, ListDirectoryOutput{}, fmt.Errorf("%s: %w", path, explorer.ErrNotFound)
	}

	out := ListDirectoryOutput{
		Path:    path,
		Parent:  explorer.Parent(path),
		Entries: make([]DirectoryEntry, 0, len(entries)),
	}
	for _, e := range entries {
		item := DirectoryEntry{
			Name:     e.Name,
			Kind:     e.Kind.String(),
			FullPath: explorer.Join(path, e.Name),
		}
		if k, ok := explorer.DialogFor(e.Name); ok && e.Kind == explorer.KindFile {
			item.Dialog = k.Title()
		}
		out.Entries = append(out.Entries, item)
	}
	s.logTool("list_directory", path, map[string]interface{}{"count": len(out.Entries)})
	return nil, out, nil
}

func (s *Server) handleReadFile(_ context.Context, _ *mcpsdk.CallToolRequest, args ReadFileInput) (*mcpsdk.CallToolResult, ReadFileOutput, error) {
	if strings.TrimSpace(args.Path) == "" {
		return nil, ReadFileOutput{}, fmt.Errorf("path is required")
	}
	path := explorer.Normalize(args.Path)
	kind, err := explorer.Open(path)
	if err != nil {
		return nil, ReadFileOutput{}, err
	}

	content := explorer.ContentFor(kind, s.config.OwnerInfo())
	s.logTool("read_file", path, map[string]interface{}{"dialog": kind.String()})
	return nil, ReadFileOutput{
		Path:     path,
		Title:    kind.Title(),
		Width:    dialog.Width(kind, s.config.HeadlessViewport()),
		Markdown: content.Markdown(),
		Content:  content,
	}, nil
}
