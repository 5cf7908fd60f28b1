package mcp

import (
	"context"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/1broseidon/xpdesk/internal/config"
	"github.com/1broseidon/xpdesk/internal/ipc"
	"github.com/1broseidon/xpdesk/internal/logging"
)

const (
	ServerName    = "xpdesk"
	ServerVersion = "0.1.0"
)

// Session is the part of the IPC client the window tools need.
// *ipc.Client satisfies it.
type Session interface {
	GetStatus() (*ipc.StatusData, error)
	ListWindows() (*ipc.WindowsData, error)
	OpenWindow(name string) (*ipc.WindowResult, error)
	CloseWindow(id string) (*ipc.WindowResult, error)
	ActivateWindow(id string) (*ipc.WindowResult, error)
	MoveWindow(id string, x, y int) (*ipc.WindowResult, error)
}

// Server is the MCP server exposing the desktop to AI clients.
type Server struct {
	mcpServer *mcpsdk.Server
	config    *config.Config
	session   Session
	logger    *logging.Logger
}

// NewServer creates a new MCP server. Window tools go through session;
// explorer tools work without a running desktop.
func NewServer(cfg *config.Config, session Session, logger *logging.Logger) *Server {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if session == nil {
		session = ipc.NewClient()
	}
	s := &Server{
		config:  cfg,
		session: session,
		logger:  logger,
	}

	s.mcpServer = mcpsdk.NewServer(
		&mcpsdk.Implementation{
			Name:    ServerName,
			Version: ServerVersion,
		},
		nil,
	)

	s.registerTools()
	return s
}

// Run starts the MCP server on stdio transport, blocking until done.
func (s *Server) Run(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcpsdk.StdioTransport{})
}

// Close releases server resources.
func (s *Server) Close() error {
	if s == nil || s.logger == nil {
		return nil
	}
	return s.logger.Close()
}

func (s *Server) registerTools() {
	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "get_status",
		Description: "Report the running desktop session: id, uptime, open window count, active window and viewport in virtual pixels.",
	}, s.handleGetStatus)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "list_windows",
		Description: "List open windows in insertion order with their id, title, position, size and whether they are active.",
	}, s.handleListWindows)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "open_window",
		Description: "Open a window by desktop icon name (e.g. \"My Computer\"). Decorative icons (Internet Explorer, Recycle Bin) cannot be opened. The new window becomes active.",
	}, s.handleOpenWindow)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "close_window",
		Description: "Close a window by id. The most recently opened remaining window becomes active. Unknown ids report changed=false.",
	}, s.handleCloseWindow)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "activate_window",
		Description: "Bring a window to the front by id. Unknown ids report changed=false.",
	}, s.handleActivateWindow)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "move_window",
		Description: "Move a window's top-left corner to (x, y) in virtual pixels. The position is clamped so the window stays on screen.",
	}, s.handleMoveWindow)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "list_directory",
		Description: "List a folder of the explorer's virtual drive (default C:\\). Does not need a running desktop.",
	}, s.handleListDirectory)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "read_file",
		Description: "Read a text file from the explorer's virtual drive and return the dialog it opens as markdown plus structured links and screenshots.",
	}, s.handleReadFile)
}
