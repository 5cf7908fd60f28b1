package ipc

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net"
	"os"
	"sync"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"github.com/1broseidon/xpdesk/internal/desktop"
	"github.com/1broseidon/xpdesk/internal/geometry"
	"github.com/1broseidon/xpdesk/internal/logging"
	"github.com/1broseidon/xpdesk/internal/runtimepath"
)

// ErrSessionRunning is returned by Start when another desktop holds the
// session lock.
var ErrSessionRunning = errors.New("another xpdesk session is already serving IPC")

// Desktop is the window state the server controls.
type Desktop interface {
	Dispatch(desktop.Msg) desktop.Result
	Snapshot() desktop.Snapshot
}

// Server handles IPC requests from clients
type Server struct {
	socketPath   string
	lock         *flock.Flock
	listener     net.Listener
	desk         Desktop
	reload       func() error
	logger       *logging.Logger
	sessionID    string
	startTime    time.Time
	shuttingDown bool
	shutdownMu   sync.Mutex
}

// NewServer creates a server on the runtime-dir socket. reload may be nil.
func NewServer(desk Desktop, reload func() error, logger *logging.Logger) (*Server, error) {
	socketPath, err := runtimepath.SocketPath()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve IPC socket path: %w", err)
	}
	lockPath, err := runtimepath.LockPath()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve session lock path: %w", err)
	}
	return NewServerAt(socketPath, lockPath, desk, reload, logger), nil
}

// NewServerAt creates a server on explicit socket and lock paths.
func NewServerAt(socketPath, lockPath string, desk Desktop, reload func() error, logger *logging.Logger) *Server {
	return &Server{
		socketPath: socketPath,
		lock:       flock.New(lockPath),
		desk:       desk,
		reload:     reload,
		logger:     logger,
		sessionID:  uuid.NewString(),
		startTime:  time.Now(),
	}
}

// SessionID identifies this desktop session.
func (s *Server) SessionID() string {
	return s.sessionID
}

// SocketPath returns the socket the server listens on.
func (s *Server) SocketPath() string {
	return s.socketPath
}

// Start takes the session lock and begins listening for IPC connections
func (s *Server) Start() error {
	locked, err := s.lock.TryLock()
	if err != nil {
		return fmt.Errorf("failed to acquire session lock: %w", err)
	}
	if !locked {
		return ErrSessionRunning
	}

	// The lock is ours, so any socket file left behind is stale.
	os.Remove(s.socketPath)

	listener, err := net.Listen("unix", s.socketPath)
	if err != nil {
		s.lock.Unlock()
		return fmt.Errorf("failed to create IPC socket: %w", err)
	}
	s.listener = listener

	if err := os.Chmod(s.socketPath, 0600); err != nil {
		listener.Close()
		s.lock.Unlock()
		return fmt.Errorf("failed to set socket permissions: %w", err)
	}

	log.Printf("IPC server listening on %s (session %s)", s.socketPath, s.sessionID)

	go s.acceptLoop()

	return nil
}

// acceptLoop accepts incoming connections
func (s *Server) acceptLoop() {
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			s.shutdownMu.Lock()
			if s.shuttingDown {
				s.shutdownMu.Unlock()
				return
			}
			s.shutdownMu.Unlock()
			log.Printf("IPC accept error: %v", err)
			continue
		}

		go s.handleConnection(conn)
	}
}

// handleConnection handles a single IPC connection
func (s *Server) handleConnection(conn net.Conn) {
	defer conn.Close()

	reader := bufio.NewReader(conn)

	data, err := reader.ReadBytes('\n')
	if err != nil && err != io.EOF {
		log.Printf("IPC read error: %v", err)
		return
	}

	req, err := ParseRequest(data)
	if err != nil {
		s.sendError(conn, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	resp := s.handleCommand(req)

	respData, err := resp.Marshal()
	if err != nil {
		log.Printf("Failed to marshal response: %v", err)
		return
	}

	respData = append(respData, '\n')
	if _, err := conn.Write(respData); err != nil {
		log.Printf("Failed to send response: %v", err)
	}
}

// handleCommand processes an IPC command and returns a response
func (s *Server) handleCommand(req *Request) *Response {
	s.logger.Log(logging.ActionIPC, string(req.Command), nil)

	switch req.Command {
	case CommandReload:
		return s.handleReload()
	case CommandGetStatus:
		return s.handleGetStatus()
	case CommandListWindows:
		return s.handleListWindows()
	case CommandOpenWindow:
		return s.handleOpenWindow(req.Payload)
	case CommandCloseWindow:
		return s.handleWindowID(req.Payload, func(id string) desktop.Msg { return desktop.CloseMsg{ID: id} })
	case CommandActivateWindow:
		return s.handleWindowID(req.Payload, func(id string) desktop.Msg { return desktop.ActivateMsg{ID: id} })
	case CommandMoveWindow:
		return s.handleMoveWindow(req.Payload)
	default:
		return NewErrorResponse(fmt.Sprintf("Unknown command: %s", req.Command))
	}
}

// handleReload reloads the configuration
func (s *Server) handleReload() *Response {
	log.Println("IPC: Received RELOAD command")

	if s.reload != nil {
		if err := s.reload(); err != nil {
			return NewErrorResponse(fmt.Sprintf("Failed to reload config: %v", err))
		}
	}

	resp, _ := NewOKResponse(nil)
	return resp
}

// handleGetStatus returns current session status
func (s *Server) handleGetStatus() *Response {
	snap := s.desk.Snapshot()
	status := StatusData{
		SessionID:     s.sessionID,
		StartedAt:     s.startTime,
		UptimeSeconds: int64(time.Since(s.startTime).Seconds()),
		WindowCount:   len(snap.Windows),
		ActiveID:      snap.ActiveID,
		Viewport:      snap.Viewport,
	}

	resp, _ := NewOKResponse(status)
	return resp
}

func (s *Server) handleListWindows() *Response {
	snap := s.desk.Snapshot()
	resp, _ := NewOKResponse(WindowsData{Windows: snap.Windows, ActiveID: snap.ActiveID})
	return resp
}

func (s *Server) handleOpenWindow(payload json.RawMessage) *Response {
	var req OpenWindowPayload
	if err := json.Unmarshal(payload, &req); err != nil {
		return NewErrorResponse(fmt.Sprintf("Invalid open payload: %v", err))
	}
	if err := desktop.CheckOpenable(req.Name); err != nil {
		return NewErrorResponse(err.Error())
	}
	return s.windowResponse(s.desk.Dispatch(desktop.OpenMsg{Name: req.Name}))
}

func (s *Server) handleWindowID(payload json.RawMessage, msg func(string) desktop.Msg) *Response {
	var req WindowIDPayload
	if err := json.Unmarshal(payload, &req); err != nil {
		return NewErrorResponse(fmt.Sprintf("Invalid window payload: %v", err))
	}
	if req.ID == "" {
		return NewErrorResponse("id is required")
	}
	return s.windowResponse(s.desk.Dispatch(msg(req.ID)))
}

func (s *Server) handleMoveWindow(payload json.RawMessage) *Response {
	var req MoveWindowPayload
	if err := json.Unmarshal(payload, &req); err != nil {
		return NewErrorResponse(fmt.Sprintf("Invalid move payload: %v", err))
	}
	if req.ID == "" {
		return NewErrorResponse("id is required")
	}
	res := s.desk.Dispatch(desktop.MoveMsg{ID: req.ID, Position: geometry.Point{X: req.X, Y: req.Y}})
	return s.windowResponse(res)
}

func (s *Server) windowResponse(res desktop.Result) *Response {
	out := WindowResult{ID: res.ID, Changed: res.Changed}
	if w, ok := s.desk.Snapshot().Find(res.ID); ok {
		out.Window = &w
	}
	resp, err := NewOKResponse(out)
	if err != nil {
		return NewErrorResponse(err.Error())
	}
	return resp
}

// sendError sends an error response
func (s *Server) sendError(conn net.Conn, errMsg string) {
	resp := NewErrorResponse(errMsg)
	data, _ := resp.Marshal()
	data = append(data, '\n')
	conn.Write(data)
}

// Stop gracefully shuts down the IPC server and releases the session lock
func (s *Server) Stop() {
	s.shutdownMu.Lock()
	s.shuttingDown = true
	s.shutdownMu.Unlock()

	if s.listener != nil {
		s.listener.Close()
		os.Remove(s.socketPath)
	}
	s.lock.Unlock()
}
