package ipc

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/1broseidon/xpdesk/internal/desktop"
	"github.com/1broseidon/xpdesk/internal/geometry"
)

// CommandType represents different IPC command types
type CommandType string

const (
	CommandReload         CommandType = "RELOAD"
	CommandGetStatus      CommandType = "GET_STATUS"
	CommandListWindows    CommandType = "LIST_WINDOWS"
	CommandOpenWindow     CommandType = "OPEN_WINDOW"
	CommandCloseWindow    CommandType = "CLOSE_WINDOW"
	CommandActivateWindow CommandType = "ACTIVATE_WINDOW"
	CommandMoveWindow     CommandType = "MOVE_WINDOW"
)

// Request represents an IPC request from client to server
type Request struct {
	Command CommandType     `json:"command"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Response represents an IPC response from server to client
type Response struct {
	Status string          `json:"status"` // "OK" or "ERROR"
	Data   json.RawMessage `json:"data,omitempty"`
	Error  string          `json:"error,omitempty"`
}

// StatusData represents the data returned by GET_STATUS
type StatusData struct {
	SessionID     string        `json:"session_id"`
	StartedAt     time.Time     `json:"started_at"`
	UptimeSeconds int64         `json:"uptime_seconds"`
	WindowCount   int           `json:"window_count"`
	ActiveID      string        `json:"active_id,omitempty"`
	Viewport      geometry.Size `json:"viewport"`
}

// WindowsData represents the data returned by LIST_WINDOWS
type WindowsData struct {
	Windows  []desktop.WindowState `json:"windows"`
	ActiveID string                `json:"active_id,omitempty"`
}

type OpenWindowPayload struct {
	Name string `json:"name"`
}

type WindowIDPayload struct {
	ID string `json:"id"`
}

type MoveWindowPayload struct {
	ID string `json:"id"`
	X  int    `json:"x"`
	Y  int    `json:"y"`
}

// WindowResult reports the outcome of a window command. Changed is false
// when the id named no open window.
type WindowResult struct {
	ID      string               `json:"id"`
	Changed bool                 `json:"changed"`
	Window  *desktop.WindowState `json:"window,omitempty"`
}

// NewOKResponse creates a successful response with optional data
func NewOKResponse(data interface{}) (*Response, error) {
	var dataBytes json.RawMessage
	if data != nil {
		bytes, err := json.Marshal(data)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal response data: %w", err)
		}
		dataBytes = bytes
	}

	return &Response{
		Status: "OK",
		Data:   dataBytes,
	}, nil
}

// NewErrorResponse creates an error response with a message
func NewErrorResponse(errMsg string) *Response {
	return &Response{
		Status: "ERROR",
		Error:  errMsg,
	}
}

// ParseRequest parses a request from JSON bytes
func ParseRequest(data []byte) (*Request, error) {
	var req Request
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("failed to parse request: %w", err)
	}
	return &req, nil
}

// Marshal converts a response to JSON bytes
func (r *Response) Marshal() ([]byte, error) {
	return json.Marshal(r)
}
