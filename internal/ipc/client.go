package ipc

import (
	"bufio"
	"encoding/json"
	"fmt"
	"net"
	"time"

	"github.com/1broseidon/xpdesk/internal/runtimepath"
)

// Client handles IPC communication with a running desktop
type Client struct {
	socketPath string
	timeout    time.Duration
}

// NewClient creates a client for the runtime-dir socket
func NewClient() *Client {
	socketPath, err := runtimepath.SocketPath()
	if err != nil {
		// Keep constructor non-failing; sendRequest surfaces connection errors.
		socketPath = ""
	}
	return NewClientAt(socketPath)
}

// NewClientAt creates a client for an explicit socket path
func NewClientAt(socketPath string) *Client {
	return &Client{
		socketPath: socketPath,
		timeout:    5 * time.Second,
	}
}

// sendRequest sends a request and waits for a response
func (c *Client) sendRequest(req *Request) (*Response, error) {
	conn, err := net.DialTimeout("unix", c.socketPath, c.timeout)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to desktop: %w (is xpdesk running?)", err)
	}
	defer conn.Close()

	conn.SetDeadline(time.Now().Add(c.timeout))

	reqData, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	reqData = append(reqData, '\n')
	if _, err := conn.Write(reqData); err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}

	reader := bufio.NewReader(conn)
	respData, err := reader.ReadBytes('\n')
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var resp Response
	if err := json.Unmarshal(respData, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	if resp.Status == "ERROR" {
		return nil, fmt.Errorf("desktop error: %s", resp.Error)
	}

	return &resp, nil
}

func (c *Client) call(cmd CommandType, payload interface{}, out interface{}) error {
	req := &Request{Command: cmd}
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to marshal payload: %w", err)
		}
		req.Payload = data
	}

	resp, err := c.sendRequest(req)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(resp.Data, out); err != nil {
		return fmt.Errorf("failed to parse %s data: %w", cmd, err)
	}
	return nil
}

// Reload asks the desktop to reload its configuration
func (c *Client) Reload() error {
	return c.call(CommandReload, nil, nil)
}

// GetStatus retrieves session status
func (c *Client) GetStatus() (*StatusData, error) {
	var status StatusData
	if err := c.call(CommandGetStatus, nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// ListWindows retrieves the open windows in insertion order
func (c *Client) ListWindows() (*WindowsData, error) {
	var data WindowsData
	if err := c.call(CommandListWindows, nil, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// OpenWindow opens a window by name
func (c *Client) OpenWindow(name string) (*WindowResult, error) {
	var res WindowResult
	if err := c.call(CommandOpenWindow, OpenWindowPayload{Name: name}, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// CloseWindow closes a window by id
func (c *Client) CloseWindow(id string) (*WindowResult, error) {
	var res WindowResult
	if err := c.call(CommandCloseWindow, WindowIDPayload{ID: id}, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// ActivateWindow brings a window to the front
func (c *Client) ActivateWindow(id string) (*WindowResult, error) {
	var res WindowResult
	if err := c.call(CommandActivateWindow, WindowIDPayload{ID: id}, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// MoveWindow moves a window; the desktop clamps the position
func (c *Client) MoveWindow(id string, x, y int) (*WindowResult, error) {
	var res WindowResult
	if err := c.call(CommandMoveWindow, MoveWindowPayload{ID: id, X: x, Y: y}, &res); err != nil {
		return nil, err
	}
	return &res, nil
}
