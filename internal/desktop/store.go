package desktop

import (
	"sync"

	"github.com/1broseidon/xpdesk/internal/geometry"
	"github.com/1broseidon/xpdesk/internal/logging"
)

// Msg is an update applied to the registry through Store.Dispatch.
type Msg interface {
	apply(r *Registry) Result
}

// OpenMsg opens a window with the given name.
type OpenMsg struct {
	Name string
}

// CloseMsg closes a window.
type CloseMsg struct {
	ID string
}

// ActivateMsg brings a window to the front.
type ActivateMsg struct {
	ID string
}

// MoveMsg moves a window.
type MoveMsg struct {
	ID       string
	Position geometry.Point
}

// ResizeMsg reports a new host viewport.
type ResizeMsg struct {
	Viewport geometry.Size
}

// Result reports the outcome of a dispatched message. Changed is false when
// the message named an unknown window.
type Result struct {
	ID      string
	Changed bool
	Moved   []string
}

func (m OpenMsg) apply(r *Registry) Result {
	return Result{ID: r.Open(m.Name), Changed: true}
}

func (m CloseMsg) apply(r *Registry) Result {
	return Result{ID: m.ID, Changed: r.Close(m.ID)}
}

func (m ActivateMsg) apply(r *Registry) Result {
	return Result{ID: m.ID, Changed: r.Activate(m.ID)}
}

func (m MoveMsg) apply(r *Registry) Result {
	return Result{ID: m.ID, Changed: r.UpdatePosition(m.ID, m.Position)}
}

func (m ResizeMsg) apply(r *Registry) Result {
	moved := r.SetViewport(m.Viewport)
	return Result{Changed: true, Moved: moved}
}

// Snapshot is an immutable view of the registry.
type Snapshot struct {
	Windows  []WindowState `json:"windows"`
	ActiveID string        `json:"active_id,omitempty"`
	Viewport geometry.Size `json:"viewport"`
}

// Stack returns windows in paint order: inactive windows in insertion order,
// then the active window on top.
func (s Snapshot) Stack() []WindowState {
	out := make([]WindowState, 0, len(s.Windows))
	var active *WindowState
	for i := range s.Windows {
		if s.Windows[i].IsActive {
			active = &s.Windows[i]
			continue
		}
		out = append(out, s.Windows[i])
	}
	if active != nil {
		out = append(out, *active)
	}
	return out
}

// Find returns the window with the given id.
func (s Snapshot) Find(id string) (WindowState, bool) {
	for _, w := range s.Windows {
		if w.ID == id {
			return w, true
		}
	}
	return WindowState{}, false
}

// Listener is notified after every dispatch.
type Listener func(Msg, Result)

// Store is the single owner of window state. Dispatch is the only mutation
// path; it is safe to call from the UI loop and the IPC server at once.
type Store struct {
	mu        sync.RWMutex
	reg       *Registry
	logger    *logging.Logger
	listeners []Listener
}

// NewStore creates a store for the given viewport. logger may be nil.
func NewStore(viewport geometry.Size, logger *logging.Logger) *Store {
	return &Store{
		reg:    NewRegistry(viewport),
		logger: logger,
	}
}

// Subscribe registers fn to run after each dispatch.
func (s *Store) Subscribe(fn Listener) {
	if fn == nil {
		return
	}
	s.mu.Lock()
	s.listeners = append(s.listeners, fn)
	s.mu.Unlock()
}

// Dispatch applies msg and notifies listeners outside the lock.
func (s *Store) Dispatch(msg Msg) Result {
	if msg == nil {
		return Result{}
	}
	s.mu.Lock()
	res := msg.apply(s.reg)
	var title string
	if w, ok := s.reg.Get(res.ID); ok {
		title = w.Title
	}
	listeners := append([]Listener(nil), s.listeners...)
	s.mu.Unlock()

	s.logDispatch(msg, res, title)
	for _, fn := range listeners {
		fn(msg, res)
	}
	return res
}

func (s *Store) logDispatch(msg Msg, res Result, title string) {
	if s.logger == nil {
		return
	}
	switch m := msg.(type) {
	case OpenMsg:
		s.logger.Log(logging.ActionWindowOpen, res.ID, map[string]interface{}{"title": m.Name})
	case CloseMsg:
		s.logger.Log(logging.ActionWindowClose, m.ID, map[string]interface{}{"found": res.Changed})
	case ActivateMsg:
		s.logger.Log(logging.ActionWindowActivate, m.ID, map[string]interface{}{"found": res.Changed, "title": title})
	case MoveMsg:
		s.logger.Log(logging.ActionWindowMove, m.ID, map[string]interface{}{"x": m.Position.X, "y": m.Position.Y})
	case ResizeMsg:
		s.logger.Log(logging.ActionViewport, "", map[string]interface{}{
			"width":   m.Viewport.Width,
			"height":  m.Viewport.Height,
			"reclamp": len(res.Moved),
		})
	}
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		Windows:  s.reg.Windows(),
		ActiveID: s.reg.ActiveID(),
		Viewport: s.reg.Viewport(),
	}
}

// Window returns a copy of one window.
func (s *Store) Window(id string) (WindowState, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.reg.Get(id)
}

// RenderSize returns the viewport-capped size for a window.
func (s *Store) RenderSize(id string) (geometry.Size, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.reg.RenderSize(id)
}
