// Package startmenu is the start button's pop-up menu.
package startmenu

import (
	"github.com/1broseidon/xpdesk/internal/desktop"
	"github.com/1broseidon/xpdesk/internal/geometry"
	"github.com/1broseidon/xpdesk/internal/pointer"
)

// Item is a menu entry.
type Item struct {
	Name        string
	Description string
}

// Items are the menu entries in display order. The first ProgramsCount are
// grouped under "Programs".
var Items = []Item{
	{Name: "Internet Explorer", Description: "Connect to the Internet"},
	{Name: "E-mail", Description: "Outlook Express"},
	{Name: "Windows Media Player", Description: "Play digital media"},
	{Name: "Windows Messenger", Description: "Chat with friends online"},
	{Name: "Tour Windows XP", Description: "Take a tour of Windows XP"},
	{Name: "My Documents", Description: "My Documents"},
	{Name: "My Recent Documents", Description: "Access recently opened documents"},
	{Name: "My Pictures", Description: "My Pictures"},
	{Name: "My Music", Description: "My Music"},
	{Name: "My Computer", Description: "View computer contents"},
	{Name: "Control Panel", Description: "Change computer settings"},
	{Name: "Help and Support", Description: "Get help with Windows XP"},
	{Name: "Search", Description: "Search for files or folders"},
	{Name: "Run...", Description: "Run a program"},
}

// ProgramsCount is the size of the "Programs" group.
const ProgramsCount = 6

// Layout in virtual pixels.
const (
	TaskbarHeight = 30
	Width         = 320
	HeaderHeight  = 60
	RowHeight     = 20
	FooterHeight  = 40
	ItemsWidth    = Width * 3 / 5

	itemCount = 14
	// Programs label, every item, and the separator after the programs.
	bodyHeight = RowHeight * (itemCount + 2)
	Height     = HeaderHeight + bodyHeight + FooterHeight
)

// FooterAction is a footer button.
type FooterAction int

const (
	FooterNone FooterAction = iota
	FooterLogOff
	FooterTurnOff
)

func (f FooterAction) String() string {
	switch f {
	case FooterLogOff:
		return "Log Off"
	case FooterTurnOff:
		return "Turn Off Computer"
	default:
		return ""
	}
}

// Menu is the open/closed state of the start menu. While open it listens for
// document clicks and closes itself on any click outside its bounds.
type Menu struct {
	doc      *pointer.Document
	open     bool
	hovered  int
	clickID  pointer.ListenerID
	viewport geometry.Size
}

// New creates a closed menu bound to doc.
func New(doc *pointer.Document) *Menu {
	return &Menu{doc: doc, hovered: -1}
}

// IsOpen reports the open flag.
func (m *Menu) IsOpen() bool {
	return m.open
}

// Toggle handles a click on the start button. The caller must not forward
// that click to the document.
func (m *Menu) Toggle(viewport geometry.Size) {
	if m.open {
		m.Close()
		return
	}
	m.Open(viewport)
}

// Open shows the menu and attaches the outside-click listener.
func (m *Menu) Open(viewport geometry.Size) {
	m.viewport = viewport
	if m.open {
		return
	}
	m.open = true
	m.hovered = -1
	m.clickID = m.doc.AddListener(pointer.EventClick, m.handleClick)
}

// Close hides the menu and detaches its listener.
func (m *Menu) Close() {
	if !m.open {
		return
	}
	m.open = false
	m.hovered = -1
	m.doc.RemoveListener(m.clickID)
	m.clickID = 0
}

// SetViewport re-anchors the menu.
func (m *Menu) SetViewport(viewport geometry.Size) {
	m.viewport = viewport
}

func (m *Menu) handleClick(ev pointer.Event) {
	if !Bounds(m.viewport).Contains(ev.Pos) {
		m.Close()
	}
}

// Hover records the item under the pointer; out-of-range indexes clear it.
func (m *Menu) Hover(index int) {
	if index < 0 || index >= len(Items) {
		m.hovered = -1
		return
	}
	m.hovered = index
}

// Hovered returns the highlighted item.
func (m *Menu) Hovered() (Item, int, bool) {
	if m.hovered < 0 {
		return Item{}, -1, false
	}
	return Items[m.hovered], m.hovered, true
}

// Select activates item index. Items naming an openable desktop window
// return that name and close the menu.
func (m *Menu) Select(index int) (string, bool) {
	if index < 0 || index >= len(Items) {
		return "", false
	}
	name := Items[index].Name
	if name != desktop.ExplorerTitle {
		return "", false
	}
	m.Close()
	return name, true
}

// Footer handles a footer button; both buttons close the menu.
func (m *Menu) Footer(action FooterAction) {
	if action == FooterNone {
		return
	}
	m.Close()
}

// Bounds is the menu rectangle, anchored bottom-left above the taskbar.
func Bounds(viewport geometry.Size) geometry.Rect {
	return geometry.Rect{
		X:      0,
		Y:      max(0, viewport.Height-TaskbarHeight-Height),
		Width:  Width,
		Height: Height,
	}
}

// ItemRect returns the row of item index.
func ItemRect(index int, viewport geometry.Size) geometry.Rect {
	b := Bounds(viewport)
	row := index + 1
	if index >= ProgramsCount {
		row++
	}
	return geometry.Rect{
		X:      b.X,
		Y:      b.Y + HeaderHeight + row*RowHeight,
		Width:  ItemsWidth,
		Height: RowHeight,
	}
}

// ItemAt returns the item index under p, or -1.
func ItemAt(p geometry.Point, viewport geometry.Size) int {
	for i := range Items {
		if ItemRect(i, viewport).Contains(p) {
			return i
		}
	}
	return -1
}

// FooterRect returns the rectangle of a footer button.
func FooterRect(action FooterAction, viewport geometry.Size) geometry.Rect {
	b := Bounds(viewport)
	y := b.Y + b.Height - FooterHeight
	switch action {
	case FooterLogOff:
		return geometry.Rect{X: b.X + 80, Y: y, Width: 100, Height: FooterHeight}
	case FooterTurnOff:
		return geometry.Rect{X: b.X + 190, Y: y, Width: 130, Height: FooterHeight}
	}
	return geometry.Rect{}
}

// FooterAt returns the footer button under p.
func FooterAt(p geometry.Point, viewport geometry.Size) FooterAction {
	for _, a := range []FooterAction{FooterLogOff, FooterTurnOff} {
		if FooterRect(a, viewport).Contains(p) {
			return a
		}
	}
	return FooterNone
}
