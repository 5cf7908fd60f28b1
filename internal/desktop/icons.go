package desktop

import (
	"errors"
	"fmt"

	"github.com/1broseidon/xpdesk/internal/geometry"
)

// PlaceholderAsset is used when a title has no icon of its own.
const PlaceholderAsset = "/placeholder.svg"

// ErrDecorative is returned when a caller asks to open a decorative icon.
var ErrDecorative = errors.New("icon is decorative and cannot be opened")

// Icon is a desktop shortcut.
type Icon struct {
	Name  string `json:"name"`
	Asset string `json:"asset"`
}

// Icons is the desktop catalog in display order.
var Icons = []Icon{
	{Name: "My Documents", Asset: "/icons/my-documents.png"},
	{Name: "My Computer", Asset: "/icons/my-computer.png"},
	{Name: "Internet Explorer", Asset: "/icons/internet-explorer.png"},
	{Name: "Recycle Bin", Asset: "/icons/recycle-bin.png"},
}

var excluded = map[string]bool{
	"Recycle Bin":       true,
	"My Documents":      true,
	"Internet Explorer": true,
}

// Openable reports whether activating the icon opens a window.
func (i Icon) Openable() bool {
	return !excluded[i.Name]
}

// IsExcluded reports whether name is a decorative icon.
func IsExcluded(name string) bool {
	return excluded[name]
}

// CheckOpenable returns ErrDecorative for names that must not open.
func CheckOpenable(name string) error {
	if name == "" {
		return fmt.Errorf("window name is required")
	}
	if IsExcluded(name) {
		return fmt.Errorf("%q: %w", name, ErrDecorative)
	}
	return nil
}

// IconAsset maps a window title to its icon path.
func IconAsset(title string) string {
	for _, icon := range Icons {
		if icon.Name == title {
			return icon.Asset
		}
	}
	return PlaceholderAsset
}

// Icon slot layout in virtual pixels.
var (
	IconOrigin = geometry.Point{X: 10, Y: 20}
	IconSlot   = geometry.Size{Width: 120, Height: 80}
	IconGap    = 20
)

// IconBounds returns the hit rectangle of every catalog icon, in catalog
// order.
func IconBounds() []geometry.Rect {
	return geometry.Column(len(Icons), IconOrigin, IconSlot, IconGap)
}

// IconAt returns the catalog index of the icon under p, or -1.
func IconAt(p geometry.Point) int {
	for i, r := range IconBounds() {
		if r.Contains(p) {
			return i
		}
	}
	return -1
}
