package explorer

import "github.com/1broseidon/xpdesk/internal/logging"

// Navigator is the path state of one explorer window.
type Navigator struct {
	path     string
	selected string
	logger   *logging.Logger
}

// NewNavigator starts at the root. logger may be nil.
func NewNavigator(logger *logging.Logger) *Navigator {
	return &Navigator{path: Root, logger: logger}
}

// Path returns the current path.
func (n *Navigator) Path() string {
	return n.path
}

// Selected returns the highlighted entry name.
func (n *Navigator) Selected() string {
	return n.selected
}

// Entries lists the current folder.
func (n *Navigator) Entries() []Entry {
	return EntriesAt(n.path)
}

// NavigateInto descends into folder.
func (n *Navigator) NavigateInto(folder string) {
	n.setPath(Join(n.path, folder))
}

// NavigateUp moves to the parent folder; it does nothing at the root.
func (n *Navigator) NavigateUp() {
	n.setPath(Parent(n.path))
}

func (n *Navigator) setPath(p string) {
	if p == n.path {
		return
	}
	n.logger.Log(logging.ActionNavigate, p, map[string]interface{}{"from": n.path})
	n.path = p
}

// Select highlights an entry of the current folder. Folders are entered;
// files return the dialog they raise. Names not in the listing are ignored.
func (n *Navigator) Select(name string) (Kind, bool) {
	e, ok := Lookup(n.path, name)
	if !ok {
		return KindNone, false
	}
	n.selected = e.Name
	if e.Kind == KindFolder {
		n.NavigateInto(e.Name)
		return KindNone, false
	}
	return DialogFor(e.Name)
}
