// Package explorer is the simulated file system behind the "My Computer"
// window: a fixed path table, folder navigation and the file-to-dialog
// dispatch.
package explorer

import "strings"

// Root is the only drive.
const Root = `C:\`

const (
	separator = `\`
	drive     = "C:"
)

// Join appends folder to path. The root already ends in a separator, so
// folders are appended to it directly.
func Join(path, folder string) string {
	if path == Root {
		return path + folder
	}
	return path + separator + folder
}

// Parent truncates path at its last separator. The root is its own parent,
// and a bare drive is normalized back to the root.
func Parent(path string) string {
	i := strings.LastIndex(path, separator)
	if i <= 0 {
		return path
	}
	parent := path[:i]
	if parent == drive {
		return Root
	}
	return parent
}

// Split separates a full file path into its directory and base name.
func Split(full string) (dir, name string) {
	i := strings.LastIndex(full, separator)
	if i < 0 {
		return Root, full
	}
	dir = full[:i]
	if dir == drive || dir == "" {
		dir = Root
	}
	return dir, full[i+1:]
}

// Normalize accepts forward slashes, a lowercase or missing drive and a
// trailing separator, and returns the canonical form used by the table.
func Normalize(p string) string {
	p = strings.TrimSpace(strings.ReplaceAll(p, "/", separator))
	if p == "" {
		return Root
	}
	if !strings.HasPrefix(strings.ToUpper(p), drive) {
		p = Root + strings.TrimPrefix(p, separator)
	}
	p = drive + p[2:]
	if p == drive {
		return Root
	}
	if p != Root {
		p = strings.TrimSuffix(p, separator)
	}
	return p
}
