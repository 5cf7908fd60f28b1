package explorer

import (
	"errors"
	"fmt"
)

// EntryKind distinguishes folders from files.
type EntryKind int

const (
	KindFolder EntryKind = iota
	KindFile
)

func (k EntryKind) String() string {
	switch k {
	case KindFolder:
		return "folder"
	case KindFile:
		return "file"
	default:
		return "unknown"
	}
}

// MarshalText encodes the kind by name.
func (k EntryKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Entry is one item in a folder listing.
type Entry struct {
	Name string    `json:"name"`
	Kind EntryKind `json:"kind"`
}

// Asset returns the icon shown for the entry.
func (e Entry) Asset() string {
	if e.Kind == KindFolder {
		return "/icons/folder.png"
	}
	return "/icons/txt.png"
}

var (
	// ErrNotFound is returned for paths outside the table.
	ErrNotFound = errors.New("no such file or folder")
	// ErrNotAFile is returned when a folder is read as a file.
	ErrNotAFile = errors.New("not a file")
)

// WorkFolder is the only subfolder.
const WorkFolder = `C:\Work`

var table = map[string][]Entry{
	Root: {
		{Name: "About.txt", Kind: KindFile},
		{Name: "Contact.txt", Kind: KindFile},
		{Name: "Work", Kind: KindFolder},
	},
	WorkFolder: {
		{Name: "FirstBus: Easy Transport for Students.txt", Kind: KindFile},
		{Name: "RetailVista - AI Powered Shoplifting Detetction System.txt", Kind: KindFile},
		{Name: "London-Consultants.txt", Kind: KindFile},
	},
}

// EntriesAt returns the listing for path, or nil for an unknown path.
func EntriesAt(path string) []Entry {
	entries, ok := table[path]
	if !ok {
		return nil
	}
	return append([]Entry(nil), entries...)
}

// Lookup finds name inside dir.
func Lookup(dir, name string) (Entry, bool) {
	for _, e := range table[dir] {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}

// Open resolves a full file path to the dialog it raises.
func Open(full string) (Kind, error) {
	dir, name := Split(full)
	e, ok := Lookup(dir, name)
	if !ok {
		return KindNone, fmt.Errorf("%s: %w", full, ErrNotFound)
	}
	if e.Kind != KindFile {
		return KindNone, fmt.Errorf("%s: %w", full, ErrNotAFile)
	}
	kind, ok := DialogFor(name)
	if !ok {
		return KindNone, fmt.Errorf("%s: %w", full, ErrNotFound)
	}
	return kind, nil
}
