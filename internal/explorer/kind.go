package explorer

// Kind identifies a dialog raised from a text file. The set is closed;
// KindNone is the zero value and opens nothing.
type Kind int

const (
	KindNone Kind = iota
	KindAbout
	KindContact
	KindFirstBus
	KindRetailVista
	KindLondonConsultants

	kindCount
)

// Kinds lists every dialog kind in stacking-neutral order.
func Kinds() []Kind {
	out := make([]Kind, 0, kindCount-1)
	for k := KindAbout; k < kindCount; k++ {
		out = append(out, k)
	}
	return out
}

// Valid reports whether k names a dialog.
func (k Kind) Valid() bool {
	return k > KindNone && k < kindCount
}

// IsProject reports whether k is one of the project write-ups.
func (k Kind) IsProject() bool {
	switch k {
	case KindFirstBus, KindRetailVista, KindLondonConsultants:
		return true
	}
	return false
}

// Name is the short display name.
func (k Kind) Name() string {
	switch k {
	case KindAbout:
		return "About"
	case KindContact:
		return "Contact"
	case KindFirstBus:
		return "FirstBus"
	case KindRetailVista:
		return "RetailVista"
	case KindLondonConsultants:
		return "London-Consultants"
	default:
		return ""
	}
}

func (k Kind) String() string {
	if n := k.Name(); n != "" {
		return n
	}
	return "none"
}

// Title is the dialog title bar text.
func (k Kind) Title() string {
	if !k.Valid() {
		return ""
	}
	return k.Name() + " - Notepad"
}

var dialogFiles = map[string]Kind{
	"About.txt":   KindAbout,
	"Contact.txt": KindContact,
	"FirstBus: Easy Transport for Students.txt":                  KindFirstBus,
	"RetailVista - AI Powered Shoplifting Detetction System.txt": KindRetailVista,
	"London-Consultants.txt":                                     KindLondonConsultants,
}

// DialogFor maps an exact file name to its dialog.
func DialogFor(fileName string) (Kind, bool) {
	k, ok := dialogFiles[fileName]
	return k, ok
}

// FileName returns the file that raises k.
func (k Kind) FileName() string {
	for name, kind := range dialogFiles {
		if kind == k {
			return name
		}
	}
	return ""
}
