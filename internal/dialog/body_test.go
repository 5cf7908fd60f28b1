package dialog

import (
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/1broseidon/xpdesk/internal/explorer"
)

func plain(b Body) string {
	return ansi.Strip(strings.Join(b.Lines, "\n"))
}

func TestRenderer_ProjectBody(t *testing.T) {
	r := NewRenderer("notty", explorer.Owner{})
	b := r.Render(explorer.KindFirstBus, 58)

	text := plain(b)
	for _, want := range []string{"FirstBus", "Flutter", "Tech Used"} {
		if !strings.Contains(text, want) {
			t.Errorf("body missing %q:\n%s", want, text)
		}
	}
	if w := b.Width(); w > 58 {
		t.Fatalf("body width %d exceeds 58", w)
	}

	var links, images int
	for i := range b.Lines {
		if a, ok := b.ActionAt(i); ok {
			switch a.Kind {
			case ActionLink:
				links++
			case ActionImage:
				images++
				if !strings.Contains(ansi.Strip(b.Lines[i]), a.Image.Alt) {
					t.Errorf("line %d %q does not show %q", i, b.Lines[i], a.Image.Alt)
				}
			}
		}
	}
	if links != 1 || images != 4 {
		t.Fatalf("links=%d images=%d", links, images)
	}
}

func TestRenderer_ContactHasQRCode(t *testing.T) {
	r := NewRenderer("notty", explorer.Owner{})
	b := r.Render(explorer.KindContact, 38)
	if !strings.ContainsAny(plain(b), "█▀▄") {
		t.Fatalf("contact body has no QR code:\n%s", plain(b))
	}
}

func TestRenderer_Caches(t *testing.T) {
	r := NewRenderer("notty", explorer.Owner{})
	a := r.Render(explorer.KindAbout, 38)
	b := r.Render(explorer.KindAbout, 38)
	if len(a.Lines) != len(b.Lines) || len(r.cache) != 1 {
		t.Fatalf("cache entries = %d", len(r.cache))
	}
}

type fakeLauncher struct {
	opened, copied string
	err            error
}

func (f *fakeLauncher) OpenURL(u string) error {
	f.opened = u
	return f.err
}

func (f *fakeLauncher) CopyText(s string) error {
	f.copied = s
	return f.err
}

func TestFollow(t *testing.T) {
	l := &fakeLauncher{}
	if err := Follow(l, explorer.Link{Label: "Visit Website", Target: "https://london-consultants.com/"}); err != nil {
		t.Fatal(err)
	}
	if l.opened != "https://london-consultants.com/" {
		t.Fatalf("opened = %q", l.opened)
	}
	if err := Follow(l, explorer.Link{Target: "a@b.c", Kind: explorer.LinkEmail}); err != nil {
		t.Fatal(err)
	}
	if l.copied != "a@b.c" {
		t.Fatalf("copied = %q", l.copied)
	}

	l.err = errors.New("no display")
	if err := Follow(l, explorer.Link{Target: "x"}); !errors.Is(err, l.err) {
		t.Fatalf("err = %v", err)
	}
}
