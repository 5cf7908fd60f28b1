package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/sergi/go-diff/diffmatchpatch"
	"gopkg.in/yaml.v3"

	"github.com/1broseidon/xpdesk/internal/config"
)

type savePhase int

const (
	saveHidden  savePhase = iota
	savePreview           // showing diff, awaiting confirm
	saveResult            // showing outcome message
)

type diffKind int

const (
	diffContext diffKind = iota
	diffRemoved
	diffAdded
)

type diffLine struct {
	kind diffKind
	text string
}

// SaveOverlay manages the config save diff preview and confirmation workflow.
type SaveOverlay struct {
	phase        savePhase
	diffLines    []diffLine
	err          error
	reloaded     bool
	scrollOffset int
}

// Active reports whether the overlay is visible.
func (s SaveOverlay) Active() bool {
	return s.phase != saveHidden
}

// Show computes the diff and opens the preview overlay.
func (s *SaveOverlay) Show(original, current *config.Config) {
	s.err = nil
	s.reloaded = false
	s.scrollOffset = 0

	lines := computeDiffLines(original, current)
	if len(lines) == 0 {
		s.phase = saveResult
		s.err = fmt.Errorf("no changes to save")
		return
	}
	s.diffLines = lines
	s.phase = savePreview
}

// SaveSucceeded reports whether the last save completed without error.
func (s SaveOverlay) SaveSucceeded() bool {
	return s.phase == saveResult && s.err == nil
}

// Update handles input while the overlay is active. Confirming writes cfg to
// path and then calls reload, which may be nil.
func (s SaveOverlay) Update(msg tea.Msg, cfg *config.Config, path string, reload func() error) SaveOverlay {
	switch s.phase {
	case savePreview:
		if km, ok := msg.(tea.KeyMsg); ok {
			switch km.String() {
			case "esc":
				s.phase = saveHidden
			case "enter", "y":
				s.err = cfg.SaveTo(path)
				if s.err == nil && reload != nil {
					s.reloaded = reload() == nil
				}
				s.phase = saveResult
			case "up", "k":
				if s.scrollOffset > 0 {
					s.scrollOffset--
				}
			case "down", "j":
				s.scrollOffset++
			}
		}
	case saveResult:
		if _, ok := msg.(tea.KeyMsg); ok {
			s.phase = saveHidden
		}
	}
	return s
}

// View renders the overlay for the given content area dimensions.
func (s SaveOverlay) View(width, height int) string {
	switch s.phase {
	case savePreview:
		return s.viewPreview(width, height)
	case saveResult:
		return s.viewResult(width, height)
	}
	return ""
}

func (s SaveOverlay) viewPreview(areaW, areaH int) string {
	boxW := min(80, max(30, areaW-8))

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	addStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	rmStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	ctxStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	footStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	title := titleStyle.Render("Save Settings: Pending Changes")

	// Visible diff area height: total minus title, blank lines, footer, border, padding
	diffH := max(3, areaH-10)

	maxScroll := max(0, len(s.diffLines)-diffH)
	off := min(s.scrollOffset, maxScroll)

	innerW := max(10, boxW-6)
	end := min(off+diffH, len(s.diffLines))

	var lines []string
	for _, dl := range s.diffLines[off:end] {
		t := ansi.Truncate(dl.text, innerW-2, "")
		switch dl.kind {
		case diffAdded:
			lines = append(lines, addStyle.Render("+ "+t))
		case diffRemoved:
			lines = append(lines, rmStyle.Render("- "+t))
		default:
			lines = append(lines, ctxStyle.Render("  "+t))
		}
	}

	diff := strings.Join(lines, "\n")
	footer := footStyle.Render("enter: save  esc: cancel  j/k: scroll")
	content := title + "\n\n" + diff + "\n\n" + footer

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("62")).
		Padding(1, 2).
		Width(boxW).
		Render(content)

	return lipgloss.Place(areaW, areaH, lipgloss.Center, lipgloss.Center, box)
}

func (s SaveOverlay) viewResult(areaW, areaH int) string {
	boxW := min(60, max(30, areaW-8))

	var msg string
	if s.err != nil {
		errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
		msg = errStyle.Render("Error: " + s.err.Error())
	} else {
		okStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
		msg = okStyle.Render("Settings saved")
		if s.reloaded {
			msg += "\n" + okStyle.UnsetBold().Render("Desktop reloaded")
		}
	}

	footer := lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render("press any key to dismiss")
	content := msg + "\n\n" + footer

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("62")).
		Padding(1, 2).
		Width(boxW).
		Render(content)

	return lipgloss.Place(areaW, areaH, lipgloss.Center, lipgloss.Center, box)
}

// --- diff computation ---

func computeDiffLines(original, current *config.Config) []diffLine {
	if original == nil || current == nil {
		return nil
	}

	origBytes, err := original.Marshal()
	if err != nil {
		return nil
	}
	currBytes, err := current.Marshal()
	if err != nil {
		return nil
	}

	origStr := strings.TrimSpace(string(origBytes)) + "\n"
	currStr := strings.TrimSpace(string(currBytes)) + "\n"
	if origStr == currStr {
		return nil
	}

	return filterDiffContext(lineDiff(origStr, currStr), 2)
}

// lineDiff diffs a and b line by line with diffmatchpatch.
func lineDiff(a, b string) []diffLine {
	dmp := diffmatchpatch.New()
	ca, cb, lines := dmp.DiffLinesToChars(a, b)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(ca, cb, false), lines)

	var all []diffLine
	for _, d := range diffs {
		kind := diffContext
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			kind = diffAdded
		case diffmatchpatch.DiffDelete:
			kind = diffRemoved
		}
		for _, text := range strings.Split(strings.TrimSuffix(d.Text, "\n"), "\n") {
			all = append(all, diffLine{kind: kind, text: text})
		}
	}
	return all
}

// filterDiffContext keeps changed lines and ctx surrounding context lines.
func filterDiffContext(lines []diffLine, ctx int) []diffLine {
	if len(lines) == 0 {
		return nil
	}

	keep := make([]bool, len(lines))
	for i, l := range lines {
		if l.kind != diffContext {
			lo := max(0, i-ctx)
			hi := min(len(lines)-1, i+ctx)
			for j := lo; j <= hi; j++ {
				keep[j] = true
			}
		}
	}

	var result []diffLine
	prevKept := true
	hasChange := false
	for i, l := range lines {
		if keep[i] {
			if !prevKept {
				result = append(result, diffLine{kind: diffContext, text: "..."})
			}
			result = append(result, l)
			if l.kind != diffContext {
				hasChange = true
			}
			prevKept = true
		} else {
			prevKept = false
		}
	}

	if !hasChange {
		return nil
	}
	return result
}

// cloneConfig creates a deep copy of a Config via YAML round-trip.
func cloneConfig(cfg *config.Config) *config.Config {
	if cfg == nil {
		return nil
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil
	}
	var clone config.Config
	if err := yaml.Unmarshal(data, &clone); err != nil {
		return nil
	}
	return &clone
}
