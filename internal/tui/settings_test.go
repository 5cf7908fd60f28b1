package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/1broseidon/xpdesk/internal/config"
)

func TestSettings_ApplyForm(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Logging.Enabled = true
	s := NewSettings(cfg, filepath.Join(t.TempDir(), "config.yaml"), nil)
	s.Start(100)

	s.fTheme = "classic"
	s.fCellWidth = " 8 "
	s.fIconDelay = "0"
	s.fClockTick = "not a number"
	s.fOwnerName = "  Ada Lovelace "
	s.fWatch = false

	got := s.applyForm()
	if got.Theme != "classic" {
		t.Errorf("Theme = %q", got.Theme)
	}
	if got.CellWidth != 8 {
		t.Errorf("CellWidth = %d, want 8", got.CellWidth)
	}
	if got.Timers.IconOpenDelayMS != 0 {
		t.Errorf("IconOpenDelayMS = %d, want 0", got.Timers.IconOpenDelayMS)
	}
	if got.Timers.ClockTickMS != 1000 {
		t.Errorf("unparseable clock tick changed the value to %d", got.Timers.ClockTickMS)
	}
	if got.Owner.Name != "Ada Lovelace" {
		t.Errorf("Owner.Name = %q", got.Owner.Name)
	}
	if got.WatchConfig {
		t.Errorf("WatchConfig not cleared")
	}
	if !got.Logging.Enabled {
		t.Errorf("fields outside the form were lost")
	}
	if cfg.Theme != "luna" {
		t.Errorf("applyForm mutated the baseline")
	}
}

func TestSettings_EscCancels(t *testing.T) {
	s := NewSettings(config.DefaultConfig(), "", nil)
	if s.Active() {
		t.Fatalf("new editor should be inactive")
	}
	s.Start(100)
	if !s.Active() {
		t.Fatalf("Start did not activate the editor")
	}
	if s.View(100, 40) == "" {
		t.Fatalf("active editor rendered nothing")
	}

	s, _ = s.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if s.Active() {
		t.Fatalf("esc did not close the editor")
	}
	if s.View(100, 40) != "" {
		t.Fatalf("closed editor still renders")
	}
}

func TestSettings_SetConfigWhileInactive(t *testing.T) {
	s := NewSettings(config.DefaultConfig(), "", nil)

	next := config.DefaultConfig()
	next.Theme = "classic"
	s.SetConfig(next)
	if s.original.Theme != "classic" {
		t.Fatalf("baseline not replaced")
	}

	s.Start(100)
	other := config.DefaultConfig()
	s.SetConfig(other)
	if s.original.Theme != "classic" {
		t.Fatalf("baseline replaced while editing")
	}
}

func TestSettings_SaveEmitsSavedMsg(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	s := NewSettings(config.DefaultConfig(), path, nil)

	draft := config.DefaultConfig()
	draft.Theme = "classic"
	s.draft = draft
	s.save.Show(s.original, draft)

	s, cmd := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatalf("save returned no command")
	}
	msg, ok := cmd().(settingsSavedMsg)
	if !ok {
		t.Fatalf("cmd produced %T, want settingsSavedMsg", cmd())
	}
	if msg.cfg.Theme != "classic" {
		t.Fatalf("saved theme = %q", msg.cfg.Theme)
	}
	if s.original.Theme != "classic" {
		t.Fatalf("baseline not advanced after save")
	}

	res, err := config.LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath: %v", err)
	}
	if res.Config.Theme != "classic" {
		t.Fatalf("file theme = %q", res.Config.Theme)
	}
}

func TestValidators(t *testing.T) {
	tests := []struct {
		name string
		fn   func(string) error
		in   string
		ok   bool
	}{
		{"positive ok", positiveInt, "10", true},
		{"positive zero", positiveInt, "0", false},
		{"positive junk", positiveInt, "ten", false},
		{"non-negative zero", nonNegativeInt, " 0 ", true},
		{"non-negative negative", nonNegativeInt, "-1", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.fn(tt.in)
			if (err == nil) != tt.ok {
				t.Fatalf("%q: err = %v, want ok=%v", tt.in, err, tt.ok)
			}
		})
	}
}
