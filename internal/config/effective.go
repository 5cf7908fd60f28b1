package config

import "fmt"

type ValidationError struct {
	Path   string
	Source Source
	Err    error
}

func (e *ValidationError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Source.Kind == SourceFile && e.Source.File != "" && e.Source.Line > 0 {
		return fmt.Sprintf("%s:%d:%d: %s: %v", e.Source.File, e.Source.Line, e.Source.Column, e.Path, e.Err)
	}
	if e.Path != "" {
		return fmt.Sprintf("%s: %v", e.Path, e.Err)
	}
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func set[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

// BuildEffectiveConfig applies raw on top of DefaultConfig.
func BuildEffectiveConfig(raw RawConfig) *Config {
	cfg := DefaultConfig()

	set(&cfg.CellWidth, raw.CellWidth)
	set(&cfg.CellHeight, raw.CellHeight)
	set(&cfg.MouseMode, raw.MouseMode)
	set(&cfg.Theme, raw.Theme)
	set(&cfg.AssetsDir, raw.AssetsDir)
	set(&cfg.WatchConfig, raw.WatchConfig)
	set(&cfg.LogLevel, raw.LogLevel)

	if v := raw.Viewport; v != nil {
		set(&cfg.Viewport.Width, v.Width)
		set(&cfg.Viewport.Height, v.Height)
	}
	if t := raw.Timers; t != nil {
		set(&cfg.Timers.ClockTickMS, t.ClockTickMS)
		set(&cfg.Timers.PreloaderMS, t.PreloaderMS)
		set(&cfg.Timers.IconOpenDelayMS, t.IconOpenDelayMS)
	}
	if o := raw.Owner; o != nil {
		set(&cfg.Owner.Name, o.Name)
		set(&cfg.Owner.Email, o.Email)
		set(&cfg.Owner.LinkedIn, o.LinkedIn)
	}
	if i := raw.IPC; i != nil {
		set(&cfg.IPC.Enabled, i.Enabled)
	}
	if l := raw.Logging; l != nil {
		set(&cfg.Logging.Enabled, l.Enabled)
		set(&cfg.Logging.Level, l.Level)
		set(&cfg.Logging.File, l.File)
		set(&cfg.Logging.MaxSizeMB, l.MaxSizeMB)
		set(&cfg.Logging.MaxFiles, l.MaxFiles)
	}
	return cfg
}
