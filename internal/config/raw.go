package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// IncludeList supports either:
//
//	include: "/path/to/file.yaml"
//
// or:
//
//	include:
//	  - "/path/to/file.yaml"
//	  - "/path/to/dir"
type IncludeList []string

func (l *IncludeList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case 0:
		*l = nil
		return nil
	case yaml.ScalarNode:
		if value.Tag != "!!str" {
			return fmt.Errorf("include must be a string or list of strings")
		}
		*l = []string{value.Value}
		return nil
	case yaml.SequenceNode:
		out := make([]string, 0, len(value.Content))
		for _, item := range value.Content {
			if item.Kind != yaml.ScalarNode || item.Tag != "!!str" {
				return fmt.Errorf("include entries must be strings")
			}
			out = append(out, item.Value)
		}
		*l = out
		return nil
	default:
		return fmt.Errorf("include must be a string or list of strings")
	}
}

type RawViewport struct {
	Width  *int `yaml:"width"`
	Height *int `yaml:"height"`
}

type RawTimers struct {
	ClockTickMS     *int `yaml:"clock_tick_ms"`
	PreloaderMS     *int `yaml:"preloader_ms"`
	IconOpenDelayMS *int `yaml:"icon_open_delay_ms"`
}

type RawOwner struct {
	Name     *string `yaml:"name"`
	Email    *string `yaml:"email"`
	LinkedIn *string `yaml:"linkedin"`
}

type RawIPC struct {
	Enabled *bool `yaml:"enabled"`
}

type RawLogging struct {
	Enabled   *bool   `yaml:"enabled"`
	Level     *string `yaml:"level"`
	File      *string `yaml:"file"`
	MaxSizeMB *int    `yaml:"max_size_mb"`
	MaxFiles  *int    `yaml:"max_files"`
}

// RawConfig is one config file as written. Unset keys stay nil so merges
// only override what a file names.
type RawConfig struct {
	Include IncludeList `yaml:"include"`

	CellWidth   *int         `yaml:"cell_width"`
	CellHeight  *int         `yaml:"cell_height"`
	Viewport    *RawViewport `yaml:"viewport"`
	Timers      *RawTimers   `yaml:"timers"`
	MouseMode   *string      `yaml:"mouse_mode"`
	Theme       *string      `yaml:"theme"`
	AssetsDir   *string      `yaml:"assets_dir"`
	Owner       *RawOwner    `yaml:"owner"`
	IPC         *RawIPC      `yaml:"ipc"`
	WatchConfig *bool        `yaml:"watch_config"`
	LogLevel    *string      `yaml:"log_level"`
	Logging     *RawLogging  `yaml:"logging"`
}

func pick[T any](base, override *T) *T {
	if override != nil {
		return override
	}
	return base
}

func (r RawConfig) merge(o RawConfig) RawConfig {
	out := r
	out.Include = nil
	out.CellWidth = pick(r.CellWidth, o.CellWidth)
	out.CellHeight = pick(r.CellHeight, o.CellHeight)
	out.MouseMode = pick(r.MouseMode, o.MouseMode)
	out.Theme = pick(r.Theme, o.Theme)
	out.AssetsDir = pick(r.AssetsDir, o.AssetsDir)
	out.WatchConfig = pick(r.WatchConfig, o.WatchConfig)
	out.LogLevel = pick(r.LogLevel, o.LogLevel)

	if o.Viewport != nil {
		v := RawViewport{}
		if r.Viewport != nil {
			v = *r.Viewport
		}
		v.Width = pick(v.Width, o.Viewport.Width)
		v.Height = pick(v.Height, o.Viewport.Height)
		out.Viewport = &v
	}
	if o.Timers != nil {
		t := RawTimers{}
		if r.Timers != nil {
			t = *r.Timers
		}
		t.ClockTickMS = pick(t.ClockTickMS, o.Timers.ClockTickMS)
		t.PreloaderMS = pick(t.PreloaderMS, o.Timers.PreloaderMS)
		t.IconOpenDelayMS = pick(t.IconOpenDelayMS, o.Timers.IconOpenDelayMS)
		out.Timers = &t
	}
	if o.Owner != nil {
		ow := RawOwner{}
		if r.Owner != nil {
			ow = *r.Owner
		}
		ow.Name = pick(ow.Name, o.Owner.Name)
		ow.Email = pick(ow.Email, o.Owner.Email)
		ow.LinkedIn = pick(ow.LinkedIn, o.Owner.LinkedIn)
		out.Owner = &ow
	}
	if o.IPC != nil {
		ipc := RawIPC{}
		if r.IPC != nil {
			ipc = *r.IPC
		}
		ipc.Enabled = pick(ipc.Enabled, o.IPC.Enabled)
		out.IPC = &ipc
	}
	if o.Logging != nil {
		l := RawLogging{}
		if r.Logging != nil {
			l = *r.Logging
		}
		l.Enabled = pick(l.Enabled, o.Logging.Enabled)
		l.Level = pick(l.Level, o.Logging.Level)
		l.File = pick(l.File, o.Logging.File)
		l.MaxSizeMB = pick(l.MaxSizeMB, o.Logging.MaxSizeMB)
		l.MaxFiles = pick(l.MaxFiles, o.Logging.MaxFiles)
		out.Logging = &l
	}
	return out
}
