package config

import (
	"fmt"
	"strings"
)

// Explain returns the effective value at the given YAML-like path and its source.
//
// Supported paths include:
//
//	cell_width
//	cell_height
//	viewport.width
//	viewport.height
//	timers.clock_tick_ms
//	timers.preloader_ms
//	timers.icon_open_delay_ms
//	mouse_mode
//	theme
//	assets_dir
//	owner.name
//	ipc.enabled
//	watch_config
//	log_level
//	logging.level
func Explain(res *LoadResult, path string) (any, Source, error) {
	if res == nil || res.Config == nil {
		return nil, Source{}, fmt.Errorf("no config loaded")
	}
	if path == "" {
		return nil, Source{}, fmt.Errorf("path is empty")
	}

	value, err := lookupValue(res.Config, path)
	if err != nil {
		return nil, Source{}, err
	}

	if src, ok := res.Sources[path]; ok {
		return value, src, nil
	}
	return value, Source{Kind: SourceDefault, Name: "defaults"}, nil
}

func lookupValue(cfg *Config, path string) (any, error) {
	parts := strings.Split(path, ".")
	leaf := func(v any) (any, error) {
		if len(parts) != 1 {
			return nil, fmt.Errorf("%s is not an object", parts[0])
		}
		return v, nil
	}
	child := func(section string, fields map[string]any) (any, error) {
		if len(parts) == 1 {
			return fields, nil
		}
		if len(parts) != 2 {
			return nil, fmt.Errorf("unknown path %q", path)
		}
		v, ok := fields[parts[1]]
		if !ok {
			return nil, fmt.Errorf("unknown %s field %q", section, parts[1])
		}
		return v, nil
	}

	switch parts[0] {
	case "cell_width":
		return leaf(cfg.CellWidth)
	case "cell_height":
		return leaf(cfg.CellHeight)
	case "mouse_mode":
		return leaf(cfg.MouseMode)
	case "theme":
		return leaf(cfg.Theme)
	case "assets_dir":
		return leaf(cfg.GetAssetsDir())
	case "watch_config":
		return leaf(cfg.WatchConfig)
	case "log_level":
		return leaf(cfg.LogLevel)
	case "viewport":
		return child("viewport", map[string]any{
			"width":  cfg.Viewport.Width,
			"height": cfg.Viewport.Height,
		})
	case "timers":
		return child("timers", map[string]any{
			"clock_tick_ms":      cfg.Timers.ClockTickMS,
			"preloader_ms":       cfg.Timers.PreloaderMS,
			"icon_open_delay_ms": cfg.Timers.IconOpenDelayMS,
		})
	case "owner":
		owner := cfg.OwnerInfo()
		return child("owner", map[string]any{
			"name":     owner.Name,
			"email":    owner.Email,
			"linkedin": owner.LinkedIn,
		})
	case "ipc":
		return child("ipc", map[string]any{
			"enabled": cfg.IPC.Enabled,
		})
	case "logging":
		lc := cfg.GetLoggingConfig()
		return child("logging", map[string]any{
			"enabled":     lc.Enabled,
			"level":       lc.Level,
			"file":        lc.File,
			"max_size_mb": lc.MaxSizeMB,
			"max_files":   lc.MaxFiles,
		})
	default:
		return nil, fmt.Errorf("unknown path %q", path)
	}
}
