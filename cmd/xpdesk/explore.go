package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/1broseidon/xpdesk/internal/config"
	"github.com/1broseidon/xpdesk/internal/dialog"
	"github.com/1broseidon/xpdesk/internal/explorer"
	"github.com/1broseidon/xpdesk/internal/tui"
)

func printExploreUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  xpdesk explore ls [PATH]")
	fmt.Fprintln(w, "  xpdesk explore cat [--path CONFIG] <file>")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, `Paths use the explorer's form, e.g. 'C:\Work'. Forward slashes work too.`)
}

func runExplore(args []string) int {
	if len(args) == 0 {
		printExploreUsage(os.Stderr)
		return 2
	}

	switch args[0] {
	case "ls":
		if len(args) > 2 {
			fmt.Fprintln(os.Stderr, "explore ls takes at most one path")
			return 2
		}
		path := explorer.Root
		if len(args) == 2 {
			path = explorer.Normalize(args[1])
		}
		entries := explorer.EntriesAt(path)
		if entries == nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, explorer.ErrNotFound)
			return 1
		}
		fmt.Println(path)
		for _, e := range entries {
			suffix := ""
			if k, ok := explorer.DialogFor(e.Name); ok && e.Kind == explorer.KindFile {
				suffix = "  -> " + k.Title()
			}
			fmt.Printf("  %-7s %s%s\n", e.Kind, e.Name, suffix)
		}
		return 0

	case "cat":
		fs := flag.NewFlagSet("cat", flag.ContinueOnError)
		fs.SetOutput(os.Stderr)
		cfgPath := fs.String("path", "", "Config file path (default: ~/.config/xpdesk/config.yaml)")
		if err := fs.Parse(args[1:]); err != nil {
			if err == flag.ErrHelp {
				return 0
			}
			return 2
		}
		if fs.NArg() != 1 {
			fmt.Fprintln(os.Stderr, "explore cat requires <file>")
			return 2
		}
		res, err := loadConfig(*cfgPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		cfg := res.Config

		path := explorer.Normalize(fs.Arg(0))
		kind, err := explorer.Open(path)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}

		cols := max(20, dialog.Width(kind, cfg.HeadlessViewport())/max(1, cfg.CellWidth)-4)
		body := dialog.NewRenderer(tui.ThemeFor(cfg.Theme).Markdown, cfg.OwnerInfo()).Render(kind, cols)
		fmt.Println(kind.Title())
		fmt.Println()
		for _, line := range body.Lines {
			fmt.Println(line)
		}
		return 0

	case "help", "-h", "--help":
		printExploreUsage(os.Stdout)
		return 0

	default:
		fmt.Fprintf(os.Stderr, "Unknown explore command: %s\n\n", args[0])
		printExploreUsage(os.Stderr)
		return 2
	}
}

func loadConfig(path string) (*config.LoadResult, error) {
	if path == "" {
		return config.LoadWithSources()
	}
	return config.LoadFromPath(path)
}
