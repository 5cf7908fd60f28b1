package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/1broseidon/xpdesk/internal/clock"
	"github.com/1broseidon/xpdesk/internal/ipc"
	"github.com/1broseidon/xpdesk/internal/tui"
)

func main() {
	if len(os.Args) < 2 {
		os.Exit(runDesktop(nil))
	}

	switch os.Args[1] {
	case "run":
		os.Exit(runDesktop(os.Args[2:]))
	case "status":
		os.Exit(runStatus(os.Args[2:]))
	case "window":
		os.Exit(runWindow(os.Args[2:]))
	case "explore":
		os.Exit(runExplore(os.Args[2:]))
	case "clock":
		os.Exit(runClock(os.Args[2:]))
	case "config":
		os.Exit(runConfig(os.Args[2:]))
	case "mcp":
		os.Exit(runMCP(os.Args[2:]))
	case "help", "-h", "--help":
		printMainUsage(os.Stdout)
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printMainUsage(os.Stderr)
		os.Exit(2)
	}
}

func printMainUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: xpdesk [command] [options]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  run                 Start the desktop (default)")
	fmt.Fprintln(w, "  status              Show the running session")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  window list         List open windows")
	fmt.Fprintln(w, "  window open         Open a window by name")
	fmt.Fprintln(w, "  window close        Close a window")
	fmt.Fprintln(w, "  window activate     Bring a window to the front")
	fmt.Fprintln(w, "  window move         Move a window")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  explore ls          List an explorer folder")
	fmt.Fprintln(w, "  explore cat         Print an explorer file")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  clock               Print the taskbar clock")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  config validate     Validate configuration")
	fmt.Fprintln(w, "  config print        Print configuration")
	fmt.Fprintln(w, "  config explain      Explain a config value")
	fmt.Fprintln(w, "  config edit         Edit configuration interactively")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  mcp serve           Start MCP server (stdio transport)")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Run 'xpdesk <command> --help' for command-specific options.")
}

func runDesktop(args []string) int {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: xpdesk run [--path PATH] [--no-ipc]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Start the desktop in the current terminal.")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Keybindings:")
		fmt.Fprintln(os.Stderr, "  Esc       Close the preview, top dialog or start menu")
		fmt.Fprintln(os.Stderr, "  Ctrl+E    Edit settings")
		fmt.Fprintln(os.Stderr, "  ?         Toggle help")
		fmt.Fprintln(os.Stderr, "  q, Ctrl+C Quit")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Flags:")
		fs.PrintDefaults()
	}
	path := fs.String("path", "", "Config file path (default: ~/.config/xpdesk/config.yaml)")
	noIPC := fs.Bool("no-ipc", false, "Do not serve the control socket")
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() != 0 {
		fmt.Fprintln(os.Stderr, "run takes no arguments")
		fs.Usage()
		return 2
	}

	if err := tui.Run(tui.RunOptions{ConfigPath: *path, NoIPC: *noIPC}); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func runStatus(args []string) int {
	fs := flag.NewFlagSet("status", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: xpdesk status")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Show the running desktop session via IPC.")
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() != 0 {
		fmt.Fprintln(os.Stderr, "status takes no arguments")
		fs.Usage()
		return 2
	}

	client := ipc.NewClient()
	status, err := client.GetStatus()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	fmt.Printf("session_id:   %s\n", status.SessionID)
	fmt.Printf("started:      %s\n", humanize.Time(status.StartedAt))
	fmt.Printf("window_count: %d\n", status.WindowCount)
	if status.ActiveID != "" {
		fmt.Printf("active:       %s\n", status.ActiveID)
	}
	fmt.Printf("viewport:     %dx%d\n", status.Viewport.Width, status.Viewport.Height)
	return 0
}

func runClock(args []string) int {
	fs := flag.NewFlagSet("clock", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: xpdesk clock [--at HH:MM]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Print the time as the taskbar shows it.")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Flags:")
		fs.PrintDefaults()
	}
	at := fs.String("at", "", "Format this 24-hour time instead of now")
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}

	t := time.Now()
	if *at != "" {
		parsed, err := clock.Parse(*at, t)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 2
		}
		t = parsed
	}
	fmt.Println(clock.Format(t))
	return 0
}
