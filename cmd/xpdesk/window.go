package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/1broseidon/xpdesk/internal/desktop"
	"github.com/1broseidon/xpdesk/internal/ipc"
)

func printWindowUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  xpdesk window list [--json]")
	fmt.Fprintln(w, "  xpdesk window open <name>")
	fmt.Fprintln(w, "  xpdesk window close <id>")
	fmt.Fprintln(w, "  xpdesk window activate <id>")
	fmt.Fprintln(w, "  xpdesk window move <id> <x> <y>")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Window commands talk to the running desktop over IPC.")
}

func runWindow(args []string) int {
	if len(args) == 0 {
		printWindowUsage(os.Stderr)
		return 2
	}
	if args[0] == "help" || args[0] == "-h" || args[0] == "--help" {
		printWindowUsage(os.Stdout)
		return 0
	}

	client := ipc.NewClient()

	switch args[0] {
	case "list":
		fs := flag.NewFlagSet("list", flag.ContinueOnError)
		fs.SetOutput(os.Stderr)
		jsonOut := fs.Bool("json", false, "Output windows as JSON")
		if err := fs.Parse(args[1:]); err != nil {
			if err == flag.ErrHelp {
				return 0
			}
			return 2
		}
		data, err := client.ListWindows()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		if *jsonOut {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(data); err != nil {
				fmt.Fprintln(os.Stderr, err)
				return 1
			}
			return 0
		}
		if len(data.Windows) == 0 {
			fmt.Println("no open windows")
			return 0
		}
		for _, w := range data.Windows {
			printWindow(w)
		}
		return 0

	case "open":
		if len(args) != 2 {
			fmt.Fprintln(os.Stderr, "window open requires <name>")
			printWindowUsage(os.Stderr)
			return 2
		}
		if err := desktop.CheckOpenable(args[1]); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		return printResult(client.OpenWindow(args[1]))

	case "close", "activate":
		if len(args) != 2 {
			fmt.Fprintf(os.Stderr, "window %s requires <id>\n", args[0])
			printWindowUsage(os.Stderr)
			return 2
		}
		if args[0] == "close" {
			return printResult(client.CloseWindow(args[1]))
		}
		return printResult(client.ActivateWindow(args[1]))

	case "move":
		if len(args) != 4 {
			fmt.Fprintln(os.Stderr, "window move requires <id> <x> <y>")
			printWindowUsage(os.Stderr)
			return 2
		}
		x, errX := strconv.Atoi(args[2])
		y, errY := strconv.Atoi(args[3])
		if errX != nil || errY != nil {
			fmt.Fprintln(os.Stderr, "x and y must be integers")
			return 2
		}
		return printResult(client.MoveWindow(args[1], x, y))

	default:
		fmt.Fprintf(os.Stderr, "Unknown window command: %s\n\n", args[0])
		printWindowUsage(os.Stderr)
		return 2
	}
}

func printWindow(w desktop.WindowState) {
	marker := " "
	if w.IsActive {
		marker = "*"
	}
	fmt.Printf("%s %-24s %-14s %4d,%-4d %dx%d\n",
		marker, w.ID, w.Title, w.Position.X, w.Position.Y, w.Size.Width, w.Size.Height)
}

func printResult(res *ipc.WindowResult, err error) int {
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if !res.Changed {
		fmt.Fprintf(os.Stderr, "no window %s\n", res.ID)
		return 1
	}
	if res.Window != nil {
		printWindow(*res.Window)
		return 0
	}
	fmt.Println(res.ID)
	return 0
}
