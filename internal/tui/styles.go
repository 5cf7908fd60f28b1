package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme holds every style the desktop is drawn with.
type Theme struct {
	Name string

	Desktop       lipgloss.Style
	IconLabel     lipgloss.Style
	IconSelected  lipgloss.Style
	TitleActive   lipgloss.Style
	TitleInactive lipgloss.Style
	BorderActive  lipgloss.Style
	BorderIdle    lipgloss.Style
	Button        lipgloss.Style
	CloseButton   lipgloss.Style
	Chrome        lipgloss.Style
	ChromeButton  lipgloss.Style
	Address       lipgloss.Style
	Window        lipgloss.Style
	Sidebar       lipgloss.Style
	SidebarHead   lipgloss.Style
	SidebarLink   lipgloss.Style
	Entry         lipgloss.Style
	EntrySelected lipgloss.Style
	Dialog        lipgloss.Style
	DialogLink    lipgloss.Style

	Taskbar      lipgloss.Style
	StartButton  lipgloss.Style
	StartPressed lipgloss.Style
	TaskActive   lipgloss.Style
	TaskIdle     lipgloss.Style
	Tray         lipgloss.Style
	MenuHeader   lipgloss.Style
	MenuItems    lipgloss.Style
	MenuHover    lipgloss.Style
	MenuGroup    lipgloss.Style
	MenuPane     lipgloss.Style
	MenuFooter   lipgloss.Style
	PreviewShade lipgloss.Style
	Preloader    lipgloss.Style
	Status       lipgloss.Style
	Help         lipgloss.Style

	// Markdown is the glamour style dialog bodies render with.
	Markdown string
}

func lunaTheme() Theme {
	white := lipgloss.Color("#ffffff")
	return Theme{
		Name:          "luna",
		Desktop:       lipgloss.NewStyle().Background(lipgloss.Color("#3a6ea5")),
		IconLabel:     lipgloss.NewStyle().Foreground(white).Background(lipgloss.Color("#3a6ea5")),
		IconSelected:  lipgloss.NewStyle().Foreground(white).Background(lipgloss.Color("#316ac5")),
		TitleActive:   lipgloss.NewStyle().Bold(true).Foreground(white).Background(lipgloss.Color("#2a5ade")),
		TitleInactive: lipgloss.NewStyle().Foreground(lipgloss.Color("#3f3f3f")).Background(lipgloss.Color("#7e9fc7")),
		BorderActive:  lipgloss.NewStyle().Foreground(lipgloss.Color("#0058e0")).Background(lipgloss.Color("#ffffff")),
		BorderIdle:    lipgloss.NewStyle().Foreground(lipgloss.Color("#7e9fc7")).Background(lipgloss.Color("#ffffff")),
		Button:        lipgloss.NewStyle().Foreground(white).Background(lipgloss.Color("#3d7df7")),
		CloseButton:   lipgloss.NewStyle().Bold(true).Foreground(white).Background(lipgloss.Color("#e0443e")),
		Chrome:        lipgloss.NewStyle().Foreground(lipgloss.Color("#000000")).Background(lipgloss.Color("#ece9d8")),
		ChromeButton:  lipgloss.NewStyle().Foreground(lipgloss.Color("#000000")).Background(lipgloss.Color("#d6d2c2")),
		Address:       lipgloss.NewStyle().Foreground(lipgloss.Color("#000000")).Background(white),
		Window:        lipgloss.NewStyle().Foreground(lipgloss.Color("#000000")).Background(white),
		Sidebar:       lipgloss.NewStyle().Background(lipgloss.Color("#7ba2e7")),
		SidebarHead:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#215dc6")).Background(white),
		SidebarLink:   lipgloss.NewStyle().Foreground(lipgloss.Color("#2563eb")).Background(white),
		Entry:         lipgloss.NewStyle().Foreground(lipgloss.Color("#000000")).Background(white),
		EntrySelected: lipgloss.NewStyle().Foreground(lipgloss.Color("#000000")).Background(lipgloss.Color("#dbeafe")),
		Dialog:        lipgloss.NewStyle().Foreground(lipgloss.Color("#000000")).Background(white),
		DialogLink:    lipgloss.NewStyle().Underline(true).Foreground(lipgloss.Color("#2563eb")).Background(white),

		Taskbar:      lipgloss.NewStyle().Foreground(white).Background(lipgloss.Color("#245edc")),
		StartButton:  lipgloss.NewStyle().Bold(true).Italic(true).Foreground(white).Background(lipgloss.Color("#3c993c")),
		StartPressed: lipgloss.NewStyle().Bold(true).Italic(true).Foreground(white).Background(lipgloss.Color("#2d7d2d")),
		TaskActive:   lipgloss.NewStyle().Foreground(white).Background(lipgloss.Color("#1e52b7")),
		TaskIdle:     lipgloss.NewStyle().Foreground(white).Background(lipgloss.Color("#3c81f3")),
		Tray:         lipgloss.NewStyle().Foreground(white).Background(lipgloss.Color("#0f7bec")),
		MenuHeader:   lipgloss.NewStyle().Bold(true).Foreground(white).Background(lipgloss.Color("#1f5fd6")),
		MenuItems:    lipgloss.NewStyle().Foreground(lipgloss.Color("#000000")).Background(white),
		MenuHover:    lipgloss.NewStyle().Foreground(white).Background(lipgloss.Color("#316ac5")),
		MenuGroup:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#3f3f3f")).Background(white),
		MenuPane:     lipgloss.NewStyle().Foreground(lipgloss.Color("#0b2d6b")).Background(lipgloss.Color("#d3e5fa")),
		MenuFooter:   lipgloss.NewStyle().Foreground(white).Background(lipgloss.Color("#1f5fd6")),
		PreviewShade: lipgloss.NewStyle().Foreground(white).Background(lipgloss.Color("#000000")),
		Preloader:    lipgloss.NewStyle().Foreground(white).Background(lipgloss.Color("#000000")),
		Status:       lipgloss.NewStyle().Foreground(white).Background(lipgloss.Color("#1e52b7")),
		Help:         lipgloss.NewStyle().Foreground(lipgloss.Color("#000000")).Background(lipgloss.Color("#ffffe1")),

		Markdown: "light",
	}
}

func classicTheme() Theme {
	t := lunaTheme()
	grey := lipgloss.Color("#c0c0c0")
	navy := lipgloss.Color("#000080")
	black := lipgloss.Color("#000000")
	white := lipgloss.Color("#ffffff")

	t.Name = "classic"
	t.Desktop = lipgloss.NewStyle().Background(lipgloss.Color("#008080"))
	t.IconLabel = lipgloss.NewStyle().Foreground(white).Background(lipgloss.Color("#008080"))
	t.IconSelected = lipgloss.NewStyle().Foreground(white).Background(navy)
	t.TitleActive = lipgloss.NewStyle().Bold(true).Foreground(white).Background(navy)
	t.TitleInactive = lipgloss.NewStyle().Foreground(grey).Background(lipgloss.Color("#808080"))
	t.BorderActive = lipgloss.NewStyle().Foreground(black).Background(grey)
	t.BorderIdle = lipgloss.NewStyle().Foreground(lipgloss.Color("#808080")).Background(grey)
	t.Button = lipgloss.NewStyle().Foreground(black).Background(grey)
	t.CloseButton = lipgloss.NewStyle().Bold(true).Foreground(black).Background(grey)
	t.Chrome = lipgloss.NewStyle().Foreground(black).Background(grey)
	t.ChromeButton = lipgloss.NewStyle().Foreground(black).Background(lipgloss.Color("#dfdfdf"))
	t.Sidebar = lipgloss.NewStyle().Background(grey)
	t.SidebarHead = lipgloss.NewStyle().Bold(true).Foreground(navy).Background(white)
	t.SidebarLink = lipgloss.NewStyle().Foreground(navy).Background(white)
	t.EntrySelected = lipgloss.NewStyle().Foreground(white).Background(navy)
	t.DialogLink = lipgloss.NewStyle().Underline(true).Foreground(navy).Background(white)
	t.Taskbar = lipgloss.NewStyle().Foreground(black).Background(grey)
	t.StartButton = lipgloss.NewStyle().Bold(true).Foreground(black).Background(lipgloss.Color("#dfdfdf"))
	t.StartPressed = lipgloss.NewStyle().Bold(true).Foreground(black).Background(lipgloss.Color("#a0a0a0"))
	t.TaskActive = lipgloss.NewStyle().Bold(true).Foreground(black).Background(lipgloss.Color("#e8e8e8"))
	t.TaskIdle = lipgloss.NewStyle().Foreground(black).Background(lipgloss.Color("#d4d0c8"))
	t.Tray = lipgloss.NewStyle().Foreground(black).Background(lipgloss.Color("#d4d0c8"))
	t.MenuHeader = lipgloss.NewStyle().Bold(true).Foreground(white).Background(navy)
	t.MenuHover = lipgloss.NewStyle().Foreground(white).Background(navy)
	t.MenuPane = lipgloss.NewStyle().Foreground(black).Background(grey)
	t.MenuFooter = lipgloss.NewStyle().Foreground(black).Background(grey)
	t.Status = lipgloss.NewStyle().Foreground(black).Background(grey)
	return t
}

// ThemeFor returns the named theme; unknown names get luna. On terminals
// without color the markdown style drops to notty.
func ThemeFor(name string) Theme {
	var t Theme
	switch name {
	case "classic":
		t = classicTheme()
	default:
		t = lunaTheme()
	}
	if lipgloss.ColorProfile() == termenv.Ascii {
		t.Markdown = "notty"
	}
	return t
}
