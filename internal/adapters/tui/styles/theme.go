package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	Primary    = lipgloss.Color("#007ACC") // Status bar blue
	Secondary  = lipgloss.Color("#4EC9B0") // Teal
	Accent     = lipgloss.Color("#C586C0") // Keyword purple
	Muted      = lipgloss.Color("#858585") // Gray
	Warning    = lipgloss.Color("#CCA700") // Amber
	Error      = lipgloss.Color("#F14C4C") // Red
	String     = lipgloss.Color("#CE9178") // String orange
	White      = lipgloss.Color("#FFFFFF")
	Black      = lipgloss.Color("#000000")
	Background = lipgloss.Color("#1E1E1E")
	Surface    = lipgloss.Color("#252526")
	Chrome     = lipgloss.Color("#333333")
	Selection  = lipgloss.Color("#094771")

	// Base styles
	App = lipgloss.NewStyle().
		Padding(1, 2)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		MarginBottom(1)

	Subtitle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	// Shell chrome
	TitleBar = lipgloss.NewStyle().
			Background(Chrome).
			Foreground(lipgloss.Color("#CCCCCC"))

	ActivityBar = lipgloss.NewStyle().
			Background(Chrome).
			Foreground(Muted).
			Padding(0, 1)

	ActivityActive = lipgloss.NewStyle().
			Foreground(White).
			Bold(true)

	PanelHeader = lipgloss.NewStyle().
			Foreground(Muted).
			Bold(true)

	PanelHeaderFocused = lipgloss.NewStyle().
				Foreground(White).
				Background(Primary).
				Bold(true)

	// Tree node styles
	NodeDir = lipgloss.NewStyle().
		Bold(true)

	NodeDocument = lipgloss.NewStyle()

	NodeActive = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	NodeSelected = lipgloss.NewStyle().
			Background(Selection).
			Foreground(White).
			Bold(true)

	// Tree indicators
	TreeBranch    = lipgloss.NewStyle().Foreground(Muted)
	TreeExpanded  = "▼ "
	TreeCollapsed = "▶ "
	TreeLeaf      = "  "

	// Editor
	Tab = lipgloss.NewStyle().
		Background(Surface).
		Foreground(Muted).
		Padding(0, 1)

	TabActive = lipgloss.NewStyle().
			Background(Background).
			Foreground(White).
			Bold(true).
			Padding(0, 1)

	Breadcrumb = lipgloss.NewStyle().
			Foreground(Muted)

	BreadcrumbSeparator = lipgloss.NewStyle().
				Foreground(Muted).
				SetString(" › ")

	Tag = lipgloss.NewStyle().
		Foreground(Accent)

	LinkIndex = lipgloss.NewStyle().
			Foreground(Warning).
			Bold(true)

	LinkInternal = lipgloss.NewStyle().
			Foreground(Secondary)

	LinkExternal = lipgloss.NewStyle().
			Foreground(Primary).
			Underline(true)

	// Terminal
	TerminalBanner = lipgloss.NewStyle().
			Foreground(Muted)

	TerminalPrompt = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)

	TerminalCommand = lipgloss.NewStyle().
			Foreground(White)

	TerminalOutput = lipgloss.NewStyle().
			Foreground(String)

	TerminalError = lipgloss.NewStyle().
			Foreground(Error)

	Popup = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Muted).
		Padding(0, 1)

	PopupTitle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	// Status bar
	StatusBar = lipgloss.NewStyle().
			Background(Primary).
			Foreground(White).
			Padding(0, 1)

	StatusKey = lipgloss.NewStyle().
			Background(lipgloss.Color("#16825D")).
			Foreground(White).
			Padding(0, 1).
			MarginRight(1)

	StatusText = lipgloss.NewStyle().
			Foreground(White)

	// Section labels
	InputLabel = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	// Palette overlay
	Overlay = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Primary).
		Background(Surface).
		Padding(0, 1)

	// Help styles
	HelpKey = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	HelpDesc = lipgloss.NewStyle().
			Foreground(Muted)

	HelpSeparator = lipgloss.NewStyle().
			Foreground(Muted).
			SetString(" • ")

	// Message styles
	ErrorMsg = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	// Muted text style (for using Muted color as a style)
	MutedText = lipgloss.NewStyle().
			Foreground(Muted)
)

// LangColor returns the badge color for a language label
func LangColor(badge string) lipgloss.Color {
	switch badge {
	case "MD", "MDX":
		return lipgloss.Color("#519ABA")
	case "PY":
		return lipgloss.Color("#FFD43B")
	case "JS", "JSON":
		return lipgloss.Color("#CBCB41")
	case "TS":
		return lipgloss.Color("#3178C6")
	default:
		return Primary
	}
}
