package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/leighmacdonald/agri-tui/internal/flow"
)

var (
	Accent = lipgloss.Color("#4d7455")

	Gray  = lipgloss.Color("#3e3e3e")
	Muted = lipgloss.Color("240")
	White = lipgloss.Color("#cccccc")

	Green  = lipgloss.Color("#4d9a5b")
	Blue   = lipgloss.Color("#5885A2")
	Purple = lipgloss.Color("#8650ac")
	Orange = lipgloss.Color("#cf6a32")
	Red    = lipgloss.Color("#B8383B")
	Yellow = lipgloss.Color("#d4a72c")

	ContainerBorder = lipgloss.DoubleBorder()
	ContainerStyle  = lipgloss.NewStyle().Border(ContainerBorder).BorderForeground(Gray).Padding(0, 1)

	HeaderContainerStyle  = lipgloss.NewStyle().Align(lipgloss.Center)
	ContentContainerStyle = lipgloss.NewStyle().Align(lipgloss.Center)
	FooterContainerStyle  = lipgloss.NewStyle().Align(lipgloss.Center)

	Title    = lipgloss.NewStyle().Bold(true).Foreground(White)
	Subtitle = lipgloss.NewStyle().Foreground(Muted)
	Hint     = lipgloss.NewStyle().Foreground(Muted).Italic(true).Padding(1, 0)
	Note     = lipgloss.NewStyle().Foreground(Blue)

	Breadcrumb       = lipgloss.NewStyle().Foreground(Muted).PaddingLeft(1).PaddingRight(1)
	BreadcrumbActive = lipgloss.NewStyle().Foreground(Accent).Bold(true).PaddingRight(1)
	BackMarker       = lipgloss.NewStyle().Foreground(Blue).Bold(true).PaddingLeft(1)

	NodeBase = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)
	NodeTitle       = lipgloss.NewStyle().Bold(true)
	NodeDescription = lipgloss.NewStyle().Foreground(Muted)
	NodeFocused     = lipgloss.ThickBorder()
	Connector       = lipgloss.NewStyle().Foreground(Muted)
	BranchLabel     = lipgloss.NewStyle().Foreground(Yellow).Italic(true)

	PanelTitle  = lipgloss.NewStyle().Bold(true)
	CloseButton = lipgloss.NewStyle().Foreground(Muted).Bold(true)

	LegendBox  = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(Gray).Padding(0, 1).MarginTop(1)
	LegendItem = lipgloss.NewStyle().PaddingRight(2)

	CardBase     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2).Margin(0, 1)
	CardFeature  = lipgloss.NewStyle().Foreground(White)
	CardCTA      = lipgloss.NewStyle().Foreground(Muted).Bold(true).MarginTop(1)
	OverviewItem = lipgloss.NewStyle().Padding(0, 2).Align(lipgloss.Center)
	Brand        = lipgloss.NewStyle().Bold(true).Foreground(Green)
	Footer       = lipgloss.NewStyle().Foreground(Muted).MarginTop(1)

	StatusError   = lipgloss.NewStyle().Foreground(Red).Align(lipgloss.Right).Bold(true).PaddingRight(2)
	StatusMessage = lipgloss.NewStyle().Foreground(Green).Align(lipgloss.Right).Bold(true).PaddingRight(2)
	StatusHelp    = lipgloss.NewStyle().Foreground(Gray).Bold(true).Align(lipgloss.Center).PaddingRight(2)
	StatusVersion = lipgloss.NewStyle().Foreground(Green).Bold(true).Align(lipgloss.Center).PaddingRight(2)
	StatusPage    = lipgloss.NewStyle().Foreground(Orange).Bold(true).PaddingRight(2).PaddingLeft(1)

	PanelLabel = lipgloss.NewStyle().Foreground(Muted).Align(lipgloss.Right).Width(16)
	PanelValue = lipgloss.NewStyle().Width(60)

	HelpBox = lipgloss.NewStyle().Padding(1, 3)

	IconRight = "→"
	IconDown  = "↓"
	IconClose = "[x]"
	IconBack  = "←"
)

// KindColor is the border colour for a node kind, matching the legend.
func KindColor(kind flow.NodeKind) lipgloss.Color {
	switch kind {
	case flow.KindStart:
		return Green
	case flow.KindDecision:
		return Yellow
	case flow.KindProcess:
		return Blue
	case flow.KindAction:
		return Purple
	case flow.KindEnd:
		return Red
	default:
		return Gray
	}
}

func ToneColor(tone flow.Tone) lipgloss.Color {
	switch tone {
	case flow.ToneGreen:
		return Green
	case flow.ToneBlue:
		return Blue
	case flow.TonePurple:
		return Purple
	case flow.ToneOrange:
		return Orange
	case flow.ToneRed:
		return Red
	case flow.ToneYellow:
		return Yellow
	default:
		return Gray
	}
}

func DetailRow(label string, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		PanelLabel.Render(label+" "),
		PanelValue.Render(value))
}

// WrapX will wrap a centered string with the supplied character up to the lenth specified.
func WrapX(width int, value string, character string) string {
	all := width - lipgloss.Width(value)
	if all < 0 {
		return value
	}

	return strings.Repeat(character, all/2) + value + strings.Repeat(character, all-all/2)
}

func TitleBorder(border lipgloss.Border, width int, title string) lipgloss.Border {
	border.Top = WrapX(width, "╡ "+title+" ╞", border.Top)

	return border
}
