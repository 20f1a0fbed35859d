package pages

import (
	"os"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/leighmacdonald/agri-tui/internal/ui/command"
	"github.com/leighmacdonald/agri-tui/internal/ui/input"
	"github.com/leighmacdonald/agri-tui/internal/ui/model"
	"github.com/leighmacdonald/agri-tui/internal/ui/styles"
)

func NewHelp(buildVersion, buildDate, buildCommit string, configPath string, logPath string) Help {
	return Help{
		helpView:     help.New(),
		configPath:   configPath,
		logPath:      logPath,
		buildVersion: buildVersion,
		buildDate:    buildDate,
		buildCommit:  buildCommit,
	}
}

type Help struct {
	helpView     help.Model
	viewState    model.ViewState
	configPath   string
	logPath      string
	buildVersion string
	buildDate    string
	buildCommit  string
}

func (m Help) Init() tea.Cmd {
	return nil
}

func (m Help) Update(msg tea.Msg) (Help, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.viewState.Page == model.PageHelp && key.Matches(msg, input.Default.Back) {
			// go back to whatever was open before
			return m, command.ToggleHelp()
		}
	case model.ViewState:
		m.viewState = msg
	}

	return m, nil
}

// logDetails describes the current size and last write of the log file.
func (m Help) logDetails() string {
	info, err := os.Stat(m.logPath)
	if err != nil {
		return "not created"
	}

	return humanize.Bytes(uint64(info.Size())) + ", updated " + humanize.Time(info.ModTime()) //nolint:gosec
}

func (m Help) View() string {
	left := m.helpView.FullHelpView([][]key.Binding{
		{
			input.Default.Quit,
			input.Default.Help,
			input.Default.Accept,
			input.Default.Pick,
			input.Default.Close,
			input.Default.Back,
			input.Default.Home,
		},
	})

	right := m.helpView.FullHelpView([][]key.Binding{
		{
			input.Default.NextItem,
			input.Default.PrevItem,
			input.Default.Up,
			input.Default.Down,
			input.Default.Left,
			input.Default.Right,
			input.Default.PageUp,
			input.Default.PageDown,
		},
	})

	helpContent := lipgloss.JoinHorizontal(lipgloss.Top, styles.HelpBox.Render(left), styles.HelpBox.Render(right))

	commit := m.buildCommit
	//goland:noinspection GoBoolExpressions
	if len(commit) > 8 {
		commit = m.buildCommit[0:8]
	}

	content := lipgloss.JoinVertical(lipgloss.Center, helpContent,
		styles.DetailRow("Version", m.buildVersion),
		styles.DetailRow("Commit", commit),
		styles.DetailRow("Date", m.buildDate),
		styles.DetailRow("Config Path", m.configPath),
		styles.DetailRow("Log Path", m.logPath),
		styles.DetailRow("Log File", m.logDetails()),
	)

	return lipgloss.Place(max(m.viewState.Width, lipgloss.Width(content)), max(m.viewState.Body, lipgloss.Height(content)),
		lipgloss.Center, lipgloss.Center, content)
}
