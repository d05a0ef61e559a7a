package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/eggdrop/internal/registry"
	"github.com/vovakirdan/eggdrop/internal/storage"
)

const (
	statsPanelMinWidth = 84 // Narrower screens hide the stats panel
	statsPanelWidth    = 24
	scoreboardRows     = 50
)

type scoreboardKeys struct {
	Up       key.Binding
	Down     key.Binding
	NextMode key.Binding
	PrevMode key.Binding
	Mine     key.Binding
	Back     key.Binding
	Quit     key.Binding
}

func (k scoreboardKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextMode, k.Mine, k.Back, k.Quit}
}

func (k scoreboardKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextMode, k.PrevMode},
		{k.Mine, k.Back, k.Quit},
	}
}

func defaultScoreboardKeys() scoreboardKeys {
	return scoreboardKeys{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		NextMode: key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab", "next mode")),
		PrevMode: key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("S-tab", "prev mode")),
		Mine:     key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "my runs")),
		Back:     key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

var (
	boardTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boardFrameStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	boardTabStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	boardActiveStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Padding(0, 1)
	boardMutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	boardPetStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
)

// ScoreboardModel is the Bubble Tea model for the high score screen.
// Tab cycles modes; m narrows the table to the current player's runs.
type ScoreboardModel struct {
	modes  []registry.GameInfo
	cursor int
	store  *storage.Store
	player string
	mine   bool

	scores []storage.ScoreEntry
	stats  *storage.GameStats
	chests map[string]int

	table table.Model
	help  help.Model
	keys  scoreboardKeys

	width, height int
	quitting      bool
	goingBack     bool
}

// NewScoreboardModel creates a scoreboard. player may be empty, which
// disables the "my runs" filter.
func NewScoreboardModel(store *storage.Store, player string, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		modes:  registry.List(),
		store:  store,
		player: player,
		help:   help.New(),
		keys:   defaultScoreboardKeys(),
		width:  width,
		height: height,
	}
	m.keys.Mine.SetEnabled(player != "")
	m.table = m.newTable()

	if store != nil {
		if tally, err := store.ChestTally(player); err == nil {
			m.chests = tally
		}
	}
	m.reload()
	return m
}

func (m ScoreboardModel) wide() bool {
	return m.width >= statsPanelMinWidth
}

func (m ScoreboardModel) newTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Player", Width: 12},
		{Title: "Score", Width: 7},
		{Title: "Golden", Width: 6},
		{Title: "Stars", Width: 5},
		{Title: "Bombs", Width: 5},
		{Title: "When", Width: 12},
	}

	avail := m.width - 6
	if m.wide() {
		avail -= statsPanelWidth + 4
	}
	used := 0
	for _, c := range columns {
		used += c.Width + 2
	}
	if spare := avail - used; spare > 0 {
		columns[1].Width += min(spare, 12)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// mode returns the mode currently shown, zero when none is registered.
func (m ScoreboardModel) mode() registry.GameInfo {
	if len(m.modes) == 0 {
		return registry.GameInfo{}
	}
	return m.modes[m.cursor]
}

// reload fetches scores and stats for the current mode and filter.
func (m *ScoreboardModel) reload() {
	m.scores, m.stats = nil, nil
	if id := m.mode().ID; m.store != nil && id != "" {
		var err error
		if m.mine {
			m.scores, err = m.store.PlayerScores(id, m.player, scoreboardRows)
		} else {
			m.scores, err = m.store.TopScores(id, scoreboardRows)
		}
		if err != nil {
			m.scores = nil
		}
		if stats, err := m.store.GetGameStats(id); err == nil {
			m.stats = stats
		}
	}

	rows := make([]table.Row, len(m.scores))
	for i, s := range m.scores {
		rows[i] = table.Row{
			strconv.Itoa(i + 1),
			s.Player,
			strconv.Itoa(s.Score),
			strconv.Itoa(s.Stats.GoldenEggs),
			strconv.Itoa(s.Stats.StarsCaught),
			strconv.Itoa(s.Stats.BombsHit),
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func (m *ScoreboardModel) cycle(delta int) {
	if len(m.modes) == 0 {
		return
	}
	m.cursor = (m.cursor + delta + len(m.modes)) % len(m.modes)
	m.reload()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextMode):
			m.cycle(1)
			return m, nil
		case key.Matches(msg, m.keys.PrevMode):
			m.cycle(-1)
			return m, nil
		case key.Matches(msg, m.keys.Mine):
			m.mine = !m.mine
			m.reload()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table = m.newTable()
		m.reload()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	title := "HIGH SCORES"
	if m.mine {
		title = "MY RUNS - " + m.player
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(boardTitleStyle.Render(title), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.tabs(), m.width))
	b.WriteString("\n\n")

	body := boardFrameStyle.Render(m.tableView())
	if m.wide() {
		panel := boardFrameStyle.Width(statsPanelWidth).Render(m.statsView())
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, "  ", panel)
	}
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, body))
	b.WriteString("\n")

	if line := m.petLine(); line != "" {
		b.WriteString(centerText(boardPetStyle.Render(line), m.width))
		b.WriteString("\n")
	}
	b.WriteString(centerText(boardMutedStyle.Render(m.help.View(m.keys)), m.width))
	return b.String()
}

func (m ScoreboardModel) tabs() string {
	tabs := make([]string, len(m.modes))
	for i, g := range m.modes {
		if i == m.cursor {
			tabs[i] = boardActiveStyle.Render(g.Title)
		} else {
			tabs[i] = boardTabStyle.Render(g.Title)
		}
	}
	line := strings.Join(tabs, " ")
	if lipgloss.Width(line) > m.width-4 && len(m.modes) > 0 {
		return boardActiveStyle.Render("< " + m.mode().Title + " >")
	}
	return line
}

func (m ScoreboardModel) tableView() string {
	if len(m.scores) == 0 {
		msg := "No scores recorded yet.\nCatch some eggs to get on the board!"
		if m.mine {
			msg = "You have no runs in this mode yet."
		}
		return boardMutedStyle.Italic(true).Padding(2, 4).Render(msg)
	}
	return m.table.View()
}

// statsView summarises every run of the current mode.
func (m ScoreboardModel) statsView() string {
	if m.stats == nil || m.stats.GamesCount == 0 {
		return boardMutedStyle.Render("No runs yet")
	}
	s := m.stats
	lines := []string{
		boardTitleStyle.Render("Totals"),
		fmt.Sprintf("Runs       %d", s.GamesCount),
		fmt.Sprintf("Best       %d", s.HighScore),
		fmt.Sprintf("Average    %.0f", s.AvgScore),
		"",
		fmt.Sprintf("Golden     %d", s.GoldenEggs),
		fmt.Sprintf("Stars      %d", s.StarsCaught),
		fmt.Sprintf("Bombs hit  %d", s.BombsHit),
		fmt.Sprintf("Rotten hit %d", s.RottenHit),
	}
	if !s.LastPlayed.IsZero() {
		lines = append(lines, "", boardMutedStyle.Render("Last "+s.LastPlayed.Format("Jan 02 15:04")))
	}
	return strings.Join(lines, "\n")
}

// petLine summarises the chests opened, for the player when one is set.
func (m ScoreboardModel) petLine() string {
	total := 0
	for _, n := range m.chests {
		total += n
	}
	if total == 0 {
		return ""
	}
	return fmt.Sprintf("Chests %d  ·  kitsune %d  ·  dragonfly %d  ·  empty %d",
		total, m.chests["pet_kitsune"], m.chests["pet_dragonfly"], m.chests["none"])
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, player string, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewScoreboardModel(store, player, width, height), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
