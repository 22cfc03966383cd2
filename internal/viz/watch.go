package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/lifesim/internal/analysis"
	"github.com/san-kum/lifesim/internal/life"
)

const (
	historyCapacity = 600
	minDelay        = 10 * time.Millisecond
	maxDelay        = 2 * time.Second
	defaultDelay    = 100 * time.Millisecond
)

var (
	sideStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(0, 2).Width(36)
	gridStyle  = lipgloss.NewStyle().Padding(0, 1)
	graphStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
)

type TickMsg time.Time

// Model is the live grid viewer.
type Model struct {
	name       string
	initial    *life.Grid
	grid       *life.Grid
	prev       *life.Grid
	generation int
	running    bool
	delay      time.Duration
	seed       int64
	density    float64
	theme      Theme
	braille    bool
	population []float64
	entropy    []float64
	err        error
}

// NewModel starts the viewer from a copy of g. seed and density drive the
// random reseed key.
func NewModel(name string, g *life.Grid, seed int64, density float64) Model {
	m := Model{
		name:    name,
		initial: g.Clone(),
		running: true,
		delay:   defaultDelay,
		seed:    seed,
		density: density,
		theme:   Themes[0],
		braille: g.Cols() > 100 || g.Rows() > 60,
	}
	m.reset()
	return m
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.delay, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd { return m.tick() }

// Update handles key presses and advances the grid on each tick.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "n":
			if !m.running {
				m.step()
			}
		case "r":
			m.reset()
		case "x":
			m.reseed()
		case "+", "=":
			m.delay = max(m.delay/2, minDelay)
		case "-", "_":
			m.delay = min(m.delay*2, maxDelay)
		case "t":
			m.theme = NextTheme(m.theme)
		case "b":
			m.braille = !m.braille
		}
	case TickMsg:
		if m.running {
			m.step()
		}
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) step() {
	next, err := life.Step(m.grid)
	if err != nil {
		m.err = err
		m.running = false
		return
	}
	m.prev, m.grid = m.grid, next
	m.generation++
	m.record()
}

func (m *Model) record() {
	m.population = append(m.population, float64(m.grid.Population()))
	m.entropy = append(m.entropy, analysis.Entropy(m.grid))
	if len(m.population) > historyCapacity {
		m.population = m.population[1:]
		m.entropy = m.entropy[1:]
	}
}

func (m *Model) reset() {
	m.grid = m.initial.Clone()
	m.prev = nil
	m.generation = 0
	m.err = nil
	m.population = m.population[:0]
	m.entropy = m.entropy[:0]
	m.record()
}

// reseed replaces the start grid with a fresh random fill of the same size.
func (m *Model) reseed() {
	m.seed++
	g, err := life.Random(m.initial.Rows(), m.initial.Cols(), m.seed, m.density)
	if err != nil {
		m.err = err
		return
	}
	m.initial = g
	m.reset()
}

// Stable reports whether the last step left the grid unchanged.
func (m Model) Stable() bool {
	return m.prev != nil && m.prev.Equal(m.grid)
}

func (m Model) Generation() int { return m.generation }

func (m Model) Grid() *life.Grid { return m.grid }

func (m Model) Running() bool { return m.running }

func (m Model) Delay() time.Duration { return m.delay }

// View renders the grid beside a stats panel.
func (m Model) View() string {
	var gridView string
	if m.braille {
		gridView = RenderBraille(m.grid, m.theme)
	} else {
		gridView = RenderGrid(m.grid, m.theme)
	}

	var s strings.Builder
	s.WriteString(Title.Render(strings.ToUpper(m.name)) + "\n")
	switch {
	case m.err != nil:
		s.WriteString(StatusStable.Render("ERROR: "+m.err.Error()) + "\n\n")
	case m.Stable():
		s.WriteString(StatusStable.Render("STABLE") + "\n\n")
	case m.running:
		s.WriteString(StatusRunning.Render("RUNNING") + "\n\n")
	default:
		s.WriteString(StatusPaused.Render("PAUSED") + "\n\n")
	}

	row := func(label, value string) {
		s.WriteString(MetricLabel.Render(label) + MetricValue.Render(value) + "\n")
	}
	row("Generation", fmt.Sprintf("%d", m.generation))
	row("Population", fmt.Sprintf("%d", m.grid.Population()))
	row("Entropy", fmt.Sprintf("%.3f", m.entropy[len(m.entropy)-1]))
	row("Delay", m.delay.String())
	row("Theme", m.theme.Name)

	if len(m.population) > 1 {
		s.WriteString(graphStyle.Render(SeriesChart(m.population, "population", 28, 4)) + "\n")
	}

	s.WriteString(KeyHint.Render("\nSP:Pause N:Step R:Reset X:Random\n+/-:Speed T:Theme B:Braille Q:Quit"))

	return lipgloss.JoinHorizontal(lipgloss.Top, gridStyle.Render(gridView), sideStyle.Render(s.String()))
}

// RunWatch opens the viewer in the alternate screen and blocks until the
// user quits.
func RunWatch(name string, g *life.Grid, seed int64, density float64) error {
	p := tea.NewProgram(NewModel(name, g, seed, density), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
