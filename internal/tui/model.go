// Package tui is the live dashboard for a running shop: chairs, barbers and
// outcome counters, redrawn on a fixed interval.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Iron-Ham/barbershop/internal/report"
	"github.com/Iron-Ham/barbershop/internal/room"
	"github.com/Iron-Ham/barbershop/internal/tui/styles"
)

// Snapshotter reports the waiting room's current state.
type Snapshotter interface {
	Snapshot() room.Snapshot
}

// Summarizer reports the run's outcome counters.
type Summarizer interface {
	Summary() report.Summary
}

// Options configures the dashboard.
type Options struct {
	Room    Snapshotter
	Tally   Summarizer
	Barbers int
	Refresh time.Duration
	Theme   styles.ThemeName
	// Cancel is called when the user quits, to stop the run.
	Cancel context.CancelFunc
}

const (
	defaultRefresh = 200 * time.Millisecond
	barWidth       = 30
)

// Messages

type tickMsg time.Time

// DoneMsg tells the dashboard that the run has ended.
type DoneMsg struct{}

// Model is the bubbletea model for the dashboard.
type Model struct {
	opts    Options
	styles  *styles.Styles
	spinner spinner.Model
	bar     progress.Model

	snap    room.Snapshot
	summary report.Summary
	done    bool
}

// NewModel creates a dashboard model and takes an initial snapshot.
func NewModel(opts Options) Model {
	if opts.Refresh <= 0 {
		opts.Refresh = defaultRefresh
	}
	st := styles.New(nil, styles.GetPalette(opts.Theme))

	sp := spinner.New(spinner.WithSpinner(spinner.Dot))
	sp.Style = st.Waiting

	m := Model{
		opts:    opts,
		styles:  st,
		spinner: sp,
		bar:     progress.New(progress.WithDefaultGradient(), progress.WithWidth(barWidth), progress.WithoutPercentage()),
	}
	m.refresh()
	return m
}

// Init starts the spinner and the refresh ticker.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.tick())
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.opts.Refresh, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *Model) refresh() {
	if m.opts.Room != nil {
		m.snap = m.opts.Room.Snapshot()
	}
	if m.opts.Tally != nil {
		m.summary = m.opts.Tally.Summary()
	}
}

// Update handles ticks, key presses and the end of the run.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			if m.opts.Cancel != nil {
				m.opts.Cancel()
			}
			m.done = true
			return m, tea.Quit
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.bar.Width = min(barWidth, max(msg.Width-30, 10))
		return m, nil

	case tickMsg:
		m.refresh()
		return m, m.tick()

	case DoneMsg:
		m.refresh()
		m.done = true
		return m, tea.Quit

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View renders the dashboard.
func (m Model) View() string {
	s := m.styles
	var b strings.Builder

	b.WriteString(s.Title.Render("Barbershop"))
	if m.summary.RunID != "" {
		b.WriteString("  " + s.Muted.Render("run "+m.summary.RunID))
	}
	b.WriteString("\n\n")

	b.WriteString(m.renderChairs())
	b.WriteString("\n\n")
	b.WriteString(m.renderBarbers())
	b.WriteString("\n")
	b.WriteString(m.renderCounters())

	view := s.Box.Render(b.String())
	if m.done {
		return view + "\n"
	}
	help := s.HelpKey.Render("q") + " " + s.HelpValue.Render("quit")
	return lipgloss.JoinVertical(lipgloss.Left, view, help) + "\n"
}

func (m Model) renderChairs() string {
	s := m.styles
	taken := len(m.snap.Waiting)

	var percent float64
	if m.snap.Capacity > 0 {
		percent = float64(taken) / float64(m.snap.Capacity)
	}
	header := s.Text.Render(fmt.Sprintf("Chairs %d/%d", taken, m.snap.Capacity)) + "  " + m.bar.ViewAs(percent)
	if m.snap.Capacity == 0 {
		return header + "\n" + s.Muted.Render("(no chairs)")
	}

	chairs := make([]string, 0, m.snap.Capacity)
	for i := range m.snap.Capacity {
		if i < taken {
			chairs = append(chairs, s.ChairTaken.Render(fmt.Sprintf("[%d]", m.snap.Waiting[i])))
		} else {
			chairs = append(chairs, s.ChairFree.Render("[ ]"))
		}
	}
	return header + "\n" + strings.Join(chairs, " ")
}

func (m Model) renderBarbers() string {
	s := m.styles
	lines := make([]string, 0, m.opts.Barbers)
	for id := range m.opts.Barbers {
		if client, ok := m.snap.Busy[id]; ok {
			lines = append(lines, "  "+s.Serving.Render(fmt.Sprintf("Barber %d cutting client %d", id, client)))
			continue
		}
		marker := m.spinner.View()
		if m.done {
			marker = " "
		}
		lines = append(lines, marker+" "+s.Waiting.Render(fmt.Sprintf("Barber %d waiting", id)))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderCounters() string {
	s := m.styles
	sum := m.summary
	return strings.Join([]string{
		s.Text.Render(fmt.Sprintf("arrived %d", sum.Arrived)),
		s.Seated.Render(fmt.Sprintf("seated %d", sum.Seated)),
		s.TurnedAway.Render(fmt.Sprintf("turned away %d", sum.TurnedAway)),
		s.Finished.Render(fmt.Sprintf("served %d", sum.Served)),
	}, "  ")
}
