package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Iron-Ham/barbershop/internal/report"
	"github.com/Iron-Ham/barbershop/internal/room"
)

type fakeRoom struct {
	snap room.Snapshot
}

func (f *fakeRoom) Snapshot() room.Snapshot { return f.snap }

type fakeTally struct {
	sum report.Summary
}

func (f *fakeTally) Summary() report.Summary { return f.sum }

func newTestModel() (Model, *fakeRoom, *fakeTally) {
	r := &fakeRoom{snap: room.Snapshot{Capacity: 3, Busy: map[int]int{}}}
	tl := &fakeTally{sum: report.Summary{RunID: "run-1"}}
	m := NewModel(Options{Room: r, Tally: tl, Barbers: 2, Refresh: time.Millisecond})
	return m, r, tl
}

func TestNewModel_DefaultRefresh(t *testing.T) {
	m := NewModel(Options{Barbers: 1})
	if m.opts.Refresh != defaultRefresh {
		t.Errorf("Refresh = %v, want %v", m.opts.Refresh, defaultRefresh)
	}
}

func TestModel_ViewShowsChairsAndBarbers(t *testing.T) {
	m, r, tl := newTestModel()
	r.snap = room.Snapshot{Capacity: 3, Waiting: []int{4, 5}, Busy: map[int]int{0: 3}}
	tl.sum.Arrived = 6
	tl.sum.TurnedAway = 1

	updated, cmd := m.Update(tickMsg(time.Now()))
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
	view := updated.View()

	for _, want := range []string{
		"Barbershop",
		"run run-1",
		"Chairs 2/3",
		"[4]",
		"[5]",
		"[ ]",
		"Barber 0 cutting client 3",
		"Barber 1 waiting",
		"arrived 6",
		"turned away 1",
		"quit",
	} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q:\n%s", want, view)
		}
	}
}

func TestModel_ViewNoChairs(t *testing.T) {
	m := NewModel(Options{Room: &fakeRoom{snap: room.Snapshot{Busy: map[int]int{}}}, Barbers: 1})
	if view := m.View(); !strings.Contains(view, "(no chairs)") {
		t.Errorf("View() should mention no chairs:\n%s", view)
	}
}

func TestModel_QuitCancelsRun(t *testing.T) {
	tests := []struct {
		name string
		key  tea.KeyMsg
	}{
		{"q", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cancelled := false
			m := NewModel(Options{Barbers: 1, Cancel: func() { cancelled = true }})

			updated, cmd := m.Update(tt.key)
			if !cancelled {
				t.Error("quitting should cancel the run")
			}
			if cmd == nil {
				t.Fatal("quitting should return a command")
			}
			if _, ok := cmd().(tea.QuitMsg); !ok {
				t.Error("quitting should return tea.Quit")
			}
			if !updated.(Model).done {
				t.Error("model should be marked done")
			}
		})
	}
}

func TestModel_OtherKeysIgnored(t *testing.T) {
	cancelled := false
	m := NewModel(Options{Barbers: 1, Cancel: func() { cancelled = true }})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	if cancelled || cmd != nil {
		t.Error("unbound keys should do nothing")
	}
}

func TestModel_DoneQuitsWithFinalSnapshot(t *testing.T) {
	m, _, tl := newTestModel()
	tl.sum.Served = 9

	updated, cmd := m.Update(DoneMsg{})
	if cmd == nil {
		t.Fatal("DoneMsg should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("DoneMsg should quit")
	}
	view := updated.View()
	if !strings.Contains(view, "served 9") {
		t.Errorf("final view should show the last counters:\n%s", view)
	}
	if strings.Contains(view, "quit") {
		t.Errorf("final view should not show help:\n%s", view)
	}
}

func TestModel_WindowResizeShrinksBar(t *testing.T) {
	m, _, _ := newTestModel()
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 35, Height: 20})
	if got := updated.(Model).bar.Width; got != 10 {
		t.Errorf("bar width = %d, want 10", got)
	}
}
