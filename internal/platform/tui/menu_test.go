package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

func menuSend(m MenuModel, msg tea.Msg) MenuModel {
	next, _ := m.Update(msg)
	return next.(MenuModel)
}

func TestMenuStartsOnInitialPreset(t *testing.T) {
	m := NewMenuModel(config.DifficultyHard, 0, 80, 24)
	m = menuSend(m, tea.KeyMsg{Type: tea.KeyEnter})

	res := m.Result()
	if res.Quit || res.WantsScoreboard {
		t.Fatalf("unexpected result %+v", res)
	}
	if res.Preset != config.DifficultyHard {
		t.Errorf("Preset = %q, want hard", res.Preset)
	}
}

func TestMenuNavigation(t *testing.T) {
	m := NewMenuModel(config.DifficultyNormal, 0, 80, 24)

	m = menuSend(m, tea.KeyMsg{Type: tea.KeyUp})
	m = menuSend(m, tea.KeyMsg{Type: tea.KeyUp}) // clamps at the top
	m = menuSend(m, tea.KeyMsg{Type: tea.KeyEnter})

	if got := m.Result().Preset; got != config.DifficultyEasy {
		t.Errorf("Preset = %q, want easy", got)
	}

	m = NewMenuModel(config.DifficultyNormal, 0, 80, 24)
	for range 5 {
		m = menuSend(m, runeKey('j'))
	}
	m = menuSend(m, tea.KeyMsg{Type: tea.KeyEnter})
	if got := m.Result().Preset; got != config.DifficultyHard {
		t.Errorf("Preset = %q, want hard", got)
	}
}

func TestMenuResults(t *testing.T) {
	tests := []struct {
		name       string
		msg        tea.KeyMsg
		quit       bool
		scoreboard bool
	}{
		{"tab opens scores", tea.KeyMsg{Type: tea.KeyTab}, false, true},
		{"q quits", runeKey('q'), true, false},
		{"esc quits", tea.KeyMsg{Type: tea.KeyEsc}, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := menuSend(NewMenuModel(config.DifficultyNormal, 0, 80, 24), tt.msg)
			res := m.Result()
			if res.Quit != tt.quit || res.WantsScoreboard != tt.scoreboard {
				t.Errorf("Result() = %+v", res)
			}
		})
	}
}

func TestMenuView(t *testing.T) {
	m := NewMenuModel(config.DifficultyNormal, 12, 80, 24)
	view := m.View()
	for _, want := range []string{"F L A P P Y", "Best: 12", "Easy", "Normal", "Hard"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}
