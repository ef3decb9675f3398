package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/roadrush/internal/games/road"
	"github.com/vovakirdan/roadrush/internal/storage"
)

func TestScoreboardShowsScores(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	defer store.Close()

	for _, s := range []int{3, 11, 7} {
		_, err := store.SaveScore(road.ID, uuid.New(), s)
		require.NoError(t, err)
	}

	m := NewScoreboardModel(store, 100, 30)
	require.Len(t, m.scores, 3)
	assert.Equal(t, 11, m.scores[0].Score)

	view := m.View()
	assert.Contains(t, view, "HIGH SCORES")
	assert.Contains(t, view, "3 runs")
	assert.Contains(t, view, "best 11")
}

func TestScoreboardEmpty(t *testing.T) {
	m := NewScoreboardModel(nil, 80, 24)
	assert.Contains(t, m.View(), "No scores recorded yet.")
}

func TestScoreboardQuit(t *testing.T) {
	m := NewScoreboardModel(nil, 80, 24)
	next, cmd := m.Update(runeKey("q"))
	require.NotNil(t, cmd)
	assert.Empty(t, next.View())
}

func TestScoreRows(t *testing.T) {
	id := uuid.MustParse("0190a6f4-5b3c-7d2e-8f10-123456789abc")
	rows := ScoreRows([]storage.ScoreEntry{{RunID: id, Score: 42}}, false)

	require.Len(t, rows, 1)
	assert.Equal(t, "#1", rows[0][0])
	assert.Equal(t, "42", rows[0][1])
	assert.Equal(t, "0190a6f4", rows[0][2])

	full := ScoreRows([]storage.ScoreEntry{{RunID: id, Score: 42}}, true)
	assert.Equal(t, id.String(), full[0][2])
}

var _ tea.Model = ScoreboardModel{}
