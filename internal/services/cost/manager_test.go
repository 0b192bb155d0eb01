package cost

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T, budget float64) *Manager {
	return NewManagerWithPath(filepath.Join(t.TempDir(), "history.json"), budget)
}

func TestSaveActivityAndHistory(t *testing.T) {
	manager := newTestManager(t, 0)

	record := ActivityRecord{
		Timestamp:    time.Now(),
		Command:      "triage",
		Provider:     "gemini",
		Model:        "gemini-2.5-flash",
		TokensInput:  100,
		TokensOutput: 50,
		CostUSD:      0.0012,
	}

	require.NoError(t, manager.SaveActivity(record))
	require.NoError(t, manager.SaveActivity(record))

	history, err := manager.GetHistory()
	assert.NoError(t, err)
	assert.Len(t, history, 2)
	assert.Equal(t, "triage", history[0].Command)
}

func TestGetDailyTotal(t *testing.T) {
	manager := newTestManager(t, 0)

	require.NoError(t, manager.SaveActivity(ActivityRecord{
		Timestamp: time.Now(),
		Command:   "triage",
		CostUSD:   0.01,
	}))
	require.NoError(t, manager.SaveActivity(ActivityRecord{
		Timestamp: time.Now().AddDate(0, 0, -2),
		Command:   "triage",
		CostUSD:   5.00,
	}))

	total, err := manager.GetDailyTotal()
	assert.NoError(t, err)
	assert.InDelta(t, 0.01, total, 0.0001)
}

func TestCheckBudget(t *testing.T) {
	t.Run("zero budget means unlimited", func(t *testing.T) {
		manager := newTestManager(t, 0)

		status, err := manager.CheckBudget(100.0)
		assert.NoError(t, err)
		assert.False(t, status.IsExceeded)
	})

	t.Run("within budget", func(t *testing.T) {
		manager := newTestManager(t, 1.0)
		require.NoError(t, manager.SaveActivity(ActivityRecord{
			Timestamp: time.Now(),
			CostUSD:   0.50,
		}))

		status, err := manager.CheckBudget(0.25)
		assert.NoError(t, err)
		assert.False(t, status.IsExceeded)
		assert.InDelta(t, 75.0, status.PercentUsed, 0.1)
	})

	t.Run("exceeding the budget fails", func(t *testing.T) {
		manager := newTestManager(t, 1.0)
		require.NoError(t, manager.SaveActivity(ActivityRecord{
			Timestamp: time.Now(),
			CostUSD:   0.90,
		}))

		status, err := manager.CheckBudget(0.50)
		assert.Error(t, err)
		assert.True(t, status.IsExceeded)
	})
}

func TestGetMonthlyTotal(t *testing.T) {
	manager := newTestManager(t, 0)

	require.NoError(t, manager.SaveActivity(ActivityRecord{
		Timestamp: time.Now(),
		CostUSD:   0.10,
	}))
	require.NoError(t, manager.SaveActivity(ActivityRecord{
		Timestamp: time.Now().AddDate(0, -2, 0),
		CostUSD:   3.00,
	}))

	total, err := manager.GetMonthlyTotal()
	assert.NoError(t, err)
	assert.InDelta(t, 0.10, total, 0.0001)
}

func TestHistoryMissingFile(t *testing.T) {
	manager := newTestManager(t, 0)

	history, err := manager.GetHistory()
	assert.NoError(t, err)
	assert.Empty(t, history)
}
