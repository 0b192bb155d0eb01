package cost

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

type ActivityRecord struct {
	Timestamp    time.Time `json:"timestamp"`
	Command      string    `json:"command"`
	Provider     string    `json:"provider"`
	Model        string    `json:"model"`
	TokensInput  int       `json:"tokens_input"`
	TokensOutput int       `json:"tokens_output"`
	CostUSD      float64   `json:"cost_usd"`
	DurationMs   int64     `json:"duration_ms"`
	CacheHit     bool      `json:"cache_hit"`
	Hash         string    `json:"hash"`
}

type BudgetStatus struct {
	IsExceeded  bool
	PercentUsed float64
	TodayTotal  float64
	Estimated   float64
	Limit       float64
}

type Manager struct {
	historyPath string
	budgetDaily float64
}

func NewManager(budgetDaily float64) (*Manager, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("error getting home directory: %w", err)
	}

	mailmateDir := filepath.Join(homeDir, ".mailmate")
	if err := os.MkdirAll(mailmateDir, 0755); err != nil {
		return nil, fmt.Errorf("error creating .mailmate directory: %w", err)
	}

	return &Manager{
		historyPath: filepath.Join(mailmateDir, "history.json"),
		budgetDaily: budgetDaily,
	}, nil
}

// NewManagerWithPath crea un manager con una ruta de historial explícita. Lo usan los tests.
func NewManagerWithPath(historyPath string, budgetDaily float64) *Manager {
	return &Manager{
		historyPath: historyPath,
		budgetDaily: budgetDaily,
	}
}

// SaveActivity saves an activity record
func (m *Manager) SaveActivity(record ActivityRecord) error {
	slog.Debug("saving activity record",
		"command", record.Command,
		"provider", record.Provider,
		"model", record.Model,
		"tokens_input", record.TokensInput,
		"tokens_output", record.TokensOutput,
		"cost_usd", record.CostUSD,
		"cache_hit", record.CacheHit)

	records, err := m.loadHistory()
	if err != nil {
		records = []ActivityRecord{}
	}

	records = append(records, record)

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("error serializing history: %w", err)
	}

	if err := os.WriteFile(m.historyPath, data, 0644); err != nil {
		return fmt.Errorf("error saving history: %w", err)
	}

	return nil
}

// CheckBudget checks if the estimated cost exceeds the daily budget.
// A zero budget means unlimited.
func (m *Manager) CheckBudget(estimatedCost float64) (*BudgetStatus, error) {
	if m.budgetDaily <= 0 {
		return &BudgetStatus{Estimated: estimatedCost}, nil
	}

	todayTotal, err := m.GetDailyTotal()
	if err != nil {
		return nil, err
	}

	status := &BudgetStatus{
		TodayTotal:  todayTotal,
		Estimated:   estimatedCost,
		Limit:       m.budgetDaily,
		PercentUsed: (todayTotal + estimatedCost) / m.budgetDaily * 100,
	}

	if todayTotal+estimatedCost > m.budgetDaily {
		status.IsExceeded = true
		return status, fmt.Errorf("el costo estimado ($%.4f) supera el presupuesto diario restante ($%.4f de $%.4f)",
			estimatedCost, m.budgetDaily-todayTotal, m.budgetDaily)
	}

	return status, nil
}

// GetDailyTotal returns the total cost of today's activity
func (m *Manager) GetDailyTotal() (float64, error) {
	records, err := m.loadHistory()
	if err != nil {
		return 0, nil
	}

	today := time.Now().Format("2006-01-02")
	var total float64
	for _, r := range records {
		if r.Timestamp.Format("2006-01-02") == today {
			total += r.CostUSD
		}
	}
	return total, nil
}

// GetMonthlyTotal returns the total cost of the current month's activity
func (m *Manager) GetMonthlyTotal() (float64, error) {
	records, err := m.loadHistory()
	if err != nil {
		return 0, nil
	}

	month := time.Now().Format("2006-01")
	var total float64
	for _, r := range records {
		if r.Timestamp.Format("2006-01") == month {
			total += r.CostUSD
		}
	}
	return total, nil
}

// GetHistory returns every recorded activity
func (m *Manager) GetHistory() ([]ActivityRecord, error) {
	return m.loadHistory()
}

func (m *Manager) loadHistory() ([]ActivityRecord, error) {
	data, err := os.ReadFile(m.historyPath)
	if err != nil {
		if os.IsNotExist(err) {
			return []ActivityRecord{}, nil
		}
		return nil, fmt.Errorf("error reading history: %w", err)
	}

	var records []ActivityRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("error parsing history: %w", err)
	}

	return records, nil
}
