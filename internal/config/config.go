package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

type (
	Config struct {
		Language string `json:"language"`
		UseEmoji bool   `json:"use_emoji"`
		PathFile string `json:"path_file"`

		AIConfig    AIConfig                    `json:"ai_config"`
		AIProviders map[string]AIProviderConfig `json:"ai_providers"`

		ActiveVCS  string               `json:"active_vcs,omitempty"` // "github"
		VCSConfigs map[string]VCSConfig `json:"vcs_configs,omitempty"`

		Triage TriageConfig `json:"triage"`
	}

	AIConfig struct {
		// ActiveAI es el proveedor a usar ("gemini")
		ActiveAI AI `json:"active_ai"`

		// Models es el modelo configurado por proveedor
		Models map[AI]Model `json:"models"`

		// BudgetDaily es el presupuesto diario en USD (nil = sin límite)
		BudgetDaily *float64 `json:"budget_daily,omitempty"`

		// SkipCostConfirmation saltea el prompt de confirmación de costo
		SkipCostConfirmation bool `json:"skip_cost_confirmation,omitempty"`
	}

	AIProviderConfig struct {
		APIKey string `json:"api_key,omitempty"`
	}

	VCSConfig struct {
		Owner string `json:"owner,omitempty"`
		Repo  string `json:"repo,omitempty"`
		Token string `json:"token,omitempty"`
	}

	TriageConfig struct {
		// Tool es el binario del tracker que aparece en los comandos generados
		Tool string `json:"tool"`

		// DefaultLabels se agregan a todos los items extraídos
		DefaultLabels []string `json:"default_labels,omitempty"`

		// MaxItems limita la cantidad de items por correo (0 = sin límite)
		MaxItems int `json:"max_items,omitempty"`
	}
)

const (
	defaultLang     = "en"
	defaultUseEmoji = true
	defaultTool     = "gh"
	defaultMaxItems = 10
)

func LoadConfig(path string) (*Config, error) {
	var configPath string

	if filepath.Ext(path) == ".json" {
		configPath = path
	} else {
		configDir := filepath.Join(path, ".mailmate")
		configPath = filepath.Join(configDir, "config.json")

		if _, err := os.Stat(configDir); os.IsNotExist(err) {
			if err := os.MkdirAll(configDir, 0755); err != nil {
				return nil, fmt.Errorf("error al crear el directorio de configuración: %w", err)
			}
		}
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig(configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("error al leer el archivo de configuración: %w", err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("error al decodificar el archivo JSON: %w", err)
	}

	applyDefaults(&config)
	config.PathFile = configPath

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("la configuración cargada no es válida: %w", err)
	}

	return &config, nil
}

func createDefaultConfig(path string) (*Config, error) {
	config := &Config{
		Language: defaultLang,
		UseEmoji: defaultUseEmoji,
		PathFile: path,
		AIConfig: AIConfig{
			ActiveAI: AIGemini,
			Models: map[AI]Model{
				AIGemini: DefaultModelForAI(AIGemini),
			},
		},
		AIProviders: map[string]AIProviderConfig{},
		VCSConfigs:  map[string]VCSConfig{},
		Triage: TriageConfig{
			Tool:     defaultTool,
			MaxItems: defaultMaxItems,
		},
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("error al crear el directorio de configuración: %w", err)
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("error al codificar la configuración por defecto: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return nil, fmt.Errorf("error al guardar la configuración por defecto: %w", err)
	}

	return config, nil
}

func SaveConfig(config *Config) error {
	if err := validateConfig(config); err != nil {
		return fmt.Errorf("la configuración a guardar no es válida: %w", err)
	}

	if config.PathFile == "" {
		return errors.New("la ruta del archivo de configuración no está definida")
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("error al codificar la configuración: %w", err)
	}

	if err := os.WriteFile(config.PathFile, data, 0644); err != nil {
		return fmt.Errorf("error al guardar la configuración: %w", err)
	}

	return nil
}

func applyDefaults(config *Config) {
	if config.Language == "" {
		config.Language = defaultLang
	}
	if config.Triage.Tool == "" {
		config.Triage.Tool = defaultTool
	}
	if config.AIProviders == nil {
		config.AIProviders = map[string]AIProviderConfig{}
	}
	if config.VCSConfigs == nil {
		config.VCSConfigs = map[string]VCSConfig{}
	}
	if config.AIConfig.ActiveAI == "" {
		config.AIConfig.ActiveAI = AIGemini
	}
	if config.AIConfig.Models == nil {
		config.AIConfig.Models = map[AI]Model{AIGemini: DefaultModelForAI(AIGemini)}
	}
}

func validateConfig(config *Config) error {
	if config.Language == "" {
		return errors.New("Language no puede estar vacío")
	}
	if config.Triage.MaxItems < 0 {
		return errors.New("Triage.MaxItems no puede ser negativo")
	}

	if config.ActiveVCS != "" {
		switch config.ActiveVCS {
		case "github":
			vcsCfg, ok := config.VCSConfigs["github"]
			if !ok {
				return errors.New("la configuración de github no existe")
			}
			if vcsCfg.Owner == "" || vcsCfg.Repo == "" {
				return errors.New("github owner/repo no están configurados")
			}
			if vcsCfg.Token == "" {
				return errors.New("github token no está configurado")
			}
		default:
			return fmt.Errorf("proveedor VCS no soportado: %s", config.ActiveVCS)
		}
	}
	return nil
}
