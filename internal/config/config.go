package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	defaultConfigName = ".cbench"
	defaultConfigDir  = ".cbench"
	defaultFormat     = "text"
)

// DefaultPath returns where Save writes when no file was given or found
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, defaultConfigDir, defaultConfigName+".yaml"), nil
}

// Manager handles cbench configuration
type Manager struct {
	configPath string
	config     *BenchConfig
	viper      *viper.Viper
}

// NewManager creates a new configuration manager. An empty path searches
// ~/.cbench/.cbench.yaml and ~/.cbench.yaml.
func NewManager(configPath string) *Manager {
	return &Manager{
		configPath: configPath,
		viper:      viper.New(),
		config:     &BenchConfig{},
	}
}

// Load loads and validates the configuration from file.
// A missing file is not an error; defaults are returned instead.
func (m *Manager) Load() (*BenchConfig, error) {
	if m.configPath != "" {
		m.viper.SetConfigFile(m.configPath)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}

		m.viper.AddConfigPath(filepath.Join(home, defaultConfigDir))
		m.viper.AddConfigPath(home)
		m.viper.SetConfigName(defaultConfigName)
		m.viper.SetConfigType("yaml")
	}

	m.viper.SetEnvPrefix("CBENCH")
	m.viper.AutomaticEnv()

	m.config = &BenchConfig{}

	if err := m.viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		m.applyDefaults()
		return m.config, nil
	}

	if err := m.viper.Unmarshal(m.config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	m.applyDefaults()

	if err := m.config.Validate(); err != nil {
		return nil, fmt.Errorf("config file %s: %w", m.viper.ConfigFileUsed(), err)
	}

	return m.config, nil
}

// Save writes the current configuration to file
func (m *Manager) Save() error {
	if m.configPath == "" {
		m.configPath = m.viper.ConfigFileUsed()
	}
	if m.configPath == "" {
		path, err := DefaultPath()
		if err != nil {
			return err
		}
		m.configPath = path
	}

	if err := os.MkdirAll(filepath.Dir(m.configPath), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	m.viper.Set("defaults", m.config.Defaults)
	m.viper.Set("benchmarks", m.config.Benchmarks)

	if err := m.viper.WriteConfigAs(m.configPath); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// GetConfig returns the current configuration
func (m *Manager) GetConfig() *BenchConfig {
	return m.config
}

// ConfigFileUsed returns the path of the loaded file, empty when none was found
func (m *Manager) ConfigFileUsed() string {
	return m.viper.ConfigFileUsed()
}

// GetBenchmark returns the benchmark with the given name
func (m *Manager) GetBenchmark(name string) (*BenchmarkConfig, bool) {
	for i := range m.config.Benchmarks {
		if m.config.Benchmarks[i].Name == name {
			b := m.config.Benchmarks[i]
			return &b, true
		}
	}
	return nil, false
}

// SetBenchmark adds a benchmark or replaces the one with the same name
func (m *Manager) SetBenchmark(b BenchmarkConfig) error {
	if err := b.Validate(); err != nil {
		return err
	}

	for i := range m.config.Benchmarks {
		if m.config.Benchmarks[i].Name == b.Name {
			m.config.Benchmarks[i] = b
			return nil
		}
	}

	m.config.Benchmarks = append(m.config.Benchmarks, b)
	return nil
}

// RemoveBenchmark removes a benchmark by name and reports whether it existed
func (m *Manager) RemoveBenchmark(name string) bool {
	for i := range m.config.Benchmarks {
		if m.config.Benchmarks[i].Name == name {
			m.config.Benchmarks = append(m.config.Benchmarks[:i], m.config.Benchmarks[i+1:]...)
			return true
		}
	}
	return false
}

// SelectBenchmarks returns the benchmarks matching names in declared order.
// No names selects everything. Unknown names are an error.
func (m *Manager) SelectBenchmarks(names []string) ([]BenchmarkConfig, error) {
	if len(names) == 0 {
		out := make([]BenchmarkConfig, len(m.config.Benchmarks))
		copy(out, m.config.Benchmarks)
		return out, nil
	}

	wanted := make(map[string]bool, len(names))
	for _, n := range names {
		if _, ok := m.GetBenchmark(n); !ok {
			return nil, fmt.Errorf("benchmark %q not found in configuration", n)
		}
		wanted[n] = true
	}

	selected := make([]BenchmarkConfig, 0, len(names))
	for _, b := range m.config.Benchmarks {
		if wanted[b.Name] {
			selected = append(selected, b)
		}
	}
	return selected, nil
}

// applyDefaults sets default values for configuration
func (m *Manager) applyDefaults() {
	if m.config == nil {
		return
	}

	if m.config.Defaults.OutputFormat == "" {
		m.config.Defaults.OutputFormat = defaultFormat
	}
}
