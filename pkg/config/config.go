// Package config provides hierarchical configuration management.
// Priority: defaults < user < project < env < flags
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"gopkg.in/yaml.v3"
)

// Config holds all textflow configuration.
type Config struct {
	Version int `yaml:"version"`

	Report ReportConfig `yaml:"report"`
	Scan   ScanConfig   `yaml:"scan"`
}

// ReportConfig controls where results are written and how the console copy
// is rendered.
type ReportConfig struct {
	Dir            string `yaml:"dir"`             // directory for results files
	StatisticsFile string `yaml:"statistics_file"` // statistics mode results filename
	ConversionFile string `yaml:"conversion_file"` // conversion mode results filename
	WordCountFile  string `yaml:"wordcount_file"`  // word count mode results filename
	ConsoleLimit   int    `yaml:"console_limit"`   // max conversions echoed to the console
}

// ScanConfig controls input reading.
type ScanConfig struct {
	BufferSize int `yaml:"buffer_size"` // initial read buffer size in bytes
}

// Default returns the default configuration. The results filenames match the
// historical fixed names of the three tools.
func Default() *Config {
	return &Config{
		Version: 1,
		Report: ReportConfig{
			Dir:            ".",
			StatisticsFile: "StatisticsResults.txt",
			ConversionFile: "ConvertionResults.txt",
			WordCountFile:  "WordCountResults.txt",
			ConsoleLimit:   15,
		},
		Scan: ScanConfig{
			BufferSize: 64 * 1024,
		},
	}
}

// StatisticsPath returns the full path of the statistics results file.
func (c *Config) StatisticsPath() string {
	return filepath.Join(c.Report.Dir, c.Report.StatisticsFile)
}

// ConversionPath returns the full path of the conversion results file.
func (c *Config) ConversionPath() string {
	return filepath.Join(c.Report.Dir, c.Report.ConversionFile)
}

// WordCountPath returns the full path of the word count results file.
func (c *Config) WordCountPath() string {
	return filepath.Join(c.Report.Dir, c.Report.WordCountFile)
}

// Manager handles configuration loading and merging.
type Manager struct {
	mu     sync.RWMutex
	config *Config
	paths  []string // paths that were loaded
}

// NewManager creates a new configuration manager.
func NewManager() *Manager {
	return &Manager{config: Default()}
}

// Load loads configuration from all sources in priority order.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.config = Default()

	for _, path := range m.configPaths() {
		if err := m.loadFile(path); err != nil {
			if !os.IsNotExist(err) {
				return err
			}
		} else {
			m.paths = append(m.paths, path)
		}
	}

	m.loadEnv()
	return nil
}

// configPaths returns config file paths in priority order.
func (m *Manager) configPaths() []string {
	var paths []string

	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".textflow", "config.yaml"))
	}

	if cwd, err := os.Getwd(); err == nil {
		paths = append(paths, filepath.Join(cwd, ".textflow.yaml"))
	}

	return paths
}

// loadFile loads a single config file and merges it.
func (m *Manager) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var partial Config
	if err := yaml.Unmarshal(data, &partial); err != nil {
		return err
	}

	m.merge(&partial)
	return nil
}

// merge merges non-zero values from src into config.
func (m *Manager) merge(src *Config) {
	if src.Report.Dir != "" {
		m.config.Report.Dir = src.Report.Dir
	}
	if src.Report.StatisticsFile != "" {
		m.config.Report.StatisticsFile = src.Report.StatisticsFile
	}
	if src.Report.ConversionFile != "" {
		m.config.Report.ConversionFile = src.Report.ConversionFile
	}
	if src.Report.WordCountFile != "" {
		m.config.Report.WordCountFile = src.Report.WordCountFile
	}
	if src.Report.ConsoleLimit != 0 {
		m.config.Report.ConsoleLimit = src.Report.ConsoleLimit
	}
	if src.Scan.BufferSize != 0 {
		m.config.Scan.BufferSize = src.Scan.BufferSize
	}
}

// loadEnv loads configuration from environment variables.
func (m *Manager) loadEnv() {
	if v := os.Getenv("TEXTFLOW_RESULTS_DIR"); v != "" {
		m.config.Report.Dir = v
	}

	if v := os.Getenv("TEXTFLOW_CONSOLE_LIMIT"); v != "" {
		if limit, err := strconv.Atoi(v); err == nil && limit > 0 {
			m.config.Report.ConsoleLimit = limit
		}
	}

	if v := os.Getenv("TEXTFLOW_SCAN_BUFFER"); v != "" {
		if size, err := strconv.Atoi(v); err == nil && size > 0 {
			m.config.Scan.BufferSize = size
		}
	}
}

// Get returns the current configuration.
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.config
}

// GetPaths returns the paths that were loaded.
func (m *Manager) GetPaths() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.paths
}
