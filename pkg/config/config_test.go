package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Report.StatisticsFile != "StatisticsResults.txt" {
		t.Errorf("StatisticsFile = %q", cfg.Report.StatisticsFile)
	}
	if cfg.Report.ConversionFile != "ConvertionResults.txt" {
		t.Errorf("ConversionFile = %q", cfg.Report.ConversionFile)
	}
	if cfg.Report.WordCountFile != "WordCountResults.txt" {
		t.Errorf("WordCountFile = %q", cfg.Report.WordCountFile)
	}
	if cfg.Report.ConsoleLimit != 15 {
		t.Errorf("ConsoleLimit = %d, want 15", cfg.Report.ConsoleLimit)
	}
	if cfg.Scan.BufferSize != 64*1024 {
		t.Errorf("BufferSize = %d, want 65536", cfg.Scan.BufferSize)
	}
}

func TestResultPaths(t *testing.T) {
	cfg := Default()
	cfg.Report.Dir = "out"

	if got := cfg.StatisticsPath(); got != filepath.Join("out", "StatisticsResults.txt") {
		t.Errorf("StatisticsPath = %q", got)
	}
	if got := cfg.ConversionPath(); got != filepath.Join("out", "ConvertionResults.txt") {
		t.Errorf("ConversionPath = %q", got)
	}
	if got := cfg.WordCountPath(); got != filepath.Join("out", "WordCountResults.txt") {
		t.Errorf("WordCountPath = %q", got)
	}
}

func TestMerge(t *testing.T) {
	m := NewManager()
	m.merge(&Config{
		Report: ReportConfig{Dir: "elsewhere", ConsoleLimit: 5},
	})

	cfg := m.Get()
	if cfg.Report.Dir != "elsewhere" {
		t.Errorf("Dir = %q, want elsewhere", cfg.Report.Dir)
	}
	if cfg.Report.ConsoleLimit != 5 {
		t.Errorf("ConsoleLimit = %d, want 5", cfg.Report.ConsoleLimit)
	}
	// Zero values must not clobber defaults.
	if cfg.Report.StatisticsFile != "StatisticsResults.txt" {
		t.Errorf("StatisticsFile = %q, want default preserved", cfg.Report.StatisticsFile)
	}
	if cfg.Scan.BufferSize != 64*1024 {
		t.Errorf("BufferSize = %d, want default preserved", cfg.Scan.BufferSize)
	}
}

func TestLoadFile(t *testing.T) {
	m := NewManager()
	path := filepath.Join(t.TempDir(), "config.yaml")
	writeFile(t, path, "report:\n  console_limit: 3\n  wordcount_file: words.txt\n")

	if err := m.loadFile(path); err != nil {
		t.Fatalf("loadFile() error: %v", err)
	}

	cfg := m.Get()
	if cfg.Report.ConsoleLimit != 3 {
		t.Errorf("ConsoleLimit = %d, want 3", cfg.Report.ConsoleLimit)
	}
	if cfg.Report.WordCountFile != "words.txt" {
		t.Errorf("WordCountFile = %q, want words.txt", cfg.Report.WordCountFile)
	}
	if cfg.Report.ConversionFile != "ConvertionResults.txt" {
		t.Errorf("ConversionFile = %q, want default preserved", cfg.Report.ConversionFile)
	}
}

func TestLoadFileInvalidYAML(t *testing.T) {
	m := NewManager()
	path := filepath.Join(t.TempDir(), "config.yaml")
	writeFile(t, path, "report: [not a mapping\n")

	if err := m.loadFile(path); err == nil {
		t.Error("loadFile() succeeded on malformed YAML")
	}
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("TEXTFLOW_RESULTS_DIR", "/tmp/results")
	t.Setenv("TEXTFLOW_CONSOLE_LIMIT", "9")
	t.Setenv("TEXTFLOW_SCAN_BUFFER", "1024")

	m := NewManager()
	m.loadEnv()

	cfg := m.Get()
	if cfg.Report.Dir != "/tmp/results" {
		t.Errorf("Dir = %q", cfg.Report.Dir)
	}
	if cfg.Report.ConsoleLimit != 9 {
		t.Errorf("ConsoleLimit = %d, want 9", cfg.Report.ConsoleLimit)
	}
	if cfg.Scan.BufferSize != 1024 {
		t.Errorf("BufferSize = %d, want 1024", cfg.Scan.BufferSize)
	}
}

func TestLoadEnvIgnoresGarbage(t *testing.T) {
	t.Setenv("TEXTFLOW_CONSOLE_LIMIT", "not-a-number")

	m := NewManager()
	m.loadEnv()

	if got := m.Get().Report.ConsoleLimit; got != 15 {
		t.Errorf("ConsoleLimit = %d, want default 15", got)
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}
