package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"

	"payline/pkg/engine"
	"payline/pkg/schema"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Rules.PositiveExpensesOnly {
		t.Error("Rules.PositiveExpensesOnly = true, want false")
	}
	if cfg.Heuristics.SwapAmountMin != engine.DefaultSwapAmountMin {
		t.Errorf("SwapAmountMin = %v, want %v", cfg.Heuristics.SwapAmountMin, engine.DefaultSwapAmountMin)
	}
	if cfg.Heuristics.SwapRateMax != engine.DefaultSwapRateMax {
		t.Errorf("SwapRateMax = %v, want %v", cfg.Heuristics.SwapRateMax, engine.DefaultSwapRateMax)
	}
	if cfg.Heuristics.BirthDateYear != engine.DefaultBirthDateYear {
		t.Errorf("BirthDateYear = %d, want %d", cfg.Heuristics.BirthDateYear, engine.DefaultBirthDateYear)
	}
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error: %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load(\"\") = %+v, want defaults", cfg)
	}
}

func TestLoadOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "payline.toml")
	body := `
[rules]
positive_expenses_only = true

[heuristics]
swap_amount_min = 250.5
birth_date_year = 2024
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if !cfg.Rules.PositiveExpensesOnly {
		t.Error("Rules.PositiveExpensesOnly = false, want true")
	}
	if cfg.Heuristics.SwapAmountMin != 250.5 {
		t.Errorf("SwapAmountMin = %v, want 250.5", cfg.Heuristics.SwapAmountMin)
	}
	// Unset keys keep their defaults.
	if cfg.Heuristics.SwapRateMax != engine.DefaultSwapRateMax {
		t.Errorf("SwapRateMax = %v, want default %v", cfg.Heuristics.SwapRateMax, engine.DefaultSwapRateMax)
	}
	if cfg.Heuristics.BirthDateYear != 2024 {
		t.Errorf("BirthDateYear = %d, want 2024", cfg.Heuristics.BirthDateYear)
	}
}

func TestLoadExplicitZeroThreshold(t *testing.T) {
	path := filepath.Join(t.TempDir(), "payline.toml")
	body := `
[heuristics]
swap_rate_max = 0.0
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	opts := cfg.EngineOptions()
	if !opts.Heuristics.SwapRateMax.IsZero() {
		t.Errorf("SwapRateMax = %s, want 0", opts.Heuristics.SwapRateMax)
	}
	// The zero ceiling is honored downstream, not coerced to the default.
	if opts.Heuristics.LooksSwapped(schema.CategoryStdHrs, decimal.NewFromInt(448), decimal.NewFromInt(10)) {
		t.Error("explicit zero rate ceiling was replaced by the default")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Error("Load() on a missing file returned nil error")
	}
}

func TestEngineOptions(t *testing.T) {
	cfg := Config{
		Rules: RulesConfig{PositiveExpensesOnly: true},
		Heuristics: HeuristicsConfig{
			SwapAmountMin: 120,
			SwapRateMax:   8.5,
			BirthDateYear: 2023,
		},
	}

	opts := cfg.EngineOptions()
	if !opts.Rules.PositiveExpensesOnly {
		t.Error("Rules.PositiveExpensesOnly = false, want true")
	}
	if !opts.Heuristics.SwapAmountMin.Equal(decimal.NewFromInt(120)) {
		t.Errorf("SwapAmountMin = %s, want 120", opts.Heuristics.SwapAmountMin)
	}
	if !opts.Heuristics.SwapRateMax.Equal(decimal.RequireFromString("8.5")) {
		t.Errorf("SwapRateMax = %s, want 8.5", opts.Heuristics.SwapRateMax)
	}
	if opts.Heuristics.BirthDateYear != 2023 {
		t.Errorf("BirthDateYear = %d, want 2023", opts.Heuristics.BirthDateYear)
	}
}
