// Package config loads the TOML rule and heuristic settings. Every field has
// a working default; a config file only needs to name what it changes.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/shopspring/decimal"

	"payline/pkg/engine"
)

// Config is the on-disk settings shape.
type Config struct {
	Rules      RulesConfig      `toml:"rules"`
	Heuristics HeuristicsConfig `toml:"heuristics"`
}

// RulesConfig selects the canonical line-generation rule variant.
type RulesConfig struct {
	PositiveExpensesOnly bool `toml:"positive_expenses_only"`
}

// HeuristicsConfig tunes the reconciliation pattern checks.
type HeuristicsConfig struct {
	SwapAmountMin float64 `toml:"swap_amount_min"`
	SwapRateMax   float64 `toml:"swap_rate_max"`
	BirthDateYear int     `toml:"birth_date_year"`
}

// Default returns the built-in settings: signed expenses emit lines, and the
// heuristic thresholds sit at the engine defaults.
func Default() Config {
	return Config{
		Heuristics: HeuristicsConfig{
			SwapAmountMin: engine.DefaultSwapAmountMin,
			SwapRateMax:   engine.DefaultSwapRateMax,
			BirthDateYear: engine.DefaultBirthDateYear,
		},
	}
}

// Load reads a TOML config file over the defaults. An empty path returns the
// defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to load config %s: %w", path, err)
	}
	return cfg, nil
}

// EngineOptions maps the settings onto the engine's option types.
func (c Config) EngineOptions() engine.Options {
	return engine.Options{
		Rules: engine.Rules{PositiveExpensesOnly: c.Rules.PositiveExpensesOnly},
		Heuristics: engine.Heuristics{
			SwapAmountMin: decimal.NewFromFloat(c.Heuristics.SwapAmountMin),
			SwapRateMax:   decimal.NewFromFloat(c.Heuristics.SwapRateMax),
			BirthDateYear: c.Heuristics.BirthDateYear,
		},
	}
}
