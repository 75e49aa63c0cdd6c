// Package config provides configuration management for the quinex CLI/REPL.
// Configuration is loaded from TOML files with embedded defaults.
package config

// Config is the root configuration structure.
type Config struct {
	Parser    ParserConfig    `mapstructure:"parser"`
	Currency  CurrencyConfig  `mapstructure:"currency"`
	REPL      REPLConfig      `mapstructure:"repl"`
	Formatter FormatterConfig `mapstructure:"formatter"`
}

// ParserConfig holds defaults applied to every Parse call unless a caller
// overrides them explicitly.
type ParserConfig struct {
	// ErrorIfNoSuccess promotes a soft parse failure to a returned error.
	ErrorIfNoSuccess bool `mapstructure:"error_if_no_success"`
	// Simplify collapses pre/post-unit uncertainty slots into one field.
	Simplify bool `mapstructure:"simplify"`
	// DefaultGroupExponent is the grouping exponent passed to ParseUnit
	// when a caller does not supply one (spec.md §5.2).
	DefaultGroupExponent int `mapstructure:"default_group_exponent"`
}

// CurrencyConfig configures the currency conversion service used by
// Convert when a quantity's unit resolves to a currency dimension.
type CurrencyConfig struct {
	// RatesFile is loaded from the config but not read by the CLI: Convert
	// always uses the built-in fixed-rate table, whatever path is set here.
	RatesFile string `mapstructure:"rates_file"`
	// BaseCurrency is loaded from the config but not read by
	// FixedRateService, which always converts through its own USD rates.
	BaseCurrency string `mapstructure:"base_currency"`
}

// REPLConfig holds interactive-shell settings.
type REPLConfig struct {
	Theme    ThemeConfig `mapstructure:"theme"`
	DarkMode bool        `mapstructure:"dark_mode"`
}

// ThemeConfig defines all REPL colors as hex strings.
type ThemeConfig struct {
	Primary   string `mapstructure:"primary"`   // Prompt, headings
	Accent    string `mapstructure:"accent"`    // Borders, highlights
	Error     string `mapstructure:"error"`     // Error / failed-parse messages
	Warning   string `mapstructure:"warning"`   // Unlikeliness / ambiguity warnings
	Muted     string `mapstructure:"muted"`     // Help text
	Dimmed    string `mapstructure:"dimmed"`    // Hints, raw-text echo
	Output    string `mapstructure:"output"`    // Normalized-quantity output
	Bright    string `mapstructure:"bright"`    // Unit/value emphasis
	Separator string `mapstructure:"separator"` // Divider lines

	// Markdown preview colors (report rendering)
	MdText    string `mapstructure:"md_text"`
	MdH1Bg    string `mapstructure:"md_h1_bg"`
	MdH2Bg    string `mapstructure:"md_h2_bg"`
	MdHeading string `mapstructure:"md_heading"`
	MdLink    string `mapstructure:"md_link"`
	MdQuote   string `mapstructure:"md_quote"`
	MdCode    string `mapstructure:"md_code"`
	MdCodeBg  string `mapstructure:"md_code_bg"`
}

// FormatterConfig holds output formatter settings for the CLI report renderer.
type FormatterConfig struct {
	Verbose       bool   `mapstructure:"verbose"`
	IncludeErrors bool   `mapstructure:"include_errors"`
	DefaultFormat string `mapstructure:"default_format"` // "text", "json", "markdown", "yaml", or "html"
}
