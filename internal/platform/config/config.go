// internal/platform/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"crackx/internal/platform/errors"
)

// Config holds everything the crack mode needs to run.
type Config struct {
	// IO paths
	Input    string // target list: identifier:digest lines
	Output   string // solved pairs are appended here
	Rules    string // rules source
	ErrorLog string // timestamped error log

	// Digest algorithm name, resolved through the digest registry
	Algorithm string

	// UI
	Raw   bool // logfmt lines instead of the pterm presenter
	Quiet bool // no presenter output at all

	PrintVersion bool

	// Optional YAML config file; its values fill in whatever the flags
	// did not set explicitly
	ConfigFile string
}

// fileConfig is the YAML shape of the optional config file.
type fileConfig struct {
	Input     string `yaml:"input"`
	Output    string `yaml:"output"`
	Rules     string `yaml:"rules"`
	ErrorLog  string `yaml:"error_log"`
	Algorithm string `yaml:"algorithm"`
	Raw       *bool  `yaml:"raw"`
	Quiet     *bool  `yaml:"quiet"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Input:     "input.txt",
		Output:    "output.txt",
		Rules:     "rules.conf",
		ErrorLog:  "error.log",
		Algorithm: "sha256",
	}
}

// Load builds the configuration in layers: defaults, then CRACKX_* env
// vars, then flags, then the optional YAML config file for any flag not
// set explicitly on the command line. Flags always win.
func Load(args []string) (Config, error) {
	cfg := DefaultConfig()
	loadFromEnv(&cfg)

	fs := newFlagSet(&cfg)
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if rest := fs.Args(); len(rest) > 0 {
		return Config{}, errors.Wrapf(errors.ErrInvalidConfig, "unexpected argument %q", rest[0])
	}

	if cfg.ConfigFile != "" {
		if err := applyFile(&cfg, fs); err != nil {
			return Config{}, err
		}
	}

	return cfg, nil
}

// newFlagSet binds the flags against cfg, using the current values
// (defaults + env) as flag defaults.
func newFlagSet(cfg *Config) *pflag.FlagSet {
	fs := pflag.NewFlagSet("crackx", pflag.ContinueOnError)
	fs.SortFlags = false
	fs.Usage = func() { printUsage(fs) }

	fs.StringVarP(&cfg.Input, "input", "i", cfg.Input, "Target list of identifier:digest lines")
	fs.StringVarP(&cfg.Output, "output", "o", cfg.Output, "File solved pairs are appended to")
	fs.StringVarP(&cfg.Rules, "rules", "r", cfg.Rules, "Rules source file")
	fs.StringVar(&cfg.ErrorLog, "error-log", cfg.ErrorLog, "Timestamped error log file")
	fs.StringVarP(&cfg.Algorithm, "alg", "a", cfg.Algorithm, "Digest algorithm name")
	fs.StringVarP(&cfg.ConfigFile, "config", "c", cfg.ConfigFile, "Optional YAML config file")
	fs.BoolVar(&cfg.Raw, "raw", cfg.Raw, "Plain log lines instead of the interactive presenter")
	fs.BoolVarP(&cfg.Quiet, "quiet", "q", cfg.Quiet, "Suppress presenter output")
	fs.BoolVar(&cfg.PrintVersion, "version", false, "Print version and exit")

	return fs
}

// loadFromEnv loads configuration from environment variables.
func loadFromEnv(cfg *Config) {
	if v := getenv("CRACKX_INPUT", ""); v != "" {
		cfg.Input = v
	}
	if v := getenv("CRACKX_OUTPUT", ""); v != "" {
		cfg.Output = v
	}
	if v := getenv("CRACKX_RULES", ""); v != "" {
		cfg.Rules = v
	}
	if v := getenv("CRACKX_ERROR_LOG", ""); v != "" {
		cfg.ErrorLog = v
	}
	if v := getenv("CRACKX_ALG", ""); v != "" {
		cfg.Algorithm = v
	}
	if v := getenv("CRACKX_CONFIG", ""); v != "" {
		cfg.ConfigFile = v
	}
	if v := getenv("CRACKX_RAW", ""); v != "" {
		cfg.Raw = parseBool(v)
	}
	if v := getenv("CRACKX_QUIET", ""); v != "" {
		cfg.Quiet = parseBool(v)
	}
}

// applyFile overlays values from the YAML config file, skipping any field
// whose flag was set explicitly on the command line.
func applyFile(cfg *Config, fs *pflag.FlagSet) error {
	data, err := os.ReadFile(cfg.ConfigFile)
	if err != nil {
		return errors.Wrapf(errors.ErrInvalidConfig, "config file %s: %v", cfg.ConfigFile, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return errors.Wrapf(errors.ErrInvalidConfig, "config file %s: %v", cfg.ConfigFile, err)
	}

	if fc.Input != "" && !fs.Changed("input") {
		cfg.Input = fc.Input
	}
	if fc.Output != "" && !fs.Changed("output") {
		cfg.Output = fc.Output
	}
	if fc.Rules != "" && !fs.Changed("rules") {
		cfg.Rules = fc.Rules
	}
	if fc.ErrorLog != "" && !fs.Changed("error-log") {
		cfg.ErrorLog = fc.ErrorLog
	}
	if fc.Algorithm != "" && !fs.Changed("alg") {
		cfg.Algorithm = fc.Algorithm
	}
	if fc.Raw != nil && !fs.Changed("raw") {
		cfg.Raw = *fc.Raw
	}
	if fc.Quiet != nil && !fs.Changed("quiet") {
		cfg.Quiet = *fc.Quiet
	}
	return nil
}

// Validate checks that the configured paths are usable: inputs must exist
// and nothing may be a directory.
func (c Config) Validate() error {
	if err := mustExistFile(c.Input); err != nil {
		return err
	}
	if err := mustExistFile(c.Rules); err != nil {
		return err
	}
	if err := mustNotBeDir(c.Output); err != nil {
		return err
	}
	return mustNotBeDir(c.ErrorLog)
}

func mustExistFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return errors.Wrapf(errors.ErrNotFound, "cannot find file: %s", path)
	}
	if info.IsDir() {
		return errors.Wrapf(errors.ErrInvalidConfig, "file cannot be directory: %s", path)
	}
	return nil
}

func mustNotBeDir(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		// missing is fine, it will be created on first append
		return nil
	}
	if info.IsDir() {
		return errors.Wrapf(errors.ErrInvalidConfig, "file cannot be directory: %s", path)
	}
	return nil
}

func getenv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func parseBool(s string) bool {
	b, err := strconv.ParseBool(strings.TrimSpace(s))
	if err != nil {
		return false
	}
	return b
}

// String renders the effective configuration for debug logging.
func (c Config) String() string {
	return fmt.Sprintf("input=%s output=%s rules=%s error_log=%s alg=%s raw=%t quiet=%t",
		c.Input, c.Output, c.Rules, c.ErrorLog, c.Algorithm, c.Raw, c.Quiet)
}
