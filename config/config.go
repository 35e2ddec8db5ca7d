package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/nstehr/splgeo/rules"
)

// EnvPrefix namespaces environment overrides, e.g. SPLGEO_POLICY_MAX_WORKERS.
const EnvPrefix = "SPLGEO"

// Config holds everything the sidecar reads at startup.
type Config struct {
	Socket   string       `mapstructure:"socket"`
	LogLevel string       `mapstructure:"log_level"`
	Watch    bool         `mapstructure:"watch"`
	Policy   rules.Policy `mapstructure:"policy"`
}

// Level parses LogLevel. Validate has already rejected bad values.
func (c Config) Level() slog.Level {
	var l slog.Level
	_ = l.UnmarshalText([]byte(c.LogLevel))
	return l
}

// Loader owns the viper instance backing one Config.
type Loader struct {
	v *viper.Viper
}

// setDefaults seeds every key so env overrides resolve even without a file.
func setDefaults(v *viper.Viper) {
	v.SetDefault("socket", "/tmp/splgeo.sock")
	v.SetDefault("log_level", "info")
	v.SetDefault("watch", false)

	p := rules.DefaultPolicy()
	v.SetDefault("policy.iterations_per_minute", p.IterationsPerMinute)
	v.SetDefault("policy.max_workers", p.MaxWorkers)
	v.SetDefault("policy.workers_per_main", p.WorkersPerMain)
	v.SetDefault("policy.supply_margin", p.SupplyMargin)
	v.SetDefault("policy.gas_search_radius", p.GasSearchRadius)
	v.SetDefault("policy.gas_claim_radius", p.GasClaimRadius)
	v.SetDefault("policy.max_main_structures", p.MaxMainStructures)
	v.SetDefault("policy.second_main_cap", p.SecondMainCap)
	v.SetDefault("policy.second_main_max_distance", p.SecondMainMaxDistance)
	v.SetDefault("policy.defense_emplacement_cap", p.DefenseEmplacementCap)
	v.SetDefault("policy.defense_support_prereq", p.DefenseSupportPrereq)
	v.SetDefault("policy.early_production_cap", p.EarlyProductionCap)
	v.SetDefault("policy.advanced_per_main", p.AdvancedPerMain)
	v.SetDefault("policy.seed", p.Seed)
	for kind, t := range p.Aggression {
		v.SetDefault("policy.aggression."+kind+".aggressive", t.Aggressive)
		v.SetDefault("policy.aggression."+kind+".minimum", t.Minimum)
	}
}

// New prepares a loader. path may be empty, in which case splgeo.yaml is
// searched for in the working directory and /etc/splgeo. Flags that were
// set explicitly take precedence over the file and the environment.
func New(path string, flags *pflag.FlagSet) (*Loader, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("splgeo")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/splgeo")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for _, name := range []string{"socket", "log_level", "watch"} {
			f := flags.Lookup(strings.ReplaceAll(name, "_", "-"))
			if f == nil {
				continue
			}
			if err := v.BindPFlag(name, f); err != nil {
				return nil, fmt.Errorf("bind flag %q: %w", f.Name, err)
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
		slog.Info("no config file found, using defaults")
	}

	return &Loader{v: v}, nil
}

// Load decodes and validates the current configuration.
func (l *Loader) Load() (Config, error) {
	var c Config
	if err := l.v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := Validate(&c); err != nil {
		return Config{}, fmt.Errorf("config validation failed: %w", err)
	}
	return c, nil
}

// File returns the config file in use, or "" when running on defaults.
func (l *Loader) File() string {
	return l.v.ConfigFileUsed()
}

// Watch reloads the file on change and hands each valid config to onChange.
// Invalid edits are logged and skipped; the previous config stays in effect.
func (l *Loader) Watch(onChange func(Config)) {
	l.v.OnConfigChange(func(e fsnotify.Event) {
		slog.Info("config file changed", "file", e.Name, "op", e.Op.String())
		c, err := l.Load()
		if err != nil {
			slog.Error("ignoring config change", "error", err)
			return
		}
		onChange(c)
	})
	l.v.WatchConfig()
}

// Validate rejects settings that cannot be clamped into range and
// clamps the policy.
func Validate(c *Config) error {
	if c.Socket == "" {
		return errors.New("socket must not be empty")
	}
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	c.Policy.Validate()
	return nil
}
