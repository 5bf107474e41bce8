package config

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
)

// Actions that can be bound to keys.
const (
	ActionQuit      = "quit"
	ActionHelp      = "help"
	ActionNextField = "next_field"
	ActionPrevField = "prev_field"
	ActionActivate  = "activate"
	ActionPickDate  = "pick_date"
	ActionPickTime  = "pick_time"
	ActionConfirm   = "confirm"
	ActionClear     = "clear"
)

var actions = map[string]bool{
	ActionQuit:      true,
	ActionHelp:      true,
	ActionNextField: true,
	ActionPrevField: true,
	ActionActivate:  true,
	ActionPickDate:  true,
	ActionPickTime:  true,
	ActionConfirm:   true,
	ActionClear:     true,
}

var (
	setRe   = regexp.MustCompile(`^set\s+(\w+)\s+(.+)$`)
	bindRe  = regexp.MustCompile(`^bind\s+(\S+)\s+(\S+)$`)
	colorRe = regexp.MustCompile(`^color\s+(\w+)\s+(.+)$`)
)

type Config struct {
	// Display settings
	WeekStartDay time.Weekday
	Time24Hour   bool `env:"REMINDAPP_TIME_24H"`
	MessageLimit int

	// UI settings
	Colors      map[string]string
	KeyBindings map[string]string // key -> action

	// Behavior settings
	StatusDuration time.Duration `env:"REMINDAPP_STATUS_DURATION"`
	WatchConfig    bool

	// Logging
	LogFile  string `env:"REMINDAPP_LOG_FILE"`
	LogLevel string `env:"REMINDAPP_LOG_LEVEL"`

	// Path is the file the config was read from, empty for defaults.
	Path string
}

func DefaultConfig() *Config {
	return &Config{
		WeekStartDay: time.Monday,
		Time24Hour:   false,
		MessageLimit: 256,

		Colors: map[string]string{
			"title":    "220",
			"normal":   "252",
			"label":    "245",
			"focused":  "220",
			"details":  "40",
			"status":   "220",
			"error":    "196",
			"help":     "241",
			"today":    "39",
			"selected": "220",
			"disabled": "238",
		},

		KeyBindings: map[string]string{
			"ctrl+c":    ActionQuit,
			"q":         ActionQuit,
			"f1":        ActionHelp,
			"?":         ActionHelp,
			"tab":       ActionNextField,
			"down":      ActionNextField,
			"shift+tab": ActionPrevField,
			"up":        ActionPrevField,
			"enter":     ActionActivate,
			"ctrl+d":    ActionPickDate,
			"d":         ActionPickDate,
			"ctrl+t":    ActionPickTime,
			"t":         ActionPickTime,
			"ctrl+s":    ActionConfirm,
			"s":         ActionConfirm,
			"ctrl+x":    ActionClear,
			"c":         ActionClear,
		},

		StatusDuration: 4 * time.Second,
		WatchConfig:    true,

		LogLevel: "info",
	}
}

// SearchPaths lists the config file locations in lookup order.
func SearchPaths() []string {
	home, _ := os.UserHomeDir()

	paths := []string{os.Getenv("REMINDAPP_CONFIG")}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		paths = append(paths, filepath.Join(xdg, "remindapp", "remindrc"))
	}
	if home != "" {
		paths = append(paths,
			filepath.Join(home, ".config", "remindapp", "remindrc"),
			filepath.Join(home, ".remindrc"),
		)
	}
	return paths
}

// LoadConfig reads the first config file found in SearchPaths, then applies
// environment overrides.
func LoadConfig() (*Config, error) {
	for _, path := range SearchPaths() {
		if path == "" {
			continue
		}

		if _, err := os.Stat(path); err == nil {
			return LoadConfigFile(path)
		}
	}

	config := DefaultConfig()
	if err := config.applyEnv(); err != nil {
		return nil, err
	}
	return config, nil
}

// LoadConfigFile reads an explicit config file. Unlike LoadConfig the file
// must exist.
func LoadConfigFile(path string) (*Config, error) {
	config := DefaultConfig()

	if err := config.loadFromFile(path); err != nil {
		return nil, fmt.Errorf("error loading config from %s: %w", path, err)
	}
	config.Path = path

	if err := config.applyEnv(); err != nil {
		return nil, err
	}
	return config, nil
}

func (c *Config) applyEnv() error {
	if err := env.Parse(c); err != nil {
		return fmt.Errorf("error reading environment: %w", err)
	}
	return nil
}

func (c *Config) loadFromFile(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())

		if err := c.parseLine(line); err != nil {
			return fmt.Errorf("line %d: %w", lineNum, err)
		}
	}

	return scanner.Err()
}

func (c *Config) parseLine(line string) error {
	// Skip comments and empty lines
	if line == "" || strings.HasPrefix(line, "#") {
		return nil
	}

	// set variable value
	if matches := setRe.FindStringSubmatch(line); matches != nil {
		return c.setVariable(matches[1], matches[2])
	}

	// bind key action
	if matches := bindRe.FindStringSubmatch(line); matches != nil {
		if !actions[matches[2]] {
			return fmt.Errorf("unknown action: %s", matches[2])
		}
		c.KeyBindings[matches[1]] = matches[2]
		return nil
	}

	// color element color_spec
	if matches := colorRe.FindStringSubmatch(line); matches != nil {
		c.Colors[matches[1]] = strings.Trim(matches[2], `"'`)
		return nil
	}

	return fmt.Errorf("unknown config line: %s", line)
}

func (c *Config) setVariable(name, value string) error {
	// Remove quotes if present
	value = strings.Trim(value, `"'`)

	switch name {
	case "week_start_day":
		switch strings.ToLower(value) {
		case "sunday", "sun", "0":
			c.WeekStartDay = time.Sunday
		case "monday", "mon", "1":
			c.WeekStartDay = time.Monday
		default:
			return fmt.Errorf("invalid week_start_day: %s", value)
		}

	case "time_24h":
		c.Time24Hour = parseBool(value)

	case "message_limit":
		limit, err := strconv.Atoi(value)
		if err != nil || limit < 0 {
			return fmt.Errorf("invalid message_limit: %s", value)
		}
		c.MessageLimit = limit

	case "status_duration":
		d, err := time.ParseDuration(value)
		if err != nil {
			// Try parsing as seconds
			seconds, err2 := strconv.Atoi(value)
			if err2 != nil {
				return fmt.Errorf("invalid status_duration: %s", value)
			}
			d = time.Duration(seconds) * time.Second
		}
		if d <= 0 {
			return fmt.Errorf("invalid status_duration: %s", value)
		}
		c.StatusDuration = d

	case "watch_config":
		c.WatchConfig = parseBool(value)

	case "log_file":
		// Expand ~ to home directory
		if strings.HasPrefix(value, "~/") {
			home, _ := os.UserHomeDir()
			value = filepath.Join(home, value[2:])
		}
		c.LogFile = value

	case "log_level":
		switch strings.ToLower(value) {
		case "debug", "info", "warn", "error":
			c.LogLevel = strings.ToLower(value)
		default:
			return fmt.Errorf("invalid log_level: %s", value)
		}

	default:
		return fmt.Errorf("unknown config variable: %s", name)
	}

	return nil
}

// ActionFor returns the action bound to key, or "".
func (c *Config) ActionFor(key string) string {
	return c.KeyBindings[key]
}

// KeysFor returns the keys bound to action, shortest first.
func (c *Config) KeysFor(action string) []string {
	var keys []string
	for k, a := range c.KeyBindings {
		if a == action {
			keys = append(keys, k)
		}
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) < len(keys[j])
		}
		return keys[i] < keys[j]
	})
	return keys
}

func parseBool(value string) bool {
	return strings.ToLower(value) == "true" || value == "1"
}
