package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// OrientationMode selects how the fretboard is laid out in the window
type OrientationMode string

const (
	OrientationAuto       OrientationMode = "auto"       // follow window aspect ratio
	OrientationHorizontal OrientationMode = "horizontal" // strings as rows
	OrientationVertical   OrientationMode = "vertical"   // frets as rows
)

// TuningPreset holds the open-string notes of one instrument tuning,
// display order first (high string before low for a guitar)
type TuningPreset struct {
	ID      string   `json:"id"`      // Unique identifier
	Name    string   `json:"name"`    // User-friendly name
	Strings []string `json:"strings"` // Note names, e.g. ["E4","B3","G3","D3","A2","E2"]
}

// NewTuningPreset creates a new preset with a generated ID
func NewTuningPreset(name string, strings []string) TuningPreset {
	return TuningPreset{
		ID:      uuid.New().String(),
		Name:    name,
		Strings: strings,
	}
}

// defaultPresets returns the built-in tunings
func defaultPresets() []TuningPreset {
	return []TuningPreset{
		NewTuningPreset("Standard Guitar", []string{"E4", "B3", "G3", "D3", "A2", "E2"}),
		NewTuningPreset("Drop D", []string{"E4", "B3", "G3", "D3", "A2", "D2"}),
		NewTuningPreset("Bass", []string{"G2", "D2", "A1", "E1"}),
		NewTuningPreset("Ukulele", []string{"A4", "E4", "C4", "G4"}),
	}
}

// Config holds the persisted session state. Only state that should survive a
// restart lives here; playback handles and the current selection do not.
type Config struct {
	FirstLaunchCompleted bool            `json:"first_launch_completed"`
	OpenAtStartup        bool            `json:"open_at_startup"`
	ChordText            string          `json:"chord_text"`
	TuningID             string          `json:"tuning_id"`
	FretCount            int             `json:"fret_count"`
	Orientation          OrientationMode `json:"orientation"`
	OutPort              string          `json:"out_port"` // MIDI output port name, "" = silent
	Channel              int             `json:"channel"`  // 0-15
	Velocity             int             `json:"velocity"` // 1-127
	Tunings              []TuningPreset  `json:"tunings"`
}

const defaultFretCount = 17

// userConfigDir is replaced in tests to redirect config I/O
var userConfigDir = os.UserConfigDir

// configDir returns the platform-appropriate config directory
func configDir() (string, error) {
	configHome, err := userConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configHome, "fretfinder"), nil
}

// ConfigPath returns the full path to the config file
func ConfigPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the config from disk, returning defaults if not found
func Load() (*Config, error) {
	configPath, err := ConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(configPath)
	if os.IsNotExist(err) {
		return defaultConfig(), nil
	}
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.fillDefaults()

	return &cfg, nil
}

func defaultConfig() *Config {
	cfg := &Config{}
	cfg.fillDefaults()
	return cfg
}

// fillDefaults repairs missing or out-of-range fields loaded from older
// config files
func (c *Config) fillDefaults() {
	if len(c.Tunings) == 0 {
		c.Tunings = defaultPresets()
	}
	if c.TuningID == "" {
		c.TuningID = c.Tunings[0].ID
	}
	if c.FretCount < 12 || c.FretCount > 21 {
		c.FretCount = defaultFretCount
	}
	switch c.Orientation {
	case OrientationAuto, OrientationHorizontal, OrientationVertical:
	default:
		c.Orientation = OrientationAuto
	}
	if c.Channel < 0 || c.Channel > 15 {
		c.Channel = 0
	}
	if c.Velocity < 1 || c.Velocity > 127 {
		c.Velocity = 100
	}
}

// Save writes the config to disk
func (c *Config) Save() error {
	configPath, err := ConfigPath()
	if err != nil {
		return err
	}

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0644)
}

// CurrentTuning returns the selected tuning preset
func (c *Config) CurrentTuning() *TuningPreset {
	for i := range c.Tunings {
		if c.Tunings[i].ID == c.TuningID {
			return &c.Tunings[i]
		}
	}
	if len(c.Tunings) > 0 {
		return &c.Tunings[0]
	}
	return nil
}

// TuningByName returns a preset by its display name, or nil
func (c *Config) TuningByName(name string) *TuningPreset {
	for i := range c.Tunings {
		if c.Tunings[i].Name == name {
			return &c.Tunings[i]
		}
	}
	return nil
}

// AddTuning adds a new tuning preset
func (c *Config) AddTuning(preset TuningPreset) {
	c.Tunings = append(c.Tunings, preset)
}

// RemoveTuning removes a preset by ID, keeping at least one
func (c *Config) RemoveTuning(id string) {
	if len(c.Tunings) <= 1 {
		return
	}
	for i, t := range c.Tunings {
		if t.ID == id {
			c.Tunings = append(c.Tunings[:i], c.Tunings[i+1:]...)
			if c.TuningID == id {
				c.TuningID = c.Tunings[0].ID
			}
			return
		}
	}
}
