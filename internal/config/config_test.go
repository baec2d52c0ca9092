package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// redirectConfigDir points config I/O at a temp dir for the test's lifetime
func redirectConfigDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	orig := userConfigDir
	userConfigDir = func() (string, error) { return dir, nil }
	t.Cleanup(func() { userConfigDir = orig })
	return dir
}

func TestSaveLoadRoundTrip(t *testing.T) {
	assert := assert.New(t)
	redirectConfigDir(t)

	cfg := &Config{}
	cfg.fillDefaults()
	cfg.ChordText = "Am/G"
	cfg.FretCount = 15
	cfg.Orientation = OrientationVertical
	cfg.OutPort = "Synth Out"
	cfg.Channel = 9
	cfg.Velocity = 64

	custom := NewTuningPreset("Open G", []string{"D4", "B3", "G3", "D3", "G2", "D2"})
	cfg.AddTuning(custom)
	cfg.TuningID = custom.ID

	require.NoError(t, cfg.Save())

	loaded, err := Load()
	require.NoError(t, err)

	assert.Equal(cfg.ChordText, loaded.ChordText)
	assert.Equal(cfg.FretCount, loaded.FretCount)
	assert.Equal(cfg.Orientation, loaded.Orientation)
	assert.Equal(cfg.OutPort, loaded.OutPort)
	assert.Equal(cfg.Channel, loaded.Channel)
	assert.Equal(cfg.Velocity, loaded.Velocity)
	assert.Equal(cfg.Tunings, loaded.Tunings)
	assert.Equal("Open G", loaded.CurrentTuning().Name)
}

func TestLoadReturnsDefaultsWhenMissing(t *testing.T) {
	assert := assert.New(t)
	redirectConfigDir(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.False(cfg.FirstLaunchCompleted)
	assert.Equal(defaultFretCount, cfg.FretCount)
	assert.NotEmpty(cfg.Tunings)
}

func TestLoadRepairsCorruptFields(t *testing.T) {
	assert := assert.New(t)
	dir := redirectConfigDir(t)

	path := filepath.Join(dir, "fretfinder", "config.json")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(`{"fret_count":99,"velocity":-3}`), 0644))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(defaultFretCount, cfg.FretCount)
	assert.Equal(100, cfg.Velocity)
}

func TestFillDefaults(t *testing.T) {
	assert := assert.New(t)

	cfg := &Config{}
	cfg.fillDefaults()

	assert.NotEmpty(cfg.Tunings)
	assert.Equal(cfg.Tunings[0].ID, cfg.TuningID)
	assert.Equal(defaultFretCount, cfg.FretCount)
	assert.Equal(OrientationAuto, cfg.Orientation)
	assert.Equal(100, cfg.Velocity)
}

func TestFillDefaultsRepairsOutOfRangeValues(t *testing.T) {
	assert := assert.New(t)

	cfg := &Config{
		FretCount:   99,
		Orientation: "sideways",
		Channel:     42,
		Velocity:    -3,
	}
	cfg.fillDefaults()

	assert.Equal(defaultFretCount, cfg.FretCount)
	assert.Equal(OrientationAuto, cfg.Orientation)
	assert.Equal(0, cfg.Channel)
	assert.Equal(100, cfg.Velocity)
}

func TestCurrentTuningFallsBackToFirst(t *testing.T) {
	assert := assert.New(t)

	cfg := &Config{}
	cfg.fillDefaults()
	cfg.TuningID = "missing"

	tuning := cfg.CurrentTuning()
	assert.NotNil(tuning)
	assert.Equal(cfg.Tunings[0].ID, tuning.ID)
}

func TestRemoveTuningKeepsAtLeastOne(t *testing.T) {
	assert := assert.New(t)

	cfg := &Config{}
	cfg.fillDefaults()
	total := len(cfg.Tunings)

	// Removing the selected preset moves the selection
	selected := cfg.TuningID
	cfg.RemoveTuning(selected)
	assert.Len(cfg.Tunings, total-1)
	assert.NotEqual(selected, cfg.TuningID)

	for len(cfg.Tunings) > 1 {
		cfg.RemoveTuning(cfg.Tunings[len(cfg.Tunings)-1].ID)
	}
	cfg.RemoveTuning(cfg.Tunings[0].ID)
	assert.Len(cfg.Tunings, 1)
}

func TestPresetIDsAreUnique(t *testing.T) {
	cfg := &Config{}
	cfg.fillDefaults()

	seen := make(map[string]bool)
	for _, preset := range cfg.Tunings {
		assert.False(t, seen[preset.ID], "duplicate id %s", preset.ID)
		seen[preset.ID] = true
	}
}
