package emulator

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/ezrec/chip8/cpu"
	"github.com/ezrec/chip8/io"
)

func writeConfig(t *testing.T, name string, text string) (path string) {
	path = filepath.Join(t.TempDir(), name)
	err := os.WriteFile(path, []byte(text), 0o644)
	if err != nil {
		t.Fatalf("%v", err)
	}
	return
}

func TestConfig_Default(t *testing.T) {
	assert := assert.New(t)

	cfg := DefaultConfig()
	assert.NoError(cfg.Validate())
	assert.Equal(cpu.Quirks{}, cfg.Quirks)

	keymap, err := cfg.Keys()
	assert.NoError(err)
	assert.Equal(io.DefaultKeymap, keymap)
}

func TestConfig_Toml(t *testing.T) {
	assert := assert.New(t)

	path := writeConfig(t, "chip8.toml", `
hz = 500
seed = 42

[quirks]
shift = "vy"
index = "byte"
load_store_increment = true

[keymap]
k = "a"
`)

	cfg, err := LoadConfig(path)
	assert.NoError(err)

	expected := &Config{
		Hz:   500,
		Seed: 42,
		Hold: DEFAULT_HOLD,
		Quirks: cpu.Quirks{
			Shift:              cpu.SHIFT_VY,
			Index:              cpu.INDEX_BYTE,
			LoadStoreIncrement: true,
		},
		Keymap: map[string]string{"k": "a"},
	}
	if diff := cmp.Diff(expected, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestConfig_Yaml(t *testing.T) {
	assert := assert.New(t)

	path := writeConfig(t, "chip8.yml", `
hz: 700
hold: 2
quirks:
  shift: by-vy
  index_overflow: true
keymap:
  "j": "1"
`)

	cfg, err := LoadConfig(path)
	assert.NoError(err)
	assert.Equal(700, cfg.Hz)
	assert.Equal(2, cfg.Hold)
	assert.Equal(uint64(0), cfg.Seed)
	assert.Equal(cpu.SHIFT_BY_VY, cfg.Quirks.Shift)
	assert.True(cfg.Quirks.IndexOverflow)

	keymap, err := cfg.Keys()
	assert.NoError(err)
	assert.Equal(uint8(0x1), keymap['j'])
}

func TestConfig_Err(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name string
		text string
		err  error
	}){
		{"bad.ini", "hz = 1\n", ErrConfigFormat},
		{"unknown.toml", "hz = 1\nspeed = 2\n", ErrConfigUnknown},
		{"zero.toml", "hz = 0\n", ErrConfigHz},
		{"negative.yaml", "hz: -5\n", ErrConfigHz},
		{"fast.toml", "hz = 2_000_000_000\n", ErrConfigHz},
		{"fast.yaml", "hz: 1000000001\n", ErrConfigHz},
		{"keymap.toml", "[keymap]\nq = \"x\"\n", io.ErrKeyInvalid("x")},
		{"keymap.yaml", "keymap:\n  qq: \"1\"\n", io.ErrKeyInvalid("qq")},
	}

	for _, entry := range table {
		path := writeConfig(t, entry.name, entry.text)
		cfg, err := LoadConfig(path)
		assert.ErrorIs(err, entry.err, entry.name)
		assert.Nil(cfg, entry.name)
		if err != nil {
			assert.Contains(err.Error(), entry.name)
		}
	}

	path := writeConfig(t, "unknown.yaml", "hz: 1\nspeed: 2\n")
	_, err := LoadConfig(path)
	assert.Error(err)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(err)

	path = writeConfig(t, "quirk.toml", "[quirks]\nshift = \"sideways\"\n")
	_, err = LoadConfig(path)
	assert.Error(err)
}
