package emulator

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/ezrec/chip8/cpu"
	"github.com/ezrec/chip8/io"
)

const (
	DEFAULT_HZ   = 60               // Machine cycles per second.
	DEFAULT_HOLD = 6                // Snapshots a key press is held for.
	MAX_HZ       = int(time.Second) // One cycle per nanosecond.
)

// Config selects the dialect and host behaviour of an Emulator.
type Config struct {
	Hz     int               `toml:"hz" yaml:"hz"`         // Machine cycles per second.
	Seed   uint64            `toml:"seed" yaml:"seed"`     // Cxkk seed. Zero is unseeded.
	Hold   int               `toml:"hold" yaml:"hold"`     // Key press duration, in cycles.
	Quirks cpu.Quirks        `toml:"quirks" yaml:"quirks"` // Interpreter dialect.
	Keymap map[string]string `toml:"keymap" yaml:"keymap"` // Host key to hex digit overrides.
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Hz:   DEFAULT_HZ,
		Hold: DEFAULT_HOLD,
	}
}

// LoadConfig reads a .toml, .yaml or .yml file over the defaults.
func LoadConfig(path string) (cfg *Config, err error) {
	cfg = DefaultConfig()

	defer func() {
		if err != nil {
			cfg = nil
			err = fmt.Errorf("%v: %w", path, err)
		}
	}()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		var md toml.MetaData
		md, err = toml.DecodeFile(path, cfg)
		if err != nil {
			return
		}
		if undecoded := md.Undecoded(); len(undecoded) != 0 {
			err = fmt.Errorf("%w: %v", ErrConfigUnknown, undecoded[0])
			return
		}
	case ".yaml", ".yml":
		var inf *os.File
		inf, err = os.Open(path)
		if err != nil {
			return
		}
		defer inf.Close()

		dec := yaml.NewDecoder(inf)
		dec.KnownFields(true)
		err = dec.Decode(cfg)
		if err != nil {
			return
		}
	default:
		err = ErrConfigFormat
		return
	}

	err = cfg.Validate()
	return
}

// Validate checks the configuration values.
func (cfg *Config) Validate() (err error) {
	if !cfg.validHz() {
		err = ErrConfigHz
		return
	}

	_, err = cfg.Keys()
	return
}

func (cfg *Config) validHz() bool {
	return cfg.Hz > 0 && cfg.Hz <= MAX_HZ
}

// Keys returns the host keymap, with overrides applied to io.DefaultKeymap.
func (cfg *Config) Keys() (keymap map[rune]uint8, err error) {
	return io.ParseKeymap(cfg.Keymap)
}
