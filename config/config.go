// Package config implements the TOML-driven configuration surface of
// spec.md §6.3 (the globaldeadcode and times debug switches, and the global
// dead-code enable flag), using the same directory-walking Load and
// github.com/BurntSushi/toml decoding this tool has always used for its
// configuration files.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config is the decoded contents of a gdce.conf file.
type Config struct {
	DeadCode DeadCodeConfig `toml:"deadcode"`
	Debug    DebugConfig    `toml:"debug"`
}

// DeadCodeConfig controls the pass itself (spec.md §6.3 "Global dead-code
// flag").
type DeadCodeConfig struct {
	Enabled bool `toml:"enabled"`
	// MaxTraceFields caps how many members of a Live(F) field set the debug
	// dumper prints per variable; 0 means unlimited. Purely a tracing knob.
	MaxTraceFields int `toml:"max_trace_fields"`
}

// DebugConfig controls the globaldeadcode and times switches of spec.md
// §6.3.
type DebugConfig struct {
	GlobalDeadCode bool `toml:"globaldeadcode"`
	Times          bool `toml:"times"`
}

var defaultConfig = Config{
	DeadCode: DeadCodeConfig{
		Enabled:        true,
		MaxTraceFields: 0,
	},
	Debug: DebugConfig{
		GlobalDeadCode: false,
		Times:          false,
	},
}

const configName = "gdce.conf"

type config struct {
	cfg  Config
	meta toml.MetaData
}

func parseConfigs(dir string) ([]config, error) {
	var out []config

	for dir != "" {
		f, err := os.Open(filepath.Join(dir, configName))
		if os.IsNotExist(err) {
			ndir := filepath.Dir(dir)
			if ndir == dir {
				break
			}
			dir = ndir
			continue
		}
		if err != nil {
			return nil, err
		}
		var cfg Config
		meta, err := toml.DecodeReader(f, &cfg)
		f.Close()
		if err != nil {
			return nil, err
		}
		out = append(out, config{cfg, meta})
		ndir := filepath.Dir(dir)
		if ndir == dir {
			break
		}
		dir = ndir
	}
	out = append(out, config{cfg: defaultConfig})

	// reverse: root-most config first, so nearer configs override it.
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out, nil
}

// Merge overlays ocfg's explicitly-set fields onto cfg, leaving unset fields
// at cfg's value. Unlike the multi-check teacher config this overlays, there
// are only scalar fields here, so "explicitly set" is all Merge needs to
// check via the decoded meta.
func (c config) Merge(o config) config {
	if o.meta.IsDefined("deadcode", "enabled") {
		c.cfg.DeadCode.Enabled = o.cfg.DeadCode.Enabled
	}
	if o.meta.IsDefined("deadcode", "max_trace_fields") {
		c.cfg.DeadCode.MaxTraceFields = o.cfg.DeadCode.MaxTraceFields
	}
	if o.meta.IsDefined("debug", "globaldeadcode") {
		c.cfg.Debug.GlobalDeadCode = o.cfg.Debug.GlobalDeadCode
	}
	if o.meta.IsDefined("debug", "times") {
		c.cfg.Debug.Times = o.cfg.Debug.Times
	}
	return c
}

// Load walks up from dir looking for gdce.conf files, merging them with the
// nearest directory's settings taking precedence over outer ones, and
// falling back to defaultConfig for anything left unset.
func Load(dir string) (Config, error) {
	confs, err := parseConfigs(dir)
	if err != nil {
		return Config{}, err
	}
	if len(confs) == 0 {
		panic("config: parseConfigs returned no configs; defaultConfig is always appended")
	}
	conf := confs[0]
	for _, o := range confs[1:] {
		conf = conf.Merge(o)
	}
	return conf.cfg, nil
}
