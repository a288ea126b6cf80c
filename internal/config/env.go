package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
)

// EnvPrefix prefixes every environment variable read by ApplyEnv.
const EnvPrefix = "DRAGSCROLL_"

// Environment variables.
const (
	EnvDecayRate        = EnvPrefix + "DECAY_RATE"
	EnvSafeDisplacement = EnvPrefix + "SAFE_DISPLACEMENT"
	EnvRubberBand       = EnvPrefix + "RUBBER_BAND"
	EnvAxis             = EnvPrefix + "AXIS"
	EnvLogLevel         = EnvPrefix + "LOG_LEVEL"
	EnvLogFile          = EnvPrefix + "LOG_FILE"
)

// ApplyEnv overlays environment variables onto cfg. A nil lookup uses
// os.LookupEnv. Empty values are treated as unset. Every malformed value is
// reported; well-formed ones are still applied.
func ApplyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	get := func(name string) (string, bool) {
		v, ok := lookup(name)
		v = strings.TrimSpace(v)
		return v, ok && v != ""
	}

	var errs []error
	bad := func(name string, err error) {
		errs = append(errs, &ParseError{Path: "env:" + name, Message: err.Error(), Err: err})
	}

	if v, ok := get(EnvDecayRate); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			bad(EnvDecayRate, err)
		} else {
			cfg.DragScroll.DecayRate = f
		}
	}
	if v, ok := get(EnvSafeDisplacement); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			bad(EnvSafeDisplacement, err)
		} else {
			cfg.DragScroll.SafeDisplacement = f
		}
	}
	if v, ok := get(EnvRubberBand); ok {
		b, err := parseBool(v)
		if err != nil {
			bad(EnvRubberBand, err)
		} else {
			cfg.DragScroll.RubberBand = b
		}
	}
	if v, ok := get(EnvAxis); ok {
		cfg.DragScroll.Axis = strings.ToLower(v)
	}
	if v, ok := get(EnvLogLevel); ok {
		cfg.Log.Level = strings.ToLower(v)
	}
	if v, ok := get(EnvLogFile); ok {
		cfg.Log.File = v
	}

	return errors.Join(errs...)
}

// parseBool accepts the strconv forms plus yes/no and on/off.
func parseBool(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "on":
		return true, nil
	case "no", "off":
		return false, nil
	}
	return strconv.ParseBool(s)
}
