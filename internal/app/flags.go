package app

import (
	"fmt"

	"glscenes/internal/config"

	"github.com/spf13/pflag"
)

// ParseFlags builds the settings for program from its defaults, an optional
// config file and the command line, in that order of precedence.
func ParseFlags(program string, args []string) (config.Settings, error) {
	defaults := config.Defaults(program)

	fs := pflag.NewFlagSet(program, pflag.ContinueOnError)
	path := fs.StringP("config", "c", "", "settings file (.yaml, .yml or .toml)")
	assets := fs.String("assets", defaults.Assets, "directory holding shaders/ and textures/")
	level := fs.String("log-level", defaults.LogLevel, "debug, info, warn or error")
	fps := fs.Int("fps", defaults.FPSLimit, "frame rate cap, 0 for uncapped")
	watch := fs.Bool("watch", defaults.Watch, "reload shaders when their files change")
	if err := fs.Parse(args); err != nil {
		return defaults, err
	}

	s := defaults
	if *path != "" {
		var err error
		if s, err = config.Load(*path, defaults); err != nil {
			return defaults, err
		}
	}
	if fs.Changed("assets") {
		s.Assets = *assets
	}
	if fs.Changed("log-level") {
		s.LogLevel = *level
	}
	if fs.Changed("fps") {
		s.FPSLimit = *fps
	}
	if fs.Changed("watch") {
		s.Watch = *watch
	}
	if fs.NArg() > 0 {
		return defaults, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	if err := s.Validate(); err != nil {
		return defaults, err
	}
	return s, nil
}
