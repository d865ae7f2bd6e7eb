package cmd

import (
	"strings"

	"github.com/glopal/envswitch/internal/config"
	"github.com/glopal/envswitch/internal/logging"
	"github.com/glopal/envswitch/internal/registry"
	"github.com/glopal/envswitch/internal/store"
	"github.com/rs/zerolog"
	"github.com/samber/oops"
	"github.com/spf13/cobra"
)

// app is the per-invocation state every command works with.
type app struct {
	cfg   *config.Config
	log   zerolog.Logger
	store *store.Store
}

// openApp resolves configuration and logging for cmd and opens the registry
// store. It does not read the registry.
func openApp(cmd *cobra.Command) (*app, error) {
	cfg, err := config.Load(cfgFile, cmd.Flags())
	if err != nil {
		return nil, err
	}
	if verbose {
		cfg.LogLevel = logging.LevelDebug
	}
	if err := cfg.Validate(); err != nil {
		return nil, oops.Wrapf(err, "invalid configuration")
	}

	log, err := logging.New(cfg.LogLevel, cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}
	log = log.With().Str("command", cmd.Name()).Logger()
	log.Debug().Str("registry", cfg.Registry).Msg("Configuration loaded")

	return &app{cfg: cfg, log: log, store: store.New(cfg.Registry, log)}, nil
}

// loadRegistry opens the app for cmd and reads the registry.
func loadRegistry(cmd *cobra.Command) (*app, *registry.Registry, error) {
	a, err := openApp(cmd)
	if err != nil {
		return nil, nil, err
	}
	reg, err := a.store.Load()
	if err != nil {
		return nil, nil, err
	}
	return a, reg, nil
}

// resolveTarget reads "<category> [name]" or "<category>/<name>" from args.
func resolveTarget(args []string) (category, name string, hasName bool) {
	switch len(args) {
	case 0:
		return "", "", false
	case 1:
		return registry.ParseKey(args[0])
	default:
		return args[0], args[1], true
	}
}

// resolveAssignment reads "<category> <name> <value>" or
// "<category>/<name> <value>" from args.
func resolveAssignment(args []string) (category, name, value string, err error) {
	switch len(args) {
	case 2:
		var hasName bool
		category, name, hasName = registry.ParseKey(args[0])
		if !hasName {
			return "", "", "", oops.Errorf("expected <category>/<name> <value> or <category> <name> <value>")
		}
		value = args[1]
	case 3:
		category, name, value = args[0], args[1], args[2]
	default:
		return "", "", "", oops.Errorf("expected <category> <name> <value>")
	}
	if category == "" || name == "" {
		return "", "", "", oops.Errorf("category and name must not be empty")
	}
	return category, name, value, nil
}

// completeSwitches completes category names for the first argument and
// variable names of that category for the second.
func completeSwitches(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 1 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	_, reg, err := loadRegistry(cmd)
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	var out []string
	if len(args) == 0 {
		for _, c := range reg.Categories {
			if strings.HasPrefix(c.Name, toComplete) {
				out = append(out, c.Name)
			}
		}
		return out, cobra.ShellCompDirectiveNoFileComp
	}

	if c, ok := reg.Category(args[0]); ok {
		for _, v := range c.Variables {
			if strings.HasPrefix(v.Key, toComplete) {
				out = append(out, v.Key)
			}
		}
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}
