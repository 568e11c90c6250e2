package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nikbrunner/bo/internal/editor"
	"github.com/nikbrunner/bo/internal/launcher"
	"github.com/nikbrunner/bo/internal/logging"
	"github.com/nikbrunner/bo/internal/model"
	"github.com/nikbrunner/bo/internal/picker"
	"github.com/nikbrunner/bo/internal/storage"
)

const envPrefix = "BO"

// app carries the collaborators shared by all commands.
type app struct {
	v      *viper.Viper
	log    zerolog.Logger
	logOut io.Writer

	paths    storage.PathProvider
	opener   func(yank bool) launcher.Opener
	selector picker.Selector
	edit     func(path string) error
}

func newApp() *app {
	return &app{
		v:        viper.New(),
		log:      zerolog.Nop(),
		logOut:   os.Stderr,
		paths:    storage.DefaultConfigPath,
		opener:   defaultOpener,
		selector: picker.TeaSelector{In: os.Stdin, Out: os.Stderr},
		edit:     editor.Open,
	}
}

func defaultOpener(yank bool) launcher.Opener {
	if yank {
		return launcher.NewClipboardOpener()
	}
	return launcher.NewSystemOpener()
}

// setup binds the persistent flags to BO_* environment variables and builds
// the logger. It runs before every command.
func (a *app) setup(cmd *cobra.Command) error {
	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	flags := cmd.Root().PersistentFlags()
	for _, name := range []string{"config", "log-level"} {
		if err := a.v.BindPFlag(name, flags.Lookup(name)); err != nil {
			return fmt.Errorf("bind flag %s: %w", name, err)
		}
	}

	cfg := logging.DefaultConfig()
	cfg.Out = a.logOut
	cfg, err := logging.Configure(cfg, a.v.GetString("log-level"), a.v.GetString("log-format"))
	if err != nil {
		return err
	}
	a.log = logging.New(cfg)
	return nil
}

func (a *app) configPath() (string, error) {
	path, err := storage.ResolvePath(a.v.GetString("config"), a.paths)
	if err != nil {
		return "", fmt.Errorf("locate config file: %w", err)
	}
	return path, nil
}

func (a *app) storage() (*storage.TOMLStorage, error) {
	path, err := a.configPath()
	if err != nil {
		return nil, err
	}
	a.log.Debug().Str("path", path).Msg("using config file")
	return storage.NewTOMLStorage(path), nil
}

func (a *app) load() (*storage.TOMLStorage, *model.Config, error) {
	s, err := a.storage()
	if err != nil {
		return nil, nil, err
	}
	cfg, err := s.Load()
	if err != nil {
		return nil, nil, err
	}
	return s, cfg, nil
}
