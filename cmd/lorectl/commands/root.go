package commands

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"inkbound-server/internal/config"
	"inkbound-server/internal/logger"
	"inkbound-server/internal/lore"
	"inkbound-server/internal/store"
)

// options - общие флаги всех команд.
type options struct {
	storePath string
	envFile   string
	verbose   bool
}

// NewRootCmd собирает дерево команд lorectl.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:           "lorectl",
		Short:         "Inkbound lore CLI",
		Long:          `Command line interface for inspecting and editing the Inkbound character store.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.storePath, "file", "", "Path to characters file (default: CHARACTERS_PATH)")
	rootCmd.PersistentFlags().StringVar(&opts.envFile, "env-file", ".env", "Path to .env file")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log store operations to stderr")

	rootCmd.AddCommand(newListCmd(opts))
	rootCmd.AddCommand(newAddCmd(opts))
	rootCmd.AddCommand(newLoreCmd(opts))
	rootCmd.AddCommand(newPersonaCmd(opts))

	return rootCmd
}

// openStore открывает хранилище по флагу --file или по конфигурации окружения.
func (o *options) openStore() (*store.FileStore, *zap.Logger, error) {
	level := "error"
	if o.verbose {
		level = "debug"
	}
	log, err := logger.New(logger.Config{Level: level, Encoding: "console", OutputPath: "stderr", Service: "lorectl"})
	if err != nil {
		return nil, nil, err
	}

	path := o.storePath
	if path == "" {
		cfg, err := config.LoadConfig(o.envFile)
		if err != nil {
			return nil, nil, err
		}
		path = cfg.CharactersPath
	}

	return store.NewFileStore(path, log), log, nil
}

func (o *options) openBuilder() (*lore.Builder, error) {
	s, log, err := o.openStore()
	if err != nil {
		return nil, err
	}
	return lore.NewBuilder(s, log), nil
}
