package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/arcanaland/cardsplit/internal/config"
	"github.com/arcanaland/cardsplit/internal/logger"
)

var (
	// Global flags
	configPath  string
	verbose     bool
	inputDir    string
	outputDir   string
	onCollision string

	// Loaded before any subcommand runs
	cfg *config.Config
	log *zap.Logger
)

// RootCmd represents the base command; without a subcommand it splits every configured category
var RootCmd = &cobra.Command{
	Use:   "cardsplit [category...]",
	Short: "Split card definition files into one file per card",
	Long: `Cardsplit reads one source file per card category (agendas.clj, assets.clj, ...),
cuts it into card blocks and writes every card to <category>/<card-name>.clj,
prefixed with the header of its source file.

Run without a subcommand to split every configured category.`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		log, err = logger.New(verbose)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		cfg, err = config.LoadConfig(configPath)
		if err != nil {
			return err
		}
		if err := applyConfigFlags(cmd, cfg); err != nil {
			return err
		}
		log.Debug("configuration loaded",
			zap.Strings("categories", cfg.Categories),
			zap.String("input_dir", cfg.InputDir),
			zap.String("output_dir", cfg.OutputDir))
		return nil
	},
	RunE: runSplit,
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (default $XDG_CONFIG_HOME/cardsplit/config.toml)")
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging on stderr")
	RootCmd.PersistentFlags().StringVarP(&inputDir, "input", "i", "", "directory holding <category>.clj files (overrides config)")
	RootCmd.PersistentFlags().StringVarP(&outputDir, "output", "o", "", "directory receiving <category>/ directories (overrides config)")
	RootCmd.PersistentFlags().StringVar(&onCollision, "on-collision", "", "policy for cards with the same file name: error, overwrite or suffix")

	addSplitFlags(RootCmd)
}

// applyConfigFlags copies explicitly set global flags over the loaded config.
func applyConfigFlags(cmd *cobra.Command, c *config.Config) error {
	flags := cmd.Flags()
	if flags.Changed("input") {
		c.InputDir = inputDir
	}
	if flags.Changed("output") {
		c.OutputDir = outputDir
	}
	if flags.Changed("on-collision") {
		c.OnCollision = onCollision
	}
	return c.Validate()
}

// syncLogger flushes the logger once the command tree has finished,
// whether or not the command failed.
var syncLogger = func() {
	if log != nil {
		_ = log.Sync()
	}
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	err := RootCmd.Execute()
	syncLogger()
	return err
}
