// Command glasschat is a terminal chat client with a simulated AI
// assistant. Run without arguments it opens the interactive client; the
// subcommands expose the same conversations to scripts.
package main

import (
	"fmt"
	"os"
	"time"

	"glasschat/internal/config"
	"glasschat/internal/logging"
	"glasschat/internal/profile"
	"glasschat/internal/seed"
	"glasschat/internal/session"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Global flags
	configPath string
	verbose    bool

	// Loaded in PersistentPreRunE
	appConfig *config.Config
	logger    *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "glasschat",
	Short: "glasschat - a glass-styled terminal chat client",
	Long: `glasschat is a terminal chat client with a simulated AI assistant.

Conversations are seeded from a built-in list (or --config seed_path) and
live in memory. Replies are canned and arrive after a short typing delay.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		appConfig = cfg

		// The interactive client owns the terminal, so it logs to a file.
		opts := logging.Options{Level: cfg.Logging.Level, Verbose: verbose}
		if cmd == cmd.Root() {
			opts.File = cfg.Logging.File
			if opts.File == "" {
				opts.File = logging.DefaultFile()
			}
		}
		logger, err = logging.New(opts)
		if err != nil {
			return err
		}
		logging.Initialize(logger)
		logging.Get(logging.CategoryBoot).Debug("configuration loaded",
			zap.String("path", configPath),
			zap.String("theme", cfg.Theme))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runInteractive,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath(), "Path to config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(listCmd, sendCmd, seedCmd, configCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// sessionOptions turns the session section into controller options.
func sessionOptions(cfg *config.Config) (session.Options, error) {
	policy, err := session.ParsePolicy(cfg.Session.ReplyPolicy)
	if err != nil {
		return session.Options{}, err
	}
	return session.Options{
		ReplyDelay:        cfg.GetReplyDelay(),
		VoiceCaptureDelay: cfg.GetVoiceCaptureDelay(),
		VoiceStopDelay:    cfg.GetVoiceStopDelay(),
		Policy:            policy,
		Replies:           session.NewCannedReplies(cfg.Session.CannedReplies, cfg.Session.ReplySeed),
		Now:               time.Now,
	}, nil
}

// profileSettings is the profile screen's starting state.
func profileSettings(cfg *config.Config) profile.Settings {
	mode, err := profile.ParseAIMode(cfg.Profile.AIMode)
	if err != nil {
		mode = profile.ModeBalanced
	}
	return profile.Settings{Mode: mode, Notifications: cfg.Profile.Notifications}
}

// loadSeed reads the configured seed, or the built-in one.
func loadSeed(cfg *config.Config) (*seed.Data, error) {
	data, err := seed.Load(cfg.SeedPath)
	if err != nil {
		return nil, err
	}
	logging.Get(logging.CategoryStore).Debug("seed loaded",
		zap.String("path", cfg.SeedPath),
		zap.Int("conversations", len(data.Conversations)))
	return data, nil
}
