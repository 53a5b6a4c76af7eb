package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"glasschat/cmd/glasschat/chat"
	"glasschat/cmd/glasschat/ui"
	"glasschat/internal/clipboard"
	"glasschat/internal/config"
	"glasschat/internal/conversation"
	"glasschat/internal/logging"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// runInteractive opens the client and, alongside it, watches the config
// file so theme and timing edits apply without a restart.
func runInteractive(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	boot := logging.Get(logging.CategoryBoot)

	data, err := loadSeed(appConfig)
	if err != nil {
		return err
	}

	// Query the terminal once, before the program takes over stdin.
	dark := lipgloss.HasDarkBackground()
	hasDark := func() bool { return dark }

	theme, err := ui.ResolveTheme(appConfig.Theme, hasDark)
	if err != nil {
		return err
	}
	opts, err := sessionOptions(appConfig)
	if err != nil {
		return err
	}

	model := chat.New(chat.Config{
		Store: conversation.NewStore(data.Conversations),
		ReloadSeed: func() ([]conversation.Conversation, error) {
			fresh, err := loadSeed(appConfig)
			if err != nil {
				return nil, err
			}
			return fresh.Conversations, nil
		},
		User:      data.Profile,
		Settings:  profileSettings(appConfig),
		Theme:     theme,
		Session:   opts,
		Clipboard: clipboard.System{},
	})

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer cancel()
		final, err := p.Run()
		if m, ok := final.(chat.Model); ok {
			m.Shutdown()
		}
		if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
			return fmt.Errorf("chat program failed: %w", err)
		}
		return nil
	})

	watcher, err := config.NewWatcher(configPath, logging.Get(logging.CategoryConfig), func(c *config.Config) {
		next, err := ui.ResolveTheme(c.Theme, hasDark)
		if err != nil {
			return
		}
		nextOpts, err := sessionOptions(c)
		if err != nil {
			return
		}
		p.Send(chat.ConfigChangedMsg{Theme: next, Session: nextOpts})
	})
	if err != nil {
		boot.Warn("config hot reload disabled", zap.Error(err))
	} else {
		g.Go(func() error { return watcher.Run(gctx) })
	}

	boot.Info("interactive client started",
		zap.Int("conversations", len(data.Conversations)),
		zap.String("theme", theme.Name),
		zap.String("reply_policy", string(opts.Policy)))

	return g.Wait()
}
