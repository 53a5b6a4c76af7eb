package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"glasschat/internal/conversation"
	"glasschat/internal/logging"
	"glasschat/internal/session"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var sendTimeout time.Duration

// sendCmd runs one exchange without the UI: the message is appended, the
// simulated assistant replies on its usual timer, and both are printed.
var sendCmd = &cobra.Command{
	Use:   "send <conversation-id> <message...>",
	Short: "Send one message and wait for the reply",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runSend,
}

func init() {
	sendCmd.Flags().DurationVar(&sendTimeout, "timeout", 30*time.Second, "Give up waiting for the reply after this long")
}

func runSend(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()

	data, err := loadSeed(appConfig)
	if err != nil {
		return err
	}
	store := conversation.NewStore(data.Conversations)

	id := args[0]
	conv, err := store.Get(id)
	if err != nil {
		return err
	}
	text := strings.Join(args[1:], " ")

	opts, err := sessionOptions(appConfig)
	if err != nil {
		return err
	}
	opts.Logger = logging.Get(logging.CategorySession)

	ctrl := session.New(id, store, opts)
	defer ctrl.Close()

	sent := make(chan conversation.Message, 1)
	replies := make(chan conversation.Message, 1)
	ctrl.Subscribe(func(ev session.Event) {
		if ev.Kind != session.EventMessageAppended {
			return
		}
		out := replies
		if ev.Message.IsUser() {
			out = sent
		}
		select {
		case out <- ev.Message:
		default:
		}
	})

	// Submit publishes the user message before it returns.
	ctrl.Submit(text)
	var msg conversation.Message
	select {
	case msg = <-sent:
	default:
		return errors.New("message is empty")
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "[%s] you: %s\n", msg.SentAt, msg.Text)

	select {
	case reply := <-replies:
		fmt.Fprintf(out, "[%s] %s: %s\n", reply.SentAt, conv.Title, reply.Text)
		logging.Get(logging.CategorySession).Debug("exchange complete",
			zap.String("conversation", id),
			zap.String("reply_id", reply.ID))
		return nil
	case <-ctx.Done():
		return fmt.Errorf("no reply from %s: %w", conv.Title, ctx.Err())
	}
}
