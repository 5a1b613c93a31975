package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/Oluwafemi-Adelekan/chowpal-demo/internal/cli/client"
	"github.com/Oluwafemi-Adelekan/chowpal-demo/internal/cli/config"
	"github.com/Oluwafemi-Adelekan/chowpal-demo/internal/cli/types"
	"github.com/Oluwafemi-Adelekan/chowpal-demo/internal/cli/ui"
)

// chatRequestTimeout allows for upstream retries on a throttled model.
const chatRequestTimeout = 90 * time.Second

// chatCmd is the chat command
var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "start an interactive chat with the food assistant",
	Long: `Start an interactive chat session with the Chowpal assistant.

The conversation history is kept for the duration of the session and sent with
every message, so the assistant remembers earlier turns. Recommended items are
rendered below each reply.

In-session commands:
  /new      start a fresh conversation
  /history  replay the server-side conversation log
  /quit     leave the chat`,
	Example: `  # Start interactive chat
  $ chowctl chat

  # Ask a one-off question without entering the loop
  $ chowctl chat "what goes well with jollof rice?"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runChat,
}

func init() {
	chatCmd.SilenceUsage = true
}

func runChat(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		ui.PrintError("failed to load config: %v", err)
		return fmt.Errorf("config load failed")
	}

	apiClient, err := client.NewAPIClient(cfg.Server)
	if err != nil {
		ui.PrintError("failed to create client: %v", err)
		return fmt.Errorf("client creation failed")
	}

	// Reuse the saved session so conversations survive CLI restarts.
	if cfg.SessionID == "" {
		cfg.SessionID = uuid.New().String()
		if err := cfg.Save(); err != nil {
			ui.PrintWarning("failed to persist session id: %v", err)
		}
	}

	session := &chatSession{
		client:    apiClient,
		cfg:       cfg,
		sessionID: cfg.SessionID,
	}

	// One-off mode: send the argument and exit.
	if len(args) > 0 {
		return session.send(args[0])
	}

	ui.PrintChatWelcomeBanner()
	return session.loop()
}

type chatSession struct {
	client    *client.APIClient
	cfg       *config.Config
	sessionID string
	history   []types.Turn
}

func (s *chatSession) loop() error {
	for {
		var input string
		prompt := &survey.Input{Message: "You:"}
		if err := survey.AskOne(prompt, &input); err != nil {
			if errors.Is(err, terminal.InterruptErr) {
				fmt.Println()
				ui.PrintInfo("Bye! Come back when you're hungry.")
				return nil
			}
			ui.PrintError("failed to read input: %v", err)
			return fmt.Errorf("input failed")
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		switch input {
		case "/quit", "/exit", "exit", "quit":
			ui.PrintInfo("Bye! Come back when you're hungry.")
			return nil
		case "/new":
			if err := s.reset(); err != nil {
				ui.PrintError("failed to start new conversation: %v", err)
			}
			continue
		case "/history":
			if err := s.replayHistory(); err != nil {
				ui.PrintError("failed to fetch history: %v", err)
			}
			continue
		}

		if err := s.send(input); err != nil {
			ui.PrintError("%v", err)
		}
	}
}

func (s *chatSession) send(message string) error {
	ctx, cancel := context.WithTimeout(context.Background(), chatRequestTimeout)
	defer cancel()

	resp, err := s.client.Chat(ctx, types.ChatRequest{
		Message:   message,
		History:   s.history,
		SessionID: s.sessionID,
	})
	if err != nil {
		return fmt.Errorf("chat request failed: %w", err)
	}

	now := time.Now()
	s.history = append(s.history,
		types.Turn{Sender: "user", Text: message, Timestamp: now},
		types.Turn{Sender: "ai", Text: resp.Text, Timestamp: now, Cards: resp.Cards},
	)

	ui.PrintAssistant(resp.Text)
	ui.PrintCards(resp.Cards)
	return nil
}

func (s *chatSession) reset() error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.client.NewSession(ctx, s.sessionID); err != nil {
		return err
	}

	s.history = nil
	s.sessionID = uuid.New().String()
	s.cfg.SessionID = s.sessionID
	if err := s.cfg.Save(); err != nil {
		ui.PrintWarning("failed to persist session id: %v", err)
	}

	ui.PrintSuccess("Started a new conversation")
	return nil
}

func (s *chatSession) replayHistory() error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	turns, err := s.client.History(ctx, s.sessionID)
	if err != nil {
		return err
	}
	if len(turns) == 0 {
		ui.PrintInfo("No conversation yet.")
		return nil
	}

	for _, turn := range turns {
		if turn.Sender == "ai" {
			ui.PrintAssistant(turn.Text)
			ui.PrintCards(turn.Cards)
			continue
		}
		fmt.Printf("%s %s\n", ui.Styles.Bold.Render("You:"), turn.Text)
	}
	return nil
}
