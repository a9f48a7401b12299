// Package notify tells the user a session has ended once the terminal UI is
// out of the way: a desktop notification and an optional user command.
package notify

import (
	"context"
	"log/slog"
	"os"
	"os/exec"
	"strings"

	"github.com/gen2brain/beeep"
	"github.com/kballard/go-shellquote"

	"github.com/ayoisaiah/focuswatch/internal/session"
)

const appName = "focuswatch"

// Notifier shows a message outside the terminal.
type Notifier interface {
	Notify(title, msg string) error
}

// Desktop sends system notifications.
type Desktop struct {
	Icon string
}

func (d Desktop) Notify(title, msg string) error {
	return beeep.Notify(title, msg, d.Icon)
}

// Title returns the notification title for o.
func Title(o session.Outcome) string {
	if o.Success {
		return appName + ": session " + o.Phase.String()
	}

	return appName + ": session failed"
}

// OutcomeEnv returns the environment variables describing o that are passed
// to the session command.
func OutcomeEnv(o session.Outcome) []string {
	return []string{
		"FOCUSWATCH_SESSION_ID=" + o.SessionID,
		"FOCUSWATCH_OUTCOME=" + strings.ReplaceAll(o.Phase.String(), " ", "_"),
		"FOCUSWATCH_REASON=" + string(o.Reason),
	}
}

// RunCmd splits cmdline with shell quoting rules and runs it with env added
// to the current environment. An empty command is a no-op.
func RunCmd(ctx context.Context, cmdline string, env []string) error {
	if strings.TrimSpace(cmdline) == "" {
		return nil
	}

	cmdSlice, err := shellquote.Split(cmdline)
	if err != nil {
		return errParseCmd.Wrap(err)
	}

	if len(cmdSlice) == 0 {
		return nil
	}

	cmd := exec.CommandContext(ctx, cmdSlice[0], cmdSlice[1:]...)
	cmd.Env = append(os.Environ(), env...)

	if err := cmd.Run(); err != nil {
		return errRunCmd.Fmt(cmdSlice[0]).Wrap(err)
	}

	return nil
}

// Hooks run after a session ends. Failures are logged and never reach the
// user's outcome.
type Hooks struct {
	Notifier Notifier
	Logger   *slog.Logger
	Cmd      string
}

// SessionEnded delivers o to the notifier and the session command.
func (h *Hooks) SessionEnded(ctx context.Context, o session.Outcome) {
	log := h.Logger
	if log == nil {
		log = slog.Default()
	}

	if h.Notifier != nil {
		if err := h.Notifier.Notify(Title(o), o.Message()); err != nil {
			log.WarnContext(ctx, "notification failed", slog.Any("error", err))
		}
	}

	if err := RunCmd(ctx, h.Cmd, OutcomeEnv(o)); err != nil {
		log.WarnContext(ctx, "session command failed", slog.Any("error", err))
	}
}
