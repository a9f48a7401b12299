package notify

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/focuswatch/internal/osutil"
	"github.com/ayoisaiah/focuswatch/internal/session"
)

type fakeNotifier struct {
	err    error
	titles []string
	msgs   []string
}

func (n *fakeNotifier) Notify(title, msg string) error {
	n.titles = append(n.titles, title)
	n.msgs = append(n.msgs, msg)

	return n.err
}

var graceOutcome = session.Outcome{
	SessionID:        "abc",
	Phase:            session.Failed,
	Reason:           session.ReasonGraceExpired,
	RemainingSeconds: 3585,
}

func TestOutcomeEnv(t *testing.T) {
	assert.Equal(t, []string{
		"FOCUSWATCH_SESSION_ID=abc",
		"FOCUSWATCH_OUTCOME=failed",
		"FOCUSWATCH_REASON=grace period expired",
	}, OutcomeEnv(graceOutcome))
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "focuswatch: session failed", Title(graceOutcome))
	assert.Equal(
		t,
		"focuswatch: session completed",
		Title(session.Outcome{Phase: session.Completed, Success: true}),
	)
}

func TestRunCmd(t *testing.T) {
	if runtime.GOOS == osutil.Windows {
		t.Skip("requires a POSIX shell")
	}

	out := filepath.Join(t.TempDir(), "reason.txt")

	err := RunCmd(
		context.Background(),
		`sh -c 'printf "%s" "$FOCUSWATCH_REASON" > "$0"' `+out,
		OutcomeEnv(graceOutcome),
	)
	require.NoError(t, err)

	b, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "grace period expired", string(b))
}

func TestRunCmdErrors(t *testing.T) {
	require.NoError(t, RunCmd(context.Background(), "   ", nil))

	err := RunCmd(context.Background(), `echo "unterminated`, nil)
	assert.ErrorIs(t, err, errParseCmd)

	err = RunCmd(context.Background(), "focuswatch-command-that-does-not-exist", nil)
	assert.ErrorIs(t, err, errRunCmd)
}

func TestHooksLogFailures(t *testing.T) {
	var buf bytes.Buffer

	n := &fakeNotifier{err: assert.AnError}
	h := &Hooks{
		Notifier: n,
		Cmd:      "focuswatch-command-that-does-not-exist",
		Logger:   slog.New(slog.NewTextHandler(&buf, nil)),
	}

	h.SessionEnded(context.Background(), graceOutcome)

	assert.Equal(t, []string{"focuswatch: session failed"}, n.titles)
	assert.Equal(t, []string{graceOutcome.Message()}, n.msgs)
	assert.Contains(t, buf.String(), "notification failed")
	assert.Contains(t, buf.String(), "session command failed")
}
