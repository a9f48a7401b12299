// Package status mirrors the running session to a small JSON file so that
// other processes (shell prompts, status bars) can show it.
package status

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/ayoisaiah/focuswatch/internal/osutil"
	"github.com/ayoisaiah/focuswatch/internal/profile"
	"github.com/ayoisaiah/focuswatch/internal/session"
	"github.com/ayoisaiah/focuswatch/internal/timeutil"
)

// Status is the content of the status file.
type Status struct {
	UpdatedAt             time.Time     `json:"updated_at"`
	GraceRemainingSeconds *int          `json:"grace_remaining_seconds,omitempty"`
	SessionID             string        `json:"session_id"`
	Track                 string        `json:"track"`
	Phase                 session.Phase `json:"phase"`
	DurationSeconds       int           `json:"duration_seconds"`
	RemainingSeconds      int           `json:"remaining_seconds"`
	IsPremium             bool          `json:"is_premium"`
}

// Write replaces the file at path with s.
func Write(path string, s Status) error {
	b, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*")
	if err != nil {
		return err
	}

	_, err = tmp.Write(append(b, '\n'))
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}

	if err != nil {
		_ = os.Remove(tmp.Name())
		return err
	}

	if err := os.Chmod(tmp.Name(), osutil.FilePermission); err != nil {
		_ = os.Remove(tmp.Name())
		return err
	}

	return os.Rename(tmp.Name(), path)
}

// Read decodes the status file at path.
func Read(path string) (Status, error) {
	var s Status

	b, err := os.ReadFile(path)
	if err != nil {
		return s, err
	}

	err = json.Unmarshal(b, &s)

	return s, err
}

// Render formats s for a single line of terminal output.
func Render(s Status) string {
	label := fmt.Sprintf("[Focus %dm · %s]", s.DurationSeconds/60, s.Track)

	if n, ok := graceRemaining(s); ok {
		return fmt.Sprintf(
			"%s: %s (return within %ds)",
			label,
			timeutil.Clock(s.RemainingSeconds),
			n,
		)
	}

	return fmt.Sprintf("%s: %s", label, timeutil.Clock(s.RemainingSeconds))
}

func graceRemaining(s Status) (int, bool) {
	if s.Phase != session.GraceActive || s.GraceRemainingSeconds == nil {
		return 0, false
	}

	return *s.GraceRemainingSeconds, true
}

// Report prints the status of the running session to w. Nothing is printed
// when no instance holds the profile database or no session is running.
func Report(w io.Writer, dbPath, statusPath string) error {
	running, err := profile.Locked(dbPath)
	if err != nil || !running {
		return err
	}

	s, err := Read(statusPath)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	if err != nil {
		return err
	}

	if !s.Phase.Active() {
		return nil
	}

	_, err = fmt.Fprintln(w, Render(s))

	return err
}

// Recorder keeps the status file in step with a session. It is meant to be
// one of the observers of a session controller.
type Recorder struct {
	Now       func() time.Time
	Logger    *slog.Logger
	Path      string
	SessionID string
	Track     string
	Duration  int
	IsPremium bool
}

// BindSession records which session is being mirrored.
func (r *Recorder) BindSession(id string, cfg session.Config) {
	r.SessionID = id
	r.Track = string(cfg.TrackID)
	r.Duration = cfg.DurationSeconds
	r.IsPremium = cfg.IsPremium
}

// SessionUpdated writes s to the status file.
func (r *Recorder) SessionUpdated(s session.State) {
	now := time.Now
	if r.Now != nil {
		now = r.Now
	}

	err := Write(r.Path, Status{
		SessionID:             r.SessionID,
		Track:                 r.Track,
		Phase:                 s.Phase,
		DurationSeconds:       r.Duration,
		RemainingSeconds:      s.RemainingSeconds,
		GraceRemainingSeconds: s.GraceRemainingSeconds,
		IsPremium:             r.IsPremium,
		UpdatedAt:             now().UTC(),
	})
	if err != nil {
		r.logger().Warn("unable to write status file", slog.Any("error", err))
	}
}

// SessionEnded removes the status file.
func (r *Recorder) SessionEnded(session.Outcome) {
	err := os.Remove(r.Path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		r.logger().Warn("unable to remove status file", slog.Any("error", err))
	}
}

func (r *Recorder) logger() *slog.Logger {
	if r.Logger != nil {
		return r.Logger
	}

	return slog.Default()
}
