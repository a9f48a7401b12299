package app

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"time"

	"github.com/kballard/go-shellquote"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/focuswatch/internal/config"
	"github.com/ayoisaiah/focuswatch/internal/logging"
	"github.com/ayoisaiah/focuswatch/internal/osutil"
	"github.com/ayoisaiah/focuswatch/internal/pathutil"
	"github.com/ayoisaiah/focuswatch/internal/status"
)

const (
	releasesURL        = "https://github.com/ayoisaiah/focuswatch/releases"
	updateCheckTimeout = 10 * time.Second
)

var logCloser io.Closer

// firstNonEmptyString returns its first non-empty argument, or "" if all
// arguments are empty.
func firstNonEmptyString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

// latestRelease follows the "latest" redirect of the releases page at base
// and returns the tag it lands on.
func latestRelease(
	ctx context.Context,
	client *http.Client,
	base string,
) (string, error) {
	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodGet,
		base+"/latest",
		http.NoBody,
	)
	if err != nil {
		return "", errUpdateCheck.Wrap(err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", errUpdateCheck.Wrap(err)
	}

	_ = resp.Body.Close()

	landed := resp.Request.URL.String()

	tag, ok := strings.CutPrefix(landed, base+"/tag/")
	if !ok || tag == "" {
		return "", errNoRelease.Fmt(landed)
	}

	return tag, nil
}

// checkForUpdates tells the user when a newer release than the running one
// is published.
func checkForUpdates(ctx context.Context, a *cli.App) {
	spinner, _ := pterm.DefaultSpinner.Start("Checking for updates...")

	ctx, cancel := context.WithTimeout(ctx, updateCheckTimeout)
	defer cancel()

	latest, err := latestRelease(ctx, http.DefaultClient, releasesURL)
	if err != nil {
		slog.WarnContext(ctx, "update check failed", slog.Any("error", err))
		spinner.Fail("Unable to check for updates")

		return
	}

	if latest == a.Version {
		spinner.Success(pterm.Sprintf("%s %s is the latest release", a.Name, latest))
		return
	}

	_ = spinner.Stop()

	pterm.Warning.WithPrefix(pterm.Prefix{
		Text:  "UPDATE AVAILABLE",
		Style: pterm.NewStyle(pterm.BgYellow, pterm.FgBlack),
	}).Printfln("%s %s is out (running %s): %s/tag/%s",
		a.Name, latest, a.Version, releasesURL, latest)
}

// editorCommand builds the command that opens path in the user's editor.
// $VISUAL and $EDITOR may carry arguments, e.g. "code --wait".
func editorCommand(
	ctx context.Context,
	getenv func(string) string,
	goos, path string,
) (*exec.Cmd, error) {
	fallback := "nano"
	if goos == osutil.Windows {
		fallback = "notepad.exe"
	}

	line := firstNonEmptyString(getenv("VISUAL"), getenv("EDITOR"), fallback)

	args, err := shellquote.Split(line)
	if err != nil || len(args) == 0 {
		return nil, errEditor.Fmt(line).Wrap(err)
	}

	name, rest := args[0], append(args[1:len(args):len(args)], path)

	return exec.CommandContext(ctx, name, rest...), nil
}

// editConfigAction opens the config file in the user's editor.
func editConfigAction(ctx *cli.Context) error {
	path := pathutil.ConfigFilePath()
	runCtx := contextOf(ctx)

	cmd, err := editorCommand(runCtx, os.Getenv, runtime.GOOS, path)
	if err != nil {
		return err
	}

	cmd.Stdin = config.Stdin
	cmd.Stdout = config.Stdout
	cmd.Stderr = config.Stderr

	slog.InfoContext(runCtx, "editing config",
		slog.String("editor", cmd.Path),
		slog.String("path", path),
	)

	if err := cmd.Run(); err != nil {
		return errEditor.Fmt(cmd.Path).Wrap(err)
	}

	return nil
}

// statusAction handles the status command and prints the status of the
// running session.
func statusAction(_ *cli.Context) error {
	return status.Report(
		config.Stdout,
		pathutil.DBFilePath(),
		pathutil.StatusFilePath(),
	)
}

func printJSON(w io.Writer, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(b))

	return err
}

func beforeAction(ctx *cli.Context) error {
	env, err := config.LoadEnv()
	if err != nil {
		return err
	}

	// Override the default help template
	cli.AppHelpTemplate = helpText()

	// Override the default version printer
	oldVersionPrinter := cli.VersionPrinter
	cli.VersionPrinter = func(c *cli.Context) {
		oldVersionPrinter(c)
		fmt.Printf("%s/%s\n", releasesURL, c.App.Version)

		if env.CheckForUpdates() {
			checkForUpdates(contextOf(c), c.App)
		}
	}

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	if env.ColorDisabled() || ctx.Bool("no-color") {
		disableStyling()
	}

	if err := pathutil.Initialize(env.Env); err != nil {
		return err
	}

	logCloser, err = logging.Setup(logging.Options{
		Path:  pathutil.LogFilePath(),
		Debug: env.Debug,
	})
	if err != nil {
		return err
	}

	slog.DebugContext(
		contextOf(ctx),
		"focuswatch starting",
		slog.String("version", config.Version),
		slog.Any("args", ctx.Args().Slice()),
	)

	return nil
}

func afterAction(ctx *cli.Context) error {
	slog.InfoContext(contextOf(ctx), "exiting focuswatch")

	if logCloser != nil {
		return logCloser.Close()
	}

	return nil
}

func contextOf(ctx *cli.Context) context.Context {
	if ctx.Context != nil {
		return ctx.Context
	}

	return context.Background()
}
