package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/focuswatch/internal/osutil"
)

func envOf(vars map[string]string) func(string) string {
	return func(key string) string {
		return vars[key]
	}
}

func TestEditorCommand(t *testing.T) {
	testCases := []struct {
		vars     map[string]string
		name     string
		goos     string
		wantArgs []string
	}{
		{
			name:     "visual wins over editor",
			vars:     map[string]string{"VISUAL": "vim", "EDITOR": "nano"},
			goos:     "linux",
			wantArgs: []string{"vim", "/cfg/config.yml"},
		},
		{
			name:     "editor with arguments",
			vars:     map[string]string{"EDITOR": "code --wait"},
			goos:     "darwin",
			wantArgs: []string{"code", "--wait", "/cfg/config.yml"},
		},
		{
			name:     "quoted editor path",
			vars:     map[string]string{"EDITOR": `"/opt/my editor/bin/ed" -n`},
			goos:     "linux",
			wantArgs: []string{"/opt/my editor/bin/ed", "-n", "/cfg/config.yml"},
		},
		{
			name:     "unix fallback",
			goos:     "linux",
			wantArgs: []string{"nano", "/cfg/config.yml"},
		},
		{
			name:     "windows fallback",
			goos:     osutil.Windows,
			wantArgs: []string{"notepad.exe", "/cfg/config.yml"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cmd, err := editorCommand(
				context.Background(),
				envOf(tc.vars),
				tc.goos,
				"/cfg/config.yml",
			)
			require.NoError(t, err)
			assert.Equal(t, tc.wantArgs, cmd.Args)
		})
	}
}

func TestEditorCommandRejectsUnbalancedQuotes(t *testing.T) {
	_, err := editorCommand(
		context.Background(),
		envOf(map[string]string{"EDITOR": `"vim`}),
		"linux",
		"/cfg/config.yml",
	)
	assert.ErrorIs(t, err, errEditor)
}

func releasesServer(t *testing.T, tag string) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/releases/latest", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/releases/tag/"+tag, http.StatusFound)
	})
	mux.HandleFunc("/releases/tag/", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return srv
}

func TestLatestRelease(t *testing.T) {
	srv := releasesServer(t, "v0.4.0")

	tag, err := latestRelease(context.Background(), srv.Client(), srv.URL+"/releases")
	require.NoError(t, err)
	assert.Equal(t, "v0.4.0", tag)
}

func TestLatestReleaseWithoutTag(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)

	_, err := latestRelease(context.Background(), srv.Client(), srv.URL+"/releases")
	assert.ErrorIs(t, err, errNoRelease)
}

func TestLatestReleaseUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL + "/releases"
	srv.Close()

	_, err := latestRelease(context.Background(), srv.Client(), base)
	assert.ErrorIs(t, err, errUpdateCheck)
}
