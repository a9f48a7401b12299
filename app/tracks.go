package app

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/focuswatch/internal/audio"
	"github.com/ayoisaiah/focuswatch/internal/config"
	"github.com/ayoisaiah/focuswatch/internal/pathutil"
	"github.com/ayoisaiah/focuswatch/internal/track"
	"github.com/ayoisaiah/focuswatch/internal/ui"
)

type trackInfo struct {
	ID     track.ID     `json:"id"`
	Path   string       `json:"path"`
	Format audio.Format `json:"format"`
}

func catalogTracks(catalog *track.Catalog) ([]trackInfo, error) {
	ids, err := catalog.List()
	if err != nil {
		return nil, err
	}

	tracks := make([]trackInfo, 0, len(ids))

	for _, id := range ids {
		asset, err := catalog.Resolve(id)
		if err != nil {
			return nil, err
		}

		tracks = append(tracks, trackInfo{
			ID:     id,
			Path:   asset.Path,
			Format: asset.Format,
		})
	}

	return tracks, nil
}

// printTracksTable prints the available tracks to w.
func printTracksTable(w io.Writer, tracks []trackInfo) error {
	tableBody := make([][]string, 0, len(tracks)+1)
	tableBody = append(tableBody, []string{"#", "TRACK", "FORMAT", "PATH"})

	for i, t := range tracks {
		tableBody = append(tableBody, []string{
			fmt.Sprintf("%d", i+1),
			ui.Highlight(string(t.ID)),
			string(t.Format),
			t.Path,
		})
	}

	return ui.PrintTable(w, tableBody)
}

// tracksAction lists the tracks that can be passed to --track.
func tracksAction(ctx *cli.Context) error {
	catalog := track.NewCatalog(pathutil.TracksDir())

	tracks, err := catalogTracks(catalog)
	if err != nil {
		return err
	}

	if ctx.Bool("json") {
		return printJSON(config.Stdout, tracks)
	}

	if len(tracks) == 0 {
		pterm.Info.Printfln(
			"No tracks found. Add mp3, ogg, flac or wav files to %s",
			catalog.Dir(),
		)

		return nil
	}

	return printTracksTable(config.Stdout, tracks)
}
