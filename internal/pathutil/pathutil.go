// Package pathutil manages application file paths and locations
package pathutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/adrg/xdg"

	"github.com/ayoisaiah/focuswatch/internal/osutil"
)

const appDir = "focuswatch"

var errNotInitialized = errors.New(
	"pathutil.Initialize() must be called before accessing paths",
)

// Paths holds all application path configurations.
type Paths struct {
	configDir      string
	configFileName string
	dbFileName     string
	statusFileName string
	logFileName    string

	// Computed absolute paths
	configFilePath string
	dbFilePath     string
	statusFilePath string
	logFilePath    string
	tracksDir      string
}

var (
	paths *Paths
	once  sync.Once
)

// Initialize must be called once at program startup. A non-empty env
// (e.g. "development") gives every file an env-specific name so that
// instances do not share state.
func Initialize(env string) error {
	var initErr error

	once.Do(func() {
		p := newPaths(env)

		initErr = p.computePaths()
		if initErr == nil {
			paths = p
		}
	})

	return initErr
}

func newPaths(env string) *Paths {
	p := &Paths{
		configDir:      appDir,
		configFileName: "config.yml",
		dbFileName:     "focuswatch.db",
		statusFileName: "status.json",
		logFileName:    "focuswatch.log",
	}

	p.applyEnvironmentOverrides(env)

	return p
}

// Must panics if paths haven't been initialized.
func Must() *Paths {
	if paths == nil {
		panic(errNotInitialized)
	}

	return paths
}

func Dir() string {
	return appDir
}

func ConfigFilePath() string {
	return Must().configFilePath
}

func DBFilePath() string {
	return Must().dbFilePath
}

func StatusFilePath() string {
	return Must().statusFilePath
}

func LogFilePath() string {
	return Must().logFilePath
}

// TracksDir is the directory the track catalog is read from.
func TracksDir() string {
	return Must().tracksDir
}

func (p *Paths) applyEnvironmentOverrides(env string) {
	env = strings.TrimSpace(env)
	if env == "" {
		return
	}

	p.configFileName = fmt.Sprintf("config_%s.yml", env)
	p.dbFileName = fmt.Sprintf("focuswatch_%s.db", env)
	p.statusFileName = fmt.Sprintf("status_%s.json", env)
	p.logFileName = fmt.Sprintf("focuswatch_%s.log", env)
}

func (p *Paths) computePaths() error {
	var err error

	relPath := filepath.Join(p.configDir, p.configFileName)

	p.configFilePath, err = xdg.ConfigFile(relPath)
	if err != nil {
		return err
	}

	dataDir, err := xdg.DataFile(p.configDir)
	if err != nil {
		return err
	}

	err = os.MkdirAll(dataDir, osutil.DirPermission)
	if err != nil {
		return err
	}

	p.dbFilePath = filepath.Join(dataDir, p.dbFileName)

	p.statusFilePath = filepath.Join(dataDir, p.statusFileName)

	p.logFilePath = filepath.Join(dataDir, "log", p.logFileName)

	p.tracksDir = filepath.Join(dataDir, "tracks")

	return nil
}

// StripExtension returns the input file name without its extension.
func StripExtension(fileName string) string {
	return fileName[:len(fileName)-len(filepath.Ext(fileName))]
}
