package cli

import (
	"path/filepath"
	"strings"
)

// AppPaths is an interface to determine application specific paths for configuration,
// logging/tracing and notebook files.
type AppPaths interface {
	ConfigDir() string
	LogDir() string
	NotebookDir() string
}

// DefaultAppPaths returns an AppPaths instance with platform-dependent defaults
// set, given appTag. appTag is a string specific to a client's application to identify it.
func DefaultAppPaths(appTag string) (AppPaths, error) {
	return appHome(appTag)
}

type appPaths struct {
	tag  string
	home string
}

var _ AppPaths = appPaths{}

// notebookExt is appended to notebook file names without an extension.
const notebookExt = ".onyx"

// NotebookPath resolves the name of a notebook file. Names without a directory
// part are located in the notebook directory.
func NotebookPath(paths AppPaths, name string) string {
	if filepath.Ext(name) == "" {
		name += notebookExt
	}
	if paths == nil || strings.ContainsRune(name, filepath.Separator) || filepath.IsAbs(name) {
		return name
	}
	if dir := paths.NotebookDir(); dir != "" {
		return filepath.Join(dir, name)
	}
	return name
}
