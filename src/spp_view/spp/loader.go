package spp

import (
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/pkg/errors"
)

const DefaultExtension = ".dat"

// Loader lists and loads instance files from a single directory. It keeps no
// state between calls and is safe for concurrent use.
type Loader struct {
	dir    string
	ext    string
	logger *slog.Logger
}

type Option func(*Loader)

// WithExtension selects the file extension List matches, ".dat" by default.
func WithExtension(ext string) Option {
	return func(l *Loader) {
		l.ext = ext
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(l *Loader) {
		l.logger = logger
	}
}

func NewLoader(dir string, opts ...Option) *Loader {
	l := &Loader{
		dir:    dir,
		ext:    DefaultExtension,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *Loader) Dir() string { return l.dir }

// List returns the names of the instance files in the directory, sorted
// ascending.
func (l *Loader) List() ([]string, error) {
	entries, err := os.ReadDir(l.dir)
	if err != nil {
		return nil, errors.Wrapf(ErrStorageUnavailable, "listing %s: %v", l.dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), l.ext) {
			continue
		}
		names = append(names, e.Name())
	}
	slices.Sort(names)

	l.logger.Debug("listed instances", "dir", l.dir, "count", len(names))
	return names, nil
}

// Load parses the instance file id. The name is resolved inside the
// directory only; names escaping it are reported as not found.
func (l *Loader) Load(id string) (*Instance, error) {
	root, err := os.OpenRoot(l.dir)
	if err != nil {
		return nil, errors.Wrapf(ErrStorageUnavailable, "opening %s: %v", l.dir, err)
	}
	defer root.Close()

	file, err := root.Open(id)
	if err != nil {
		return nil, errors.Wrapf(ErrFileNotFound, "%s: %v", id, err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, errors.Wrapf(ErrFileNotFound, "%s: %v", id, err)
	}
	if info.IsDir() {
		return nil, errors.Wrapf(ErrFileNotFound, "%s is a directory", id)
	}

	inst, err := Parse(file, id)
	if err != nil {
		l.logger.Debug("instance rejected", "dir", l.dir, "id", id, "err", err)
		return nil, err
	}

	l.logger.Debug("instance loaded",
		"dir", l.dir,
		"id", id,
		"constraints", inst.ConstraintCount(),
		"variables", inst.VariableCount(),
	)
	return inst, nil
}
