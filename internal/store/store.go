// Package store loads and saves the switch registry file.
//
// The file is read once when a command starts and rewritten in place when a
// mutating command finishes. It is not locked: two concurrent invocations
// race and the last writer wins.
package store

import (
	"bufio"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/glopal/envswitch/internal/parser"
	"github.com/glopal/envswitch/internal/registry"
	"github.com/rs/zerolog"
	"github.com/samber/oops"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Store is the registry file at a fixed path.
type Store struct {
	path string
	log  zerolog.Logger
}

// New returns a store backed by the file at path.
func New(path string, log zerolog.Logger) *Store {
	return &Store{path: path, log: log.With().Str("registry", path).Logger()}
}

// Path returns the registry file location.
func (s *Store) Path() string {
	return s.path
}

// Load reads the registry. A missing file is created empty, together with
// its parent directories, and yields an empty registry, as does a file of
// zero length. Any other failure, including malformed content, is fatal to
// the caller.
func (s *Store) Load() (*registry.Registry, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		if err := s.create(); err != nil {
			return nil, err
		}
		return registry.New(), nil
	}
	if err != nil {
		return nil, oops.Wrapf(err, "opening registry file %s", s.path)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, oops.Wrapf(err, "reading registry file metadata %s", s.path)
	}
	if info.Size() == 0 {
		s.log.Debug().Msg("Registry file is empty")
		return registry.New(), nil
	}

	reg, err := parser.ParseRegistry(bufio.NewReader(f))
	if err != nil {
		return nil, oops.Wrapf(err, "reading registry file %s", s.path)
	}
	s.log.Debug().Int("categories", len(reg.Categories)).Msg("Registry loaded")
	return reg, nil
}

func (s *Store) create() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return oops.Wrapf(err, "creating registry directory %s", dir)
	}
	f, err := os.OpenFile(s.path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, filePerm)
	if err != nil {
		return oops.Wrapf(err, "creating registry file %s", s.path)
	}
	s.log.Debug().Msg("Created empty registry file")
	return f.Close()
}

// Save rewrites the registry file with reg. Only failing to encode reg or
// to open the file is returned. Write, flush and close failures are logged
// and the remaining steps still run, so a partially written file is
// possible.
func (s *Store) Save(reg *registry.Registry) error {
	data, err := parser.SerializeRegistry(reg)
	if err != nil {
		return err
	}

	f, err := os.OpenFile(s.path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, filePerm)
	if err != nil {
		return oops.Wrapf(err, "opening registry file %s for writing", s.path)
	}

	w := bufio.NewWriter(f)
	if _, err := w.Write(data); err != nil {
		s.log.Error().Err(err).Msg("Could not write serialized registry into buffer")
	}
	if err := w.Flush(); err != nil {
		s.log.Error().Err(err).Msg("Could not flush registry writer")
	}
	if err := f.Close(); err != nil {
		s.log.Error().Err(err).Msg("Could not close registry file")
	}

	s.log.Debug().Int("bytes", len(data)).Msg("Registry saved")
	return nil
}
