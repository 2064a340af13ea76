package timer

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// timestampLayout is the on-disk record format. It round-trips exactly.
const timestampLayout = time.RFC3339Nano

var _ Store = (*FileStore)(nil)

// FileStore keeps one file per timer in a directory. The file is named after
// the timer and holds its creation time. Nothing is cached: every call goes
// to the filesystem, so other processes' writes are always visible.
type FileStore struct {
	dir       string
	fs        afero.Fs
	clock     Clock
	overwrite bool
	logger    zerolog.Logger
}

// Option configures a FileStore
type Option func(*FileStore)

// WithFs sets the filesystem the store writes to
func WithFs(fs afero.Fs) Option {
	return func(s *FileStore) {
		s.fs = fs
	}
}

// WithClock sets the clock used to stamp new timers
func WithClock(c Clock) Option {
	return func(s *FileStore) {
		s.clock = c
	}
}

// WithOverwrite lets Create replace an existing timer instead of failing
func WithOverwrite(overwrite bool) Option {
	return func(s *FileStore) {
		s.overwrite = overwrite
	}
}

// WithLogger sets the store logger
func WithLogger(logger zerolog.Logger) Option {
	return func(s *FileStore) {
		s.logger = logger
	}
}

// NewFileStore creates a store rooted at dir. The directory is created on
// the first write.
func NewFileStore(dir string, opts ...Option) *FileStore {
	s := &FileStore{
		dir:    dir,
		fs:     afero.NewOsFs(),
		clock:  RealClock(),
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *FileStore) path(name string) string {
	return filepath.Join(s.dir, name)
}

// Create records the current time under name
func (s *FileStore) Create(name string) (*Timer, error) {
	if err := ValidateName(name); err != nil {
		return nil, newError(KindInvalidName, "create", name, err)
	}

	if err := s.fs.MkdirAll(s.dir, 0755); err != nil {
		return nil, newError(KindStorageIO, "create", name, errors.Wrap(err, "failed to create timer directory"))
	}

	t := &Timer{
		Name:      name,
		CreatedAt: s.clock.Now().Round(0).UTC(),
	}
	record := t.CreatedAt.Format(timestampLayout) + "\n"

	var err error
	if s.overwrite {
		err = s.replace(name, record)
	} else {
		err = s.createExclusive(name, record)
	}
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return nil, newError(KindAlreadyExists, "create", name, nil)
		}
		return nil, newError(KindStorageIO, "create", name, err)
	}

	s.logger.Debug().Str("timer", name).Time("created_at", t.CreatedAt).Msg("timer created")
	return t, nil
}

func (s *FileStore) createExclusive(name, record string) error {
	f, err := s.fs.OpenFile(s.path(name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return err
	}
	if _, err := f.WriteString(record); err != nil {
		f.Close()
		s.fs.Remove(s.path(name))
		return errors.Wrap(err, "failed to write timestamp")
	}
	return errors.Wrap(f.Close(), "failed to close timer file")
}

// replace writes to a hidden temporary file and renames it over the target,
// so readers see either the old record or the new one.
func (s *FileStore) replace(name, record string) error {
	tmp := s.path("." + name + ".tmp")
	if err := afero.WriteFile(s.fs, tmp, []byte(record), 0644); err != nil {
		s.fs.Remove(tmp)
		return errors.Wrap(err, "failed to write timestamp")
	}
	if err := s.fs.Rename(tmp, s.path(name)); err != nil {
		s.fs.Remove(tmp)
		return errors.Wrap(err, "failed to replace timer file")
	}
	return nil
}

// Read loads the timer stored under name
func (s *FileStore) Read(name string) (*Timer, error) {
	if err := ValidateName(name); err != nil {
		return nil, newError(KindInvalidName, "read", name, err)
	}

	data, err := afero.ReadFile(s.fs, s.path(name))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, newError(KindNotFound, "read", name, nil)
		}
		return nil, newError(KindStorageIO, "read", name, err)
	}

	createdAt, err := time.Parse(timestampLayout, strings.TrimSpace(string(data)))
	if err != nil {
		return nil, newError(KindStorageIO, "read", name, errors.Wrap(err, "corrupted timestamp"))
	}

	return &Timer{Name: name, CreatedAt: createdAt}, nil
}

// List returns the names of all stored timers in lexical order.
// Entries that are not valid timer files are skipped.
func (s *FileStore) List() ([]string, error) {
	entries, err := afero.ReadDir(s.fs, s.dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []string{}, nil
		}
		return nil, newError(KindStorageIO, "list", "", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.Mode().IsRegular() || ValidateName(entry.Name()) != nil {
			s.logger.Debug().Str("entry", entry.Name()).Msg("skipping non-timer entry")
			continue
		}
		names = append(names, entry.Name())
	}
	return names, nil
}

// Remove deletes the timer stored under name
func (s *FileStore) Remove(name string) error {
	if err := ValidateName(name); err != nil {
		return newError(KindInvalidName, "remove", name, err)
	}

	if err := s.fs.Remove(s.path(name)); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return newError(KindNotFound, "remove", name, nil)
		}
		return newError(KindStorageIO, "remove", name, err)
	}

	s.logger.Debug().Str("timer", name).Msg("timer removed")
	return nil
}
