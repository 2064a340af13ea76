package timer

import (
	"regexp"
	"time"

	"github.com/pkg/errors"
)

// Timer is a named record holding a single creation timestamp.
// There is no stopped state: elapsed time is always now - CreatedAt.
type Timer struct {
	Name      string    `json:"name" yaml:"name"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
}

// Elapsed returns the time since the timer was created
func (t *Timer) Elapsed(now time.Time) time.Duration {
	return now.Sub(t.CreatedAt)
}

// Reader is the read side of a Store
type Reader interface {
	Read(name string) (*Timer, error)
}

// Store maps timer names to creation timestamps
type Store interface {
	Reader
	Create(name string) (*Timer, error)
	List() ([]string, error)
	Remove(name string) error
}

const maxNameLen = 128

var namePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)

// ValidateName checks that name is safe to use as a file name.
// Callers wrap the result with KindInvalidName.
func ValidateName(name string) error {
	if name == "" {
		return errors.New("name is empty")
	}
	if len(name) > maxNameLen {
		return errors.Errorf("name is longer than %d bytes", maxNameLen)
	}
	if !namePattern.MatchString(name) {
		return errors.New("name must start with a letter or digit and contain only letters, digits, '.', '_' or '-'")
	}
	return nil
}
