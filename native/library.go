package native

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

// Library is a loaded native shared library.
type Library struct {
	handle uintptr
	path   string
}

// Open loads the first library that resolves from the candidate names.
// Candidates are tried in order, so more specific sonames should come first.
func Open(names ...string) (*Library, error) {
	if len(names) == 0 {
		return nil, errors.New("native: no library names given")
	}
	var errs []error
	for _, name := range names {
		handle, err := openLibrary(name)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
			continue
		}
		logrus.WithFields(logrus.Fields{
			"function": "Open",
			"library":  name,
		}).Debug("Loaded native library")
		return &Library{handle: handle, path: name}, nil
	}
	return nil, fmt.Errorf("native: no loadable library among %v: %w", names, errors.Join(errs...))
}

// Handle returns the platform library handle for symbol binding.
func (l *Library) Handle() uintptr { return l.handle }

// Path returns the name the library was loaded under.
func (l *Library) Path() string { return l.path }

// Close unloads the library. No bound entry point or trampoline may be used
// afterwards.
func (l *Library) Close() error {
	if l.handle == 0 {
		return nil
	}
	err := closeLibrary(l.handle)
	l.handle = 0
	return err
}
