// Package conf reads loader.conf-style configuration files and seeds the
// loader environment from them.
package conf

import (
	"fmt"
	"os"
	"sort"

	"github.com/halfspin/bootmenu/internal/loaderenv"
	"github.com/joho/godotenv"
)

// Store binds a configuration file to the loader environment it seeds.
type Store struct {
	path string
	env  *loaderenv.Env
}

// Load reads the configuration file at path into env and returns the store.
// A missing file is not an error: the loader still runs with built-in
// defaults, so the caller gets an empty store plus the sentinel os.ErrNotExist
// to log.
func Load(path string, env *loaderenv.Env) (*Store, error) {
	s := &Store{path: path, env: env}
	if path == "" {
		return s, nil
	}
	if err := s.Reload(); err != nil {
		if os.IsNotExist(err) {
			return s, err
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	return s, nil
}

// Reload re-reads the configuration file and re-seeds the environment.
// Variables set interactively since the last load keep their positions but
// take the file's values again.
func (s *Store) Reload() error {
	if s.path == "" {
		return nil
	}
	values, err := godotenv.Read(s.path)
	if err != nil {
		return err
	}
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		s.env.Set(name, values[name])
	}
	return nil
}

// SelectKernel records the kernel chosen from the menu for this session.
func (s *Store) SelectKernel(name string) {
	s.env.Set("kernel", name)
	s.env.Set("kernel_path", "/boot/"+name)
}

// Path returns the configuration file location.
func (s *Store) Path() string {
	return s.path
}
