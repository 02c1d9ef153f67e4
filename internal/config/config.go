/*
Package config is a small persistent store for settings, organized in
sections of options:

	[scan]
	replacement = ":_emoji_:"

	[favorites]
	coffee = ":_hot_beverage_:"

Values are plain strings, for example demojized emoji names. The store is
backed by spf13/viper and saved as TOML. Section and option names are
case-insensitive and must not contain dots.
*/
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/npillmayer/emojis"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/spf13/viper"
)

// tracer traces to a global core tracer
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

// FileType is the format of configuration files.
const FileType = "toml"

// ErrExists is returned by Add for options which are already present.
var ErrExists = errors.New("option already exists")

// Store holds settings in memory and writes them to a file on Save.
type Store struct {
	path string
	v    *viper.Viper
}

// Open loads the store from file path. A missing file results in an empty
// store, which will create the file on Save.
func Open(path string) (*Store, error) {
	s := &Store{path: path, v: newViper()}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		tracer().Debugf("config file %s does not exist, starting empty", path)
		return s, nil
	} else if err != nil {
		return nil, err
	}
	if err = s.v.ReadConfig(bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}
	return s, nil
}

// Path returns the file path of the store.
func (s *Store) Path() string {
	return s.path
}

// Get returns the value of an option. If the option does not exist,
// ErrNotFound is returned.
func (s *Store) Get(section, option string) (string, error) {
	k, err := key(section, option)
	if err != nil {
		return "", err
	}
	if !s.v.IsSet(k) {
		return "", fmt.Errorf("option %s: %w", k, emojis.ErrNotFound)
	}
	return s.v.GetString(k), nil
}

// Set sets an option to value, creating the option if necessary.
func (s *Store) Set(section, option, value string) error {
	k, err := key(section, option)
	if err != nil {
		return err
	}
	s.v.Set(k, value)
	return nil
}

// Add creates a new option. If the option exists already, ErrExists is
// returned and the existing value is kept.
func (s *Store) Add(section, option, value string) error {
	if s.Has(section, option) {
		return fmt.Errorf("option %s.%s: %w", section, option, ErrExists)
	}
	return s.Set(section, option, value)
}

// Has checks if an option exists.
func (s *Store) Has(section, option string) bool {
	k, err := key(section, option)
	return err == nil && s.v.IsSet(k)
}

// HasSection checks if a section holds any options.
func (s *Store) HasSection(section string) bool {
	prefix := strings.ToLower(section) + "."
	for _, k := range s.v.AllKeys() {
		if strings.HasPrefix(k, prefix) {
			return true
		}
	}
	return false
}

// Sections returns the names of all sections, sorted.
func (s *Store) Sections() []string {
	seen := make(map[string]bool)
	var sections []string
	for _, k := range s.v.AllKeys() {
		section, _, ok := strings.Cut(k, ".")
		if ok && !seen[section] {
			seen[section] = true
			sections = append(sections, section)
		}
	}
	sort.Strings(sections)
	return sections
}

// Options returns the options of a section with their values.
// If the section does not exist, ErrNotFound is returned.
func (s *Store) Options(section string) (map[string]string, error) {
	prefix := strings.ToLower(section) + "."
	options := make(map[string]string)
	for _, k := range s.v.AllKeys() {
		if strings.HasPrefix(k, prefix) {
			options[strings.TrimPrefix(k, prefix)] = s.v.GetString(k)
		}
	}
	if len(options) == 0 {
		return nil, fmt.Errorf("section %s: %w", section, emojis.ErrNotFound)
	}
	return options, nil
}

// Remove deletes an option. If the option does not exist, ErrNotFound is
// returned.
func (s *Store) Remove(section, option string) error {
	k, err := key(section, option)
	if err != nil {
		return err
	}
	if !s.v.IsSet(k) {
		return fmt.Errorf("option %s: %w", k, emojis.ErrNotFound)
	}
	s.rebuild(func(other string) bool { return other == k })
	return nil
}

// RemoveSection deletes a section with all its options. If the section does
// not exist, ErrNotFound is returned.
func (s *Store) RemoveSection(section string) error {
	if !s.HasSection(section) {
		return fmt.Errorf("section %s: %w", section, emojis.ErrNotFound)
	}
	prefix := strings.ToLower(section) + "."
	s.rebuild(func(k string) bool { return strings.HasPrefix(k, prefix) })
	return nil
}

// Reset removes all sections and options. The file is not touched until
// Save is called.
func (s *Store) Reset() {
	s.v = newViper()
}

// Save writes the store to its file, creating missing directories.
func (s *Store) Save() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := s.v.WriteConfigTo(&buf); err != nil {
		return fmt.Errorf("cannot encode settings: %w", err)
	}
	if err := os.WriteFile(s.path, buf.Bytes(), 0o644); err != nil {
		return err
	}
	tracer().Debugf("settings saved to %s", s.path)
	return nil
}

// rebuild replaces the viper instance by one holding all keys except those
// matching drop. Viper cannot unset keys.
func (s *Store) rebuild(drop func(string) bool) {
	v := newViper()
	for _, k := range s.v.AllKeys() {
		if !drop(k) {
			v.Set(k, s.v.GetString(k))
		}
	}
	s.v = v
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType(FileType)
	return v
}

func key(section, option string) (string, error) {
	if section == "" || option == "" || strings.Contains(section, ".") || strings.Contains(option, ".") {
		return "", fmt.Errorf("illegal option name %q in section %q: %w", option, section, emojis.ErrInvalidInput)
	}
	return strings.ToLower(section + "." + option), nil
}
