// Package credstore persists the authenticated identity across process
// restarts. The contract is a two-entry key-value store: username and
// token, both present or both absent. The file-backed implementation keeps
// them in a YAML file under the user's config directory.
package credstore

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultFileName is the name of the credentials file.
const DefaultFileName = "credentials.yaml"

// credentials is the on-disk layout.
type credentials struct {
	Username string `yaml:"username"`
	Token    string `yaml:"token"`
}

// FileStore stores credentials in a single YAML file.
type FileStore struct {
	path string
}

// NewFileStore creates a store backed by the given file path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// DefaultPath returns the default credentials file location
// (e.g. ~/.config/hoopup/credentials.yaml on Linux).
func DefaultPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}
	return filepath.Join(configDir, "hoopup", DefaultFileName), nil
}

// Load reads the persisted identity. A missing file, malformed content, or
// a partial entry all read as absent: two empty strings and a nil error.
// Only read failures on an existing file are reported.
func (s *FileStore) Load() (username, token string, err error) {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", "", nil
	}
	if err != nil {
		return "", "", fmt.Errorf("unable to read credentials file: %w", err)
	}

	var c credentials
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return "", "", nil
	}
	if c.Username == "" || c.Token == "" {
		// both-or-none: a partial entry is not a valid identity
		return "", "", nil
	}
	return c.Username, c.Token, nil
}

// Save writes the identity, creating the directory if needed. The file is
// written with 0600 permissions since it holds a bearer token.
func (s *FileStore) Save(username, token string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), os.ModePerm); err != nil {
		return fmt.Errorf("unable to create credentials directory: %w", err)
	}
	raw, err := yaml.Marshal(credentials{Username: username, Token: token})
	if err != nil {
		return fmt.Errorf("unable to encode credentials: %w", err)
	}
	if err := os.WriteFile(s.path, raw, os.FileMode(0600)); err != nil {
		return fmt.Errorf("unable to write credentials file: %w", err)
	}
	return nil
}

// Clear removes the credentials file. Clearing an absent file is not an
// error.
func (s *FileStore) Clear() error {
	err := os.Remove(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
