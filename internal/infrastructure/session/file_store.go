package session

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"gopkg.in/yaml.v3"
)

// credentialsDocument is the on-disk layout of the credentials file.
type credentialsDocument struct {
	Tokens map[string]storedToken `yaml:"tokens"`
}

type storedToken struct {
	Value   string    `yaml:"value"`
	SavedAt time.Time `yaml:"saved_at"`
}

// FileStore keeps token slots in a YAML document readable only by the
// current user, so a login survives between farmctl invocations.
type FileStore struct {
	mu   sync.Mutex
	path string
	now  func() time.Time
}

// NewFileStore returns a store backed by path. An empty path resolves to
// DefaultFilePath.
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		p, err := DefaultFilePath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	return &FileStore{path: path, now: time.Now}, nil
}

// DefaultFilePath is <user config dir>/farmdesk/credentials.yaml.
func DefaultFilePath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(dir, "farmdesk", "credentials.yaml"), nil
}

// Path returns the credentials file location.
func (f *FileStore) Path() string {
	return f.path
}

func (f *FileStore) Load(_ context.Context, key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	doc, err := f.read()
	if err != nil {
		return "", err
	}
	return doc.Tokens[key].Value, nil
}

func (f *FileStore) Save(_ context.Context, key, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	doc, err := f.read()
	if err != nil {
		return err
	}
	doc.Tokens[key] = storedToken{Value: token, SavedAt: f.now().UTC()}
	return f.write(doc)
}

func (f *FileStore) Delete(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	doc, err := f.read()
	if err != nil {
		return err
	}
	if _, ok := doc.Tokens[key]; !ok {
		return nil
	}
	delete(doc.Tokens, key)
	return f.write(doc)
}

func (f *FileStore) read() (*credentialsDocument, error) {
	doc := &credentialsDocument{Tokens: map[string]storedToken{}}

	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return doc, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read credentials: %w", err)
	}
	if err := yaml.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("decode credentials %s: %w", f.path, err)
	}
	if doc.Tokens == nil {
		doc.Tokens = map[string]storedToken{}
	}
	return doc, nil
}

// write replaces the file atomically through a temp file in the same directory.
func (f *FileStore) write(doc *credentialsDocument) error {
	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode credentials: %w", err)
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("create credentials dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".credentials-*.yaml")
	if err != nil {
		return fmt.Errorf("create temp credentials: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if err := tmp.Chmod(0o600); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("chmod credentials: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write credentials: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close credentials: %w", err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("replace credentials: %w", err)
	}
	return nil
}
