// Package portalstore keeps the portal directory in a JSON file.
package portalstore

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/portal"
)

type portalDoc struct {
	ID       string `json:"id"`
	Name     string `json:"nombre"`
	URL      string `json:"url"`
	User     string `json:"usuario"`
	Password string `json:"contra"`
}

type clientDoc struct {
	ID      string      `json:"id"`
	Name    string      `json:"nombre"`
	Legacy  string      `json:"cliente,omitempty"`
	Portals []portalDoc `json:"portales"`
}

// FileStore implements ports.PortalDirectory on a single JSON document.
// A missing or unreadable file is an empty directory.
type FileStore struct {
	path string
	mu   sync.Mutex
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Load(ctx context.Context) (*portal.Directory, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.load()
}

func (s *FileStore) Update(ctx context.Context, fn func(*portal.Directory) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	directory, err := s.load()
	if err != nil {
		return err
	}

	if err = fn(directory); err != nil {
		return err
	}

	return s.save(toDocs(directory))
}

// load reads the file and repairs legacy documents in place: "cliente" keys
// become "nombre" and missing or malformed ids are regenerated.
func (s *FileStore) load() (*portal.Directory, error) {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return portal.NewDirectory(nil), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read portal directory: %w", err)
	}

	var docs []clientDoc
	if err = json.Unmarshal(raw, &docs); err != nil {
		return portal.NewDirectory(nil), nil
	}

	clients, changed := fromDocs(docs)
	directory := portal.NewDirectory(clients)
	if changed {
		if err = s.save(toDocs(directory)); err != nil {
			return nil, err
		}
	}

	return directory, nil
}

func (s *FileStore) save(docs []clientDoc) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(docs); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create portal directory folder: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".portales-*.json")
	if err != nil {
		return fmt.Errorf("write portal directory: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err = tmp.Write(buf.Bytes()); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write portal directory: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("write portal directory: %w", err)
	}

	return os.Rename(tmp.Name(), s.path)
}

func fromDocs(docs []clientDoc) ([]portal.Client, bool) {
	changed := false
	ensureID := func(raw string) kernel.UUID {
		id, err := kernel.UUIDFromString(raw)
		if err != nil {
			changed = true
			return kernel.NewUUID()
		}
		return id
	}

	clients := make([]portal.Client, 0, len(docs))
	for _, d := range docs {
		name := d.Name
		if d.Legacy != "" {
			if name == "" {
				name = d.Legacy
			}
			changed = true
		}

		c := portal.Client{ID: ensureID(d.ID), Name: name, Portals: make([]portal.Portal, 0, len(d.Portals))}
		for _, p := range d.Portals {
			c.Portals = append(c.Portals, portal.Portal{
				ID:       ensureID(p.ID),
				Name:     p.Name,
				URL:      p.URL,
				User:     p.User,
				Password: p.Password,
			})
		}
		clients = append(clients, c)
	}

	return clients, changed
}

func toDocs(directory *portal.Directory) []clientDoc {
	clients := directory.Clients()
	docs := make([]clientDoc, 0, len(clients))
	for _, c := range clients {
		d := clientDoc{ID: c.ID.String(), Name: c.Name, Portals: make([]portalDoc, 0, len(c.Portals))}
		for _, p := range c.Portals {
			d.Portals = append(d.Portals, portalDoc{
				ID:       p.ID.String(),
				Name:     p.Name,
				URL:      p.URL,
				User:     p.User,
				Password: p.Password,
			})
		}
		docs = append(docs, d)
	}
	return docs
}
