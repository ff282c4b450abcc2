package snippet

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/iw2rmb/codepad/internal/fsutil"
)

const fileExt = ".yaml"

// FileStore keeps one YAML file per snippet in a directory.
type FileStore struct {
	dir string
	now func() time.Time

	mu sync.Mutex
}

var _ Store = (*FileStore)(nil)

// NewFileStore returns a store rooted at dir. The directory is created on the
// first write.
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir, now: time.Now}
}

func (f *FileStore) Dir() string { return f.dir }

func (f *FileStore) Save(ctx context.Context, s Snippet) (Snippet, error) {
	s, err := Prepare(s)
	if err != nil {
		return Snippet{}, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	all, err := f.list()
	if err != nil {
		return Snippet{}, err
	}
	for _, other := range all {
		if other.ID != s.ID && sameTitle(other.Title, s.Title) {
			return Snippet{}, fmt.Errorf("%w: %q", ErrExists, s.Title)
		}
	}

	now := f.now().UTC()
	if s.ID == "" {
		s.ID = newID()
		s.CreatedAt = now
	} else {
		prev, err := f.read(s.ID)
		if err != nil {
			return Snippet{}, err
		}
		s.CreatedAt = prev.CreatedAt
	}
	s.UpdatedAt = now

	data, err := yaml.Marshal(s)
	if err != nil {
		return Snippet{}, fmt.Errorf("encode snippet: %w", err)
	}
	if err := fsutil.WriteAtomic(ctx, f.path(s.ID), data, 0o600); err != nil {
		return Snippet{}, fmt.Errorf("write snippet %s: %w", s.ID, err)
	}
	return s, nil
}

func (f *FileStore) Get(ctx context.Context, id string) (Snippet, error) {
	if err := ctx.Err(); err != nil {
		return Snippet{}, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.read(id)
}

// List returns all snippets, most recently updated first.
func (f *FileStore) List(ctx context.Context) ([]Snippet, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	all, err := f.list()
	if err != nil {
		return nil, err
	}
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].UpdatedAt.After(all[j].UpdatedAt)
	})
	return all, nil
}

func (f *FileStore) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !validID(id) {
		return fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := os.Remove(f.path(id)); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %q", ErrNotFound, id)
		}
		return fmt.Errorf("delete snippet %s: %w", id, err)
	}
	return nil
}

func (f *FileStore) path(id string) string {
	return filepath.Join(f.dir, id+fileExt)
}

func (f *FileStore) read(id string) (Snippet, error) {
	if !validID(id) {
		return Snippet{}, fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	data, err := os.ReadFile(f.path(id))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Snippet{}, fmt.Errorf("%w: %q", ErrNotFound, id)
		}
		return Snippet{}, fmt.Errorf("read snippet %s: %w", id, err)
	}
	var s Snippet
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Snippet{}, fmt.Errorf("decode snippet %s: %w", id, err)
	}
	s.ID = id
	return s, nil
}

func (f *FileStore) list() ([]Snippet, error) {
	entries, err := os.ReadDir(f.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("list snippets: %w", err)
	}

	var out []Snippet
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, fileExt) {
			continue
		}
		s, err := f.read(strings.TrimSuffix(name, fileExt))
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// validID rejects IDs that could escape the store directory.
func validID(id string) bool {
	return id != "" && !strings.ContainsAny(id, `/\.`) && filepath.Base(id) == id
}
