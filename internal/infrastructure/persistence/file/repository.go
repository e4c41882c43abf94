// Package file stores named layouts as XML files in one directory. A
// layouts.toml index next to them keeps the summary counts, and an
// advisory lock file serializes writers across processes.
package file

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/bnema/docklayout/internal/domain/entity"
	"github.com/bnema/docklayout/internal/domain/repository"
	"github.com/bnema/docklayout/internal/logging"
	"github.com/pelletier/go-toml/v2"
)

const (
	dirPerm   = 0o750
	filePerm  = 0o600
	indexName = "layouts.toml"
	lockName  = ".lock"
	layoutExt = ".xml"
)

type indexEntry struct {
	Version       int       `toml:"version"`
	ContentCount  int       `toml:"content_count"`
	FloatingCount int       `toml:"floating_count"`
	HiddenCount   int       `toml:"hidden_count"`
	SavedAt       time.Time `toml:"saved_at"`
}

type index struct {
	Layouts map[string]indexEntry `toml:"layouts"`
}

// Repository implements repository.LayoutRepository on a directory.
type Repository struct {
	dir string
}

var _ repository.LayoutRepository = (*Repository)(nil)

// NewRepository creates dir when missing and returns a repository on it.
func NewRepository(dir string) (*Repository, error) {
	if dir == "" {
		return nil, errors.New("layout directory cannot be empty")
	}
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return nil, fmt.Errorf("create layout directory: %w", err)
	}
	return &Repository{dir: dir}, nil
}

// Dir returns the layout directory.
func (r *Repository) Dir() string { return r.dir }

// Path returns the file holding the named layout.
func (r *Repository) Path(name entity.LayoutName) string {
	return filepath.Join(r.dir, string(name)+layoutExt)
}

func (r *Repository) Save(ctx context.Context, snap *entity.LayoutSnapshot) error {
	if snap == nil {
		return errors.New("layout snapshot cannot be nil")
	}
	if err := entity.ValidateLayoutName(snap.Name); err != nil {
		return err
	}
	return r.withLock(true, func() error {
		if err := writeAtomic(r.Path(snap.Name), snap.Data); err != nil {
			return fmt.Errorf("write layout: %w", err)
		}
		idx, err := r.readIndex()
		if err != nil {
			return err
		}
		idx.Layouts[string(snap.Name)] = indexEntry{
			Version:       snap.Version,
			ContentCount:  snap.ContentCount,
			FloatingCount: snap.FloatingCount,
			HiddenCount:   snap.HiddenCount,
			SavedAt:       snap.SavedAt.UTC(),
		}
		if err := r.writeIndex(idx); err != nil {
			return err
		}
		logging.FromContext(ctx).Debug().
			Str("layout", string(snap.Name)).
			Str("path", r.Path(snap.Name)).
			Msg("layout written")
		return nil
	})
}

func (r *Repository) Get(_ context.Context, name entity.LayoutName) (*entity.LayoutSnapshot, error) {
	if err := entity.ValidateLayoutName(name); err != nil {
		return nil, err
	}
	var snap *entity.LayoutSnapshot
	err := r.withLock(false, func() error {
		data, info, err := readLayout(r.Path(name))
		if err != nil || data == nil {
			return err
		}
		idx, err := r.readIndex()
		if err != nil {
			return err
		}
		snap = &entity.LayoutSnapshot{Name: name, Data: data}
		entry, ok := idx.Layouts[string(name)]
		if !ok {
			// Dropped in by hand: no counts, file time as save time.
			snap.SavedAt = info.ModTime().UTC()
			return nil
		}
		snap.Version = entry.Version
		snap.ContentCount = entry.ContentCount
		snap.FloatingCount = entry.FloatingCount
		snap.HiddenCount = entry.HiddenCount
		snap.SavedAt = entry.SavedAt
		return nil
	})
	return snap, err
}

func (r *Repository) List(ctx context.Context) ([]entity.LayoutInfo, error) {
	var infos []entity.LayoutInfo
	err := r.withLock(false, func() error {
		idx, err := r.readIndex()
		if err != nil {
			return err
		}
		entries, err := os.ReadDir(r.dir)
		if err != nil {
			return fmt.Errorf("read layout directory: %w", err)
		}
		for _, e := range entries {
			base, ok := layoutBase(e)
			if !ok {
				continue
			}
			name := entity.LayoutName(base)
			if entity.ValidateLayoutName(name) != nil {
				logging.FromContext(ctx).Debug().Str("file", e.Name()).Msg("skipping file with invalid layout name")
				continue
			}
			fi, err := e.Info()
			if err != nil {
				continue
			}
			info := entity.LayoutInfo{Name: name, SizeBytes: fi.Size(), SavedAt: fi.ModTime().UTC()}
			if entry, ok := idx.Layouts[base]; ok {
				info.Version = entry.Version
				info.ContentCount = entry.ContentCount
				info.FloatingCount = entry.FloatingCount
				info.HiddenCount = entry.HiddenCount
				info.SavedAt = entry.SavedAt
			}
			infos = append(infos, info)
		}
		return nil
	})
	slices.SortFunc(infos, func(a, b entity.LayoutInfo) int {
		if c := b.SavedAt.Compare(a.SavedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	})
	return infos, err
}

func (r *Repository) Delete(ctx context.Context, name entity.LayoutName) error {
	if err := entity.ValidateLayoutName(name); err != nil {
		return err
	}
	return r.withLock(true, func() error {
		if err := os.Remove(r.Path(name)); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("remove layout: %w", err)
		}
		idx, err := r.readIndex()
		if err != nil {
			return err
		}
		if _, ok := idx.Layouts[string(name)]; !ok {
			return nil
		}
		delete(idx.Layouts, string(name))
		logging.FromContext(ctx).Debug().Str("layout", string(name)).Msg("layout removed")
		return r.writeIndex(idx)
	})
}

func (r *Repository) withLock(exclusive bool, fn func() error) error {
	unlock, err := lockFile(filepath.Join(r.dir, lockName), exclusive)
	if err != nil {
		return fmt.Errorf("lock layout directory: %w", err)
	}
	defer unlock()
	return fn()
}

func (r *Repository) readIndex() (*index, error) {
	idx := &index{Layouts: make(map[string]indexEntry)}
	data, err := os.ReadFile(filepath.Join(r.dir, indexName))
	if errors.Is(err, fs.ErrNotExist) {
		return idx, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read layout index: %w", err)
	}
	if err := toml.Unmarshal(data, idx); err != nil {
		return nil, fmt.Errorf("parse layout index: %w", err)
	}
	if idx.Layouts == nil {
		idx.Layouts = make(map[string]indexEntry)
	}
	return idx, nil
}

func (r *Repository) writeIndex(idx *index) error {
	data, err := toml.Marshal(idx)
	if err != nil {
		return fmt.Errorf("encode layout index: %w", err)
	}
	if err := writeAtomic(filepath.Join(r.dir, indexName), data); err != nil {
		return fmt.Errorf("write layout index: %w", err)
	}
	return nil
}

func layoutBase(e fs.DirEntry) (string, bool) {
	if !e.Type().IsRegular() || filepath.Ext(e.Name()) != layoutExt {
		return "", false
	}
	return e.Name()[:len(e.Name())-len(layoutExt)], true
}

// readLayout returns nil data for a missing file.
func readLayout(path string) ([]byte, fs.FileInfo, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()
	info, err := f.Stat()
	if err != nil {
		return nil, nil, err
	}
	data := make([]byte, info.Size())
	if _, err := io.ReadFull(f, data); err != nil {
		return nil, nil, err
	}
	return data, info, nil
}

func writeAtomic(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, filePerm); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}
