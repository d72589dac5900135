package cloud

import (
	"context"
	"fmt"
	"path"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore is an in-memory drive used in development and tests. All state
// is owned by the store and guarded by its mutex; there is no shared
// module-level file system.
type MemoryStore struct {
	mu      sync.RWMutex
	folders map[string]struct{}         // full folder paths
	files   map[string]map[string]entry // folder path -> file name -> entry
	now     func() time.Time
}

type entry struct {
	id      string
	size    int64
	modTime time.Time
}

// NewMemoryStore returns an empty in-memory drive.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		folders: make(map[string]struct{}),
		files:   make(map[string]map[string]entry),
		now:     time.Now,
	}
}

// SeededMemoryStore returns an in-memory drive with the standard base tree
// already in place, mirroring what EnsureBaseTree creates on a real drive.
func SeededMemoryStore() *MemoryStore {
	s := NewMemoryStore()
	if err := EnsureBaseTree(context.Background(), s); err != nil {
		// Creation on the memory drive cannot fail with valid names.
		panic(err)
	}
	return s
}

func normalize(p string) string {
	return strings.Trim(path.Clean("/"+p), "/")
}

// CreateFolder registers a folder; creating an existing folder is a no-op.
func (m *MemoryStore) CreateFolder(ctx context.Context, name, parentPath string) error {
	if name == "" {
		return fmt.Errorf("memory drive: folder name is required")
	}

	full := normalize(path.Join(parentPath, name))
	parent := normalize(parentPath)
	if parent != "" {
		m.mu.RLock()
		_, ok := m.folders[parent]
		m.mu.RUnlock()
		if !ok {
			return fmt.Errorf("memory drive: parent folder %q does not exist", parentPath)
		}
	}

	m.mu.Lock()
	m.folders[full] = struct{}{}
	m.mu.Unlock()
	return nil
}

// Upload stores content under the given folder and returns the item id.
func (m *MemoryStore) Upload(ctx context.Context, fileName string, content []byte, folderPath string) (string, error) {
	if fileName == "" {
		return "", fmt.Errorf("memory drive: file name is required")
	}

	folder := normalize(folderPath)
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.folders[folder]; !ok {
		return "", fmt.Errorf("memory drive: folder %q does not exist", folderPath)
	}

	if m.files[folder] == nil {
		m.files[folder] = make(map[string]entry)
	}
	e := entry{
		id:      uuid.New().String(),
		size:    int64(len(content)),
		modTime: m.now(),
	}
	m.files[folder][fileName] = e
	return e.id, nil
}

// ListChildren returns the folder's entries, folders first, each group
// sorted by name for a stable listing.
func (m *MemoryStore) ListChildren(ctx context.Context, folderPath string) ([]Item, error) {
	folder := normalize(folderPath)
	m.mu.RLock()
	defer m.mu.RUnlock()

	if folder != "" {
		if _, ok := m.folders[folder]; !ok {
			return nil, fmt.Errorf("memory drive: folder %q does not exist", folderPath)
		}
	}

	var folders, files []Item
	prefix := folder
	if prefix != "" {
		prefix += "/"
	}

	for f := range m.folders {
		if !strings.HasPrefix(f, prefix) || f == folder {
			continue
		}
		rest := strings.TrimPrefix(f, prefix)
		if strings.Contains(rest, "/") {
			continue // deeper than one level
		}
		folders = append(folders, Item{
			ID:       f,
			Name:     rest,
			IsFolder: true,
		})
	}
	for name, e := range m.files[folder] {
		files = append(files, Item{
			ID:            e.id,
			Name:          name,
			FileExtension: strings.TrimPrefix(path.Ext(name), "."),
			LastModified:  e.modTime,
			SizeBytes:     e.size,
		})
	}

	sort.Slice(folders, func(i, j int) bool { return folders[i].Name < folders[j].Name })
	sort.Slice(files, func(i, j int) bool { return files[i].Name < files[j].Name })
	return append(folders, files...), nil
}
