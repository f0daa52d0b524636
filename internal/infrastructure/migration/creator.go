package migration

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// FilePair is the up/down file pair for one migration
type FilePair struct {
	Version  string
	UpPath   string
	DownPath string
}

// CreateMigration writes an empty up/down migration pair into dir, versioned
// with the current timestamp so lexical order matches creation order.
func CreateMigration(dir, name string) (*FilePair, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create migrations directory: %w", err)
	}

	now := time.Now()
	version := now.Format("20060102150405")
	base := version + "_" + sanitizeName(name)

	pair := &FilePair{
		Version:  version,
		UpPath:   filepath.Join(dir, base+".up.sql"),
		DownPath: filepath.Join(dir, base+".down.sql"),
	}

	header := fmt.Sprintf("-- %s (%s)\n\n", name, now.Format(time.RFC3339))
	if err := os.WriteFile(pair.UpPath, []byte(header), 0o644); err != nil {
		return nil, fmt.Errorf("write up migration: %w", err)
	}
	if err := os.WriteFile(pair.DownPath, []byte(header), 0o644); err != nil {
		_ = os.Remove(pair.UpPath)
		return nil, fmt.Errorf("write down migration: %w", err)
	}

	return pair, nil
}

// sanitizeName lowercases the name and collapses anything that is not a
// letter or digit into single underscores
func sanitizeName(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			if b.Len() > 0 && !strings.HasSuffix(b.String(), "_") {
				b.WriteByte('_')
			}
		}
	}
	return strings.TrimSuffix(b.String(), "_")
}

// ListMigrations returns the migration base names found in dir, sorted by
// version. A missing directory is treated as empty.
func ListMigrations(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("read migrations directory: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if base, ok := strings.CutSuffix(entry.Name(), ".up.sql"); ok {
			names = append(names, base)
		}
	}

	sort.Strings(names)
	return names, nil
}
