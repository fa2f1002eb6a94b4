package scanner

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/neuronexus/schemacheck/internal/domain"
)

const docSuffix = ".md"

// Structure returns a depth-limited tree of root together with file counts
// for the whole hierarchy. Directories sort before files, then by name.
// Unreadable directories are left empty.
func (s *FileScanner) Structure(root string, maxDepth int) (*domain.Structure, error) {
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return nil, &domain.DirectoryNotFoundError{Path: root}
	}

	node := &domain.TreeNode{Name: filepath.Base(filepath.Clean(root)), IsDir: true}
	s.fillTree(node, root, maxDepth, 0)

	return &domain.Structure{Root: node, Stats: s.countFiles(root)}, nil
}

func (s *FileScanner) fillTree(node *domain.TreeNode, dir string, maxDepth, depth int) {
	if depth >= maxDepth {
		return
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		s.log.Debugw("skipping unreadable directory", "path", dir, "error", err)
		return
	}
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].IsDir() != entries[j].IsDir() {
			return entries[i].IsDir()
		}
		return entries[i].Name() < entries[j].Name()
	})

	for _, e := range entries {
		child := &domain.TreeNode{Name: e.Name(), IsDir: e.IsDir()}
		node.Children = append(node.Children, child)
		if e.IsDir() && depth < maxDepth-1 {
			s.fillTree(child, filepath.Join(dir, e.Name()), maxDepth, depth+1)
		}
	}
}

func (s *FileScanner) countFiles(root string) domain.TreeStats {
	var stats domain.TreeStats
	_ = filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		if info, err := d.Info(); err == nil && info.Mode().IsRegular() {
			stats.TotalBytes += info.Size()
		}
		switch {
		case strings.HasSuffix(d.Name(), domain.SchemaSuffix):
			stats.SchemaFiles++
		case strings.HasSuffix(d.Name(), docSuffix):
			stats.DocFiles++
		}
		return nil
	})
	return stats
}
