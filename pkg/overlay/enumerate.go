package overlay

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/pkghelper/pkg/errors"
	"github.com/arthur-debert/pkghelper/pkg/paths"
)

// Entry is a source path relative to the overlay root
type Entry struct {
	// Path uses forward slashes
	Path  string
	IsDir bool

	// Err is set when the entry could not be inspected
	Err error
}

// Enumerate walks root and returns every non-hidden entry, directories
// included, parents before children. Hidden directories are not entered.
// Symlinked directories are entered like real ones; a link back to one
// of its own ancestors is reported as a failed entry.
func Enumerate(root string) ([]Entry, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrOverlaySource, "overlay source %s", root)
	}
	if !info.IsDir() {
		return nil, errors.Newf(errors.ErrOverlaySource, "overlay source %s is not a directory", root)
	}

	realPath, err := filepath.EvalSymlinks(root)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrOverlaySource, "cannot resolve %s", root)
	}
	children, err := os.ReadDir(root)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrOverlaySource, "cannot walk %s", root)
	}

	w := &walker{ancestors: map[string]bool{realPath: true}}
	w.walk(root, "", children)
	return w.entries, nil
}

type walker struct {
	entries []Entry

	// ancestors holds the resolved paths of the directories being walked
	ancestors map[string]bool
}

// walk records the children of dir, rel being dir relative to the root
func (w *walker) walk(dir, rel string, children []os.DirEntry) {
	for _, child := range children {
		name := child.Name()
		if paths.IsHidden(name) {
			continue
		}

		path := filepath.Join(dir, name)
		entryPath := name
		if rel != "" {
			entryPath = rel + paths.Separator + name
		}

		isDir := child.IsDir()
		if child.Type()&os.ModeSymlink != 0 {
			target, err := os.Stat(path)
			if err != nil {
				w.entries = append(w.entries, Entry{Path: entryPath, Err: err})
				continue
			}
			isDir = target.IsDir()
		}

		if !isDir {
			w.entries = append(w.entries, Entry{Path: entryPath})
			continue
		}

		w.enter(path, entryPath)
	}
}

// enter records the directory at path and walks it unless it is its own ancestor
func (w *walker) enter(path, entryPath string) {
	realPath, err := filepath.EvalSymlinks(path)
	if err != nil {
		w.entries = append(w.entries, Entry{Path: entryPath, IsDir: true, Err: err})
		return
	}
	if w.ancestors[realPath] {
		w.entries = append(w.entries, Entry{
			Path:  entryPath,
			IsDir: true,
			Err:   errors.Newf(errors.ErrOverlaySource, "symlink cycle: %s points to %s", entryPath, realPath),
		})
		return
	}

	children, err := os.ReadDir(path)
	if err != nil {
		w.entries = append(w.entries, Entry{Path: entryPath, IsDir: true, Err: err})
		return
	}
	w.entries = append(w.entries, Entry{Path: entryPath, IsDir: true})

	w.ancestors[realPath] = true
	w.walk(path, entryPath, children)
	delete(w.ancestors, realPath)
}
