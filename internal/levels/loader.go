package levels

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
)

// Ext is the file extension of level files.
const Ext = ".level"

//go:embed builtin/*.level
var builtinFS embed.FS

// Level is a named, parsed level file.
type Level struct {
	Name string // file name without extension
	Path string // source path, informational
	Grid Grid
}

// Pack is an ordered list of levels played in sequence.
type Pack []Level

// Names returns the level names in play order.
func (p Pack) Names() []string {
	names := make([]string, len(p))
	for i, l := range p {
		names[i] = l.Name
	}
	return names
}

// Builtin returns the levels compiled into the binary.
func Builtin() (Pack, error) {
	sub, err := fs.Sub(builtinFS, "builtin")
	if err != nil {
		return nil, fmt.Errorf("levels: builtin: %w", err)
	}
	return LoadFS(sub, "builtin")
}

// LoadDir loads every *.level file in dir, sorted by file name.
func LoadDir(dir string) (Pack, error) {
	if strings.HasPrefix(dir, "~") {
		if home, err := os.UserHomeDir(); err == nil {
			dir = filepath.Join(home, dir[1:])
		}
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("levels: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("levels: %s is not a directory", dir)
	}
	return LoadFS(os.DirFS(dir), dir)
}

// LoadFS loads every *.level file at the root of fsys, sorted by file name.
// Any unreadable or invalid file fails the whole pack.
func LoadFS(fsys fs.FS, origin string) (Pack, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("levels: read %s: %w", origin, err)
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() && path.Ext(e.Name()) == Ext {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	if len(names) == 0 {
		return nil, fmt.Errorf("levels: no %s files in %s", Ext, origin)
	}

	pack := make(Pack, 0, len(names))
	for _, name := range names {
		lvl, err := loadFile(fsys, name, origin)
		if err != nil {
			return nil, err
		}
		pack = append(pack, lvl)
	}
	return pack, nil
}

// LoadFile loads a single level file from disk.
func LoadFile(p string) (Level, error) {
	return loadFile(os.DirFS(filepath.Dir(p)), filepath.Base(p), filepath.Dir(p))
}

func loadFile(fsys fs.FS, name, origin string) (Level, error) {
	full := filepath.Join(origin, name)
	f, err := fsys.Open(name)
	if err != nil {
		return Level{}, fmt.Errorf("levels: open %s: %w", full, err)
	}
	defer f.Close()

	grid, err := ParseGrid(f)
	if err != nil {
		return Level{}, fmt.Errorf("levels: %s: %w", full, err)
	}
	return Level{
		Name: strings.TrimSuffix(name, Ext),
		Path: full,
		Grid: grid,
	}, nil
}
