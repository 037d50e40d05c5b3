package datasets

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/google/renameio"
	"github.com/uluyol/sortbench/go/multierrgroup"
	"golang.org/x/sync/errgroup"
)

const Ext = ".txt"

var ErrNoDatasets = errors.New("no dataset files found")

// Parse reads one integer per line. Blank lines are skipped.
func Parse(r io.Reader, name string) ([]int, error) {
	var data []int
	s := bufio.NewScanner(r)
	lineno := 0
	for s.Scan() {
		lineno++
		line := strings.TrimSpace(s.Text())
		if line == "" {
			continue
		}
		v, err := strconv.Atoi(line)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: invalid data format: %w", name, lineno, err)
		}
		data = append(data, v)
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	if data == nil {
		data = []int{}
	}
	return data, nil
}

func Load(fsys fs.FS, name string) ([]int, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer f.Close()
	return Parse(f, name)
}

func Format(w io.Writer, data []int) error {
	bw := bufio.NewWriter(w)
	var buf []byte
	for _, v := range data {
		buf = strconv.AppendInt(buf[:0], int64(v), 10)
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Write atomically replaces the file at p with data.
func Write(p string, data []int) error {
	f, err := renameio.TempFile("", p)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", p, err)
	}
	defer f.Cleanup()
	if err := f.Chmod(0o644); err != nil {
		return fmt.Errorf("failed to chmod %s: %w", p, err)
	}
	if err := Format(f, data); err != nil {
		return fmt.Errorf("failed to write %s: %w", p, err)
	}
	if err := f.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("failed to close %s: %w", p, err)
	}
	return nil
}

// WriteAll generates every instance and writes it to dir/<name>.txt.
// It returns the written paths in instance order.
func WriteAll(dir string, insts []Instance) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to make dataset directory: %w", err)
	}
	paths := make([]string, len(insts))
	var eg errgroup.Group
	for i, inst := range insts {
		i, inst := i, inst
		paths[i] = filepath.Join(dir, inst.Name+Ext)
		eg.Go(func() error {
			return Write(paths[i], inst.Generate())
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return paths, nil
}

// Discover returns the dataset files at the top of fsys, sorted by name.
func Discover(fsys fs.FS) ([]string, error) {
	names, err := fs.Glob(fsys, "*"+Ext)
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return nil, ErrNoDatasets
	}
	sort.Strings(names)
	return names, nil
}

// NameOf strips the directory and extension from a dataset path.
func NameOf(p string) string {
	return strings.TrimSuffix(path.Base(filepath.ToSlash(p)), Ext)
}

type Dataset struct {
	Name     string
	Category Category
	Data     []int
}

// LoadAll reads the named files concurrently and returns them in the
// same order. Every unreadable file is reported.
func LoadAll(fsys fs.FS, names []string) ([]Dataset, error) {
	sets := make([]Dataset, len(names))
	var eg multierrgroup.Group
	for i, name := range names {
		i, name := i, name
		eg.Go(func() error {
			data, err := Load(fsys, name)
			if err != nil {
				return err
			}
			n := NameOf(name)
			sets[i] = Dataset{Name: n, Category: CategoryOf(n), Data: data}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return sets, nil
}
