package config

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/gobwas/glob"
)

// SourceExt is the file extension this tool recognizes as Swift source.
const SourceExt = ".swift"

// discoverFromPaths enumerates source files from CLI positional paths.
// Directories are walked recursively; bare files are included only when
// they carry the source extension and are readable. A path that does not
// exist or cannot be traversed is an error.
func discoverFromPaths(paths []string) ([]string, error) {
	var out []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, &PathError{Path: path, Err: err}
		}

		if info.IsDir() {
			files, err := walkSourceDir(path)
			if err != nil {
				return nil, err
			}
			out = append(out, files...)
			continue
		}

		if info.Mode().IsRegular() && strings.HasSuffix(path, SourceExt) && readable(path) {
			out = append(out, path)
		}
	}
	return sortUnique(out), nil
}

// walkSourceDir collects every readable regular source file under root.
func walkSourceDir(root string) ([]string, error) {
	var out []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return &PathError{Path: path, Err: err}
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if strings.HasSuffix(path, SourceExt) && readable(path) {
			out = append(out, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// finder walks a root applying include/exclude glob patterns from the
// configuration file. Patterns are matched against the root-relative
// slash path; exclude wins over include, and an excluded directory prunes
// its whole subtree.
type finder struct {
	root    string
	include []glob.Glob
	exclude []glob.Glob
}

func newFinder(root string, include, exclude []string) (*finder, error) {
	inc, err := compilePatterns(include)
	if err != nil {
		return nil, err
	}
	exc, err := compilePatterns(exclude)
	if err != nil {
		return nil, err
	}
	return &finder{root: root, include: inc, exclude: exc}, nil
}

func compilePatterns(patterns []string) ([]glob.Glob, error) {
	out := make([]glob.Glob, 0, len(patterns))
	for _, p := range patterns {
		g, err := glob.Compile(p, '/')
		if err != nil {
			return nil, &PatternError{Pattern: p, Err: err}
		}
		out = append(out, g)
	}
	return out, nil
}

func (f *finder) find() ([]string, error) {
	log.Debug("walking configured search root", "root", f.root,
		"include", len(f.include), "exclude", len(f.exclude))

	var out []string
	err := filepath.WalkDir(f.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return &PathError{Path: path, Err: err}
		}

		rel, relErr := filepath.Rel(f.root, path)
		if relErr != nil || rel == "." {
			return nil
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if matchAny(f.exclude, rel) {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() || !strings.HasSuffix(path, SourceExt) {
			return nil
		}
		if matchAny(f.exclude, rel) {
			return nil
		}
		if len(f.include) > 0 && !matchAny(f.include, rel) {
			return nil
		}
		if readable(path) {
			out = append(out, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return sortUnique(out), nil
}

func matchAny(globs []glob.Glob, path string) bool {
	for _, g := range globs {
		if g.Match(path) {
			return true
		}
	}
	return false
}

// readable probes whether the file can actually be opened. The handle is
// released immediately.
func readable(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	_ = f.Close()
	return true
}

// sortUnique sorts paths lexicographically and drops duplicates, making
// discovery output independent of filesystem enumeration order.
func sortUnique(paths []string) []string {
	sort.Strings(paths)
	out := paths[:0]
	var prev string
	for i, p := range paths {
		if i == 0 || p != prev {
			out = append(out, p)
		}
		prev = p
	}
	return out
}
