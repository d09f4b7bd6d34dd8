// Package selection turns user file choices into the ordered file list a
// plan upload sends.
//
// A terminal has no drop zone, but dropping files onto a terminal pastes
// their shell-quoted paths. [ParseDrop] splits such a paste, and [Resolve]
// expands home directories and glob patterns into concrete files.
package selection

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
	"github.com/kballard/go-shellquote"

	"github.com/Iron-Ham/studyplan/internal/errors"
)

// File is one selected file on disk.
type File struct {
	Path string
	Size int64
}

// Name returns the base name sent as the multipart filename.
func (f File) Name() string {
	return filepath.Base(f.Path)
}

// Open opens the file for reading.
func (f File) Open() (io.ReadCloser, error) {
	return os.Open(f.Path)
}

// ParseDrop splits pasted text into individual path arguments using shell
// quoting rules, so "my notes.pdf" and my\ notes.pdf both stay one path.
func ParseDrop(text string) ([]string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}
	args, err := shellquote.Split(text)
	if err != nil {
		return nil, errors.NewValidationError("Could not read the dropped paths.").
			WithField("files").
			WithValue(text).
			WithCause(err)
	}
	return args, nil
}

// Resolve turns path arguments into files, preserving argument order.
// An argument naming an existing path is taken literally even when it
// contains glob metacharacters. Other arguments containing metacharacters
// expand to every matching regular file, sorted by path. A literal path that does not exist, or that names a
// directory, fails the whole resolution so the previous selection stays in
// place.
func Resolve(args []string) ([]File, error) {
	var files []File
	seen := make(map[string]bool)

	add := func(f File) {
		if seen[f.Path] {
			return
		}
		seen[f.Path] = true
		files = append(files, f)
	}

	for _, arg := range args {
		arg = expandHome(arg)
		info, statErr := os.Stat(arg)
		if statErr != nil && hasMeta(arg) {
			matches, err := expandGlob(arg)
			if err != nil {
				return nil, err
			}
			if len(matches) == 0 {
				return nil, errors.NewValidationError(fmt.Sprintf("No files match %s", arg)).
					WithField("files").
					WithCause(errors.ErrFileNotFound)
			}
			for _, m := range matches {
				add(m)
			}
			continue
		}

		if statErr != nil {
			return nil, errors.NewValidationError(fmt.Sprintf("File not found: %s", arg)).
				WithField("files").
				WithCause(errors.ErrFileNotFound)
		}
		if info.IsDir() {
			return nil, errors.NewValidationError(fmt.Sprintf("%s is a directory", arg)).
				WithField("files").
				WithValue(arg)
		}
		add(File{Path: arg, Size: info.Size()})
	}
	return files, nil
}

// FromDrop parses and resolves pasted text in one step.
func FromDrop(text string) ([]File, error) {
	args, err := ParseDrop(text)
	if err != nil {
		return nil, err
	}
	return Resolve(args)
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return path
}

func hasMeta(path string) bool {
	return strings.ContainsAny(path, "*?[{")
}

// expandGlob walks the literal directory prefix of pattern and returns the
// regular files whose slash-separated path matches it. "**" crosses
// directory boundaries; "*" does not.
func expandGlob(pattern string) ([]File, error) {
	pattern = filepath.ToSlash(filepath.Clean(pattern))
	g, err := glob.Compile(pattern, '/')
	if err != nil {
		return nil, errors.NewValidationError(fmt.Sprintf("Invalid pattern: %s", pattern)).
			WithField("files").
			WithCause(err)
	}

	root := literalPrefix(pattern)
	var out []File
	err = filepath.WalkDir(filepath.FromSlash(root), func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if !g.Match(filepath.ToSlash(path)) {
			return nil
		}
		info, err := d.Info()
		if err != nil || !info.Mode().IsRegular() {
			return nil
		}
		out = append(out, File{Path: path, Size: info.Size()})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// literalPrefix returns the directory portion of pattern before the first
// segment containing a metacharacter.
func literalPrefix(pattern string) string {
	segments := strings.Split(pattern, "/")
	var literal []string
	for _, s := range segments {
		if hasMeta(s) {
			break
		}
		literal = append(literal, s)
	}
	if len(literal) == 0 {
		return "."
	}
	prefix := strings.Join(literal, "/")
	if prefix == "" {
		return "/"
	}
	return prefix
}
