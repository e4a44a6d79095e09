package resource

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
)

const byteOrderMark = "\uFEFF"

// Data returns the raw bytes of the named resource.
func Data(fsys fs.FS, name string) ([]byte, error) {
	if fsys == nil {
		return nil, ErrNilFS
	}
	if name == "" {
		return nil, ErrEmptyName
	}

	data, err := fs.ReadFile(fsys, name)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	case err != nil:
		return nil, errors.Join(fmt.Errorf("%w: %s", ErrUnreadable, name), err)
	}
	return data, nil
}

// Text returns the named resource decoded as UTF-8.
func Text(fsys fs.FS, name string) (string, error) {
	return TextEncoded(fsys, name, unicode.UTF8)
}

// TextEncoded returns the named resource decoded with enc.
// A nil enc means UTF-8. A leading byte order mark is removed.
func TextEncoded(fsys fs.FS, name string, enc encoding.Encoding) (string, error) {
	data, err := Data(fsys, name)
	if err != nil {
		return "", err
	}
	if enc == nil {
		enc = unicode.UTF8
	}

	decoded, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", errors.Join(fmt.Errorf("%w: %s", ErrDecodeFailure, name), err)
	}
	return strings.TrimPrefix(string(decoded), byteOrderMark), nil
}

// Save writes the named resource to path, creating parent directories.
func Save(fsys fs.FS, name, path string) error {
	if path == "" {
		return fmt.Errorf("%w: empty destination path", ErrSaveFailed)
	}

	data, err := Data(fsys, name)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Join(ErrSaveFailed, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Join(ErrSaveFailed, err)
	}
	return nil
}

// Names lists every regular file in fsys that matches pattern, in lexical order.
func Names(fsys fs.FS, pattern string) ([]string, error) {
	if fsys == nil {
		return nil, ErrNilFS
	}

	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, errors.Join(ErrUnreadable, err)
	}

	names := matches[:0]
	for _, m := range matches {
		info, err := fs.Stat(fsys, m)
		if err != nil || info.IsDir() {
			continue
		}
		names = append(names, m)
	}
	return names, nil
}
