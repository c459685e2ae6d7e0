package i18n

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"maps"
)

// TranslationAdapter loads a full catalog.
type TranslationAdapter interface {
	Load(ctx context.Context) (map[string]map[string]any, error)
}

// MapAdapter serves an in-memory catalog.
type MapAdapter struct {
	Data map[string]map[string]any
}

func (a *MapAdapter) Load(_ context.Context) (map[string]map[string]any, error) {
	if a.Data == nil {
		return make(map[string]map[string]any), nil
	}
	return a.Data, nil
}

// FSAdapter reads catalog files from any fs.FS, typically an embed.FS.
// Files are merged in the given order, later files overriding earlier keys.
type FSAdapter struct {
	fsys  fs.FS
	files []string
}

func NewFSAdapter(fsys fs.FS, files ...string) *FSAdapter {
	return &FSAdapter{fsys: fsys, files: files}
}

func (a *FSAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	all := make(map[string]map[string]any)

	for _, name := range a.files {
		if err := ctx.Err(); err != nil {
			return nil, errors.Join(ErrLoadingCancelled, err)
		}

		parser := NewParserForFile(name)
		if parser == nil {
			return nil, fmt.Errorf("%w: %s", ErrUnsupportedFileType, name)
		}

		content, err := fs.ReadFile(a.fsys, name)
		if err != nil {
			return nil, errors.Join(ErrFailedToReadFile, err)
		}
		if len(content) == 0 {
			return nil, fmt.Errorf("%w: %s", ErrEmptyFile, name)
		}

		parsed, err := parser.Parse(ctx, string(content))
		if err != nil {
			return nil, errors.Join(ErrFailedToParseFile, err)
		}

		for lang, entries := range parsed {
			if all[lang] == nil {
				all[lang] = make(map[string]any, len(entries))
			}
			maps.Copy(all[lang], entries)
		}
	}

	return all, nil
}
