package i18n

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
)

// TranslationAdapter loads catalogs keyed by language.
type TranslationAdapter interface {
	Load(ctx context.Context) (map[string]map[string]any, error)
}

// MapAdapter serves catalogs from memory.
type MapAdapter struct {
	Data map[string]map[string]any
}

// Load implements TranslationAdapter.
func (a *MapAdapter) Load(_ context.Context) (map[string]map[string]any, error) {
	if a.Data == nil {
		return make(map[string]map[string]any), nil
	}
	return a.Data, nil
}

// FileAdapter loads catalogs from a single YAML or JSON file.
type FileAdapter struct {
	parser Parser
	path   string
}

// NewFileAdapter returns an adapter for the file at path.
// A nil parser is picked from the file extension when Load runs.
func NewFileAdapter(parser Parser, path string) *FileAdapter {
	return &FileAdapter{parser: parser, path: path}
}

// Load implements TranslationAdapter.
func (a *FileAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingFileCancelled, err)
	}
	if a.path == "" {
		return nil, fmt.Errorf("%w: empty path", ErrFailedToReadFile)
	}

	parser := a.parser
	if parser == nil {
		if parser = NewParserForFile(a.path); parser == nil {
			return nil, fmt.Errorf("%w: %s", ErrUnsupportedFile, a.path)
		}
	}

	content, err := os.ReadFile(a.path)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}
	return parseFile(ctx, parser, a.path, content)
}

// FSAdapter loads and merges every catalog file in a directory of an fs.FS.
// Files are read in name order, so later files override earlier ones.
type FSAdapter struct {
	fsys fs.FS
	dir  string
}

// NewFSAdapter returns an adapter for the catalogs in dir of fsys.
func NewFSAdapter(fsys fs.FS, dir string) *FSAdapter {
	return &FSAdapter{fsys: fsys, dir: dir}
}

// Load implements TranslationAdapter.
func (a *FSAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	entries, err := fs.ReadDir(a.fsys, a.dir)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}

	out := make(map[string]map[string]any)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		parser := NewParserForFile(entry.Name())
		if parser == nil {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, errors.Join(ErrLoadingFileCancelled, err)
		}

		name := path.Join(a.dir, entry.Name())
		content, err := fs.ReadFile(a.fsys, name)
		if err != nil {
			return nil, errors.Join(ErrFailedToReadFile, err)
		}
		catalogs, err := parseFile(ctx, parser, name, content)
		if err != nil {
			return nil, err
		}
		mergeInto(out, catalogs)
	}
	return out, nil
}

//go:embed messages/*.yaml
var bundled embed.FS

// Bundled returns the validation message catalogs shipped with the package.
func Bundled() TranslationAdapter {
	return NewFSAdapter(bundled, "messages")
}

type multiAdapter []TranslationAdapter

// Merge combines adapters into one. Catalogs are merged key by key, and
// adapters listed later override earlier ones. Nil adapters are skipped.
func Merge(adapters ...TranslationAdapter) TranslationAdapter {
	var m multiAdapter
	for _, a := range adapters {
		if a != nil {
			m = append(m, a)
		}
	}
	return m
}

func (m multiAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	out := make(map[string]map[string]any)
	for _, a := range m {
		catalogs, err := a.Load(ctx)
		if err != nil {
			return nil, err
		}
		mergeInto(out, catalogs)
	}
	return out, nil
}

func parseFile(ctx context.Context, parser Parser, name string, content []byte) (map[string]map[string]any, error) {
	if len(content) == 0 {
		return nil, fmt.Errorf("%w: %s is empty", ErrFailedToParseFile, name)
	}
	catalogs, err := parser.Parse(ctx, string(content))
	if err != nil {
		return nil, errors.Join(ErrFailedToParseFile, fmt.Errorf("%s: %w", name, err))
	}
	return catalogs, nil
}

func mergeInto(dst, src map[string]map[string]any) {
	for lang, catalog := range src {
		if dst[lang] == nil {
			dst[lang] = make(map[string]any)
		}
		mergeCatalog(dst[lang], catalog)
	}
}

func mergeCatalog(dst, src map[string]any) {
	for k, v := range src {
		srcMap, srcIsMap := asStringMap(v)
		dstMap, dstIsMap := asStringMap(dst[k])
		if srcIsMap && dstIsMap {
			merged := make(map[string]any, len(dstMap))
			mergeCatalog(merged, dstMap)
			mergeCatalog(merged, srcMap)
			dst[k] = merged
			continue
		}
		dst[k] = v
	}
}
