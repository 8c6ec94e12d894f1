package pipeline

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pzaremba/spanscope/internal/cache"
	"github.com/pzaremba/spanscope/internal/corpus"
	"github.com/pzaremba/spanscope/internal/model"
	"github.com/pzaremba/spanscope/internal/store"
)

// Format identifies a corpus input format.
type Format string

const (
	FormatAuto      Format = "auto"
	FormatSpanscope Format = "spanscope"
	FormatCoNLL     Format = "conll"
	FormatGENIA     Format = "genia"
	FormatBRAT      Format = "brat"
)

// DetectFormat resolves FormatAuto from the path: directories are BRAT
// dumps, extensions map to their converters.
func DetectFormat(path string) (Format, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("stat input: %w", err)
	}
	if info.IsDir() {
		return FormatBRAT, nil
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case store.Ext:
		return FormatSpanscope, nil
	case ".conll", ".iob":
		return FormatCoNLL, nil
	case ".genia", ".iob2":
		return FormatGENIA, nil
	default:
		return "", fmt.Errorf("cannot detect corpus format of %s; pass --format", path)
	}
}

// Loader reads corpora from disk, converting raw annotation dumps and
// caching the conversions keyed by input content.
type Loader struct {
	cache cache.Cache // nil disables caching
	layer string
}

// NewLoader creates a loader for the given configuration.
func NewLoader(cfg *model.Config) *Loader {
	l := &Loader{layer: cfg.Analysis.DefaultLayer}
	if cfg.Cache.Enabled {
		dir := cfg.Cache.Dir
		if dir == "" {
			if home, err := os.UserHomeDir(); err == nil {
				dir = filepath.Join(home, ".spanscope", "cache")
			}
		}
		if dir != "" {
			l.cache = cache.NewLayeredCache(cfg.Cache.MemoryTTL, dir, cfg.Cache.DiskTTL)
		}
	}
	return l
}

// Load reads the corpus at path. FormatAuto detects the format first.
// The warnings are non-fatal conversion notes (BRAT annotations that
// could not be aligned).
func (l *Loader) Load(path string, format Format) (model.Corpus, []string, error) {
	if format == FormatAuto || format == "" {
		detected, err := DetectFormat(path)
		if err != nil {
			return nil, nil, err
		}
		format = detected
	}

	switch format {
	case FormatSpanscope:
		c, err := store.Load(path)
		return c, nil, err
	case FormatCoNLL, FormatGENIA:
		return l.loadConverted(path, format)
	case FormatBRAT:
		// Not cached: keying a directory means hashing every file in
		// it, which costs about as much as parsing.
		return corpus.ParseBRATDir(path, l.layer)
	default:
		return nil, nil, fmt.Errorf("unknown corpus format %q", format)
	}
}

// loadConverted converts a single-file raw dump, going through the
// conversion cache when one is configured.
func (l *Loader) loadConverted(path string, format Format) (model.Corpus, []string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read input: %w", err)
	}

	var key string
	if l.cache != nil {
		key = cache.Key(string(format), raw)
		if data, found := l.cache.Get(key); found {
			c, err := store.Read(bytes.NewReader(data))
			if err == nil {
				return c, nil, nil
			}
			// A corrupt entry falls through to a fresh conversion.
			_ = l.cache.Delete(key)
		}
	}

	var c model.Corpus
	switch format {
	case FormatCoNLL:
		c, err = corpus.ParseCoNLL(bytes.NewReader(raw), l.layer)
	case FormatGENIA:
		c, err = corpus.ParseGENIA(bytes.NewReader(raw), l.layer, corpus.GENIANestingLevels)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("parse %s: %w", format, err)
	}

	if l.cache != nil {
		var buf bytes.Buffer
		if err := store.Write(&buf, c); err == nil {
			_ = l.cache.Set(key, buf.Bytes(), 0)
		}
	}
	return c, nil, nil
}
