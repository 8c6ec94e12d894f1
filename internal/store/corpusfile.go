// Package store persists converted corpora as .spanscope files: an
// xz-compressed JSON envelope holding every document with its tokens
// and span layers. The format is the tool's own interchange between
// convert and analyze runs; converters produce it once so analysis
// never re-parses the raw annotation dumps.
package store

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/ulikunitz/xz"

	"github.com/pzaremba/spanscope/internal/model"
)

// FormatVersion is bumped on any incompatible envelope change.
const FormatVersion = 1

// Ext is the canonical corpus file extension.
const Ext = ".spanscope"

type envelope struct {
	Version int              `json:"version"`
	Docs    []*model.Document `json:"docs"`
}

// Save writes the corpus to path, creating or truncating it.
func Save(path string, corpus model.Corpus) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create corpus file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close corpus file: %w", closeErr)
		}
	}()

	if err := Write(file, corpus); err != nil {
		return err
	}
	return nil
}

// Write serializes the corpus onto w.
func Write(w io.Writer, corpus model.Corpus) error {
	xzw, err := xz.NewWriter(w)
	if err != nil {
		return fmt.Errorf("create compressor: %w", err)
	}

	env := envelope{Version: FormatVersion, Docs: corpus}
	if err := json.NewEncoder(xzw).Encode(env); err != nil {
		return fmt.Errorf("encode corpus: %w", err)
	}
	if err := xzw.Close(); err != nil {
		return fmt.Errorf("flush compressor: %w", err)
	}
	return nil
}

// Load reads a corpus file written by Save.
func Load(path string) (model.Corpus, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open corpus file: %w", err)
	}
	defer func() { _ = file.Close() }()

	corpus, err := Read(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return corpus, nil
}

// Read deserializes a corpus from r.
func Read(r io.Reader) (model.Corpus, error) {
	xzr, err := xz.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("open compressed stream: %w", err)
	}

	var env envelope
	if err := json.NewDecoder(xzr).Decode(&env); err != nil {
		return nil, fmt.Errorf("decode corpus: %w", err)
	}
	if env.Version != FormatVersion {
		return nil, fmt.Errorf("unsupported corpus file version %d (want %d)", env.Version, FormatVersion)
	}
	return model.Corpus(env.Docs), nil
}
