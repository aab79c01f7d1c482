package variants

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// Load reads a JSON settings document.
func Load(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read settings document")
	}

	var doc map[string]any
	if err = json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrapf(err, "failed to decode %s", path)
	}

	return doc, nil
}

// FileName is the name of the n-th variant file, counting from 1.
func FileName(n int) string {
	return fmt.Sprintf("config%d.json", n)
}

// WriteFiles writes every variant to dir as config1.json, config2.json, ...
// and returns the written paths.
func WriteFiles(dir string, docs []map[string]any) ([]string, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil { //nolint:mnd
		return nil, errors.Wrap(err, "failed to create output directory")
	}

	paths := make([]string, 0, len(docs))

	for i, doc := range docs {
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return paths, err
		}

		p := filepath.Join(dir, FileName(i+1))
		if err = os.WriteFile(p, append(data, '\n'), 0o600); err != nil { //nolint:mnd
			return paths, errors.Wrapf(err, "failed to write %s", p)
		}

		log.Debug().Str("path", p).Int("variant", i+1).Msg("variant saved")

		paths = append(paths, p)
	}

	return paths, nil
}
