// Package variants derives combinatorial variations of a settings document.
//
// Every leaf is transformed: booleans are negated, numbers are scaled and
// shifted, colours, fonts, boolean-like words and percentages are swapped.
// A leaf with a single candidate takes that candidate in every variant, a
// leaf with several multiplies the variant set.
package variants

import (
	"encoding/json"
	"math/rand/v2"
	"slices"
	"strings"

	"github.com/pkg/errors"

	"github.com/optionsinject/optionsinject/internal/settings"
)

// Options configures a Generator.
type Options struct {
	Seed        uint64            // seed of the random choices
	Limit       int               // maximum number of variants kept, 0 keeps all
	Fonts       []string          // defaults to DefaultFonts
	StringBools map[string]string // defaults to DefaultStringBools
}

// Generator produces variants of JSON documents.
type Generator struct {
	opts Options
	t    *transformer
}

// New creates a Generator.
func New(opts Options) *Generator {
	if opts.Fonts == nil {
		opts.Fonts = DefaultFonts
	}

	if opts.StringBools == nil {
		opts.StringBools = DefaultStringBools
	}

	return &Generator{
		opts: opts,
		t: &transformer{
			rng:         rand.New(rand.NewPCG(opts.Seed, opts.Seed)), //nolint:gosec
			fonts:       opts.Fonts,
			stringBools: opts.StringBools,
		},
	}
}

// Document converts a record into the generic form Generate works on.
func Document(r settings.Record) (map[string]any, error) {
	data, err := json.Marshal(r)
	if err != nil {
		return nil, err
	}

	var doc map[string]any
	if err = json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	return doc, nil
}

// Generate returns the unique variants of doc ordered by their canonical JSON.
// doc itself is not modified.
func (g *Generator) Generate(doc map[string]any) ([]map[string]any, error) {
	if doc == nil {
		return nil, settings.ErrNotAnObject
	}

	variants := []map[string]any{copyValue(doc).(map[string]any)}

	var walk func(node map[string]any, path []string) error

	walk = func(node map[string]any, path []string) error {
		for _, key := range sortedKeys(node) {
			current := append(slices.Clip(path), key)

			if child, ok := node[key].(map[string]any); ok {
				if err := walk(child, current); err != nil {
					return err
				}

				continue
			}

			candidates := g.t.candidates(node[key])
			if len(candidates) == 1 {
				for _, v := range variants {
					set(v, current, candidates[0])
				}

				continue
			}

			expanded := make([]map[string]any, 0, len(candidates)*len(variants))

			for _, c := range candidates {
				for _, v := range variants {
					next := copyValue(v).(map[string]any)
					set(next, current, copyValue(c))
					expanded = append(expanded, next)
				}
			}

			var err error
			if variants, err = g.unique(expanded); err != nil {
				return errors.Wrapf(err, "expand %s", strings.Join(current, "."))
			}
		}

		return nil
	}

	if err := walk(doc, nil); err != nil {
		return nil, err
	}

	return variants, nil
}

// unique drops duplicates, orders by canonical JSON and applies the limit.
func (g *Generator) unique(docs []map[string]any) ([]map[string]any, error) {
	type keyed struct {
		key string
		doc map[string]any
	}

	seen := make(map[string]struct{}, len(docs))
	out := make([]keyed, 0, len(docs))

	for _, d := range docs {
		// encoding/json sorts map keys, which makes the encoding canonical
		data, err := json.Marshal(d)
		if err != nil {
			return nil, err
		}

		k := string(data)
		if _, ok := seen[k]; ok {
			continue
		}

		seen[k] = struct{}{}
		out = append(out, keyed{key: k, doc: d})
	}

	slices.SortFunc(out, func(a, b keyed) int {
		return strings.Compare(a.key, b.key)
	})

	if g.opts.Limit > 0 && len(out) > g.opts.Limit {
		out = out[:g.opts.Limit]
	}

	res := make([]map[string]any, len(out))
	for i, k := range out {
		res[i] = k.doc
	}

	return res, nil
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	slices.Sort(keys)

	return keys
}

// set assigns v at path, which must lead through existing objects.
func set(doc map[string]any, path []string, v any) {
	node := doc
	for _, k := range path[:len(path)-1] {
		node = node[k].(map[string]any)
	}

	node[path[len(path)-1]] = v
}

func copyValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, child := range val {
			out[k] = copyValue(child)
		}

		return out
	case []any:
		out := make([]any, len(val))
		for i, child := range val {
			out[i] = copyValue(child)
		}

		return out
	default:
		return v
	}
}
