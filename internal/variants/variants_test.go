package variants

import (
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optionsinject/optionsinject/internal/settings"
)

func generate(t *testing.T, opts Options, doc map[string]any) []map[string]any {
	t.Helper()

	out, err := New(opts).Generate(doc)
	require.NoError(t, err)

	return out
}

func TestGenerateBooleansAreAlwaysFlipped(t *testing.T) {
	out := generate(t, Options{}, map[string]any{"enabled": true, "fetchNews": false, "mode": ""})

	require.Len(t, out, 1)
	assert.Equal(t, map[string]any{"enabled": false, "fetchNews": true, "mode": ""}, out[0])
}

func TestGenerateNumbers(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		want  []any
	}{
		{"one", 1, []any{-1.0, 0.0, 0.9, 1.1, 2.0}},
		{"zero", 0, []any{-1.0, 0.0}},
		{"fifty", 50, []any{-50.0, 0.0, 45.0, 49.0, 55.0, 100.0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := generate(t, Options{}, map[string]any{"n": tt.value})

			got := make([]any, 0, len(out))
			for _, v := range out {
				got = append(got, v["n"])
			}

			assert.ElementsMatch(t, tt.want, got)
		})
	}
}

func TestGenerateHexColor(t *testing.T) {
	out := generate(t, Options{Seed: 7}, map[string]any{"darkSchemeBackgroundColor": "#181a1b"})

	require.Len(t, out, 2)

	hex := regexp.MustCompile(`^#[0-9a-f]{6}$`)
	values := []string{
		out[0]["darkSchemeBackgroundColor"].(string),
		out[1]["darkSchemeBackgroundColor"].(string),
	}

	assert.Contains(t, values, "#181a1b")

	for _, v := range values {
		assert.Regexp(t, hex, v)
	}
}

func TestGenerateStrings(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  []any
	}{
		{"plain string untouched", "auto", []any{"auto"}},
		{"boolean-like word", "yes", []any{"yes", "no"}},
		{"percentage", "50%", []any{"50%", "55.0%", "45.0%", "100.0%", "0.0%"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := generate(t, Options{}, map[string]any{"s": tt.value})

			got := make([]any, 0, len(out))
			for _, v := range out {
				got = append(got, v["s"])
			}

			assert.ElementsMatch(t, tt.want, got)
		})
	}
}

func TestGenerateFont(t *testing.T) {
	out := generate(t, Options{Fonts: []string{"Arial", "Verdana"}, Seed: 1}, map[string]any{"fontFamily": "arial"})

	for _, v := range out {
		assert.Contains(t, []any{"arial", "Arial", "Verdana"}, v["fontFamily"])
	}
}

func TestGenerateLeavesOtherValuesAlone(t *testing.T) {
	doc := map[string]any{
		"location":      map[string]any{"latitude": nil, "longitude": nil},
		"displayedNews": []any{"thanks-2023"},
	}

	out := generate(t, Options{}, doc)

	require.Len(t, out, 1)
	assert.Equal(t, doc, out[0])
}

func TestGenerateMultipliesNestedLeaves(t *testing.T) {
	doc := map[string]any{
		"enabled": true,
		"theme":   map[string]any{"mode": 1.0, "sepia": 0.0},
	}

	out := generate(t, Options{}, doc)

	assert.Len(t, out, 10)

	for _, v := range out {
		assert.Equal(t, false, v["enabled"])
	}

	// the input is not modified
	assert.Equal(t, true, doc["enabled"])
	assert.InDelta(t, 1.0, doc["theme"].(map[string]any)["mode"], 0)
}

func TestGenerateDefaultRecordWithLimit(t *testing.T) {
	doc, err := Document(settings.Default())
	require.NoError(t, err)

	out := generate(t, Options{Limit: 25, Seed: 42}, doc)
	assert.Len(t, out, 25)

	again := generate(t, Options{Limit: 25, Seed: 42}, doc)
	assert.Equal(t, out, again, "same seed, same variants")

	for _, v := range out {
		assert.Equal(t, false, v["enabled"])
		assert.Equal(t, []any{"thanks-2023"}, v["displayedNews"])
	}
}

func TestGenerateNil(t *testing.T) {
	_, err := New(Options{}).Generate(nil)
	require.ErrorIs(t, err, settings.ErrNotAnObject)
}

func TestWriteFilesAndLoad(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "configurations")

	docs := generate(t, Options{}, map[string]any{"grayscale": 0.0, "enabled": true})

	paths, err := WriteFiles(dir, docs)
	require.NoError(t, err)
	require.Len(t, paths, 2)
	assert.Equal(t, filepath.Join(dir, "config1.json"), paths[0])
	assert.Equal(t, filepath.Join(dir, "config2.json"), paths[1])

	for i, p := range paths {
		loaded, err := Load(p)
		require.NoError(t, err)
		assert.Equal(t, docs[i], loaded)
	}
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}
