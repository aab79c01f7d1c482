package settings

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readGolden(t *testing.T) []byte {
	t.Helper()

	data, err := os.ReadFile("testdata/defaults.json")
	require.NoError(t, err, "failed to read golden record")

	return data
}

func TestDefaultMatchesStoredLayout(t *testing.T) {
	got, err := json.Marshal(Default())
	require.NoError(t, err)

	assert.JSONEq(t, string(readGolden(t)), string(got))
}

func TestDefaultNotableFields(t *testing.T) {
	r := Default()

	assert.True(t, r.Enabled)
	assert.Equal(t, ModeDark, r.Theme.Mode)
	assert.Equal(t, []string{"thanks-2023"}, r.DisplayedNews)
	assert.Equal(t, EngineDynamicTheme, r.Theme.Engine)
	assert.Nil(t, r.Location.Latitude)
	assert.Nil(t, r.Location.Longitude)
	assert.Equal(t, "18:00", r.Time.Activation)
	assert.Equal(t, "9:00", r.Time.Deactivation)
}

func TestDefaultReturnsFreshRecord(t *testing.T) {
	a := Default()
	a.DisplayedNews[0] = "changed"
	a.DisabledFor = append(a.DisabledFor, "example.com")

	b := Default()
	assert.Equal(t, []string{NewsThanks2023}, b.DisplayedNews)
	assert.Empty(t, b.DisabledFor)
}

func TestItems(t *testing.T) {
	items, err := Default().Items()
	require.NoError(t, err)

	var golden map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(readGolden(t), &golden))

	require.Len(t, items, len(golden))

	for key, want := range golden {
		got, ok := items[key]
		require.True(t, ok, "missing key %s", key)
		assert.JSONEq(t, string(want), string(got), "key %s", key)
	}

	assert.Equal(t, "[]", string(items["customThemes"]))
	assert.Equal(t, `{"latitude":null,"longitude":null}`, string(items["location"]))
}

func TestItemsIsPure(t *testing.T) {
	first, err := Default().Items()
	require.NoError(t, err)

	second, err := Default().Items()
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestKeys(t *testing.T) {
	keys := Keys()

	require.Len(t, keys, 21)
	assert.Equal(t, "automation", keys[0])
	assert.Equal(t, "time", keys[len(keys)-1])
	assert.IsIncreasing(t, keys)
}

func TestItemsOf(t *testing.T) {
	testCases := []struct {
		name        string
		value       any
		expectedErr error
		expectedLen int
	}{
		{
			name:        "object",
			value:       map[string]any{"enabled": true, "theme": map[string]any{"mode": 0}},
			expectedLen: 2,
		},
		{
			name:        "array",
			value:       []int{1, 2},
			expectedErr: ErrNotAnObject,
		},
		{
			name:        "null",
			value:       nil,
			expectedErr: ErrNotAnObject,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			items, err := ItemsOf(tc.value)
			if tc.expectedErr != nil {
				require.ErrorIs(t, err, tc.expectedErr)
				assert.Nil(t, items)

				return
			}

			require.NoError(t, err)
			assert.Len(t, items, tc.expectedLen)
		})
	}
}
