package variants

import (
	"fmt"
	"math/rand/v2"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

var (
	hexColorPattern   = regexp.MustCompile(`^#([A-Fa-f0-9]{6})$`)
	percentagePattern = regexp.MustCompile(`^-?\d+(\.\d+)?%$`)
)

// DefaultFonts are the font families a fontFamily value is swapped between.
var DefaultFonts = []string{ //nolint:gochecknoglobals
	"Arial",
	"Courier New",
	"Georgia",
	"Helvetica Neue",
	"Open Sans",
	"Roboto",
	"Segoe UI",
	"Tahoma",
	"Times New Roman",
	"Verdana",
}

// DefaultStringBools maps boolean-like words to their opposite.
var DefaultStringBools = map[string]string{ //nolint:gochecknoglobals
	"yes": "no", "no": "yes",
	"Yes": "No", "No": "Yes",
	"on": "off", "off": "on",
	"On": "Off", "Off": "On",
	"true": "false", "false": "true",
	"True": "False", "False": "True",
	"enabled": "disabled", "disabled": "enabled",
	"Enabled": "Disabled", "Disabled": "Enabled",
}

// cssColorNames is sorted so a seeded generator picks the same colours every run.
var cssColorNames = func() []string { //nolint:gochecknoglobals
	names := make([]string, 0, len(colornames.Map))
	for name := range colornames.Map {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}()

type transformer struct {
	rng         *rand.Rand
	fonts       []string
	stringBools map[string]string
}

// candidates returns every value a leaf may take in the variants.
func (t *transformer) candidates(v any) []any {
	switch val := v.(type) {
	case bool:
		return []any{!val}
	case float64:
		return numberCandidates(val)
	case string:
		return t.stringCandidates(val)
	default:
		return []any{v}
	}
}

func numberCandidates(v float64) []any {
	seen := make(map[float64]struct{})
	out := make([]float64, 0, 7) //nolint:mnd

	for _, c := range []float64{v * 2, v - 1, -v, v + v*0.1, v - v*0.1, v + v*1.0, v - v*1.0} {
		if c == 0 {
			c = 0 // drop the sign of negative zero
		}

		if _, ok := seen[c]; ok {
			continue
		}

		seen[c] = struct{}{}
		out = append(out, c)
	}

	slices.Sort(out)

	res := make([]any, len(out))
	for i, c := range out {
		res[i] = c
	}

	return res
}

func (t *transformer) stringCandidates(v string) []any {
	set := map[string]struct{}{}

	add := func(values ...string) {
		for _, s := range values {
			set[s] = struct{}{}
		}
	}

	add(t.hexColor(v)...)
	add(t.font(v)...)
	add(t.stringBool(v)...)
	add(percentage(v)...)

	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}

	slices.Sort(keys)

	res := make([]any, len(keys))
	for i, k := range keys {
		res[i] = k
	}

	return res
}

// hexColor replaces a #rrggbb colour with a random CSS named colour.
func (t *transformer) hexColor(v string) []string {
	if !hexColorPattern.MatchString(v) {
		return []string{v}
	}

	c := colornames.Map[cssColorNames[t.rng.IntN(len(cssColorNames))]]

	return []string{fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)}
}

// font replaces a known font family with a random one.
func (t *transformer) font(v string) []string {
	lower := strings.ToLower(v)

	known := slices.ContainsFunc(t.fonts, func(f string) bool {
		return strings.ToLower(f) == lower
	})
	if !known {
		return []string{v}
	}

	return []string{t.fonts[t.rng.IntN(len(t.fonts))]}
}

func (t *transformer) stringBool(v string) []string {
	if opposite, ok := t.stringBools[v]; ok {
		return []string{opposite}
	}

	return []string{v}
}

// percentage moves a percentage by ±10 % and ±100 % of itself.
func percentage(v string) []string {
	if !percentagePattern.MatchString(v) {
		return []string{v}
	}

	p, err := strconv.ParseFloat(strings.TrimSuffix(v, "%"), 64)
	if err != nil {
		return []string{v}
	}

	return []string{
		formatFloat(p+p*0.1) + "%",
		formatFloat(p-p*0.1) + "%",
		formatFloat(p+p*1.0) + "%",
		formatFloat(p-p*1.0) + "%",
	}
}

// formatFloat always keeps a fractional part, so 55 is written as 55.0.
func formatFloat(f float64) string {
	if f == 0 {
		f = 0
	}

	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}

	return s
}
