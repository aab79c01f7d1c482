package script

import (
	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

// ErrInvalidManifest is returned when the manifest is not a JSON object.
var ErrInvalidManifest = errors.New("manifest is not a JSON object")

// ContentScript is a content_scripts entry of an extension manifest.
type ContentScript struct {
	Matches         []string `json:"matches"`
	JS              []string `json:"js"`
	RunAt           string   `json:"run_at"`
	AllFrames       bool     `json:"all_frames"`
	MatchAboutBlank bool     `json:"match_about_blank"`
}

// DefaultContentScript injects the options script into every frame as early as possible.
func DefaultContentScript() ContentScript {
	return ContentScript{
		Matches:         []string{"<all_urls>"},
		JS:              []string{FileName},
		RunAt:           "document_start",
		AllFrames:       true,
		MatchAboutBlank: true,
	}
}

// Width 0 keeps every array element on its own line.
var prettyOptions = &pretty.Options{Width: 0, Prefix: "", Indent: "    ", SortKeys: false} //nolint:gochecknoglobals

// PatchManifest registers the options script in the first content script of
// the manifest, or adds a content script when there is none. Key order of
// the manifest is preserved.
func PatchManifest(manifest []byte) ([]byte, error) {
	if !gjson.ValidBytes(manifest) || !gjson.ParseBytes(manifest).IsObject() {
		return nil, ErrInvalidManifest
	}

	var (
		out = manifest
		err error
	)

	scripts := gjson.GetBytes(manifest, "content_scripts")

	switch {
	case !scripts.IsArray() || len(scripts.Array()) == 0:
		out, err = sjson.SetBytes(manifest, "content_scripts", []ContentScript{DefaultContentScript()})
	case !gjson.GetBytes(manifest, "content_scripts.0.js").IsArray():
		out, err = sjson.SetBytes(manifest, "content_scripts.0.js", []string{FileName})
	case !registered(manifest):
		out, err = sjson.SetBytes(manifest, "content_scripts.0.js.-1", FileName)
	}

	if err != nil {
		return nil, errors.Wrap(err, "failed to patch manifest")
	}

	return pretty.PrettyOptions(out, prettyOptions), nil
}

func registered(manifest []byte) bool {
	for _, js := range gjson.GetBytes(manifest, "content_scripts.0.js").Array() {
		if js.String() == FileName {
			return true
		}
	}

	return false
}
