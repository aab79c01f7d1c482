// Package script generates the content script that injects settings into an
// extension's storage and registers it in the extension manifest.
package script

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"text/template"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/tidwall/gjson"

	"github.com/optionsinject/optionsinject/internal/settings"
	"github.com/optionsinject/optionsinject/internal/storage"
)

const (
	// FileName is the name of the generated content script.
	FileName = "optionsinject.js"

	// ManifestName is the extension manifest file name.
	ManifestName = "manifest.json"
)

var contentScript = template.Must(template.New(FileName).Parse(`
function updateOptions() {
    chrome.storage.{{ .Area }}.set(
        {{ .Options }},
        function() {
            console.log('Options updated.');
        }
    );
}

// Main function to execute when the content script runs
async function main() {
    updateOptions();
}

// Execute the main function on content script injection
main();
`))

// Generate renders the content script writing options to the given storage area.
func Generate(options any, area storage.Area) (string, error) {
	if _, err := storage.ParseArea(area.String()); err != nil {
		return "", err
	}

	data, err := json.MarshalIndent(options, "", "    ")
	if err != nil {
		return "", errors.Wrap(err, "failed to encode options")
	}

	var buf bytes.Buffer

	err = contentScript.Execute(&buf, struct {
		Area    string
		Options string
	}{
		Area:    area.String(),
		Options: string(data),
	})
	if err != nil {
		return "", err
	}

	return buf.String(), nil
}

// Install writes the content script for options into extensionDir and
// registers it in the manifest. The storage area is derived from the directory.
func Install(extensionDir string, options any) error {
	js, err := Generate(options, storage.AreaFor(extensionDir))
	if err != nil {
		return err
	}

	if err = os.WriteFile(filepath.Join(extensionDir, FileName), []byte(js), 0o644); err != nil { //nolint:gosec,mnd
		return errors.Wrap(err, "failed to write content script")
	}

	log.Info().Str("extension", extensionDir).Msg(FileName + " file generated successfully")

	manifestPath := filepath.Join(extensionDir, ManifestName)

	manifest, err := os.ReadFile(manifestPath)
	if err != nil {
		return errors.Wrap(err, "failed to read manifest")
	}

	patched, err := PatchManifest(manifest)
	if err != nil {
		return err
	}

	if err = os.WriteFile(manifestPath, patched, 0o644); err != nil { //nolint:gosec,mnd
		return errors.Wrap(err, "failed to write manifest")
	}

	log.Info().Str("extension", extensionDir).Msg("manifest updated successfully")

	return nil
}

// InstallFile installs the options read from a JSON configuration file.
// The keys keep the order of the file.
func InstallFile(extensionDir, configFile string) error {
	data, err := os.ReadFile(configFile)
	if err != nil {
		return errors.Wrap(err, "failed to read configuration")
	}

	if !gjson.ValidBytes(data) || !gjson.ParseBytes(data).IsObject() {
		return errors.Wrap(settings.ErrNotAnObject, configFile)
	}

	return Install(extensionDir, json.RawMessage(data))
}
