// Package signature turns the DOM mutations recorded on a page into a
// numbered signature file.
//
// Records are kept as raw JSON so their key order survives into the file.
package signature

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

// DefaultDir is where signature files are written.
const DefaultDir = "signatures"

// Mutation record types kept in a signature.
const (
	TypeChildList  = "childList"
	TypeAttributes = "attributes"
)

// NumberKey holds the position of a mutation in its signature.
const NumberKey = "mutation"

var prettyOptions = &pretty.Options{Width: 0, Prefix: "", Indent: "    ", SortKeys: false} //nolint:gochecknoglobals

// Parse decodes the recorded mutations. Records that are not JSON objects
// are logged and skipped.
func Parse(records []string) [][]byte {
	out := make([][]byte, 0, len(records))

	for i, r := range records {
		if !gjson.Valid(r) || !gjson.Parse(r).IsObject() {
			log.Warn().Int("record", i).Msg("skipping mutation record that is not a JSON object")
			continue
		}

		out = append(out, pretty.Ugly([]byte(r)))
	}

	return out
}

// Keep reports whether a mutation belongs in a signature: child list
// changes that added or removed nodes, and every attribute change.
func Keep(record []byte) bool {
	switch gjson.GetBytes(record, "type").String() {
	case TypeChildList:
		return gjson.GetBytes(record, "added").Exists() || gjson.GetBytes(record, "removed").Exists()
	case TypeAttributes:
		return true
	default:
		return false
	}
}

// Filter returns the records Keep accepts, in order.
func Filter(records [][]byte) [][]byte {
	out := make([][]byte, 0, len(records))

	for _, r := range records {
		if Keep(r) {
			out = append(out, r)
		}
	}

	return out
}

// Number puts "mutation": n first in every record, counting from 1.
// A record that already carries a mutation key keeps its own value in that
// first position.
func Number(records [][]byte) ([][]byte, error) {
	out := make([][]byte, 0, len(records))

	for i, r := range records {
		if !gjson.ValidBytes(r) || !gjson.ParseBytes(r).IsObject() {
			return nil, errors.Errorf("record %d is not a JSON object", i+1)
		}

		value := strconv.Itoa(i + 1)

		if own := gjson.GetBytes(r, NumberKey); own.Exists() {
			value = own.Raw

			var err error
			if r, err = sjson.DeleteBytes(r, NumberKey); err != nil {
				return nil, errors.Wrapf(err, "record %d", i+1)
			}
		}

		rest := bytes.TrimSpace(r)
		rest = bytes.TrimSpace(rest[1 : len(rest)-1])

		var buf bytes.Buffer
		buf.WriteString(`{"` + NumberKey + `":`)
		buf.WriteString(value)

		if len(rest) > 0 {
			buf.WriteByte(',')
			buf.Write(rest)
		}

		buf.WriteByte('}')

		out = append(out, buf.Bytes())
	}

	return out, nil
}

// Encode writes records as a JSON array indented by four spaces, one value per line.
func Encode(records [][]byte) []byte {
	return pretty.PrettyOptions(append(append([]byte{'['}, bytes.Join(records, []byte{','})...), ']'), prettyOptions)
}

// Build parses, filters, numbers and encodes the recorded mutations.
func Build(records []string) ([]byte, error) {
	numbered, err := Number(Filter(Parse(records)))
	if err != nil {
		return nil, err
	}

	return Encode(numbered), nil
}

// FileName is the signature file of the n-th configuration.
func FileName(n int) string {
	return fmt.Sprintf("signature%d.json", n)
}

// Write saves data as the signature of configuration n in dir and returns its path.
func Write(dir string, n int, data []byte) (string, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil { //nolint:mnd
		return "", errors.Wrap(err, "failed to create signature directory")
	}

	p := filepath.Join(dir, FileName(n))
	if err := os.WriteFile(p, data, 0o600); err != nil { //nolint:mnd
		return "", errors.Wrapf(err, "failed to write %s", p)
	}

	return p, nil
}
