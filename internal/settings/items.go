package settings

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"
)

// ErrNotAnObject is returned when a value does not encode to a JSON object.
var ErrNotAnObject = errors.New("settings: value is not a JSON object")

// Items splits the record into one encoded JSON value per top-level key,
// the shape a "set multiple keys" storage call expects.
func (r Record) Items() (map[string][]byte, error) {
	return ItemsOf(r)
}

// Keys returns the top-level storage keys of a record in stored order.
func Keys() []string {
	t := reflect.TypeOf(Record{})
	keys := make([]string, 0, t.NumField())

	for i := range t.NumField() {
		name, _, _ := strings.Cut(t.Field(i).Tag.Get("json"), ",")
		keys = append(keys, name)
	}

	return keys
}

// ItemsOf encodes v and splits the resulting JSON object by key.
func ItemsOf(v any) (map[string][]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}

	var raw map[string]json.RawMessage
	if err = json.Unmarshal(data, &raw); err != nil || raw == nil {
		return nil, ErrNotAnObject
	}

	items := make(map[string][]byte, len(raw))
	for k, val := range raw {
		items[k] = []byte(val)
	}

	return items, nil
}
