package pbirview

import (
	"encoding/json"
	"io/fs"
)

// Document is a parsed JSON definition file.
// A nil Document is valid and behaves as an empty object.
type Document map[string]any

// ReadDocument loads and parses the JSON document at name.
// Any read or parse failure, or a top-level value that is not an object,
// yields a nil Document rather than an error.
func ReadDocument(fsys fs.FS, name string) Document {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil
	}
	return doc
}

// Lookup walks a chain of object keys and returns the value found, if any.
func (d Document) Lookup(keys ...string) (any, bool) {
	var cur any = map[string]any(d)
	for _, k := range keys {
		obj, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		cur, ok = obj[k]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

// String returns the string at the key path, if present and a string.
func (d Document) String(keys ...string) (string, bool) {
	v, ok := d.Lookup(keys...)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// Number returns the number at the key path, if present and numeric.
func (d Document) Number(keys ...string) (float64, bool) {
	v, ok := d.Lookup(keys...)
	if !ok {
		return 0, false
	}
	f, ok := v.(float64)
	return f, ok
}

// Object returns the object at the key path as a Document.
func (d Document) Object(keys ...string) (Document, bool) {
	v, ok := d.Lookup(keys...)
	if !ok {
		return nil, false
	}
	obj, ok := v.(map[string]any)
	return Document(obj), ok
}

// stringOr returns the first non-empty string field among keys, or fallback.
func (d Document) stringOr(fallback string, keys ...string) string {
	for _, k := range keys {
		if s, ok := d.String(k); ok && s != "" {
			return s
		}
	}
	return fallback
}
