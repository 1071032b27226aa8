// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package ast

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/tailscale/hujson"
)

// ParseFile reads and parses the document stored in path. The file
// extension selects the syntax: ".json" is read as strict JSON, ".jsonc"
// and ".hujson" as JSON with comments and trailing commas, and anything
// else as Hjson.
func ParseFile(path string) (Value, error) { return ParseOptions{}.ParseFile(path) }

// ParseFile reads and parses the document stored in path.
func (o ParseOptions) ParseFile(path string) (Value, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var v Value
	switch filepath.Ext(path) {
	case ".json":
		v, err = parseJSON(data)
	case ".jsonc", ".hujson":
		var std []byte
		if std, err = hujson.Standardize(data); err == nil {
			v, err = parseJSON(std)
		}
	default:
		v, err = o.ParseBytes(data)
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return v, nil
}

// WriteFile renders v to path, as strict JSON if the path ends in ".json"
// and otherwise as Hjson with the settings from o.
func WriteFile(path string, v Value, o *WriterOptions) error {
	var text string
	var err error
	if filepath.Ext(path) == ".json" {
		text, err = ToJSON(v)
	} else {
		text, err = Format(v, o)
	}
	if err != nil {
		return err
	}
	return os.WriteFile(path, []byte(text+"\n"), 0644)
}

// parseJSON decodes a strict JSON document into a tree, preserving member
// order and the numeric variants of the literal scanner.
func parseJSON(data []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	v, err := decodeJSON(dec)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("found trailing characters after the root value")
	}
	return v, nil
}

func decodeJSON(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	return jsonValue(dec, tok)
}

func jsonValue(dec *json.Decoder, tok json.Token) (Value, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			obj := new(Object)
			for dec.More() {
				ktok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := ktok.(string)
				if !ok {
					return nil, fmt.Errorf("invalid object key %v", ktok)
				}
				v, err := decodeJSON(dec)
				if err != nil {
					return nil, err
				}
				obj.Members = append(obj.Members, &Member{Key: key, Value: v})
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return obj, nil
		case '[':
			arr := new(Array)
			for dec.More() {
				v, err := decodeJSON(dec)
				if err != nil {
					return nil, err
				}
				arr.Values = append(arr.Values, v)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return arr, nil
		}
		return nil, fmt.Errorf("unexpected delimiter %q", t.String())
	case string:
		return &String{Value: t}, nil
	case json.Number:
		n, err := scanNumberText(t.String())
		if err != nil {
			return nil, err
		}
		return &Number{Value: n}, nil
	case bool:
		return &Bool{Value: t}, nil
	case nil:
		return &Null{}, nil
	}
	return nil, fmt.Errorf("unexpected token %v", tok)
}
