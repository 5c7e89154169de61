// Package jsonviewer turns pasted JSON into a typed tree the inspector
// UI can render, plus format and minify helpers.
package jsonviewer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
)

// Kind classifies a tree node.
type Kind string

const (
	KindObject Kind = "object"
	KindArray  Kind = "array"
	KindString Kind = "string"
	KindNumber Kind = "number"
	KindBool   Kind = "bool"
	KindNull   Kind = "null"
)

// Node is one entry in the parsed tree. Leaf nodes carry Value; object and
// array nodes carry Children. Path is a dotted/bracketed locator like
// "users[2].name", rooted at "$".
type Node struct {
	Path     string `json:"path"`
	Key      string `json:"key,omitempty"`
	Kind     Kind   `json:"kind"`
	Value    string `json:"value,omitempty"`
	Children []Node `json:"children,omitempty"`
}

// ParseError describes where pasted JSON failed to parse. It is returned
// inline to the client rather than as a server error.
type ParseError struct {
	Message string `json:"message"`
	Offset  int64  `json:"offset,omitempty"`
}

// Parse builds the typed tree for a JSON document. A syntax failure comes
// back as a ParseError, nil otherwise.
func Parse(source string) (*Node, *ParseError) {
	dec := json.NewDecoder(bytes.NewReader([]byte(source)))
	dec.UseNumber()

	var value any
	if err := dec.Decode(&value); err != nil {
		perr := &ParseError{Message: err.Error()}
		if syn, ok := err.(*json.SyntaxError); ok {
			perr.Offset = syn.Offset
		}
		return nil, perr
	}
	// Trailing garbage after the first value is still a parse failure.
	if dec.More() {
		return nil, &ParseError{Message: "unexpected data after top-level value", Offset: dec.InputOffset()}
	}

	root := build(value, "$", "")
	return &root, nil
}

func build(value any, path, key string) Node {
	n := Node{Path: path, Key: key}

	switch v := value.(type) {
	case map[string]any:
		n.Kind = KindObject
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			n.Children = append(n.Children, build(v[k], path+"."+k, k))
		}
	case []any:
		n.Kind = KindArray
		for i, item := range v {
			idx := strconv.Itoa(i)
			n.Children = append(n.Children, build(item, path+"["+idx+"]", idx))
		}
	case string:
		n.Kind = KindString
		n.Value = v
	case json.Number:
		n.Kind = KindNumber
		n.Value = v.String()
	case bool:
		n.Kind = KindBool
		n.Value = strconv.FormatBool(v)
	case nil:
		n.Kind = KindNull
	default:
		n.Kind = KindString
		n.Value = fmt.Sprintf("%v", v)
	}
	return n
}

// Format pretty-prints a JSON document with two-space indentation.
func Format(source string) (string, *ParseError) {
	return reindent(source, func(buf *bytes.Buffer, src []byte) error {
		return json.Indent(buf, src, "", "  ")
	})
}

// Minify strips all insignificant whitespace from a JSON document.
func Minify(source string) (string, *ParseError) {
	return reindent(source, func(buf *bytes.Buffer, src []byte) error {
		return json.Compact(buf, src)
	})
}

func reindent(source string, transform func(*bytes.Buffer, []byte) error) (string, *ParseError) {
	var buf bytes.Buffer
	if err := transform(&buf, []byte(source)); err != nil {
		perr := &ParseError{Message: err.Error()}
		if syn, ok := err.(*json.SyntaxError); ok {
			perr.Offset = syn.Offset
		}
		return "", perr
	}
	return buf.String(), nil
}
