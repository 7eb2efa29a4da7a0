// Package render serializes generated client configuration in the file
// format each client reads: JSON, JSON with comments, YAML or TOML.
package render

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/tailscale/hujson"
	"gopkg.in/yaml.v3"

	"github.com/gleanwork/mcp-config-glean/internal/errors"
	"github.com/gleanwork/mcp-config-glean/pkg/clients"
)

// ErrUnknownFormat indicates a format name Render does not support.
var ErrUnknownFormat = errors.New("unknown output format")

// ParseFormat maps a user-supplied format name to a ConfigFormat. The empty
// string and "native" return "", meaning the client's own format.
func ParseFormat(name string) (clients.ConfigFormat, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "native":
		return "", nil
	case "json":
		return clients.FormatJSON, nil
	case "jsonc":
		return clients.FormatJSONC, nil
	case "yaml", "yml":
		return clients.FormatYAML, nil
	case "toml":
		return clients.FormatTOML, nil
	default:
		return "", errors.Wrapf(ErrUnknownFormat, "%q", name)
	}
}

// Marshal encodes doc in format. Output always ends with a newline.
func Marshal(doc map[string]any, format clients.ConfigFormat) ([]byte, error) {
	return MarshalWithComment(doc, format, "")
}

// MarshalWithComment is Marshal with a leading comment line for formats
// that allow one. Plain JSON has no comments, so comment is dropped there.
func MarshalWithComment(doc map[string]any, format clients.ConfigFormat, comment string) ([]byte, error) {
	switch format {
	case clients.FormatJSON:
		return marshalJSON(doc)
	case clients.FormatJSONC:
		return marshalJSONC(doc, comment)
	case clients.FormatYAML:
		return withHashComment(comment, marshalYAML)(doc)
	case clients.FormatTOML:
		return withHashComment(comment, marshalTOML)(doc)
	default:
		return nil, errors.Wrapf(ErrUnknownFormat, "%q", format)
	}
}

func marshalJSON(doc map[string]any) ([]byte, error) {
	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "marshaling json")
	}
	return append(out, '\n'), nil
}

func marshalJSONC(doc map[string]any, comment string) ([]byte, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, errors.Wrap(err, "marshaling json")
	}
	v, err := hujson.Parse(raw)
	if err != nil {
		return nil, errors.Wrap(err, "parsing jsonc")
	}
	if comment != "" {
		v.BeforeExtra = hujson.Extra("// " + comment + "\n")
	}
	v.Format()
	return ensureNewline(v.Pack()), nil
}

func marshalYAML(doc map[string]any) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, errors.Wrap(err, "marshaling yaml")
	}
	if err := enc.Close(); err != nil {
		return nil, errors.Wrap(err, "marshaling yaml")
	}
	return buf.Bytes(), nil
}

func marshalTOML(doc map[string]any) ([]byte, error) {
	out, err := toml.Marshal(doc)
	if err != nil {
		return nil, errors.Wrap(err, "marshaling toml")
	}
	return ensureNewline(out), nil
}

func withHashComment(comment string, marshal func(map[string]any) ([]byte, error)) func(map[string]any) ([]byte, error) {
	return func(doc map[string]any) ([]byte, error) {
		out, err := marshal(doc)
		if err != nil || comment == "" {
			return out, err
		}
		return append([]byte("# "+comment+"\n"), out...), nil
	}
}

// Unmarshal decodes data written in format into a generic document.
// JSONC input may contain comments and trailing commas.
func Unmarshal(data []byte, format clients.ConfigFormat) (map[string]any, error) {
	var doc map[string]any
	switch format {
	case clients.FormatJSON, clients.FormatJSONC:
		std, err := hujson.Standardize(data)
		if err != nil {
			return nil, errors.Wrap(err, "parsing json")
		}
		if err := json.Unmarshal(std, &doc); err != nil {
			return nil, errors.Wrap(err, "unmarshaling json")
		}
	case clients.FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, errors.Wrap(err, "unmarshaling yaml")
		}
	case clients.FormatTOML:
		if err := toml.Unmarshal(data, &doc); err != nil {
			return nil, errors.Wrap(err, "unmarshaling toml")
		}
	default:
		return nil, errors.Wrapf(ErrUnknownFormat, "%q", format)
	}
	return doc, nil
}

func ensureNewline(b []byte) []byte {
	if len(b) == 0 || b[len(b)-1] != '\n' {
		b = append(b, '\n')
	}
	return b
}
