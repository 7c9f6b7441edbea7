package tree

import (
	"errors"
	"io"
	"os"
	"strconv"

	"github.com/rohanthewiz/serr"
	"gopkg.in/yaml.v3"
)

// Load reads a route tree from YAML.
// Mappings become groups and string values become patterns; key order is kept.
//
//	home: /
//	blog:
//	  root: /blog
//	  post: /blog/:slug
//
// An empty document yields an empty tree.
func Load(r io.Reader) (*Tree, error) {
	var doc yaml.Node

	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return Define()
		}
		return nil, serr.Wrap(err, "unable to parse route file")
	}

	root := &doc
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return Define()
		}
		root = root.Content[0]
	}

	// A document holding only "~" or nothing at all
	if root.Kind == yaml.ScalarNode && root.ShortTag() == "!!null" {
		return Define()
	}

	entries, err := entriesOf(root, "")
	if err != nil {
		return nil, err
	}

	return Define(entries...)
}

// LoadFile reads a route tree from a YAML file.
func LoadFile(path string) (*Tree, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, serr.Wrap(err, "unable to open route file", "path", path)
	}
	defer f.Close()

	t, err := Load(f)
	if err != nil {
		return nil, serr.Wrap(err, "unable to load route file", "path", path)
	}
	return t, nil
}

func entriesOf(n *yaml.Node, prefix string) ([]Entry, error) {
	if n.Kind != yaml.MappingNode {
		return nil, serr.New("route group must be a mapping", "group", prefix, "line", strconv.Itoa(n.Line))
	}

	entries := make([]Entry, 0, len(n.Content)/2)

	// Content alternates key, value
	for i := 0; i+1 < len(n.Content); i += 2 {
		k, v := n.Content[i], n.Content[i+1]

		if k.Kind != yaml.ScalarNode {
			return nil, serr.New("route key must be a scalar", "group", prefix, "line", strconv.Itoa(k.Line))
		}
		key := k.Value
		fullKey := join(prefix, key)

		switch {
		case v.Kind == yaml.MappingNode:
			sub, err := entriesOf(v, fullKey)
			if err != nil {
				return nil, err
			}
			entries = append(entries, Group(key, sub...))

		case v.Kind == yaml.ScalarNode && v.ShortTag() == "!!str":
			entries = append(entries, Route(key, v.Value))

		default:
			return nil, serr.New("route value must be a pattern string or a group",
				"key", fullKey, "line", strconv.Itoa(v.Line))
		}
	}

	return entries, nil
}
