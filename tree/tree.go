// Package tree defines route tables: nested, named groups of URL patterns.
//
// A Tree is built once, usually at startup, and is read-only afterwards.
// It owns copies of everything passed to Define, so no caller can alter it later.
//
//	var Routes = tree.MustDefine(
//		tree.Route("home", "/"),
//		tree.Group("blog",
//			tree.Route("root", "/blog"),
//			tree.Route("post", "/blog/:slug"),
//		),
//	)
//
//	Routes.Pattern("blog.post") // "/blog/:slug"
package tree

import (
	"strings"

	"github.com/rohanthewiz/routes/consts"
	"github.com/rohanthewiz/serr"
)

// Node is either a leaf pattern or a group of further entries.
type Node struct {
	pattern string
	entries []Entry
	group   bool
}

// IsGroup reports whether the node holds entries rather than a pattern.
func (n Node) IsGroup() bool {
	return n.group
}

// Pattern returns the leaf pattern, or "" for a group.
func (n Node) Pattern() string {
	return n.pattern
}

// Entry names a node within its group.
type Entry struct {
	Key  string
	Node Node
}

// Route declares a leaf entry.
func Route(key string, pattern string) Entry {
	return Entry{Key: key, Node: Node{pattern: pattern}}
}

// Group declares a nested group of entries.
func Group(key string, entries ...Entry) Entry {
	return Entry{Key: key, Node: Node{entries: entries, group: true}}
}

// Tree is an immutable route table.
// The zero value is an empty tree.
type Tree struct {
	keys     []string // definition order
	children map[string]child
	flat     []FlatRoute
}

type child struct {
	pattern string
	sub     *Tree // nil for leaves
}

// Define validates the entries and builds a tree from them.
// Keys must be non-empty, must not contain '.', and must be unique within their group.
// Leaf patterns must be non-empty.
func Define(entries ...Entry) (*Tree, error) {
	t, err := build("", entries)
	if err != nil {
		return nil, err
	}

	t.flat = t.flatten("", nil)
	return t, nil
}

// MustDefine is like Define but panics on invalid entries.
func MustDefine(entries ...Entry) *Tree {
	t, err := Define(entries...)
	if err != nil {
		panic(err.Error())
	}
	return t
}

func build(prefix string, entries []Entry) (*Tree, error) {
	t := &Tree{
		keys:     make([]string, 0, len(entries)),
		children: make(map[string]child, len(entries)),
	}

	for _, e := range entries {
		fullKey := join(prefix, e.Key)

		if e.Key == "" {
			return nil, serr.New("route key cannot be empty", "group", prefix)
		}
		if strings.IndexByte(e.Key, consts.RuneDot) >= 0 {
			return nil, serr.New("route key cannot contain a dot", "key", fullKey)
		}
		if _, exists := t.children[e.Key]; exists {
			return nil, serr.New("duplicate route key", "key", fullKey)
		}

		var c child

		if e.Node.group {
			sub, err := build(fullKey, e.Node.entries)
			if err != nil {
				return nil, err
			}
			c.sub = sub
		} else {
			if e.Node.pattern == "" {
				return nil, serr.New("route pattern cannot be empty", "key", fullKey)
			}
			c.pattern = e.Node.pattern
		}

		t.keys = append(t.keys, e.Key)
		t.children[e.Key] = c
	}

	return t, nil
}

func join(prefix string, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + consts.StrDot + key
}

// Len returns the number of entries at the top level of the tree.
func (t *Tree) Len() int {
	if t == nil {
		return 0
	}
	return len(t.keys)
}

// Keys returns the top level keys in definition order.
func (t *Tree) Keys() []string {
	if t == nil {
		return nil
	}
	return append([]string(nil), t.keys...)
}

// Get returns the pattern at a dotted key such as "blog.posts.byId".
// ok is false when the key is unknown or names a group.
func (t *Tree) Get(key string) (pattern string, ok bool) {
	c, ok := t.lookup(key)
	if !ok || c.sub != nil {
		return "", false
	}
	return c.pattern, true
}

// Pattern is like Get but panics on an unknown key.
// Meant for route tables defined in code, where a bad key is a programming error.
func (t *Tree) Pattern(key string) string {
	pattern, ok := t.Get(key)
	if !ok {
		panic("no route pattern for key " + key)
	}
	return pattern
}

// Sub returns the group at a dotted key.
func (t *Tree) Sub(key string) (*Tree, bool) {
	c, ok := t.lookup(key)
	if !ok || c.sub == nil {
		return nil, false
	}
	return c.sub, true
}

func (t *Tree) lookup(key string) (child, bool) {
	var (
		c  child
		ok bool
	)

	cur := t
	for _, part := range strings.Split(key, consts.StrDot) {
		// Walked past a leaf, or off the tree
		if cur == nil {
			return child{}, false
		}

		c, ok = cur.children[part]
		if !ok {
			return child{}, false
		}
		cur = c.sub
	}

	return c, true
}
