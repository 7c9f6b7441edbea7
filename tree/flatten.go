package tree

// FlatRoute is a leaf of the tree addressed by its dotted key.
type FlatRoute struct {
	Key     string `json:"key"`     // e.g. "blog.posts.byId"
	Pattern string `json:"pattern"` // e.g. "/blog/posts/:id"
}

// Flatten lists every leaf depth-first, in definition order.
//
// Example:
//   home         -> /
//   blog.root    -> /blog
//   blog.post    -> /blog/:slug
func (t *Tree) Flatten() []FlatRoute {
	if t == nil {
		return nil
	}

	// Define caches the listing; a sub tree reached through Sub computes its own
	if t.flat == nil {
		return t.flatten("", nil)
	}
	return append([]FlatRoute(nil), t.flat...)
}

// FlattenMap is Flatten as a key -> pattern map.
func (t *Tree) FlattenMap() map[string]string {
	flat := t.Flatten()

	m := make(map[string]string, len(flat))
	for _, r := range flat {
		m[r.Key] = r.Pattern
	}
	return m
}

func (t *Tree) flatten(prefix string, out []FlatRoute) []FlatRoute {
	for _, key := range t.keys {
		c := t.children[key]
		fullKey := join(prefix, key)

		if c.sub != nil {
			out = c.sub.flatten(fullKey, out)
			continue
		}
		out = append(out, FlatRoute{Key: fullKey, Pattern: c.pattern})
	}
	return out
}
