package rtr

// Parameter represents a URL parameter extracted from a parameter segment.
// This is what the matcher hands back for patterns like /user/:id.
//
// Example:
//   Pattern: /user/:id/posts/:postId
//   URL:     /user/123/posts/456
//   Result:  []Parameter{{Key: "id", Value: "123"}, {Key: "postId", Value: "456"}}
//
// The slice keeps the left-to-right order of the pattern's segments.
// Values are always percent-decoded.
type Parameter struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}
