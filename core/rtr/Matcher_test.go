package rtr_test

import (
	"strings"
	"testing"

	"github.com/rohanthewiz/assert"
	"github.com/rohanthewiz/routes/core/rtr"
	"github.com/rohanthewiz/routes/core/rtr/testdata"
)

func TestStatic(t *testing.T) {
	params, ok, err := rtr.Match("/login", "/login")
	assert.Nil(t, err)
	assert.True(t, ok)
	assert.Equal(t, len(params), 0)

	params, ok, err = rtr.Match("/", "/")
	assert.Nil(t, err)
	assert.True(t, ok)
	assert.Equal(t, len(params), 0)

	notFound := []string{
		"",
		"?",
		"/404",
		"/logi",
		"/loginn",
		"/login/",
		"login",
		"/LOGIN",
	}

	for _, path := range notFound {
		params, ok, err = rtr.Match("/login", path)
		assert.Nil(t, err)
		assert.False(t, ok)
		assert.Equal(t, len(params), 0)
	}
}

func TestParameter(t *testing.T) {
	params, ok, err := rtr.Match("/blog/:post", "/blog/hello-world")
	assert.Nil(t, err)
	assert.True(t, ok)
	assert.Equal(t, len(params), 1)
	assert.Equal(t, params[0].Key, "post")
	assert.Equal(t, params[0].Value, "hello-world")

	params, ok, err = rtr.Match("/blog/:post/comments/:id", "/blog/hello-world/comments/123")
	assert.Nil(t, err)
	assert.True(t, ok)
	assert.Equal(t, len(params), 2)
	assert.Equal(t, params[0].Key, "post")
	assert.Equal(t, params[0].Value, "hello-world")
	assert.Equal(t, params[1].Key, "id")
	assert.Equal(t, params[1].Value, "123")
}

// TestConsecutiveParameters tests patterns with parameter segments
// and no static segments in between (e.g., /sermons/:year/:title)
func TestConsecutiveParameters(t *testing.T) {
	params, ok, err := rtr.Match("/path/:a/:b/:c", "/path/first/second/third")
	assert.Nil(t, err)
	assert.True(t, ok)
	assert.Equal(t, len(params), 3)
	assert.Equal(t, params[0].Key, "a")
	assert.Equal(t, params[0].Value, "first")
	assert.Equal(t, params[1].Key, "b")
	assert.Equal(t, params[1].Value, "second")
	assert.Equal(t, params[2].Key, "c")
	assert.Equal(t, params[2].Value, "third")

	params, ok, err = rtr.Match("/sermons/:year/:title", "/sermons/2020/1SAM8-08-16-15.MP3")
	assert.Nil(t, err)
	assert.True(t, ok)
	assert.Equal(t, params[1].Value, "1SAM8-08-16-15.MP3")
}

func TestSegmentCount(t *testing.T) {
	cases := []struct {
		pattern string
		path    string
	}{
		{"/a/b", "/a/b/c"},
		{"/a/:b/c", "/a/1"},
		{"/a/:b", "/a/1/c"},
		{"/users/:id", "/users/42/"}, // no trailing slash folding
		{"/users/:id/", "/users/42"},
		{"/:id", "//"},
	}

	for _, c := range cases {
		_, ok, err := rtr.Match(c.pattern, c.path)
		assert.Nil(t, err)
		assert.False(t, ok)
	}
}

func TestLiteralMismatchWins(t *testing.T) {
	// Every parameter could bind, but the literal does not
	_, ok, err := rtr.Match("/users/:id/posts/:postId", "/users/5/comments/99")
	assert.Nil(t, err)
	assert.False(t, ok)

	_, ok, err = rtr.Match("/blog/:id", "/users/42")
	assert.Nil(t, err)
	assert.False(t, ok)
}

func TestShortCircuitBeforeDecoding(t *testing.T) {
	// The literal mismatch comes first, so the bad escape is never decoded
	_, ok, err := rtr.Match("/a/:x", "/b/%ZZ")
	assert.Nil(t, err)
	assert.False(t, ok)
}

func TestEmptyParameter(t *testing.T) {
	params, ok, err := rtr.Match("/users/:id", "/users/")
	assert.Nil(t, err)
	assert.True(t, ok)
	assert.Equal(t, len(params), 1)
	assert.Equal(t, params[0].Key, "id")
	assert.Equal(t, params[0].Value, "")

	params, ok, err = rtr.Match("/users/:id/posts", "/users//posts")
	assert.Nil(t, err)
	assert.True(t, ok)
	assert.Equal(t, params[0].Value, "")
}

func TestQueryIsStripped(t *testing.T) {
	params, ok, err := rtr.Match("/blog/posts/:id", "/blog/posts/42?tab=comments")
	assert.Nil(t, err)
	assert.True(t, ok)
	assert.Equal(t, params[0].Value, "42")

	// Slashes inside the query must not change the segment count
	params, ok, err = rtr.Match("/users/:id", "/users/7?next=/a/b/c&x=1")
	assert.Nil(t, err)
	assert.True(t, ok)
	assert.Equal(t, params[0].Value, "7")

	_, ok, err = rtr.Match("/users", "/users?")
	assert.Nil(t, err)
	assert.True(t, ok)
}

func TestDecoding(t *testing.T) {
	params, ok, err := rtr.Match("/search/:q", "/search/hello%20world")
	assert.Nil(t, err)
	assert.True(t, ok)
	assert.Equal(t, params[0].Value, "hello world")

	params, ok, err = rtr.Match("/files/:path", "/files/a%2Fb")
	assert.Nil(t, err)
	assert.True(t, ok)
	assert.Equal(t, params[0].Value, "a/b")

	// '+' is not a space in a path
	params, ok, err = rtr.Match("/tags/:tag", "/tags/c++")
	assert.Nil(t, err)
	assert.True(t, ok)
	assert.Equal(t, params[0].Value, "c++")

	// Values that look like parameters are just values
	params, ok, err = rtr.Match("/page/:id", "/page/:id")
	assert.Nil(t, err)
	assert.True(t, ok)
	assert.Equal(t, params[0].Value, ":id")
}

func TestMalformedEscape(t *testing.T) {
	for _, path := range []string{"/search/%", "/search/%2", "/search/%ZZ", "/search/%E0%A4%A"} {
		params, ok, err := rtr.Match("/search/:q", path)
		assert.True(t, err != nil)
		assert.False(t, ok)
		assert.Equal(t, len(params), 0)
	}

	// Well-formed escapes that decode to invalid UTF-8
	_, ok, err := rtr.Match("/search/:q", "/search/%FF")
	assert.True(t, err != nil)
	assert.False(t, ok)
}

func TestRepeatedParameterName(t *testing.T) {
	params, ok, err := rtr.Match("/:id/:id", "/1/2")
	assert.Nil(t, err)
	assert.True(t, ok)
	assert.Equal(t, len(params), 2)
	assert.Equal(t, params[0].Value, "1")
	assert.Equal(t, params[1].Value, "2")
}

func TestNoAllocCallbackOrder(t *testing.T) {
	var keys []string

	ok, err := rtr.MatchNoAlloc("/org/:orgId/team/:teamId/member/:memberId", "/org/acme/team/eng/member/42",
		func(key string, value string) {
			keys = append(keys, key+"="+value)
		})

	assert.Nil(t, err)
	assert.True(t, ok)
	assert.Equal(t, strings.Join(keys, ","), "orgId=acme,teamId=eng,memberId=42")
}

func TestGitHub(t *testing.T) {
	routes := testdata.Routes("testdata/github.txt")
	assert.True(t, len(routes) > 0)

	for _, route := range routes {
		params, ok, err := rtr.Match(route.Pattern, route.Path)
		assert.Nil(t, err)
		assert.True(t, ok)
		assert.Equal(t, len(params), strings.Count(route.Pattern, ":"))

		ok, err = rtr.MatchNoAlloc(route.Pattern, route.Path, func(string, string) {})
		assert.Nil(t, err)
		assert.True(t, ok)
	}
}

func TestMemoryUsage(t *testing.T) {
	result := testing.Benchmark(func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _ = rtr.MatchNoAlloc("/repos/:owner/:repo/issues", "/repos/golang/go/issues", noop)
		}
	})

	t.Logf("%d bytes", result.MemBytes)
}
