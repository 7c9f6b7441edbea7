package consts

// Pattern syntax.
const (
	RuneColon    = ':' // parameter sentinel, as in /users/:id
	RuneFwdSlash = '/' // segment delimiter
	RuneQuestion = '?' // start of the query suffix
	RuneAmp      = '&' // query pair delimiter
	RuneEquals   = '=' // query key/value delimiter
	RuneDot      = '.' // separates keys of a flattened route tree
)

const (
	StrSlash    = "/"
	StrQuestion = "?"
	StrAmp      = "&"
	StrEquals   = "="
	StrDot      = "."
)
