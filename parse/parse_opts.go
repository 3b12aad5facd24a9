package parse

type parseOpts struct {
	requireHeader bool
	maxLength     int
}

type ParseOption func(*parseOpts)

// RequireHeader makes Parse reject input which does not start with a
// serpent header line.
func RequireHeader() ParseOption {
	return func(o *parseOpts) { o.requireHeader = true }
}

// MaxLength bounds the input size in bytes. Zero means no bound.
func MaxLength(n int) ParseOption {
	return func(o *parseOpts) { o.maxLength = n }
}
