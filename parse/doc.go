// Package parse parses serpent text into ir nodes.
//
// # Usage
//
//	node, err := parse.Parse(data)
//	if err != nil {
//	    return err
//	}
//
//	node, err := parse.ParseString(`{'name': 'alice', 'tags': {'a', 'b'}}`)
//
//	// reject documents without a "# serpent utf-8 ..." first line
//	node, err := parse.Parse(data, parse.RequireHeader())
//
// # Ambiguity
//
// A '{' starts either a set or a dict. The parser tries a set first and
// falls back to a dict. A '(' starts either a tuple or a complex number;
// the parser looks ahead to the closing paren (or end of line) and reads
// a complex number when that text ends with 'j'. Numbers are tried as
// complex, then float, then integer.
//
// # Errors
//
// All errors match [ErrSyntax] with errors.Is. Errors from Parse are
// *[SyntaxError] values carrying the failure position and surrounding
// text.
//
// # Related Packages
//
//   - github.com/signadot/serpent-format/go-serpent/ir - value tree
//   - github.com/signadot/serpent-format/go-serpent/gomap - reduce a tree to Go values
//   - github.com/signadot/serpent-format/go-serpent/encode - write Go values as text
package parse
