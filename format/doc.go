// Package format names the document formats handled by go-serpent tools
// and the header dialects of the serpent text format.
//
// Every serpent document starts with a header line
//
//	# serpent utf-8 python3.2
//
// whose last word is the [Dialect]. python3.2 documents may contain set
// literals, python2.6 documents encode sets as tuples.
package format
