package token

import (
	"strconv"
	"strings"
	"unicode"
)

// repr255 holds the escaped form of every rune below 256 in a string
// literal. bytesRepr255 is the same table for bytes literals.
var repr255, bytesRepr255 [256]string

func init() {
	for c := 0; c < 256; c++ {
		hex := `\x` + strconv.FormatInt(int64(c), 16)
		if c < 0x10 {
			hex = `\x0` + strconv.FormatInt(int64(c), 16)
		}
		switch {
		case c < 0x20:
			repr255[c] = hex
			bytesRepr255[c] = hex
		case c < 0x7f:
			repr255[c] = string(rune(c))
			bytesRepr255[c] = string(rune(c))
		case c <= 0xa0:
			repr255[c] = hex
			bytesRepr255[c] = hex
		default:
			repr255[c] = string(rune(c))
			bytesRepr255[c] = hex
		}
	}
	for _, t := range []*[256]string{&repr255, &bytesRepr255} {
		t['\t'] = `\t`
		t['\n'] = `\n`
		t['\r'] = `\r`
		t['\\'] = `\\`
	}
	repr255[0xad] = `\xad`
}

// Quote returns v as a string literal. Single quotes are used unless v
// contains a single quote and no double quote.
func Quote(v string) string {
	b := &strings.Builder{}
	b.Grow(len(v) + 2)
	for _, r := range v {
		switch {
		case r < 256:
			b.WriteString(repr255[r])
		case printable(r):
			b.WriteRune(r)
		case r <= 0xffff:
			b.WriteString(`\u`)
			writeHex(b, int64(r), 4)
		default:
			b.WriteString(`\U`)
			writeHex(b, int64(r), 8)
		}
	}
	return wrapQuotes(b.String(), "", strings.ContainsRune(v, '\''), strings.ContainsRune(v, '"'))
}

// QuoteBytes returns d as a bytes literal, b'...'.
func QuoteBytes(d []byte) string {
	b := &strings.Builder{}
	b.Grow(len(d) + 3)
	sq, dq := false, false
	for _, c := range d {
		sq = sq || c == '\''
		dq = dq || c == '"'
		b.WriteString(bytesRepr255[c])
	}
	return wrapQuotes(b.String(), "b", sq, dq)
}

func wrapQuotes(body, prefix string, sq, dq bool) string {
	switch {
	case !sq:
		return prefix + "'" + body + "'"
	case !dq:
		return prefix + `"` + body + `"`
	default:
		return prefix + "'" + strings.ReplaceAll(body, "'", `\'`) + "'"
	}
}

func printable(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsNumber(r) ||
		unicode.IsPunct(r) || unicode.IsSymbol(r)
}

func writeHex(b *strings.Builder, v int64, width int) {
	s := strconv.FormatInt(v, 16)
	for i := len(s); i < width; i++ {
		b.WriteByte('0')
	}
	b.WriteString(s)
}
