package format

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
)

type Format int

const (
	SerpentFormat Format = iota
	JSONFormat
	YAMLFormat
)

var (
	ErrBadFormat  = errors.New("bad format")
	ErrBadDialect = errors.New("bad dialect")
)

func ParseFormat(v string) (Format, error) {
	f, ok := map[string]Format{
		"s":       SerpentFormat,
		"serpent": SerpentFormat,
		"y":       YAMLFormat,
		"yaml":    YAMLFormat,
		"j":       JSONFormat,
		"json":    JSONFormat,
	}[v]
	if ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case SerpentFormat:
		return []byte("serpent"), nil
	case YAMLFormat:
		return []byte("yaml"), nil
	case JSONFormat:
		return []byte("json"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

func (f Format) IsJSON() bool    { return f == JSONFormat }
func (f Format) IsSerpent() bool { return f == SerpentFormat }
func (f Format) IsYAML() bool    { return f == YAMLFormat }

// Suffix returns the file extension for this format (including the dot).
func (f Format) Suffix() string {
	switch f {
	case SerpentFormat:
		return ".serpent"
	case YAMLFormat:
		return ".yaml"
	case JSONFormat:
		return ".json"
	default:
		return ""
	}
}

// Dialect is the tag carried in the header line. It tells a consumer
// whether set literals may appear in the body.
type Dialect int

const (
	// Python32 allows set literals.
	Python32 Dialect = iota
	// Python26 encodes sets as tuples.
	Python26
)

const headerPrefix = "# serpent utf-8 "

func (d Dialect) String() string {
	switch d {
	case Python32:
		return "python3.2"
	case Python26:
		return "python2.6"
	default:
		return fmt.Sprintf("<dialect %d>", int(d))
	}
}

func (d Dialect) SetLiterals() bool { return d == Python32 }

// Header returns the header line, including its trailing newline.
func (d Dialect) Header() string {
	return headerPrefix + d.String() + "\n"
}

func ParseDialect(v string) (Dialect, error) {
	switch v {
	case "python3.2":
		return Python32, nil
	case "python2.6":
		return Python26, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadDialect, v)
}

// DialectFor returns the dialect matching the set literal mode of an
// encoder.
func DialectFor(setLiterals bool) Dialect {
	if setLiterals {
		return Python32
	}
	return Python26
}

// ParseHeader reads the dialect from the first line of d. It returns
// false if d does not start with a serpent header.
func ParseHeader(d []byte) (Dialect, bool) {
	if !bytes.HasPrefix(d, []byte(headerPrefix)) {
		return 0, false
	}
	line := d[len(headerPrefix):]
	if i := bytes.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}
	dia, err := ParseDialect(strings.TrimSpace(string(line)))
	if err != nil {
		return 0, false
	}
	return dia, true
}
