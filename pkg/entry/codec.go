package entry

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformed is returned by Parse for lines that are not valid entries.
var ErrMalformed = errors.New("malformed entry")

// Usage describes the accepted line format for error messages.
const Usage = "YYYY-MM-DD    Description    tag1,tag2"

// minSpaceRun is the shortest run of spaces treated as a field separator.
const minSpaceRun = 4

// Parse decodes one raw line. The first field must be a YYYY-MM-DD date, the
// second is the description and the optional third holds comma separated tags.
// Fields past the third are ignored.
func Parse(raw string) (*Entry, error) {
	fields := Split(raw)
	if len(fields) < 2 {
		return nil, fmt.Errorf("%w: expected at least a date and a description", ErrMalformed)
	}
	date, err := ParseDate(fields[0])
	if err != nil {
		return nil, fmt.Errorf("%w: bad date %q", ErrMalformed, fields[0])
	}
	e := &Entry{
		Date:        date,
		Description: fields[1],
	}
	if len(fields) >= 3 {
		for _, t := range strings.Split(fields[2], ",") {
			if t = strings.TrimSpace(t); t != "" {
				e.Tags = append(e.Tags, t)
			}
		}
	}
	return e, nil
}

// Format renders the canonical tab separated form of e. The tag field is
// omitted entirely when there are no tags.
func Format(e *Entry) string {
	var b strings.Builder
	b.WriteString(FormatDate(e.Date))
	b.WriteByte('\t')
	b.WriteString(e.Description)
	if len(e.Tags) > 0 {
		b.WriteByte('\t')
		b.WriteString(strings.Join(e.Tags, ","))
	}
	return b.String()
}

// Normalize parses raw and returns its canonical form.
func Normalize(raw string) (string, error) {
	e, err := Parse(raw)
	if err != nil {
		return "", err
	}
	return Format(e), nil
}

// Split tokenizes a line in one left-to-right pass. A tab always separates
// fields and so does a run of four or more spaces; shorter runs are kept as
// content. Fields are trimmed and empty ones dropped.
func Split(s string) []string {
	var fields []string
	push := func(f string) {
		if f = strings.TrimSpace(f); f != "" {
			fields = append(fields, f)
		}
	}

	start := 0
	for i := 0; i < len(s); {
		switch s[i] {
		case '\t':
			push(s[start:i])
			i++
			start = i
		case ' ':
			j := i
			for j < len(s) && s[j] == ' ' {
				j++
			}
			if j-i >= minSpaceRun {
				push(s[start:i])
				start = j
			}
			i = j
		default:
			i++
		}
	}
	push(s[start:])
	return fields
}
