// Package printers renders entries for the terminal.
package printers

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/ironlist/pkg/entry"
	"tableflip.dev/ironlist/pkg/visible"
)

// Row is an entry with the number the user refers to it by.
type Row struct {
	Number int
	Entry  *entry.Entry
}

// Rows pairs each of subset with its display number within all. Entries of
// subset that are not visible in all are dropped.
func Rows(all, subset []*entry.Entry, showAll bool) []Row {
	numbers := visible.Numbers(all, showAll)
	pos := make(map[*entry.Entry]int, len(all))
	for i, e := range all {
		pos[e] = i
	}
	rows := make([]Row, 0, len(subset))
	for _, e := range subset {
		i, ok := pos[e]
		if !ok {
			continue
		}
		if n, ok := numbers[i]; ok {
			rows = append(rows, Row{Number: n, Entry: e})
		}
	}
	return rows
}

// NoTags is shown in the tag column of untagged entries.
const NoTags = "-"

// PrettyPrint writes entry tables.
type PrettyPrint struct {
	Out   io.Writer
	Width int
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out())
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.out(), title)
}

// Tables prints open entries, then, when showAll is set, completed entries in
// a second table.
func (pp *PrettyPrint) Tables(rows []Row, showAll bool) {
	var open, done []Row
	for _, r := range rows {
		if r.Entry.IsComplete() {
			done = append(done, r)
		} else {
			open = append(open, r)
		}
	}

	pp.Table(open)
	if showAll && len(done) > 0 {
		pp.NewLine()
		pp.Title("Completed:")
		pp.Table(done)
	}
}

// Table prints one table of rows.
func (pp *PrettyPrint) Table(rows []Row) {
	if len(rows) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprintln(pp.out(), " none")
		return
	}

	bold := color.New(color.Bold)
	faint := color.New(color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "
	// Descriptions arrive pre-wrapped; Wrap makes uitable lay out their
	// lines instead of truncating them.
	tbl.Wrap = true
	tbl.AddRow(bold.Sprint("#"), bold.Sprint("Date"), bold.Sprint("Description"), bold.Sprint("Tags"))
	for _, r := range rows {
		tags := r.Entry.TagString(NoTags)
		if len(r.Entry.Tags) == 0 {
			tags = faint.Sprint(tags)
		}
		tbl.AddRow(
			strconv.Itoa(r.Number),
			entry.FormatDate(r.Entry.Date),
			strings.Join(Wrap(r.Entry.Description, pp.Width), "\n"),
			tags,
		)
	}
	tbl.RightAlign(0)

	_, _ = fmt.Fprintln(pp.out(), tbl)
}

type jsonRow struct {
	Number      int      `json:"number"`
	Date        string   `json:"date"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Complete    bool     `json:"complete"`
}

// JSON writes rows as an indented JSON array.
func JSON(w io.Writer, rows []Row) error {
	out := make([]jsonRow, 0, len(rows))
	for _, r := range rows {
		tags := r.Entry.Tags
		if tags == nil {
			tags = []string{}
		}
		out = append(out, jsonRow{
			Number:      r.Number,
			Date:        entry.FormatDate(r.Entry.Date),
			Description: r.Entry.Description,
			Tags:        tags,
			Complete:    r.Entry.IsComplete(),
		})
	}
	b, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}

// Print renders subset, numbered by its position among the visible entries of
// all, as tables or, when asJSON is set, as JSON.
func Print(w io.Writer, all, subset []*entry.Entry, showAll, asJSON bool, width int) error {
	rows := Rows(all, subset, showAll)
	if asJSON {
		return JSON(w, rows)
	}
	pp := PrettyPrint{Out: w, Width: width}
	pp.Tables(rows, showAll)
	return nil
}
