package printers

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/ironlist/pkg/entry"
)

func init() {
	color.NoColor = true
}

func fixture() []*entry.Entry {
	on := func(d int) time.Time { return time.Date(2025, 1, d, 0, 0, 0, 0, time.UTC) }
	return []*entry.Entry{
		entry.New(on(1), "Done thing", "complete"),
		entry.New(on(2), "Buy milk", "home", "errand"),
		entry.New(on(3), "Old done", "work", "Complete"),
		entry.New(on(4), "Write a rather long description that has to wrap"),
	}
}

func TestRowsNumbering(t *testing.T) {
	all := fixture()

	rows := Rows(all, all, false)
	if len(rows) != 2 || rows[0].Number != 1 || rows[0].Entry != all[1] || rows[1].Number != 2 || rows[1].Entry != all[3] {
		t.Fatalf("unexpected rows %+v", rows)
	}

	rows = Rows(all, all, true)
	for i, r := range rows {
		if r.Number != i+1 || r.Entry != all[i] {
			t.Fatalf("row %d = %+v", i, r)
		}
	}

	// A subset keeps the numbers of the full listing.
	rows = Rows(all, []*entry.Entry{all[3]}, false)
	if len(rows) != 1 || rows[0].Number != 2 {
		t.Fatalf("unexpected subset rows %+v", rows)
	}
}

func TestTablesHidesCompleted(t *testing.T) {
	var buf bytes.Buffer
	pp := PrettyPrint{Out: &buf, Width: 20}
	all := fixture()
	pp.Tables(Rows(all, all, false), false)

	out := buf.String()
	if strings.Contains(out, "Done thing") || strings.Contains(out, "Completed:") {
		t.Fatalf("completed entries should be hidden:\n%s", out)
	}
	for _, want := range []string{"Buy milk", "home,errand", "2025-01-04", "Description"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "2025-01-04") && !strings.HasSuffix(strings.TrimSpace(line), NoTags) {
			t.Fatalf("expected tag placeholder on %q", line)
		}
	}
}

func TestTablesShowAll(t *testing.T) {
	var buf bytes.Buffer
	pp := PrettyPrint{Out: &buf, Width: 20}
	all := fixture()
	pp.Tables(Rows(all, all, true), true)

	out := buf.String()
	idx := strings.Index(out, "Completed:")
	if idx < 0 {
		t.Fatalf("expected completed table:\n%s", out)
	}
	if !strings.Contains(out[idx:], "Done thing") || !strings.Contains(out[idx:], "Old done") {
		t.Fatalf("completed entries should be in the second table:\n%s", out)
	}
	if strings.Contains(out[idx:], "Buy milk") {
		t.Fatalf("open entries should be in the first table:\n%s", out)
	}
}

func TestTableWrapsDescription(t *testing.T) {
	var buf bytes.Buffer
	pp := PrettyPrint{Out: &buf, Width: 12}
	all := fixture()
	pp.Table(Rows(all, all[3:], false))

	out := buf.String()
	if strings.Contains(out, "rather long description") {
		t.Fatalf("description should wrap at 12 cells:\n%s", out)
	}
	if !strings.Contains(out, "rather long") || !strings.Contains(out, "that has to") {
		t.Fatalf("wrapped words missing:\n%s", out)
	}
}

func TestTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	pp := PrettyPrint{Out: &buf}
	pp.Table(nil)
	if !strings.Contains(buf.String(), "none") {
		t.Fatalf("expected placeholder, got %q", buf.String())
	}
}

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	all := fixture()
	if err := JSON(&buf, Rows(all, all, true)); err != nil {
		t.Fatalf("json: %v", err)
	}
	var got []map[string]any
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v\n%s", err, buf.String())
	}
	if len(got) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(got))
	}
	if got[0]["complete"] != true || got[1]["date"] != "2025-01-02" || got[1]["number"] != float64(2) {
		t.Fatalf("unexpected rows %v", got)
	}
	if tags, ok := got[3]["tags"].([]any); !ok || len(tags) != 0 {
		t.Fatalf("expected empty tag array, got %v", got[3]["tags"])
	}
}
