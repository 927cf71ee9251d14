// Package info provides the runner that describes where ironlist reads from.
package info

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/ironlist/pkg/defaults"
	"tableflip.dev/ironlist/pkg/store"
)

// Info prints the resolved configuration and a summary of the backing file.
type Info struct {
	Settings    *store.Settings
	Defaults    *defaults.Store
	Persistence store.Persistence
	Out         io.Writer
}

// Do never fails on an unreadable backing file; the problem is printed
// instead.
func (n *Info) Do(ctx context.Context) error {
	out := n.Out
	if out == nil {
		out = color.Output
	}
	bold := color.New(color.Bold)
	faint := color.New(color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "

	if override := os.Getenv("IRONLIST_CONFIG_PATH"); override != "" {
		tbl.AddRow(bold.Sprint("IRONLIST_CONFIG_PATH"), override)
	} else {
		tbl.AddRow(bold.Sprint("IRONLIST_CONFIG_PATH"), faint.Sprint("not set"))
	}

	configFile := faint.Sprint("none")
	if n.Settings != nil && n.Settings.ConfigFile != "" {
		configFile = n.Settings.ConfigFile
	}
	tbl.AddRow(bold.Sprint("Config file"), configFile)

	if n.Defaults != nil {
		saved, ok, err := n.Defaults.Load()
		switch {
		case err != nil:
			saved = color.RedString(err.Error())
		case !ok:
			saved = faint.Sprint("none")
		}
		tbl.AddRow(bold.Sprint("Saved default"), saved)
		tbl.AddRow(bold.Sprint("Default stored in"), n.Defaults.Location())
	}

	if n.Persistence == nil {
		tbl.AddRow(bold.Sprint("Backing file"), faint.Sprint("not configured"))
		_, _ = fmt.Fprintln(out, tbl)
		return nil
	}
	tbl.AddRow(bold.Sprint("Backing file"), n.Persistence.Path())

	all, err := n.Persistence.ListAll(ctx)
	if err != nil {
		tbl.AddRow(bold.Sprint("Entries"), color.RedString(err.Error()))
		_, _ = fmt.Fprintln(out, tbl)
		return nil
	}
	done := 0
	for _, e := range all {
		if e.IsComplete() {
			done++
		}
	}
	tbl.AddRow(bold.Sprint("Entries"), strconv.Itoa(len(all)))
	tbl.AddRow(bold.Sprint("Open"), strconv.Itoa(len(all)-done))
	tbl.AddRow(bold.Sprint("Completed"), strconv.Itoa(done))
	if len(all) > 0 {
		tbl.AddRow(bold.Sprint("Date range"),
			fmt.Sprintf("%s .. %s", all[0].Date.Format("2006-01-02"), all[len(all)-1].Date.Format("2006-01-02")))
	}

	_, _ = fmt.Fprintln(out, tbl)
	return nil
}
