// Package commands builds the ironlist command tree.
package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/fatih/color"
	"github.com/mitchellh/go-homedir"
	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/ironlist/pkg/commands/options"
	"tableflip.dev/ironlist/pkg/defaults"
	"tableflip.dev/ironlist/pkg/entry"
	"tableflip.dev/ironlist/pkg/logging"
	rdefaults "tableflip.dev/ironlist/pkg/runner/defaults"
	"tableflip.dev/ironlist/pkg/snake"
	"tableflip.dev/ironlist/pkg/store"
)

// ErrNoFile is returned when no backing file is configured and none can be
// asked for.
var ErrNoFile = errors.New("no backing file configured; pass --file, set IRONLIST_FILE or save one with --set-default PATH")

// root is the state shared by every command of one invocation. It is built
// by the root command before any sub-command runs.
type root struct {
	fo *options.FileOptions

	settings *store.Settings
	log      *log.Logger
	defaults *defaults.Store
	prompt   *snake.Prompter

	in     io.Reader
	out    io.Writer
	errOut io.Writer
	// promptOut is where prompts are drawn. It must be the terminal itself
	// for terminal detection to work, not a color wrapper around it.
	promptOut io.Writer
}

func New() *cobra.Command {
	return newCommand(defaultRoot())
}

func defaultRoot() *root {
	r := newState(os.Stdin, color.Output, color.Error)
	r.promptOut = os.Stderr
	return r
}

func newRoot(in io.Reader, out, errOut io.Writer) *cobra.Command {
	return newCommand(newState(in, out, errOut))
}

func newState(in io.Reader, out, errOut io.Writer) *root {
	return &root{
		fo:        &options.FileOptions{},
		in:        in,
		out:       out,
		errOut:    errOut,
		promptOut: errOut,
	}
}

func newCommand(r *root) *cobra.Command {
	do := &options.DefaultOptions{}

	cmd := &cobra.Command{
		Use:   "ironlist",
		Short: base.Wrap80("A personal task list kept in a plain text file."),
		Long: base.Wrap80("Keep dated, tagged entries in a plain text file, one per line: " +
			"a YYYY-MM-DD date, a description and optional comma separated tags, " +
			"separated by tabs or four or more spaces. Without a sub-command the " +
			"open entries are listed."),
		Example: `
ironlist --set-default ~/todo.txt
ironlist add "2025-01-10    Buy milk    home,errand"
ironlist
ironlist complete 1
`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return r.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			if do.Requested() {
				s := rdefaults.Defaults{
					Store: r.defaults,
					Set:   do.Set,
					Show:  do.Show,
					Out:   r.out,
					Confirm: func(string) (bool, error) {
						if !r.prompt.Interactive() {
							return false, nil
						}
						return r.prompt.Confirm("Create the file?")
					},
				}
				return s.Do(cmd.Context())
			}
			return r.list(cmd, &base.OutputOptions{})
		},
	}
	cmd.SetIn(r.in)
	cmd.SetOut(r.out)
	cmd.SetErr(r.errOut)

	options.AddFileArgs(cmd, r.fo)
	options.AddDefaultArgs(cmd, do)

	AddCommands(cmd, r)
	return cmd
}

func AddCommands(topLevel *cobra.Command, r *root) {
	addList(topLevel, r)
	addAdd(topLevel, r)
	addEdit(topLevel, r)
	addComplete(topLevel, r)
	addQuery(topLevel, r)
	addNotify(topLevel, r)
	addInfo(topLevel, r)
	addVersion(topLevel)
	addCompletions(topLevel)
}

// setup resolves settings, logging and the default path store.
func (r *root) setup(cmd *cobra.Command) error {
	settings, err := store.LoadConfig(cmd.Flags(), r.fo.Config)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	r.settings = settings
	r.log = logging.New(r.errOut, settings.LogLevel)
	if r.defaults == nil {
		r.defaults = defaults.Default()
	}
	r.prompt = &snake.Prompter{In: r.in, Out: r.promptOut}
	if settings.ConfigFile != "" {
		r.log.Debug("using config", "file", settings.ConfigFile)
	}
	return nil
}

// backingFile resolves the file to operate on: flag, env or config first,
// then the saved default, then a first run prompt that saves its answer.
func (r *root) backingFile() (string, error) {
	if r.settings.File != "" {
		return r.settings.File, nil
	}
	if p, ok, err := r.defaults.Load(); err != nil {
		return "", err
	} else if ok {
		return p, nil
	}
	if !r.prompt.Interactive() {
		return "", ErrNoFile
	}

	_, _ = fmt.Fprintln(r.errOut, "No default data file configured.")
	p, err := r.prompt.String("Path to your ironlist file")
	if err != nil {
		return "", err
	}
	if p, err = homedir.Expand(p); err != nil {
		return "", err
	}
	if err := r.defaults.Save(p); err != nil {
		r.log.Warn("could not save default path", "err", err)
	} else {
		r.log.Info("saved default path", "location", r.defaults.Location())
	}
	return p, nil
}

func (r *root) persistence() (store.Persistence, error) {
	path, err := r.backingFile()
	if err != nil {
		return nil, err
	}
	r.settings.File = path
	return store.Load(r.settings, store.WithLogger(r.log))
}

// handleError renders err as {"error": "..."} on r.out when JSON output is
// requested. The error is still returned so the command exits non-zero.
func (r *root) handleError(oo *base.OutputOptions, err error) error {
	if err == nil || !oo.JSON {
		return err
	}
	b, jerr := json.Marshal(map[string]string{"error": err.Error()})
	if jerr != nil {
		return err
	}
	_, _ = fmt.Fprintln(r.out, string(b))
	return err
}

// hint adds the expected line format to malformed line errors.
func hint(err error) error {
	if errors.Is(err, entry.ErrMalformed) {
		return fmt.Errorf("%w; expected: %s", err, entry.Usage)
	}
	return err
}
