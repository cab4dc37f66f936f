// Command outline is a terminal outline editor over a YAML file of
// nested title/children entries. It exists to exercise the forest
// cursor engine: row navigation uses the pre-order steps, and reordering
// uses the relocation classifiers and primitives.
package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	flags "github.com/jessevdk/go-flags"

	"github.com/outlinekit/forest"
)

type options struct {
	ReadOnly bool `short:"r" long:"read-only" description:"Browse without saving"`

	Args struct {
		File string `positional-arg-name:"FILE" description:"Outline YAML file"`
	} `positional-args:"yes" required:"yes"`
}

func main() {
	var opts options
	if _, err := flags.Parse(&opts); err != nil {
		if flags.WroteHelp(err) {
			return
		}
		os.Exit(2)
	}

	f, err := loadOutline(opts.Args.File)
	if err != nil {
		fmt.Fprintf(os.Stderr, "outline: %v\n", err)
		os.Exit(1)
	}
	cur, err := forest.MakeCursor(f)
	if err != nil {
		if errors.Is(err, forest.ErrEmptyForest) {
			fmt.Fprintf(os.Stderr, "outline: %s has no entries\n", opts.Args.File)
		} else {
			fmt.Fprintf(os.Stderr, "outline: %v\n", err)
		}
		os.Exit(1)
	}

	p := tea.NewProgram(newAppModel(cur, opts.Args.File, opts.ReadOnly), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "outline: %v\n", err)
		os.Exit(1)
	}
}
