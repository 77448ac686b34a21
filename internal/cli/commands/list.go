package commands

import (
	"context"
	"fmt"

	"CheckNotes/internal/config"
	"CheckNotes/internal/note"
)

type listCmd struct{}

func (listCmd) Name() string        { return "list" }
func (listCmd) Description() string { return "Show all notes" }
func (listCmd) Usage() string       { return "list" }

func (listCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	return withStore(cfg, func(store *note.Store) error {
		list, err := store.Load(ctx)
		if err != nil {
			return err
		}
		if len(list) == 0 {
			fmt.Fprintln(Out, "No notes yet")
			return nil
		}
		for i, n := range list {
			fmt.Fprintln(Out, formatNote(i+1, n))
		}
		fmt.Fprintf(Out, "Total: %d\n", len(list))
		return nil
	})
}

func formatNote(pos int, n note.Note) string {
	mark := " "
	if n.Checked {
		mark = "x"
	}
	line := fmt.Sprintf("%2d. [%s] %s: %s", pos, mark, n.Name, n.Description)
	if n.Link != "" {
		line += " <" + n.Link + ">"
	}
	if n.ID != "" {
		line += "  id=" + n.ID
	}
	if !n.Intact() {
		line += "  (stored as is)"
	}
	return line
}

func init() { RegisterCmd(listCmd{}) }
