package commands

import (
	"context"
	"fmt"

	"CheckNotes/internal/config"
	"CheckNotes/internal/note"
)

type addCmd struct{}

func (addCmd) Name() string        { return "add" }
func (addCmd) Description() string { return "Add a note (link must be https)" }
func (addCmd) Usage() string       { return "add <name> <description> [link]" }

func (addCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	in, err := parseInput(args)
	if err != nil {
		return err
	}
	return withStore(cfg, func(store *note.Store) error {
		n, err := store.Add(ctx, in)
		if err != nil {
			return err
		}
		fmt.Fprintf(Out, "Note added: %s (id=%s)\n", n.Name, n.ID)
		return nil
	})
}

func init() { RegisterCmd(addCmd{}) }
