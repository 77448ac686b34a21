package commands

import (
	"context"
	"fmt"

	"CheckNotes/internal/config"
	"CheckNotes/internal/note"
)

type editCmd struct{}

func (editCmd) Name() string        { return "edit" }
func (editCmd) Description() string { return "Replace name, description and link of a note" }
func (editCmd) Usage() string       { return "edit <ref> <name> <description> [link]" }

func (editCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 1 {
		return ErrUsage
	}
	ref, err := parseRef(args[0])
	if err != nil {
		return err
	}
	in, err := parseInput(args[1:])
	if err != nil {
		return err
	}
	return withStore(cfg, func(store *note.Store) error {
		if ref.byID() {
			err = store.UpdateByID(ctx, ref.id, in)
		} else {
			var session note.EditSession
			session.Begin(ref.index)
			err = session.Submit(ctx, store, in)
		}
		if err != nil {
			return ref.describe(err)
		}
		fmt.Fprintf(Out, "Note %s updated\n", ref)
		return nil
	})
}

func init() { RegisterCmd(editCmd{}) }
