package commands

import (
	"context"
	"fmt"

	"CheckNotes/internal/config"
	"CheckNotes/internal/note"
)

type removeCmd struct{}

func (removeCmd) Name() string        { return "rm" }
func (removeCmd) Description() string { return "Delete a note" }
func (removeCmd) Usage() string       { return "rm <ref>" }

func (removeCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	ref, err := parseRef(args[0])
	if err != nil {
		return err
	}
	return withStore(cfg, func(store *note.Store) error {
		var removed note.Note
		if ref.byID() {
			removed, err = store.RemoveByID(ctx, ref.id)
		} else {
			removed, err = store.Remove(ctx, ref.index)
		}
		if err != nil {
			return ref.describe(err)
		}
		fmt.Fprintf(Out, "Note removed: %s\n", removed.Name)
		return nil
	})
}

func init() { RegisterCmd(removeCmd{}) }
