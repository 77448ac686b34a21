package commands

import (
	"context"
	"fmt"

	"CheckNotes/internal/config"
	"CheckNotes/internal/note"
)

// checkCmd выставляет флаг checked в заданное значение (check / uncheck).
type checkCmd struct {
	value bool
}

func (c checkCmd) Name() string {
	if c.value {
		return "check"
	}
	return "uncheck"
}

func (c checkCmd) Description() string {
	if c.value {
		return "Mark a note as checked"
	}
	return "Clear the checked mark of a note"
}

func (c checkCmd) Usage() string { return c.Name() + " <ref>" }

func (c checkCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	ref, err := parseRef(args[0])
	if err != nil {
		return err
	}
	return withStore(cfg, func(store *note.Store) error {
		if ref.byID() {
			err = store.SetCheckedByID(ctx, ref.id, c.value)
		} else {
			err = store.SetChecked(ctx, ref.index, c.value)
		}
		if err != nil {
			return ref.describe(err)
		}
		fmt.Fprintf(Out, "Note %s %sed\n", ref, c.Name())
		return nil
	})
}

type toggleCmd struct{}

func (toggleCmd) Name() string        { return "toggle" }
func (toggleCmd) Description() string { return "Flip the checked mark of a note" }
func (toggleCmd) Usage() string       { return "toggle <ref>" }

func (toggleCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	ref, err := parseRef(args[0])
	if err != nil {
		return err
	}
	return withStore(cfg, func(store *note.Store) error {
		var checked bool
		if ref.byID() {
			checked, err = store.ToggleByID(ctx, ref.id)
		} else {
			checked, err = store.Toggle(ctx, ref.index)
		}
		if err != nil {
			return ref.describe(err)
		}
		state := "unchecked"
		if checked {
			state = "checked"
		}
		fmt.Fprintf(Out, "Note %s is now %s\n", ref, state)
		return nil
	})
}

func init() {
	RegisterCmd(checkCmd{value: true})
	RegisterCmd(checkCmd{value: false})
	RegisterCmd(toggleCmd{})
}
