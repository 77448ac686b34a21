package commands

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"CheckNotes/internal/cli/bootstrap"
	"CheckNotes/internal/config"
	"CheckNotes/internal/note"
)

// noteRef — ссылка на заметку из командной строки: позиция из list (с единицы) или id.
type noteRef struct {
	index int
	id    string
	raw   string
}

func parseRef(s string) (noteRef, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return noteRef{}, ErrUsage
	}
	if n, err := strconv.Atoi(s); err == nil {
		return noteRef{index: n - 1, raw: s}, nil
	}
	return noteRef{index: -1, id: s, raw: s}, nil
}

func (r noteRef) byID() bool { return r.id != "" }

func (r noteRef) String() string {
	if r.byID() {
		return "id " + r.id
	}
	return "#" + r.raw
}

// describe переводит NotFoundError в термины пользователя (позиция вместо индекса).
func (r noteRef) describe(err error) error {
	if errors.Is(err, note.ErrNotFound) {
		return fmt.Errorf("%w: %s", note.ErrNotFound, r)
	}
	return err
}

// withStore открывает хранилище заметок и закрывает его после fn.
func withStore(cfg *config.Config, fn func(*note.Store) error) error {
	store, done, err := bootstrap.OpenNoteStore(cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := done(); err != nil {
			logger.Debugw("storage close failed", "error", err)
		}
	}()
	return fn(store)
}

// parseInput собирает Input из позиционных аргументов <name> <description> [link].
func parseInput(args []string) (note.Input, error) {
	if len(args) < 2 || len(args) > 3 {
		return note.Input{}, ErrUsage
	}
	in := note.Input{Name: args[0], Description: args[1]}
	if len(args) == 3 {
		in.Link = args[2]
	}
	return in, nil
}
