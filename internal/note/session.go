package note

import "context"

// EditSession хранит, какая заметка сейчас редактируется.
// Target == nil означает режим добавления.
type EditSession struct {
	Target *int
}

// Begin переводит сессию в режим редактирования заметки index.
func (s *EditSession) Begin(index int) {
	i := index
	s.Target = &i
}

// Cancel возвращает сессию в режим добавления.
func (s *EditSession) Cancel() { s.Target = nil }

// Editing reports whether a note is targeted.
func (s *EditSession) Editing() bool { return s.Target != nil }

// Submit добавляет новую заметку или обновляет целевую. После успеха сессия сбрасывается;
// при ошибке цель сохраняется, чтобы пользователь мог исправить ввод.
func (s *EditSession) Submit(ctx context.Context, store *Store, in Input) error {
	if s.Target == nil {
		_, err := store.Add(ctx, in)
		return err
	}
	if err := store.Update(ctx, *s.Target, in); err != nil {
		return err
	}
	s.Cancel()
	return nil
}
