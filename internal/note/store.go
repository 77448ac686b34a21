package note

import (
	"context"
	"time"

	"CheckNotes/internal/storage"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Store — слой чтения-изменения-записи поверх хранилища.
// Каждая операция заново читает список целиком и целиком же его записывает;
// между вызовами ничего не кешируется. Блокировок нет: последний писатель побеждает.
type Store struct {
	kv     storage.Storage
	key    string
	now    func() time.Time
	newID  func() string
	logger *zap.SugaredLogger
}

// Option настраивает Store.
type Option func(*Store)

// WithKey sets the storage key holding the list.
func WithKey(key string) Option {
	return func(s *Store) {
		if key != "" {
			s.key = key
		}
	}
}

// WithLogger sets the logger used for mutation traces.
func WithLogger(l *zap.SugaredLogger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithClock overrides the creation timestamp source.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator overrides the note id source.
func WithIDGenerator(gen func() string) Option {
	return func(s *Store) { s.newID = gen }
}

// NewStore создаёт Store поверх переданного хранилища.
func NewStore(kv storage.Storage, opts ...Option) *Store {
	s := &Store{
		kv:     kv,
		key:    DefaultKey,
		now:    time.Now,
		newID:  uuid.NewString,
		logger: zap.NewNop().Sugar(),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Key returns the storage key the store reads and writes.
func (s *Store) Key() string { return s.key }

// Load возвращает текущий список. Отсутствие значения — пустой список, а не ошибка.
func (s *Store) Load(ctx context.Context) (List, error) {
	raw, ok, err := s.kv.Get(ctx, s.key)
	if err != nil {
		return nil, err
	}
	if !ok {
		return List{}, nil
	}
	l, valid, kept := decodeList(raw)
	if !valid {
		s.logger.Warnw("stored value is not a note list, treating as empty", "key", s.key, "size", len(raw))
	}
	if kept > 0 {
		s.logger.Warnw("stored notes kept verbatim, fields have unexpected types", "key", s.key, "count", kept)
	}
	return l, nil
}

// Add проверяет ввод и добавляет заметку в конец списка.
func (s *Store) Add(ctx context.Context, in Input) (Note, error) {
	in, err := Validate(in)
	if err != nil {
		return Note{}, err
	}
	l, err := s.Load(ctx)
	if err != nil {
		return Note{}, err
	}
	n := Note{
		ID:          s.newID(),
		Name:        in.Name,
		Description: in.Description,
		Link:        in.Link,
		CreatedAt:   s.now().UTC(),
	}
	l = append(l, n)
	if err := s.save(ctx, l); err != nil {
		return Note{}, err
	}
	s.logger.Debugw("note added", "id", n.ID, "index", len(l)-1)
	return n, nil
}

// Update заменяет name/description/link заметки по индексу; checked, createdAt и id сохраняются.
func (s *Store) Update(ctx context.Context, index int, in Input) error {
	in, err := Validate(in)
	if err != nil {
		return err
	}
	return s.mutate(ctx, func(l List) (List, error) {
		if !l.inBounds(index) {
			return nil, &NotFoundError{Index: index}
		}
		l[index].touch()
		l[index].Name, l[index].Description, l[index].Link = in.Name, in.Description, in.Link
		s.logger.Debugw("note updated", "index", index)
		return l, nil
	})
}

// UpdateByID — Update по стабильному идентификатору.
func (s *Store) UpdateByID(ctx context.Context, id string, in Input) error {
	in, err := Validate(in)
	if err != nil {
		return err
	}
	return s.mutate(ctx, func(l List) (List, error) {
		i := l.IndexOf(id)
		if i < 0 {
			return nil, &NotFoundError{Index: -1, ID: id}
		}
		l[i].touch()
		l[i].Name, l[i].Description, l[i].Link = in.Name, in.Description, in.Link
		s.logger.Debugw("note updated", "id", id)
		return l, nil
	})
}

// Remove удаляет заметку по индексу и возвращает её.
func (s *Store) Remove(ctx context.Context, index int) (Note, error) {
	var removed Note
	err := s.mutate(ctx, func(l List) (List, error) {
		if !l.inBounds(index) {
			return nil, &NotFoundError{Index: index}
		}
		removed = l[index]
		return append(l[:index], l[index+1:]...), nil
	})
	if err != nil {
		return Note{}, err
	}
	s.logger.Debugw("note removed", "index", index, "id", removed.ID)
	return removed, nil
}

// RemoveByID — Remove по стабильному идентификатору.
func (s *Store) RemoveByID(ctx context.Context, id string) (Note, error) {
	var removed Note
	err := s.mutate(ctx, func(l List) (List, error) {
		i := l.IndexOf(id)
		if i < 0 {
			return nil, &NotFoundError{Index: -1, ID: id}
		}
		removed = l[i]
		return append(l[:i], l[i+1:]...), nil
	})
	if err != nil {
		return Note{}, err
	}
	s.logger.Debugw("note removed", "id", id)
	return removed, nil
}

// SetChecked выставляет флаг checked. Индекс вне диапазона — NotFoundError, запись не выполняется.
func (s *Store) SetChecked(ctx context.Context, index int, value bool) error {
	return s.mutate(ctx, func(l List) (List, error) {
		if !l.inBounds(index) {
			return nil, &NotFoundError{Index: index}
		}
		l[index].touch()
		l[index].Checked = value
		return l, nil
	})
}

// SetCheckedByID — SetChecked по стабильному идентификатору.
func (s *Store) SetCheckedByID(ctx context.Context, id string, value bool) error {
	return s.mutate(ctx, func(l List) (List, error) {
		i := l.IndexOf(id)
		if i < 0 {
			return nil, &NotFoundError{Index: -1, ID: id}
		}
		l[i].touch()
		l[i].Checked = value
		return l, nil
	})
}

// Toggle инвертирует checked и возвращает новое значение.
func (s *Store) Toggle(ctx context.Context, index int) (bool, error) {
	var checked bool
	err := s.mutate(ctx, func(l List) (List, error) {
		if !l.inBounds(index) {
			return nil, &NotFoundError{Index: index}
		}
		l[index].touch()
		l[index].Checked = !l[index].Checked
		checked = l[index].Checked
		return l, nil
	})
	return checked, err
}

// ToggleByID — Toggle по стабильному идентификатору.
func (s *Store) ToggleByID(ctx context.Context, id string) (bool, error) {
	var checked bool
	err := s.mutate(ctx, func(l List) (List, error) {
		i := l.IndexOf(id)
		if i < 0 {
			return nil, &NotFoundError{Index: -1, ID: id}
		}
		l[i].touch()
		l[i].Checked = !l[i].Checked
		checked = l[i].Checked
		return l, nil
	})
	return checked, err
}

// mutate — один цикл read-modify-write. Если fn вернула ошибку, в хранилище ничего не пишется.
func (s *Store) mutate(ctx context.Context, fn func(List) (List, error)) error {
	l, err := s.Load(ctx)
	if err != nil {
		return err
	}
	l, err = fn(l)
	if err != nil {
		return err
	}
	return s.save(ctx, l)
}

func (s *Store) save(ctx context.Context, l List) error {
	// записи старого формата без id получают его при первой перезаписи;
	// неразобранные элементы пишутся как есть
	for i := range l {
		if l[i].ID == "" && l[i].Intact() {
			l[i].ID = s.newID()
		}
	}
	raw, err := encodeList(l)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, s.key, raw)
}
