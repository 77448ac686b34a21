package note

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// DefaultKey — ключ, под которым в хранилище лежит весь список заметок.
const DefaultKey = "checkNotes"

// Note — запись чек-листа.
type Note struct {
	ID          string    `json:"id,omitempty"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Link        string    `json:"link"`
	Checked     bool      `json:"checked"`
	CreatedAt   time.Time `json:"createdAt,omitzero"`

	// raw — исходный элемент, который не разобрался целиком; пишется обратно как есть,
	// пока заметку не изменят.
	raw json.RawMessage
}

// Intact reports whether the note was decoded completely. A note that is not intact
// is written back verbatim until one of its fields is changed.
func (n Note) Intact() bool { return n.raw == nil }

// noteJSON — Note без собственных методов (де)сериализации.
type noteJSON struct {
	ID          string    `json:"id,omitempty"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Link        string    `json:"link"`
	Checked     bool      `json:"checked"`
	CreatedAt   time.Time `json:"createdAt,omitzero"`
}

func (n Note) MarshalJSON() ([]byte, error) {
	if n.raw != nil {
		return n.raw, nil
	}
	return json.Marshal(noteJSON{
		ID:          n.ID,
		Name:        n.Name,
		Description: n.Description,
		Link:        n.Link,
		Checked:     n.Checked,
		CreatedAt:   n.CreatedAt,
	})
}

// UnmarshalJSON принимает createdAt как строку RFC 3339 или как миллисекунды Unix (Date.now()).
func (n *Note) UnmarshalJSON(b []byte) error {
	var w struct {
		ID          string          `json:"id"`
		Name        string          `json:"name"`
		Description string          `json:"description"`
		Link        string          `json:"link"`
		Checked     bool            `json:"checked"`
		CreatedAt   json.RawMessage `json:"createdAt"`
	}
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	at, err := parseCreatedAt(w.CreatedAt)
	if err != nil {
		return err
	}
	*n = Note{ID: w.ID, Name: w.Name, Description: w.Description, Link: w.Link, Checked: w.Checked, CreatedAt: at}
	return nil
}

func parseCreatedAt(raw json.RawMessage) (time.Time, error) {
	v := bytes.TrimSpace(raw)
	if len(v) == 0 || string(v) == "null" {
		return time.Time{}, nil
	}
	if v[0] == '"' {
		var t time.Time
		err := json.Unmarshal(v, &t)
		return t, err
	}
	var ms float64
	if err := json.Unmarshal(v, &ms); err != nil {
		return time.Time{}, fmt.Errorf("createdAt: %w", err)
	}
	return time.UnixMilli(int64(ms)).UTC(), nil
}

// salvage достаёт из неразборчивого элемента всё, что имеет правильный тип, и запоминает
// сам элемент, чтобы сохранить его без потерь.
func salvage(elem json.RawMessage) Note {
	n := Note{raw: append(json.RawMessage(nil), elem...)}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(elem, &fields); err != nil {
		return n
	}
	str := func(key string) string {
		var s string
		_ = json.Unmarshal(fields[key], &s)
		return s
	}
	n.ID, n.Name, n.Description, n.Link = str("id"), str("name"), str("description"), str("link")
	_ = json.Unmarshal(fields["checked"], &n.Checked)
	n.CreatedAt, _ = parseCreatedAt(fields["createdAt"])
	return n
}

// touch отмечает заметку изменённой: дальше она пишется из полей, а не из исходного элемента.
func (n *Note) touch() { n.raw = nil }

// List — упорядоченный список заметок. Позиция в списке валидна только до следующей мутации.
type List []Note

// Input — пользовательский ввод формы.
type Input struct {
	Name        string
	Description string
	Link        string
}

// IndexOf returns the position of the note with the given id or -1.
func (l List) IndexOf(id string) int {
	if id == "" {
		return -1
	}
	for i := range l {
		if l[i].ID == id {
			return i
		}
	}
	return -1
}

func (l List) inBounds(i int) bool { return i >= 0 && i < len(l) }

// decodeList разбирает сохранённое значение. Пустым списком (valid=false) считается только
// значение, которое не является JSON-массивом. Элементы массива разбираются по отдельности;
// неразборчивые сохраняются как есть, kept — их количество.
func decodeList(raw []byte) (l List, valid bool, kept int) {
	if len(raw) == 0 {
		return List{}, true, 0
	}
	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil || elems == nil {
		return List{}, false, 0
	}
	l = make(List, 0, len(elems))
	for _, elem := range elems {
		var n Note
		if err := json.Unmarshal(elem, &n); err != nil {
			n = salvage(elem)
			kept++
		}
		l = append(l, n)
	}
	return l, true, kept
}

func encodeList(l List) ([]byte, error) {
	if l == nil {
		l = List{}
	}
	return json.Marshal(l)
}
