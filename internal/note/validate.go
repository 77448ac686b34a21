package note

import (
	"net/url"
	"strings"
)

// IsHTTPSURL reports whether s parses as an absolute https URL with a host.
func IsHTTPSURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return u.Scheme == "https" && u.Hostname() != ""
}

// Validate обрезает пробелы по краям и проверяет поля формы.
// Возвращает нормализованный ввод, который и сохраняется.
func Validate(in Input) (Input, error) {
	out := Input{
		Name:        strings.TrimSpace(in.Name),
		Description: strings.TrimSpace(in.Description),
		Link:        strings.TrimSpace(in.Link),
	}
	if out.Name == "" {
		return Input{}, &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if out.Description == "" {
		return Input{}, &ValidationError{Field: "description", Reason: "must not be empty"}
	}
	if out.Link != "" && !IsHTTPSURL(out.Link) {
		return Input{}, &ValidationError{Field: "link", Reason: "must be a valid https URL"}
	}
	return out, nil
}
