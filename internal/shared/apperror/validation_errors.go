package apperror

import "strings"

// ValidationErrors accumulates every violation found in one validation pass,
// so callers see all problems at once instead of fixing them one by one.
type ValidationErrors []*AppError

func (v ValidationErrors) Error() string {
	msgs := make([]string, len(v))
	for i, e := range v {
		msgs[i] = e.Message
	}
	return strings.Join(msgs, "; ")
}

// Details renders the list for the response envelope.
func (v ValidationErrors) Details() []map[string]any {
	out := make([]map[string]any, len(v))
	for i, e := range v {
		item := map[string]any{
			"code":    e.Code,
			"message": e.Message,
		}
		for k, val := range e.Meta {
			item[k] = val
		}
		out[i] = item
	}
	return out
}

// HasCode reports whether any accumulated violation carries the given code.
func (v ValidationErrors) HasCode(code string) bool {
	for _, e := range v {
		if e.Code == code {
			return true
		}
	}
	return false
}
