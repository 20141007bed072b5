package domain

import (
	"strings"
	"unicode"
)

// Project is the root of the work hierarchy. Code is the short,
// human-chosen identifier that prefixes every work-item code.
type Project struct {
	ID        int64
	Code      string
	Directory *string
	Name      *string
}

// ValidateProjectCode checks that code can round-trip through ParseCode:
// non-empty, no hyphen and no whitespace.
func ValidateProjectCode(code string) error {
	if code == "" {
		return Invalid("project code", "must not be empty")
	}
	if strings.Contains(code, CodeSeparator) {
		return Invalid("project code", "%q must not contain %q", code, CodeSeparator)
	}
	if strings.IndexFunc(code, unicode.IsSpace) >= 0 {
		return Invalid("project code", "%q must not contain whitespace", code)
	}
	return nil
}

// DisplayName returns the project name, falling back to its code.
func (p *Project) DisplayName() string {
	return CoalesceStr(StrFromPtr(p.Name), p.Code)
}

type Task struct {
	ID            int64
	ProjectID     int64
	Number        int64
	ActiveSubtask *int64
}

type Subtask struct {
	ID          int64
	TaskID      int64
	Number      int64
	Branch      *string
	Description *string
	Active      bool
}
