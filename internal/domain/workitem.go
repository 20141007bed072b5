package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// CodeSeparator joins the parts of a work-item code.
const CodeSeparator = "-"

// SubtaskSpec addresses a subtask by code parts. A nil Subtask selects the
// task's most recently numbered subtask (or subtask 1 for a new task).
type SubtaskSpec struct {
	ProjectCode string
	Task        int64
	Subtask     *int64
}

// ParseCode parses "<project>-<task>" or "<project>-<task>-<subtask>".
// The project code is everything before the first hyphen.
func ParseCode(code string) (SubtaskSpec, error) {
	parts := strings.Split(code, CodeSeparator)
	if len(parts) < 2 {
		return SubtaskSpec{}, Invalid("code", "%q is missing a task number", code)
	}
	if len(parts) > 3 {
		return SubtaskSpec{}, Invalid("code", "%q has too many parts", code)
	}
	if err := ValidateProjectCode(parts[0]); err != nil {
		return SubtaskSpec{}, Invalid("code", "%q: %v", code, err)
	}

	spec := SubtaskSpec{ProjectCode: parts[0]}
	task, err := parseNumber(parts[1])
	if err != nil {
		return SubtaskSpec{}, Invalid("code", "%q: task number: %v", code, err)
	}
	spec.Task = task

	if len(parts) == 3 {
		sub, err := parseNumber(parts[2])
		if err != nil {
			return SubtaskSpec{}, Invalid("code", "%q: subtask number: %v", code, err)
		}
		spec.Subtask = &sub
	}
	return spec, nil
}

// parseNumber accepts only the canonical decimal form FormatCode produces,
// so "3", but not "+3" or "03".
func parseNumber(s string) (int64, error) {
	if s == "" {
		return 0, fmt.Errorf("empty")
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, fmt.Errorf("%q is not a number", s)
		}
	}
	if s[0] == '0' {
		if strings.Trim(s, "0") == "" {
			return 0, fmt.Errorf("%s must be positive", s)
		}
		return 0, fmt.Errorf("%q has a leading zero", s)
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is out of range", s)
	}
	return n, nil
}

// Code renders s back into its textual form.
func (s SubtaskSpec) Code() string {
	if s.Subtask == nil {
		return FormatCode(s.ProjectCode, s.Task)
	}
	return FormatCode(s.ProjectCode, s.Task, *s.Subtask)
}

// FormatCode joins a project code and its numeric parts.
func FormatCode(project string, numbers ...int64) string {
	var b strings.Builder
	b.WriteString(project)
	for _, n := range numbers {
		b.WriteString(CodeSeparator)
		b.WriteString(strconv.FormatInt(n, 10))
	}
	return b.String()
}

// WorkItem is a fully resolved Project/Task/Subtask triple.
type WorkItem struct {
	Project *Project
	Task    *Task
	Subtask *Subtask
}

// Code returns the full three-part code.
func (w *WorkItem) Code() string {
	return FormatCode(w.Project.Code, w.Task.Number, w.Subtask.Number)
}

// TaskCode returns the two-part code addressing the task.
func (w *WorkItem) TaskCode() string {
	return FormatCode(w.Project.Code, w.Task.Number)
}
