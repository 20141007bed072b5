package testutil

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/alexanderramin/logtime/internal/domain"
)

var testCodeCounter atomic.Int64

// Project options
type ProjectOption func(*domain.Project)

func WithDirectory(dir string) ProjectOption {
	return func(p *domain.Project) {
		p.Directory = &dir
	}
}

func WithName(name string) ProjectOption {
	return func(p *domain.Project) {
		p.Name = &name
	}
}

// NewTestProject builds an unsaved project. An empty code gets a unique
// generated one.
func NewTestProject(code string, opts ...ProjectOption) *domain.Project {
	if code == "" {
		code = fmt.Sprintf("PRJ%02d", testCodeCounter.Add(1))
	}
	p := &domain.Project{Code: code}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Subtask options
type SubtaskOption func(*domain.Subtask)

func WithBranch(branch string) SubtaskOption {
	return func(s *domain.Subtask) {
		s.Branch = &branch
	}
}

func WithDescription(desc string) SubtaskOption {
	return func(s *domain.Subtask) {
		s.Description = &desc
	}
}

func Inactive() SubtaskOption {
	return func(s *domain.Subtask) {
		s.Active = false
	}
}

func NewTestSubtask(taskID, number int64, opts ...SubtaskOption) *domain.Subtask {
	s := &domain.Subtask{TaskID: taskID, Number: number, Active: true}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Stretch options
type StretchOption func(*domain.Stretch)

func WithEnd(end time.Time) StretchOption {
	return func(s *domain.Stretch) {
		s.End = &end
	}
}

func WithDuration(d time.Duration) StretchOption {
	return func(s *domain.Stretch) {
		end := s.Start.Add(d)
		s.End = &end
	}
}

// NewTestStretch builds an unsaved stretch, open unless an end is given.
func NewTestStretch(subtaskID int64, start time.Time, opts ...StretchOption) *domain.Stretch {
	s := &domain.Stretch{SubtaskID: subtaskID, Start: start}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
