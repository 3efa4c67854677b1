package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrInvalidCategory = errors.New("model: invalid task category")
	ErrInvalidPriority = errors.New("model: invalid task priority")
)

type Category string

const (
	CategoryInbox Category = "inbox"
	CategoryToday Category = "today"
	CategoryDone  Category = "done"
)

func (c Category) IsValid() bool {
	switch c {
	case CategoryInbox, CategoryToday, CategoryDone:
		return true
	default:
		return false
	}
}

func (c Category) Label() string {
	switch c {
	case CategoryInbox:
		return "Inbox"
	case CategoryToday:
		return "Today"
	case CategoryDone:
		return "Done"
	default:
		return string(c)
	}
}

// Categories lists the task views in tab order.
func Categories() []Category {
	return []Category{CategoryInbox, CategoryToday, CategoryDone}
}

type Priority string

const (
	PriorityNone   Priority = ""
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	default:
		return false
	}
}

// Next cycles none -> low -> medium -> high -> none.
func (p Priority) Next() Priority {
	switch p {
	case PriorityNone:
		return PriorityLow
	case PriorityLow:
		return PriorityMedium
	case PriorityMedium:
		return PriorityHigh
	default:
		return PriorityNone
	}
}

type Task struct {
	ID        string
	Title     string
	Completed bool
	Category  Category
	CreatedAt time.Time
	Priority  Priority
}

func (t Task) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return errors.New("model: task id is required")
	}
	if strings.TrimSpace(t.Title) == "" {
		return errors.New("model: task title is required")
	}
	if !t.Category.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidCategory, t.Category)
	}
	if t.Priority != PriorityNone && !t.Priority.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidPriority, t.Priority)
	}
	if t.CreatedAt.IsZero() {
		return errors.New("model: task created_at is required")
	}
	return nil
}

// FilterTasks returns the tasks shown under view, in insertion order.
// The done view is driven by Completed alone; category is ignored there.
func FilterTasks(tasks []Task, view Category) []Task {
	out := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if view == CategoryDone {
			if t.Completed {
				out = append(out, t)
			}
			continue
		}
		if t.Category == view && !t.Completed {
			out = append(out, t)
		}
	}
	return out
}

// CountByView returns the badge count for each task view.
func CountByView(tasks []Task) map[Category]int {
	out := make(map[Category]int, 3)
	for _, c := range Categories() {
		out[c] = 0
	}
	for _, t := range tasks {
		switch {
		case t.Completed:
			out[CategoryDone]++
		case t.Category == CategoryInbox || t.Category == CategoryToday:
			out[t.Category]++
		}
	}
	return out
}

func FindTask(tasks []Task, id string) (Task, bool) {
	for _, t := range tasks {
		if t.ID == id {
			return t, true
		}
	}
	return Task{}, false
}
