package model

import (
	"errors"
	"testing"
	"time"
)

func TestTaskValidateSuccess(t *testing.T) {
	now := time.Date(2026, 2, 9, 12, 0, 0, 0, time.UTC)
	task := Task{
		ID:        "task-1",
		Title:     "Plan the week",
		Category:  CategoryToday,
		Priority:  PriorityHigh,
		CreatedAt: now,
	}
	if err := task.Validate(); err != nil {
		t.Fatalf("expected valid task, got error: %v", err)
	}

	task.Priority = PriorityNone
	if err := task.Validate(); err != nil {
		t.Fatalf("expected task without priority to be valid, got: %v", err)
	}
}

func TestTaskValidateRequiresTitle(t *testing.T) {
	task := Task{ID: "task-1", Title: "  ", Category: CategoryInbox, CreatedAt: time.Now()}
	err := task.Validate()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if err.Error() != "model: task title is required" {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestTaskValidateInvalidEnums(t *testing.T) {
	now := time.Date(2026, 2, 9, 12, 0, 0, 0, time.UTC)
	task := Task{
		ID:        "task-1",
		Title:     "Bad category",
		Category:  Category("someday"),
		CreatedAt: now,
	}
	err := task.Validate()
	if err == nil || !errors.Is(err, ErrInvalidCategory) {
		t.Fatalf("expected ErrInvalidCategory, got: %v", err)
	}

	task.Category = CategoryInbox
	task.Priority = Priority("urgent")
	err = task.Validate()
	if err == nil || !errors.Is(err, ErrInvalidPriority) {
		t.Fatalf("expected ErrInvalidPriority, got: %v", err)
	}
}

func TestFilterTasksByView(t *testing.T) {
	now := time.Date(2026, 2, 9, 12, 0, 0, 0, time.UTC)
	tasks := []Task{
		{ID: "a", Title: "a", Category: CategoryInbox, CreatedAt: now},
		{ID: "b", Title: "b", Category: CategoryToday, CreatedAt: now},
		{ID: "c", Title: "c", Category: CategoryInbox, Completed: true, CreatedAt: now},
		{ID: "d", Title: "d", Category: CategoryDone, Completed: true, CreatedAt: now},
		{ID: "e", Title: "e", Category: CategoryInbox, CreatedAt: now},
	}

	inbox := FilterTasks(tasks, CategoryInbox)
	if len(inbox) != 2 || inbox[0].ID != "a" || inbox[1].ID != "e" {
		t.Fatalf("unexpected inbox view: %+v", inbox)
	}
	today := FilterTasks(tasks, CategoryToday)
	if len(today) != 1 || today[0].ID != "b" {
		t.Fatalf("unexpected today view: %+v", today)
	}
	done := FilterTasks(tasks, CategoryDone)
	if len(done) != 2 || done[0].ID != "c" || done[1].ID != "d" {
		t.Fatalf("done view should include completed tasks of any category, got %+v", done)
	}

	counts := CountByView(tasks)
	if counts[CategoryInbox] != 2 || counts[CategoryToday] != 1 || counts[CategoryDone] != 2 {
		t.Fatalf("unexpected counts: %+v", counts)
	}
}

func TestFilterTasksHidesUncompletedDoneCategory(t *testing.T) {
	tasks := []Task{{ID: "a", Title: "a", Category: CategoryDone, CreatedAt: time.Now()}}
	for _, view := range Categories() {
		if got := FilterTasks(tasks, view); len(got) != 0 {
			t.Fatalf("view %s should be empty for an uncompleted done-category task, got %+v", view, got)
		}
	}
}

func TestPriorityNextCycles(t *testing.T) {
	p := PriorityNone
	seen := []Priority{}
	for i := 0; i < 4; i++ {
		p = p.Next()
		seen = append(seen, p)
	}
	want := []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityNone}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("priority cycle[%d] = %q, want %q", i, seen[i], want[i])
		}
	}
}
