package services

import (
	"context"
	"errors"
	"testing"

	"github.com/yourorg/todokeeper/internal/common"
	"github.com/yourorg/todokeeper/internal/server/models"
)

func strptr(s string) *string { return &s }

func TestTodoList_PaginationMath(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		pageSize   int
		total      int64
		wantPage   int
		wantSize   int
		wantPages  int
		wantOffset int
	}{
		{"defaults", 0, 0, 25, 1, 10, 3, 0},
		{"negative values", -3, -1, 25, 1, 10, 3, 0},
		{"second page", 2, 10, 25, 2, 10, 3, 10},
		{"exact fit", 2, 5, 10, 2, 5, 2, 5},
		{"empty collection", 1, 10, 0, 1, 10, 0, 0},
		{"custom page size", 3, 7, 20, 3, 7, 3, 14},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, _ := newSQLMockDB(t)
			repo := &fakeTodosRepo{countOut: tt.total, listOut: []*models.Todo{}}
			s := NewTodoService(db, &fakeRepoManager{t: repo})

			_, p, err := s.List(context.Background(), 1, tt.page, tt.pageSize)
			if err != nil {
				t.Fatalf("List error: %v", err)
			}
			if p.CurrentPage != tt.wantPage || p.PageSize != tt.wantSize {
				t.Fatalf("got page=%d size=%d, want page=%d size=%d", p.CurrentPage, p.PageSize, tt.wantPage, tt.wantSize)
			}
			if p.TotalPages != tt.wantPages || p.TotalItems != tt.total {
				t.Fatalf("got totalPages=%d totalItems=%d, want %d/%d", p.TotalPages, p.TotalItems, tt.wantPages, tt.total)
			}
			if repo.gotLimit != tt.wantSize || repo.gotOffset != tt.wantOffset {
				t.Fatalf("repo called with limit=%d offset=%d, want %d/%d", repo.gotLimit, repo.gotOffset, tt.wantSize, tt.wantOffset)
			}
		})
	}
}

func TestTodoList_CountError(t *testing.T) {
	db, _ := newSQLMockDB(t)
	repo := &fakeTodosRepo{countErr: errors.New("db down")}
	s := NewTodoService(db, &fakeRepoManager{t: repo})

	_, _, err := s.List(context.Background(), 1, 1, 10)
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestTodoGet_NotFoundPassthrough(t *testing.T) {
	db, _ := newSQLMockDB(t)
	repo := &fakeTodosRepo{getErr: common.ErrorNotFound}
	s := NewTodoService(db, &fakeRepoManager{t: repo})

	_, err := s.Get(context.Background(), 1, 42)
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want ErrorNotFound, got %v", err)
	}
}

func TestTodoCreate_DefaultsAndOwner(t *testing.T) {
	db, _ := newSQLMockDB(t)
	repo := &fakeTodosRepo{}
	s := NewTodoService(db, &fakeRepoManager{t: repo})

	todo, err := s.Create(context.Background(), 7, "  Buy milk  ", nil)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if todo.Status != models.StatusPending {
		t.Fatalf("status not defaulted: %q", todo.Status)
	}
	if todo.UserID != 7 {
		t.Fatalf("owner not forced: %d", todo.UserID)
	}
	if todo.Title != "Buy milk" {
		t.Fatalf("title not trimmed: %q", todo.Title)
	}
}

func TestTodoCreate_ExplicitStatus(t *testing.T) {
	db, _ := newSQLMockDB(t)
	s := NewTodoService(db, &fakeRepoManager{t: &fakeTodosRepo{}})

	todo, err := s.Create(context.Background(), 7, "Done already", strptr("completed"))
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if todo.Status != models.StatusCompleted {
		t.Fatalf("status not applied: %q", todo.Status)
	}
}

func TestTodoUpdate_PartialMerge(t *testing.T) {
	existing := &models.Todo{ID: 42, Title: "Old title", Status: models.StatusPending, UserID: 7}

	tests := []struct {
		name       string
		title      *string
		status     *string
		wantTitle  string
		wantStatus models.TodoStatus
	}{
		{"title only", strptr("New title"), nil, "New title", models.StatusPending},
		{"status only", nil, strptr("completed"), "Old title", models.StatusCompleted},
		{"both", strptr("New title"), strptr("completed"), "New title", models.StatusCompleted},
		{"neither", nil, nil, "Old title", models.StatusPending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, _ := newSQLMockDB(t)
			cp := *existing
			repo := &fakeTodosRepo{getOut: &cp}
			s := NewTodoService(db, &fakeRepoManager{t: repo})

			todo, err := s.Update(context.Background(), 7, 42, tt.title, tt.status)
			if err != nil {
				t.Fatalf("Update error: %v", err)
			}
			if todo.Title != tt.wantTitle || todo.Status != tt.wantStatus {
				t.Fatalf("got %q/%q, want %q/%q", todo.Title, todo.Status, tt.wantTitle, tt.wantStatus)
			}
		})
	}
}

func TestTodoUpdate_ForeignTodo(t *testing.T) {
	db, _ := newSQLMockDB(t)
	repo := &fakeTodosRepo{getErr: common.ErrorNotFound}
	s := NewTodoService(db, &fakeRepoManager{t: repo})

	_, err := s.Update(context.Background(), 8, 42, strptr("hijack"), nil)
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want ErrorNotFound, got %v", err)
	}
}

func TestTodoDelete_ErrorPassthrough(t *testing.T) {
	db, _ := newSQLMockDB(t)
	repo := &fakeTodosRepo{deleteErr: common.ErrorNotFound}
	s := NewTodoService(db, &fakeRepoManager{t: repo})

	if err := s.Delete(context.Background(), 1, 42); !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want ErrorNotFound, got %v", err)
	}
}
