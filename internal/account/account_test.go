package account

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"learnmaths/internal/question"
	"learnmaths/internal/store"
	"learnmaths/internal/testutil"
	"learnmaths/internal/user"
)

func newService(t *testing.T) *Service {
	t.Helper()
	s, err := store.OpenJSON(filepath.Join(t.TempDir(), "users.json"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	return NewService(s)
}

func TestRegisterThenLogin(t *testing.T) {
	ctx := testutil.Context(t, time.Second)
	svc := newService(t)
	rec, err := svc.Register(ctx, "  Alex ", "1234")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if rec.Username != "Alex" || rec.Points != 0 || len(rec.Progress) != len(user.StartingTopics) {
		t.Fatalf("unexpected record %+v", rec)
	}
	if _, err := svc.Register(ctx, "Alex", "1234"); !errors.Is(err, ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
	if _, err := svc.Register(ctx, "Alex", "9999"); err != nil {
		t.Fatalf("same name with another code should register: %v", err)
	}
	got, err := svc.Login(ctx, "Alex", "1234")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if got.Key() != "Alex_1234" {
		t.Fatalf("unexpected key %q", got.Key())
	}
}

func TestLoginErrors(t *testing.T) {
	ctx := testutil.Context(t, time.Second)
	svc := newService(t)
	tests := []struct {
		name string
		user string
		code string
		want error
	}{
		{name: "unknown", user: "Sam", code: "0000", want: ErrUnknownUser},
		{name: "blank", user: " ", code: "0000", want: user.ErrMissingCredentials},
		{name: "short code", user: "Sam", code: "000", want: user.ErrInvalidCode},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if _, err := svc.Login(ctx, test.user, test.code); !errors.Is(err, test.want) {
				t.Fatalf("expected %v, got %v", test.want, err)
			}
		})
	}
}

func TestSavePersistsProgress(t *testing.T) {
	ctx := testutil.Context(t, time.Second)
	svc := newService(t)
	rec, err := svc.Register(ctx, "Alex", "1234")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	rec.Points = 100
	rec.Progress[question.TopicAddition] = 1
	if err := svc.Save(ctx, rec); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := svc.Login(ctx, "Alex", "1234")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if got.Points != 100 || got.Progress[question.TopicAddition] != 1 {
		t.Fatalf("unexpected record %+v", got)
	}
}

func TestWelcome(t *testing.T) {
	if got := Welcome("Alex"); got != "Welcome to the team, Alex! Let's start learning! 🎉" {
		t.Fatalf("unexpected welcome %q", got)
	}
}
