package registry

import (
	"context"
	"testing"
)

type stubFrontend struct {
	id  string
	ran bool
}

func (s *stubFrontend) ID() string    { return s.id }
func (s *stubFrontend) Title() string { return "Stub " + s.id }
func (s *stubFrontend) Run(ctx context.Context, opts Options) error {
	s.ran = true
	return ctx.Err()
}

func TestRegisterAndCreate(t *testing.T) {
	Register("stub-a", func() Frontend { return &stubFrontend{id: "stub-a"} })

	if !Exists("stub-a") {
		t.Fatal("stub-a should exist after Register")
	}

	f, err := Create("stub-a")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if f.ID() != "stub-a" {
		t.Errorf("ID() = %q, expected stub-a", f.ID())
	}
	if err := f.Run(context.Background(), Options{}); err != nil {
		t.Errorf("Run() = %v", err)
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("does-not-exist"); err == nil {
		t.Error("Create() should fail for an unknown frontend")
	}
	if Exists("does-not-exist") {
		t.Error("Exists() should be false for an unknown frontend")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub-dup", func() Frontend { return &stubFrontend{id: "stub-dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("stub-dup", func() Frontend { return &stubFrontend{id: "stub-dup"} })
}

func TestListSorted(t *testing.T) {
	Register("stub-z", func() Frontend { return &stubFrontend{id: "stub-z"} })
	Register("stub-m", func() Frontend { return &stubFrontend{id: "stub-m"} })

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID > list[i].ID {
			t.Fatalf("List() not sorted: %v", list)
		}
	}

	found := false
	for _, info := range list {
		if info.ID == "stub-m" && info.Title == "Stub stub-m" {
			found = true
		}
	}
	if !found {
		t.Errorf("List() missing stub-m: %v", list)
	}
}

func TestLoggerOrDiscard(t *testing.T) {
	if (Options{}).LoggerOrDiscard() == nil {
		t.Error("LoggerOrDiscard should never return nil")
	}
}
