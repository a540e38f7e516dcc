package registry

import (
	"testing"

	"github.com/vovakirdan/steelwall/internal/core"
)

type stubScene struct{ id string }

func (s stubScene) ID() string             { return s.id }
func (s stubScene) Title() string          { return "Stub " + s.id }
func (s stubScene) Enter(Host)             {}
func (s stubScene) Step(core.InputFrame)   {}
func (s stubScene) Render(*core.Screen)    {}
func (s stubScene) State() core.SceneState { return core.SceneState{} }
func (s stubScene) Exit()                  {}

func TestRegisterCreate(t *testing.T) {
	Register("registry test a", func() Scene { return stubScene{id: "registry test a"} })

	if !Exists("registry test a") {
		t.Fatal("registered scene not found")
	}
	s, err := Create("registry test a")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if s.ID() != "registry test a" {
		t.Errorf("ID = %q", s.ID())
	}

	found := false
	for _, info := range List() {
		if info.ID == "registry test a" && info.Title == "Stub registry test a" {
			found = true
		}
	}
	if !found {
		t.Error("List did not report the scene with its title")
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no such scene"); err == nil {
		t.Error("expected an error for an unknown scene")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("registry test b", func() Scene { return stubScene{id: "registry test b"} })
	defer func() {
		if recover() == nil {
			t.Error("duplicate registration should panic")
		}
	}()
	Register("registry test b", func() Scene { return stubScene{id: "registry test b"} })
}
