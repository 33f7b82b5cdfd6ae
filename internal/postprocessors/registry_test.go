package postprocessors

import (
	"context"
	"errors"
	"testing"

	"github.com/open-technology-foundation/deltags/internal/core/domain"
)

// registryMockProcessor is a simple mock for testing registry functionality.
type registryMockProcessor struct {
	name string
}

func (m *registryMockProcessor) Name() string { return m.name }
func (m *registryMockProcessor) Process(_ context.Context, doc string) (string, error) {
	return doc, nil
}

func TestNewRegistry(t *testing.T) {
	r := NewRegistry()
	if r == nil {
		t.Fatal("NewRegistry returned nil")
	}
	if len(r.processors) != 0 {
		t.Errorf("expected empty registry, got %d processors", len(r.processors))
	}
}

func TestRegistry_Register(t *testing.T) {
	r := NewRegistry()

	r.Register(&registryMockProcessor{name: "test"})

	if !r.Has("test") {
		t.Error("expected 'test' to be registered")
	}
}

func TestRegistry_Get_Success(t *testing.T) {
	r := NewRegistry()
	r.Register(&registryMockProcessor{name: "test"})

	p, err := r.Get("test")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if p.Name() != "test" {
		t.Errorf("expected name 'test', got %q", p.Name())
	}
}

func TestRegistry_Get_UnknownProcessor(t *testing.T) {
	r := NewRegistry()

	_, err := r.Get("unknown")
	if err == nil {
		t.Fatal("expected error for unknown processor")
	}
	if !errors.Is(err, domain.ErrUnknownProcessor) {
		t.Errorf("expected ErrUnknownProcessor, got %v", err)
	}
}

func TestRegistry_Has(t *testing.T) {
	r := NewRegistry()

	if r.Has("nonexistent") {
		t.Error("expected Has to return false for nonexistent processor")
	}

	r.Register(&registryMockProcessor{name: "exists"})

	if !r.Has("exists") {
		t.Error("expected Has to return true for registered processor")
	}
}

func TestRegistry_Names(t *testing.T) {
	r := NewRegistry()

	names := r.Names()
	if len(names) != 0 {
		t.Errorf("expected 0 names, got %d", len(names))
	}

	r.Register(&registryMockProcessor{name: "beta"})
	r.Register(&registryMockProcessor{name: "alpha"})

	names = r.Names()
	if len(names) != 2 {
		t.Fatalf("expected 2 names, got %d", len(names))
	}
	if names[0] != "alpha" || names[1] != "beta" {
		t.Errorf("expected sorted names [alpha beta], got %v", names)
	}
}

func TestRegistry_Pipeline(t *testing.T) {
	r := NewRegistry()
	r.Register(&registryMockProcessor{name: "a"})
	r.Register(&registryMockProcessor{name: "b"})

	p, err := r.Pipeline("a", "b")
	if err != nil {
		t.Fatalf("Pipeline failed: %v", err)
	}

	out, err := p.Process(context.Background(), "doc")
	if err != nil {
		t.Fatalf("Process failed: %v", err)
	}
	if out != "doc" {
		t.Errorf("expected 'doc', got %q", out)
	}
}

func TestRegistry_Pipeline_UnknownProcessor(t *testing.T) {
	r := NewRegistry()

	_, err := r.Pipeline("missing")
	if !errors.Is(err, domain.ErrUnknownProcessor) {
		t.Errorf("expected ErrUnknownProcessor, got %v", err)
	}
}

func TestRegisterDefaults(t *testing.T) {
	r := NewRegistry()
	RegisterDefaults(r)

	if !r.Has("sanitize") {
		t.Error("expected 'sanitize' to be registered after RegisterDefaults")
	}
}
