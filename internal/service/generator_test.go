package service

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/passgen/passgen-go/internal/generator"
	"github.com/passgen/passgen-go/internal/model"
)

func boolPtr(b bool) *bool { return &b }
func intPtr(n int) *int    { return &n }

func newTestGeneratorService() *GeneratorService {
	return NewGeneratorService(generator.DefaultOptions(), 128, generator.NewSource(1))
}

func TestGenerate_Defaults(t *testing.T) {
	svc := newTestGeneratorService()
	resp, err := svc.Generate(model.GenerateRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Length != 20 {
		t.Errorf("expected length 20, got %d", resp.Length)
	}
	if n := utf8.RuneCountInString(resp.Password); n != 20 {
		t.Errorf("expected password length 20, got %d", n)
	}
}

func TestGenerate_CustomOptions(t *testing.T) {
	svc := newTestGeneratorService()
	resp, err := svc.Generate(model.GenerateRequest{
		Numbers:           generator.Custom("79"),
		Letters:           generator.Disabled(),
		SpecialCharacters: generator.Disabled(),
		Uppercase:         boolPtr(false),
		Length:            intPtr(32),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Length != 32 {
		t.Errorf("expected length 32, got %d", resp.Length)
	}
	if strings.Trim(resp.Password, "79") != "" {
		t.Errorf("unexpected characters in password %q with only numbers=79", resp.Password)
	}
}

func TestGenerate_ZeroLength(t *testing.T) {
	svc := newTestGeneratorService()
	_, err := svc.Generate(model.GenerateRequest{Length: intPtr(0)})
	if !errors.Is(err, generator.ErrInvalidLength) {
		t.Fatalf("expected ErrInvalidLength, got %v", err)
	}
}

func TestGenerate_LengthTooLong(t *testing.T) {
	svc := newTestGeneratorService()
	_, err := svc.Generate(model.GenerateRequest{Length: intPtr(200)})
	if !errors.Is(err, ErrLengthTooLong) {
		t.Fatalf("expected ErrLengthTooLong, got %v", err)
	}
}

func TestGenerate_NoLengthCap(t *testing.T) {
	svc := NewGeneratorService(generator.DefaultOptions(), 0, nil)
	resp, err := svc.Generate(model.GenerateRequest{Length: intPtr(1000)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Length != 1000 {
		t.Errorf("expected length 1000, got %d", resp.Length)
	}
}

func TestGenerate_NoCharacterClasses(t *testing.T) {
	svc := newTestGeneratorService()
	_, err := svc.Generate(model.GenerateRequest{
		Numbers:           generator.Disabled(),
		Letters:           generator.Disabled(),
		SpecialCharacters: generator.Disabled(),
	})
	if !errors.Is(err, generator.ErrNoActiveCharacterClasses) {
		t.Fatalf("expected ErrNoActiveCharacterClasses, got %v", err)
	}
}

func TestDefaults(t *testing.T) {
	defaults := generator.Options{
		Numbers:   generator.Enabled(),
		Letters:   generator.Custom("xyz"),
		Uppercase: true,
		Length:    12,
	}
	svc := NewGeneratorService(defaults, 0, nil)

	got := svc.Defaults()
	if got.Numbers != generator.Custom("123456789") {
		t.Errorf("expected built-in numbers, got %+v", got.Numbers)
	}
	if got.Letters != generator.Custom("xyz") {
		t.Errorf("expected custom letters, got %+v", got.Letters)
	}
	if got.SpecialCharacters != generator.Disabled() {
		t.Errorf("expected disabled special characters, got %+v", got.SpecialCharacters)
	}
	if !got.Uppercase || got.Length != 12 {
		t.Errorf("expected uppercase true and length 12, got %v and %d", got.Uppercase, got.Length)
	}
}
