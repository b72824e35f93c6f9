package service

import (
	"errors"
	"fmt"

	"github.com/passgen/passgen-go/internal/generator"
	"github.com/passgen/passgen-go/internal/model"
)

var ErrLengthTooLong = errors.New("password length exceeds the maximum")

// GeneratorService handles password generation business logic.
type GeneratorService struct {
	defaults  generator.Options
	maxLength int
	src       generator.Source
}

// NewGeneratorService creates a new GeneratorService. A maxLength of zero
// or less disables the length cap.
func NewGeneratorService(defaults generator.Options, maxLength int, src generator.Source) *GeneratorService {
	if src == nil {
		src = generator.DefaultSource()
	}
	return &GeneratorService{
		defaults:  defaults,
		maxLength: maxLength,
		src:       src,
	}
}

// Generate produces a password based on the given request.
func (s *GeneratorService) Generate(req model.GenerateRequest) (model.GenerateResponse, error) {
	cfg := generator.Resolve(s.defaults, generator.Overrides{
		Numbers:           req.Numbers,
		Letters:           req.Letters,
		SpecialCharacters: req.SpecialCharacters,
		Uppercase:         req.Uppercase,
		Length:            req.Length,
	})

	if s.maxLength > 0 && cfg.Length > s.maxLength {
		return model.GenerateResponse{}, fmt.Errorf("%w (%d)", ErrLengthTooLong, s.maxLength)
	}

	password, err := generator.Sample(cfg, s.src)
	if err != nil {
		return model.GenerateResponse{}, err
	}

	return model.GenerateResponse{
		Password: password,
		Length:   cfg.Length,
	}, nil
}

// Defaults returns the configuration requests are resolved against, with
// every class expanded to its characters.
func (s *GeneratorService) Defaults() model.DefaultsResponse {
	opts := generator.Resolve(s.defaults, generator.Overrides{}).Options()
	return model.DefaultsResponse{
		Numbers:           opts.Numbers,
		Letters:           opts.Letters,
		SpecialCharacters: opts.SpecialCharacters,
		Uppercase:         opts.Uppercase,
		Length:            opts.Length,
	}
}
