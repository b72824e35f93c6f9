package model

import "github.com/passgen/passgen-go/internal/generator"

// GenerateRequest represents a password generation request.
// Each class accepts false (off), true (default characters) or a string of
// characters; missing fields and nil pointers fall back to the server defaults.
type GenerateRequest struct {
	Numbers           generator.ClassSpec `json:"numbers,omitzero"`
	Letters           generator.ClassSpec `json:"letters,omitzero"`
	SpecialCharacters generator.ClassSpec `json:"specialCharacters,omitzero"`
	Uppercase         *bool               `json:"uppercase,omitempty"`
	Length            *int                `json:"length,omitempty"`
}

// GenerateResponse represents a password generation response.
type GenerateResponse struct {
	Password string `json:"password"`
	Length   int    `json:"length"`
}

// DefaultsResponse describes the defaults a request is resolved against.
// Enabled classes carry their characters, disabled ones are false.
type DefaultsResponse struct {
	Numbers           generator.ClassSpec `json:"numbers"`
	Letters           generator.ClassSpec `json:"letters"`
	SpecialCharacters generator.ClassSpec `json:"specialCharacters"`
	Uppercase         bool                `json:"uppercase"`
	Length            int                 `json:"length"`
}
