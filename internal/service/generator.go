package service

import (
	"errors"

	"github.com/passgen/passgen-go/internal/crypto"
	"github.com/passgen/passgen-go/internal/model"
)

// maxLength caps the length served over the API. The generator itself has
// no upper bound; this is request policy.
const maxLength = 128

var ErrLengthTooLong = errors.New("password length must be at most 128")

// GeneratorService handles password generation business logic.
type GeneratorService struct{}

// NewGeneratorService creates a new GeneratorService.
func NewGeneratorService() *GeneratorService {
	return &GeneratorService{}
}

// Generate produces a password based on the given request.
func (s *GeneratorService) Generate(req model.GenerateRequest) (model.GenerateResponse, error) {
	opts := crypto.Options{
		Length:           req.Length,
		Lowercase:        boolOrDefault(req.Lowercase, true),
		Uppercase:        boolOrDefault(req.Uppercase, true),
		Digits:           boolOrDefault(req.Digits, true),
		Symbols:          boolOrDefault(req.Symbols, true),
		ExcludeAmbiguous: req.ExcludeAmbiguous,
	}

	if opts.Length == 0 {
		opts.Length = 16
	}
	if opts.Length > maxLength {
		return model.GenerateResponse{}, ErrLengthTooLong
	}

	password, err := crypto.Generate(opts)
	if err != nil {
		return model.GenerateResponse{}, err
	}

	return model.GenerateResponse{
		Password: password,
		Length:   len(password),
	}, nil
}

// Charsets returns the reference alphabets and the ambiguous set for
// display use.
func (s *GeneratorService) Charsets() model.CharsetsResponse {
	categories := make([]model.CategoryCharset, 0, len(crypto.Categories()))
	for _, c := range crypto.Categories() {
		categories = append(categories, model.CategoryCharset{
			Name:     c.String(),
			Alphabet: crypto.Alphabet(c),
		})
	}

	return model.CharsetsResponse{
		Categories: categories,
		Ambiguous:  crypto.AmbiguousChars,
	}
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}
