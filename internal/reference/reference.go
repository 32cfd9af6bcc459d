package reference

import (
	"fmt"

	"github.com/pkoukk/tiktoken-go"
)

// Service wraps a tiktoken encoding, used as a baseline to compare trained
// models against a production tokenizer.
type Service struct {
	model *tiktoken.Tiktoken
}

// New creates a reference service for the named encoding, e.g. "cl100k_base".
func New(encoding string) (*Service, error) {
	tkm, err := tiktoken.GetEncoding(encoding)
	if err != nil {
		return nil, fmt.Errorf("initialize %s tokenizer: %w", encoding, err)
	}
	return &Service{model: tkm}, nil
}

// Encode converts text to token IDs under the reference encoding.
func (s *Service) Encode(text string) []int {
	return s.model.Encode(text, nil, nil)
}

// Decode converts reference token IDs back to text.
func (s *Service) Decode(ids []int) string {
	return s.model.Decode(ids)
}

// Count returns the number of reference tokens in text.
func (s *Service) Count(text string) int {
	return len(s.Encode(text))
}
