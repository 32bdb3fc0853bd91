package publishing

import (
	"errors"
	"fmt"
)

var (
	ErrListingNotFound     = errors.New("app não encontrado")
	ErrInvalidFile         = errors.New("arquivo inválido")
	ErrFileTooLarge        = errors.New("arquivo excede o tamanho máximo")
	ErrMissingRequiredData = errors.New("dados obrigatórios ausentes")
	ErrNotOwner            = errors.New("app pertence a outro desenvolvedor")
)

// ListingError carrega o código de API associado à falha
type ListingError struct {
	Err     error
	Code    string
	Details string
}

func (e *ListingError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ListingError) Unwrap() error {
	return e.Err
}

func NewListingError(baseErr error, code string, details string) *ListingError {
	return &ListingError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}
