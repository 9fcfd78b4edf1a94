package apperrors

import (
	"errors"
	"fmt"
)

// Erros sentinela compartilhados entre serviços e handlers.
var (
	ErrAPIKeyAusente  = errors.New("chave da API de places não configurada")
	ErrSemResultados  = errors.New("a busca não retornou resultados")
	ErrNaoAutenticado = errors.New("usuário não autenticado")
	ErrNaoEncontrado  = errors.New("registro não encontrado")
)

// ErrUpstream embrulha uma falha da API externa de places.
type ErrUpstream struct {
	Status int
	Msg    string
}

func (e *ErrUpstream) Error() string {
	if e.Msg != "" {
		return fmt.Sprintf("erro da API de places (status %d): %s", e.Status, e.Msg)
	}
	return fmt.Sprintf("erro da API de places (status %d)", e.Status)
}

func NewUpstream(status int, msg string) error {
	return &ErrUpstream{Status: status, Msg: msg}
}
