package domain

import (
	"errors"
	"fmt"
)

// UnauthenticatedError: no usable session on the request.
type UnauthenticatedError struct {
	Err error
}

func (e UnauthenticatedError) Error() string { return "não autenticado" }
func (e UnauthenticatedError) Unwrap() error { return e.Err }

// ForbiddenError: the caller is authenticated but lacks the admin role.
type ForbiddenError struct {
	Role string
}

func (e ForbiddenError) Error() string {
	if e.Role == "" {
		return "acesso negado"
	}
	return fmt.Sprintf("acesso negado para role %q", e.Role)
}

// InvalidTableError: requested table is outside the allow-list.
type InvalidTableError struct {
	Table string
}

func (e InvalidTableError) Error() string {
	return fmt.Sprintf("tabela não permitida: %q", e.Table)
}

// UnknownActionError: action string not recognized by the dispatcher.
type UnknownActionError struct {
	Action string
}

func (e UnknownActionError) Error() string {
	return fmt.Sprintf("ação desconhecida: %q", e.Action)
}

// NotFoundError: single-row fetch matched no rows.
type NotFoundError struct {
	Resource string
	Err      error
}

func (e NotFoundError) Error() string {
	if e.Resource == "" {
		return "registro não encontrado"
	}
	return fmt.Sprintf("%s não encontrado", e.Resource)
}

func (e NotFoundError) Unwrap() error { return e.Err }

// ValidationError: malformed request payload (bad filter operator, missing id, ...).
type ValidationError struct {
	Field string
	Msg   string
	Err   error
}

func (e ValidationError) Error() string {
	switch {
	case e.Msg != "" && e.Field != "":
		return fmt.Sprintf("%s: %s", e.Field, e.Msg)
	case e.Msg != "":
		return e.Msg
	case e.Field != "":
		return fmt.Sprintf("campo inválido: %s", e.Field)
	default:
		return "payload inválido"
	}
}

func (e ValidationError) Unwrap() error { return e.Err }

// QueryError wraps the backing store's error message verbatim.
type QueryError struct {
	Op  string
	Err error
}

func (e QueryError) Error() string {
	if e.Err == nil {
		return "falha na consulta"
	}
	return e.Err.Error()
}

func (e QueryError) Unwrap() error { return e.Err }

// UpstreamError: external API unreachable or non-2xx.
type UpstreamError struct {
	Service string
	Status  int
	Err     error
}

func (e UpstreamError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s respondeu status %d", e.Service, e.Status)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s indisponível: %v", e.Service, e.Err)
	}
	return fmt.Sprintf("%s indisponível", e.Service)
}

func (e UpstreamError) Unwrap() error { return e.Err }

func IsUnauthenticated(err error) bool {
	var target UnauthenticatedError
	return errors.As(err, &target)
}

func IsForbidden(err error) bool {
	var target ForbiddenError
	return errors.As(err, &target)
}

func IsInvalidTable(err error) bool {
	var target InvalidTableError
	return errors.As(err, &target)
}

func IsUnknownAction(err error) bool {
	var target UnknownActionError
	return errors.As(err, &target)
}

func IsNotFound(err error) bool {
	var target NotFoundError
	return errors.As(err, &target)
}

func IsValidation(err error) bool {
	var target ValidationError
	return errors.As(err, &target)
}

func IsQuery(err error) bool {
	var target QueryError
	return errors.As(err, &target)
}

func IsUpstream(err error) bool {
	var target UpstreamError
	return errors.As(err, &target)
}
