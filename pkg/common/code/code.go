package code

import (
	"fmt"
	"net/http"
)

// Error is a service error carrying a stable business code, the HTTP status
// it maps to and the client-facing message. The wrapped cause is logged but
// never serialized.
type Error struct {
	Biz    int
	Status int
	Msg    string
	cause  error
}

func New(biz int, status int, msg string) *Error {
	return &Error{Biz: biz, Status: status, Msg: msg}
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%d] %s: %v", e.Biz, e.Msg, e.cause)
	}
	return fmt.Sprintf("[%d] %s", e.Biz, e.Msg)
}

func (e *Error) String() string {
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.cause
}

// WithErr returns a copy carrying err as cause. The receiver is never
// mutated, the sentinel values below stay shared.
func (e *Error) WithErr(err error) *Error {
	n := *e
	n.cause = err
	return &n
}

// WithMsg returns a copy with a more specific client-facing message.
func (e *Error) WithMsg(msg string) *Error {
	n := *e
	n.Msg = msg
	return &n
}

// Is makes errors.Is match any derived copy against its sentinel.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Biz == t.Biz
}

var (
	ParamErr      = New(40001, http.StatusBadRequest, "parámetros inválidos")
	AuthFailed    = New(40101, http.StatusUnauthorized, "Correo o contraseña incorrectos")
	UnLogin       = New(40102, http.StatusUnauthorized, "No has iniciado sesión")
	InvalidToken  = New(40103, http.StatusUnauthorized, "Token inválido")
	Forbidden     = New(40301, http.StatusForbidden, "acceso denegado")
	NotFound      = New(40401, http.StatusNotFound, "recurso no encontrado")
	Conflict      = New(40901, http.StatusConflict, "conflicto con el estado actual")
	CreateDataErr = New(50001, http.StatusInternalServerError, "error al crear el registro")
	QueryDataErr  = New(50002, http.StatusInternalServerError, "error al consultar datos")
	UpdateDataErr = New(50003, http.StatusInternalServerError, "error al actualizar el registro")
	DeleteDataErr = New(50004, http.StatusInternalServerError, "error al eliminar el registro")
	InternalErr   = New(50000, http.StatusInternalServerError, "error interno")
)
