package reservation

import "context"

// Service manages laboratory reservations. Equipment attached to a
// reservation lives in the labs service and is resolved over HTTP on read.
type Service interface {
	CreateReserva(ctx context.Context, req *CreateReservaReq) (*ReservaResp, error)
	ListReservas(ctx context.Context, req *ListReservasReq) ([]*ReservaResp, error)
	GetReserva(ctx context.Context, id int64) (*ReservaResp, error)
	UpdateReserva(ctx context.Context, id int64, req *UpdateReservaReq) (*ReservaResp, error)
	DeleteReserva(ctx context.Context, id int64) error
}
