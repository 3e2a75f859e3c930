package model

import (
	"time"

	"gorm.io/datatypes"
)

type ReservaStatus string

const (
	ReservaPending   ReservaStatus = "pending"
	ReservaConfirmed ReservaStatus = "confirmed"
	ReservaCancelled ReservaStatus = "cancelled"
	ReservaCompleted ReservaStatus = "completed"
)

func (s ReservaStatus) Valid() bool {
	switch s {
	case ReservaPending, ReservaConfirmed, ReservaCancelled, ReservaCompleted:
		return true
	}
	return false
}

// Reserva blocks a laboratory for a time window. Equipos holds the ids of
// the equipment attached to the reservation; the records themselves live in
// the labs service.
type Reserva struct {
	ID            int64                      `gorm:"column:Id;primaryKey;autoIncrement" json:"Id"`
	FechaCreacion time.Time                  `gorm:"column:FechaCreacion;autoCreateTime" json:"FechaCreacion"`
	FechaInicio   time.Time                  `gorm:"column:FechaInicio;not null" json:"FechaInicio"`
	FechaFin      time.Time                  `gorm:"column:FechaFin;not null" json:"FechaFin"`
	IdUsuario     int64                      `gorm:"column:IdUsuario;not null" json:"IdUsuario"`
	IdUbicacion   int64                      `gorm:"column:IdUbicacion;not null;index" json:"IdUbicacion"`
	Status        ReservaStatus              `gorm:"column:Status;type:varchar(20);not null;default:pending" json:"Status"`
	Equipos       datatypes.JSONSlice[int64] `gorm:"column:Equipos" json:"Equipos"`
}

func (*Reserva) TableName() string {
	return "Reservas"
}
