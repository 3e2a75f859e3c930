package model

type Laboratorio struct {
	ID          int64  `gorm:"column:IdLaboratorio;primaryKey;autoIncrement" json:"IdLaboratorio"`
	Nombre      string `gorm:"column:Nombre;type:varchar(100);not null;uniqueIndex" json:"Nombre"`
	Descripcion string `gorm:"column:Descripción;type:varchar(150);not null" json:"Descripcion"`
}

func (*Laboratorio) TableName() string {
	return "Laboratorios"
}

type EquipoEstado string

const (
	Operativo     EquipoEstado = "Operativo"
	Mantenimiento EquipoEstado = "Mantenimiento"
	Danado        EquipoEstado = "Dañado"
)

func (e EquipoEstado) Valid() bool {
	switch e {
	case Operativo, Mantenimiento, Danado:
		return true
	}
	return false
}

type Equipo struct {
	ID            int64        `gorm:"column:IdEquipo;primaryKey;autoIncrement" json:"IdEquipo"`
	Nombre        string       `gorm:"column:Nombre;type:varchar(100);not null;uniqueIndex" json:"Nombre"`
	Modelo        string       `gorm:"column:Modelo;type:varchar(150);not null" json:"Modelo"`
	Estado        EquipoEstado `gorm:"column:Estado;type:varchar(20);not null" json:"Estado"`
	IdLaboratorio int64        `gorm:"column:IdLaboratorio;not null;index" json:"IdLaboratorio"`

	Laboratorio *Laboratorio `gorm:"foreignKey:IdLaboratorio;references:ID" json:"-"`
}

func (*Equipo) TableName() string {
	return "Equipos"
}
