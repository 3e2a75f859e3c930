package model

type UserTipo string

const (
	Administrador UserTipo = "ADMINISTRADOR"
	Profesor      UserTipo = "PROFESOR"
	Estudiante    UserTipo = "ESTUDIANTE"
)

func (t UserTipo) Valid() bool {
	switch t {
	case Administrador, Profesor, Estudiante:
		return true
	}
	return false
}

// Usuario keeps the original Spanish column names so the schema stays
// compatible with existing deployments. The password hash is nullable and
// never serialized.
type Usuario struct {
	ID         int64    `gorm:"column:Id;primaryKey;autoIncrement" json:"Id"`
	Nombre     string   `gorm:"column:Nombre;type:varchar(100);not null" json:"Nombre"`
	Correo     string   `gorm:"column:Correo;type:varchar(150);not null;uniqueIndex" json:"Correo"`
	Tipo       UserTipo `gorm:"column:Tipo;type:varchar(20);not null" json:"Tipo"`
	Contrasena *string  `gorm:"column:Contraseña;type:text" json:"-"`
}

func (*Usuario) TableName() string {
	return "Usuarios"
}
