package config

type Database struct {
	Host     string `mapstructure:"DATABASE_HOST" default:"localhost"`
	Port     int    `mapstructure:"DATABASE_PORT" default:"5432"`
	Name     string `mapstructure:"DATABASE_NAME" default:"labplatform"`
	User     string `mapstructure:"DATABASE_USER" default:"postgres"`
	Password string `mapstructure:"DATABASE_PASSWORD" default:"labplatform"`
	SSLMode  string `mapstructure:"DATABASE_SSLMODE" default:"disable"`
}

type Server struct {
	Platform     string `mapstructure:"PLATFORM" default:"labplatform"`
	Service      string `mapstructure:"SERVICE" default:"api"`
	AuthPort     int    `mapstructure:"AUTH_PORT" default:"3000"`
	LabsPort     int    `mapstructure:"LABS_PORT" default:"8002"`
	ReservasPort int    `mapstructure:"RESERVAS_PORT" default:"8003"`
	Env          string `mapstructure:"ENV" default:"dev"`
}

type Auth struct {
	JWTSecret    string `mapstructure:"JWT_SECRET" default:"supersecret"`
	TokenTTLDays int    `mapstructure:"TOKEN_TTL_DAYS" default:"15"`
	BcryptCost   int    `mapstructure:"BCRYPT_COST" default:"10"`
	// Bootstrap credentials used by `migrate --seed-admin`.
	SeedCorreo     string `mapstructure:"SEED_ADMIN_CORREO" default:"test@example.com"`
	SeedContrasena string `mapstructure:"SEED_ADMIN_CONTRASENA" default:"123456"`
}

// Labs holds the address the reservas service uses to resolve equipment.
type Labs struct {
	Addr string `mapstructure:"LABS_ADDR" default:"http://localhost:8002"`
}

type Log struct {
	LogPath  string `mapstructure:"LOG_PATH" default:"./info.log"`
	LogLevel string `mapstructure:"LOG_LEVEL" default:"info"`
}
