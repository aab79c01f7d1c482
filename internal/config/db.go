package config

// DB holds the database configuration settings.
type DB struct {
	Extras     string
	Host       string
	Port       int
	User       string
	Password   string
	Name       string // database name, or file path for sqlite
	GormEngine string `validate:"omitempty,oneof=sqlite mysql postgres"`
}
