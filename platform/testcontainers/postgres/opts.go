package postgres

type Option func(*Config)

func WithImageName(image string) Option {
	return func(c *Config) {
		c.ImageName = image
	}
}

func WithDatabase(db, user, password string) Option {
	return func(c *Config) {
		c.Database = db
		c.Username = user
		c.Password = password
	}
}

// WithMigrations applies the goose migrations in dir after start.
func WithMigrations(dir string) Option {
	return func(c *Config) {
		c.MigrationsDir = dir
	}
}

func WithLogger(l Logger) Option {
	return func(c *Config) {
		c.Logger = l
	}
}
