package config

import "time"

type Config struct {
	Web      Web
	DB       DB
	Auth     Auth
	Cors     Cors
	Catalog  Catalog
	Checkout Checkout
	Rate     Rate
}

type Web struct {
	Address         string        `conf:"default:0.0.0.0:8000"`
	ReadTimeout     time.Duration `conf:"default:5s"`
	WriteTimeout    time.Duration `conf:"default:10s"`
	IdleTimeout     time.Duration `conf:"default:120s"`
	ShutdownTimeout time.Duration `conf:"default:20s"`
}

type DB struct {
	User         string `conf:"default:postgres"`
	Password     string `conf:"default:postgres,mask"`
	Host         string `conf:"default:localhost:5432"`
	Name         string `conf:"default:harmoni"`
	MaxIdleConns int    `conf:"default:2"`
	MaxOpenConns int    `conf:"default:0"`
	DisableTLS   bool   `conf:"default:true"`
}

type Auth struct {
	// An empty secret makes the server generate a random one at startup,
	// which invalidates every token on restart.
	JWTSecret     string        `conf:"mask"`
	TokenTimeout  time.Duration `conf:"default:24h"`
	SessionTime   time.Duration `conf:"default:24h"`
	AdminName     string        `conf:"default:Super Admin"`
	AdminEmail    string        `conf:"default:admin@harmoni.com"`
	AdminPassword string        `conf:"default:admin123,mask"`
}

type Cors struct {
	Origin string
}

type Catalog struct {
	// StrictNotFound reports mutations on unknown ids as errors instead of
	// ignoring them.
	StrictNotFound bool `conf:"default:true"`
}

type Checkout struct {
	ClearCart bool `conf:"default:true"`
}

type Rate struct {
	LoginBurst    int           `conf:"default:5"`
	LoginInterval time.Duration `conf:"default:12s"`
	Expiry        time.Duration `conf:"default:30m"`
}
