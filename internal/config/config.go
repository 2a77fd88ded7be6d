package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
)

type Config struct {
	AppPort string

	MySQLHost string
	MySQLPort string
	MySQLDB   string
	MySQLUser string
	MySQLPass string

	RedisAddr string
	RedisDB   int

	JWTSecret      string
	IssuerKey      string
	AccessTTLSecs  int
	RefreshTTLSecs int
	EvidenceDir    string
	IdempTTLSecs   int
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func getint(k string, d int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return d
}

func Load() *Config {
	c := &Config{
		AppPort:   getenv("APP_PORT", "8080"),
		MySQLHost: getenv("MYSQL_HOST", "mysql"),
		MySQLPort: getenv("MYSQL_PORT", "3306"),
		MySQLDB:   getenv("MYSQL_DB", "kpisuite"),
		MySQLUser: getenv("MYSQL_USER", "kpisuite"),
		MySQLPass: getenv("MYSQL_PASS", "kpisuite"),

		RedisAddr: getenv("REDIS_ADDR", "redis:6379"),
		RedisDB:   getint("REDIS_DB", 0),

		JWTSecret:      os.Getenv("JWT_SECRET"),
		IssuerKey:      os.Getenv("TOKEN_ISSUER_KEY"),
		AccessTTLSecs:  getint("ACCESS_TOKEN_TTL_SECONDS", 900),
		RefreshTTLSecs: getint("REFRESH_TOKEN_TTL_SECONDS", 7*24*3600),
		EvidenceDir:    getenv("EVIDENCE_DIR", "/var/lib/kpisuite/evidence"),
		IdempTTLSecs:   getint("IDEMPOTENCY_TTL_SECONDS", 300),
	}
	return c
}

func (c *Config) Validate() error {
	if c.MySQLHost == "" || c.MySQLPort == "" || c.MySQLDB == "" || c.MySQLUser == "" {
		return errors.New("missing MySQL config (MYSQL_HOST/PORT/DB/USER)")
	}
	// ensure port is valid
	if _, err := net.LookupPort("tcp", c.MySQLPort); err != nil {
		return fmt.Errorf("invalid MYSQL_PORT %q: %w", c.MySQLPort, err)
	}
	if c.AppPort == "" {
		return errors.New("missing APP_PORT")
	}
	if c.JWTSecret == "" {
		return errors.New("missing JWT_SECRET")
	}
	if c.IssuerKey == "" {
		return errors.New("missing TOKEN_ISSUER_KEY")
	}
	if c.AccessTTLSecs <= 0 || c.RefreshTTLSecs <= c.AccessTTLSecs {
		return errors.New("token TTLs must be positive with refresh longer than access")
	}
	return nil
}

func (c *Config) mysqlAddr() string { return net.JoinHostPort(c.MySQLHost, c.MySQLPort) }

func (c *Config) MySQLDSN() string {
	// multiStatements=true is handy for migrations; parseTime needed for DATETIME
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?multiStatements=true&parseTime=true&charset=utf8mb4,utf8",
		c.MySQLUser, c.MySQLPass, c.mysqlAddr(), c.MySQLDB)
}
