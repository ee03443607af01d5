package config

import "testing"

func TestGetDSNPrefersURL(t *testing.T) {
	cfg := DatabaseConfig{
		URL:  "postgres://user:pass@db:5432/edupro",
		Host: "ignored",
	}

	if dsn := cfg.GetDSN(); dsn != "postgres://user:pass@db:5432/edupro" {
		t.Errorf("expected URL to win, got %q", dsn)
	}
}

func TestGetDSNAssemblesFields(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "edupro",
		Password: "secret",
		DBName:   "edupro",
		SSLMode:  "disable",
	}

	want := "host=localhost port=5432 user=edupro password=secret dbname=edupro sslmode=disable"
	if dsn := cfg.GetDSN(); dsn != want {
		t.Errorf("unexpected DSN:\n got %q\nwant %q", dsn, want)
	}
}
