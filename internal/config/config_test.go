package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SESSION_SECRET", "test-secret")
	t.Setenv("USERS_DB_PATH", "")
	t.Setenv("UNIQUE_SERIALS", "")

	cfg := Load()

	if cfg.UsersDBPath != "database/users.db" ||
		cfg.ModelsDBPath != "database/models.db" ||
		cfg.ShoeDBPath != "database/shoes.db" {
		t.Fatalf("unexpected store paths: %+v", cfg)
	}
	if cfg.ServerPort != "8080" || cfg.AdminUsername != "admin" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.UniqueSerials {
		t.Fatal("UniqueSerials must default to off")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SESSION_SECRET", "test-secret")
	t.Setenv("SHOE_DB_PATH", "/tmp/custom/shoes.db")
	t.Setenv("UNIQUE_SERIALS", "true")
	t.Setenv("LOGIN_RATE_RPS", "2.5")
	t.Setenv("LOGIN_RATE_BURST", "nonsense") // мусор → дефолт

	cfg := Load()

	if cfg.ShoeDBPath != "/tmp/custom/shoes.db" {
		t.Errorf("ShoeDBPath = %q", cfg.ShoeDBPath)
	}
	if !cfg.UniqueSerials {
		t.Error("UNIQUE_SERIALS=true not applied")
	}
	if cfg.LoginRateRPS != 2.5 {
		t.Errorf("LoginRateRPS = %v", cfg.LoginRateRPS)
	}
	if cfg.LoginRateBurst != 10 {
		t.Errorf("LoginRateBurst = %v, want default 10", cfg.LoginRateBurst)
	}
}
