package config

import "testing"

// TestLoad_Defaults tests that a bare environment yields the documented
// defaults.
func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"EXPBUDDY_ADDR", "EXPBUDDY_ENV", "EXPBUDDY_DB", "EXPBUDDY_RESEND_KEY",
		"EXPBUDDY_EMAIL_FROM", "EXPBUDDY_REPLY_TO",
		"EXPBUDDY_DEMO_EMAIL", "EXPBUDDY_DEMO_NAME", "EXPBUDDY_DEMO_PASSWORD",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Addr != ":8080" {
		t.Errorf("Addr = %q", cfg.Addr)
	}
	if cfg.Env != "development" {
		t.Errorf("Env = %q", cfg.Env)
	}
	if cfg.DBPath != "" {
		t.Errorf("DBPath = %q, want in-memory default", cfg.DBPath)
	}
	if cfg.DemoEmail != "demo@experiencebuddy.app" {
		t.Errorf("DemoEmail = %q", cfg.DemoEmail)
	}
}

// TestLoad_Overrides tests that environment values win over defaults.
func TestLoad_Overrides(t *testing.T) {
	t.Setenv("EXPBUDDY_ADDR", ":9999")
	t.Setenv("EXPBUDDY_ENV", "production")
	t.Setenv("EXPBUDDY_DB", "buddy.db")
	t.Setenv("EXPBUDDY_RESEND_KEY", "re_test_key")
	t.Setenv("EXPBUDDY_DEMO_PASSWORD", "s3cret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Addr != ":9999" || cfg.Env != "production" || cfg.DBPath != "buddy.db" || cfg.ResendKey != "re_test_key" {
		t.Errorf("overrides not applied: %+v", cfg)
	}
}

// TestLoad_RejectsBadEnv tests that an unknown EXPBUDDY_ENV fails validation.
func TestLoad_RejectsBadEnv(t *testing.T) {
	t.Setenv("EXPBUDDY_ENV", "staging")
	if _, err := Load(); err == nil {
		t.Fatal("expected an error for EXPBUDDY_ENV=staging")
	}
}

// TestLoad_RejectsBadEmailFrom tests the from-address sanity check.
func TestLoad_RejectsBadEmailFrom(t *testing.T) {
	t.Setenv("EXPBUDDY_ENV", "development")
	t.Setenv("EXPBUDDY_EMAIL_FROM", "not-an-address")
	if _, err := Load(); err == nil {
		t.Fatal("expected an error for a from value without an address")
	}
}
