package main

import (
	"testing"
)

func TestParseRoleFlags(t *testing.T) {
	t.Parallel()

	opts, err := parseRoleFlags("grant-admin", []string{"--user-id", "u1"})
	if err != nil {
		t.Fatalf("parseRoleFlags: %v", err)
	}
	if opts.UserID != "u1" {
		t.Fatalf("UserID = %q, want u1", opts.UserID)
	}

	opts, err = parseRoleFlags("grant-admin", []string{"--email", " admin@academy.test "})
	if err != nil {
		t.Fatalf("parseRoleFlags: %v", err)
	}
	if opts.Email != "admin@academy.test" {
		t.Fatalf("Email = %q", opts.Email)
	}
}

func TestParseRoleFlagsRequiresExactlyOneTarget(t *testing.T) {
	t.Parallel()

	if _, err := parseRoleFlags("revoke-admin", nil); err == nil {
		t.Fatal("expected error when neither target is set")
	}
	if _, err := parseRoleFlags("revoke-admin", []string{"--user-id", "u1", "--email", "a@b.c"}); err == nil {
		t.Fatal("expected error when both targets are set")
	}
}

func TestParseCreateAccountFlagsRequiresEmail(t *testing.T) {
	t.Parallel()

	if _, err := parseCreateAccountFlags([]string{"--password", "secret-pass"}); err == nil {
		t.Fatal("expected error when email is missing")
	}
}

func TestParseDBResetFlagsDefaults(t *testing.T) {
	t.Parallel()

	opts, err := parseDBResetFlags(nil)
	if err != nil {
		t.Fatalf("parseDBResetFlags: %v", err)
	}
	if !opts.Seed {
		t.Fatal("Seed should default to true")
	}
	if opts.Yes {
		t.Fatal("Yes should default to false")
	}
	if opts.Timeout != defaultMigrationTimeout {
		t.Fatalf("Timeout = %v, want %v", opts.Timeout, defaultMigrationTimeout)
	}

	if _, err = parseDBSeedFlags([]string{"--timeout", "0s"}); err == nil {
		t.Fatal("expected error for non-positive timeout")
	}
}

func TestIsLikelyRemoteHost(t *testing.T) {
	t.Parallel()

	local := []string{"", "localhost", "127.0.0.1", "::1", "db.local", "  LOCALHOST  "}
	for _, h := range local {
		if isLikelyRemoteHost(h) {
			t.Errorf("isLikelyRemoteHost(%q) = true, want false", h)
		}
	}

	remote := []string{"db.example.com", "10.0.0.5", "academy-db"}
	for _, h := range remote {
		if !isLikelyRemoteHost(h) {
			t.Errorf("isLikelyRemoteHost(%q) = false, want true", h)
		}
	}
}

func TestCommandsHaveDescriptions(t *testing.T) {
	t.Parallel()

	for name, cmd := range commands() {
		if cmd.run == nil {
			t.Fatalf("command %q has no run function", name)
		}
		if cmd.description == "" {
			t.Fatalf("command %q has no description", name)
		}
		if cmd.name != name {
			t.Fatalf("command key %q does not match name %q", name, cmd.name)
		}
	}
}
