package main

import (
	"os"
	"testing"

	"github.com/rs/zerolog"

	"github.com/epsalud/eps-api/internal/config"
)

func TestResolveTokenSecret_Configured(t *testing.T) {
	logger := zerolog.New(os.Stdout)
	cfg := &config.Config{TokenSecret: "configured-secret"}

	secret, err := resolveTokenSecret(cfg, logger)
	if err != nil {
		t.Fatalf("resolveTokenSecret: %v", err)
	}
	if string(secret) != "configured-secret" {
		t.Errorf("secret: got %q", secret)
	}
}

func TestResolveTokenSecret_Generated(t *testing.T) {
	logger := zerolog.New(os.Stdout)

	s1, err := resolveTokenSecret(&config.Config{}, logger)
	if err != nil {
		t.Fatalf("resolveTokenSecret: %v", err)
	}
	s2, err := resolveTokenSecret(&config.Config{}, logger)
	if err != nil {
		t.Fatalf("resolveTokenSecret: %v", err)
	}
	if len(s1) == 0 {
		t.Fatal("expected non-empty generated secret")
	}
	if string(s1) == string(s2) {
		t.Error("generated secrets should differ per run")
	}
}
