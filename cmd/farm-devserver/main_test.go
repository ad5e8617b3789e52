package main

import (
	"context"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/kalaiarasan0/farmdesk/internal/infrastructure/config"
)

func testConfig(port string) *config.Config {
	return &config.Config{
		Port:        port,
		Env:         "development",
		JWTSecret:   "test-secret",
		TokenTTL:    time.Hour,
		LogLevel:    "error",
		DevUsername: "admin",
		DevPassword: "admin",
		UserStore:   config.UserStoreMemory,
		SeedCatalog: true,
	}
}

func freePort(t *testing.T) string {
	t.Helper()
	ln, err := net.Listen("tcp", ":0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	port := ln.Addr().(*net.TCPAddr).Port
	_ = ln.Close()
	return strconv.Itoa(port)
}

func waitHealthy(t *testing.T, base string) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		resp, err := http.Get(base + "/health")
		if err == nil {
			_ = resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return
			}
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatalf("server at %s never became healthy", base)
}

func TestRun_ServesAndShutsDown(t *testing.T) {
	port := freePort(t)
	base := "http://127.0.0.1:" + port

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- run(ctx, testConfig(port), zerolog.Nop()) }()

	waitHealthy(t, base)

	form := url.Values{"username": {"admin"}, "password": {"admin"}}
	resp, err := http.Post(base+"/auth/token", "application/x-www-form-urlencoded", strings.NewReader(form.Encode()))
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("dev user login status = %d", resp.StatusCode)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("run returned %v after shutdown", err)
		}
	case <-time.After(15 * time.Second):
		t.Fatalf("run did not return after cancel")
	}
}

func TestRun_PortInUse(t *testing.T) {
	ln, err := net.Listen("tcp", ":0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer ln.Close()
	port := strconv.Itoa(ln.Addr().(*net.TCPAddr).Port)

	done := make(chan error, 1)
	go func() { done <- run(context.Background(), testConfig(port), zerolog.Nop()) }()

	select {
	case err := <-done:
		if err == nil {
			t.Fatalf("expected listen error on a busy port")
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("run kept going on a busy port")
	}
}
