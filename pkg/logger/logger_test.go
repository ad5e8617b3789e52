package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"trace":   zerolog.TraceLevel,
		"DEBUG":   zerolog.DebugLevel,
		" warn ":  zerolog.WarnLevel,
		"warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"":        zerolog.InfoLevel,
		"bogus":   zerolog.InfoLevel,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestInit_ComponentFields(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	var buf bytes.Buffer
	Init(Options{Level: "debug", Output: &buf, Service: "farmctl"})

	log := Component("httpclient")
	log.Info().Msg("hello")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("invalid json log line %q: %v", buf.String(), err)
	}
	if entry["service"] != "farmctl" {
		t.Fatalf("expected service field, got %v", entry["service"])
	}
	if entry["component"] != "httpclient" {
		t.Fatalf("expected component field, got %v", entry["component"])
	}
	if entry["message"] != "hello" {
		t.Fatalf("unexpected message: %v", entry["message"])
	}
}

func TestGet_PanicsBeforeInit(t *testing.T) {
	Reset()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	_ = Get()
}

func TestNew_LeavesSingletonAlone(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	var a, b bytes.Buffer
	la := New(Options{Level: "info", Output: &a})
	lb := New(Options{Level: "info", Output: &b, Service: "farmctl"})
	la.Info().Msg("to a")
	lb.Info().Msg("to b")

	if !bytes.Contains(a.Bytes(), []byte("to a")) || bytes.Contains(a.Bytes(), []byte("to b")) {
		t.Fatalf("unexpected output in a: %q", a.String())
	}
	if !bytes.Contains(b.Bytes(), []byte(`"service":"farmctl"`)) {
		t.Fatalf("service field missing in b: %q", b.String())
	}

	defer func() {
		if recover() == nil {
			t.Fatalf("New must not initialise the singleton")
		}
	}()
	_ = Get()
}
