package metrics

import (
	"go/parser"
	"go/token"
	"io/fs"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestCollectorsRegistered(t *testing.T) {
	ClientRequestsTotal.WithLabelValues("GET", "200")
	ClientRequestDuration.WithLabelValues("GET")
	ToastsEmittedTotal.WithLabelValues("info")

	families, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	seen := map[string]bool{}
	for _, mf := range families {
		seen[mf.GetName()] = true
	}
	for _, name := range []string{
		"farmdesk_client_requests_total",
		"farmdesk_client_request_duration_seconds",
		"farmdesk_client_network_errors_total",
		"farmdesk_session_invalidations_total",
		"farmdesk_toasts_emitted_total",
		"farmdesk_toast_subscriber_panics_total",
	} {
		if !seen[name] {
			t.Errorf("%s not registered", name)
		}
	}

	before := testutil.ToFloat64(SessionInvalidationsTotal)
	SessionInvalidationsTotal.Inc()
	if got := testutil.ToFloat64(SessionInvalidationsTotal); got != before+1 {
		t.Fatalf("session invalidations = %v, want %v", got, before+1)
	}
}

// The client toolkit must not depend on the development server's packages.
func TestToolkitDoesNotImportServer(t *testing.T) {
	const serverPkg = "github.com/kalaiarasan0/farmdesk/internal/api"

	for _, root := range []string{"../../core", "../../infrastructure", "../../pkg"} {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() || !strings.HasSuffix(path, ".go") {
				return nil
			}
			f, err := parser.ParseFile(token.NewFileSet(), path, nil, parser.ImportsOnly)
			if err != nil {
				return err
			}
			for _, imp := range f.Imports {
				p, _ := strconv.Unquote(imp.Path.Value)
				if p == serverPkg || strings.HasPrefix(p, serverPkg+"/") {
					t.Errorf("%s imports %s", path, p)
				}
			}
			return nil
		})
		if err != nil {
			t.Fatalf("walk %s: %v", root, err)
		}
	}
}
