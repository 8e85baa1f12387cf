package cli

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"biztime/internal/adapter/repository/gormstore"
	"biztime/internal/config"

	"github.com/alicebob/miniredis/v2"
	"github.com/rs/zerolog"
)

func sqliteConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.DBDriver = "sqlite"
	cfg.DBPath = filepath.Join(t.TempDir(), "biztime.db")
	cfg.DBConnectRetries = 0
	return cfg
}

func TestVersionCmd(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.HasPrefix(out.String(), "biztime dev") {
		t.Fatalf("unexpected output %q", out.String())
	}
}

func TestRootCmd_HasSubcommands(t *testing.T) {
	want := map[string]bool{"serve": false, "version": false}
	for _, c := range newRootCmd().Commands() {
		if _, ok := want[c.Name()]; ok {
			want[c.Name()] = true
		}
	}
	for name, ok := range want {
		if !ok {
			t.Fatalf("missing subcommand %q", name)
		}
	}
}

func TestOpenRedis_DisabledWhenUnset(t *testing.T) {
	cfg := config.Default()
	if rdb := openRedis(context.Background(), cfg, zerolog.Nop()); rdb != nil {
		t.Fatal("expected nil client without address")
	}

	cfg.RedisAddr = "not-a-real-host:6379"
	if rdb := openRedis(context.Background(), cfg, zerolog.Nop()); rdb != nil {
		t.Fatal("expected nil client for unreachable redis")
	}
}

func TestOpenRedis_Connects(t *testing.T) {
	s := miniredis.RunT(t)
	cfg := config.Default()
	cfg.RedisAddr = s.Addr()

	rdb := openRedis(context.Background(), cfg, zerolog.Nop())
	if rdb == nil {
		t.Fatal("expected client")
	}
	_ = rdb.Close()
}

func TestBuildServer_SQLite(t *testing.T) {
	cfg := sqliteConfig(t)
	gdb, err := connect(context.Background(), cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(func() { closeDB(gdb) })
	if err := gormstore.EnsureSchema(gdb); err != nil {
		t.Fatalf("schema: %v", err)
	}

	e := buildServer(gdb, nil, cfg, zerolog.Nop())

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/companies", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /companies = %d: %s", rec.Code, rec.Body.String())
	}
	if strings.TrimSpace(rec.Body.String()) != `{"companies":[]}` {
		t.Fatalf("unexpected body %s", rec.Body.String())
	}

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"db":"ok"`) {
		t.Fatalf("GET /health = %d: %s", rec.Code, rec.Body.String())
	}
}

func TestServe_StopsOnCancel(t *testing.T) {
	cfg := sqliteConfig(t)
	cfg.AppPort = "0"

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := serve(ctx, cfg, zerolog.Nop()); err != nil {
		t.Fatalf("serve: %v", err)
	}
}
