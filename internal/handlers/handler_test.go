// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// handler_test.go provides shared test infrastructure for handler integration
// tests. Tests are skipped when PostgreSQL or Valkey are unavailable.
package handlers

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"

	"vetlaunch/internal/cache"
	"vetlaunch/internal/database"
	"vetlaunch/internal/forms"
	"vetlaunch/internal/middleware"
	"vetlaunch/internal/notify"
	"vetlaunch/internal/render"
	"vetlaunch/internal/session"
	"vetlaunch/internal/store"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// testDB opens a connection to the test PostgreSQL and runs migrations.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	host := envOr("POSTGRES_HOST", "localhost")
	port := envOr("POSTGRES_PORT", "5432")
	user := envOr("POSTGRES_USER", "vetlaunch")
	pass := envOr("POSTGRES_PASSWORD", "changeme")
	name := envOr("POSTGRES_DB", "vetlaunch")
	dsn := "postgres://" + user + ":" + pass + "@" + host + ":" + port + "/" + name + "?sslmode=disable"

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		t.Skipf("skipping: cannot open DB: %v", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("skipping: DB not reachable: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		db.Close()
		t.Fatalf("migrate: %v", err)
	}
	goose.SetBaseFS(nil)

	t.Cleanup(func() { db.Close() })
	return db
}

// testValkeyClient returns a Redis client for handler tests on DB 15.
func testValkeyClient(t *testing.T) *redis.Client {
	t.Helper()

	host := envOr("VALKEY_HOST", "localhost")
	port := envOr("VALKEY_PORT", "6379")
	password := os.Getenv("VALKEY_PASSWORD")

	client := redis.NewClient(&redis.Options{
		Addr:     host + ":" + port,
		Password: password,
		DB:       15,
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		t.Skipf("skipping: Valkey not reachable: %v", err)
	}

	t.Cleanup(func() {
		// Clean up test session, edit-form, and cache keys.
		for _, pattern := range []string{"session:*", "editform:*", "page:*"} {
			keys, _ := client.Keys(ctx, pattern).Result()
			if len(keys) > 0 {
				client.Del(ctx, keys...)
			}
		}
		client.Close()
	})

	return client
}

// testEnv holds all dependencies for handler integration tests.
type testEnv struct {
	DB           *sql.DB
	Valkey       *redis.Client
	Renderer     *render.Renderer
	Sessions     *session.Store
	Registry     *store.Registry
	UserStore    *store.UserStore
	AuditStore   *store.AuditStore
	EditSessions *forms.SessionStore
	PageCache    *cache.PageCache
	Admin        *Admin
	Auth         *Auth
	Public       *Public
	API          *API
}

// newTestEnv creates a complete test environment with all handler
// dependencies. Storage is nil: the file manager runs in unavailable mode.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := testDB(t)
	vk := testValkeyClient(t)

	renderer, err := render.New(true)
	if err != nil {
		t.Fatalf("render.New: %v", err)
	}

	sessions := session.NewStore(vk, false)
	registry := store.NewRegistry(db)
	userStore := store.NewUserStore(db)
	auditStore := store.NewAuditStore(db)
	editSessions := forms.NewSessionStore(vk)
	pageCache := cache.NewPageCache(vk, 1*time.Minute)

	admin := NewAdmin(renderer, sessions, registry, userStore, auditStore, editSessions, nil, pageCache)
	auth := NewAuth(renderer, sessions, userStore)
	public := NewPublic(registry, renderer, pageCache)
	api := NewAPI(notify.NewClient(notify.Config{}))

	return &testEnv{
		DB:           db,
		Valkey:       vk,
		Renderer:     renderer,
		Sessions:     sessions,
		Registry:     registry,
		UserStore:    userStore,
		AuditStore:   auditStore,
		EditSessions: editSessions,
		PageCache:    pageCache,
		Admin:        admin,
		Auth:         auth,
		Public:       public,
		API:          api,
	}
}

// ctxWithSession adds session data to a context using the middleware key.
func ctxWithSession(ctx context.Context, data *session.Data) context.Context {
	return context.WithValue(ctx, middleware.SessionKey, data)
}

// testSession creates a session.Data for testing.
func testSession(userID uuid.UUID, email, role string, twoFADone bool) *session.Data {
	return &session.Data{
		UserID:      userID,
		Email:       email,
		DisplayName: "Test User",
		Role:        role,
		TwoFADone:   twoFADone,
	}
}

// withChiURLParams adds chi URL parameters to a request.
func withChiURLParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// cleanCollection removes every record from one collection.
func cleanCollection(t *testing.T, db *sql.DB, collection string) {
	t.Helper()
	if _, err := db.Exec("DELETE FROM documents WHERE collection = $1", collection); err != nil {
		t.Fatalf("clean %s: %v", collection, err)
	}
}
