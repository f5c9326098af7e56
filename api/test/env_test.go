package test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/irsalhamdi/harmoni-music/api"
	"github.com/irsalhamdi/harmoni-music/blob"
	"github.com/irsalhamdi/harmoni-music/config"
	"github.com/irsalhamdi/harmoni-music/core/auth"
	"github.com/irsalhamdi/harmoni-music/core/cart"
	"github.com/irsalhamdi/harmoni-music/core/catalog"
	"github.com/irsalhamdi/harmoni-music/core/course"
	"github.com/irsalhamdi/harmoni-music/core/product"
	"github.com/irsalhamdi/harmoni-music/core/user"
	"github.com/irsalhamdi/harmoni-music/database"
	"github.com/irsalhamdi/harmoni-music/rate"
	"github.com/jmoiron/sqlx"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/sirupsen/logrus"
)

const (
	adminEmail = "admin@harmoni.com"
	adminPass  = "admin123"
)

type TestEnv struct {
	*httptest.Server
	DB *sqlx.DB
}

// NewTestEnv serves the api over a fresh Postgres container. The test is
// skipped when docker cannot be reached.
func NewTestEnv(t *testing.T, dbName string) (*TestEnv, error) {
	t.Helper()

	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Skipf("docker unavailable: %v", err)
	}
	if err := pool.Client.Ping(); err != nil {
		t.Skipf("docker unavailable: %v", err)
	}

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "15-alpine",
		Env: []string{
			"POSTGRES_USER=postgres",
			"POSTGRES_PASSWORD=postgres",
			"POSTGRES_DB=" + dbName,
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		return nil, fmt.Errorf("starting postgres: %w", err)
	}
	t.Cleanup(func() {
		if err := pool.Purge(resource); err != nil {
			t.Logf("purging postgres: %v", err)
		}
	})
	_ = resource.Expire(300)

	cfg := config.DB{
		User:         "postgres",
		Password:     "postgres",
		Host:         resource.GetHostPort("5432/tcp"),
		Name:         dbName,
		MaxIdleConns: 2,
		DisableTLS:   true,
	}

	var db *sqlx.DB
	pool.MaxWait = time.Minute
	err = pool.Retry(func() error {
		var err error
		if db, err = database.Open(cfg); err != nil {
			return err
		}
		return db.Ping()
	})
	if err != nil {
		return nil, fmt.Errorf("connecting to postgres: %w", err)
	}
	t.Cleanup(func() { db.Close() })

	log := logrus.New()
	log.SetOutput(io.Discard)

	if err := database.Migrate(db, log); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	if _, _, err := user.EnsureAdmin(ctx, db, "Super Admin", adminEmail, adminPass); err != nil {
		return nil, err
	}

	blobs := blob.NewDB(db)

	courses := catalog.New(ctx, catalog.Config[course.Course]{
		Log: log, Blobs: blobs, Key: "courses", Defaults: course.Defaults(), Strict: true,
	})
	products := catalog.New(ctx, catalog.Config[product.Product]{
		Log: log, Blobs: blobs, Key: "products", Defaults: product.Defaults(), Strict: true,
	})

	mux := api.APIMux(api.APIConfig{
		Log:       log,
		DB:        db,
		Session:   scs.New(),
		Tokens:    auth.NewTokens([]byte("test-secret"), time.Hour),
		Limiter:   rate.NewLimiter(ctx, 20, time.Minute, rate.Every(time.Second)),
		Courses:   courses,
		Products:  products,
		Carts:     cart.NewEngine(log, blobs, true),
		ClearCart: true,
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	srv.Client().Jar = jar

	return &TestEnv{Server: srv, DB: db}, nil
}

// Do sends body as JSON, with token as bearer when set, and decodes the
// response into out when out is not nil.
func (env *TestEnv) Do(t *testing.T, method, path, token string, body, out any) int {
	t.Helper()

	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		rd = bytes.NewReader(b)
	}

	r, err := http.NewRequest(method, env.URL+path, rd)
	if err != nil {
		t.Fatal(err)
	}
	if body != nil {
		r.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		r.Header.Set("Authorization", "Bearer "+token)
	}

	w, err := env.Client().Do(r)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Body.Close()

	if out != nil && w.StatusCode < http.StatusBadRequest {
		if err := json.NewDecoder(w.Body).Decode(out); err != nil {
			t.Fatalf("%s %s: decoding response: %v", method, path, err)
		}
	}

	return w.StatusCode
}

func (env *TestEnv) Login(t *testing.T, email, password string) string {
	t.Helper()

	var s auth.Session
	cr := map[string]string{"email": email, "password": password}
	if code := env.Do(t, http.MethodPost, "/auth/login", "", cr, &s); code != http.StatusOK {
		t.Fatalf("login as %s: status %d", email, code)
	}
	return s.Token
}

func (env *TestEnv) Register(t *testing.T, name, email, password string) user.User {
	t.Helper()

	var u user.User
	un := map[string]string{"name": name, "email": email, "password": password}
	if code := env.Do(t, http.MethodPost, "/auth/register", "", un, &u); code != http.StatusCreated {
		t.Fatalf("register %s: status %d", email, code)
	}
	return u
}
