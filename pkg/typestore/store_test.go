package typestore

import (
	"errors"
	"sync"
	"testing"

	"github.com/sovran-la/sovran-typemap/pkg/typemap"
)

type databaseConfig struct {
	Host string
	Port int
}

type appConfig struct {
	Name           string
	Debug          bool
	MaxConnections int
}

func TestStoreTypeIsTheKey(t *testing.T) {
	s := New()

	Set(s, databaseConfig{Host: "localhost", Port: 5432})
	Set(s, appConfig{Name: "MyApp", Debug: true, MaxConnections: 100})

	db, err := Get[databaseConfig](s)
	if err != nil {
		t.Fatal(err)
	}
	if db.Host != "localhost" || db.Port != 5432 {
		t.Fatalf("unexpected %+v", db)
	}

	app, err := Get[appConfig](s)
	if err != nil {
		t.Fatal(err)
	}
	if app.Name != "MyApp" {
		t.Fatalf("unexpected %+v", app)
	}

	if s.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", s.Len())
	}
}

func TestStoreSingletonPerType(t *testing.T) {
	s := New()

	Set(s, databaseConfig{Host: "a"})
	Set(s, databaseConfig{Host: "b"})

	if s.Len() != 1 {
		t.Fatalf("one slot per type, got %d", s.Len())
	}
	db, err := Get[databaseConfig](s)
	if err != nil {
		t.Fatal(err)
	}
	if db.Host != "b" {
		t.Fatalf("later Set must win, got %+v", db)
	}
}

func TestStoreAbsence(t *testing.T) {
	s := New()

	if _, err := Get[appConfig](s); !errors.Is(err, typemap.ErrKeyNotFound) {
		t.Fatalf("expected ErrKeyNotFound, got %v", err)
	}
	if Contains[appConfig](s) {
		t.Fatal("empty store must not contain appConfig")
	}
}

func TestStoreWithMut(t *testing.T) {
	s := New()
	Set(s, appConfig{Name: "MyApp", Debug: true})

	if _, err := WithMut(s, func(cfg *appConfig) bool {
		cfg.Debug = false
		return cfg.Debug
	}); err != nil {
		t.Fatal(err)
	}

	debug, err := With(s, func(cfg appConfig) bool { return cfg.Debug })
	if err != nil {
		t.Fatal(err)
	}
	if debug {
		t.Fatal("mutation did not persist")
	}
}

func TestStoreRemove(t *testing.T) {
	s := New()
	Set(s, databaseConfig{Host: "localhost"})

	if !Remove[databaseConfig](s) {
		t.Fatal("first remove must report true")
	}
	if Remove[databaseConfig](s) {
		t.Fatal("second remove must report false")
	}
	if !s.IsEmpty() {
		t.Fatal("store must be empty after remove")
	}
}

func TestStoreKeys(t *testing.T) {
	s := New()
	Set(s, databaseConfig{})
	Set(s, appConfig{})

	keys := s.Keys()
	if len(keys) != 2 {
		t.Fatalf("expected 2 keys, got %v", keys)
	}
	names := map[string]bool{}
	for _, k := range keys {
		names[k.Name()] = true
	}
	if !names["databaseConfig"] || !names["appConfig"] {
		t.Fatalf("unexpected keys %v", keys)
	}
}

func TestStoreConcurrentIncrements(t *testing.T) {
	const goroutines = 10
	const increments = 100

	type counter struct{ N int }

	s := New()
	Set(s, counter{})

	var wg sync.WaitGroup
	for range goroutines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range increments {
				if _, err := WithMut(s, func(c *counter) int {
					c.N++
					return c.N
				}); err != nil {
					t.Error(err)
					return
				}
			}
		}()
	}
	wg.Wait()

	final, err := Get[counter](s)
	if err != nil {
		t.Fatal(err)
	}
	if final.N != goroutines*increments {
		t.Fatalf("lost updates: expected %d, got %d", goroutines*increments, final.N)
	}
}
