// Service-locator scenario: the type itself is the key, so each service is
// a natural singleton.
package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/sovran-la/sovran-typemap/pkg/typestore"
)

type databaseConfig struct {
	Host     string
	Port     int
	Database string
}

type appConfig struct {
	Name           string
	Debug          bool
	MaxConnections int
}

type appLogger struct {
	Prefix string
}

func (l appLogger) Log(msg string) {
	fmt.Printf("[%s] %s\n", l.Prefix, msg)
}

var servicesCmd = &cobra.Command{
	Use:   "services",
	Short: "Use the type-keyed store as a service locator",
	RunE: func(cmd *cobra.Command, args []string) error {
		services := typestore.New()

		typestore.Set(services, databaseConfig{
			Host:     "localhost",
			Port:     5432,
			Database: "myapp",
		})
		typestore.Set(services, appConfig{
			Name:           cfg.GetString(cfgKeyAppName),
			Debug:          cfg.GetBool(cfgKeyAppDebug),
			MaxConnections: cfg.GetInt(cfgKeyMaxConns),
		})
		typestore.Set(services, appLogger{Prefix: "app"})

		if err := createUser(services, "alice"); err != nil {
			return err
		}
		if err := createUser(services, "bob"); err != nil {
			return err
		}
		if err := createOrder(services, "alice", "Widget"); err != nil {
			return err
		}

		// Services stay mutable in place.
		if _, err := typestore.WithMut(services, func(c *appConfig) bool {
			c.Debug = false
			return c.Debug
		}); err != nil {
			return err
		}
		fmt.Println("debug mode disabled")

		fmt.Println("\nfinal configuration:")
		app, err := typestore.Get[appConfig](services)
		if err != nil {
			return err
		}
		fmt.Printf("  app: %s\n", app.Name)
		fmt.Printf("  debug: %v\n", app.Debug)
		fmt.Printf("  max connections: %d\n", app.MaxConnections)

		db, err := typestore.Get[databaseConfig](services)
		if err != nil {
			return err
		}
		fmt.Printf("  database: %s:%d/%s\n", db.Host, db.Port, db.Database)

		return nil
	},
}

// createUser resolves the logger from the locator and records a new user.
func createUser(services *typestore.Store, username string) error {
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Errorf("generate user id: %w", err)
	}
	logger, err := typestore.Get[appLogger](services)
	if err != nil {
		return err
	}
	logger.Log(fmt.Sprintf("created user %s (%s)", username, id))
	return nil
}

// createOrder resolves dependencies from the locator and records an order.
func createOrder(services *typestore.Store, username, item string) error {
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Errorf("generate order id: %w", err)
	}
	logger, err := typestore.Get[appLogger](services)
	if err != nil {
		return err
	}
	db, err := typestore.Get[databaseConfig](services)
	if err != nil {
		return err
	}
	logger.Log(fmt.Sprintf("order %s: %s for %s via %s:%d", id, item, username, db.Host, db.Port))
	return nil
}
