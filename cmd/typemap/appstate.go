// App-state scenario: independent modules sharing one TypeMap without a
// common supertype for their state.
package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/sovran-la/sovran-typemap/pkg/typemap"
)

type user struct {
	ID       string
	Username string
	Email    string
	Active   bool
}

var appStateCmd = &cobra.Command{
	Use:   "appstate",
	Short: "Share heterogeneous application state across modules",
	RunE: func(cmd *cobra.Command, args []string) error {
		state := typemap.New[string]()

		// Each module owns one slot; none knows the others' types.
		typemap.Set(state, "users", []user{})
		typemap.Set(state, "config", map[string]string{
			"theme":    cfg.GetString(cfgKeyTheme),
			"language": cfg.GetString(cfgKeyLanguage),
		})
		typemap.Set(state, "page_views", map[string]int{})

		if err := addUser(state, "alice", "alice@example.com"); err != nil {
			return err
		}
		if err := addUser(state, "bob", "bob@example.com"); err != nil {
			return err
		}

		for _, page := range []string{"home", "profile", "home"} {
			if _, err := typemap.WithMut(state, "page_views", func(views *map[string]int) int {
				(*views)[page]++
				return (*views)[page]
			}); err != nil {
				return err
			}
		}

		if _, err := typemap.WithMut(state, "config", func(c *map[string]string) string {
			(*c)["theme"] = "dark"
			return (*c)["theme"]
		}); err != nil {
			return err
		}

		fmt.Println("APPLICATION STATE")
		fmt.Println("=================")

		users, err := typemap.Get[[]user](state, "users")
		if err != nil {
			return err
		}
		for _, u := range users {
			fmt.Printf("user %s: %s <%s> active=%v\n", u.ID, u.Username, u.Email, u.Active)
		}

		config, err := typemap.Get[map[string]string](state, "config")
		if err != nil {
			return err
		}
		for k, v := range config {
			fmt.Printf("config %s=%s\n", k, v)
		}

		total, err := typemap.With(state, "page_views", func(views map[string]int) int {
			n := 0
			for page, count := range views {
				fmt.Printf("views %s=%d\n", page, count)
				n += count
			}
			return n
		})
		if err != nil {
			return err
		}
		fmt.Printf("total page views: %d\n", total)

		return nil
	},
}

// addUser appends a user with a fresh UUID v7 to the shared users slot.
func addUser(state *typemap.TypeMap[string], username, email string) error {
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Errorf("generate user id: %w", err)
	}
	_, err = typemap.WithMut(state, "users", func(users *[]user) int {
		*users = append(*users, user{
			ID:       id.String(),
			Username: username,
			Email:    email,
			Active:   true,
		})
		return len(*users)
	})
	return err
}
