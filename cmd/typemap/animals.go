// Animals scenario: one value, two views — concrete struct access and
// polymorphic access through the capability interface recorded at
// insertion.
package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sovran-la/sovran-typemap/pkg/typemap"
)

type animal interface {
	MakeSound() string
}

type dog struct {
	Name  string
	Breed string
}

func (d dog) MakeSound() string { return "Woof!" }

type cat struct {
	Name  string
	Lives int
}

func (c cat) MakeSound() string { return "Meow!" }

var animalsCmd = &cobra.Command{
	Use:   "animals",
	Short: "Store values behind a capability interface",
	RunE: func(cmd *cobra.Command, args []string) error {
		store := typemap.NewTraitMap[string]()

		if err := typemap.SetTrait[animal](store, "dog", dog{Name: "Rover", Breed: "Golden Retriever"}); err != nil {
			return err
		}
		if err := typemap.SetTrait[animal](store, "cat", cat{Name: "Whiskers", Lives: 9}); err != nil {
			return err
		}

		fmt.Printf("keys in store: %v\n", store.Keys())

		// Polymorphic pass over every entry; no concrete types needed.
		for _, key := range store.Keys() {
			sound, err := typemap.WithTrait(store, key, func(a animal) string { return a.MakeSound() })
			if err != nil {
				return err
			}
			fmt.Printf("%s says: %s\n", key, sound)
		}

		// Concrete access still sees the full struct.
		breed, err := typemap.WithConcrete(store, "dog", func(d dog) string { return d.Breed })
		if err != nil {
			return err
		}
		fmt.Printf("the dog is a %s\n", breed)

		// A request for the wrong concrete type is refused outright.
		_, err = typemap.WithConcrete(store, "dog", func(c cat) int { return c.Lives })
		if errors.Is(err, typemap.ErrTypeMismatch) {
			fmt.Println("correctly refused to read the dog as a cat")
		} else {
			return fmt.Errorf("expected a type mismatch, got %v", err)
		}

		return nil
	},
}
