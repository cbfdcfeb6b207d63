// Numbers scenario: keyed heterogeneous storage with read, in-place
// update, and removal, including the error paths.
package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sovran-la/sovran-typemap/pkg/typemap"
)

type integerValue struct {
	Value int64
}

// doubledValue stores half of what it reports.
type doubledValue struct {
	Value int64
}

func (d doubledValue) Get() int64 { return d.Value * 2 }

var numbersCmd = &cobra.Command{
	Use:   "numbers",
	Short: "Keyed storage of unrelated number types",
	RunE: func(cmd *cobra.Command, args []string) error {
		store := typemap.New[string]()

		typemap.Set(store, "num1", integerValue{Value: 42})
		typemap.Set(store, "num2", doubledValue{Value: 21}) // reads back as 42

		v1, err := typemap.With(store, "num1", func(n integerValue) int64 { return n.Value })
		if err != nil {
			return err
		}
		fmt.Printf("value 1: %d\n", v1)

		v2, err := typemap.With(store, "num2", func(n doubledValue) int64 { return n.Get() })
		if err != nil {
			return err
		}
		fmt.Printf("value 2: %d\n", v2)

		// Update in place.
		if _, err := typemap.WithMut(store, "num1", func(n *integerValue) int64 {
			n.Value = 100
			return n.Value
		}); err != nil {
			return err
		}
		v1, err = typemap.With(store, "num1", func(n integerValue) int64 { return n.Value })
		if err != nil {
			return err
		}
		fmt.Printf("updated value 1: %d\n", v1)

		if store.Remove("num1") {
			fmt.Println("removed value 1")
		}

		// Accessing the removed key reports the absence, not a default.
		_, err = typemap.With(store, "num1", func(n integerValue) int64 { return n.Value })
		if errors.Is(err, typemap.ErrKeyNotFound) {
			fmt.Println("correctly detected the removed key")
		} else {
			return fmt.Errorf("expected key-not-found, got %v", err)
		}

		fmt.Printf("store has %d item(s), empty=%v\n", store.Len(), store.IsEmpty())
		return nil
	},
}
