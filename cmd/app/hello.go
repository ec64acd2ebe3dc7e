package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

var helloName string

var helloCmd = &cobra.Command{
	Use:   "hello",
	Short: "Console demo: variables, a counter, a pure function and a branch",
	RunE: func(cmd *cobra.Command, args []string) error {
		runHello(cmd.OutOrStdout(), helloName)
		return nil
	},
}

func init() {
	helloCmd.Flags().StringVar(&helloName, "name", "Go Learner", "name to greet")
}

func runHello(w io.Writer, name string) {
	fmt.Fprintf(w, "Welcome, %s!\n", name)

	counter := 0
	counter++
	fmt.Fprintf(w, "Counter: %d\n", counter)

	result := addNumbers(5, 3)
	fmt.Fprintf(w, "5 + 3 = %d\n", result)

	if result > 5 {
		fmt.Fprintln(w, "The result is greater than 5!")
	} else {
		fmt.Fprintln(w, "The result is 5 or less")
	}
}

func addNumbers(a, b int) int {
	return a + b
}
