package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	registry := NewRegistry(
		&MigrateCommand{},
		&WaitForDBCommand{},
		&IssueTokenCommand{},
	)

	if err := registry.Dispatch(os.Args[1:], os.Stdout); err != nil {
		if !errors.Is(err, errUsage) || len(os.Args) > 1 {
			PrintError("%v", err)
		}
		os.Exit(1)
	}
	fmt.Println()
}
