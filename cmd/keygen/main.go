package main

import (
	"fmt"
	"os"

	"github.com/mhartmann/roster-api-go/pkg/auth"
	"github.com/mhartmann/roster-api-go/pkg/config"
)

func main() {
	config.Load()

	if len(os.Args) < 2 {
		fmt.Println("Usage: keygen <userID>")
		os.Exit(1)
	}

	userID := os.Args[1]
	if config.MasterSecret() == "" {
		fmt.Println("Error: ROSTER_MASTER_SECRET is not set")
		os.Exit(1)
	}

	apiKey := auth.GenerateHMACKey(userID)
	fmt.Printf("Generated Key for %s:\n%s\n", userID, apiKey)
}
