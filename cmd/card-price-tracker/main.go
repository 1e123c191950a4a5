// Package main is the entry point for the card-price-tracker server.
package main

import (
	"os"
	_ "time/tzdata"

	"github.com/donaldgifford/card-price-tracker/cmd/card-price-tracker/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
