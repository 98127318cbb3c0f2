package main

import (
	"log"

	"github.com/ovsov/jobgrader/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
