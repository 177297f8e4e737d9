package main

import (
	"log"
	"os"
)

// Command line client for the names API
func main() {
	if err := Run(os.Args[1:], os.Stdout); err != nil {
		log.Fatalf("[COMMANDLINE]: %v", err)
	}
}
