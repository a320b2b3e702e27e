package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/darksuei/pitci-server/pkg/crypto"
)

// Generates a bcrypt hash for seeding admin accounts.
func main() {
	password := flag.String("password", "", "password to hash")
	flag.Parse()

	if *password == "" {
		fmt.Fprintln(os.Stderr, "usage: hashgen -password <password>")
		os.Exit(1)
	}

	hash, err := crypto.HashPassword(*password)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println(hash)
}
