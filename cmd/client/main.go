package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/atinyakov/userkeeper/internal/client"
	"github.com/atinyakov/userkeeper/internal/models"
)

var (
	version   string
	buildDate string
)

// main parses command-line flags and dispatches to the register or get commands.
func main() {
	var (
		cmd      string
		baseURL  string
		loginStr string
		fullName string
		password string
		showVer  bool
	)

	flag.StringVar(&cmd, "cmd", "", "command: register | get")
	flag.StringVar(&baseURL, "url", "http://localhost:8080", "server base URL")
	flag.StringVar(&loginStr, "login", "", "user login")
	flag.StringVar(&fullName, "name", "", "full name for registration")
	flag.StringVar(&password, "password", "", "password for registration")
	flag.BoolVar(&showVer, "version", false, "show build version and date")
	flag.Parse()

	if showVer {
		fmt.Printf("UserKeeper Client\nVersion: %s\nBuild Date: %s\n", version, buildDate)
		return
	}

	if loginStr == "" {
		log.Fatal("please provide -login=username")
	}

	c := client.New(baseURL, nil)
	ctx := context.Background()

	switch cmd {
	case "register":
		user, err := c.Register(ctx, models.NewUser{FullName: fullName, Login: loginStr, Password: password})
		if err != nil {
			var cv *models.ConstraintViolationError
			if errors.As(err, &cv) {
				log.Fatalf("%v: password must be 6-8 latin letters or digits", err)
			}
			log.Fatal(err)
		}
		fmt.Printf("✅ Registered %s\n", user.Login)
	case "get":
		user, err := c.GetUser(ctx, loginStr)
		if err != nil {
			log.Fatal(err)
		}
		b, _ := json.MarshalIndent(user, "", "  ")
		fmt.Println(string(b))
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", cmd)
		os.Exit(2)
	}
}
