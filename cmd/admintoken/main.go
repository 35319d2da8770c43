// Command admintoken mints a development bearer token for the given
// subject, signed with ADMIN_JWT_SECRET. Production tokens come from the
// hosted auth provider; this tool exists for local and staging use.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"dragonfire/config"
	"dragonfire/internal/adapters/auth"
)

func main() {
	subject := flag.String("subject", "", "caller identity to put in the token subject")
	expiry := flag.Duration("expiry", 24*time.Hour, "token lifetime")
	flag.Parse()

	if *subject == "" {
		fmt.Fprintln(os.Stderr, "usage: admintoken -subject <caller-id> [-expiry 24h]")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	if cfg.AdminJWTSecret == "" {
		fmt.Fprintln(os.Stderr, "ADMIN_JWT_SECRET is not set")
		os.Exit(1)
	}

	token, err := auth.NewJWTIssuer(cfg.AdminJWTSecret).Issue(*subject, *expiry)
	if err != nil {
		fmt.Fprintln(os.Stderr, "issue token:", err)
		os.Exit(1)
	}
	fmt.Println(token)
}
