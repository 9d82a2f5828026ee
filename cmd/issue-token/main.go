// Command issue-token mints a signed bearer token for local development,
// so protected routes can be exercised with curl without going through
// the register/login flow.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/openhire/jobboard/pkg/token"
)

func main() {
	userID := flag.String("user", "user:dev", "Subject user ID for the token")
	role := flag.String("role", "recruiter", "Role claim (recruiter or jobseeker)")
	issuer := flag.String("issuer", "jobboard", "Token issuer")
	expMins := flag.Int("exp", 60*24, "Token expiration in minutes (default: 24h)")
	outputJSON := flag.Bool("json", false, "Output as JSON")

	flag.Parse()

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		fmt.Fprintln(os.Stderr, "Error: JWT_SECRET must be set")
		fmt.Fprintln(os.Stderr, "\nUse the same secret the server runs with, e.g.:")
		fmt.Fprintln(os.Stderr, "  JWT_SECRET=dev-secret go run ./cmd/issue-token -role recruiter")
		os.Exit(1)
	}

	ttl := time.Duration(*expMins) * time.Minute
	codec, err := token.NewCodec(token.Config{
		Secret: secret,
		Issuer: *issuer,
		TTL:    ttl,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating token codec: %v\n", err)
		os.Exit(1)
	}

	signed, err := codec.Issue(*userID, *role)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error signing token: %v\n", err)
		os.Exit(1)
	}

	if *outputJSON {
		output := map[string]any{
			"token":      signed,
			"token_type": "Bearer",
			"expires_in": *expMins * 60,
			"user_id":    *userID,
			"role":       *role,
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(output)
		return
	}

	expTime := time.Now().Add(ttl)
	fmt.Println("Token Generated")
	fmt.Println("===============")
	fmt.Printf("User ID:  %s\n", *userID)
	fmt.Printf("Role:     %s\n", *role)
	fmt.Printf("Expires:  %s\n", expTime.Format(time.RFC3339))
	fmt.Println()
	fmt.Println("Token:")
	fmt.Println(signed)
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Printf("  curl -H 'Authorization: Bearer %s...' http://localhost:8080/api/jobs/my\n", signed[:24])
}
