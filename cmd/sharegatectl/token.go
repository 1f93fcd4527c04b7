package main

import (
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/cobra"

	"github.com/openshelf/sharegate/pkg/config"
)

// tokenCmd represents the token command
var tokenCmd = &cobra.Command{
	Use:   "token <user-id>",
	Short: "Mint a bearer token for a user",
	Long: `Mint a signed bearer token for a user.

The token is an HS256 JWT whose subject is the user ID, signed with
SHAREGATE_TOKEN_KEY. Intended for development and testing; production
tokens come from the identity provider.

Example:
  export TOKEN=$(sharegatectl token user-1)
  curl -H "Authorization: Bearer $TOKEN" localhost:8080/share-requests/pending`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		userID := args[0]
		ttl, _ := cmd.Flags().GetDuration("ttl")
		if ttl == 0 {
			ttl = config.Get().TokenTTL()
		}

		token, err := mintToken(userID, ttl)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to mint token: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(token)
	},
}

func init() {
	rootCmd.AddCommand(tokenCmd)
	tokenCmd.Flags().Duration("ttl", 0, "token lifetime (default: configured token_ttl)")
}

func mintToken(userID string, ttl time.Duration) (string, error) {
	key, err := tokenKeyFromEnv()
	if err != nil {
		return "", err
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)
}
