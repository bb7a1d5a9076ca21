// Command issue-token signs an access token for an existing user, for local
// testing of the protected routes.
//
//	go run ./backend/cmd/tools/issue-token -uid user-123 -username dicoding
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/itchan-dev/forum/shared/config"
	"github.com/itchan-dev/forum/shared/domain"
	jwt_internal "github.com/itchan-dev/forum/shared/jwt"
)

func main() {
	var configFolder, uid, username string
	flag.StringVar(&configFolder, "config_folder", "backend/config", "path to folder with configs")
	flag.StringVar(&uid, "uid", "", "user id to put in the token")
	flag.StringVar(&username, "username", "", "username to put in the token")
	flag.Parse()

	if uid == "" {
		fmt.Fprintln(os.Stderr, "-uid is required")
		flag.Usage()
		os.Exit(2)
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "failed to load .env: %v\n", err)
		os.Exit(1)
	}
	cfg := config.MustLoad(configFolder)

	token, err := jwt_internal.New(cfg.JwtKey(), cfg.JwtTTL()).NewToken(domain.User{Id: uid, Username: username})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to issue token: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(token)
}
