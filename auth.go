package main

import (
	"bufio"
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/bloggermandolin/catalog/services/youtube"
)

func makeAuthCMD() cli.Command {
	authCMD := cli.Command{
		Name:   "auth",
		Usage:  "Obtains and stores a YouTube OAuth token",
		Action: authorize,
	}
	configureAuth(&authCMD)
	return authCMD
}

func configureAuth(c *cli.Command) {
	c.Flags = youtube.RegisterFlags(c.Flags)
}

func authorize(c *cli.Context) error {
	// Setting HTTP Client
	cl := http.DefaultClient

	// Setting YouTube Api
	yt := youtube.New(c, cl)
	if yt == nil {
		return errors.New("youtube api not configured")
	}

	u, err := yt.AuthURL()
	if err != nil {
		return err
	}
	fmt.Printf("Open the following URL in a browser, then paste the code here:\n%v\n> ", u)

	rd := bufio.NewReader(os.Stdin)
	code, err := rd.ReadString('\n')
	if err != nil {
		return errors.Wrap(err, "failed to read auth code")
	}
	code = strings.TrimSpace(code)
	if code == "" {
		return errors.New("empty auth code")
	}

	err = yt.Exchange(context.Background(), code)
	if err != nil {
		return err
	}
	fmt.Println("token stored")
	return nil
}
