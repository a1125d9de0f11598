package youtube

import (
	"context"
	"encoding/json"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/bloggermandolin/catalog/services/apperr"
)

const scopeForceSSL = "https://www.googleapis.com/auth/youtube.force-ssl"

// Authenticate builds the authorized client from the installed-app client
// secrets and the cached token. Mutating calls require it; the key-based read
// path keeps working without it.
func (api *Api) Authenticate(ctx context.Context) error {
	conf, err := api.oauthConfig()
	if err != nil {
		return err
	}
	tok, err := api.readToken()
	if err != nil {
		return err
	}
	api.authCl = oauth2.NewClient(
		context.WithValue(ctx, oauth2.HTTPClient, api.cl),
		conf.TokenSource(ctx, tok),
	)
	return nil
}

// AuthURL yields the consent URL for the one-time auth bootstrap.
func (api *Api) AuthURL() (string, error) {
	conf, err := api.oauthConfig()
	if err != nil {
		return "", err
	}
	return conf.AuthCodeURL("state", oauth2.AccessTypeOffline), nil
}

// Exchange trades the pasted consent code for a token and caches it.
func (api *Api) Exchange(ctx context.Context, code string) error {
	conf, err := api.oauthConfig()
	if err != nil {
		return err
	}
	tok, err := conf.Exchange(ctx, code)
	if err != nil {
		return apperr.Wrap(apperr.RemoteService, err, "exchange auth code")
	}
	b, err := json.Marshal(tok)
	if err != nil {
		return apperr.Wrap(apperr.RemoteService, err, "marshal token")
	}
	if err = os.WriteFile(api.tokenFile, b, 0600); err != nil {
		return apperr.Wrap(apperr.RemoteService, err, "write token file")
	}
	return nil
}

func (api *Api) oauthConfig() (*oauth2.Config, error) {
	b, err := os.ReadFile(api.secretsFile)
	if err != nil {
		return nil, apperr.Wrap(apperr.RemoteService, err, "read client secrets")
	}
	conf, err := google.ConfigFromJSON(b, scopeForceSSL)
	if err != nil {
		return nil, apperr.Wrap(apperr.RemoteService, err, "parse client secrets")
	}
	return conf, nil
}

func (api *Api) readToken() (*oauth2.Token, error) {
	b, err := os.ReadFile(api.tokenFile)
	if err != nil {
		return nil, apperr.Wrap(apperr.RemoteService, err, "read token file, run the auth command first")
	}
	tok := &oauth2.Token{}
	if err = json.Unmarshal(b, tok); err != nil {
		return nil, apperr.Wrap(apperr.RemoteService, err, "parse token file")
	}
	return tok, nil
}
