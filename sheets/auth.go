package sheets

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const SCOPE = "https://www.googleapis.com/auth/spreadsheets"

// authorize builds an HTTP client from an OAuth2 credentials file,
// caching tokens in workdir. On first use the authorization code has to
// be pasted in at the console.
func authorize(credentials, workdir string) (*http.Client, error) {
	b, err := os.ReadFile(credentials)
	if err != nil {
		return nil, err
	}

	config, err := google.ConfigFromJSON(b, SCOPE)
	if err != nil {
		return nil, err
	}

	_, file := filepath.Split(credentials)
	name := strings.TrimSuffix(file, filepath.Ext(file))
	tokens := filepath.Join(workdir, fmt.Sprintf("%s.tokens", name))

	token, err := tokenFromFile(tokens)
	if err != nil {
		if token, err = tokenFromWeb(config); err != nil {
			return nil, err
		}

		if err := saveToken(tokens, token); err != nil {
			return nil, fmt.Errorf("unable to cache oauth token (%v)", err)
		}
	}

	return config.Client(context.Background(), token), nil
}

// Requests a token from the web, prompting for the authorization code.
func tokenFromWeb(config *oauth2.Config) (*oauth2.Token, error) {
	authURL := config.AuthCodeURL("state-token", oauth2.AccessTypeOffline)
	fmt.Printf("Go to the following link in your browser then type the authorization code:\n%v\n", authURL)

	var code string
	if _, err := fmt.Scan(&code); err != nil {
		return nil, fmt.Errorf("unable to read authorization code (%v)", err)
	}

	return config.Exchange(context.TODO(), code)
}

// Retrieves a cached token from a local file.
func tokenFromFile(file string) (*oauth2.Token, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}

	defer f.Close()

	token := oauth2.Token{}
	err = json.NewDecoder(f).Decode(&token)

	return &token, err
}

// Saves a token to a file path.
func saveToken(path string, token *oauth2.Token) error {
	if err := os.MkdirAll(filepath.Dir(path), 0770); err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}

	defer f.Close()

	return json.NewEncoder(f).Encode(token)
}
