package secrets

import (
	"errors"
	"os"
	"strings"

	"github.com/zalando/go-keyring"
)

const (
	// KeyringService groups the app's secrets in the OS keychain.
	KeyringService = "jobboerse"
	// KeyringAccount holds the API key sent as X-API-Key.
	KeyringAccount = "api-key"

	EnvAPIKey = "JOBBOERSE_API_KEY"
)

func GetAPIKey() (string, error) {
	key, err := keyring.Get(KeyringService, KeyringAccount)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(key) == "" {
		return "", keyring.ErrNotFound
	}
	return key, nil
}

func SetAPIKey(key string) error {
	if strings.TrimSpace(key) == "" {
		return errors.New("api key is empty")
	}
	return keyring.Set(KeyringService, KeyringAccount, strings.TrimSpace(key))
}

func DeleteAPIKey() error {
	return keyring.Delete(KeyringService, KeyringAccount)
}

// ResolveAPIKey picks the key to send: environment first, then the OS
// keychain, then fallback (the configured static key). An unavailable
// keychain is not an error.
func ResolveAPIKey(fallback string) string {
	if v := strings.TrimSpace(os.Getenv(EnvAPIKey)); v != "" {
		return v
	}
	if v, err := GetAPIKey(); err == nil {
		return v
	}
	return fallback
}
