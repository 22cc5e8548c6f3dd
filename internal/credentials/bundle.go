package credentials

import (
	"encoding/json"

	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	"github.com/stellarburgers/storefront"
)

const bundleEnvconfigPrefix = "CREDENTIALS"

type bundleConfig struct {
	// Backend selects where the refresh token is kept: "file" (default) or
	// "redis". The split-storage policy is a configuration choice, not a
	// property of the call sites.
	Backend string `envconfig:"BACKEND" default:"file"`
}

// Bundle groups the two scoped credential stores: the cookie-scoped store for
// the short-lived access token and the cached user snapshot, and the durable
// store for the long-lived refresh token.
type Bundle struct {
	Cookies Store
	Durable Store
}

// NewBundleFromEnvironment assembles the credential stores per CREDENTIALS_*
// environment variables.
func NewBundleFromEnvironment() (Bundle, error) {
	c := bundleConfig{}
	if err := envconfig.Process(bundleEnvconfigPrefix, &c); err != nil {
		return Bundle{}, errors.Wrap(
			err,
			"error getting credentials configuration from environment",
		)
	}
	cookies, err := NewCookieStore()
	if err != nil {
		return Bundle{}, err
	}
	var durable Store
	switch c.Backend {
	case "file":
		if durable, err = NewDurableFileStore(); err != nil {
			return Bundle{}, err
		}
	case "redis":
		if durable, err = NewRedisStore(); err != nil {
			return Bundle{}, err
		}
	default:
		return Bundle{}, errors.Errorf(
			"unrecognized credentials backend %q",
			c.Backend,
		)
	}
	return Bundle{Cookies: cookies, Durable: durable}, nil
}

// StoreSession persists everything a fresh login or registration yields: the
// access token and user snapshot into the cookie store and the refresh token
// into the durable store.
func (b Bundle) StoreSession(
	user storefront.UserRecord,
	tokens storefront.TokenPair,
) error {
	if err := b.Cookies.Set(KeyAccessToken, tokens.AccessToken); err != nil {
		return err
	}
	if err := b.StoreUserSnapshot(user); err != nil {
		return err
	}
	return b.Durable.Set(KeyRefreshToken, tokens.RefreshToken)
}

// StoreTokens replaces both credentials, e.g. after a refresh.
func (b Bundle) StoreTokens(tokens storefront.TokenPair) error {
	if err := b.Cookies.Set(KeyAccessToken, tokens.AccessToken); err != nil {
		return err
	}
	return b.Durable.Set(KeyRefreshToken, tokens.RefreshToken)
}

// StoreUserSnapshot caches the serialized user record alongside the access
// token for quick checks that shouldn't cost a round trip.
func (b Bundle) StoreUserSnapshot(user storefront.UserRecord) error {
	userBytes, err := json.Marshal(user)
	if err != nil {
		return errors.Wrap(err, "error marshaling user snapshot")
	}
	return b.Cookies.Set(KeyUserData, string(userBytes))
}

// ClearSession removes the access token, the user snapshot, and the refresh
// token.
func (b Bundle) ClearSession() error {
	if err := b.Cookies.Remove(KeyAccessToken); err != nil {
		return err
	}
	if err := b.Cookies.Remove(KeyUserData); err != nil {
		return err
	}
	return b.Durable.Remove(KeyRefreshToken)
}

// UserSnapshot returns the cached user record, or nil when none is persisted.
func (b Bundle) UserSnapshot() (*storefront.UserRecord, error) {
	userJSON, err := b.Cookies.Get(KeyUserData)
	if err != nil || userJSON == "" {
		return nil, err
	}
	user := storefront.UserRecord{}
	if err := json.Unmarshal([]byte(userJSON), &user); err != nil {
		return nil, errors.Wrap(err, "error parsing cached user snapshot")
	}
	return &user, nil
}

func (b Bundle) AccessToken() (string, error) {
	return b.Cookies.Get(KeyAccessToken)
}

func (b Bundle) RefreshToken() (string, error) {
	return b.Durable.Get(KeyRefreshToken)
}
