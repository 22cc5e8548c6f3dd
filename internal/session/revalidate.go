package session

import (
	"context"
	"time"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/stellarburgers/storefront"
)

// accessTokenSkew is how close to its expiry an access token may be before
// re-validation takes the refresh path instead of presenting it.
const accessTokenSkew = 30 * time.Second

func (s *service) Revalidating() bool {
	return len(s.revalidating) > 0
}

func (s *service) Revalidate(ctx context.Context) error {
	select {
	case s.revalidating <- struct{}{}:
	default:
		// A re-validation is already outstanding; don't pile on another.
		return nil
	}
	defer func() { <-s.revalidating }()

	refreshToken, err := s.creds.RefreshToken()
	if err != nil {
		s.store.markChecked()
		return errors.Wrap(err, "error reading refresh token")
	}
	if refreshToken == "" {
		// Nothing to re-validate; the check still concludes.
		s.store.markChecked()
		return nil
	}

	accessToken, err := s.creds.AccessToken()
	if err != nil {
		s.store.markChecked()
		return errors.Wrap(err, "error reading access token")
	}
	if accessToken == "" || storefront.TokenStale(accessToken, accessTokenSkew) {
		glog.V(2).Info("access token absent or stale; refreshing")
		tokens, err := s.authClient.RefreshToken(ctx, refreshToken)
		if err != nil {
			s.store.markChecked()
			return errors.Wrap(err, "error refreshing access token")
		}
		if err := s.creds.StoreTokens(tokens); err != nil {
			s.store.markChecked()
			return errors.Wrap(err, "error persisting refreshed tokens")
		}
	}

	// FetchCurrentUser concludes with Checked set whether it succeeds or not.
	return s.FetchCurrentUser(ctx)
}
