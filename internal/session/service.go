package session

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/stellarburgers/storefront"
	"github.com/stellarburgers/storefront/internal/credentials"
)

// Service orchestrates the session lifecycle: login, registration, password
// reset, logout, and startup re-validation. It is the only component that
// mutates the session store and the only one that touches credential
// persistence. Every operation follows the same three-phase pattern--
// pending effects on entry, then either fulfilled or rejected effects.
type Service interface {
	Login(ctx context.Context, email, password string) error
	Register(ctx context.Context, name, email, password string) error
	FetchCurrentUser(ctx context.Context) error
	UpdateUser(ctx context.Context, update storefront.UserUpdate) error
	RequestPasswordReset(ctx context.Context, email string) error
	ConfirmPasswordReset(
		ctx context.Context,
		password string,
		resetToken string,
	) error
	Logout(ctx context.Context) error
	// Revalidate performs the startup session check: if a refresh token is
	// persisted, it refreshes the access token as needed and re-fetches the
	// profile. It always concludes with the session marked checked.
	Revalidate(ctx context.Context) error
	// Revalidating reports whether a Revalidate call is outstanding. The
	// route guard renders a placeholder instead of a decision while it is.
	Revalidating() bool
	Snapshot() Session
}

type service struct {
	store        *Store
	authClient   storefront.AuthClient
	creds        credentials.Bundle
	validate     *validator.Validate
	revalidating chan struct{} // holds a token while Revalidate runs
}

func NewService(
	store *Store,
	authClient storefront.AuthClient,
	creds credentials.Bundle,
) Service {
	return &service{
		store:        store,
		authClient:   authClient,
		creds:        creds,
		validate:     validator.New(),
		revalidating: make(chan struct{}, 1),
	}
}

func (s *service) Snapshot() Session {
	return s.store.Snapshot()
}

type loginInput struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
}

type registerInput struct {
	Name     string `validate:"required"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
}

func (s *service) Login(ctx context.Context, email, password string) error {
	gen := s.store.begin(opLogin, func(sess *Session) {
		sess.Loading = true
	})
	loginRejected := func(sess *Session) {
		sess.Loading = false
		sess.Authenticated = false
		sess.Checked = true
		sess.User = nil
		sess.Err = "incorrect login or password"
	}
	if err := s.validate.Struct(loginInput{
		Email:    email,
		Password: password,
	}); err != nil {
		s.store.conclude(opLogin, gen, loginRejected)
		return errors.Wrap(err, "invalid login input")
	}
	result, err := s.authClient.Login(ctx, email, password)
	if err != nil {
		s.store.conclude(opLogin, gen, loginRejected)
		return errors.Wrap(err, "error logging in")
	}
	if !s.store.conclude(opLogin, gen, func(sess *Session) {
		sess.Loading = false
		sess.Authenticated = true
		sess.Checked = true
		sess.User = &result.User
		sess.Err = ""
	}) {
		// A newer login superseded this one; its result must not clobber the
		// newer request's persisted credentials either.
		return nil
	}
	return s.creds.StoreSession(result.User, result.Tokens)
}

func (s *service) Register(
	ctx context.Context,
	name string,
	email string,
	password string,
) error {
	gen := s.store.begin(opRegister, func(sess *Session) {
		sess.Loading = true
	})
	registerRejected := func(sess *Session) {
		sess.Loading = false
		sess.Authenticated = false
		sess.Checked = true
		sess.User = nil
		sess.Err = "something went wrong"
	}
	if err := s.validate.Struct(registerInput{
		Name:     name,
		Email:    email,
		Password: password,
	}); err != nil {
		s.store.conclude(opRegister, gen, registerRejected)
		return errors.Wrap(err, "invalid registration input")
	}
	result, err := s.authClient.Register(ctx, name, email, password)
	if err != nil {
		s.store.conclude(opRegister, gen, registerRejected)
		return errors.Wrap(err, "error registering")
	}
	if !s.store.conclude(opRegister, gen, func(sess *Session) {
		sess.Loading = false
		sess.Authenticated = true
		sess.Checked = true
		sess.User = &result.User
		sess.Err = ""
	}) {
		return nil
	}
	return s.creds.StoreSession(result.User, result.Tokens)
}

func (s *service) FetchCurrentUser(ctx context.Context) error {
	gen := s.store.begin(opFetchUser, func(sess *Session) {
		sess.Loading = true
	})
	accessToken, err := s.creds.AccessToken()
	if err == nil && accessToken == "" {
		err = errors.New("no access token is persisted")
	}
	if err == nil {
		var user storefront.UserRecord
		if user, err = s.authClient.GetUser(ctx, accessToken); err == nil {
			s.store.conclude(opFetchUser, gen, func(sess *Session) {
				sess.Loading = false
				sess.Authenticated = true
				sess.Checked = true
				sess.User = &user
				sess.Err = ""
			})
			return nil
		}
	}
	// Authenticated is deliberately left at its prior value here; a failed
	// profile fetch concludes the check without deciding the session's fate.
	s.store.conclude(opFetchUser, gen, func(sess *Session) {
		sess.Loading = false
		sess.Checked = true
	})
	return errors.Wrap(err, "error fetching current user")
}

func (s *service) UpdateUser(
	ctx context.Context,
	update storefront.UserUpdate,
) error {
	gen := s.store.begin(opUpdateUser, func(sess *Session) {
		// Optimistic: only an authenticated client can get here.
		sess.Authenticated = true
		sess.Loading = true
	})
	fail := func(err error, msg string) error {
		s.store.conclude(opUpdateUser, gen, func(sess *Session) {
			sess.Loading = false
			sess.Authenticated = false
			sess.Err = "something went wrong"
		})
		return errors.Wrap(err, msg)
	}
	accessToken, err := s.creds.AccessToken()
	if err != nil {
		return fail(err, "error reading access token")
	}
	user, err := s.authClient.UpdateUser(ctx, accessToken, update)
	if err != nil {
		return fail(err, "error updating user")
	}
	if !s.store.conclude(opUpdateUser, gen, func(sess *Session) {
		sess.Loading = false
		sess.User = &user
		sess.Err = ""
	}) {
		return nil
	}
	return s.creds.StoreUserSnapshot(user)
}

func (s *service) RequestPasswordReset(
	ctx context.Context,
	email string,
) error {
	gen := s.store.begin(opRequestReset, func(sess *Session) {
		sess.Loading = true
	})
	if err := s.validate.Var(email, "required,email"); err != nil {
		s.store.conclude(opRequestReset, gen, func(sess *Session) {
			sess.Loading = false
			sess.Err = "something went wrong"
		})
		return errors.Wrap(err, "invalid email")
	}
	if err := s.authClient.RequestPasswordReset(ctx, email); err != nil {
		s.store.conclude(opRequestReset, gen, func(sess *Session) {
			sess.Loading = false
			sess.Err = "something went wrong"
		})
		return errors.Wrap(err, "error requesting password reset")
	}
	s.store.conclude(opRequestReset, gen, func(sess *Session) {
		sess.Loading = false
		sess.Authenticated = true
		sess.Err = ""
	})
	return nil
}

func (s *service) ConfirmPasswordReset(
	ctx context.Context,
	password string,
	resetToken string,
) error {
	gen := s.store.begin(opConfirmReset, func(sess *Session) {
		sess.Loading = true
	})
	rejected := func(sess *Session) {
		sess.Loading = false
		sess.Err = "something went wrong"
	}
	if err := s.validate.Var(password, "required,min=6"); err != nil {
		s.store.conclude(opConfirmReset, gen, rejected)
		return errors.Wrap(err, "invalid password")
	}
	if err := s.authClient.ConfirmPasswordReset(
		ctx,
		password,
		resetToken,
	); err != nil {
		s.store.conclude(opConfirmReset, gen, rejected)
		return errors.Wrap(err, "error confirming password reset")
	}
	// Clearing Checked here is intentional: a completed password reset
	// forces the next guard evaluation back through re-validation.
	s.store.conclude(opConfirmReset, gen, func(sess *Session) {
		sess.Authenticated = true
		sess.Checked = false
		sess.Err = ""
	})
	return nil
}

func (s *service) Logout(ctx context.Context) error {
	gen := s.store.begin(opLogout, func(sess *Session) {
		sess.Loading = true
	})
	refreshToken, err := s.creds.RefreshToken()
	if err != nil {
		s.store.conclude(opLogout, gen, func(sess *Session) {
			sess.Loading = false
		})
		return errors.Wrap(err, "error reading refresh token")
	}
	if refreshToken == "" {
		s.store.conclude(opLogout, gen, func(sess *Session) {
			sess.Loading = false
		})
		return NewPreconditionError("a refresh token is required to log out")
	}
	// Even if the session can't be deleted server-side, the local teardown
	// proceeds-- responsiveness over strict consistency.
	if err := s.authClient.Logout(ctx, refreshToken); err != nil {
		glog.Warningf("server-side logout failed: %s", err)
	}
	s.store.conclude(opLogout, gen, func(sess *Session) {
		*sess = Session{}
	})
	return s.creds.ClearSession()
}
