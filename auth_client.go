package storefront

import (
	"context"
	"crypto/tls"
	"net/http"
)

// AuthResult is what a successful login or registration yields: the profile
// plus both credentials.
type AuthResult struct {
	User   UserRecord
	Tokens TokenPair
}

// AuthClient is the specialized client for the storefront API's account and
// session endpoints. Every call is a single round trip-- no retries, no
// caching, no client-side state.
type AuthClient interface {
	Login(ctx context.Context, email, password string) (AuthResult, error)
	Register(
		ctx context.Context,
		name string,
		email string,
		password string,
	) (AuthResult, error)
	GetUser(ctx context.Context, accessToken string) (UserRecord, error)
	UpdateUser(
		ctx context.Context,
		accessToken string,
		update UserUpdate,
	) (UserRecord, error)
	RequestPasswordReset(ctx context.Context, email string) error
	ConfirmPasswordReset(
		ctx context.Context,
		password string,
		resetToken string,
	) error
	RefreshToken(ctx context.Context, refreshToken string) (TokenPair, error)
	Logout(ctx context.Context, refreshToken string) error
}

type authClient struct {
	*baseClient
}

// NewAuthClient returns a specialized client for the storefront API's account
// and session endpoints.
func NewAuthClient(apiAddress string, allowInsecure bool) AuthClient {
	return &authClient{
		baseClient: &baseClient{
			apiAddress: apiAddress,
			httpClient: &http.Client{
				Transport: &http.Transport{
					TLSClientConfig: &tls.Config{
						InsecureSkipVerify: allowInsecure, // nolint: gosec
					},
				},
			},
		},
	}
}

type authResponse struct {
	apiResponse
	AccessToken  string     `json:"accessToken"`
	RefreshToken string     `json:"refreshToken"`
	User         UserRecord `json:"user"`
}

func (a *authClient) Login(
	ctx context.Context,
	email string,
	password string,
) (AuthResult, error) {
	respObj := authResponse{}
	err := a.executeAPIRequest(
		ctx,
		apiRequest{
			method: http.MethodPost,
			path:   "auth/login",
			reqBodyObj: struct {
				Email    string `json:"email"`
				Password string `json:"password"`
			}{
				Email:    email,
				Password: password,
			},
			successCode: http.StatusOK,
			respObj:     &respObj,
		},
	)
	if err != nil {
		return AuthResult{}, err
	}
	return AuthResult{
		User: respObj.User,
		Tokens: TokenPair{
			AccessToken:  stripBearer(respObj.AccessToken),
			RefreshToken: respObj.RefreshToken,
		},
	}, nil
}

func (a *authClient) Register(
	ctx context.Context,
	name string,
	email string,
	password string,
) (AuthResult, error) {
	respObj := authResponse{}
	err := a.executeAPIRequest(
		ctx,
		apiRequest{
			method: http.MethodPost,
			path:   "auth/register",
			reqBodyObj: struct {
				Name     string `json:"name"`
				Email    string `json:"email"`
				Password string `json:"password"`
			}{
				Name:     name,
				Email:    email,
				Password: password,
			},
			successCode: http.StatusOK,
			respObj:     &respObj,
		},
	)
	if err != nil {
		return AuthResult{}, err
	}
	return AuthResult{
		User: respObj.User,
		Tokens: TokenPair{
			AccessToken:  stripBearer(respObj.AccessToken),
			RefreshToken: respObj.RefreshToken,
		},
	}, nil
}

func (a *authClient) GetUser(
	ctx context.Context,
	accessToken string,
) (UserRecord, error) {
	respObj := struct {
		apiResponse
		User UserRecord `json:"user"`
	}{}
	return respObj.User, a.executeAPIRequest(
		ctx,
		apiRequest{
			method:      http.MethodGet,
			path:        "auth/user",
			authHeaders: a.bearerTokenAuthHeaders(accessToken),
			successCode: http.StatusOK,
			respObj:     &respObj,
		},
	)
}

func (a *authClient) UpdateUser(
	ctx context.Context,
	accessToken string,
	update UserUpdate,
) (UserRecord, error) {
	respObj := struct {
		apiResponse
		User UserRecord `json:"user"`
	}{}
	return respObj.User, a.executeAPIRequest(
		ctx,
		apiRequest{
			method:      http.MethodPatch,
			path:        "auth/user",
			authHeaders: a.bearerTokenAuthHeaders(accessToken),
			reqBodyObj:  update,
			successCode: http.StatusOK,
			respObj:     &respObj,
		},
	)
}

func (a *authClient) RequestPasswordReset(
	ctx context.Context,
	email string,
) error {
	respObj := apiResponse{}
	return a.executeAPIRequest(
		ctx,
		apiRequest{
			method: http.MethodPost,
			path:   "password-reset",
			reqBodyObj: struct {
				Email string `json:"email"`
			}{
				Email: email,
			},
			successCode: http.StatusOK,
			respObj:     &respObj,
		},
	)
}

func (a *authClient) ConfirmPasswordReset(
	ctx context.Context,
	password string,
	resetToken string,
) error {
	respObj := apiResponse{}
	return a.executeAPIRequest(
		ctx,
		apiRequest{
			method: http.MethodPost,
			path:   "password-reset/reset",
			reqBodyObj: struct {
				Password string `json:"password"`
				Token    string `json:"token"`
			}{
				Password: password,
				Token:    resetToken,
			},
			successCode: http.StatusOK,
			respObj:     &respObj,
		},
	)
}

func (a *authClient) RefreshToken(
	ctx context.Context,
	refreshToken string,
) (TokenPair, error) {
	respObj := struct {
		apiResponse
		AccessToken  string `json:"accessToken"`
		RefreshToken string `json:"refreshToken"`
	}{}
	err := a.executeAPIRequest(
		ctx,
		apiRequest{
			method: http.MethodPost,
			path:   "auth/token",
			reqBodyObj: struct {
				Token string `json:"token"`
			}{
				Token: refreshToken,
			},
			successCode: http.StatusOK,
			respObj:     &respObj,
		},
	)
	if err != nil {
		return TokenPair{}, err
	}
	return TokenPair{
		AccessToken:  stripBearer(respObj.AccessToken),
		RefreshToken: respObj.RefreshToken,
	}, nil
}

func (a *authClient) Logout(
	ctx context.Context,
	refreshToken string,
) error {
	respObj := apiResponse{}
	return a.executeAPIRequest(
		ctx,
		apiRequest{
			method: http.MethodPost,
			path:   "auth/logout",
			reqBodyObj: struct {
				Token string `json:"token"`
			}{
				Token: refreshToken,
			},
			successCode: http.StatusOK,
			respObj:     &respObj,
		},
	)
}
