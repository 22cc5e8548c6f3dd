package storefront

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"

	"github.com/pkg/errors"
	uuid "github.com/satori/go.uuid"
)

// apiResponse is the envelope common to every storefront API response. The
// server reports application-level failures with success=false, frequently
// with a 200 status, so transport success and operation success are checked
// independently.
type apiResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

func (r apiResponse) succeeded() bool { return r.Success }
func (r apiResponse) failureMsg() string {
	if r.Message == "" {
		return "the server reported a failure without further detail"
	}
	return r.Message
}

type envelope interface {
	succeeded() bool
	failureMsg() string
}

type baseClient struct {
	apiAddress string
	httpClient *http.Client
}

func (b *baseClient) bearerTokenAuthHeaders(
	accessToken string,
) map[string]string {
	return map[string]string{
		"Authorization": fmt.Sprintf("Bearer %s", accessToken),
	}
}

func (b *baseClient) executeAPIRequest(
	ctx context.Context,
	apiReq apiRequest,
) error {
	resp, err := b.submitAPIRequest(ctx, apiReq)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if apiReq.respObj != nil {
		respBodyBytes, err := ioutil.ReadAll(resp.Body)
		if err != nil {
			return errors.Wrap(err, "error reading response body")
		}
		if err := json.Unmarshal(respBodyBytes, apiReq.respObj); err != nil {
			return errors.Wrap(err, "error unmarshaling response body")
		}
		if env, ok := apiReq.respObj.(envelope); ok && !env.succeeded() {
			return NewErrAPI(env.failureMsg())
		}
	}
	return nil
}

func (b *baseClient) submitAPIRequest(
	ctx context.Context,
	apiReq apiRequest,
) (*http.Response, error) {
	var reqBodyReader io.Reader
	if apiReq.reqBodyObj != nil {
		switch rb := apiReq.reqBodyObj.(type) {
		case []byte:
			reqBodyReader = bytes.NewBuffer(rb)
		default:
			reqBodyBytes, err := json.Marshal(apiReq.reqBodyObj)
			if err != nil {
				return nil, errors.Wrap(err, "error marshaling request body")
			}
			reqBodyReader = bytes.NewBuffer(reqBodyBytes)
		}
	}

	req, err := http.NewRequestWithContext(
		ctx,
		apiReq.method,
		fmt.Sprintf("%s/%s", b.apiAddress, apiReq.path),
		reqBodyReader,
	)
	if err != nil {
		return nil, errors.Wrapf(
			err,
			"error creating request %s %s",
			apiReq.method,
			apiReq.path,
		)
	}
	if len(apiReq.queryParams) > 0 {
		q := req.URL.Query()
		for k, v := range apiReq.queryParams {
			q.Set(k, v)
		}
		req.URL.RawQuery = q.Encode()
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewV4().String())
	for k, v := range apiReq.authHeaders {
		req.Header.Add(k, v)
	}
	for k, v := range apiReq.headers {
		req.Header.Add(k, v)
	}

	resp, err := b.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "error invoking API")
	}

	if (apiReq.successCode == 0 && resp.StatusCode != http.StatusOK) ||
		(apiReq.successCode != 0 && resp.StatusCode != apiReq.successCode) {
		defer resp.Body.Close()
		// The HTTP response code hints at what sort of error might be in the
		// body of the response
		env := apiResponse{}
		bodyBytes, err := ioutil.ReadAll(resp.Body)
		if err != nil {
			return nil, errors.Wrap(err, "error reading error response body")
		}
		// A body that isn't the standard envelope is tolerated; the typed
		// error then simply carries no server-supplied message.
		json.Unmarshal(bodyBytes, &env) // nolint: errcheck
		var apiErr error
		switch resp.StatusCode {
		case http.StatusUnauthorized:
			apiErr = NewErrAuthentication(env.Message)
		case http.StatusForbidden:
			apiErr = NewErrAuthorization(env.Message)
		case http.StatusBadRequest:
			apiErr = NewErrBadRequest(env.Message)
		case http.StatusNotFound:
			apiErr = NewErrNotFound(env.Message)
		case http.StatusInternalServerError:
			apiErr = NewErrInternalServer()
		default:
			return nil, errors.Errorf(
				"received %d from the storefront API",
				resp.StatusCode,
			)
		}
		return nil, apiErr
	}
	return resp, nil
}
