package bamboohr

import (
	"bytes"
	"context"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
)

// Outcome is what the transport handed back for one request.
type Outcome struct {
	Err        error
	StatusCode int
	Header     http.Header
	Body       []byte
}

type outcomeHandler[T any] func(r *Request, out *Outcome) (T, error)

// statusPolicy maps a status code to the handler for it. Statuses without an
// entry are reported as unexpected.
type statusPolicy[T any] map[int]outcomeHandler[T]

func (c *client) do(ctx context.Context, r *Request) *Outcome {
	contextLogger := log.WithContext(ctx)

	endpoint := c.URL + r.Path
	if len(r.Query) > 0 {
		endpoint += "?" + r.Query.Encode()
	}

	var body io.Reader
	if r.Body != nil {
		body = bytes.NewReader(r.Body)
	}

	httpRequest, err := http.NewRequestWithContext(ctx, r.Method, endpoint, body)
	if err != nil {
		return &Outcome{Err: err}
	}
	for key, values := range r.Header {
		httpRequest.Header[key] = values
	}
	httpRequest.SetBasicAuth(c.APIKey, basicAuthPassword)

	resp, err := c.HTTPCommand.Do(httpRequest)
	if err != nil {
		contextLogger.WithError(err).Errorf("there was an error calling the bamboohr API. %v", err)
		return &Outcome{Err: err}
	}

	defer func() {
		if err = resp.Body.Close(); err != nil {
			contextLogger.WithError(err).Errorf("Error closing the ioReader. %v", err)
		}
	}()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		contextLogger.WithError(err).Errorf("error reading bamboohr API resp body for %s", r.Path)
		return &Outcome{Err: err}
	}

	return &Outcome{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       data,
	}
}

// call executes r and translates what came back according to policy.
func call[T any](ctx context.Context, c *client, r *Request, policy statusPolicy[T]) (T, error) {
	return translate(ctx, r, c.do(ctx, r), policy)
}

func translate[T any](ctx context.Context, r *Request, out *Outcome, policy statusPolicy[T]) (T, error) {
	var zero T
	contextLogger := log.WithContext(ctx)

	if out.Err != nil {
		return zero, &Error{
			Kind:    ErrTransport,
			Path:    r.Path,
			Message: fmt.Sprintf("error executing request to %s", r.Path),
			Err:     out.Err,
		}
	}

	// An empty body is an error whatever the status says.
	if len(bytes.TrimSpace(out.Body)) == 0 {
		contextLogger.Errorf("empty response from bamboohr at %s, status %d", r.Path, out.StatusCode)
		return zero, &Error{
			Kind:       ErrEmptyResponse,
			Path:       r.Path,
			StatusCode: out.StatusCode,
			Message:    fmt.Sprintf("empty response from remote at %s, status=%d", r.Path, out.StatusCode),
		}
	}

	handle, ok := policy[out.StatusCode]
	if !ok {
		err := unexpectedStatus(r, out)
		contextLogger.WithError(err).Errorf("bamboohr returned an unexpected status for %s", r.Path)
		return zero, err
	}

	value, err := handle(r, out)
	if err != nil {
		contextLogger.WithError(err).Infof("bamboohr call to %s failed", r.Path)
	}
	return value, err
}

func statusError(kind error, r *Request, out *Outcome, message string) *Error {
	remote := out.Header.Get(errorMessageHeader)
	return &Error{
		Kind:          kind,
		Path:          r.Path,
		StatusCode:    out.StatusCode,
		RemoteMessage: remote,
		Message:       strings.TrimSpace(message+" "+remote) + " at " + r.Path,
	}
}

func unexpectedStatus(r *Request, out *Outcome) *Error {
	message := fmt.Sprintf("remote threw error code %d (%s)", out.StatusCode, http.StatusText(out.StatusCode))
	return statusError(ErrUnexpectedStatus, r, out, message)
}

func missingData(r *Request, out *Outcome) *Error {
	return &Error{
		Kind:       ErrMissingData,
		Path:       r.Path,
		StatusCode: out.StatusCode,
		Message:    "response does not contain the expected data at " + r.Path,
	}
}

func malformed(r *Request, out *Outcome, err error) *Error {
	return &Error{
		Kind:       ErrMalformedResponse,
		Path:       r.Path,
		StatusCode: out.StatusCode,
		Message:    "could not decode response from " + r.Path,
		Err:        err,
	}
}

// decodeBody decodes the body in the format the request asked for. A body
// that decodes to null is missing data.
func decodeBody[T any]() outcomeHandler[T] {
	return func(r *Request, out *Outcome) (T, error) {
		var zero T
		body := out.Body
		if r.Preprocess != nil {
			body = r.Preprocess(body)
		}

		var value *T
		var err error
		if r.Mode == XMLMode {
			err = xml.Unmarshal(body, &value)
		} else {
			err = json.Unmarshal(body, &value)
		}
		if err != nil {
			return zero, malformed(r, out, err)
		}
		if value == nil {
			return zero, missingData(r, out)
		}
		return *value, nil
	}
}

func rawBody() outcomeHandler[[]byte] {
	return func(r *Request, out *Outcome) ([]byte, error) {
		return out.Body, nil
	}
}

func acknowledge() outcomeHandler[bool] {
	return func(*Request, *Outcome) (bool, error) {
		return true, nil
	}
}

var trailingDigits = regexp.MustCompile(`\d+$`)

// createdID reads the id of a created resource from the trailing digits of
// the Location header.
func createdID() outcomeHandler[int] {
	return func(r *Request, out *Outcome) (int, error) {
		digits := trailingDigits.FindString(strings.TrimSpace(out.Header.Get(headerLocation)))
		if digits == "" {
			return 0, missingData(r, out)
		}
		id, err := strconv.Atoi(digits)
		if err != nil {
			return 0, malformed(r, out, err)
		}
		return id, nil
	}
}

func failWith[T any](kind error, format string, args ...interface{}) outcomeHandler[T] {
	message := fmt.Sprintf(format, args...)
	return func(r *Request, out *Outcome) (T, error) {
		var zero T
		return zero, statusError(kind, r, out, message)
	}
}
