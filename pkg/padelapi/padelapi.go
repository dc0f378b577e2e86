// Package padelapi is an API client for the padel ranking data service.
//
// The service exposes a single query endpoint ("/data") selecting a
// snapshot through a boolean query parameter, and three JSON mutation
// endpoints below it (add_player, add_game, delete_game).
package padelapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"net/url"
	"path"
	"time"

	"golang.org/x/time/rate"
)

// Client holds the necessary state to communicate with the ranking service.
type Client struct {
	http    http.Client
	base    url.URL
	limiter *rate.Limiter
}

// New creates a rate-limited access point to the service at baseURL.
func New(baseURL string) (*Client, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("unable to parse base URL: %w", err)
	}

	return &Client{
		// The service recomputes every rating on each rankings query,
		// don't hammer it.
		limiter: rate.NewLimiter(5, 1),
		base:    *base,
		http: http.Client{
			Timeout: 10 * time.Second,
		},
	}, nil
}

func (c *Client) getURL(subPath string, q url.Values) string {
	u := c.base
	u.Path = path.Join(u.Path, "/data", subPath)
	u.RawQuery = q.Encode()

	return u.String()
}

// ResponseError is the failure answer of the service: either a
// non-success HTTP status or a payload that could not be decoded.
// Message carries the server-provided text when there was one.
type ResponseError struct {
	StatusCode int
	Message    string
}

func (e *ResponseError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("got status code %d", e.StatusCode)
	}

	return fmt.Sprintf("got status code %d: %s", e.StatusCode, e.Message)
}

// message is the body of every mutation answer, on both the success and
// the failure path.
type message struct {
	Success int    `json:"success"`
	Message string `json:"message"`
}

// do performs a rate-limited request and JSON-decodes the response body
// into response. If response is nil the body is discarded.
// Transport failures are returned wrapped, anything the server answered
// with a non-success status or an undecodable body is a *ResponseError.
func (c *Client) do(request *http.Request, response interface{}) error {
	if err := c.limiter.Wait(request.Context()); err != nil {
		return err
	}

	res, err := c.http.Do(request)
	if err != nil {
		return fmt.Errorf("unable to perform HTTP request: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return &ResponseError{
			StatusCode: res.StatusCode,
			Message:    serverMessage(res.Body),
		}
	}

	if response == nil {
		return nil
	}

	dec := json.NewDecoder(res.Body)
	if err := dec.Decode(&response); err != nil {
		return &ResponseError{
			StatusCode: res.StatusCode,
			Message:    fmt.Sprintf("unable to parse response: %s", err),
		}
	}

	return nil
}

// serverMessage fishes the "message" field out of a failure body, best
// effort.
func serverMessage(r io.Reader) string {
	body, err := ioutil.ReadAll(r)
	if err != nil {
		return ""
	}

	var m message
	if err := json.Unmarshal(body, &m); err != nil {
		return ""
	}

	return m.Message
}

func (c *Client) get(ctx context.Context, q url.Values, response interface{}) error {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, c.getURL("", q), nil)
	if err != nil {
		return err
	}

	return c.do(request, response)
}

func (c *Client) post(ctx context.Context, subPath string, body interface{}) (string, error) {
	buf, err := json.Marshal(body)
	if err != nil {
		return "", err
	}

	request, err := http.NewRequestWithContext(
		ctx, http.MethodPost,
		c.getURL(subPath, url.Values{}),
		bytes.NewReader(buf),
	)
	if err != nil {
		return "", err
	}
	request.Header.Set("Content-Type", "application/json; charset=utf-8")

	var m message
	if err := c.do(request, &m); err != nil {
		return "", err
	}

	// Old deployments answer failures with a 200 and a zero success
	// flag, fold those into the status-based path.
	if m.Success == 0 {
		return "", &ResponseError{StatusCode: http.StatusOK, Message: m.Message}
	}

	return m.Message, nil
}
