package identity

import (
	"encoding/json"
	"fmt"
	"net/http"

	log "github.com/sirupsen/logrus"
)

const logPrefix = "identity"

// Identity describes the current actor as reported by the identity
// service: the volunteer's subject id, email, and role set.
type Identity struct {
	Subject string   `json:"sub"`
	Email   string   `json:"email"`
	Roles   []string `json:"roles"`
}

// Source resolves a bearer token into an Identity. Lookup failures are
// returned as *Error so callers can fail open instead of dropping the
// request.
type Source interface {
	Current(token string) (*Identity, error)
}

// Error wraps any failure talking to the identity service. The calling
// workflow never propagates it raw; reports survive identity outages
// with an UNKNOWN reporter.
type Error struct {
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("identity lookup failed: %s", e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Client - http client of the identity service
type Client struct {
	endpoint   string
	httpClient *http.Client
}

func NewClient(endpoint string, httpClient *http.Client) *Client {
	return &Client{
		endpoint:   endpoint,
		httpClient: httpClient,
	}
}

func (c *Client) Current(token string) (*Identity, error) {
	req, err := http.NewRequest("GET", c.endpoint+"/userinfo", nil)
	if err != nil {
		return nil, &Error{Err: err}
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.WithFields(log.Fields{
			"prefix": logPrefix,
			"error":  err,
		}).Warn("identity service unreachable")
		return nil, &Error{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &Error{Err: fmt.Errorf("identity service returned %d", resp.StatusCode)}
	}

	var id Identity
	if err := json.NewDecoder(resp.Body).Decode(&id); err != nil {
		return nil, &Error{Err: err}
	}

	return &id, nil
}
