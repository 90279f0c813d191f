package verify

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

const defaultVerifyURL = "https://www.google.com/recaptcha/api/siteverify"

// Verifier relays reCAPTCHA tokens to the verification service and
// returns the raw verdict bytes. It makes no decision itself; the
// client renders the verdict.
type Verifier struct {
	secret    string
	client    *http.Client
	verifyURL string
}

func NewVerifier(secret string, client *http.Client) *Verifier {
	return &Verifier{
		secret:    secret,
		client:    client,
		verifyURL: defaultVerifyURL,
	}
}

// Verify posts the token plus the server secret and returns the
// verdict JSON verbatim. A transport failure or non-2xx upstream
// status is an error; there are no retries.
func (v *Verifier) Verify(ctx context.Context, token string) ([]byte, error) {
	form := url.Values{}
	form.Set("secret", v.secret)
	form.Set("response", token)

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		v.verifyURL,
		strings.NewReader(form.Encode()),
	)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := v.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("recaptcha verify failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("recaptcha verify failed: %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("recaptcha verify read failed: %w", err)
	}
	return body, nil
}
