package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

// SupabaseVerifier exchanges credentials against the Supabase GoTrue
// password grant. Any non-200 answer is an invalid-credentials result; the
// provider's own message is never forwarded to the client.
type SupabaseVerifier struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewSupabaseVerifier(baseURL, apiKey string) *SupabaseVerifier {
	return &SupabaseVerifier{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

type passwordGrantRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type passwordGrantResponse struct {
	User struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	} `json:"user"`
}

func (v *SupabaseVerifier) VerifyPassword(ctx context.Context, email, password string) (*Identity, error) {
	payload, err := json.Marshal(passwordGrantRequest{Email: email, Password: password})
	if err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/auth/v1/token?grant_type=password", v.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", v.apiKey)

	resp, err := v.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Debug().Int("status", resp.StatusCode).Msg("identity provider rejected credentials")
		return nil, ErrInvalidCredentials
	}

	var body passwordGrantResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}
	if body.User.ID == "" {
		return nil, ErrInvalidCredentials
	}

	return &Identity{ID: body.User.ID, Email: body.User.Email}, nil
}

var _ Verifier = (*SupabaseVerifier)(nil)
