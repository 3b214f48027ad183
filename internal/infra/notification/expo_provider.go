package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"regexp"
	"time"

	"flock/config"
	"flock/internal/domain/entity"
	"flock/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	// DefaultExpoAPIURL is Expo's push send endpoint.
	DefaultExpoAPIURL = "https://exp.host/--/api/v2/push/send"
	// ExpoMaxBatchSize is the most messages Expo accepts per request.
	ExpoMaxBatchSize = 100

	defaultExpoTimeout = 15 * time.Second
)

var (
	expoTokenPattern = regexp.MustCompile(`^(Exponent|Expo)PushToken\[.+\]$`)
	// Expo also accepts bare device UUIDs for legacy clients.
	expoUUIDPattern = regexp.MustCompile(`(?i)^[a-z\d]{8}-[a-z\d]{4}-[a-z\d]{4}-[a-z\d]{4}-[a-z\d]{12}$`)
)

type expoTicket struct {
	Status  string `json:"status"`
	ID      string `json:"id,omitempty"`
	Message string `json:"message,omitempty"`
	Details *struct {
		Error string `json:"error,omitempty"`
	} `json:"details,omitempty"`
}

type expoResponse struct {
	Data   []expoTicket `json:"data"`
	Errors []struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"errors,omitempty"`
}

// expoProvider sends pushes through the Expo push service over HTTPS.
type expoProvider struct {
	apiURL      string
	accessToken string
	httpClient  *http.Client
}

// NewExpoProvider creates an Expo push provider.
func NewExpoProvider(cfg config.ExpoConfig) service.PushProvider {
	apiURL := cfg.APIURL
	if apiURL == "" {
		apiURL = DefaultExpoAPIURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultExpoTimeout
	}

	return &expoProvider{
		apiURL:      apiURL,
		accessToken: cfg.AccessToken,
		httpClient:  &http.Client{Timeout: timeout},
	}
}

func (p *expoProvider) Name() string {
	return "expo"
}

func (p *expoProvider) MaxBatchSize() int {
	return ExpoMaxBatchSize
}

func (p *expoProvider) IsValidToken(token string) bool {
	return expoTokenPattern.MatchString(token) || expoUUIDPattern.MatchString(token)
}

// Send posts one batch and maps Expo's ticket list back onto the messages.
func (p *expoProvider) Send(ctx context.Context, messages []service.PushMessage) ([]entity.DispatchTicket, error) {
	if len(messages) == 0 {
		return nil, nil
	}
	if len(messages) > ExpoMaxBatchSize {
		return nil, errors.Errorf("batch size %d exceeds expo limit %d", len(messages), ExpoMaxBatchSize)
	}

	body, err := json.Marshal(messages)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.apiURL, bytes.NewReader(body))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if p.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+p.accessToken)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "expo push request failed")
	}
	defer resp.Body.Close()

	var parsed expoResponse
	decodeErr := json.NewDecoder(resp.Body).Decode(&parsed)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if decodeErr == nil && len(parsed.Errors) > 0 {
			return nil, errors.Errorf("expo returned status %d: %s: %s", resp.StatusCode, parsed.Errors[0].Code, parsed.Errors[0].Message)
		}

		return nil, errors.Errorf("expo returned status %d", resp.StatusCode)
	}
	if decodeErr != nil {
		return nil, errors.Wrap(decodeErr, "failed to decode expo response")
	}
	if len(parsed.Data) != len(messages) {
		return nil, errors.Errorf("expo returned %d tickets for %d messages", len(parsed.Data), len(messages))
	}

	tickets := make([]entity.DispatchTicket, len(messages))
	for i, t := range parsed.Data {
		tickets[i] = entity.DispatchTicket{
			Token:   messages[i].To,
			Status:  entity.TicketStatus(t.Status),
			ID:      t.ID,
			Message: t.Message,
		}
		if t.Details != nil {
			tickets[i].ErrorDetail = t.Details.Error
		}
	}

	return tickets, nil
}
