package service

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"

	smspkg "github.com/ramesh-vyboina/cluck-credit-tracker/sms"
)

// DefaultBaseURL is the Fast2SMS bulk endpoint.
const DefaultBaseURL = "https://www.fast2sms.com/dev/bulkV2"

// Fast2SMSService implements sms.Service against the Fast2SMS gateway.
// One implementation, one message convention: the request blocks for at most
// the caller's context deadline and the outcome is surfaced in the Result.
// There is no retry.
type Fast2SMSService struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewFast2SMSService constructs the sender. A missing API key is a
// configuration error and fails here, at startup, rather than on first send.
// baseURL may be empty to use the real gateway.
func NewFast2SMSService(apiKey, baseURL string) (*Fast2SMSService, error) {
	if apiKey == "" {
		return nil, smspkg.ErrMissingAPIKey
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Fast2SMSService{
		apiKey:  apiKey,
		baseURL: baseURL,
		client:  http.DefaultClient,
	}, nil
}

// SendTransactionSMS posts the formatted message to the gateway. A non-200
// response or transport failure is reported as Result{Status: "error"} with
// the gateway's body or the error text as detail; the error return is
// reserved for invalid input.
func (s *Fast2SMSService) SendTransactionSMS(ctx context.Context, req smspkg.SendRequest) (smspkg.Result, error) {
	msg, err := smspkg.Message(req)
	if err != nil {
		return smspkg.Result{}, err
	}

	form := url.Values{}
	form.Set("authorization", s.apiKey)
	form.Set("message", msg)
	form.Set("language", "english")
	form.Set("route", "q")
	form.Set("numbers", req.PhoneNumber)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL, strings.NewReader(form.Encode()))
	if err != nil {
		return smspkg.Result{Status: smspkg.StatusError, Detail: err.Error()}, nil
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return smspkg.Result{Status: smspkg.StatusError, Detail: err.Error()}, nil
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return smspkg.Result{Status: smspkg.StatusError, Detail: string(body)}, nil
	}
	return smspkg.Result{Status: smspkg.StatusSent}, nil
}
