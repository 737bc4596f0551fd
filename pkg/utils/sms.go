package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"
)

const defaultSMSBaseURL = "https://www.fast2sms.com/dev/bulkV2"

// SMSClient talks to the bulk SMS gateway. The gateway signals failure
// through the "return" field of its JSON body, not the HTTP status.
type SMSClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

type smsPayload struct {
	Route    string `json:"route"`
	Message  string `json:"message"`
	Language string `json:"language"`
	Flash    int    `json:"flash"`
	Numbers  string `json:"numbers"`
}

type smsResponse struct {
	Return  bool        `json:"return"`
	Message interface{} `json:"message,omitempty"`
	Request string      `json:"request_id,omitempty"`
}

// NewSMSClient reads gateway credentials from the environment.
func NewSMSClient() *SMSClient {
	baseURL := os.Getenv("SMS_API_URL")
	if baseURL == "" {
		baseURL = defaultSMSBaseURL
	}
	return &SMSClient{
		baseURL: baseURL,
		apiKey:  os.Getenv("SMS_API_KEY"),
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// NewSMSClientWith builds a client against an explicit endpoint, used by tests.
func NewSMSClientWith(baseURL, apiKey string, client *http.Client) *SMSClient {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &SMSClient{baseURL: baseURL, apiKey: apiKey, client: client}
}

// SendOTP delivers the code to a 10-digit phone number. A single
// attempt is made; the caller decides what to do on failure.
func (s *SMSClient) SendOTP(phone, code string) error {
	if s.apiKey == "" {
		return fmt.Errorf("SMS API key not set")
	}

	payload := smsPayload{
		Route:    "q",
		Message:  fmt.Sprintf("VidyaQuiz OTP: %s. 5 minute ke liye valid hai. Kisi se share na karein.", code),
		Language: "english",
		Flash:    0,
		Numbers:  phone,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode SMS payload: %v", err)
	}

	req, err := http.NewRequest("POST", s.baseURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("authorization", s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach SMS gateway: %v", err)
	}
	defer resp.Body.Close()

	var result smsResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("failed to decode SMS gateway response: %v", err)
	}

	if !result.Return {
		return fmt.Errorf("SMS gateway rejected the send: %v", result.Message)
	}

	return nil
}
