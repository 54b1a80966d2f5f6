package rollbar

import (
	"encoding/json"
	"fmt"
)

const (
	// DefaultEndpoint is the Rollbar item ingestion endpoint.
	DefaultEndpoint = "https://api.rollbar.com/api/1/item/"

	// NotifierName identifies this library to the Rollbar API.
	NotifierName = "rollbar-go-client"

	// Version is the library version reported in every payload.
	Version = "0.3.0"

	platform = "browser"
	language = "go"

	// Rollbar reads code_version for the browser platform from
	// client.javascript.
	clientKey = "javascript"
)

// PayloadParams holds everything that goes into one item payload.
type PayloadParams struct {
	Token       string
	Environment string
	Scope       string
	CodeVersion string
	Endpoint    string
	Level       Level
	Message     string
	UUID        string
	Metadata    map[string]any
}

type payload struct {
	AccessToken string      `json:"access_token"`
	Data        payloadData `json:"data"`
}

type payloadData struct {
	Environment string                       `json:"environment"`
	Context     string                       `json:"context"`
	UUID        string                       `json:"uuid"`
	Client      map[string]payloadClientInfo `json:"client,omitempty"`
	Notifier    payloadNotifier              `json:"notifier"`
	Level       string                       `json:"level"`
	Endpoint    string                       `json:"endpoint"`
	Platform    string                       `json:"platform"`
	Language    string                       `json:"language"`
	Body        payloadBody                  `json:"body"`
}

type payloadClientInfo struct {
	CodeVersion string `json:"code_version"`
}

type payloadNotifier struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

type payloadBody struct {
	Message map[string]any `json:"message"`
}

// BuildPayload serializes a report into the JSON body expected by the
// Rollbar item API.
//
// Metadata is merged next to the message text in data.body.message. A
// metadata key named "body" replaces the message text.
func BuildPayload(p PayloadParams) ([]byte, error) {
	message := make(map[string]any, len(p.Metadata)+1)
	message["body"] = p.Message
	for k, v := range p.Metadata {
		message[k] = v
	}

	endpoint := p.Endpoint
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}

	data := payloadData{
		Environment: p.Environment,
		Context:     p.Scope,
		UUID:        p.UUID,
		Notifier:    payloadNotifier{Name: NotifierName, Version: Version},
		Level:       p.Level.String(),
		Endpoint:    endpoint,
		Platform:    platform,
		Language:    language,
		Body:        payloadBody{Message: message},
	}

	if p.CodeVersion != "" {
		data.Client = map[string]payloadClientInfo{
			clientKey: {CodeVersion: p.CodeVersion},
		}
	}

	b, err := json.Marshal(payload{AccessToken: p.Token, Data: data})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}

	return b, nil
}
