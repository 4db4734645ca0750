package firebase

import (
	"context"

	"firebase.google.com/go/v4/messaging"

	"familymarket/pkg/logger"
)

// FCM rejects multicast payloads above 500 tokens per call.
const multicastChunkSize = 500

type MessagingClient struct {
	client *messaging.Client
}

func NewMessagingClient(client *messaging.Client) *MessagingClient {
	return &MessagingClient{
		client: client,
	}
}

// SendToTokens pushes one notification to every device token, chunking to
// respect the multicast limit. Invalid tokens are reported back so callers
// can prune them from the user document.
func (m *MessagingClient) SendToTokens(ctx context.Context, tokens []string, title, body string, data map[string]string) ([]string, error) {
	var invalid []string

	for start := 0; start < len(tokens); start += multicastChunkSize {
		end := start + multicastChunkSize
		if end > len(tokens) {
			end = len(tokens)
		}
		chunk := tokens[start:end]

		message := &messaging.MulticastMessage{
			Tokens: chunk,
			Notification: &messaging.Notification{
				Title: title,
				Body:  body,
			},
			Data: data,
		}

		response, err := m.client.SendEachForMulticast(ctx, message)
		if err != nil {
			return invalid, err
		}

		for i, result := range response.Responses {
			if result.Error != nil && messaging.IsUnregistered(result.Error) {
				invalid = append(invalid, chunk[i])
			}
		}

		if response.FailureCount > 0 {
			logger.Warn("FCM multicast: %d of %d sends failed", response.FailureCount, len(chunk))
		}
	}

	return invalid, nil
}
