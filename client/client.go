// Package client is a small HTTP consumer of the chat server, used by the
// scenario tester. It speaks the same JSON contract as the transport layer
// and decodes the Server-Sent Events stream into domain messages.
package client

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"chat-rooms/domain"
	"chat-rooms/errors"
)

type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string) *Client {
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), http: &http.Client{}}
}

// Join resolves an identity on the server and returns it.
func (c *Client) Join(ctx context.Context, req domain.JoinRequest) (domain.JoinRequest, error) {
	resp, err := c.postJSON(ctx, "/api/chat/join", req)
	if err != nil {
		return domain.JoinRequest{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return domain.JoinRequest{}, fmt.Errorf("join rejected: %s", resp.Status)
	}

	var resolved domain.JoinRequest
	if err := json.NewDecoder(resp.Body).Decode(&resolved); err != nil {
		return domain.JoinRequest{}, fmt.Errorf("decoding join response: %w", err)
	}
	return resolved, nil
}

// Send posts a chat message. Fire-and-forget on the server side.
func (c *Client) Send(ctx context.Context, content, sender, room string) error {
	resp, err := c.postJSON(ctx, "/api/chat/message", map[string]string{
		"content": content, "sender": sender, "room": room,
	})
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("send rejected: %s", resp.Status)
	}
	return nil
}

// Leave removes the membership on the server.
func (c *Client) Leave(ctx context.Context, username, room string) error {
	resp, err := c.postJSON(ctx, "/api/chat/leave", map[string]string{
		"username": username, "room": room,
	})
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("leave rejected: %s", resp.Status)
	}
	return nil
}

// Stream opens the SSE endpoint and decodes each data frame into a Message.
// The returned channel closes when the context is canceled or the server
// ends the stream.
func (c *Client) Stream(ctx context.Context, username, room string) (<-chan domain.Message, error) {
	url := fmt.Sprintf("%s/api/chat/stream?username=%s&room=%s", c.baseURL, username, room)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("%w: %s", errors.ErrStreamNotOpened, resp.Status)
	}

	out := make(chan domain.Message)
	go func() {
		defer close(out)
		defer resp.Body.Close()

		scanner := bufio.NewScanner(resp.Body)
		for scanner.Scan() {
			line := scanner.Text()
			if !strings.HasPrefix(line, "data: ") {
				continue
			}
			var msg domain.Message
			if err := json.Unmarshal([]byte(strings.TrimPrefix(line, "data: ")), &msg); err != nil {
				continue
			}
			select {
			case out <- msg:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, nil
}

func (c *Client) postJSON(ctx context.Context, path string, payload any) (*http.Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.http.Do(req)
}
