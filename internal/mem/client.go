package mem

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/nowledge-app/chatwise-import/internal/chatwise"
)

// pageLimit is the server's page size for thread listings.
const pageLimit = 100

// maxErrBody caps how much of a response body is echoed into error messages.
const maxErrBody = 200

// Client talks to a locally running Nowledge Mem service.
type Client struct {
	baseURL string
	client  *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// RemoteThread is one entry in the server's thread listing. Only the id
// matters here; entries without one decode as the empty string.
type RemoteThread struct {
	ID string `json:"id"`
}

type listResponse struct {
	Threads    []RemoteThread `json:"threads"`
	Pagination struct {
		HasMore bool `json:"has_more"`
	} `json:"pagination"`
}

type createResponse struct {
	Thread struct {
		ID string `json:"id"`
	} `json:"thread"`
}

// ListThreads pages through GET /threads and returns every listed thread.
// On failure it returns what was accumulated so far along with the error,
// so callers can degrade to a partial duplicate check.
func (c *Client) ListThreads(ctx context.Context) ([]RemoteThread, error) {
	var all []RemoteThread
	offset := 0

	for {
		url := fmt.Sprintf("%s/threads?limit=%d&offset=%d", c.baseURL, pageLimit, offset)
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return all, fmt.Errorf("create request: %w", err)
		}

		resp, err := c.client.Do(req)
		if err != nil {
			return all, c.transportError(err)
		}

		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			return all, fmt.Errorf("read response: %w", err)
		}
		if resp.StatusCode != http.StatusOK {
			return all, fmt.Errorf("api error %d: %s", resp.StatusCode, truncateBody(body))
		}

		var page listResponse
		if err := json.Unmarshal(body, &page); err != nil {
			return all, fmt.Errorf("unmarshal response: %w", err)
		}

		all = append(all, page.Threads...)
		if !page.Pagination.HasMore {
			return all, nil
		}
		offset += pageLimit
	}
}

// CreateThread POSTs one conversation and returns the server-assigned id.
func (c *Client) CreateThread(ctx context.Context, thread *chatwise.Thread) (string, error) {
	body, err := json.Marshal(thread)
	if err != nil {
		return "", fmt.Errorf("marshal thread: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/threads", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", c.transportError(err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("api error %d: %s", resp.StatusCode, truncateBody(respBody))
	}

	var created createResponse
	if err := json.Unmarshal(respBody, &created); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}
	if created.Thread.ID == "" {
		return "unknown", nil
	}
	return created.Thread.ID, nil
}

// transportError maps request failures onto messages that tell the user
// what to do about them.
func (c *Client) transportError(err error) error {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Errorf("request timed out")
	}
	return fmt.Errorf("connection failed: is Nowledge Mem running at %s? %w", c.baseURL, err)
}

func truncateBody(b []byte) string {
	if len(b) > maxErrBody {
		b = b[:maxErrBody]
	}
	return string(b)
}
