package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/jonathan/interview-forge/internal/types"
)

// defaultTimeout is the per-request HTTP timeout.
const defaultTimeout = 30 * time.Second

// defaultExportName is used when the export response carries no usable
// Content-Disposition header.
const defaultExportName = "interview-questions"

// filenamePattern extracts the suggested file name from a
// Content-Disposition header.
var filenamePattern = regexp.MustCompile(`filename="([^"]+)"`)

// Client talks to the interview-forge API server.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a client for the server at baseURL.
func New(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

// CreateCheckoutSession asks the payment boundary for a redirectable
// session. Errors are returned to the caller so the UI can offer a retry.
func (c *Client) CreateCheckoutSession(ctx context.Context, profile types.Profile, returnURL string) (*types.CheckoutSession, error) {
	body := types.CheckoutRequest{Profile: profile, ReturnURL: returnURL}

	resp, err := c.postJSON(ctx, "/checkout-session", body)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &RequestError{Status: resp.StatusCode, Message: decodeErrorBody(resp.Body, "error")}
	}

	var sess types.CheckoutSession
	if err := json.NewDecoder(resp.Body).Decode(&sess); err != nil {
		return nil, fmt.Errorf("failed to parse checkout session response: %w", err)
	}
	return &sess, nil
}

// StartJob redeems a checkout session and returns the job id.
func (c *Client) StartJob(ctx context.Context, sessionID string) (string, error) {
	resp, err := c.postJSON(ctx, "/jobs", types.StartJobRequest{SessionID: sessionID})
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusAccepted {
		return "", &RequestError{Status: resp.StatusCode, Message: decodeErrorBody(resp.Body, "message")}
	}

	var started types.StartJobResponse
	if err := json.NewDecoder(resp.Body).Decode(&started); err != nil {
		return "", fmt.Errorf("failed to parse job start response: %w", err)
	}
	return started.JobID, nil
}

// JobStatus fetches the current job snapshot.
func (c *Client) JobStatus(ctx context.Context, jobID string) (*types.Job, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/jobs/"+jobID, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &RequestError{Status: resp.StatusCode, Message: decodeErrorBody(resp.Body, "error")}
	}

	var job types.Job
	if err := json.NewDecoder(resp.Body).Decode(&job); err != nil {
		return nil, fmt.Errorf("failed to parse job status response: %w", err)
	}
	return &job, nil
}

// Download is an export payload plus the name the server suggested for it.
type Download struct {
	Name        string
	ContentType string
	Data        []byte
}

// Export sends records to the export boundary and returns the named
// payload. A non-success status fails with *ExportError carrying the HTTP
// status.
func (c *Client) Export(ctx context.Context, records []types.Interview, format string) (*Download, error) {
	path := "/export/interviews"
	if format != "" {
		path += "?format=" + format
	}

	resp, err := c.postJSON(ctx, path, types.ExportRequest{Interviews: records})
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &ExportError{Status: resp.StatusCode, Message: decodeErrorBody(resp.Body, "error")}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read export payload: %w", err)
	}

	return &Download{
		Name:        suggestedFilename(resp.Header.Get("Content-Disposition")),
		ContentType: resp.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}

// postJSON issues a POST with a JSON body.
func (c *Client) postJSON(ctx context.Context, path string, body any) (*http.Response, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	return c.httpClient.Do(req)
}

// suggestedFilename extracts the file name from a Content-Disposition
// header, falling back to a generic name when absent or malformed.
func suggestedFilename(header string) string {
	if m := filenamePattern.FindStringSubmatch(header); m != nil {
		return m[1]
	}
	return defaultExportName
}

// decodeErrorBody pulls the named key out of a JSON error body. An
// unparseable body yields an empty message and the caller's fallback text.
func decodeErrorBody(r io.Reader, key string) string {
	var body map[string]string
	if err := json.NewDecoder(r).Decode(&body); err != nil {
		return ""
	}
	return body[key]
}
