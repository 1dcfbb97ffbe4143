package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"golang.org/x/oauth2"

	"github.com/mavolk/reviewkit/internal/boterr"
	"github.com/mavolk/reviewkit/internal/logger"
	"github.com/mavolk/reviewkit/internal/output"
	"github.com/mavolk/reviewkit/internal/review"
)

// OpenRouter requests reviews from an OpenRouter chat-completion endpoint.
type OpenRouter struct {
	model   string
	baseURL string
	client  *http.Client
	out     io.Writer
	verbose bool
}

var _ review.Reviewer = (*OpenRouter)(nil)

// NewOpenRouter creates a provider that authenticates with a bearer token.
// Status lines are written to out.
func NewOpenRouter(baseURL, token, model string, out io.Writer, verbose bool) *OpenRouter {
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token, TokenType: "Bearer"})
	return &OpenRouter{
		model:   model,
		baseURL: baseURL,
		client:  oauth2.NewClient(context.Background(), ts),
		out:     out,
		verbose: verbose,
	}
}

func (o *OpenRouter) Name() string { return "openrouter" }

// Review sends diff inside the review prompt and returns the decoded body.
// It makes exactly one attempt.
func (o *OpenRouter) Review(ctx context.Context, diff string) (review.Response, error) {
	body := chatRequest{
		Model: o.model,
		Messages: []chatMessage{
			{Role: "user", Content: review.BuildPrompt(diff)},
		},
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", o.baseURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	logger.Debug(ctx, "requesting review", "model", o.model, "url", o.baseURL)
	httpResp, err := o.client.Do(httpReq)
	if err != nil {
		return nil, &boterr.TransportError{Op: "sending request", Err: err}
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, &boterr.TransportError{Op: "reading response", Err: err}
	}

	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		return nil, boterr.NewHTTPError(httpResp.StatusCode, httpResp.Status, respBody)
	}

	result, err := review.DecodeResponse(respBody)
	if err != nil {
		return nil, err
	}

	if o.verbose {
		fmt.Fprintln(o.out, "Success! Response:")
		if err := output.PrettyJSON(o.out, result); err != nil {
			return nil, err
		}
	} else {
		fmt.Fprintln(o.out, "Successfully sent diff to OpenRouter for review")
	}

	return result, nil
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
