package gitea

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"

	"golang.org/x/oauth2"

	"github.com/mavolk/reviewkit/internal/boterr"
	"github.com/mavolk/reviewkit/internal/logger"
	"github.com/mavolk/reviewkit/internal/output"
	"github.com/mavolk/reviewkit/internal/review"
)

// RawResponseKey holds the unparsed body when a comment response is not JSON.
const RawResponseKey = "raw_response"

// Client provides access to one repository of the Gitea REST API.
type Client struct {
	apiURL  string
	httpCli *http.Client
	out     io.Writer
	verbose bool
}

var (
	_ review.DiffFetcher   = (*Client)(nil)
	_ review.CommentPoster = (*Client)(nil)
)

// NewClient creates a client for the repository API root apiURL
// (".../api/v1/repos/{owner}/{repo}"). Requests carry "Authorization: token <token>".
func NewClient(apiURL, token string, out io.Writer, verbose bool) *Client {
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token, TokenType: "token"})
	return &Client{
		apiURL:  strings.TrimRight(apiURL, "/"),
		httpCli: oauth2.NewClient(context.Background(), ts),
		out:     out,
		verbose: verbose,
	}
}

// GetPRDiff fetches the unified diff for a pull request. Every failure,
// including a non-2xx status, is a *boterr.FetchError.
func (c *Client) GetPRDiff(ctx context.Context, prNumber int) (string, error) {
	url := fmt.Sprintf("%s/pulls/%d.diff", c.apiURL, prNumber)

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return "", &boterr.FetchError{PR: prNumber, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	logger.Debug(ctx, "fetching diff", "url", url)
	resp, err := c.httpCli.Do(req)
	if err != nil {
		return "", &boterr.FetchError{PR: prNumber, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &boterr.FetchError{PR: prNumber, Err: fmt.Errorf("reading response: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &boterr.FetchError{PR: prNumber, Err: boterr.NewHTTPError(resp.StatusCode, resp.Status, body)}
	}

	return string(body), nil
}

type commentRequest struct {
	Body string `json:"body"`
}

// PostComment posts "Review:\n{review}\nCost:{cost}" on an issue and returns
// the decoded response, whatever JSON value it is. A body that is not JSON
// is returned as {RawResponseKey: body} rather than as an error, and no
// success line is printed for it.
func (c *Client) PostComment(ctx context.Context, issueNumber int, reviewText string, cost any) (any, error) {
	url := fmt.Sprintf("%s/issues/%d/comments", c.apiURL, issueNumber)

	payload, err := json.Marshal(commentRequest{Body: review.FormatComment(reviewText, cost)})
	if err != nil {
		return nil, fmt.Errorf("marshaling comment: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	logger.Debug(ctx, "posting comment", "url", url)
	resp, err := c.httpCli.Do(req)
	if err != nil {
		return nil, &boterr.TransportError{Op: "posting comment", Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &boterr.TransportError{Op: "reading response", Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, boterr.NewHTTPError(resp.StatusCode, resp.Status, body)
	}

	if c.verbose {
		c.printResponse(resp, body)
	}

	result, err := decodeJSON(body)
	if err != nil {
		logger.Info(ctx, "comment response is not JSON", "error", err)
		return map[string]any{RawResponseKey: string(body)}, nil
	}

	if c.verbose {
		fmt.Fprintln(c.out, "\nParsed JSON response:")
		if err := output.PrettyJSON(c.out, result); err != nil {
			return nil, err
		}
	} else {
		fmt.Fprintf(c.out, "Successfully posted review comment to issue #%d\n", issueNumber)
	}

	return result, nil
}

// decodeJSON parses any single JSON value, keeping numbers as json.Number.
func decodeJSON(body []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected data after JSON value")
	}
	return v, nil
}

func (c *Client) printResponse(resp *http.Response, body []byte) {
	fmt.Fprintf(c.out, "Status: %d\n", resp.StatusCode)
	fmt.Fprintln(c.out, "Response headers:")

	keys := make([]string, 0, len(resp.Header))
	for k := range resp.Header {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(c.out, "  %s: %s\n", k, strings.Join(resp.Header[k], ", "))
	}

	fmt.Fprintln(c.out, "\nResponse body:")
	fmt.Fprintln(c.out, string(body))
}
