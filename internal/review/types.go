package review

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/mavolk/reviewkit/internal/boterr"
)

// Response is the decoded chat-completion body. Numbers are kept as
// json.Number so values such as the cost are passed through unchanged.
type Response map[string]any

// DecodeResponse parses body as a single JSON object, keeping numbers as
// json.Number. Anything else is a *boterr.DecodeError.
func DecodeResponse(body []byte) (Response, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var resp Response
	if err := dec.Decode(&resp); err != nil {
		return nil, &boterr.DecodeError{Err: err}
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, &boterr.DecodeError{Err: errors.New("unexpected data after JSON object")}
	}
	return resp, nil
}

// Extract returns choices[0].message.content and usage.cost from resp.
// A missing field is a *boterr.ShapeError; no defaults are substituted.
func Extract(resp Response) (content string, cost any, err error) {
	choices, ok := resp["choices"].([]any)
	if !ok || len(choices) == 0 {
		return "", nil, &boterr.ShapeError{Path: "choices[0]"}
	}
	choice, ok := choices[0].(map[string]any)
	if !ok {
		return "", nil, &boterr.ShapeError{Path: "choices[0]"}
	}
	message, ok := choice["message"].(map[string]any)
	if !ok {
		return "", nil, &boterr.ShapeError{Path: "choices[0].message"}
	}
	content, ok = message["content"].(string)
	if !ok {
		return "", nil, &boterr.ShapeError{Path: "choices[0].message.content"}
	}

	usage, ok := resp["usage"].(map[string]any)
	if !ok {
		return "", nil, &boterr.ShapeError{Path: "usage"}
	}
	cost, ok = usage["cost"]
	if !ok {
		return "", nil, &boterr.ShapeError{Path: "usage.cost"}
	}
	return content, cost, nil
}

// NullCost is written in place of a JSON null cost.
const NullCost = "None"

// FormatComment builds the issue comment body. cost is interpolated as-is,
// except that nil becomes NullCost.
func FormatComment(review string, cost any) string {
	if cost == nil {
		cost = NullCost
	}
	return fmt.Sprintf("Review:\n%s\nCost:%v", review, cost)
}
