// Package providers implements the review.Reviewer interface for LLM
// chat-completion APIs.
//
// [OpenRouter] posts a single user message built by review.BuildPrompt and
// returns the response body undecoded beyond generic JSON, leaving field
// extraction to the caller. Failures surface as boterr.HTTPError,
// boterr.TransportError or boterr.DecodeError; nothing is retried.
//
// The HTTP client and endpoint are plain fields so tests can point the
// provider at an httptest server.
package providers
