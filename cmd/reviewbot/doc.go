// Reviewbot asks an LLM to review a Gitea pull request and posts the review
// as an issue comment.
//
// It reads GITEA_TOKEN and OPENROUTER_TOKEN from the environment (or a .env
// file), downloads the pull-request diff, sends it to an OpenRouter chat
// model, and posts "Review:\n{review}\nCost:{cost}" on the given issue.
//
// Usage:
//
//	reviewbot --pr-number 12 --issue-number 12
//	reviewbot -p 12 -i 30 -m openai/gpt-4o -v
//
// Any failure prints "Error in {context}: {message}" and exits with status 1.
package main
