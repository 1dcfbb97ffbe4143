// Package gitea provides a minimal Gitea REST API client scoped to a single
// repository: it downloads pull-request diffs and posts issue comments.
//
// The client authenticates with an access token sent as
// "Authorization: token <TOKEN>" through an oauth2 static token source.
// Each call makes one attempt; there is no retry.
package gitea
