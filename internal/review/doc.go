// Package review holds the core of the review bot: the prompt template,
// the opaque chat-completion [Response] and the field extraction applied to
// it, the comment body format, and [Bot], which strings the diff fetcher,
// the model and the comment poster together.
//
// The three collaborators are interfaces so the sequence can be exercised
// without network access; concrete implementations live in the gitea and
// providers packages.
package review
