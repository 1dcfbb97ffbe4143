// Package boterr defines the error kinds the review bot distinguishes.
//
// Each step of the bot fails with exactly one of these types: a missing
// credential ([ConfigError]), a failed diff download ([FetchError]), a
// non-2xx API answer ([HTTPError]), a connection-level failure
// ([TransportError]), a body that is not JSON ([DecodeError]) or a review
// response without the expected fields ([ShapeError]).
//
// [Context] turns any of them into the short label printed by the
// top-level handler as "Error in {context}: {message}".
package boterr
