// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by the
// Note Pilot companion server.
//
// All Msg* constants are plain-text bodies written by the proxy and static
// handlers. Browser clients match on the leading status phrase, so the
// wording must stay stable.
package app

const (
	// MsgMissingCredential is sent with 500 when no provider key is
	// configured on the server.
	MsgMissingCredential = "Server error: OPENAI_API_KEY is not set. Export your key as environment variable and restart the server."

	// MsgMissingPrompt is sent with 400 when the JSON body lacks a prompt.
	MsgMissingPrompt = `Bad Request: missing "prompt" in JSON body.`

	// MsgInvalidBody is sent with 400 when the body is not a JSON object.
	MsgInvalidBody = "Bad Request: body is not valid JSON."

	// MsgInvalidUpstream is sent with 502 when the provider answers with
	// something that is not JSON.
	MsgInvalidUpstream = "Bad Gateway: invalid JSON from OpenAI"

	// MsgBadGatewayPrefix precedes the transport error when the provider
	// cannot be reached.
	MsgBadGatewayPrefix = "Bad Gateway: "

	MsgInternalPrefix = "Internal Server Error: "

	MsgNotFound = "Not found"
)
