// Package config loads the settings shared by the note-pilot server and the
// terminal client.
//
// Sources are merged in this order, each overriding the non-zero fields of
// the previous ones:
//  0. built-in defaults ([DefaultPort], [DefaultModel], ...)
//  1. environment variables (PORT, OPENAI_API_KEY, STORAGE_DB_DSN, ...)
//  2. command-line flags
//  3. the JSON file named by CONFIG or -c
//
// The server reads [StructuredConfig] through [GetStructuredConfig]; the
// client reads the narrower [ClientConfig] through [GetClientConfig].
package config
