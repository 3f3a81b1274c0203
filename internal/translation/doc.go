// Package translation provides Chinese word translation through external
// LLM services and a persistent translation cache, so that every distinct
// word is sent to a service at most once across runs.
package translation
