// Package models lists the OpenAI chat models that can serve as word
// translators, so users can pick a value for translation.model.
package models
