// Package model abstracts the external text-completion service behind a
// small synchronous interface. Provider adapters live in the subpackages
// model/openai and model/anthropic; MockModel supports tests.
package model
