// Package ai produces assistant replies for chat turns, either through an
// external model service or from a local canned table.
package ai

// Generator produces a reply for a user's chat message. When generation
// fails, callers branch to FallbackReply; an upstream failure is never
// surfaced to the chat user.
type Generator interface {
	GenerateReply(message string) (string, error)
}
