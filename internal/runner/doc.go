// Package runner drives one conversation between the model backend and the
// local tools until the model answers without requesting any.
//
// Invariant:
//   - every tool call in an assistant reply is answered by exactly one tool
//     message, in the order the calls were issued, before the next backend call.
//
// Flow:
//
//	user(text) -> assistant(tool_calls) -> tool(result)... -> assistant(text)
package runner
