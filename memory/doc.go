// Package memory holds the conversation state for a single run.
//
// Model:
//   - Message is a closed union: User, Assistant, Tool.
//   - The log is append-only; entries are never removed or reordered.
//   - Every Tool message answers a call from the most recent Assistant message.
//   - Nothing is persisted; the state lives for one process run.
package memory
