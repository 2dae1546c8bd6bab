// Package tools defines the tool catalog advertised to the model, the local
// executors behind it, and the dispatcher that routes model-issued calls.
//
// Includes:
//   - Definition: name, description, JSON parameter schema generated from the typed input struct.
//   - Executors: Bash (shell command), Read (file contents), Write (create or overwrite a file).
//   - Dispatcher: closed-name lookup, argument decoding, single invocation per call.
//   - Error tiers: semantic failures become Err results the model can see;
//     undecodable argument payloads are returned as Go errors and end the run.
package tools
