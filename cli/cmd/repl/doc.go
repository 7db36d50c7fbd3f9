// Package repl implements the interactive session. Bindings entered with
// `let` persist for the life of the session, input history is kept across
// sessions in a file, and the Tab key fuzzy-completes keywords and bound
// names.
package repl
