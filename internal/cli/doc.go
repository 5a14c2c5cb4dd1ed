// Package cli provides the interactive accountbook command-line editor.
//
// The REPL lists the stored accounts and lets the user add, edit, show and
// delete them. Every change goes through a form that is validated before
// anything reaches the store; failed validation prints one message per field
// and leaves the stored list untouched.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits or
// input ends. See runREPL for the command set.
package cli
