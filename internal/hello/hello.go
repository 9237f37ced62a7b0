// Package hello provides the greeting used by the hello command.
package hello

import "strings"

// Hello returns the greeting "Hello".
//
// It takes no input and never fails; every call returns a new string
// owned by the caller.
func Hello() string {
	return messageString("Hello")
}

// messageString returns an owned copy of message.
// The result never shares backing memory with the argument.
func messageString(message string) string {
	return strings.Clone(message)
}
