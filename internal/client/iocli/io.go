// Package iocli abstracts console input and output so commands can be
// tested without a terminal.
package iocli

//go:generate moq -out io_mock.go . IO

// IO is the console surface the CLI commands draw on
type IO interface {
	Println(a ...any)
	Printf(format string, a ...any)
	ReadInput(prompt string) (string, error)
	ReadPassword(prompt string) (string, error)
}
