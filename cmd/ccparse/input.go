package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"ccparse/internal/driver"
)

// input is one commit message to process: either a file on disk or raw
// bytes from -m / stdin.
type input struct {
	path    string
	name    string
	content []byte
}

func (in input) fromDisk() bool {
	return in.path != ""
}

// resolveInput reads the message argument shared by tokenize and parse:
// -m <text>, "-" for stdin, or a file path.
func resolveInput(cmd *cobra.Command, args []string) (input, error) {
	msg, err := cmd.Flags().GetString("message")
	if err != nil {
		return input{}, fmt.Errorf("failed to get message flag: %w", err)
	}
	if msg != "" {
		if len(args) > 0 {
			return input{}, errors.New("cannot combine -m with a file argument")
		}
		return input{name: "<message>", content: []byte(msg)}, nil
	}
	if len(args) != 1 {
		return input{}, errors.New("provide a message file, '-' for stdin, or -m <text>")
	}
	if args[0] == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return input{}, fmt.Errorf("failed to read stdin: %w", err)
		}
		return input{name: "<stdin>", content: data}, nil
	}
	return input{path: args[0]}, nil
}

func tokenizeInput(in input, opts driver.Options) (*driver.Result, error) {
	if in.fromDisk() {
		return driver.TokenizeFile(in.path, opts)
	}
	return driver.TokenizeBytes(in.name, in.content, opts)
}

func parseInput(in input, opts driver.Options) (*driver.Result, error) {
	if in.fromDisk() {
		return driver.ParseFile(in.path, opts)
	}
	return driver.ParseBytes(in.name, in.content, opts)
}
