// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// thriftjson-inspect decodes the envelope of a single encoded message
// and prints its name, type and sequence id, skipping over the payload.
// It reads from a file or stdin and understands both wire formats:
//
//	thriftjson-inspect --protocol jsonrpc reply.json
//	echo '{"jsonrpc":"2.0","method":"ping","params":{},"id":7}' | thriftjson-inspect
//
// The payload is consumed through the generic skipper, so a message
// that prints cleanly is also known to be structurally well-formed.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/thriftjson/protocol"
	"github.com/bureau-foundation/thriftjson/transport"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	var protocolName string
	var verbose bool

	flagSet := pflag.NewFlagSet("thriftjson-inspect", pflag.ContinueOnError)
	flagSet.StringVar(&protocolName, "protocol", "jsonrpc", "wire format: jsonrpc or json (compact)")
	flagSet.BoolVar(&verbose, "verbose", false, "log decode progress to stderr")
	flagSet.BoolP("help", "h", false, "show help")

	if err := flagSet.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			printHelp(flagSet)
			return nil
		}
		return err
	}
	if help, _ := flagSet.GetBool("help"); help {
		printHelp(flagSet)
		return nil
	}

	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	input := stdin
	switch rest := flagSet.Args(); len(rest) {
	case 0:
	case 1:
		file, err := os.Open(rest[0])
		if err != nil {
			return err
		}
		defer file.Close()
		input = file
	default:
		return fmt.Errorf("unexpected argument: %s", rest[1])
	}

	raw, err := io.ReadAll(input)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	logger.Debug("input loaded", "bytes", len(raw))

	var factory protocol.Factory
	switch protocolName {
	case "jsonrpc":
		factory = protocol.JSONRPCFactory{}
	case "json":
		factory = protocol.JSONFactory{}
	default:
		return fmt.Errorf("unknown protocol %q (want jsonrpc or json)", protocolName)
	}

	buffer := transport.NewMemoryBufferString(string(raw))
	codec := factory.New(buffer)

	name, typ, seqID, err := codec.ReadMessageBegin()
	if err != nil {
		return fmt.Errorf("decoding envelope: %w", err)
	}
	logger.Debug("envelope resolved", "type", typ.String())

	if err := protocol.Skip(codec, protocol.TypeStruct); err != nil {
		return fmt.Errorf("skipping payload: %w", err)
	}
	if err := codec.ReadMessageEnd(); err != nil {
		return fmt.Errorf("finishing message: %w", err)
	}

	fmt.Fprintf(stdout, "type:  %s\n", typ)
	if name != "" {
		fmt.Fprintf(stdout, "name:  %s\n", name)
	}
	fmt.Fprintf(stdout, "seqid: %d\n", seqID)
	return nil
}

func printHelp(flagSet *pflag.FlagSet) {
	fmt.Fprintf(os.Stderr, `Decode one encoded message envelope and print its fields.

Reads a single message from a file argument or stdin, resolves the
envelope (name, message type, sequence id), and validates the payload
by skipping it value-by-value.

Usage:
  thriftjson-inspect [flags] [file]

Flags:
%s`, flagSet.FlagUsages())
}
