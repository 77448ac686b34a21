package commands

import (
	"CheckNotes/internal/config"
	"CheckNotes/internal/note"
	"CheckNotes/internal/storage"
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
)

// Exit codes returned by Dispatch.
const (
	ExitOK           = 0
	ExitFailure      = 1
	ExitUsage        = 2
	ExitInvalidInput = 3
	ExitNotFound     = 4
	ExitUnauthorized = 5
	ExitQuota        = 6
)

// Dispatch is the single entry point to execute CLI commands.
// It prints help, usage and a single status line on failure and returns a process exit code.
func Dispatch(ctx context.Context, cfg *config.Config, args []string) int {
	// If user passed global --help after flags parsing, show global usage
	for _, a := range os.Args[1:] {
		if a == "--help" || a == "-h" {
			fmt.Fprint(Out, FormatGlobalUsage())
			return ExitOK
		}
	}

	if !flag.Parsed() {
		flag.Parse()
	}

	if len(args) == 0 {
		fmt.Fprint(Out, FormatGlobalUsage())
		return ExitUsage
	}

	name := strings.ToLower(args[0])
	if name == "help" { // cncli help [command]
		return help(args[1:])
	}

	c, ok := Get(name)
	if !ok {
		fmt.Fprintf(Out, "Unknown command: %s\n\n", name)
		fmt.Fprint(Out, FormatGlobalUsage())
		return ExitUsage
	}

	err := c.Run(ctx, cfg, args[1:])
	if err != nil {
		logger.Debugw("command failed", "command", name, "error", err)
	}
	return report(c, err)
}

func help(args []string) int {
	if len(args) == 0 {
		fmt.Fprint(Out, FormatGlobalUsage())
		return ExitOK
	}
	if c, ok := Get(args[0]); ok {
		fmt.Fprintf(Out, "Usage: %s\n", c.Usage())
		return ExitOK
	}
	fmt.Fprintf(Out, "Unknown command: %s\n\n", args[0])
	fmt.Fprint(Out, FormatGlobalUsage())
	return ExitUsage
}

// report печатает одну строку статуса для результата команды и выбирает код выхода.
func report(c Command, err error) int {
	name := c.Name()
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrUsage):
		fmt.Fprintf(Out, "Usage: %s\n", c.Usage())
		return ExitUsage
	case errors.Is(err, note.ErrValidation):
		fmt.Fprintf(Out, "%s: %v\n", name, err)
		return ExitInvalidInput
	case errors.Is(err, note.ErrNotFound):
		fmt.Fprintf(Out, "%s: %v (run list to see current positions)\n", name, err)
		return ExitNotFound
	case errors.Is(err, storage.ErrUnauthorized):
		fmt.Fprintf(Out, "%s: not logged in to the sync server, run login first\n", name)
		return ExitUnauthorized
	case errors.Is(err, storage.ErrQuotaExceeded):
		fmt.Fprintf(Out, "%s: notes exceed the sync storage quota: %v\n", name, err)
		return ExitQuota
	case errors.Is(err, storage.ErrStorage):
		fmt.Fprintf(Out, "%s: storage unavailable: %v\n", name, err)
		return ExitFailure
	default:
		fmt.Fprintf(Out, "%s error: %v\n", name, err)
		return ExitFailure
	}
}
