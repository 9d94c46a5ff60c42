package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

const helpText = `Available commands:
	g, get       Get account info (user and password)
	n, new       New account
	m, modify    Modify account
	d, delete    Delete account
	l, list      List accounts
	c, clear     Clear the screen
	e, exit      Exit the program`

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	Get(ctx context.Context) error
	New(ctx context.Context) error
	Modify(ctx context.Context) error
	Delete(ctx context.Context) error
	List(ctx context.Context) error
	Clear(ctx context.Context) error
}

// runREPL reads commands from reader until EOF, "e", "exit" or "quit" and
// dispatches them to a. Command names are case-insensitive. The loop also
// ends once ctx is cancelled.
//
// Errors returned by command handlers are ignored here; handlers report
// their own errors so that one failed command never ends the session.
func runREPL(ctx context.Context, a execIface, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}
		printlnFn("hk> ")
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			if err != nil {
				return
			}
			continue
		}
		cmd := strings.ToLower(parts[0])

		switch cmd {
		case "help", "h", "?":
			printlnFn(helpText)

		case "g", "get":
			_ = a.Get(ctx)

		case "n", "new":
			_ = a.New(ctx)

		case "m", "modify":
			_ = a.Modify(ctx)

		case "d", "delete":
			_ = a.Delete(ctx)

		case "l", "list":
			_ = a.List(ctx)

		case "c", "clear":
			_ = a.Clear(ctx)

		case "e", "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			return
		}
	}
}
