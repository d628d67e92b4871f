package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/tweetstats/internal/client/render"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	SetUsername(ctx context.Context, username string) error
	Analyze(ctx context.Context, username string) error
	Show(ctx context.Context) error
	Reverse(ctx context.Context, text string) error
	WhoAmI(ctx context.Context) error
	Export(ctx context.Context, name string) error
	Logout(ctx context.Context) error
}

// runREPL reads commands line by line and dispatches them to a. The loop
// exits on EOF, when ctx is done, or when the user types "exit" or "quit".
//
//	Not logged in:
//	  help, login, exit | quit
//
//	Logged in:
//	  help
//	  user <name>        set the username without fetching
//	  analyze [name]     fetch and chart public metrics (alias: a)
//	  show               print the current view
//	  reverse <text>     reverse text
//	  whoami             print the signed-in display name
//	  export [name]      save the current chart as PNG
//	  logout
//	  exit | quit
//
// Handler errors are printed and the loop carries on.
func runREPL(ctx context.Context, a execIface, statusFn func() string, r *bufio.Reader) {
	for ctx.Err() == nil {
		printlnFn(fmt.Sprintf("ts %s> ", statusFn()))
		line, readErr := r.ReadString('\n')
		if readErr != nil && line == "" {
			return
		}

		cmd, rest := splitCommand(line)
		if cmd == "" {
			continue
		}

		var err error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: user, (a)nalyze, show, reverse, whoami, export, logout, exit")
			} else {
				printlnFn("Available commands: login, exit")
			}

		case "exit", "quit":
			printlnFn("Bye!")
			return

		case "login":
			if a.isLoggedIn() {
				printlnFn("Already logged in")
				break
			}
			err = a.Login(ctx)

		case "user", "a", "analyze", "show", "reverse", "whoami", "export", "logout":
			if !a.isLoggedIn() {
				printlnFn("Please log in first (type 'login')")
				break
			}
			err = dispatch(ctx, a, cmd, rest)

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			printlnFn(render.Error(err))
		}
		if readErr != nil {
			return
		}
	}
}

func dispatch(ctx context.Context, a execIface, cmd, rest string) error {
	arg := strings.TrimSpace(rest)
	switch cmd {
	case "user":
		return a.SetUsername(ctx, arg)
	case "a", "analyze":
		return a.Analyze(ctx, arg)
	case "show":
		return a.Show(ctx)
	case "reverse":
		return a.Reverse(ctx, rest)
	case "whoami":
		return a.WhoAmI(ctx)
	case "export":
		return a.Export(ctx, arg)
	case "logout":
		return a.Logout(ctx)
	}
	return nil
}

// splitCommand returns the first word of line and the remainder with its
// inner spacing kept.
func splitCommand(line string) (string, string) {
	line = strings.TrimRight(line, "\r\n")
	trimmed := strings.TrimLeft(line, " \t")
	cmd, rest, _ := strings.Cut(trimmed, " ")
	return strings.TrimSpace(cmd), rest
}
