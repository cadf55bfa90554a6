package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/krishiu/krishi-cli/internal/client/models"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	role() models.Role
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Status(ctx context.Context) error
	Profile(ctx context.Context) error
	AddProfile(ctx context.Context) error
	Dashboard(ctx context.Context) error
	Collaborations(ctx context.Context) error
	Farmers(ctx context.Context) error
	Landlords(ctx context.Context) error
	Logout(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the KrishiConnect CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help           — show available commands
//	  - register       — create an account
//	  - login          — authenticate
//	  - exit | quit    — leave the program
//
//	Logged in as farmer or landlord:
//	  - status         — show whether a profile exists
//	  - profile        — print the profile details
//	  - addprofile     — create the role profile from the dashboard
//	  - logout         — log out
//
//	Logged in as admin:
//	  - dashboard      — aggregate statistics
//	  - collabs        — list collaborations
//	  - farmers        — list farmer profiles
//	  - landlords      — list landlord profiles
//	  - logout         — log out
//
// Commands outside the session's role are treated as unknown. Any errors
// returned by command handlers are ignored here; handlers should log their
// own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("krishi %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		if !a.isLoggedIn() {
			switch cmd {
			case "help":
				printlnFn("Available commands: register, login, exit")
			case "register":
				_ = a.Register(ctx)
			case "login":
				_ = a.Login(ctx)
			case "exit", "quit":
				printlnFn("Bye!")
				return
			default:
				printlnFn("Unknown command:", cmd)
			}
			continue
		}

		admin := a.role() == models.RoleAdmin

		switch cmd {
		case "help":
			if admin {
				printlnFn("Available commands: dashboard, collabs, farmers, landlords, logout, exit")
			} else {
				printlnFn("Available commands: status, profile, addprofile, logout, exit")
			}

		case "status":
			if admin {
				printlnFn("Unknown command:", cmd)
				continue
			}
			_ = a.Status(ctx)

		case "profile":
			if admin {
				printlnFn("Unknown command:", cmd)
				continue
			}
			_ = a.Profile(ctx)

		case "addprofile":
			if admin {
				printlnFn("Unknown command:", cmd)
				continue
			}
			_ = a.AddProfile(ctx)

		case "dashboard":
			if !admin {
				printlnFn("Unknown command:", cmd)
				continue
			}
			_ = a.Dashboard(ctx)

		case "collabs":
			if !admin {
				printlnFn("Unknown command:", cmd)
				continue
			}
			_ = a.Collaborations(ctx)

		case "farmers":
			if !admin {
				printlnFn("Unknown command:", cmd)
				continue
			}
			_ = a.Farmers(ctx)

		case "landlords":
			if !admin {
				printlnFn("Unknown command:", cmd)
				continue
			}
			_ = a.Landlords(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
