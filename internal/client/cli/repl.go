package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Products(ctx context.Context, args []string) error
	Show(ctx context.Context, args []string) error
	Add(ctx context.Context, args []string) error
	Cart(ctx context.Context) error
	Remove(ctx context.Context, args []string) error
	Checkout(ctx context.Context) error
	Orders(ctx context.Context) error
	Messages(ctx context.Context) error
	Send(ctx context.Context, args []string) error
}

const (
	helpLoggedOut = "Available commands: login, cart, add <id> [qty], remove <id>, exit"
	helpLoggedIn  = "Available commands: products [query], show <id>, add <id> [qty], cart, remove <id>, checkout, orders, messages, send <text>, logout, exit"
)

// runREPL starts a simple read–eval–print loop for the VoltShop CLI.
//
// It reads a line from reader, parses the first token as the command and
// passes the rest as arguments. Errors returned by command handlers are
// printed with describeError and the loop continues. The loop exits on EOF
// or when the user types "exit" or "quit".
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("voltshop%s> ", statusFn()))
		line, err := readLine(reader)
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpLoggedIn)
			} else {
				printlnFn(helpLoggedOut)
			}
		case "login":
			err = a.Login(ctx)
		case "logout":
			err = a.Logout(ctx)
		case "products", "p":
			err = a.Products(ctx, args)
		case "show":
			err = a.Show(ctx, args)
		case "add":
			err = a.Add(ctx, args)
		case "cart":
			err = a.Cart(ctx)
		case "remove", "rm":
			err = a.Remove(ctx, args)
		case "checkout":
			err = a.Checkout(ctx)
		case "orders":
			err = a.Orders(ctx)
		case "messages":
			err = a.Messages(ctx)
		case "send":
			err = a.Send(ctx, args)
		case "exit", "quit":
			printlnFn("Bye!")
			return
		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			printlnFn(describeError(err))
		}
	}
}
