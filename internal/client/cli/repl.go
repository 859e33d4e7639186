package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

type execIface interface {
	isLoggedIn() bool
	done() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	SubmitLoan(ctx context.Context) error
	UploadDocuments(ctx context.Context) error
	Dashboard(ctx context.Context) error
	Logout(ctx context.Context) error
}

// runREPL reads commands until exit or end of input. Handlers surface
// their own inline messages, so errors are not reported here.
func runREPL(ctx context.Context, a execIface, status func() string, scanner *bufio.Scanner, w io.Writer) {
	for {
		if a.done() {
			return
		}
		fmt.Fprintf(w, "loan%s> ", status())
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}

		switch parts[0] {
		case "help":
			if a.isLoggedIn() {
				fmt.Fprintln(w, "Available commands: apply, upload, dashboard, logout, exit")
			} else {
				fmt.Fprintln(w, "Available commands: register, login, exit")
			}
		case "register":
			_ = a.Register(ctx)
		case "login":
			_ = a.Login(ctx)
		case "apply":
			_ = a.SubmitLoan(ctx)
		case "upload":
			_ = a.UploadDocuments(ctx)
		case "dashboard":
			_ = a.Dashboard(ctx)
		case "logout":
			_ = a.Logout(ctx)
		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return
		default:
			fmt.Fprintln(w, "Unknown command:", parts[0])
		}
	}
}
