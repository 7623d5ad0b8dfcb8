package cli

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"
)

func (a *App) getStatus() string {
	s := ""
	if a.userName != "" {
		s = a.userName + " "
	}
	if a.Mode != "" {
		s = s + string(a.Mode)
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

func (a *App) Root(ctx context.Context) {

	log.Println("Welcome to FraudDetect-Z CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	a.Login(ctx)

	go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)
	go a.StartStatusPrinter(ctx)

	for {
		fmt.Printf("fdz %s> ", a.getStatus())
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Println("Available commands: create, verify <id>, (l)ist, show <id>, stats, refresh, attach <id> <file>, logout, exit")
			} else {
				fmt.Println("Available commands: register, login, exit")
			}

		case "register":
			a.Register(ctx)
		case "login":
			a.Login(ctx)
		case "logout":
			a.Logout(ctx)
		case "create":
			a.create(ctx)
		case "verify":
			if len(args) == 0 {
				fmt.Println("Usage: verify <claim id>")
				continue
			}
			a.verify(ctx, args[0])
		case "l", "list":
			a.list(ctx)
		case "show":
			if len(args) == 0 {
				fmt.Println("Usage: show <claim id>")
				continue
			}
			a.show(args[0])
		case "stats":
			a.stats(ctx)
		case "refresh":
			a.refresh(ctx)
		case "attach":
			if len(args) < 2 {
				fmt.Println("Usage: attach <claim id> <file path>")
				continue
			}
			a.attach(ctx, args[0], args[1])
		case "exit", "quit":
			fmt.Println("Bye!")
			return
		default:
			fmt.Println("Unknown command:", cmd)
		}
	}

}
