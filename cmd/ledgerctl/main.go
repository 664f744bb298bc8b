// ledgerctl is a command line client for the ledger API.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/spf13/pflag"
	"io"
	"ledger/internal/app/logger"
	"ledger/pkg/client"
	"os"
	"os/signal"
	"time"
)

const usage = `usage: ledgerctl [-u url] <command> [flags]

commands:
  user-create   -e email -w password [--first-name name] [--surname name]
  user          <user id>
  history       <user id> [--skip n] [--count n]
  direct        -s sender -m amount
  transfer      -s sender -r receiver -m amount
  get           <transaction id>
  accept        <transaction id>
  reject        <transaction id>
  refund        <transaction id>
`

var errUsage = errors.New("invalid usage")

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprint(os.Stderr, usage)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	global := pflag.NewFlagSet("ledgerctl", pflag.ContinueOnError)
	apiURL := global.StringP("url", "u", envOr("LEDGER_URL", "http://localhost:8088"), "Ledger API base URL")
	timeout := global.DurationP("timeout", "t", 10*time.Second, "Request timeout")
	verbose := global.BoolP("verbose", "v", false, "Verbose output")
	global.SetInterspersed(false)
	if err := global.Parse(args); err != nil {
		return fmt.Errorf("%v: %w", err, errUsage)
	}

	rest := global.Args()
	if len(rest) == 0 {
		return errUsage
	}

	l := logger.New(*verbose, false)
	if !*verbose {
		l.Logger = l.Level(zerolog.WarnLevel)
	}

	c, err := client.New(*apiURL, client.WithLogger(l.Logger))
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, *timeout)
	defer cancel()

	res, err := dispatch(ctx, c, rest[0], rest[1:])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}

func dispatch(ctx context.Context, c *client.Client, cmd string, args []string) (interface{}, error) {
	fs := pflag.NewFlagSet(cmd, pflag.ContinueOnError)

	switch cmd {
	case "user-create":
		email := fs.StringP("email", "e", "", "Email")
		password := fs.StringP("password", "w", "", "Password")
		firstName := fs.String("first-name", "", "First name")
		surname := fs.String("surname", "", "Surname")
		if err := fs.Parse(args); err != nil {
			return nil, fmt.Errorf("%v: %w", err, errUsage)
		}
		return c.CreateUser(ctx, &client.CreateUserRequest{
			Email:     *email,
			Password:  *password,
			FirstName: optional(*firstName),
			Surname:   optional(*surname),
		})

	case "user":
		id, err := argID(fs, args)
		if err != nil {
			return nil, err
		}
		return c.User(ctx, id)

	case "history":
		skip := fs.Int("skip", 0, "Transactions to skip")
		count := fs.Int("count", 0, "Transactions to return, 0 for all")
		id, err := argID(fs, args)
		if err != nil {
			return nil, err
		}
		return c.UserTransactions(ctx, id, *skip, *count)

	case "direct", "transfer":
		sender := fs.StringP("sender", "s", "", "Sender user id")
		receiver := fs.StringP("receiver", "r", "", "Receiver user id")
		amount := fs.StringP("amount", "m", "", "Amount")
		if err := fs.Parse(args); err != nil {
			return nil, fmt.Errorf("%v: %w", err, errUsage)
		}
		in, err := transactionRequest(cmd == "transfer", *sender, *receiver, *amount)
		if err != nil {
			return nil, err
		}
		return c.CreateTransaction(ctx, in)

	case "get":
		id, err := argID(fs, args)
		if err != nil {
			return nil, err
		}
		return c.Transaction(ctx, id)

	case "accept", "reject":
		id, err := argID(fs, args)
		if err != nil {
			return nil, err
		}
		return c.Resolve(ctx, id, cmd+"ed")

	case "refund":
		id, err := argID(fs, args)
		if err != nil {
			return nil, err
		}
		return c.Refund(ctx, id)
	}

	return nil, fmt.Errorf("unknown command %q: %w", cmd, errUsage)
}

func transactionRequest(transfer bool, sender, receiver, amount string) (*client.CreateTransactionRequest, error) {
	senderID, err := uuid.Parse(sender)
	if err != nil {
		return nil, fmt.Errorf("sender: %v: %w", err, errUsage)
	}

	m, err := decimal.NewFromString(amount)
	if err != nil {
		return nil, fmt.Errorf("amount: %v: %w", err, errUsage)
	}

	in := &client.CreateTransactionRequest{UserID: senderID, Amount: m}
	if transfer {
		receiverID, err := uuid.Parse(receiver)
		if err != nil {
			return nil, fmt.Errorf("receiver: %v: %w", err, errUsage)
		}
		in.ReceiverID = &receiverID
	}

	return in, nil
}

func argID(fs *pflag.FlagSet, args []string) (uuid.UUID, error) {
	if err := fs.Parse(args); err != nil {
		return uuid.Nil, fmt.Errorf("%v: %w", err, errUsage)
	}
	if fs.NArg() != 1 {
		return uuid.Nil, fmt.Errorf("expected one id: %w", errUsage)
	}
	id, err := uuid.Parse(fs.Arg(0))
	if err != nil {
		return uuid.Nil, fmt.Errorf("id: %v: %w", err, errUsage)
	}
	return id, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func envOr(key, def string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return def
}
