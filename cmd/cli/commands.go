package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/amirasaad/exchange/pkg/app"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

type appLoader func() (*app.App, error)

var (
	headerColor  = color.New(color.FgCyan, color.Bold)
	valueColor   = color.New(color.FgGreen)
	warningColor = color.New(color.FgYellow)
)

func newRootCmd(load appLoader) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "exchange",
		Short:         "Currency conversion with per-user history",
		Version:       "v1.0.0",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.AddCommand(
		convertCmd(load),
		historyCmd(load),
		createUserCmd(load),
	)
	return rootCmd
}

func convertCmd(load appLoader) *cobra.Command {
	var username string
	cmd := &cobra.Command{
		Use:   "convert <from> <to> [amount]",
		Short: "Convert an amount between two currencies",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount := 1.0
			if len(args) == 3 {
				var err error
				if amount, err = strconv.ParseFloat(args[2], 64); err != nil {
					return fmt.Errorf("invalid amount %q: %w", args[2], err)
				}
				if math.IsNaN(amount) || math.IsInf(amount, 0) {
					return fmt.Errorf("invalid amount %q: must be a finite number", args[2])
				}
			}
			a, err := load()
			if err != nil {
				return err
			}

			conv, err := a.ExchangeService.Convert(cmd.Context(), args[0], args[1], amount)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s = %s %s (rate %s)\n",
				valueColor.Sprintf("%.4f", conv.OriginAmount), conv.OriginCurrency,
				valueColor.Sprintf("%.4f", conv.DestinationAmount), conv.DestinationCurrency,
				valueColor.Sprintf("%.6f", conv.Rate),
			)
			if username == "" {
				return nil
			}
			record, err := a.ExchangeService.Record(cmd.Context(), conv, username)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Recorded as conversion %d for %s\n", record.ID, username)
			return nil
		},
	}
	cmd.Flags().StringVarP(&username, "user", "u", "", "Record the conversion in this user's history")
	return cmd
}

func historyCmd(load appLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "history <username>",
		Short: "List the conversions of a user, oldest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := load()
			if err != nil {
				return err
			}
			history, err := a.ExchangeService.HistoryByUsername(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(history) == 0 {
				warningColor.Fprintf(out, "No conversions for %s\n", args[0])
				return nil
			}
			headerColor.Fprintf(out, "%-6s %-20s %-4s %-4s %14s %12s %14s\n",
				"ID", "TIME", "FROM", "TO", "AMOUNT", "RATE", "RESULT")
			for _, c := range history {
				fmt.Fprintf(out, "%-6d %-20s %-4s %-4s %14.4f %12.6f %14.4f\n",
					c.ID, c.ConversionTime.Format("2006-01-02 15:04:05"),
					c.OriginCurrency, c.DestinationCurrency,
					c.OriginAmount, c.Rate, c.DestinationAmount)
			}
			return nil
		},
	}
}

func createUserCmd(load appLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "create-user <username> <email>",
		Short: "Create a user, reading the password from the terminal",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.ErrOrStderr(), "Password: ")
			password, err := readPassword(cmd.InOrStdin())
			fmt.Fprintln(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			if password == "" {
				return errors.New("password cannot be empty")
			}

			a, err := load()
			if err != nil {
				return err
			}
			u, err := a.UserService.Create(cmd.Context(), args[0], args[1], password)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created user %s (%s)\n", valueColor.Sprint(u.Username), u.ID)
			return nil
		},
	}
}

// readPassword reads without echo when in is a terminal, otherwise it reads
// a single line.
func readPassword(in io.Reader) (string, error) {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		b, err := term.ReadPassword(int(f.Fd()))
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
