package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vetdesk/client-go/auth"
)

func newLoginCmd() *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "login <email>",
		Short: "Authenticate and start a session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp()
			if err != nil {
				return err
			}
			if password == "" {
				if password, err = promptLine(cmd, "Password: "); err != nil {
					return err
				}
			}

			data, err := a.auth.Login(context.Background(), args[0], password)
			if err != nil {
				return err
			}
			a.sessions.Login(*data)

			name := data.User.FullName
			if name == "" {
				name = data.User.Email
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render("logged in as "+name))
			return nil
		},
	}
	cmd.Flags().StringVarP(&password, "password", "p", "", "password (prompted when omitted)")
	return cmd
}

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the current session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := loadApp()
			if err != nil {
				return err
			}
			// Purely local: credentials are removed here, not revoked server-side.
			a.sessions.Logout()
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "logged out")
			return nil
		},
	}
}

func newRegisterCmd() *cobra.Command {
	var fullName, password string

	cmd := &cobra.Command{
		Use:   "register <email>",
		Short: "Create a new account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp()
			if err != nil {
				return err
			}
			if password == "" {
				if password, err = promptLine(cmd, "Password: "); err != nil {
					return err
				}
			}

			user, err := a.auth.Register(context.Background(), auth.RegisterInput{
				Email:    args[0],
				FullName: fullName,
				Password: password,
			})
			if err != nil {
				return err
			}
			// Registration does not authenticate; the session is untouched.
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render("account created for "+user.Email))
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), dimStyle.Render("run `vetdesk login "+user.Email+"` to sign in"))
			return nil
		},
	}
	cmd.Flags().StringVar(&fullName, "name", "", "full name")
	cmd.Flags().StringVarP(&password, "password", "p", "", "password (prompted when omitted)")
	return cmd
}

func newWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the active session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := loadAuthedApp()
			if err != nil {
				return err
			}

			user := a.sessions.User()
			pairs := [][2]string{
				{"email", user.Email},
				{"name", user.FullName},
				{"tenant", tenantOrDefault(a)},
			}
			if claims, err := a.sessions.TokenClaims(); err == nil {
				if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
					pairs = append(pairs, [2]string{"token expires", exp.Format(time.RFC1123)})
				}
			}
			_, _ = fmt.Fprint(cmd.OutOrStdout(), renderKeyValues(pairs))
			return nil
		},
	}
}

func newTenantCmd() *cobra.Command {
	tenant := &cobra.Command{Use: "tenant", Short: "Show or switch the active clinic tenant"}

	tenant.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the active tenant",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := loadApp()
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), tenantOrDefault(a))
			return nil
		},
	})

	tenant.AddCommand(&cobra.Command{
		Use:   "set <tenant-id>",
		Short: "Switch the active tenant",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp()
			if err != nil {
				return err
			}
			a.sessions.SetTenant(args[0])
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render("tenant set to "+args[0]))
			return nil
		},
	})

	return tenant
}

func tenantOrDefault(a *app) string {
	if tenant := a.sessions.Tenant(); tenant != "" {
		return tenant
	}
	return a.cfg.GetDefaultTenant()
}

func promptLine(cmd *cobra.Command, prompt string) (string, error) {
	_, _ = fmt.Fprint(cmd.OutOrStdout(), prompt)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
