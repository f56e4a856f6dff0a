package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vetdesk/client-go/profile"
)

func newProfileCmd() *cobra.Command {
	root := &cobra.Command{Use: "profile", Short: "Manage your own account"}
	root.AddCommand(newProfileShowCmd())
	root.AddCommand(newProfileUpdateCmd())
	root.AddCommand(newProfilePasswdCmd())
	return root
}

func newProfileShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show your profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := loadAuthedApp()
			if err != nil {
				return err
			}
			user, err := a.profile.Get(context.Background())
			if err != nil {
				return err
			}
			a.sessions.UpdateUser(user)

			_, _ = fmt.Fprint(cmd.OutOrStdout(), renderKeyValues([][2]string{
				{"email", user.Email},
				{"name", user.FullName},
				{"photo", user.PhotoURL},
			}))
			return nil
		},
	}
}

func newProfileUpdateCmd() *cobra.Command {
	var input profile.UpdateInput

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update your profile (only changed fields are sent)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := loadAuthedApp()
			if err != nil {
				return err
			}

			user, err := a.profile.Update(context.Background(), a.sessions.User(), input)
			if err != nil {
				return err
			}
			a.sessions.UpdateUser(user)
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render("profile updated"))
			return nil
		},
	}
	cmd.Flags().StringVar(&input.FullName, "name", "", "full name")
	cmd.Flags().StringVar(&input.Email, "email", "", "email address")
	cmd.Flags().StringVar(&input.PhotoURL, "photo", "", "photo URL")
	return cmd
}

func newProfilePasswdCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "passwd",
		Short: "Change your password",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := loadAuthedApp()
			if err != nil {
				return err
			}

			oldPassword, err := promptLine(cmd, "Current password: ")
			if err != nil {
				return err
			}
			newPassword, err := promptLine(cmd, "New password: ")
			if err != nil {
				return err
			}

			user, err := a.profile.ChangePassword(context.Background(), oldPassword, newPassword)
			if err != nil {
				return err
			}
			a.sessions.UpdateUser(user)
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render("password changed"))
			return nil
		},
	}
}
