package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newStatsCmd() *cobra.Command {
	root := &cobra.Command{Use: "stats", Short: "Clinic analytics"}
	root.AddCommand(newStatsDashboardCmd())
	root.AddCommand(newStatsAppointmentsCmd())
	return root
}

func newStatsDashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show the dashboard summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := loadAuthedApp()
			if err != nil {
				return err
			}
			summary, err := a.stats.Dashboard(context.Background())
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), titleStyle.Render("Dashboard"))
			_, _ = fmt.Fprint(cmd.OutOrStdout(), renderKeyValues([][2]string{
				{"total patients", strconv.Itoa(summary.TotalPatients)},
				{"patients this month", strconv.Itoa(summary.PatientsThisMonth)},
				{"appointments today", strconv.Itoa(summary.TodayAppointments)},
				{"completed today", strconv.Itoa(summary.TodayCompleted)},
				{"pending", strconv.Itoa(summary.PendingAppointments)},
				{"revenue this month", fmt.Sprintf("%.2f", summary.RevenueThisMonth)},
			}))
			return nil
		},
	}
}

func newStatsAppointmentsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "appointments",
		Short: "Show the appointment summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := loadAuthedApp()
			if err != nil {
				return err
			}
			summary, err := a.stats.Appointments(context.Background())
			if err != nil {
				return err
			}

			avgDuration := "n/a"
			if summary.AverageDurationMinutes != nil {
				avgDuration = fmt.Sprintf("%.1f min", *summary.AverageDurationMinutes)
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), titleStyle.Render("Appointments"))
			_, _ = fmt.Fprint(cmd.OutOrStdout(), renderKeyValues([][2]string{
				{"total", strconv.Itoa(summary.TotalAppointments)},
				{"this week", strconv.Itoa(summary.AppointmentsThisWeek)},
				{"this month", strconv.Itoa(summary.AppointmentsThisMonth)},
				{"no-show rate", fmt.Sprintf("%.1f%%", summary.NoShowRate*100)},
				{"average duration", avgDuration},
			}))
			return nil
		},
	}
}
