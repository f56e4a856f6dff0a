package main

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/vetdesk/client-go/appointments"
	"github.com/vetdesk/client-go/internal/utils"
)

const dateLayout = "2006-01-02"

func newAppointmentsCmd() *cobra.Command {
	root := &cobra.Command{Use: "appointments", Short: "Manage the appointment schedule"}
	root.AddCommand(newAppointmentsListCmd())
	root.AddCommand(newAppointmentsTodayCmd())
	root.AddCommand(newAppointmentsGetCmd())
	root.AddCommand(newAppointmentsCreateCmd())
	root.AddCommand(newAppointmentsUpdateCmd())
	root.AddCommand(newAppointmentsDeleteCmd())
	return root
}

func newAppointmentsListCmd() *cobra.Command {
	var from, to string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List appointments, optionally within a date range",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := loadAuthedApp()
			if err != nil {
				return err
			}

			var list []appointments.Appointment
			if from != "" || to != "" {
				fromDay, err := parseDay(from)
				if err != nil {
					return err
				}
				toDay, err := parseDay(to)
				if err != nil {
					return err
				}
				list, err = a.appointments.ListRange(context.Background(), fromDay, toDay)
				if err != nil {
					return err
				}
			} else {
				list, err = a.appointments.List(context.Background())
				if err != nil {
					return err
				}
			}

			printAppointments(cmd, list)
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "end date (YYYY-MM-DD)")
	return cmd
}

func newAppointmentsTodayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "today",
		Short: "List today's appointments",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := loadAuthedApp()
			if err != nil {
				return err
			}
			list, err := a.appointments.Today(context.Background())
			if err != nil {
				return err
			}
			printAppointments(cmd, list)
			return nil
		},
	}
}

func newAppointmentsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one appointment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadAuthedApp()
			if err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			appt, err := a.appointments.Get(context.Background(), id)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprint(cmd.OutOrStdout(), renderKeyValues([][2]string{
				{"patient", strconv.FormatInt(appt.PatientID, 10)},
				{"time", appt.AppointmentTime.Local().Format(time.RFC1123)},
				{"duration", fmt.Sprintf("%d min", appt.DurationMinutes)},
				{"status", string(appt.Status)},
				{"notes", appt.Notes},
				{"diagnosis", appt.Diagnosis},
			}))
			return nil
		},
	}
}

func newAppointmentsCreateCmd() *cobra.Command {
	var patientID int64
	var date, timeOfDay, notes string
	var duration int

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Schedule an appointment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := loadAuthedApp()
			if err != nil {
				return err
			}

			// Date and time are separate inputs, resolved to one local
			// timestamp before validation.
			at, err := time.ParseInLocation(dateLayout+" 15:04", date+" "+timeOfDay, time.Local)
			if err != nil {
				return fmt.Errorf("invalid date/time: use --date YYYY-MM-DD --time HH:MM")
			}

			appt, err := a.appointments.Create(context.Background(), appointments.CreateInput{
				PatientID:       patientID,
				AppointmentTime: at,
				DurationMinutes: duration,
				Notes:           notes,
			})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render(
				fmt.Sprintf("scheduled appointment %d for %s", appt.ID, appt.AppointmentTime.Local().Format(time.RFC1123))))
			return nil
		},
	}
	cmd.Flags().Int64Var(&patientID, "patient", 0, "patient id (required)")
	cmd.Flags().StringVar(&date, "date", "", "date (YYYY-MM-DD, required)")
	cmd.Flags().StringVar(&timeOfDay, "time", "", "time of day (HH:MM, required)")
	cmd.Flags().IntVar(&duration, "duration", 0, "duration in minutes (default 30)")
	cmd.Flags().StringVar(&notes, "notes", "", "notes")
	return cmd
}

func newAppointmentsUpdateCmd() *cobra.Command {
	var status, notes, diagnosis string
	var duration int

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update an appointment (only provided fields are sent)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadAuthedApp()
			if err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			var patch appointments.UpdateInput
			flags := cmd.Flags()
			if flags.Changed("status") {
				patch.Status = utils.Ptr(appointments.Status(status))
			}
			if flags.Changed("notes") {
				patch.Notes = utils.Ptr(notes)
			}
			if flags.Changed("diagnosis") {
				patch.Diagnosis = utils.Ptr(diagnosis)
			}
			if flags.Changed("duration") {
				patch.DurationMinutes = utils.Ptr(duration)
			}

			appt, err := a.appointments.Update(context.Background(), id, patch)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(),
				successStyle.Render(fmt.Sprintf("updated appointment %d", appt.ID)))
			return nil
		},
	}
	cmd.Flags().StringVar(&status, "status", "", "scheduled|confirmed|completed|cancelled|no_show")
	cmd.Flags().StringVar(&notes, "notes", "", "notes")
	cmd.Flags().StringVar(&diagnosis, "diagnosis", "", "diagnosis")
	cmd.Flags().IntVar(&duration, "duration", 0, "duration in minutes")
	return cmd
}

func newAppointmentsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Cancel and remove an appointment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadAuthedApp()
			if err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := a.appointments.Delete(context.Background(), id); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), fmt.Sprintf("deleted appointment %d", id))
			return nil
		},
	}
}

func printAppointments(cmd *cobra.Command, list []appointments.Appointment) {
	rows := make([][]string, 0, len(list))
	for _, appt := range list {
		rows = append(rows, []string{
			strconv.FormatInt(appt.ID, 10),
			strconv.FormatInt(appt.PatientID, 10),
			appt.AppointmentTime.Local().Format("2006-01-02 15:04"),
			fmt.Sprintf("%d min", appt.DurationMinutes),
			string(appt.Status),
		})
	}
	_, _ = fmt.Fprint(cmd.OutOrStdout(), renderTable(
		[]string{"ID", "PATIENT", "WHEN", "DURATION", "STATUS"}, rows))
}

func parseDay(arg string) (time.Time, error) {
	day, err := time.ParseInLocation(dateLayout, arg, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", arg)
	}
	return day, nil
}
