package main

import (
	"fmt"
	"os"

	"github.com/common-nighthawk/go-figure"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/vetdesk/client-go/api"
	"github.com/vetdesk/client-go/appointments"
	"github.com/vetdesk/client-go/auth"
	"github.com/vetdesk/client-go/internal/config"
	"github.com/vetdesk/client-go/patients"
	"github.com/vetdesk/client-go/profile"
	"github.com/vetdesk/client-go/session"
	"github.com/vetdesk/client-go/stats"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, errorStyle.Render(err.Error()))
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "vetdesk",
		Short:         "Command-line client for the VetDesk clinic API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			setupLogging(verbose)
		},
		Run: func(cmd *cobra.Command, _ []string) {
			displayAppname(config.New().GetAppName())
			_ = cmd.Help()
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newLoginCmd())
	root.AddCommand(newLogoutCmd())
	root.AddCommand(newRegisterCmd())
	root.AddCommand(newWhoamiCmd())
	root.AddCommand(newTenantCmd())
	root.AddCommand(newPatientsCmd())
	root.AddCommand(newAppointmentsCmd())
	root.AddCommand(newProfileCmd())
	root.AddCommand(newStatsCmd())
	return root
}

func setupLogging(verbose bool) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
}

func displayAppname(appname string) {
	myFigure := figure.NewFigure(appname, "cybermedium", true)
	myFigure.Print()
	fmt.Println()
}

// app bundles the configured SDK: one session manager restored from disk and
// one service per API resource, all sharing a single HTTP client.
type app struct {
	cfg          config.Config
	sessions     *session.Manager
	auth         *auth.Service
	patients     *patients.Service
	appointments *appointments.Service
	profile      *profile.Service
	stats        *stats.Service
}

func loadApp() (*app, error) {
	cfg := config.New()

	store := session.NewFileStore(cfg.GetDataFolder())
	sessions, err := session.NewManager(store)
	if err != nil {
		return nil, err
	}
	sessions.Restore()

	apiClient, err := api.NewClient(cfg.GetAPIBaseURL(), cfg.GetDefaultTenant(),
		api.WithTokenSource(sessions.Token),
		api.WithTenantSource(sessions.Tenant),
	)
	if err != nil {
		return nil, err
	}

	authService, err := auth.NewService(apiClient)
	if err != nil {
		return nil, err
	}
	patientService, err := patients.NewService(apiClient)
	if err != nil {
		return nil, err
	}
	appointmentService, err := appointments.NewService(apiClient)
	if err != nil {
		return nil, err
	}
	profileService, err := profile.NewService(apiClient)
	if err != nil {
		return nil, err
	}
	statsService, err := stats.NewService(apiClient)
	if err != nil {
		return nil, err
	}

	return &app{
		cfg:          cfg,
		sessions:     sessions,
		auth:         authService,
		patients:     patientService,
		appointments: appointmentService,
		profile:      profileService,
		stats:        statsService,
	}, nil
}

// loadAuthedApp is the command-line route guard: guarded commands run only
// with an authenticated session, anything else is pointed at login.
func loadAuthedApp() (*app, error) {
	a, err := loadApp()
	if err != nil {
		return nil, err
	}
	switch session.Guard(a.sessions) {
	case session.DecisionAllow:
		return a, nil
	case session.DecisionLoading:
		return nil, errors.New("session is still restoring, try again")
	default:
		return nil, errors.New("not logged in: run `vetdesk login` first")
	}
}
