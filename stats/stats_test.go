package stats_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vetdesk/client-go/api"
	"github.com/vetdesk/client-go/stats"
)

func newService(t *testing.T, handler http.HandlerFunc) *stats.Service {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	apiClient, err := api.NewClient(server.URL, "cityclinic")
	require.NoError(t, err)
	service, err := stats.NewService(apiClient)
	require.NoError(t, err)
	return service
}

func TestDashboard(t *testing.T) {
	service := newService(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/stats/dashboard", r.URL.Path)
		_, _ = io.WriteString(w, `{
			"total_patients": 124,
			"patients_this_month": 12,
			"today_appointments": 8,
			"today_completed": 3,
			"pending_appointments": 15,
			"revenue_this_month": 12450.00
		}`)
	})

	summary, err := service.Dashboard(context.Background())
	require.NoError(t, err)
	require.Equal(t, 124, summary.TotalPatients)
	require.Equal(t, 8, summary.TodayAppointments)
	require.Equal(t, 12450.00, summary.RevenueThisMonth)
}

func TestAppointments(t *testing.T) {
	t.Run("decodes the summary", func(t *testing.T) {
		service := newService(t, func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/appointments/stats", r.URL.Path)
			_, _ = io.WriteString(w, `{
				"total_appointments": 310,
				"appointments_this_week": 22,
				"appointments_this_month": 87,
				"no_show_rate": 0.05,
				"average_duration_minutes": 32.5
			}`)
		})

		summary, err := service.Appointments(context.Background())
		require.NoError(t, err)
		require.Equal(t, 310, summary.TotalAppointments)
		require.NotNil(t, summary.AverageDurationMinutes)
		require.Equal(t, 32.5, *summary.AverageDurationMinutes)
	})

	t.Run("average duration can be null", func(t *testing.T) {
		service := newService(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, `{"total_appointments": 0, "average_duration_minutes": null}`)
		})

		summary, err := service.Appointments(context.Background())
		require.NoError(t, err)
		require.Nil(t, summary.AverageDurationMinutes)
	})
}
