package stats

import (
	"net/http"
	"os"
	"testing"

	"school-activities-system/internal/global/database"
	"school-activities-system/internal/model"
	"school-activities-system/test"

	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	test.Setup()
	(&ModuleStats{}).Init()
	os.Exit(m.Run())
}

func seedStats(t *testing.T) {
	test.ResetDB()
	activities := []model.Activity{
		{
			Name:            "Chess Club",
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 4,
			Participants: []model.Participant{
				{Email: "michael@mergington.edu"},
				{Email: "daniel@mergington.edu"},
				{Email: "eve@mergington.edu"},
			},
		},
		{
			Name:            "Math Club",
			MaxParticipants: 10,
			Participants: []model.Participant{
				{Email: "james@mergington.edu"},
			},
		},
	}
	for i := range activities {
		require.NoError(t, database.DB.Create(&activities[i]).Error)
	}
}

func TestUtilization(t *testing.T) {
	require.Equal(t, 75.0, utilization(3, 4))
	require.Equal(t, 10.0, utilization(1, 10))
	require.Equal(t, 66.67, utilization(2, 3))
	// 容量为 0 时避免除零
	require.Equal(t, 0.0, utilization(0, 0))
	require.Equal(t, 0.0, utilization(5, 0))
}

func TestStatistics(t *testing.T) {
	seedStats(t)

	resp := test.DoRequest(t, Statistics, http.MethodGet, "/admin/statistics", nil, nil)
	test.NoError(t, resp)
	data := test.Data(t, resp)

	require.EqualValues(t, 2, data["total_activities"])
	require.EqualValues(t, 4, data["total_participants"])
	require.EqualValues(t, 14, data["total_capacity"])
	require.InDelta(t, 28.57, data["overall_utilization"], 0.001)

	details, ok := data["activity_details"].([]any)
	require.True(t, ok)
	require.Len(t, details, 2)

	// 按占用率降序
	first := details[0].(map[string]any)
	require.Equal(t, "Chess Club", first["name"])
	require.InDelta(t, 75.0, first["utilization"], 0.001)
}

func TestReports(t *testing.T) {
	seedStats(t)

	resp := test.DoRequest(t, Reports, http.MethodGet, "/admin/reports", nil, nil)
	test.NoError(t, resp)
	data := test.Data(t, resp)

	summary, ok := data["summary"].(map[string]any)
	require.True(t, ok)
	require.EqualValues(t, 2, summary["total_activities"])
	require.EqualValues(t, 4, summary["total_participants"])
	require.InDelta(t, 2.0, summary["average_participants_per_activity"], 0.001)

	activities, ok := data["activities"].([]any)
	require.True(t, ok)
	require.Len(t, activities, 2)

	first := activities[0].(map[string]any)
	require.Equal(t, "Chess Club", first["name"])
	require.InDelta(t, 75.0, first["utilization_percentage"], 0.001)

	emails, ok := first["participants"].([]any)
	require.True(t, ok)
	require.Len(t, emails, 3)
}

func TestReportsEmptyStore(t *testing.T) {
	test.ResetDB()

	resp := test.DoRequest(t, Reports, http.MethodGet, "/admin/reports", nil, nil)
	test.NoError(t, resp)
	data := test.Data(t, resp)

	summary := data["summary"].(map[string]any)
	require.EqualValues(t, 0, summary["total_activities"])
	require.EqualValues(t, 0, summary["average_participants_per_activity"])
}
