package membership

import (
	"fmt"
	"net/http"
	"net/url"
	"os"
	"testing"

	"school-activities-system/config"
	"school-activities-system/internal/global/database"
	"school-activities-system/internal/global/response"
	"school-activities-system/internal/model"
	"school-activities-system/internal/module/activity"
	"school-activities-system/test"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	test.Setup()
	config.Get().Features.RequireApproval = true
	(&ModuleMembership{}).Init()
	(&activity.ModuleActivity{}).Init()
	os.Exit(m.Run())
}

func seedDramaClub(t *testing.T) model.Activity {
	test.ResetDB()
	a := model.Activity{
		Name:            "Drama Club",
		MaxParticipants: 3,
		Participants: []model.Participant{
			{Email: "ella@mergington.edu"},
		},
	}
	require.NoError(t, database.DB.Create(&a).Error)
	return a
}

func signup(t *testing.T, name, email string) response.ResponseBody {
	return test.DoRequest(t, activity.Signup, http.MethodPost,
		fmt.Sprintf("/activities/%s/signup?email=%s", url.PathEscape(name), email),
		gin.Params{{Key: "name", Value: name}}, nil)
}

func idParam(id uint) gin.Params {
	return gin.Params{{Key: "id", Value: fmt.Sprint(id)}}
}

func pendingRequest(t *testing.T, activityID uint, email string) model.MembershipRequest {
	var req model.MembershipRequest
	require.NoError(t, database.DB.
		Where("activity_id = ? AND email = ?", activityID, email).
		First(&req).Error)
	return req
}

func TestSignupCreatesPendingRequest(t *testing.T) {
	a := seedDramaClub(t)

	resp := signup(t, "Drama Club", "scarlett@mergington.edu")
	test.NoError(t, resp)

	req := pendingRequest(t, a.ID, "scarlett@mergington.edu")
	require.Equal(t, model.RequestPending, req.Status)

	// 申请不直接入册
	var count int64
	require.NoError(t, database.DB.Model(&model.Participant{}).
		Where("activity_id = ?", a.ID).Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestSignupDuplicatePendingRequest(t *testing.T) {
	seedDramaClub(t)

	test.NoError(t, signup(t, "Drama Club", "scarlett@mergington.edu"))
	resp := signup(t, "Drama Club", "scarlett@mergington.edu")
	test.ErrorEqual(t, response.ErrRequestPending, resp)
}

func TestSignupAlreadyEnrolled(t *testing.T) {
	seedDramaClub(t)

	resp := signup(t, "Drama Club", "ella@mergington.edu")
	test.ErrorEqual(t, response.ErrAlreadySignedUp, resp)
}

func TestApproveEnrolls(t *testing.T) {
	a := seedDramaClub(t)

	test.NoError(t, signup(t, "Drama Club", "scarlett@mergington.edu"))
	req := pendingRequest(t, a.ID, "scarlett@mergington.edu")

	resp := test.DoRequest(t, ApproveRequest, http.MethodPost,
		fmt.Sprintf("/admin/memberships/%d/approve", req.ID), idParam(req.ID), nil)
	test.NoError(t, resp)

	req = pendingRequest(t, a.ID, "scarlett@mergington.edu")
	require.Equal(t, model.RequestApproved, req.Status)

	var count int64
	require.NoError(t, database.DB.Model(&model.Participant{}).
		Where("activity_id = ? AND email = ?", a.ID, "scarlett@mergington.edu").
		Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestApproveResolvedRequest(t *testing.T) {
	a := seedDramaClub(t)

	test.NoError(t, signup(t, "Drama Club", "scarlett@mergington.edu"))
	req := pendingRequest(t, a.ID, "scarlett@mergington.edu")

	test.NoError(t, test.DoRequest(t, ApproveRequest, http.MethodPost,
		fmt.Sprintf("/admin/memberships/%d/approve", req.ID), idParam(req.ID), nil))

	resp := test.DoRequest(t, ApproveRequest, http.MethodPost,
		fmt.Sprintf("/admin/memberships/%d/approve", req.ID), idParam(req.ID), nil)
	test.ErrorEqual(t, response.ErrRequestNotPending, resp)
}

func TestApproveFullActivity(t *testing.T) {
	a := seedDramaClub(t)
	require.NoError(t, database.DB.Create(&model.Participant{ActivityID: a.ID, Email: "x@mergington.edu"}).Error)
	require.NoError(t, database.DB.Create(&model.Participant{ActivityID: a.ID, Email: "y@mergington.edu"}).Error)

	test.NoError(t, signup(t, "Drama Club", "late@mergington.edu"))
	req := pendingRequest(t, a.ID, "late@mergington.edu")

	resp := test.DoRequest(t, ApproveRequest, http.MethodPost,
		fmt.Sprintf("/admin/memberships/%d/approve", req.ID), idParam(req.ID), nil)
	test.ErrorEqual(t, response.ErrActivityFull, resp)

	// 容量不足时申请保持待审批
	req = pendingRequest(t, a.ID, "late@mergington.edu")
	require.Equal(t, model.RequestPending, req.Status)
}

func TestRejectLeavesRosterUnchanged(t *testing.T) {
	a := seedDramaClub(t)

	test.NoError(t, signup(t, "Drama Club", "scarlett@mergington.edu"))
	req := pendingRequest(t, a.ID, "scarlett@mergington.edu")

	resp := test.DoRequest(t, RejectRequest, http.MethodPost,
		fmt.Sprintf("/admin/memberships/%d/reject", req.ID), idParam(req.ID), nil)
	test.NoError(t, resp)

	req = pendingRequest(t, a.ID, "scarlett@mergington.edu")
	require.Equal(t, model.RequestRejected, req.Status)

	var count int64
	require.NoError(t, database.DB.Model(&model.Participant{}).
		Where("activity_id = ?", a.ID).Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestApproveMissingRequest(t *testing.T) {
	seedDramaClub(t)

	resp := test.DoRequest(t, ApproveRequest, http.MethodPost,
		"/admin/memberships/999/approve", idParam(999), nil)
	test.ErrorEqual(t, response.ErrRequestNotFound, resp)
}

func TestListRequestsByStatus(t *testing.T) {
	seedDramaClub(t)

	test.NoError(t, signup(t, "Drama Club", "one@mergington.edu"))
	test.NoError(t, signup(t, "Drama Club", "two@mergington.edu"))

	resp := test.DoRequest(t, ListRequests, http.MethodGet,
		"/admin/memberships?status=pending", nil, nil)
	test.NoError(t, resp)

	requests, ok := resp.Data.([]any)
	require.True(t, ok)
	require.Len(t, requests, 2)

	// 视图带活动名称，不暴露数据库内部字段
	first, ok := requests[0].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "Drama Club", first["activity"])
	require.Equal(t, "one@mergington.edu", first["email"])
	require.Equal(t, model.RequestPending, first["status"])
	require.NotContains(t, first, "activity_id")
	require.NotContains(t, first, "updated_at")
}
