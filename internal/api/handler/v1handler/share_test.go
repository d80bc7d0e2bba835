package v1handler_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"urs/pkg/domain"
	"urs/pkg/serrors"
)

func TestCreateShare(t *testing.T) {
	ts := newTestServer(t)

	jobID := domain.JobID(uuid.New())
	link := &domain.ShareLink{
		ID:       domain.ShareLinkID(uuid.New()),
		JobID:    jobID,
		Token:    "abcdefghijklmnopqrstuv",
		IsActive: true,
	}
	ts.shares.EXPECT().Create(gomock.Any(), ts.user.ID, jobID).Return(link, nil)

	res, body := ts.do(t, http.MethodPost, "/jobs/"+uuid.UUID(jobID).String()+"/share", ts.token, nil)
	require.Equal(t, http.StatusCreated, res.StatusCode)

	var got struct {
		Token string `json:"shareToken"`
		URL   string `json:"url"`
	}
	require.NoError(t, json.Unmarshal(body, &got))
	require.Equal(t, link.Token, got.Token)
	require.Equal(t, testBaseURL+"/share/"+link.Token, got.URL)
}

func TestCreateShare_UnfinishedJob(t *testing.T) {
	ts := newTestServer(t)

	jobID := domain.JobID(uuid.New())
	ts.shares.EXPECT().Create(gomock.Any(), ts.user.ID, jobID).
		Return(nil, serrors.With(serrors.ErrBadRequest, "only completed jobs can be shared"))

	res, body := ts.do(t, http.MethodPost, "/jobs/"+uuid.UUID(jobID).String()+"/share", ts.token, nil)
	require.Equal(t, http.StatusBadRequest, res.StatusCode)
	require.Contains(t, string(body), "only completed jobs")
}

func TestListShares(t *testing.T) {
	ts := newTestServer(t)

	ts.shares.EXPECT().List(gomock.Any(), ts.user.ID).Return([]domain.ShareLink{
		{ID: domain.ShareLinkID(uuid.New()), Token: "tok-1", IsActive: true},
		{ID: domain.ShareLinkID(uuid.New()), Token: "tok-2", IsActive: false},
	}, nil)

	res, body := ts.do(t, http.MethodGet, "/shares", ts.token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var got []struct {
		Token    string `json:"shareToken"`
		IsActive bool   `json:"isActive"`
		URL      string `json:"url"`
	}
	require.NoError(t, json.Unmarshal(body, &got))
	require.Len(t, got, 2)
	require.Equal(t, testBaseURL+"/share/tok-1", got[0].URL)
	require.False(t, got[1].IsActive)
}

func TestRevokeShare(t *testing.T) {
	ts := newTestServer(t)

	linkID := domain.ShareLinkID(uuid.New())
	ts.shares.EXPECT().Revoke(gomock.Any(), ts.user.ID, linkID).Return(nil)

	res, _ := ts.do(t, http.MethodDelete, "/shares/"+uuid.UUID(linkID).String(), ts.token, nil)
	require.Equal(t, http.StatusNoContent, res.StatusCode)
}

func TestRevokeShare_InvalidID(t *testing.T) {
	ts := newTestServer(t)

	res, body := ts.do(t, http.MethodDelete, "/shares/not-a-uuid", ts.token, nil)
	require.Equal(t, http.StatusBadRequest, res.StatusCode)
	require.Contains(t, string(body), "invalid share link ID")
}

func TestResolveShare_Public(t *testing.T) {
	ts := newTestServer(t)

	shared := &domain.SharedResult{
		JobType:   domain.JobTypeSubreddit,
		Config:    json.RawMessage(`{"subreddit":"golang"}`),
		Result:    json.RawMessage(`{"total_results":3}`),
		CreatedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
	ts.shares.EXPECT().Resolve(gomock.Any(), "public-token").Return(shared, nil)

	// no Authorization header: share links are public
	res, body := ts.do(t, http.MethodGet, "/share/public-token", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var got domain.SharedResult
	require.NoError(t, json.Unmarshal(body, &got))
	require.Equal(t, domain.JobTypeSubreddit, got.JobType)
	require.JSONEq(t, `{"total_results":3}`, string(got.Result))
}

func TestResolveShare_UnknownToken(t *testing.T) {
	ts := newTestServer(t)

	ts.shares.EXPECT().Resolve(gomock.Any(), "gone").
		Return(nil, serrors.With(serrors.ErrNotFound, "share link not found"))

	res, _ := ts.do(t, http.MethodGet, "/share/gone", "", nil)
	require.Equal(t, http.StatusNotFound, res.StatusCode)
}
