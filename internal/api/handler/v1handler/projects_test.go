package v1handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"urs/internal/project"
	"urs/pkg/domain"
	"urs/pkg/serrors"
)

func TestListProjects(t *testing.T) {
	ts := newTestServer(t)

	projID := domain.ProjectID(uuid.New())
	ts.projects.EXPECT().List(gomock.Any(), ts.user.ID).Return([]project.WithCounts{
		{
			Project: domain.Project{ID: projID, UserID: ts.user.ID, Name: "research"},
			Counts:  domain.JobCounts{Total: 4, Completed: 3, Failed: 1},
		},
	}, nil)

	res, body := ts.do(t, http.MethodGet, "/projects", ts.token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var got []struct {
		Name      string           `json:"name"`
		JobCounts domain.JobCounts `json:"jobCounts"`
	}
	require.NoError(t, json.Unmarshal(body, &got))
	require.Len(t, got, 1)
	require.Equal(t, "research", got[0].Name)
	require.Equal(t, 4, got[0].JobCounts.Total)
}

func TestCreateProject(t *testing.T) {
	ts := newTestServer(t)

	ts.projects.EXPECT().Create(gomock.Any(), ts.user.ID, "research", "notes").
		Return(&domain.Project{ID: domain.ProjectID(uuid.New()), Name: "research"}, nil)

	res, body := ts.do(t, http.MethodPost, "/projects", ts.token,
		map[string]string{"name": "research", "description": "notes"})
	require.Equal(t, http.StatusCreated, res.StatusCode)
	require.Contains(t, string(body), `"research"`)
}

func TestCreateProject_NameTooLong(t *testing.T) {
	ts := newTestServer(t)

	res, body := ts.do(t, http.MethodPost, "/projects", ts.token,
		map[string]string{"name": strings.Repeat("x", 101)})
	require.Equal(t, http.StatusBadRequest, res.StatusCode)
	require.Contains(t, string(body), "at most 100 characters")
}

func TestGetProject(t *testing.T) {
	ts := newTestServer(t)

	projID := domain.ProjectID(uuid.New())
	ts.projects.EXPECT().Get(gomock.Any(), ts.user.ID, projID).Return(&project.WithCounts{
		Project: domain.Project{ID: projID, Name: "research"},
		Counts:  domain.JobCounts{Total: 1, Running: 1},
	}, nil)

	res, body := ts.do(t, http.MethodGet, "/projects/"+uuid.UUID(projID).String(), ts.token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var got struct {
		JobCounts domain.JobCounts `json:"jobCounts"`
	}
	require.NoError(t, json.Unmarshal(body, &got))
	require.Equal(t, 1, got.JobCounts.Running)
}

func TestGetProject_InvalidID(t *testing.T) {
	ts := newTestServer(t)

	res, body := ts.do(t, http.MethodGet, "/projects/not-a-uuid", ts.token, nil)
	require.Equal(t, http.StatusBadRequest, res.StatusCode)
	require.Contains(t, string(body), "invalid project ID")
}

func TestGetProject_NotFound(t *testing.T) {
	ts := newTestServer(t)

	projID := domain.ProjectID(uuid.New())
	ts.projects.EXPECT().Get(gomock.Any(), ts.user.ID, projID).
		Return(nil, serrors.With(serrors.ErrNotFound, "project not found"))

	res, _ := ts.do(t, http.MethodGet, "/projects/"+uuid.UUID(projID).String(), ts.token, nil)
	require.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestUpdateProject(t *testing.T) {
	ts := newTestServer(t)

	projID := domain.ProjectID(uuid.New())
	ts.projects.EXPECT().Update(gomock.Any(), ts.user.ID, projID, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ domain.UserID, _ domain.ProjectID, updates project.Updates) (*domain.Project, error) {
			require.NotNil(t, updates.Name)
			require.Equal(t, "renamed", *updates.Name)
			require.Nil(t, updates.Description)

			return &domain.Project{ID: projID, Name: "renamed"}, nil
		})

	res, body := ts.do(t, http.MethodPatch, "/projects/"+uuid.UUID(projID).String(), ts.token,
		map[string]string{"name": "renamed"})
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Contains(t, string(body), `"renamed"`)
}

func TestDeleteProject(t *testing.T) {
	ts := newTestServer(t)

	projID := domain.ProjectID(uuid.New())
	ts.projects.EXPECT().Delete(gomock.Any(), ts.user.ID, projID).Return(nil)

	res, _ := ts.do(t, http.MethodDelete, "/projects/"+uuid.UUID(projID).String(), ts.token, nil)
	require.Equal(t, http.StatusNoContent, res.StatusCode)
}

func TestDeleteProject_NotFound(t *testing.T) {
	ts := newTestServer(t)

	projID := domain.ProjectID(uuid.New())
	ts.projects.EXPECT().Delete(gomock.Any(), ts.user.ID, projID).
		Return(serrors.With(serrors.ErrNotFound, "project not found"))

	res, _ := ts.do(t, http.MethodDelete, "/projects/"+uuid.UUID(projID).String(), ts.token, nil)
	require.Equal(t, http.StatusNotFound, res.StatusCode)
}
