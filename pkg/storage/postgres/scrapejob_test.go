package postgres_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"urs/pkg/domain"
	"urs/pkg/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestStoreJob_RoundTrip(t *testing.T) {
	pg := setupTestDB(t)
	ctx := context.Background()

	userID := seedProfile(t, pg)
	proj := seedProject(t, pg, userID)

	job := seedJob(t, pg, userID, proj.ID, domain.JobStatusPending)
	require.NotEqual(t, uuid.Nil, uuid.UUID(job.ID))
	require.False(t, job.CreatedAt.IsZero())
	require.Equal(t, domain.JobStatusPending, job.Status)
	require.Equal(t, 0, job.Progress)

	got, err := pg.JobByID(ctx, userID, job.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, job.ID, got.ID)
	require.Equal(t, domain.JobTypeSubreddit, got.Type)
	require.JSONEq(t, `{"subreddit":"golang","category":"hot","limit":10}`, string(got.Config))
}

func TestJobByID_ScopedToOwner(t *testing.T) {
	pg := setupTestDB(t)
	ctx := context.Background()

	userID := seedProfile(t, pg)
	otherID := seedProfile(t, pg)
	proj := seedProject(t, pg, userID)
	job := seedJob(t, pg, userID, proj.ID, domain.JobStatusPending)

	got, err := pg.JobByID(ctx, otherID, job.ID)
	require.NoError(t, err)
	require.Nil(t, got, "other users must not see the job")

	// the unscoped lookup used by workers still finds it
	row, err := pg.JobByIDAny(ctx, job.ID)
	require.NoError(t, err)
	require.NotNil(t, row)
	require.Equal(t, job.ID, row.ID)
}

func TestUpdateJob_LifecycleTimestamps(t *testing.T) {
	pg := setupTestDB(t)
	ctx := context.Background()

	userID := seedProfile(t, pg)
	proj := seedProject(t, pg, userID)
	job := seedJob(t, pg, userID, proj.ID, domain.JobStatusPending)

	running, err := pg.UpdateJob(ctx, job.ID, storage.JobUpdates{
		Status: domain.JobStatusRunning,
	})
	require.NoError(t, err)
	require.NotNil(t, running)
	require.Equal(t, domain.JobStatusRunning, running.Status)
	require.False(t, running.StartedAt.IsZero(), "running must set started_at")
	require.True(t, running.CompletedAt.IsZero())

	full := 100
	result := json.RawMessage(`{"total_results": 3}`)
	completed, err := pg.UpdateJob(ctx, job.ID, storage.JobUpdates{
		Status:   domain.JobStatusCompleted,
		Progress: &full,
		Result:   result,
	})
	require.NoError(t, err)
	require.NotNil(t, completed)
	require.Equal(t, domain.JobStatusCompleted, completed.Status)
	require.Equal(t, 100, completed.Progress)
	require.False(t, completed.CompletedAt.IsZero(), "terminal status must set completed_at")
	require.JSONEq(t, string(result), string(completed.Result))
}

func TestUpdateJob_FailureMessage(t *testing.T) {
	pg := setupTestDB(t)
	ctx := context.Background()

	userID := seedProfile(t, pg)
	proj := seedProject(t, pg, userID)
	job := seedJob(t, pg, userID, proj.ID, domain.JobStatusRunning)

	msg := "Reddit rejected the request."
	failed, err := pg.UpdateJob(ctx, job.ID, storage.JobUpdates{
		Status:       domain.JobStatusFailed,
		ErrorMessage: &msg,
	})
	require.NoError(t, err)
	require.NotNil(t, failed)
	require.Equal(t, domain.JobStatusFailed, failed.Status)
	require.Equal(t, msg, failed.ErrorMessage)
	require.False(t, failed.CompletedAt.IsZero())
}

func TestUpdateJob_UnknownJob(t *testing.T) {
	pg := setupTestDB(t)

	got, err := pg.UpdateJob(context.Background(), domain.JobID(uuid.New()), storage.JobUpdates{
		Status: domain.JobStatusRunning,
	})
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestSetJobProgress_GuardedOnRunning(t *testing.T) {
	pg := setupTestDB(t)
	ctx := context.Background()

	userID := seedProfile(t, pg)
	proj := seedProject(t, pg, userID)
	job := seedJob(t, pg, userID, proj.ID, domain.JobStatusRunning)

	got, err := pg.SetJobProgress(ctx, job.ID, 42)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, 42, got.Progress)

	// once the job leaves running, the guarded write matches no row
	_, err = pg.UpdateJob(ctx, job.ID, storage.JobUpdates{Status: domain.JobStatusCancelled})
	require.NoError(t, err)

	got, err = pg.SetJobProgress(ctx, job.ID, 50)
	require.NoError(t, err)
	require.Nil(t, got, "progress writes must not resurrect a cancelled job")

	current, err := pg.JobByIDAny(ctx, job.ID)
	require.NoError(t, err)
	require.Equal(t, 42, current.Progress)
}

func TestCancelJob_GuardedOnActive(t *testing.T) {
	pg := setupTestDB(t)
	ctx := context.Background()

	userID := seedProfile(t, pg)
	proj := seedProject(t, pg, userID)

	for _, status := range []domain.JobStatus{domain.JobStatusPending, domain.JobStatusRunning} {
		job := seedJob(t, pg, userID, proj.ID, status)

		got, err := pg.CancelJob(ctx, job.ID)
		require.NoError(t, err)
		require.NotNil(t, got, "status %s should cancel", status)
		require.Equal(t, domain.JobStatusCancelled, got.Status)
		require.False(t, got.CompletedAt.IsZero())
	}

	// a terminal job is never overwritten by a late cancel
	done := seedJob(t, pg, userID, proj.ID, domain.JobStatusCompleted)
	got, err := pg.CancelJob(ctx, done.ID)
	require.NoError(t, err)
	require.Nil(t, got)

	current, err := pg.JobByIDAny(ctx, done.ID)
	require.NoError(t, err)
	require.Equal(t, domain.JobStatusCompleted, current.Status)
}

func TestDeleteJob_SoftDelete(t *testing.T) {
	pg := setupTestDB(t)
	ctx := context.Background()

	userID := seedProfile(t, pg)
	proj := seedProject(t, pg, userID)
	job := seedJob(t, pg, userID, proj.ID, domain.JobStatusCompleted)

	deleted, err := pg.DeleteJob(ctx, userID, job.ID)
	require.NoError(t, err)
	require.NotNil(t, deleted)

	got, err := pg.JobByID(ctx, userID, job.ID)
	require.NoError(t, err)
	require.Nil(t, got)

	// repeated delete finds nothing
	deleted, err = pg.DeleteJob(ctx, userID, job.ID)
	require.NoError(t, err)
	require.Nil(t, deleted)
}

func TestProjectJobs_NewestFirst(t *testing.T) {
	pg := setupTestDB(t)
	ctx := context.Background()

	userID := seedProfile(t, pg)
	proj := seedProject(t, pg, userID)

	first := seedJob(t, pg, userID, proj.ID, domain.JobStatusCompleted)
	time.Sleep(10 * time.Millisecond)
	second := seedJob(t, pg, userID, proj.ID, domain.JobStatusPending)

	jobs, err := pg.ProjectJobs(ctx, proj.ID)
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	require.Equal(t, second.ID, jobs[0].ID)
	require.Equal(t, first.ID, jobs[1].ID)
}
