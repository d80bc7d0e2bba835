package worker_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric/noop"
	"go.uber.org/mock/gomock"

	"urs/internal/account"
	mockaccount "urs/internal/account/mock"
	"urs/internal/scrape"
	"urs/internal/worker"
	"urs/pkg/domain"
	"urs/pkg/logger"
	"urs/pkg/reddit"
	mockreddit "urs/pkg/reddit/mock"
	"urs/pkg/serrors"
	"urs/pkg/storage"
	mockstorage "urs/pkg/storage/mock"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

func makeJob(id int64, jobID uuid.UUID) *river.Job[scrape.JobArgs] {
	return &river.Job[scrape.JobArgs]{
		JobRow: &rivertype.JobRow{ID: id},
		Args:   scrape.JobArgs{JobID: jobID},
	}
}

type testWorker struct {
	storage  *mockstorage.MockStorage
	accounts *mockaccount.MockService
	client   *mockreddit.MockClient
	worker   *worker.ScrapeJobWorker
}

func newTestWorker(t *testing.T) testWorker {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	accounts := mockaccount.NewMockService(ctrl)
	client := mockreddit.NewMockClient(ctrl)

	w, err := worker.NewScrapeJobWorker(st, accounts, scrape.NewRunner(),
		func(_ *account.Credentials) reddit.Client { return client },
		0, noop.NewMeterProvider())
	require.NoError(t, err)

	return testWorker{storage: st, accounts: accounts, client: client, worker: w}
}

func pendingSubredditRow(jobID domain.JobID) *domain.ScrapeJob {
	return &domain.ScrapeJob{
		ID:     jobID,
		UserID: domain.UserID(uuid.New()),
		Type:   domain.JobTypeSubreddit,
		Config: json.RawMessage(`{"subreddit":"golang","category":"hot","limit":2}`),
		Status: domain.JobStatusPending,
	}
}

func testCreds() *account.Credentials {
	return &account.Credentials{ClientID: "id", ClientSecret: "secret", Username: "user"}
}

func TestWork_MissingRowCancels(t *testing.T) {
	tw := newTestWorker(t)

	jobID := uuid.New()
	tw.storage.EXPECT().JobByIDAny(gomock.Any(), domain.JobID(jobID)).Return(nil, nil)

	err := tw.worker.Work(context.Background(), makeJob(1, jobID))
	require.Error(t, err)
	var cancelErr *river.JobCancelError
	require.ErrorAs(t, err, &cancelErr)
}

func TestWork_NonPendingRowCancels(t *testing.T) {
	tw := newTestWorker(t)

	jobID := uuid.New()
	row := pendingSubredditRow(domain.JobID(jobID))
	row.Status = domain.JobStatusCancelled
	tw.storage.EXPECT().JobByIDAny(gomock.Any(), domain.JobID(jobID)).Return(row, nil)

	err := tw.worker.Work(context.Background(), makeJob(2, jobID))
	require.Error(t, err)
	var cancelErr *river.JobCancelError
	require.ErrorAs(t, err, &cancelErr)
}

func TestWork_Success(t *testing.T) {
	tw := newTestWorker(t)

	jobID := uuid.New()
	row := pendingSubredditRow(domain.JobID(jobID))

	tw.storage.EXPECT().JobByIDAny(gomock.Any(), row.ID).Return(row, nil)
	tw.storage.EXPECT().UpdateJob(gomock.Any(), row.ID, storage.JobUpdates{
		Status: domain.JobStatusRunning,
	}).Return(row, nil)
	tw.accounts.EXPECT().RedditCredentials(gomock.Any(), row.UserID).Return(testCreds(), nil)

	tw.client.EXPECT().SubredditSubmissions(gomock.Any(), "golang", domain.CategoryHot, gomock.Any()).
		Return(reddit.SubmissionPage{
			Items: []reddit.Submission{{ID: "a", Title: "one"}, {ID: "b", Title: "two"}},
		}, nil)

	tw.storage.EXPECT().SetJobProgress(gomock.Any(), row.ID, gomock.Any()).
		Return(row, nil).MinTimes(1)

	running := *row
	running.Status = domain.JobStatusRunning
	tw.storage.EXPECT().JobByIDAny(gomock.Any(), row.ID).Return(&running, nil)

	tw.storage.EXPECT().UpdateJob(gomock.Any(), row.ID, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ domain.JobID, updates storage.JobUpdates) (*domain.ScrapeJob, error) {
			require.Equal(t, domain.JobStatusCompleted, updates.Status)
			require.NotNil(t, updates.Progress)
			require.Equal(t, 100, *updates.Progress)

			var result struct {
				TotalResults int `json:"total_results"`
			}
			require.NoError(t, json.Unmarshal(updates.Result, &result))
			require.Equal(t, 2, result.TotalResults)

			return &running, nil
		})

	require.NoError(t, tw.worker.Work(context.Background(), makeJob(3, jobID)))
}

func TestWork_CredentialsErrorFailsJob(t *testing.T) {
	tw := newTestWorker(t)

	jobID := uuid.New()
	row := pendingSubredditRow(domain.JobID(jobID))
	credsErr := serrors.With(serrors.ErrBadRequest,
		"Reddit API credentials are not configured. Please add them in your profile settings.")

	tw.storage.EXPECT().JobByIDAny(gomock.Any(), row.ID).Return(row, nil)
	tw.storage.EXPECT().UpdateJob(gomock.Any(), row.ID, storage.JobUpdates{
		Status: domain.JobStatusRunning,
	}).Return(row, nil)
	tw.accounts.EXPECT().RedditCredentials(gomock.Any(), row.UserID).Return(nil, credsErr)

	tw.storage.EXPECT().UpdateJob(gomock.Any(), row.ID, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ domain.JobID, updates storage.JobUpdates) (*domain.ScrapeJob, error) {
			require.Equal(t, domain.JobStatusFailed, updates.Status)
			require.NotNil(t, updates.ErrorMessage)
			require.Equal(t, scrape.FriendlyMessage(credsErr), *updates.ErrorMessage)

			return row, nil
		})

	err := tw.worker.Work(context.Background(), makeJob(4, jobID))
	require.Error(t, err)
	var cancelErr *river.JobCancelError
	require.NotErrorAs(t, err, &cancelErr, "failure must surface to River, not cancel")
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestWork_ProgressWriteMissCancels(t *testing.T) {
	tw := newTestWorker(t)

	jobID := uuid.New()
	row := pendingSubredditRow(domain.JobID(jobID))

	tw.storage.EXPECT().JobByIDAny(gomock.Any(), row.ID).Return(row, nil)
	tw.storage.EXPECT().UpdateJob(gomock.Any(), row.ID, storage.JobUpdates{
		Status: domain.JobStatusRunning,
	}).Return(row, nil)
	tw.accounts.EXPECT().RedditCredentials(gomock.Any(), row.UserID).Return(testCreds(), nil)

	tw.client.EXPECT().SubredditSubmissions(gomock.Any(), "golang", domain.CategoryHot, gomock.Any()).
		Return(reddit.SubmissionPage{
			Items: []reddit.Submission{{ID: "a"}},
			After: "t3_a",
		}, nil)

	// the guarded progress write matches no row: the user cancelled
	tw.storage.EXPECT().SetJobProgress(gomock.Any(), row.ID, gomock.Any()).Return(nil, nil)

	err := tw.worker.Work(context.Background(), makeJob(5, jobID))
	require.Error(t, err)
	var cancelErr *river.JobCancelError
	require.ErrorAs(t, err, &cancelErr)
}

func TestWork_CancelRaceBeforePublish(t *testing.T) {
	tw := newTestWorker(t)

	jobID := uuid.New()
	row := pendingSubredditRow(domain.JobID(jobID))

	tw.storage.EXPECT().JobByIDAny(gomock.Any(), row.ID).Return(row, nil)
	tw.storage.EXPECT().UpdateJob(gomock.Any(), row.ID, storage.JobUpdates{
		Status: domain.JobStatusRunning,
	}).Return(row, nil)
	tw.accounts.EXPECT().RedditCredentials(gomock.Any(), row.UserID).Return(testCreds(), nil)

	tw.client.EXPECT().SubredditSubmissions(gomock.Any(), "golang", domain.CategoryHot, gomock.Any()).
		Return(reddit.SubmissionPage{
			Items: []reddit.Submission{{ID: "a"}, {ID: "b"}},
		}, nil)
	tw.storage.EXPECT().SetJobProgress(gomock.Any(), row.ID, gomock.Any()).
		Return(row, nil).MinTimes(1)

	// cancel landed between the last page and the result write
	cancelled := *row
	cancelled.Status = domain.JobStatusCancelled
	tw.storage.EXPECT().JobByIDAny(gomock.Any(), row.ID).Return(&cancelled, nil)

	err := tw.worker.Work(context.Background(), makeJob(6, jobID))
	require.Error(t, err)
	var cancelErr *river.JobCancelError
	require.ErrorAs(t, err, &cancelErr)
}
