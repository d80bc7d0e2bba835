package postgres_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"urs/pkg/domain"
	"urs/pkg/storage/postgres"

	"github.com/google/uuid"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	testUser     = "postgres"
	testPassword = "postgres"
	testDB       = "testdb"
)

type postgresContainer struct {
	Container testcontainers.Container
	Host      string
	Port      int
}

func startPostgresContainer(ctx context.Context) (*postgresContainer, error) {
	req := testcontainers.ContainerRequest{
		Image:        "postgres:17",
		ExposedPorts: []string{"5432"},
		Env: map[string]string{
			"POSTGRES_USER":     testUser,
			"POSTGRES_PASSWORD": testPassword,
			"POSTGRES_DB":       testDB,
		},
		WaitingFor: wait.ForListeningPort("5432"),
	}
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, fmt.Errorf("could not start container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not get container host: %w", err)
	}

	mappedPort, err := container.MappedPort(ctx, "5432")
	if err != nil {
		return nil, fmt.Errorf("could not get mapped port: %w", err)
	}

	return &postgresContainer{
		Container: container,
		Host:      host,
		Port:      mappedPort.Int(),
	}, nil
}

func runMigrations(db *sql.DB, migrationsDir string) error {
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("could not set dialect: %w", err)
	}

	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("could not run migrations: %w", err)
	}

	return nil
}

func setupTestDB(t *testing.T) *postgres.PgSQL {
	t.Helper()
	ctx := context.Background()

	// start container
	pgContainer, err := startPostgresContainer(ctx)
	require.NoError(t, err)

	// create postgres instance
	pgSQL, err := postgres.New(ctx, postgres.Options{
		Username:           testUser,
		Password:           testPassword,
		Host:               pgContainer.Host,
		Port:               pgContainer.Port,
		Database:           testDB,
		SslMode:            "disable",
		ConnMaxLifetime:    time.Minute,
		ConnMaxIdleTime:    time.Minute,
		MaxOpenConnections: 5,
		MaxIdleConnections: 5,
	})
	require.NoError(t, err)

	// run migrations
	migrationsDir := filepath.Join("..", "..", "..", "migrations")
	err = runMigrations(pgSQL.DB.(*sql.DB), migrationsDir)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = pgSQL.Close()
		_ = pgContainer.Container.Terminate(ctx)
	})

	return pgSQL
}

// seedProfile inserts a profile row to satisfy foreign keys.
func seedProfile(t *testing.T, pg *postgres.PgSQL) domain.UserID {
	t.Helper()

	userID := domain.UserID(uuid.New())
	_, err := pg.StoreProfile(context.Background(), domain.Profile{
		ID:    userID,
		Email: fmt.Sprintf("%s@example.com", uuid.NewString()[:8]),
	})
	require.NoError(t, err)

	return userID
}

func seedProject(t *testing.T, pg *postgres.PgSQL, userID domain.UserID) *domain.Project {
	t.Helper()

	proj, err := pg.StoreProject(context.Background(), domain.Project{
		UserID: userID,
		Name:   "test project",
	})
	require.NoError(t, err)

	return proj
}

func seedJob(t *testing.T, pg *postgres.PgSQL,
	userID domain.UserID,
	projectID domain.ProjectID,
	status domain.JobStatus) *domain.ScrapeJob {
	t.Helper()

	job, err := pg.StoreJob(context.Background(), domain.ScrapeJob{
		ProjectID: projectID,
		UserID:    userID,
		Type:      domain.JobTypeSubreddit,
		Config:    json.RawMessage(`{"subreddit":"golang","category":"hot","limit":10}`),
		Status:    status,
	})
	require.NoError(t, err)

	return job
}
