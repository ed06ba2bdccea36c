//go:build integration

package sqlstore

import (
	"context"
	"fmt"
	"os/exec"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"gamereviews/internal/domain"
	"gamereviews/internal/loader"
)

const postgresPort = "5432/tcp"

func skipIfNoDocker(t *testing.T) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if exec.CommandContext(ctx, "docker", "info").Run() != nil {
		t.Skip("Skipping test: Docker not available")
	}
}

// newPostgresStore starts a throwaway postgres container and returns a
// store seeded with the test fixture
func newPostgresStore(t *testing.T) *Store {
	t.Helper()
	skipIfNoDocker(t)
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{postgresPort},
		Env: map[string]string{
			"POSTGRES_USER":     "reviews",
			"POSTGRES_PASSWORD": "reviews",
			"POSTGRES_DB":       "reviews_test",
		},
		WaitingFor: wait.ForAll(
			wait.ForListeningPort(postgresPort),
			wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
		).WithStartupTimeout(90 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Fatalf("create postgres container: %v", err)
	}
	t.Cleanup(func() {
		container.Terminate(context.Background()) //nolint:errcheck
	})

	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("get container host: %v", err)
	}
	port, err := container.MappedPort(ctx, postgresPort)
	if err != nil {
		t.Fatalf("get mapped port: %v", err)
	}

	dsn := fmt.Sprintf("postgres://reviews:reviews@%s:%s/reviews_test?sslmode=disable", host, port.Port())
	store, err := New(DriverPostgres, dsn)
	if err != nil {
		t.Fatalf("failed to create postgres store: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})

	ds, err := loader.Fixture("test")
	assertNoError(t, err)
	assertNoError(t, store.Seed(ctx, ds))
	return store
}

func TestPostgresStore(t *testing.T) {
	s := newPostgresStore(t)
	ctx := context.Background()

	t.Run("default listing order", func(t *testing.T) {
		reviews := listReviews(t, s, domain.ReviewFilter{})
		assertEqual(t, []int64{7, 4, 12, 2, 3, 8, 9, 10, 11, 1, 5, 6, 13}, reviewIDs(reviews))
	})

	t.Run("review by id", func(t *testing.T) {
		review, err := s.GetReview(ctx, 3)
		assertNoError(t, err)
		assertEqual(t, "Ultimate Werewolf", review.Title)
		assertEqual(t, 3, review.CommentCount)
	})

	t.Run("comments newest first", func(t *testing.T) {
		comments, err := s.ListComments(ctx, 2)
		assertNoError(t, err)
		assertEqual(t, []int64{5, 1, 4}, commentIDs(comments))
	})

	t.Run("vote increments accumulate", func(t *testing.T) {
		_, err := s.IncrementVotes(ctx, 3, 10)
		assertNoError(t, err)
		review, err := s.IncrementVotes(ctx, 3, 10)
		assertNoError(t, err)
		assertEqual(t, 25, review.Votes)
	})

	t.Run("comment lifecycle", func(t *testing.T) {
		c := domain.NewComment(1, "dav3rid", "solid")
		assertNoError(t, s.CreateComment(ctx, c))
		assertEqual(t, int64(7), c.CommentID)
		assertNoError(t, s.DeleteComment(ctx, c.CommentID))
		assertErrorIs(t, s.DeleteComment(ctx, c.CommentID), domain.ErrCommentNotFound)
	})

	t.Run("reseed restarts identifiers", func(t *testing.T) {
		ds, err := loader.Fixture("test")
		assertNoError(t, err)
		assertNoError(t, s.Seed(ctx, ds))

		c := domain.NewComment(1, "dav3rid", "again")
		assertNoError(t, s.CreateComment(ctx, c))
		assertEqual(t, int64(7), c.CommentID)
	})
}
