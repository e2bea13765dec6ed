package integration

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"tecno-eval-service/internal/app"
	"tecno-eval-service/internal/domain"
	"tecno-eval-service/internal/infra/memory"
	pgstore "tecno-eval-service/internal/infra/postgres"
	pgmigrations "tecno-eval-service/internal/infra/postgres/migrations"
	infraredis "tecno-eval-service/internal/infra/redis"
	"tecno-eval-service/internal/quiz"
	"github.com/jackc/pgx/v4/pgxpool"
	goredis "github.com/redis/go-redis/v9"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/migrate"
)

func TestSubmissionEndToEnd(t *testing.T) {
	ctx := context.Background()
	requireDocker(t)

	pgURL, pgCleanup := startPostgres(t, ctx)
	defer pgCleanup()

	db := migrateDatabase(t, ctx, pgURL)
	defer db.Close()

	pool, err := pgxpool.Connect(ctx, pgURL)
	if err != nil {
		t.Fatalf("connect pg: %v", err)
	}
	defer pool.Close()

	catalogRepo := memory.NewCatalogRepository(pgstore.NewCatalogLoader(pool), 5*time.Minute)
	catalog, err := catalogRepo.Catalog(ctx)
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	if catalog.Size() != 20 {
		t.Fatalf("expected seeded catalog of 20 questions, got %d", catalog.Size())
	}

	writer := pgstore.NewResultWriter(db)
	reads := pgstore.NewReadStore(pool)
	service := app.NewSubmitService(writer, catalogRepo, nil)

	first := buildSubmission(catalog, 15, time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC))
	firstID, err := service.Submit(ctx, first)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if firstID <= 0 {
		t.Fatalf("expected generated participant id, got %d", firstID)
	}

	// A resubmission of the same payload is a new participant.
	second := buildSubmission(catalog, 20, time.Date(2025, 3, 1, 11, 0, 0, 0, time.UTC))
	secondID, err := service.Submit(ctx, second)
	if err != nil {
		t.Fatalf("second submit: %v", err)
	}
	if secondID == firstID {
		t.Fatalf("expected distinct participant ids, got %d twice", firstID)
	}

	participants, err := reads.ListParticipants(ctx)
	if err != nil {
		t.Fatalf("list participants: %v", err)
	}
	if len(participants) != 2 {
		t.Fatalf("expected 2 participants, got %d", len(participants))
	}
	// Most recent completion first.
	if participants[0].ID != secondID || participants[0].TotalCorrect != 20 {
		t.Fatalf("expected latest submission first, got %+v", participants[0])
	}
	if participants[1].TotalCorrect != 15 || participants[1].TotalTime != 900 {
		t.Fatalf("unexpected first participant %+v", participants[1])
	}

	answers, err := reads.ListAnswers(ctx)
	if err != nil {
		t.Fatalf("list answers: %v", err)
	}
	if len(answers) != 40 {
		t.Fatalf("expected 40 answer rows, got %d", len(answers))
	}
	for i := 0; i < 20; i++ {
		row := answers[i]
		if row.ParticipantID != firstID || row.QuestionIndex != i {
			t.Fatalf("expected answers ordered by participant then question, got %+v at %d", row, i)
		}
		if wantCorrect := i < 15; row.IsCorrect != wantCorrect {
			t.Fatalf("answer %d: expected correct=%v, got %+v", i, wantCorrect, row)
		}
	}

	times, err := reads.ListQuestionTimes(ctx)
	if err != nil {
		t.Fatalf("list question times: %v", err)
	}
	if len(times) != 40 || times[0].Seconds != 45 {
		t.Fatalf("unexpected question times (%d rows)", len(times))
	}

	dataset, err := reads.ListDatasetRecords(ctx)
	if err != nil {
		t.Fatalf("list dataset: %v", err)
	}
	if len(dataset) != 40 {
		t.Fatalf("expected 40 dataset rows, got %d", len(dataset))
	}
	var firstRows []domain.DatasetRecord
	for _, rec := range dataset {
		if rec.UserID == firstID {
			firstRows = append(firstRows, rec)
		}
	}
	if len(firstRows) != 20 {
		t.Fatalf("expected 20 dataset rows for participant %d, got %d", firstID, len(firstRows))
	}
	last := firstRows[len(firstRows)-1]
	if last.ItemID != 20 || last.Next != 0 || last.Score != 0.75 {
		t.Fatalf("unexpected final dataset row %+v", last)
	}
	for _, rec := range firstRows[:len(firstRows)-1] {
		if rec.Next != 1 || rec.Current != 1 {
			t.Fatalf("unexpected dataset flags %+v", rec)
		}
	}
}

func TestSubmissionRollbackOnConstraintViolation(t *testing.T) {
	ctx := context.Background()
	requireDocker(t)

	pgURL, pgCleanup := startPostgres(t, ctx)
	defer pgCleanup()

	db := migrateDatabase(t, ctx, pgURL)
	defer db.Close()

	pool, err := pgxpool.Connect(ctx, pgURL)
	if err != nil {
		t.Fatalf("connect pg: %v", err)
	}
	defer pool.Close()

	catalog, err := pgstore.NewCatalogLoader(pool).LoadCatalog(ctx)
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}

	writer := pgstore.NewResultWriter(db)
	sub := buildSubmission(catalog, 10, time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC))
	// Violates the seconds >= 0 check after the participant insert.
	sub.QuestionTimes[0] = domain.QuestionTiming{TimeSpent: -5, Answered: true}

	_, err = writer.SaveSubmission(ctx, sub, time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC))
	if err == nil {
		t.Fatal("expected constraint violation")
	}
	var constraintErr *domain.ConstraintError
	if !errors.As(err, &constraintErr) {
		t.Fatalf("expected constraint classification, got %v", err)
	}
	if domain.IsTransient(err) {
		t.Fatal("constraint violations must not be retried")
	}

	// The whole transaction rolled back: no orphan participant.
	reads := pgstore.NewReadStore(pool)
	participants, err := reads.ListParticipants(ctx)
	if err != nil {
		t.Fatalf("list participants: %v", err)
	}
	if len(participants) != 0 {
		t.Fatalf("expected no participants after rollback, got %d", len(participants))
	}
}

func TestHostedWizardWithRedisSessions(t *testing.T) {
	ctx := context.Background()
	requireDocker(t)

	pgURL, pgCleanup := startPostgres(t, ctx)
	defer pgCleanup()
	redisURL, redisCleanup := startRedis(t, ctx)
	defer redisCleanup()

	db := migrateDatabase(t, ctx, pgURL)
	defer db.Close()

	pool, err := pgxpool.Connect(ctx, pgURL)
	if err != nil {
		t.Fatalf("connect pg: %v", err)
	}
	defer pool.Close()

	redisClient, err := redisClientFromURL(redisURL)
	if err != nil {
		t.Fatalf("redis client: %v", err)
	}
	defer redisClient.Close()

	catalogRepo := memory.NewCatalogRepository(pgstore.NewCatalogLoader(pool), 5*time.Minute)
	catalog, err := catalogRepo.Catalog(ctx)
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}

	sessions := infraredis.NewSessionStore(redisClient, 5*time.Minute)
	submit := app.NewSubmitService(pgstore.NewResultWriter(db), catalogRepo, nil)
	wizard := app.NewWizardService(sessions, catalogRepo, submit)

	participant := domain.ParticipantInfo{Nombre: "ANA", Apellidos: "GOMEZ", Semestre: "3", Genero: "Femenino"}
	progress, err := wizard.StartSession(ctx, participant)
	if err != nil {
		t.Fatalf("start session: %v", err)
	}

	marker := "eval:session:" + progress.SessionID
	if n, err := redisClient.Exists(ctx, marker).Result(); err != nil || n != 1 {
		t.Fatalf("expected liveness marker in redis, got n=%d err=%v", n, err)
	}

	for i := 0; i < catalog.Size(); i++ {
		if _, err := wizard.Navigate(progress.SessionID, i); err != nil {
			t.Fatalf("navigate %d: %v", i, err)
		}
		if _, err := wizard.SelectAnswer(progress.SessionID, catalog.CorrectOption(i)); err != nil {
			t.Fatalf("select %d: %v", i, err)
		}
	}

	result, err := wizard.CompleteSession(ctx, progress.SessionID)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if !result.Saved || result.TotalCorrect != catalog.Size() {
		t.Fatalf("unexpected completion %+v", result)
	}

	if n, err := redisClient.Exists(ctx, marker).Result(); err != nil || n != 0 {
		t.Fatalf("expected liveness marker cleared, got n=%d err=%v", n, err)
	}
}

func buildSubmission(catalog quiz.Catalog, correct int, completedAt time.Time) domain.Submission {
	answers := make(map[int]string, catalog.Size())
	seconds := make(map[int]int, catalog.Size())
	answered := make(map[int]bool, catalog.Size())
	for i := 0; i < catalog.Size(); i++ {
		option := catalog.CorrectOption(i)
		if i >= correct {
			option = wrongOption(option)
		}
		answers[i] = option
		seconds[i] = 45
		answered[i] = true
	}
	participant := domain.ParticipantInfo{Nombre: "ANA", Apellidos: "GOMEZ", Semestre: "3", Genero: "Femenino"}
	return app.BuildSubmission(participant, answers, seconds, answered, 900, completedAt, catalog)
}

func wrongOption(correct string) string {
	for _, o := range quiz.Options {
		if o != correct {
			return o
		}
	}
	return correct
}

func migrateDatabase(t *testing.T, ctx context.Context, dsn string) *bun.DB {
	t.Helper()
	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))
	db := bun.NewDB(sqldb, pgdialect.New())

	migrator := migrate.NewMigrator(db, pgmigrations.Migrations)
	if err := migrator.Init(ctx); err != nil {
		t.Fatalf("migrator init: %v", err)
	}
	if _, err := migrator.Migrate(ctx); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func startPostgres(t *testing.T, ctx context.Context) (string, func()) {
	t.Helper()
	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_USER": "eval", "POSTGRES_PASSWORD": "evalpass", "POSTGRES_DB": "evaldb"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp").WithStartupTimeout(60 * time.Second),
	}
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		if strings.Contains(err.Error(), "Cannot connect to the Docker daemon") {
			t.Skipf("docker not available: %v", err)
		}
		t.Fatalf("start postgres: %v", err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("host: %v", err)
	}
	port, err := container.MappedPort(ctx, "5432/tcp")
	if err != nil {
		t.Fatalf("port: %v", err)
	}
	dsn := fmt.Sprintf("postgres://eval:evalpass@%s:%s/evaldb?sslmode=disable", host, port.Port())
	return dsn, func() {
		_ = container.Terminate(ctx)
	}
}

func startRedis(t *testing.T, ctx context.Context) (string, func()) {
	t.Helper()
	req := tc.ContainerRequest{
		Image:        "redis:7-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp").WithStartupTimeout(30 * time.Second),
	}
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		if strings.Contains(err.Error(), "Cannot connect to the Docker daemon") {
			t.Skipf("docker not available: %v", err)
		}
		t.Fatalf("start redis: %v", err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("redis host: %v", err)
	}
	port, err := container.MappedPort(ctx, "6379/tcp")
	if err != nil {
		t.Fatalf("redis port: %v", err)
	}
	url := fmt.Sprintf("redis://%s:%s", host, port.Port())
	return url, func() {
		_ = container.Terminate(ctx)
	}
}

func redisClientFromURL(url string) (*goredis.Client, error) {
	opts, err := goredis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	return goredis.NewClient(&goredis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	}), nil
}

func requireDocker(t *testing.T) {
	t.Helper()
	if _, err := tc.NewDockerProvider(); err != nil {
		t.Skipf("docker not available: %v", err)
	}
}
