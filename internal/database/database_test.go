package database

import (
	"context"
	"fmt"
	"log"
	"os"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"acadforms/internal/forms"
	"acadforms/internal/records"
	"acadforms/internal/schema"
)

// mustStartPostgresContainer starts a postgres container and returns a teardown function,
// a connection string, and an error.
func mustStartPostgresContainer() (func(context.Context, ...testcontainers.TerminateOption) error, string, error) {
	var (
		dbName = "test_db"
		dbPwd  = "password"
		dbUser = "user"
	)

	dbContainer, err := postgres.Run(
		context.Background(),
		"postgres:latest",
		postgres.WithDatabase(dbName),
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPwd),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Second)),
	)
	if err != nil {
		return nil, "", fmt.Errorf("failed to start postgres container: %w", err)
	}

	host, err := dbContainer.Host(context.Background())
	if err != nil {
		return dbContainer.Terminate, "", fmt.Errorf("failed to get container host: %w", err)
	}

	port, err := dbContainer.MappedPort(context.Background(), "5432/tcp")
	if err != nil {
		return dbContainer.Terminate, "", fmt.Errorf("failed to get container mapped port: %w", err)
	}

	connStr := fmt.Sprintf("postgresql://%s:%s@%s:%s/%s?sslmode=disable", dbUser, dbPwd, host, port.Port(), dbName)

	return dbContainer.Terminate, connStr, nil
}

func TestMain(m *testing.M) {
	teardown, testDbString, err := mustStartPostgresContainer()
	if err != nil {
		log.Fatalf("could not start postgres container for tests: %v", err)
	}

	dbString = testDbString
	dbInstance = nil

	exitCode := m.Run()

	if teardown != nil {
		if err := teardown(context.Background()); err != nil {
			log.Fatalf("could not teardown postgres container: %v", err)
		}
	}
	os.Exit(exitCode)
}

// migrated returns the shared service with migrations applied.
func migrated(tb testing.TB) Service {
	srv := New()
	s, ok := srv.(*service)
	if !ok {
		tb.Fatal("failed to cast Service to *service to run migrations")
	}
	if err := s.RunMigrations(); err != nil {
		tb.Fatalf("failed to run migrations on test database: %v", err)
	}
	return srv
}

func TestNew(t *testing.T) {
	srv := New()
	if srv == nil {
		t.Fatal("New() returned nil")
	}
}

func TestHealth(t *testing.T) {
	srv := New()

	stats := srv.Health()

	if stats["status"] != "up" {
		t.Fatalf("expected status to be up, got %s (error: %s)", stats["status"], stats["error"])
	}

	if errMsg, ok := stats["error"]; ok {
		t.Fatalf("expected error not to be present, got: %s", errMsg)
	}
}

func TestCreateOrUpdateUser(t *testing.T) {
	srv := migrated(t)

	user := &User{
		Provider:   "microsoftonline",
		ProviderID: "test_provider_id_123",
		Email:      "test@university.edu",
		Name:       "Test User",
		AvatarURL:  "http://example.com/avatar.jpg",
	}

	if err := srv.CreateOrUpdateUser(user); err != nil {
		t.Fatalf("CreateOrUpdateUser failed: %v", err)
	}

	if user.ID == 0 {
		t.Error("Expected user ID to be populated, got 0")
	}
	if user.CreatedAt.IsZero() {
		t.Error("Expected CreatedAt to be populated")
	}

	// Upsert with the same provider identity must update, not duplicate.
	firstID := user.ID
	user.Name = "Renamed User"
	if err := srv.CreateOrUpdateUser(user); err != nil {
		t.Fatalf("second CreateOrUpdateUser failed: %v", err)
	}
	if user.ID != firstID {
		t.Errorf("expected upsert to keep id %d, got %d", firstID, user.ID)
	}

	got, err := srv.GetUserByProviderID("microsoftonline", "test_provider_id_123")
	if err != nil {
		t.Fatalf("GetUserByProviderID failed: %v", err)
	}
	if got.Name != "Renamed User" {
		t.Errorf("expected updated name, got %q", got.Name)
	}
}

func TestRecordRoundTrip(t *testing.T) {
	srv := migrated(t)

	user := &User{
		Provider:   "microsoftonline",
		ProviderID: "record_owner",
		Email:      "owner@university.edu",
		Name:       "Record Owner",
	}
	if err := srv.CreateOrUpdateUser(user); err != nil {
		t.Fatalf("CreateOrUpdateUser failed: %v", err)
	}

	tpl, err := schema.Default().Get("general_petition")
	if err != nil {
		t.Fatalf("catalog lookup failed: %v", err)
	}

	rec, err := records.Create(tpl, forms.Values{
		"fullName":    "Ana Ruiz",
		"subjectLine": "Extension request",
	}, time.Date(2026, 3, 5, 10, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("records.Create failed: %v", err)
	}

	if err := srv.SaveRecord(rec, user.ID); err != nil {
		t.Fatalf("SaveRecord failed: %v", err)
	}

	got, err := srv.GetRecord(rec.ID, user.ID)
	if err != nil {
		t.Fatalf("GetRecord failed: %v", err)
	}
	if got.TemplateID != "general_petition" || got.Applicant != "Ana Ruiz" {
		t.Errorf("unexpected record: %+v", got)
	}
	if got.Data["subjectLine"] != "Extension request" {
		t.Errorf("expected form data to survive the round trip, got %v", got.Data)
	}
	if got.CreatedAt != "2026-03-05" {
		t.Errorf("unexpected created_on: %q", got.CreatedAt)
	}

	// A different user must not see the record.
	if _, err := srv.GetRecord(rec.ID, user.ID+999); err == nil {
		t.Error("expected GetRecord to fail for another user")
	}

	list, err := srv.ListRecords(user.ID)
	if err != nil {
		t.Fatalf("ListRecords failed: %v", err)
	}
	if len(list) == 0 {
		t.Fatal("expected at least one record in the listing")
	}

	if err := srv.UpdateRecordStatus(rec.ID, user.ID, records.StatusApproved); err != nil {
		t.Fatalf("UpdateRecordStatus failed: %v", err)
	}
	got, err = srv.GetRecord(rec.ID, user.ID)
	if err != nil {
		t.Fatalf("GetRecord after status change failed: %v", err)
	}
	if got.Status != records.StatusApproved {
		t.Errorf("expected status %q, got %q", records.StatusApproved, got.Status)
	}

	if err := srv.RecordExport(rec.ID, user.ID, "pdf", "drive-item-1"); err != nil {
		t.Fatalf("RecordExport failed: %v", err)
	}
}
