package repository_test

import (
	"context"
	"sync"
	"testing"

	"event-ticketing/config"
	"event-ticketing/internal/database"
	"event-ticketing/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	testDBOnce sync.Once
	testDB     *pgxpool.Pool
	testDBErr  error
)

// getTestDB 返回測試用的資料庫連接池，連不上測試 DB 時跳過測試
func getTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()

	testDBOnce.Do(func() {
		cfg := config.LoadTestConfig()
		testDB, testDBErr = database.InitDatabase(&cfg.Database)
		if testDBErr == nil {
			testDBErr = database.EnsureSchema(context.Background(), testDB)
		}
	})
	if testDBErr != nil {
		t.Skipf("test database unavailable: %v", testDBErr)
	}
	return testDB
}

// setupTestWithTruncate 清空所有測試資料，保留 schema
func setupTestWithTruncate(t *testing.T, db *pgxpool.Pool) {
	t.Helper()

	_, err := db.Exec(context.Background(), "TRUNCATE tickets, registrations, events RESTART IDENTITY CASCADE")
	if err != nil {
		t.Fatalf("Failed to truncate tables: %v", err)
	}
}

// createTestEvent 輔助函數：創建測試用的 event
func createTestEvent(t *testing.T, db *pgxpool.Pool, capacity, registered int, status model.EventStatus) uuid.UUID {
	t.Helper()

	eventID := uuid.New()
	_, err := db.Exec(context.Background(), `
		INSERT INTO events (event_id, name, date, location, capacity, registered_count, price, currency, status)
		VALUES ($1, 'Test Event', now() + interval '30 days', 'Taipei', $2, $3, 25.00, 'usd', $4)
	`, eventID, capacity, registered, status)
	if err != nil {
		t.Fatalf("Failed to create test event: %v", err)
	}
	return eventID
}

// createTestRegistration 輔助函數：創建測試用的 registration
func createTestRegistration(t *testing.T, db *pgxpool.Pool, eventID uuid.UUID, userID string) uuid.UUID {
	t.Helper()

	registrationID := uuid.New()
	_, err := db.Exec(context.Background(), `
		INSERT INTO registrations (registration_id, event_id, user_id, event_date, amount)
		VALUES ($1, $2, $3, now() + interval '30 days', 25.00)
	`, registrationID, eventID, userID)
	if err != nil {
		t.Fatalf("Failed to create test registration: %v", err)
	}
	return registrationID
}

// createTestTicket 輔助函數：創建測試用的 valid ticket
func createTestTicket(t *testing.T, db *pgxpool.Pool, registrationID, eventID uuid.UUID) string {
	t.Helper()

	ticketID := model.NewTicketID()
	_, err := db.Exec(context.Background(), `
		INSERT INTO tickets (ticket_id, registration_id, event_id, user_id, qr_payload, artifact_key)
		VALUES ($1, $2, $3, 'user-42', '{}', 'tickets/' || $1 || '.pdf')
	`, ticketID, registrationID, eventID)
	if err != nil {
		t.Fatalf("Failed to create test ticket: %v", err)
	}
	return ticketID
}
