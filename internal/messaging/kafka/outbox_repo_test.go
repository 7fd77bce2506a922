package kafka

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestOutboxRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewOutboxRepository(db)
	event := OutboxEvent{
		ID:            "evt-1",
		RequestID:     "req-1",
		AggregateType: "establecimiento",
		AggregateID:   "est-1",
		EventType:     "establecimiento_created",
		Topic:         "ciec.establecimiento.lifecycle.v1",
		Payload:       []byte(`{"id":"est-1"}`),
		Status:        OutboxStatusPending,
	}

	mock.ExpectExec("INSERT INTO outbox_events").
		WithArgs(
			event.ID, event.RequestID, event.AggregateType,
			event.AggregateID, event.EventType, event.Topic, event.Payload, event.Status,
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Create(context.Background(), event))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_CreateWithTx(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO outbox_events").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	tx, err := db.Begin()
	assert.NoError(t, err)

	repo := NewOutboxRepository(db).WithTx(tx)
	assert.NoError(t, repo.Create(context.Background(), OutboxEvent{
		ID:     "evt-1",
		Topic:  "ciec.establecimiento.lifecycle.v1",
		Status: OutboxStatusPending,
	}))
	assert.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_ListPending(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewOutboxRepository(db)

	rows := sqlmock.NewRows([]string{
		"id", "aggregate_type", "aggregate_id", "event_type",
		"topic", "payload", "status", "retry_count", "coalesce",
	}).AddRow(
		"evt-1", "establecimiento", "est-1", "establecimiento_created",
		"ciec.establecimiento.lifecycle.v1", []byte(`{}`), OutboxStatusPending, 0, time.Now(),
	)

	mock.ExpectQuery("FROM outbox_events").
		WithArgs(OutboxStatusPending, OutboxStatusFailed, 10).
		WillReturnRows(rows)

	events, err := repo.ListPending(context.Background(), 10)
	assert.NoError(t, err)
	assert.Len(t, events, 1)
	assert.Equal(t, "evt-1", events[0].ID)
	assert.Equal(t, "establecimiento_created", events[0].EventType)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_MarkSent(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewOutboxRepository(db)

	mock.ExpectExec("UPDATE outbox_events").
		WithArgs("evt-1", OutboxStatusSent).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.MarkSent(context.Background(), "evt-1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_MarkFailed(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewOutboxRepository(db)

	mock.ExpectExec("UPDATE outbox_events").
		WithArgs("evt-1", OutboxStatusFailed, "broker unreachable").
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.MarkFailed(context.Background(), "evt-1", "broker unreachable"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestValidateOutboxEvent(t *testing.T) {
	valid := OutboxEvent{
		ID:      "evt-1",
		Topic:   "ciec.establecimiento.lifecycle.v1",
		Payload: []byte(`{}`),
		Status:  OutboxStatusPending,
	}
	assert.NoError(t, ValidateOutboxEvent(valid))

	noID := valid
	noID.ID = ""
	assert.Error(t, ValidateOutboxEvent(noID))

	noTopic := valid
	noTopic.Topic = ""
	assert.Error(t, ValidateOutboxEvent(noTopic))

	noPayload := valid
	noPayload.Payload = nil
	assert.Error(t, ValidateOutboxEvent(noPayload))

	badStatus := valid
	badStatus.Status = "done"
	assert.Error(t, ValidateOutboxEvent(badStatus))
}
