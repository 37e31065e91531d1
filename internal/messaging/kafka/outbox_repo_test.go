package kafka_test

import (
	"context"
	"testing"
	"time"

	"go-worktime/internal/messaging/kafka"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestOutboxRepository_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		repo := kafka.NewOutboxRepository(db)

		event := kafka.OutboxEvent{
			ID:            "evt-1",
			AggregateType: "time_entry",
			AggregateID:   "entry-1",
			EventType:     "time_entry.clocked_in",
			Topic:         "worktime.time-entry.lifecycle.v1",
			Payload:       []byte(`{"entry_id":"entry-1"}`),
			Status:        kafka.OutboxStatusPending,
		}

		mock.ExpectExec("INSERT INTO outbox_events").
			WithArgs(event.ID, event.RequestID, event.AggregateType,
				event.AggregateID, event.EventType, event.Topic, event.Payload, event.Status).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Create(ctx, event))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("success within transaction", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO outbox_events").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		tx, err := db.Begin()
		assert.NoError(t, err)

		repo := kafka.NewOutboxRepository(db).WithTx(tx)
		assert.NoError(t, repo.Create(ctx, kafka.OutboxEvent{
			ID:     "evt-2",
			Topic:  "worktime.time-entry.lifecycle.v1",
			Status: kafka.OutboxStatusPending,
		}))
		assert.NoError(t, tx.Commit())
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestOutboxRepository_ListPending(t *testing.T) {
	ctx := context.Background()

	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := kafka.NewOutboxRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows([]string{
		"id", "aggregate_type", "aggregate_id", "event_type",
		"topic", "payload", "status", "retry_count", "next_retry_at",
	}).AddRow(
		"evt-1", "time_entry", "entry-1", "time_entry.clocked_in",
		"worktime.time-entry.lifecycle.v1", []byte(`{}`), kafka.OutboxStatusPending, 0, now,
	)

	mock.ExpectQuery("SELECT").
		WithArgs(kafka.OutboxStatusPending, kafka.OutboxStatusFailed, 50).
		WillReturnRows(rows)

	events, err := repo.ListPending(ctx, 50)

	assert.NoError(t, err)
	assert.Len(t, events, 1)
	assert.Equal(t, "evt-1", events[0].ID)
	assert.Equal(t, "time_entry.clocked_in", events[0].EventType)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_MarkSentAndFailed(t *testing.T) {
	ctx := context.Background()

	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := kafka.NewOutboxRepository(db)

	mock.ExpectExec("UPDATE outbox_events").
		WithArgs("evt-1", kafka.OutboxStatusSent).
		WillReturnResult(sqlmock.NewResult(0, 1))
	assert.NoError(t, repo.MarkSent(ctx, "evt-1"))

	mock.ExpectExec("UPDATE outbox_events").
		WithArgs("evt-2", kafka.OutboxStatusFailed, "broker unreachable").
		WillReturnResult(sqlmock.NewResult(0, 1))
	assert.NoError(t, repo.MarkFailed(ctx, "evt-2", "broker unreachable"))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestValidateOutboxEvent(t *testing.T) {
	valid := kafka.OutboxEvent{
		ID:      "evt-1",
		Topic:   "worktime.time-entry.lifecycle.v1",
		Payload: []byte(`{}`),
		Status:  kafka.OutboxStatusPending,
	}
	assert.NoError(t, kafka.ValidateOutboxEvent(valid))

	noTopic := valid
	noTopic.Topic = ""
	assert.Error(t, kafka.ValidateOutboxEvent(noTopic))

	badStatus := valid
	badStatus.Status = "queued"
	assert.Error(t, kafka.ValidateOutboxEvent(badStatus))
}
