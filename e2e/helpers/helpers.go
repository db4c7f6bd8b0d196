package helpers

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/go-jet/jet/v2/qrm"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/soukwatch/pricetracker/internal/normalizer"
	"github.com/soukwatch/pricetracker/internal/platform/storage/storagetesting"
	"github.com/stretchr/testify/require"
)

const (
	pollInterval = time.Millisecond * 250
	pollDeadline = time.Second * 30
)

// DeclareRMQExchange is helper function for declaring RMQ exchange.
func DeclareRMQExchange(t *testing.T, ch *amqp.Channel, exchange string) {
	t.Helper()

	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		require.FailNow(t, "can't declare exchange", exchange, err)
	}
}

// DeclareRMQQueue is helper function for declaring RMQ queue and binding and cleaning them after test is finished.
func DeclareRMQQueue(t *testing.T, channel *amqp.Channel, queueName, exchange, routingKey string) {
	t.Helper()

	_, err := channel.QueueDeclare(queueName, true, false, false, false, nil)
	if err != nil {
		require.FailNow(t, "can't declare queue", queueName, err)
	}

	err = channel.QueueBind(queueName, routingKey, exchange, false, nil)
	if err != nil {
		require.FailNow(t, "can't bind queue", queueName, routingKey, err)
	}

	t.Cleanup(func() {
		_, err := channel.QueueDelete(queueName, false, false, true)
		if err != nil {
			require.FailNow(t, "can't delete queue", queueName, err)
		}
	})
}

// RecordsToRaw is helper function which marshals records into the raw JSON
// form carried by save commands.
func RecordsToRaw(t *testing.T, records []normalizer.Record) []json.RawMessage {
	t.Helper()

	raw := make([]json.RawMessage, len(records))
	for ix := range records {
		msg, err := json.Marshal(records[ix])
		if err != nil {
			require.FailNow(t, "can't marshal record", err)
		}
		raw[ix] = msg
	}

	return raw
}

// WaitForSnapshots is blocking helper function, returns once the store holds
// at least n price history rows.
func WaitForSnapshots(t *testing.T, queryable qrm.Queryable, n int) {
	t.Helper()

	deadline := time.Now().Add(pollDeadline)
	for {
		<-time.After(pollInterval)
		if len(storagetesting.GetSnapshots(t, queryable)) >= n {
			return
		}
		if time.Now().After(deadline) {
			require.FailNowf(t, "timed out", "waiting for %d snapshots", n)
		}
	}
}

// WaitForChanges is blocking helper function, returns once the store holds
// at least n price changes.
func WaitForChanges(t *testing.T, queryable qrm.Queryable, n int) {
	t.Helper()

	deadline := time.Now().Add(pollDeadline)
	for {
		<-time.After(pollInterval)
		if len(storagetesting.GetChanges(t, queryable)) >= n {
			return
		}
		if time.Now().After(deadline) {
			require.FailNowf(t, "timed out", "waiting for %d changes", n)
		}
	}
}
