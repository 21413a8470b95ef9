package kafka_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"routetrail/internal/adapters/out/kafka"
	"routetrail/internal/core/domain/model/kernel"
	"routetrail/internal/core/domain/model/ledger"
	"routetrail/internal/core/domain/model/status"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEntry(t *testing.T, geo *kernel.GeoPoint) *ledger.Entry {
	t.Helper()
	ref, err := ledger.NewEntityRef(status.KindRoutePoint, kernel.NewUUID())
	require.NoError(t, err)
	tagged, err := status.NewPointStatus("arrived")
	require.NoError(t, err)
	entry, err := ledger.NewEntry(ref, tagged, time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC), geo, "gate 3")
	require.NoError(t, err)
	entry.AssignSeq(7)
	return entry
}

func TestStatusEventPublisher_SendsKeyedEvent(t *testing.T) {
	producer := mocks.NewSyncProducer(t, mocks.NewTestConfig())
	geo, err := kernel.NewGeoPoint(43.2, 76.9)
	require.NoError(t, err)
	entry := newEntry(t, &geo)

	producer.ExpectSendMessageWithMessageCheckerFunctionAndSucceed(func(msg *sarama.ProducerMessage) error {
		if msg.Topic != "route-status" {
			return errors.New("unexpected topic " + msg.Topic)
		}
		key, err := msg.Key.Encode()
		if err != nil {
			return err
		}
		if string(key) != entry.Ref().ID.String() {
			return errors.New("message is not keyed by entity id")
		}
		return nil
	})

	publisher := kafka.NewStatusEventPublisherWithProducer(producer, "route-status", nil)
	require.NoError(t, publisher.PublishStatusChanged(context.Background(), entry))
	require.NoError(t, publisher.Close())
}

func TestStatusEventPublisher_EventBody(t *testing.T) {
	producer := mocks.NewSyncProducer(t, mocks.NewTestConfig())
	geo, err := kernel.NewGeoPoint(43.2, 76.9)
	require.NoError(t, err)
	entry := newEntry(t, &geo)

	var event kafka.StatusChangedEvent
	producer.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
		return json.Unmarshal(val, &event)
	})

	publisher := kafka.NewStatusEventPublisherWithProducer(producer, "route-status", nil)
	require.NoError(t, publisher.PublishStatusChanged(context.Background(), entry))

	assert.Equal(t, entry.ID().String(), event.EntryID)
	assert.Equal(t, int64(7), event.Seq)
	assert.Equal(t, "route_point", event.EntityType)
	assert.Equal(t, "arrived", event.Status)
	assert.True(t, entry.Timestamp().Equal(event.Timestamp))
	require.NotNil(t, event.Latitude)
	assert.InDelta(t, 43.2, *event.Latitude, 1e-9)
	assert.Equal(t, "gate 3", event.Note)
	require.NoError(t, publisher.Close())
}

func TestStatusEventPublisher_SendFailure(t *testing.T) {
	producer := mocks.NewSyncProducer(t, mocks.NewTestConfig())
	producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	publisher := kafka.NewStatusEventPublisherWithProducer(producer, "route-status", nil)
	err := publisher.PublishStatusChanged(context.Background(), newEntry(t, nil))

	require.ErrorIs(t, err, sarama.ErrOutOfBrokers)
	require.NoError(t, publisher.Close())
}

func TestStatusEventPublisher_RejectsUnconstructedEntry(t *testing.T) {
	producer := mocks.NewSyncProducer(t, mocks.NewTestConfig())

	publisher := kafka.NewStatusEventPublisherWithProducer(producer, "route-status", nil)
	err := publisher.PublishStatusChanged(context.Background(), &ledger.Entry{})

	require.ErrorIs(t, err, ledger.ErrEntryIsNotConstructed)
	require.NoError(t, publisher.Close())
}
