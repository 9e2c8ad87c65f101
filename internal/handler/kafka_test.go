package handler_test

import (
	"context"
	"sync"
	"testing"

	"github.com/SergeyBogomolovv/food-delivery-service/internal/entities"
	"github.com/SergeyBogomolovv/food-delivery-service/internal/handler"
	mocks "github.com/SergeyBogomolovv/food-delivery-service/internal/handler/mocks"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type fakeReader struct {
	mu        sync.Mutex
	messages  []kafka.Message
	committed []int64
	closed    bool
}

func (r *fakeReader) FetchMessage(ctx context.Context) (kafka.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.messages) == 0 {
		return kafka.Message{}, context.Canceled
	}
	m := r.messages[0]
	r.messages = r.messages[1:]
	return m, nil
}

func (r *fakeReader) CommitMessages(ctx context.Context, msgs ...kafka.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range msgs {
		r.committed = append(r.committed, m.Offset)
	}
	return nil
}

func (r *fakeReader) Close() error {
	r.closed = true
	return nil
}

func TestKafkaHandler_Consume(t *testing.T) {
	reader := &fakeReader{messages: []kafka.Message{
		{Offset: 1, Value: []byte(`{"order_id":"order-1","driver_id":"driver-1","lat":48.8566,"lng":2.3522}`)},
		{Offset: 2, Value: []byte(`not json`)},
		{Offset: 3, Value: []byte(`{"order_id":"order-1","lat":48.8566,"lng":2.3522}`)},
		{Offset: 4, Value: []byte(`{"order_id":"order-1","driver_id":"driver-1","lat":95,"lng":2.3522}`)},
		{Offset: 5, Value: []byte(`{"order_id":"order-2","driver_id":"driver-1","lat":48.8606,"lng":2.3376}`)},
		{Offset: 6, Value: []byte(`{"order_id":"order-1","driver_id":"driver-1","lat":1e999,"lng":2.3522}`)},
	}}

	reporter := mocks.NewMockLocationReporter(t)
	reporter.EXPECT().ReportDriverLocation(mock.Anything, "order-1", "driver-1", paris).Return(nil).Once()
	reporter.EXPECT().ReportDriverLocation(mock.Anything, "order-2", "driver-1", louvre).Return(entities.ErrInvalidTransition).Once()

	h := handler.NewKafkaHandlerWithReader(newLogger(), reader, reporter)
	h.Consume(context.Background())

	assert.Equal(t, []int64{1, 2, 3, 4, 5, 6}, reader.committed)
	assert.NoError(t, h.Close())
	assert.True(t, reader.closed)
}

func TestKafkaHandler_ConsumeStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	reader := &fakeReader{}
	h := handler.NewKafkaHandlerWithReader(newLogger(), reader, mocks.NewMockLocationReporter(t))
	h.Consume(ctx)

	assert.Empty(t, reader.committed)
}
