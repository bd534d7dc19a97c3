package queue

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oleksandr-romashko/goit-pythonweb-hw-12/internal/model"
	"github.com/oleksandr-romashko/goit-pythonweb-hw-12/internal/testutil"
)

type fakeChannel struct {
	declared   string
	durable    bool
	declareErr error

	key        string
	published  []amqp.Publishing
	publishErr error

	closed bool
}

func (f *fakeChannel) QueueDeclare(name string, durable, _, _, _ bool, _ amqp.Table) (amqp.Queue, error) {
	f.declared = name
	f.durable = durable
	return amqp.Queue{Name: name}, f.declareErr
}

func (f *fakeChannel) PublishWithContext(_ context.Context, _, key string, _, _ bool, msg amqp.Publishing) error {
	f.key = key
	if f.publishErr != nil {
		return f.publishErr
	}
	f.published = append(f.published, msg)
	return nil
}

func (f *fakeChannel) Close() error {
	f.closed = true
	return nil
}

func TestNewPublisherWithChannel(t *testing.T) {
	ch := &fakeChannel{}
	p, err := NewPublisherWithChannel(ch, "email_confirmation", testutil.MakeNoopLogger())
	require.NoError(t, err)
	assert.NotNil(t, p)
	assert.Equal(t, "email_confirmation", ch.declared)
	assert.True(t, ch.durable)
}

func TestNewPublisherWithChannel_DeclareError(t *testing.T) {
	ch := &fakeChannel{declareErr: errors.New("access refused")}
	_, err := NewPublisherWithChannel(ch, "q", testutil.MakeNoopLogger())
	require.Error(t, err)
}

func TestPublisher_PublishEmailConfirmation(t *testing.T) {
	ch := &fakeChannel{}
	p, err := NewPublisherWithChannel(ch, "email_confirmation", testutil.MakeNoopLogger())
	require.NoError(t, err)

	job := model.EmailConfirmationJob{UserID: 3, Username: "ann", Email: "ann@example.com", Token: "tok"}
	require.NoError(t, p.PublishEmailConfirmation(context.Background(), job))

	require.Len(t, ch.published, 1)
	msg := ch.published[0]
	assert.Equal(t, "email_confirmation", ch.key)
	assert.Equal(t, "application/json", msg.ContentType)
	assert.Equal(t, amqp.Persistent, msg.DeliveryMode)

	var got map[string]any
	require.NoError(t, json.Unmarshal(msg.Body, &got))
	assert.Equal(t, map[string]any{
		"user_id":  float64(3),
		"username": "ann",
		"email":    "ann@example.com",
		"token":    "tok",
	}, got)
}

func TestPublisher_PublishError(t *testing.T) {
	ch := &fakeChannel{publishErr: amqp.ErrClosed}
	p, err := NewPublisherWithChannel(ch, "q", testutil.MakeNoopLogger())
	require.NoError(t, err)

	err = p.PublishEmailConfirmation(context.Background(), model.EmailConfirmationJob{UserID: 1})
	require.ErrorIs(t, err, amqp.ErrClosed)
}

func TestPublisher_Close(t *testing.T) {
	ch := &fakeChannel{}
	p, err := NewPublisherWithChannel(ch, "q", testutil.MakeNoopLogger())
	require.NoError(t, err)

	require.NoError(t, p.Close())
	assert.True(t, ch.closed)
}
