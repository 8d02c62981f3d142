package mqtt

import (
	"errors"
	"testing"
	"time"

	pahomqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/stretchr/testify/assert"
)

type fakeToken struct {
	err      error
	complete bool
}

func (t *fakeToken) Wait() bool                     { return t.complete }
func (t *fakeToken) WaitTimeout(time.Duration) bool { return t.complete }
func (t *fakeToken) Done() <-chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}
func (t *fakeToken) Error() error { return t.err }

// fakeClient embeds the interface so only Publish needs an implementation.
type fakeClient struct {
	pahomqtt.Client
	token    *fakeToken
	topic    string
	qos      byte
	payloads [][]byte
}

func (c *fakeClient) Publish(topic string, qos byte, retained bool, payload interface{}) pahomqtt.Token {
	c.topic, c.qos = topic, qos
	c.payloads = append(c.payloads, payload.([]byte))
	return c.token
}

func TestPublish(t *testing.T) {
	client := &fakeClient{token: &fakeToken{complete: true}}
	p := NewPublisher(client, "site/contact")

	err := p.Publish([]byte(`{"type":"contact_message"}`))
	assert.NoError(t, err)
	assert.Equal(t, "site/contact", client.topic)
	assert.Equal(t, byte(1), client.qos)
	assert.Len(t, client.payloads, 1)
}

func TestPublishError(t *testing.T) {
	client := &fakeClient{token: &fakeToken{complete: true, err: errors.New("not connected")}}
	err := NewPublisher(client, "site/contact").Publish([]byte("x"))
	assert.ErrorContains(t, err, "not connected")
}

func TestPublishTimeout(t *testing.T) {
	client := &fakeClient{token: &fakeToken{complete: false}}
	err := NewPublisher(client, "site/contact").Publish([]byte("x"))
	assert.ErrorContains(t, err, "timed out")
}
