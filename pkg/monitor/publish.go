package monitor

import (
	"time"

	"github.com/golang/glog"
	"github.com/golang/protobuf/proto"

	"github.com/robotalks/ledfield/pkg/monitor/msgs"
)

// Publisher sends a payload to a topic.
type Publisher interface {
	Publish(topic string, payload []byte) error
}

// PublishReporter publishes events under "<ID>/byte" and "<ID>/silence".
// Publishing failures are logged and never stop the monitor.
type PublishReporter struct {
	Publisher Publisher
	ID        string
}

// NewPublishReporter creates a PublishReporter.
func NewPublishReporter(pub Publisher, id string) *PublishReporter {
	return &PublishReporter{Publisher: pub, ID: id}
}

// Byte implements Reporter.
func (r *PublishReporter) Byte(evt Event) error {
	r.publish(msgs.TopicByte, &msgs.ByteEvent{
		Value:     uint32(evt.Value),
		UnixNano:  evt.Time.UnixNano(),
		DeltaNano: int64(evt.Delta),
		First:     evt.First,
		Gap:       evt.Gap,
	})
	return nil
}

// Silence implements Reporter.
func (r *PublishReporter) Silence(timeout time.Duration) error {
	r.publish(msgs.TopicSilence, &msgs.Silence{TimeoutNano: int64(timeout)})
	return nil
}

func (r *PublishReporter) publish(suffix string, msg proto.Message) {
	topic := r.ID + "/" + suffix
	data, err := proto.Marshal(msg)
	if err == nil {
		err = r.Publisher.Publish(topic, data)
	}
	if err != nil {
		glog.Warningf("publish %s: %v", topic, err)
	}
}
