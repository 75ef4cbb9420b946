// Package msgs defines the payloads published by the byte monitor.
package msgs

import (
	"fmt"
	"time"

	"github.com/golang/protobuf/proto"
)

// Topic suffixes, appended to the monitor ID.
const (
	TopicByte    = "byte"
	TopicSilence = "silence"
)

// ByteEvent is published for every received byte.
type ByteEvent struct {
	Value     uint32 `protobuf:"varint,1,opt,name=value,proto3" json:"value,omitempty"`
	UnixNano  int64  `protobuf:"varint,2,opt,name=unix_nano,json=unixNano,proto3" json:"unix_nano,omitempty"`
	DeltaNano int64  `protobuf:"varint,3,opt,name=delta_nano,json=deltaNano,proto3" json:"delta_nano,omitempty"`
	First     bool   `protobuf:"varint,4,opt,name=first,proto3" json:"first,omitempty"`
	Gap       bool   `protobuf:"varint,5,opt,name=gap,proto3" json:"gap,omitempty"`
}

// Reset implements proto.Message.
func (m *ByteEvent) Reset() { *m = ByteEvent{} }

// String implements proto.Message.
func (m *ByteEvent) String() string { return proto.CompactTextString(m) }

// ProtoMessage implements proto.Message.
func (*ByteEvent) ProtoMessage() {}

// Delta returns the time since the previous byte.
func (m *ByteEvent) Delta() time.Duration { return time.Duration(m.DeltaNano) }

// Silence is published once when the monitor gives up waiting.
type Silence struct {
	TimeoutNano int64 `protobuf:"varint,1,opt,name=timeout_nano,json=timeoutNano,proto3" json:"timeout_nano,omitempty"`
}

// Reset implements proto.Message.
func (m *Silence) Reset() { *m = Silence{} }

// String implements proto.Message.
func (m *Silence) String() string { return proto.CompactTextString(m) }

// ProtoMessage implements proto.Message.
func (*Silence) ProtoMessage() {}

// Timeout returns the silence duration.
func (m *Silence) Timeout() time.Duration { return time.Duration(m.TimeoutNano) }

// UnknownTopicError indicates a payload on a topic with no known message.
type UnknownTopicError struct {
	Topic string
}

// Error implements error.
func (e *UnknownTopicError) Error() string {
	return fmt.Sprintf("unknown topic suffix: %q", e.Topic)
}

// NewMessage creates an empty message for a topic suffix.
func NewMessage(suffix string) (proto.Message, error) {
	switch suffix {
	case TopicByte:
		return &ByteEvent{}, nil
	case TopicSilence:
		return &Silence{}, nil
	}
	return nil, &UnknownTopicError{Topic: suffix}
}

// Decode decodes a payload received on a topic with the given suffix.
func Decode(suffix string, payload []byte) (proto.Message, error) {
	msg, err := NewMessage(suffix)
	if err != nil {
		return nil, err
	}
	if err = proto.Unmarshal(payload, msg); err != nil {
		return nil, err
	}
	return msg, nil
}
