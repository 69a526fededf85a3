package common

import (
	"context"
	"encoding/json"
	"errors"
	jetstreamMock "event-map/common/jetstream/mocks"
	"event-map/model"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"testing"
)

func TestExtractTraceIDFromCtx(t *testing.T) {
	attr := ExtractTraceIDFromCtx(context.Background())

	assert.Equal(t, "trace_id", attr.Key)
	assert.Len(t, attr.Value.String(), 26)
}

func TestPublishMessage(t *testing.T) {
	body := model.ActivityEventMessage{SessionId: "s1", EventId: 3, At: "2025-01-01T00:00:00Z"}
	payload, _ := json.Marshal(body)

	tests := []struct {
		name      string
		body      any
		setupMock func(p *jetstreamMock.MockPublisher)
		wantErr   bool
	}{
		{
			name: "success",
			body: body,
			setupMock: func(p *jetstreamMock.MockPublisher) {
				p.EXPECT().Publish(gomock.Any(), "activity.event.selected", payload).Return(&jetstream.PubAck{}, nil)
			},
		},
		{
			name: "publish error",
			body: body,
			setupMock: func(p *jetstreamMock.MockPublisher) {
				p.EXPECT().Publish(gomock.Any(), "activity.event.selected", payload).Return(nil, errors.New("nats down"))
			},
			wantErr: true,
		},
		{
			name:      "marshal error",
			body:      make(chan int),
			setupMock: func(p *jetstreamMock.MockPublisher) {},
			wantErr:   true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			publisher := jetstreamMock.NewMockPublisher(ctrl)
			tc.setupMock(publisher)

			err := PublishMessage(context.Background(), publisher, "activity.event.selected", tc.body)
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
