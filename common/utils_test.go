package common

import (
	"context"
	"errors"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"kerala-tours/common/constant"
	jetsteamMock "kerala-tours/common/jetstream/mocks"
	"testing"
)

func TestPublishMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	publisher := jetsteamMock.NewMockPublisher(ctrl)

	publisher.EXPECT().
		Publish(gomock.Any(), constant.SubjectSendEmail, []byte(`{"to":["a@b.c"]}`)).
		Return(&jetstream.PubAck{}, nil)

	err := PublishMessage(context.Background(), publisher, constant.SubjectSendEmail, map[string][]string{"to": {"a@b.c"}})
	require.NoError(t, err)
}

func TestPublishMessageErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	publisher := jetsteamMock.NewMockPublisher(ctrl)

	s := constant.SubjectSendEmail
	err := PublishMessage(context.Background(), publisher, s, func() {})
	assert.ErrorContains(t, err, "marshal "+s)

	publishErr := errors.New("nats down")
	publisher.EXPECT().Publish(gomock.Any(), s, gomock.Any()).Return(nil, publishErr)

	err = PublishMessage(context.Background(), publisher, s, struct{}{})
	assert.ErrorIs(t, err, publishErr)
}

func TestExtractTraceIDFromCtx(t *testing.T) {
	attr := ExtractTraceIDFromCtx(context.Background())

	assert.Equal(t, constant.LogFieldTraceId, attr.Key)
	assert.Len(t, attr.Value.String(), 26)
}

func TestBookingCode(t *testing.T) {
	assert.Equal(t, "KTG-42", BookingCode(42))
}
