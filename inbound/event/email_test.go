package event

import (
	"context"
	"fmt"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	emailMock "kerala-tours/outbound/email/mocks"
	"log/slog"
	"testing"
	"time"
)

type EmailEventTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	sender     *emailMock.MockSender
	emailEvent EmailEvent
}

func (s *EmailEventTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.sender = emailMock.NewMockSender(s.ctrl)
	s.emailEvent = EmailEvent{
		Sender:  s.sender,
		Timeout: 10 * time.Second,
	}

	slog.SetLogLoggerLevel(slog.LevelDebug)
}

func (s *EmailEventTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestEmailEventTestSuite(t *testing.T) {
	suite.Run(t, new(EmailEventTestSuite))
}

func (s *EmailEventTestSuite) TestSendEmailHandler() {
	testCases := []struct {
		name        string
		msg         string
		setupMock   func()
		expectError bool
	}{
		{
			name:        "invalid json",
			msg:         `{invalid`,
			setupMock:   func() {},
			expectError: false,
		},
		{
			name:        "missing recipient",
			msg:         `{"subject":"Booking Received","body":"hello"}`,
			setupMock:   func() {},
			expectError: false,
		},
		{
			name: "send error",
			msg:  `{"to":"john@example.com","subject":"Booking Received","body":"hello"}`,
			setupMock: func() {
				s.sender.EXPECT().
					Send([]string{"john@example.com"}, "Booking Received", "hello").
					Return(fmt.Errorf("smtp error"))
			},
			expectError: true,
		},
		{
			name: "success",
			msg:  `{"to":"john@example.com","subject":"Booking Received","body":"hello"}`,
			setupMock: func() {
				s.sender.EXPECT().
					Send([]string{"john@example.com"}, "Booking Received", "hello").
					Return(nil)
			},
			expectError: false,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			tc.setupMock()

			err := s.emailEvent.SendEmailHandler(context.Background(), []byte(tc.msg))

			if tc.expectError {
				s.Error(err)
			} else {
				s.NoError(err)
			}
		})
	}
}
