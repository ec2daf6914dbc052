package email

import (
	"context"
	"errors"
	"testing"

	"gitee.com/mcaid/notification/internal/domain"
	"gitee.com/mcaid/notification/internal/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	sent []Message
	err  error
}

func (f *fakeClient) Send(_ context.Context, msg Message) error {
	f.sent = append(f.sent, msg)
	return f.err
}

func TestEmailProvider_Send(t *testing.T) {
	t.Parallel()

	notification := domain.Notification{
		EventID:  7,
		Kind:     domain.EventAppointmentCreated,
		Channel:  domain.ChannelEmail,
		Receiver: "a@b.com",
		Email: domain.EmailContent{
			Subject: "Appointment Reminder - MCaid",
			HTML:    "<p>hi</p>",
			Text:    "hi",
		},
	}

	t.Run("发送成功", func(t *testing.T) {
		t.Parallel()
		cli := &fakeClient{}
		resp, err := NewProvider(cli).Send(context.Background(), notification)
		require.NoError(t, err)
		assert.Equal(t, domain.SendResponse{
			EventID:  7,
			Channel:  domain.ChannelEmail,
			Receiver: "a@b.com",
			Status:   domain.SendStatusSucceeded,
		}, resp)
		assert.Equal(t, []Message{{
			To:      "a@b.com",
			Subject: "Appointment Reminder - MCaid",
			Text:    "hi",
			HTML:    "<p>hi</p>",
		}}, cli.sent)
	})

	t.Run("传输失败", func(t *testing.T) {
		t.Parallel()
		_, err := NewProvider(&fakeClient{err: errors.New("421 service not available")}).Send(context.Background(), notification)
		assert.ErrorIs(t, err, errs.ErrTransport)
	})

	t.Run("未配置", func(t *testing.T) {
		t.Parallel()
		_, err := NewProvider(nil).Send(context.Background(), notification)
		assert.ErrorIs(t, err, errs.ErrUnconfigured)
	})
}
