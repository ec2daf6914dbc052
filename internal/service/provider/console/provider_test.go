package console

import (
	"context"
	"testing"

	"gitee.com/mcaid/notification/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProvider_Send(t *testing.T) {
	t.Parallel()

	resp, err := NewProvider().Send(context.Background(), domain.Notification{
		EventID:  7,
		Channel:  domain.ChannelPush,
		Receiver: "12",
		Push: domain.PushContent{
			Title: "New message from Dr. Smith",
			Body:  "See you tomorrow",
			Data:  map[string]string{"type": "chat"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, domain.SendResponse{
		EventID:  7,
		Channel:  domain.ChannelPush,
		Receiver: "12",
		Status:   domain.SendStatusSucceeded,
	}, resp)
}
