package preference

import (
	"testing"

	"gitee.com/mcaid/notification/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestSelectChannels(t *testing.T) {
	t.Parallel()

	full := domain.Recipient{
		UserID:      1,
		Email:       "mother@example.com",
		Phone:       "+254700000000",
		PushID:      "device-1",
		Preferences: domain.DefaultPreferences(),
	}

	testCases := []struct {
		name      string
		recipient func() domain.Recipient
		requested []domain.Channel
		want      []domain.Channel
	}{
		{
			name:      "全部开启",
			recipient: func() domain.Recipient { return full },
			requested: domain.AllChannels(),
			want:      []domain.Channel{domain.ChannelEmail, domain.ChannelSMS, domain.ChannelPush},
		},
		{
			name: "短信偏好关闭",
			recipient: func() domain.Recipient {
				r := full
				r.Preferences.SMS = false
				return r
			},
			requested: domain.AllChannels(),
			want:      []domain.Channel{domain.ChannelEmail, domain.ChannelPush},
		},
		{
			name: "没有手机号时排除短信",
			recipient: func() domain.Recipient {
				r := full
				r.Phone = ""
				return r
			},
			requested: domain.AllChannels(),
			want:      []domain.Channel{domain.ChannelEmail, domain.ChannelPush},
		},
		{
			name: "手机号只有空白",
			recipient: func() domain.Recipient {
				r := full
				r.Phone = "   "
				return r
			},
			requested: []domain.Channel{domain.ChannelSMS},
			want:      []domain.Channel{},
		},
		{
			name: "推送没有设备标识时按用户ID寻址",
			recipient: func() domain.Recipient {
				r := full
				r.PushID = ""
				return r
			},
			requested: []domain.Channel{domain.ChannelPush},
			want:      []domain.Channel{domain.ChannelPush},
		},
		{
			name:      "只请求推送",
			recipient: func() domain.Recipient { return full },
			requested: []domain.Channel{domain.ChannelPush},
			want:      []domain.Channel{domain.ChannelPush},
		},
		{
			name:      "去重并保持顺序",
			recipient: func() domain.Recipient { return full },
			requested: []domain.Channel{domain.ChannelPush, domain.ChannelEmail, domain.ChannelPush},
			want:      []domain.Channel{domain.ChannelPush, domain.ChannelEmail},
		},
		{
			name:      "未知渠道被忽略",
			recipient: func() domain.Recipient { return full },
			requested: []domain.Channel{"FAX", domain.ChannelEmail},
			want:      []domain.Channel{domain.ChannelEmail},
		},
		{
			name: "全部关闭",
			recipient: func() domain.Recipient {
				r := full
				r.Preferences = domain.NotificationPreferences{}
				return r
			},
			requested: domain.AllChannels(),
			want:      []domain.Channel{},
		},
		{
			name: "文档中的示例",
			recipient: func() domain.Recipient {
				return domain.Recipient{
					Email:       "a@b.com",
					Phone:       "",
					Preferences: domain.NotificationPreferences{Email: true, SMS: true, Push: false},
				}
			},
			requested: domain.AllChannels(),
			want:      []domain.Channel{domain.ChannelEmail},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := SelectChannels(tc.recipient(), tc.requested)
			assert.ElementsMatch(t, tc.want, got)
			if len(tc.want) > 0 {
				assert.Equal(t, tc.want, got)
			}
		})
	}
}
