package domain

// Channel 通知渠道
type Channel string

const (
	ChannelEmail Channel = "EMAIL" // 邮件
	ChannelSMS   Channel = "SMS"   // 短信
	ChannelPush  Channel = "PUSH"  // 推送
)

func (c Channel) String() string {
	return string(c)
}

func (c Channel) IsValid() bool {
	return c == ChannelEmail || c == ChannelSMS || c == ChannelPush
}

// AllChannels 全部渠道，顺序即发送顺序
func AllChannels() []Channel {
	return []Channel{ChannelEmail, ChannelSMS, ChannelPush}
}
