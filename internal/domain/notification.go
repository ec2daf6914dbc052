package domain

// EmailContent 邮件内容
type EmailContent struct {
	Subject string
	HTML    string
	Text    string
}

// SMSContent 短信内容
type SMSContent struct {
	Text string
}

// PushContent 推送内容
type PushContent struct {
	Title string
	Body  string
	Data  map[string]string
}

// Messages 一个事件渲染出来的各渠道内容，nil 表示该渠道没有内容
type Messages struct {
	Email *EmailContent
	SMS   *SMSContent
	Push  *PushContent
}

// Has 渠道是否有可发送的内容
func (m Messages) Has(channel Channel) bool {
	switch channel {
	case ChannelEmail:
		return m.Email != nil
	case ChannelSMS:
		return m.SMS != nil
	case ChannelPush:
		return m.Push != nil
	default:
		return false
	}
}

// Notification 发往单个渠道的一次投递
type Notification struct {
	EventID  uint64
	Kind     EventKind
	Channel  Channel
	Receiver string // 邮箱/手机号/推送标识
	Email    EmailContent
	SMS      SMSContent
	Push     PushContent
}

// NewNotification 按渠道从 Messages 中取出对应内容
func NewNotification(evt DomainEvent, channel Channel, msgs Messages) Notification {
	n := Notification{
		EventID:  evt.ID,
		Kind:     evt.Kind,
		Channel:  channel,
		Receiver: evt.Recipient.Contact(channel),
	}
	switch channel {
	case ChannelEmail:
		if msgs.Email != nil {
			n.Email = *msgs.Email
		}
	case ChannelSMS:
		if msgs.SMS != nil {
			n.SMS = *msgs.SMS
		}
	case ChannelPush:
		if msgs.Push != nil {
			n.Push = *msgs.Push
		}
	}
	return n
}

// SendStatus 发送状态
type SendStatus string

const (
	SendStatusSucceeded SendStatus = "SUCCEEDED" // 发送成功
	SendStatusSkipped   SendStatus = "SKIPPED"   // 未配置等原因跳过，不算失败
	SendStatusFailed    SendStatus = "FAILED"    // 发送失败
)

// SendResponse 渠道发送结果
type SendResponse struct {
	EventID  uint64
	Channel  Channel
	Receiver string
	Status   SendStatus
}

// DispatchOutcome 一个渠道的一次尝试结果，仅用于日志和观测
type DispatchOutcome struct {
	EventID  uint64
	Channel  Channel
	Receiver string
	Status   SendStatus
	Err      error
}

// Success 跳过也算成功
func (o DispatchOutcome) Success() bool {
	return o.Status == SendStatusSucceeded || o.Status == SendStatusSkipped
}
