package domain

import "strconv"

// EventKind 领域事件类型
type EventKind string

const (
	EventAppointmentCreated   EventKind = "appointment-created"
	EventAppointmentUpdated   EventKind = "appointment-updated"
	EventMedicationPrescribed EventKind = "medication-prescribed"
	EventOrderStatusChanged   EventKind = "order-status-changed"
	EventHealthAlert          EventKind = "health-alert"
	EventChatMessageReceived  EventKind = "chat-message-received"
)

func (k EventKind) String() string {
	return string(k)
}

// DomainEvent 领域写操作成功后构造的瞬时事件，不落库
type DomainEvent struct {
	ID        uint64
	Kind      EventKind
	Recipient Recipient
	Payload   Payload
}

// Payload 事件负载，只有本包内定义的类型可以实现
type Payload interface {
	kinds() []EventKind
}

// Accepts 负载类型与事件类型是否匹配
func (e DomainEvent) Accepts() bool {
	if e.Payload == nil {
		return false
	}
	for _, k := range e.Payload.kinds() {
		if k == e.Kind {
			return true
		}
	}
	return false
}

// AppointmentPayload 预约创建/更新
type AppointmentPayload struct {
	AppointmentID int64
	DoctorName    string
	PatientName   string
	Date          string
	Time          string
	Type          string
	MeetingLink   string
	Notes         string
	// BookedByPatient 为 true 时接收者是医护人员，由孕妈发起预约
	BookedByPatient bool
}

func (AppointmentPayload) kinds() []EventKind {
	return []EventKind{EventAppointmentCreated, EventAppointmentUpdated}
}

// MedicationPayload 开药
type MedicationPayload struct {
	Name           string
	Dosage         string
	Frequency      string
	StartDate      string
	EndDate        string
	PrescriberName string
}

func (MedicationPayload) kinds() []EventKind {
	return []EventKind{EventMedicationPrescribed}
}

// OrderPayload 订单状态变更
type OrderPayload struct {
	OrderID           int64
	TrackingNumber    string
	Status            string
	EstimatedDelivery string
}

func (OrderPayload) kinds() []EventKind {
	return []EventKind{EventOrderStatusChanged}
}

// HealthAlertPayload 健康预警
type HealthAlertPayload struct {
	AlertType string
	Message   string
}

func (HealthAlertPayload) kinds() []EventKind {
	return []EventKind{EventHealthAlert}
}

// ChatMessagePayload 新聊天消息
type ChatMessagePayload struct {
	SenderName string
	Preview    string
}

func (ChatMessagePayload) kinds() []EventKind {
	return []EventKind{EventChatMessageReceived}
}

func NewAppointmentCreatedEvent(r Recipient, p AppointmentPayload) DomainEvent {
	return DomainEvent{Kind: EventAppointmentCreated, Recipient: r, Payload: p}
}

func NewAppointmentUpdatedEvent(r Recipient, p AppointmentPayload) DomainEvent {
	return DomainEvent{Kind: EventAppointmentUpdated, Recipient: r, Payload: p}
}

func NewMedicationPrescribedEvent(r Recipient, p MedicationPayload) DomainEvent {
	return DomainEvent{Kind: EventMedicationPrescribed, Recipient: r, Payload: p}
}

func NewOrderStatusChangedEvent(r Recipient, p OrderPayload) DomainEvent {
	return DomainEvent{Kind: EventOrderStatusChanged, Recipient: r, Payload: p}
}

func NewHealthAlertEvent(r Recipient, p HealthAlertPayload) DomainEvent {
	return DomainEvent{Kind: EventHealthAlert, Recipient: r, Payload: p}
}

func NewChatMessageEvent(r Recipient, p ChatMessagePayload) DomainEvent {
	return DomainEvent{Kind: EventChatMessageReceived, Recipient: r, Payload: p}
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
