package domain

// User 平台用户，只保留通知需要的字段
type User struct {
	ID          int64
	Email       string
	Phone       string
	PushID      string
	FirstName   string
	LastName    string
	Role        Role
	Preferences NotificationPreferences
	Ctime       int64
	Utime       int64
}

// Recipient 转换成通知接收者
func (u User) Recipient() Recipient {
	return Recipient{
		UserID:      u.ID,
		Email:       u.Email,
		Phone:       u.Phone,
		PushID:      u.PushID,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Preferences: u.Preferences,
	}
}

type Role string

const (
	RoleMother          Role = "mother"
	RoleDoctor          Role = "doctor"
	RoleMidwife         Role = "midwife"
	RoleServiceProvider Role = "service_provider"
	RoleAdmin           Role = "admin"
)

// AppointmentStatus 预约状态
type AppointmentStatus string

const (
	AppointmentScheduled AppointmentStatus = "scheduled"
	AppointmentConfirmed AppointmentStatus = "confirmed"
	AppointmentCompleted AppointmentStatus = "completed"
	AppointmentCancelled AppointmentStatus = "cancelled"
)

// Appointment 预约
type Appointment struct {
	ID          int64
	PatientID   int64
	ProviderID  int64
	Date        string
	Time        string
	Type        string
	MeetingLink string
	Notes       string
	Status      AppointmentStatus
	Ctime       int64
	Utime       int64
}

// Medication 处方药
type Medication struct {
	ID           int64
	PatientID    int64
	PrescriberID int64
	Name         string
	Dosage       string
	Frequency    string
	StartDate    string
	EndDate      string
	Instructions string
	Ctime        int64
	Utime        int64
}

// OrderStatus 订单状态
type OrderStatus string

const (
	OrderStatusPending        OrderStatus = "pending"
	OrderStatusConfirmed      OrderStatus = "confirmed"
	OrderStatusPreparing      OrderStatus = "preparing"
	OrderStatusOutForDelivery OrderStatus = "out-for-delivery"
	OrderStatusDelivered      OrderStatus = "delivered"
	OrderStatusCancelled      OrderStatus = "cancelled"
)

func (s OrderStatus) String() string {
	return string(s)
}

func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusPreparing,
		OrderStatusOutForDelivery, OrderStatusDelivered, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// Order 订单
type Order struct {
	ID                int64
	UserID            int64
	TrackingNumber    string
	Status            OrderStatus
	EstimatedDelivery string
	Ctime             int64
	Utime             int64
}

// ChatMessage 聊天消息
type ChatMessage struct {
	ID         int64
	SenderID   int64
	ReceiverID int64
	Content    string
	Read       bool
	Ctime      int64
}
