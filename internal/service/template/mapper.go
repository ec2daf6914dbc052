package template

import (
	"bytes"
	"fmt"
	htmltemplate "html/template"
	"strconv"
	"strings"

	"gitee.com/mcaid/notification/internal/domain"
	"gitee.com/mcaid/notification/internal/errs"
)

const (
	// MeetingLinkFallback 没有会议链接时的占位文案
	MeetingLinkFallback = "To be provided"
	doctorFallback      = "Your doctor"
	orderStatusFallback = "Status updated"
)

var orderStatusMessages = map[string]string{
	"confirmed":        "Your order has been confirmed and is being prepared.",
	"preparing":        "Your order is being prepared.",
	"out-for-delivery": "Your order is out for delivery!",
	"delivered":        "Your order has been delivered. Enjoy!",
	"cancelled":        "Your order has been cancelled.",
}

// Mapper 把领域事件渲染成各渠道的消息内容。
// 不做任何 I/O，除了未知事件类型外不会失败。
type Mapper struct {
	email *htmltemplate.Template
}

func NewMapper() *Mapper {
	return &Mapper{email: emailTemplates}
}

// Map 渲染事件，未知的事件类型（或负载与类型不匹配）返回 errs.ErrUnsupportedEventKind
func (m *Mapper) Map(evt domain.DomainEvent) (domain.Messages, error) {
	if !evt.Accepts() {
		return domain.Messages{}, fmt.Errorf("%w: kind = %q", errs.ErrUnsupportedEventKind, evt.Kind)
	}
	switch p := evt.Payload.(type) {
	case domain.AppointmentPayload:
		return m.appointment(evt.Kind, evt.Recipient, p)
	case domain.MedicationPayload:
		return m.medication(evt.Recipient, p)
	case domain.OrderPayload:
		return m.order(evt.Recipient, p)
	case domain.HealthAlertPayload:
		return m.healthAlert(evt.Recipient, p)
	case domain.ChatMessagePayload:
		return chatMessage(p), nil
	default:
		return domain.Messages{}, fmt.Errorf("%w: kind = %q", errs.ErrUnsupportedEventKind, evt.Kind)
	}
}

func (m *Mapper) appointment(kind domain.EventKind, r domain.Recipient, p domain.AppointmentPayload) (domain.Messages, error) {
	doctor := orDefault(p.DoctorName, doctorFallback)
	link := orDefault(p.MeetingLink, MeetingLinkFallback)
	data := appointmentData{
		FirstName:   r.FirstName,
		DoctorName:  doctor,
		PatientName: p.PatientName,
		Date:        p.Date,
		Time:        p.Time,
		Type:        p.Type,
		MeetingLink: link,
		HasLink:     p.MeetingLink != "",
		Notes:       p.Notes,
	}

	var (
		subject, title, text, tmpl string
	)
	switch {
	case p.BookedByPatient:
		subject, title, tmpl = "New Appointment Booked", "New Appointment Booked", "appointment_booked"
		text = joinNonEmpty(" ",
			orDefault(p.PatientName, "A patient"),
			"has booked an appointment with you",
			when(p.Date, p.Time)+".",
		)
	case kind == domain.EventAppointmentUpdated:
		subject, title, tmpl = "Appointment Updated - MCaid", "Appointment Updated", "appointment"
		data.Heading = "Appointment Updated"
		data.Intro = "Your appointment has been updated:"
		text = joinNonEmpty(" ",
			"Your appointment with", doctor, "has been updated to",
			when(p.Date, p.Time)+".",
			"Meeting link: "+link,
		)
	default:
		subject, title, tmpl = "Appointment Reminder - MCaid", "Appointment Reminder", "appointment"
		data.Heading = "Appointment Reminder"
		data.Intro = "This is a reminder for your upcoming appointment:"
		text = joinNonEmpty(" ",
			"Reminder: You have an appointment with", doctor,
			when(p.Date, p.Time)+".",
			"Meeting link: "+link,
		)
	}

	html, err := m.render(tmpl, data)
	if err != nil {
		return domain.Messages{}, err
	}
	pushData := map[string]string{"type": "appointment"}
	if p.AppointmentID > 0 {
		pushData["appointmentId"] = strconv.FormatInt(p.AppointmentID, 10)
	}
	return domain.Messages{
		Email: &domain.EmailContent{Subject: subject, HTML: html, Text: text},
		SMS:   &domain.SMSContent{Text: text},
		Push:  &domain.PushContent{Title: title, Body: text, Data: pushData},
	}, nil
}

func (m *Mapper) medication(r domain.Recipient, p domain.MedicationPayload) (domain.Messages, error) {
	details := joinNonEmpty(", ", p.Dosage, p.Frequency)
	text := joinNonEmpty(" ",
		prescriber(p.PrescriberName),
		"has prescribed",
		p.Name,
	)
	if details != "" {
		text += " (" + details + ")"
	}

	html, err := m.render("medication", medicationData{
		FirstName:  r.FirstName,
		Prescriber: prescriber(p.PrescriberName),
		Name:       p.Name,
		Dosage:     p.Dosage,
		Frequency:  p.Frequency,
		StartDate:  p.StartDate,
		EndDate:    p.EndDate,
	})
	if err != nil {
		return domain.Messages{}, err
	}
	pushData := map[string]string{"type": "medication"}
	if p.Name != "" {
		pushData["medicationName"] = p.Name
	}
	return domain.Messages{
		Email: &domain.EmailContent{Subject: "New Medication Prescribed", HTML: html, Text: text},
		SMS:   &domain.SMSContent{Text: text},
		Push:  &domain.PushContent{Title: "New Medication Prescribed", Body: text, Data: pushData},
	}, nil
}

func (m *Mapper) order(r domain.Recipient, p domain.OrderPayload) (domain.Messages, error) {
	statusMsg, ok := orderStatusMessages[p.Status]
	if !ok {
		statusMsg = orderStatusFallback
	}
	text := statusMsg
	if p.TrackingNumber != "" {
		text = fmt.Sprintf("Order %s: %s", p.TrackingNumber, statusMsg)
	}
	subject := joinNonEmpty(" - ", "Order Update", p.TrackingNumber)

	html, err := m.render("order", orderData{
		FirstName:         r.FirstName,
		StatusMessage:     statusMsg,
		TrackingNumber:    p.TrackingNumber,
		Status:            p.Status,
		EstimatedDelivery: p.EstimatedDelivery,
	})
	if err != nil {
		return domain.Messages{}, err
	}
	pushData := map[string]string{"type": "order"}
	if p.OrderID > 0 {
		pushData["orderId"] = strconv.FormatInt(p.OrderID, 10)
	}
	return domain.Messages{
		Email: &domain.EmailContent{Subject: subject, HTML: html, Text: text},
		SMS:   &domain.SMSContent{Text: text},
		Push:  &domain.PushContent{Title: "Order Update", Body: text, Data: pushData},
	}, nil
}

func (m *Mapper) healthAlert(r domain.Recipient, p domain.HealthAlertPayload) (domain.Messages, error) {
	title := joinNonEmpty(" - ", "Health Alert", p.AlertType)
	html, err := m.render("health_alert", healthAlertData{
		FirstName: r.FirstName,
		Message:   p.Message,
	})
	if err != nil {
		return domain.Messages{}, err
	}
	pushData := map[string]string{"type": "health-alert"}
	if p.AlertType != "" {
		pushData["alertType"] = p.AlertType
	}
	return domain.Messages{
		Email: &domain.EmailContent{Subject: title, HTML: html, Text: p.Message},
		SMS:   &domain.SMSContent{Text: joinNonEmpty(" ", "Health Alert:", p.Message)},
		Push:  &domain.PushContent{Title: title, Body: p.Message, Data: pushData},
	}, nil
}

// chatMessage 聊天消息只走推送
func chatMessage(p domain.ChatMessagePayload) domain.Messages {
	sender := orDefault(p.SenderName, "someone")
	return domain.Messages{
		Push: &domain.PushContent{
			Title: "New message from " + sender,
			Body:  p.Preview,
			Data:  map[string]string{"type": "chat"},
		},
	}
}

func (m *Mapper) render(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := m.email.ExecuteTemplate(&buf, name, data); err != nil {
		// 模板是固定的，走到这里说明模板本身有问题
		return "", fmt.Errorf("渲染模板 %s 失败: %w", name, err)
	}
	return buf.String(), nil
}

func prescriber(name string) string {
	if name == "" {
		return doctorFallback
	}
	if strings.HasPrefix(name, "Dr. ") {
		return name
	}
	return "Dr. " + name
}

func when(date, tm string) string {
	return joinNonEmpty(" ", prefixed("on", date), prefixed("at", tm))
}

func prefixed(prefix, v string) string {
	if v == "" {
		return ""
	}
	return prefix + " " + v
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}

// joinNonEmpty 跳过空字段，避免渲染出多余的空格和标点
func joinNonEmpty(sep string, parts ...string) string {
	res := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" && p != "." {
			res = append(res, p)
		}
	}
	return strings.Join(res, sep)
}
