package template

import htmltemplate "html/template"

type appointmentData struct {
	Heading     string
	Intro       string
	FirstName   string
	DoctorName  string
	PatientName string
	Date        string
	Time        string
	Type        string
	MeetingLink string
	HasLink     bool
	Notes       string
}

type medicationData struct {
	FirstName  string
	Prescriber string
	Name       string
	Dosage     string
	Frequency  string
	StartDate  string
	EndDate    string
}

type orderData struct {
	FirstName         string
	StatusMessage     string
	TrackingNumber    string
	Status            string
	EstimatedDelivery string
}

type healthAlertData struct {
	FirstName string
	Message   string
}

// 邮件模板。html/template 负责转义用户输入，可选字段用 if 包起来，缺省时整行不输出
const emailTemplateText = `
{{define "greeting"}}<p>Dear{{if .}} {{.}}{{end}},</p>{{end}}
{{define "footer"}}<p>Best regards,<br>The MCaid Team</p>{{end}}

{{define "appointment"}}<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
<h2 style="color: #4F46E5;">{{.Heading}}</h2>
{{template "greeting" .FirstName}}
<p>{{.Intro}}</p>
<ul>
{{if .Date}}<li><strong>Date:</strong> {{.Date}}</li>{{end}}
{{if .Time}}<li><strong>Time:</strong> {{.Time}}</li>{{end}}
{{if .Type}}<li><strong>Type:</strong> {{.Type}}</li>{{end}}
<li><strong>Doctor:</strong> {{.DoctorName}}</li>
</ul>
{{if .HasLink}}<p>Please join the meeting using this link: <a href="{{.MeetingLink}}">{{.MeetingLink}}</a></p>{{else}}<p>Meeting link: {{.MeetingLink}}</p>{{end}}
{{template "footer"}}
</div>{{end}}

{{define "appointment_booked"}}<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
<h2 style="color: #4F46E5;">New Appointment Booked</h2>
<p>Dear{{if .FirstName}} Dr. {{.FirstName}}{{end}},</p>
<p>{{if .PatientName}}{{.PatientName}}{{else}}A patient{{end}} has booked an appointment with you.</p>
<div style="background-color: #f3f4f6; padding: 15px; border-radius: 8px; margin: 20px 0;">
{{if .PatientName}}<p><strong>Patient:</strong> {{.PatientName}}</p>{{end}}
{{if .Date}}<p><strong>Date:</strong> {{.Date}}</p>{{end}}
{{if .Time}}<p><strong>Time:</strong> {{.Time}}</p>{{end}}
{{if .Type}}<p><strong>Type:</strong> {{.Type}}</p>{{end}}
{{if .Notes}}<p><strong>Notes:</strong> {{.Notes}}</p>{{end}}
<p><strong>Meeting link:</strong> {{.MeetingLink}}</p>
</div>
<p>Please log in to your dashboard to view more details.</p>
{{template "footer"}}
</div>{{end}}

{{define "medication"}}<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
<h2 style="color: #4F46E5;">New Medication Prescribed</h2>
{{template "greeting" .FirstName}}
<p>{{.Prescriber}} has prescribed a new medication for you:</p>
<div style="background-color: #f3f4f6; padding: 15px; border-radius: 8px; margin: 20px 0;">
{{if .Name}}<p><strong>Medication:</strong> {{.Name}}</p>{{end}}
{{if .Dosage}}<p><strong>Dosage:</strong> {{.Dosage}}</p>{{end}}
{{if .Frequency}}<p><strong>Frequency:</strong> {{.Frequency}}</p>{{end}}
{{if .StartDate}}<p><strong>Start Date:</strong> {{.StartDate}}</p>{{end}}
{{if .EndDate}}<p><strong>End Date:</strong> {{.EndDate}}</p>{{end}}
</div>
<p>Please follow the prescribed instructions carefully. If you have any questions, contact your healthcare provider.</p>
{{template "footer"}}
</div>{{end}}

{{define "order"}}<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
<h2 style="color: #4F46E5;">Order Update</h2>
{{template "greeting" .FirstName}}
<p>{{.StatusMessage}}</p>
{{if .TrackingNumber}}<p><strong>Order Number:</strong> {{.TrackingNumber}}</p>{{end}}
{{if .Status}}<p><strong>Status:</strong> {{.Status}}</p>{{end}}
{{if .EstimatedDelivery}}<p><strong>Estimated Delivery:</strong> {{.EstimatedDelivery}}</p>{{end}}
<p>Thank you for using MCaid!</p>
</div>{{end}}

{{define "health_alert"}}<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
<h2 style="color: #DC2626;">Health Alert</h2>
{{template "greeting" .FirstName}}
{{if .Message}}<p>{{.Message}}</p>{{end}}
<p><strong>Please consult with your healthcare provider if you have concerns.</strong></p>
<p>Stay safe,<br>The MCaid Team</p>
</div>{{end}}
`

var emailTemplates = htmltemplate.Must(htmltemplate.New("email").Parse(emailTemplateText))
