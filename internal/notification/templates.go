package notification

import "html/template"

type emailData struct {
	Name           string
	Email          string
	Phone          string
	FormattedDate  string
	TimeSlot       string
	NumberOfPeople int
	Description    string
	Reference      string
	Year           int
}

var confirmationTmpl = template.Must(template.New("confirmation").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h1 style="background: #f59e0b; color: white; padding: 20px; text-align: center;">Appointment Request Received</h1>
  <p>Dear <strong>{{.Name}}</strong>,</p>
  <p>Thank you for booking an appointment with us. Your request has been received and is currently under review.</p>
  <p><strong>Please wait for admin approval before visiting.</strong> You will receive a confirmation once your appointment is approved.</p>
  <table style="background: #f9fafb; padding: 16px; width: 100%;">
    <tr><td>Date</td><td><strong>{{.FormattedDate}}</strong></td></tr>
    <tr><td>Time</td><td><strong>{{.TimeSlot}}</strong></td></tr>
    <tr><td>Number of people</td><td><strong>{{.NumberOfPeople}}</strong></td></tr>
    {{if .Description}}<tr><td>Description</td><td><strong>{{.Description}}</strong></td></tr>{{end}}
    <tr><td>Booking reference</td><td><strong>#{{.Reference}}</strong></td></tr>
  </table>
  <p style="color: #6b7280; font-size: 13px;">This is an automated message. Please do not reply to this email.</p>
  <p style="color: #6b7280; font-size: 13px;">&copy; {{.Year}} IGL. All rights reserved.</p>
</body>
</html>`))

var adminAlertTmpl = template.Must(template.New("adminAlert").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h1 style="background: #2563eb; color: white; padding: 20px; text-align: center;">New Appointment Request</h1>
  <p>A new booking request is waiting for review.</p>
  <table style="background: #f9fafb; padding: 16px; width: 100%;">
    <tr><td>Name</td><td><strong>{{.Name}}</strong></td></tr>
    <tr><td>Email</td><td><strong>{{.Email}}</strong></td></tr>
    <tr><td>Phone</td><td><strong>{{.Phone}}</strong></td></tr>
    <tr><td>Date</td><td><strong>{{.FormattedDate}}</strong></td></tr>
    <tr><td>Time</td><td><strong>{{.TimeSlot}}</strong></td></tr>
    <tr><td>Number of people</td><td><strong>{{.NumberOfPeople}}</strong></td></tr>
    {{if .Description}}<tr><td>Description</td><td><strong>{{.Description}}</strong></td></tr>{{end}}
    <tr><td>Reference</td><td><strong>#{{.Reference}}</strong></td></tr>
  </table>
  <p>Open the dashboard to approve or decline this request.</p>
</body>
</html>`))
