package email

import (
	"fmt"
	"html"
	"strings"

	"github.com/elegant-tiles/storefront/internal/domain/booking"
)

var serviceNames = map[booking.ServiceType]string{
	booking.ServiceResidential: "Residential Design",
	booking.ServiceCommercial:  "Commercial Spaces",
	booking.ServiceWorship:     "Places of Worship",
	booking.ServiceOutdoor:     "Outdoor Spaces",
	booking.ServiceRenovation:  "Renovation",
}

// ServiceName is the customer-facing label of a service type.
func ServiceName(st booking.ServiceType) string {
	if name, ok := serviceNames[st]; ok {
		return name
	}
	return string(st)
}

func row(label, value string) string {
	return fmt.Sprintf(
		`<tr>
				<td style="padding: 8px 12px; color: #666; width: 40%%;">%s</td>
				<td style="padding: 8px 12px; font-weight: 600;">%s</td>
			</tr>`,
		label, html.EscapeString(value))
}

func layout(title, intro, rows, footer string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
	<meta charset="UTF-8">
	<meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: Georgia, 'Times New Roman', serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
	<div style="background: #1f2937; padding: 30px; border-radius: 10px 10px 0 0;">
		<h1 style="color: #d4af37; margin: 0; font-size: 24px;">%s</h1>
	</div>

	<div style="background: #fff; padding: 30px; border: 1px solid #eee; border-top: none; border-radius: 0 0 10px 10px;">
		<p style="margin-top: 0;">%s</p>

		<table style="width: 100%%; border-collapse: collapse; margin: 20px 0; background: #f8f9fa;">
			%s
		</table>

		<hr style="border: none; border-top: 1px solid #eee; margin: 30px 0;">

		<p style="font-size: 12px; color: #999; margin-bottom: 0;">%s</p>
	</div>
</body>
</html>`, title, intro, rows, footer)
}

// BuildBookingConfirmationBody builds the customer's confirmation email.
func BuildBookingConfirmationBody(req booking.Request) string {
	var rows strings.Builder
	rows.WriteString(row("Reference", req.Reference))
	rows.WriteString(row("Service", ServiceName(req.ServiceType)))
	rows.WriteString(row("Property", req.PropertyType))
	rows.WriteString(row("Budget", req.Budget))
	rows.WriteString(row("Preferred date", req.PreferredDate))
	rows.WriteString(row("Preferred time", req.PreferredTime))

	intro := fmt.Sprintf("Dear %s, thank you for booking a consultation with Elegant Tiles &amp; Decor. "+
		"Our design team will call you on %s within 24 hours to confirm your appointment.",
		html.EscapeString(req.Name), html.EscapeString(req.Phone))

	return layout("Consultation request received", intro, rows.String(),
		"This email was sent automatically. Reply to reach our studio.")
}

// BuildBookingNoticeBody builds the studio's copy of a booking.
func BuildBookingNoticeBody(req booking.Request) string {
	var rows strings.Builder
	rows.WriteString(row("Reference", req.Reference))
	rows.WriteString(row("Name", req.Name))
	rows.WriteString(row("Email", req.Email))
	rows.WriteString(row("Phone", req.Phone))
	rows.WriteString(row("Service", ServiceName(req.ServiceType)))
	rows.WriteString(row("Property", req.PropertyType))
	rows.WriteString(row("Budget", req.Budget))
	rows.WriteString(row("Preferred date", req.PreferredDate))
	rows.WriteString(row("Preferred time", req.PreferredTime))
	rows.WriteString(row("Project details", req.ProjectDetails))

	return layout("New consultation request", "A customer booked a consultation from the website.",
		rows.String(), "Submitted "+req.SubmittedAt.Format("2 Jan 2006 15:04 MST"))
}

// BuildContactNoticeBody builds the studio's copy of a contact message.
func BuildContactNoticeBody(msg booking.ContactMessage) string {
	var rows strings.Builder
	rows.WriteString(row("Name", msg.Name))
	rows.WriteString(row("Email", msg.Email))
	if msg.Phone != "" {
		rows.WriteString(row("Phone", msg.Phone))
	}
	rows.WriteString(row("Subject", msg.Subject))
	rows.WriteString(row("Message", msg.Message))

	return layout("New contact message", "Someone wrote in through the contact page.",
		rows.String(), "Reference "+html.EscapeString(msg.Reference))
}
