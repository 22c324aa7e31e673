package utils

import (
	"fmt"
	"net/smtp"
	"strings"

	"lms/config"
)

// SendEmail sends an HTML mail through the configured SMTP account
func SendEmail(to []string, subject string, htmlBody string) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password

	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: Course Platform <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)

	err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg))
	if err != nil {
		fmt.Println("Error sending email:", err)
		return err
	}
	return nil
}

func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #1A2B4C; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #1A2B4C; line-height: 1.6; }
			.content h2 { color: #1A2B4C; margin-top: 0; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
			.info-box { background: #E8F0FE; padding: 15px; border-radius: 4px; border-left: 4px solid #4A90D9; margin: 20px 0; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>COURSE PLATFORM</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				&copy; 2026 Course Platform. All rights reserved.
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}

// SendWelcomeEmail greets a newly registered user
func SendWelcomeEmail(email, name string) {
	subject := "Welcome to Course Platform"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Welcome to <strong>Course Platform</strong>! Your account has been created.</p>
		<p>Browse the published courses and enroll to start learning.</p>
	`, name)

	go SendEmail([]string{email}, subject, getEmailTemplate("Welcome Onboard!", body))
}

// SendEnrollmentEmail confirms a course enrollment
func SendEnrollmentEmail(email, name, courseName string) {
	subject := "Enrollment Confirmed: " + courseName
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>You are now enrolled in <strong>%s</strong>.</p>
		<div class="info-box">
			<strong>Next Steps:</strong> Open the course to see its modules and lessons.
		</div>
	`, name, courseName)

	go SendEmail([]string{email}, subject, getEmailTemplate("Enrollment Successful", body))
}

// SendStatsDigestEmail mails the daily platform totals to the admin
func SendStatsDigestEmail(email string, users, courses, published, enrollments int64) {
	subject := "Daily Platform Digest"
	body := fmt.Sprintf(`
		<p>Here are today's platform totals:</p>
		<div class="info-box">
			<ul style="list-style: none; padding: 0; margin: 0;">
				<li style="margin-bottom: 8px;"><strong>Users:</strong> %d</li>
				<li style="margin-bottom: 8px;"><strong>Courses:</strong> %d</li>
				<li style="margin-bottom: 8px;"><strong>Published Courses:</strong> %d</li>
				<li><strong>Enrollments:</strong> %d</li>
			</ul>
		</div>
	`, users, courses, published, enrollments)

	go SendEmail([]string{email}, subject, getEmailTemplate("Daily Digest", body))
}
