package utils

import (
	"fmt"
	"log"
	"net/smtp"
	"strings"

	"skillsync/config"
)

// SendEmail delivers one HTML mail through the configured SMTP account.
// With no sender configured the mail is skipped, which keeps local
// development quiet.
func SendEmail(to []string, subject string, htmlBody string) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password
	if from == "" || password == "" {
		log.Printf("Email sender not configured, skipping mail to %v (%s)", to, subject)
		return nil
	}

	// MIME basics
	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: SkillSync AI <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)

	if err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg)); err != nil {
		log.Printf("Error sending email to %v: %v", to, err)
		return err
	}
	return nil
}

// getEmailTemplate wraps body content in the shared mail layout
func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #1A237E; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #1A237E; line-height: 1.6; }
			.content h2 { color: #1A237E; margin-top: 0; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
			.info-box { background: #E8F0FE; padding: 15px; border-radius: 4px; border-left: 4px solid #5C6BC0; margin: 20px 0; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>SKILLSYNC AI</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				&copy; 2026 SkillSync AI. Keep learning.
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}

// SendWelcomeEmail greets a freshly registered user
func SendWelcomeEmail(email, name string) {
	body := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>Welcome to SkillSync AI! Your account is ready.</p>
		<p>Add your skills to see how you align with the market, enroll in courses, and track your career health from your dashboard.</p>
	`, name)
	_ = SendEmail([]string{email}, "Welcome to SkillSync AI", getEmailTemplate("Welcome aboard!", body))
}

// SendEnrollmentEmail confirms a course enrollment
func SendEnrollmentEmail(email, name, courseTitle string) {
	body := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>You are now enrolled in:</p>
		<div class="info-box"><strong>%s</strong></div>
		<p>Track your progress on the dashboard. Finish the course to earn your certificate.</p>
	`, name, courseTitle)
	_ = SendEmail([]string{email}, "Course Enrollment Confirmation", getEmailTemplate("Enrollment Successful!", body))
}

// SendCertificateEmail announces an issued certificate
func SendCertificateEmail(email, name, courseTitle, certificateID string) {
	body := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>Congratulations on completing:</p>
		<div class="info-box"><strong>%s</strong></div>
		<p>Your certificate id is <strong>%s</strong>. You can download it from your certificates page.</p>
	`, name, courseTitle, certificateID)
	_ = SendEmail([]string{email}, "Your Course Completion Certificate", getEmailTemplate("Certificate of Completion", body))
}

// SendClassReminderEmail notifies a user that a live class has started
func SendClassReminderEmail(email, name, courseName, meetLink string) {
	body := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>Your live class is starting now:</p>
		<div class="info-box"><strong>%s</strong></div>
		<p>Join here: <a href="%s">%s</a></p>
	`, name, courseName, meetLink, meetLink)
	_ = SendEmail([]string{email}, "Live Class Starting Now", getEmailTemplate("Class Reminder", body))
}
