package mailer

import "fmt"

// FollowEmail builds the subject and plain-text body for the email copy of
// a follow notification. Only follows get an email; likes and comments
// stay in-app.
func FollowEmail(senderName string) (subject, text string) {
	if senderName == "" {
		senderName = "Someone"
	}
	subject = fmt.Sprintf("%s started following you on Designer's Haven", senderName)
	text = fmt.Sprintf("%s just followed your shop. Log in to see their profile and follow back.", senderName)
	return subject, text
}
