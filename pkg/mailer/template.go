package mailer

import (
	"bytes"
	"fmt"
	htmpl "html/template"
)

const otpSubject = "Email Verification OTP"

var otpHTML = htmpl.Must(htmpl.New("otp").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
    <h1 style="color: #2563eb;">Email Verification</h1>
    <p>Your OTP for email verification is:</p>
    <div style="background-color: #f3f4f6; padding: 20px; text-align: center; margin: 20px 0;">
        <h2 style="color: #1f2937; margin: 0; font-size: 24px;">{{.Code}}</h2>
    </div>
    <p>This OTP will expire in 10 minutes.</p>
    <p style="color: #6b7280; font-size: 14px;">If you didn't request this verification, please ignore this email.</p>
</div>
`))

// RenderOTP renders the subject, plain-text and HTML bodies of the OTP
// verification email.
func RenderOTP(code string) (subject, text, html string, err error) {
	var buf bytes.Buffer
	if err := otpHTML.Execute(&buf, struct{ Code string }{Code: code}); err != nil {
		return "", "", "", err
	}
	text = fmt.Sprintf("Your OTP for email verification is: %s. This OTP will expire in 10 minutes.", code)
	return otpSubject, text, buf.String(), nil
}
