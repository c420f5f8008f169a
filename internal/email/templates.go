package email

import (
	"bytes"
	"html/template"
)

// Templates are compiled once at package init; a broken template is a
// programming error and should fail loudly, not at send time.
var (
	verificationTmpl = template.Must(template.New("verify-account").Parse(`
<p>Hi {{.Name}},</p>
<p>Thanks for signing up. Please confirm your email address to activate your account:</p>
<p><a href="{{.URL}}">Verify my account</a></p>
<p>If you did not create this account you can ignore this email.</p>
`))

	passwordResetTmpl = template.Must(template.New("reset-password").Parse(`
<p>We received a request to reset your password.</p>
<p><a href="{{.URL}}">Choose a new password</a></p>
<p>The link expires in one hour. If you did not request a reset you can ignore this email.</p>
`))
)

type templateData struct {
	Name string
	URL  string
}

func render(tmpl *template.Template, data templateData) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderVerification produces the account-verification email body.
func RenderVerification(name, verifyURL string) (string, error) {
	return render(verificationTmpl, templateData{Name: name, URL: verifyURL})
}

// RenderPasswordReset produces the password-reset email body.
func RenderPasswordReset(resetURL string) (string, error) {
	return render(passwordResetTmpl, templateData{URL: resetURL})
}
