package impl

import (
	"bytes"
	"html/template"
	"time"

	"github.com/pkg/errors"
)

var (
	resetCodeTemplate = template.Must(template.New("reset_code").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <h2>{{.AppName}} password reset</h2>
  <p>Use the code below to reset your password. It expires in {{.ExpiresInMinutes}} minutes.</p>
  <p style="font-size: 28px; font-weight: bold; letter-spacing: 6px;">{{.Code}}</p>
  <p>If you did not request a password reset you can ignore this email.</p>
</body>
</html>`))

	resetConfirmationTemplate = template.Must(template.New("reset_confirmation").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <h2>{{.AppName}} password changed</h2>
  <p>Hi {{.Name}}, the password for your account was changed.</p>
  <p>If this was not you, contact your church office right away.</p>
</body>
</html>`))
)

// resetCodeEmail renders the subject and body carrying a reset code.
func resetCodeEmail(appName, code string, ttl time.Duration) (subject, html string, err error) {
	html, err = renderEmail(resetCodeTemplate, map[string]any{
		"AppName":          appName,
		"Code":             code,
		"ExpiresInMinutes": int(ttl.Minutes()),
	})

	return appName + " password reset code", html, err
}

// resetConfirmationEmail renders the notice sent after a password change.
func resetConfirmationEmail(appName, name string) (subject, html string, err error) {
	html, err = renderEmail(resetConfirmationTemplate, map[string]any{
		"AppName": appName,
		"Name":    name,
	})

	return "Your " + appName + " password was changed", html, err
}

func renderEmail(tmpl *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", errors.Wrapf(err, "render %s", tmpl.Name())
	}

	return buf.String(), nil
}
