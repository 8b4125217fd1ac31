// Package templates renders the embedded email templates. Each mail
// has a subject, a plain-text and an HTML variant; the HTML one is
// rendered with html/template so submitted content is escaped.
package templates

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	htmpl "html/template"
	texttpl "text/template"
	"time"
)

//go:embed *.tmpl
var FS embed.FS

// Template names.
const (
	Contact = "contact"
)

// ContactData feeds the contact template. Every field comes straight
// from the form submission except AppName and SubmittedAt.
type ContactData struct {
	AppName     string `json:"AppName"`
	Name        string `json:"Name"`
	Email       string `json:"Email"`
	Subject     string `json:"Subject"`
	Message     string `json:"Message"`
	SubmittedAt string `json:"SubmittedAt"`
}

// ToMap converts template data to the map shape EmailJob.Data carries
// across the queue.
func ToMap(d ContactData) map[string]any {
	if d.SubmittedAt == "" {
		d.SubmittedAt = time.Now().UTC().Format("02 January 2006, 15:04 MST")
	}
	b, _ := json.Marshal(d)
	var m map[string]any
	_ = json.Unmarshal(b, &m)
	return m
}

// renderFile loads and renders one template file from the embedded FS.
// isHTML selects html/template over text/template.
func renderFile(filename string, isHTML bool, data any) (string, error) {
	var (
		buf bytes.Buffer
		err error
	)

	if isHTML {
		tpl, e := htmpl.New(filename).ParseFS(FS, filename)
		if e != nil {
			return "", fmt.Errorf("parse html %q: %w", filename, e)
		}
		err = tpl.Execute(&buf, data)
	} else {
		tpl, e := texttpl.New(filename).ParseFS(FS, filename)
		if e != nil {
			return "", fmt.Errorf("parse text %q: %w", filename, e)
		}
		err = tpl.Execute(&buf, data)
	}
	if err != nil {
		return "", fmt.Errorf("exec %q: %w", filename, err)
	}
	return buf.String(), nil
}

// Render renders subject, text and html for the given base name.
// Expects: <name>.subject.tmpl, <name>.text.tmpl, <name>.html.tmpl
func Render(name string, data any) (subject string, text string, html string, err error) {
	subject, err = renderFile(name+".subject.tmpl", false, data)
	if err != nil {
		return "", "", "", err
	}
	text, err = renderFile(name+".text.tmpl", false, data)
	if err != nil {
		return "", "", "", err
	}
	html, err = renderFile(name+".html.tmpl", true, data)
	if err != nil {
		return "", "", "", err
	}
	return subject, text, html, nil
}
