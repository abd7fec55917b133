package form

import "strings"

// Waiting is the result label text before the first submit.
const Waiting = "Aguardando submissao..."

// element IDs the default template reads
const (
	NameField  = "nome"
	EmailField = "email"
)

const (
	namePrefix  = "Nome: "
	emailPrefix = ", E-mail "
)

// Part is one piece of a click template: either literal Text or the current
// text of the element called Element.
type Part struct {
	Text    string
	Element string
}

// Template renders a submission as "Nome: <name>, E-mail <email>".
var Template = []Part{
	{Text: namePrefix},
	{Element: NameField},
	{Text: emailPrefix},
	{Element: EmailField},
}

// Render concatenates parts, asking value for the text of each referenced
// element. Values are taken verbatim, empty strings included.
func Render(parts []Part, value func(id string) string) string {
	values := make([]string, len(parts))
	n := 0
	for i, p := range parts {
		if p.Element != "" {
			values[i] = value(p.Element)
		} else {
			values[i] = p.Text
		}
		n += len(values[i])
	}

	var b strings.Builder
	b.Grow(n)
	for _, v := range values {
		b.WriteString(v)
	}
	return b.String()
}

// Format renders the default template for name and email.
func Format(name, email string) string {
	return Render(Template, func(id string) string {
		if id == NameField {
			return name
		}
		return email
	})
}
