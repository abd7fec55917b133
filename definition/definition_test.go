package definition_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"simpleui/apperr"
	"simpleui/definition"
	"simpleui/form"
	"simpleui/loop"
)

var _ = Describe("built-in definitions", func() {
	It("describes the form window", func() {
		w, err := definition.Load("formulario", "")
		Expect(err).NotTo(HaveOccurred())

		Expect(w.Title).To(Equal("Formulario"))
		Expect(w.Width).To(Equal(600))
		Expect(w.Height).To(Equal(400))
		Expect(w.Keys).To(BeEmpty())

		nome, ok := w.Element("nome")
		Expect(ok).To(BeTrue())
		Expect(nome.Type).To(Equal(definition.Input))
		Expect([]int{nome.X, nome.Y}).To(Equal([]int{50, 50}))
		Expect(nome.Placeholder).To(Equal("Digite seu nome"))

		email, _ := w.Element("email")
		Expect([]int{email.X, email.Y}).To(Equal([]int{50, 100}))
		Expect(email.Placeholder).To(Equal("Digite seu e-mail"))

		enviar, _ := w.Element("enviar")
		Expect(enviar.Type).To(Equal(definition.Button))
		Expect([]int{enviar.X, enviar.Y}).To(Equal([]int{50, 150}))
		Expect(enviar.Text).To(Equal("Enviar"))

		resultado, _ := w.Element("resultado")
		Expect(resultado.Type).To(Equal(definition.Label))
		Expect([]int{resultado.X, resultado.Y}).To(Equal([]int{50, 200}))
		Expect(resultado.Text).To(Equal(form.Waiting))

		Expect(w.Clicks).To(HaveLen(1))
		Expect(w.Clicks[0].Button).To(Equal("enviar"))
		Expect(w.Clicks[0].Target).To(Equal("resultado"))
		Expect(w.Clicks[0].Parts()).To(Equal(form.Template))
	})

	It("renders the form click like form.Format", func() {
		w, err := definition.Load("formulario", "")
		Expect(err).NotTo(HaveOccurred())

		values := map[string]string{"nome": "Ana", "email": "ana@x.com"}
		got := form.Render(w.Clicks[0].Parts(), func(id string) string { return values[id] })
		Expect(got).To(Equal(form.Format("Ana", "ana@x.com")))
	})

	It("describes the loop window", func() {
		w, err := definition.Load("loop", "")
		Expect(err).NotTo(HaveOccurred())

		Expect(w.Title).To(Equal("Loop"))
		Expect(w.Width).To(Equal(640))
		Expect(w.Height).To(Equal(480))

		coisa, ok := w.Element("coisa")
		Expect(ok).To(BeTrue())
		Expect(coisa.Type).To(Equal(definition.Label))
		Expect(coisa.Text).To(Equal("oi"))
		Expect([]int{coisa.X, coisa.Y}).To(Equal([]int{50, 50}))

		Expect(w.Bindings()).To(Equal([]loop.Binding{{Key: "A", Target: "coisa", DX: -10}}))
		Expect(w.Clicks).To(BeEmpty())
	})

	It("rejects unknown names", func() {
		_, err := definition.Load("nope", "")
		Expect(err).To(HaveOccurred())
		Expect(apperr.Is(err, apperr.Configuration)).To(BeTrue())
	})
})

var _ = Describe("overrides", func() {
	var dir string

	BeforeEach(func() {
		dir = GinkgoT().TempDir()
	})

	It("prefers a file in the definitions directory", func() {
		src := "title: Custom\nwidth: 100\nheight: 80\nelements:\n  - {id: coisa, type: label, x: 1, y: 2, text: hi}\n"
		Expect(os.WriteFile(filepath.Join(dir, "loop.yaml"), []byte(src), 0o644)).To(Succeed())

		w, err := definition.Load("loop", dir)
		Expect(err).NotTo(HaveOccurred())
		Expect(w.Title).To(Equal("Custom"))
		Expect(w.Keys).To(BeEmpty())
	})

	It("falls back to the built-in definition", func() {
		w, err := definition.Load("formulario", dir)
		Expect(err).NotTo(HaveOccurred())
		Expect(w.Title).To(Equal("Formulario"))
	})

	It("reports a broken override as a configuration error", func() {
		Expect(os.WriteFile(filepath.Join(dir, "loop.yaml"), []byte("title: [oops"), 0o644)).To(Succeed())

		_, err := definition.Load("loop", dir)
		Expect(err).To(HaveOccurred())
		Expect(apperr.Is(err, apperr.Configuration)).To(BeTrue())
		Expect(err.Error()).To(ContainSubstring("loop.yaml"))
	})
})

var _ = DescribeTable("Parse rejects invalid definitions",
	func(src, detail string) {
		_, err := definition.Parse([]byte(src))
		Expect(err).To(HaveOccurred())
		Expect(apperr.Is(err, apperr.Configuration)).To(BeTrue())
		Expect(err.Error()).To(ContainSubstring(detail))
	},
	Entry("empty title", "width: 1\nheight: 1\n", "empty title"),
	Entry("zero size", "title: T\nwidth: 0\nheight: 1\n", "window size 0x1"),
	Entry("missing id", "title: T\nwidth: 1\nheight: 1\nelements:\n  - {type: label}\n", "element without id"),
	Entry("duplicate id", "title: T\nwidth: 1\nheight: 1\nelements:\n  - {id: a, type: label}\n  - {id: a, type: input}\n", `duplicate element "a"`),
	Entry("unknown type", "title: T\nwidth: 1\nheight: 1\nelements:\n  - {id: a, type: slider}\n", `unknown type "slider"`),
	Entry("dangling key target", "title: T\nwidth: 1\nheight: 1\nkeypress:\n  - {key: A, target: b, dx: 1}\n", `unknown element "b"`),
	Entry("click on a label", "title: T\nwidth: 1\nheight: 1\nelements:\n  - {id: b, type: label}\nclick:\n  - {button: b, target: b}\n", `click on "b", which is not a button`),
	Entry("click on a missing button", "title: T\nwidth: 1\nheight: 1\nclick:\n  - {button: b, target: l}\n", `click on "b", which is not a button`),
	Entry("click setting an input", "title: T\nwidth: 1\nheight: 1\nelements:\n  - {id: b, type: button}\n  - {id: i, type: input}\nclick:\n  - {button: b, target: i}\n", `sets "i", which is not a label`),
	Entry("two clicks on one button", "title: T\nwidth: 1\nheight: 1\nelements:\n  - {id: b, type: button}\n  - {id: l, type: label}\nclick:\n  - {button: b, target: l}\n  - {button: b, target: l}\n", `button "b" has more than one click action`),
	Entry("template part with text and element", "title: T\nwidth: 1\nheight: 1\nelements:\n  - {id: b, type: button}\n  - {id: l, type: label}\nclick:\n  - {button: b, target: l, template: [{text: x, element: l}]}\n", "template part 0 needs exactly one of text or element"),
	Entry("empty template part", "title: T\nwidth: 1\nheight: 1\nelements:\n  - {id: b, type: button}\n  - {id: l, type: label}\nclick:\n  - {button: b, target: l, template: [{}]}\n", "template part 0 needs exactly one"),
	Entry("template reading a button", "title: T\nwidth: 1\nheight: 1\nelements:\n  - {id: b, type: button}\n  - {id: l, type: label}\nclick:\n  - {button: b, target: l, template: [{element: b}]}\n", `reads "b", which is not an input or label`),
	Entry("empty key", "title: T\nwidth: 1\nheight: 1\nelements:\n  - {id: b, type: label}\nkeypress:\n  - {target: b}\n", "key binding without key"),
)

var _ = Describe("click actions", func() {
	It("accepts templates reading inputs and labels", func() {
		w, err := definition.Parse([]byte(`title: T
width: 1
height: 1
elements:
  - {id: go, type: button}
  - {id: in, type: input}
  - {id: out, type: label}
click:
  - button: go
    target: out
    template:
      - {text: "<"}
      - {element: in}
      - {element: out}
`))
		Expect(err).NotTo(HaveOccurred())
		Expect(w.Clicks[0].Parts()).To(Equal([]form.Part{{Text: "<"}, {Element: "in"}, {Element: "out"}}))
	})
})

var _ = Describe("Require", func() {
	var w *definition.Window

	BeforeEach(func() {
		var err error
		w, err = definition.Load("formulario", "")
		Expect(err).NotTo(HaveOccurred())
	})

	It("accepts present elements of the right type", func() {
		Expect(w.Require(definition.Input, "nome", "email")).To(Succeed())
		Expect(w.Require(definition.Button, "enviar")).To(Succeed())
	})

	It("fails on missing elements", func() {
		err := w.Require(definition.Label, "saida")
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring(`needs element "saida"`))
	})

	It("fails on elements of the wrong type", func() {
		err := w.Require(definition.Label, "enviar")
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("is button, want label"))
	})
})
