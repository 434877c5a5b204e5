package htmlmodel

import (
	"bytes"
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/HellButcher/thymeleaf-component-dialect/errors"
	"github.com/HellButcher/thymeleaf-component-dialect/model"
)

// voidElements close themselves in HTML source and never carry a close tag.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"param": true, "source": true, "track": true, "wbr": true,
}

// Parse tokenizes HTML source into a balanced event model.
func Parse(src []byte) (model.Model, error) {
	z := html.NewTokenizer(bytes.NewReader(src))
	var m model.Model

	for {
		switch z.Next() {
		case html.ErrorToken:
			if err := z.Err(); err != io.EOF {
				return nil, errors.InvalidModel(errors.PhaseModel, err.Error())
			}
			if !m.Balanced() {
				return nil, errors.InvalidModel(errors.PhaseModel, "unbalanced tags in source")
			}
			return m, nil

		case html.StartTagToken:
			tok := z.Token()
			if voidElements[tok.Data] {
				m = append(m, model.StandaloneTag{Name: tok.Data, Attrs: convertAttrs(tok.Attr)})
			} else {
				m = append(m, model.OpenTag{Name: tok.Data, Attrs: convertAttrs(tok.Attr)})
			}

		case html.SelfClosingTagToken:
			tok := z.Token()
			m = append(m, model.StandaloneTag{Name: tok.Data, Attrs: convertAttrs(tok.Attr), Minimized: true})

		case html.EndTagToken:
			tok := z.Token()
			if voidElements[tok.Data] {
				continue // stray </br> and friends
			}
			m = append(m, model.CloseTag{Name: tok.Data})

		case html.TextToken:
			m = append(m, model.Text{Data: string(z.Text())})

		case html.CommentToken:
			tok := z.Token()
			m = append(m, model.Comment{Data: tok.Data})

		case html.DoctypeToken:
			tok := z.Token()
			m = append(m, model.Other{Data: "<!DOCTYPE " + tok.Data + ">"})
		}
	}
}

func convertAttrs(in []html.Attribute) model.Attrs {
	if len(in) == 0 {
		return nil
	}
	attrs := make(model.Attrs, len(in))
	for i, a := range in {
		name := a.Key
		if a.Namespace != "" {
			name = a.Namespace + ":" + a.Key
		}
		attrs[i] = model.Attr{Name: name, Value: a.Val, HasValue: a.Val != ""}
	}
	return attrs
}

// Render serializes an event model back to HTML source.
func Render(m model.Model) []byte {
	var b strings.Builder
	for _, ev := range m {
		switch e := ev.(type) {
		case model.OpenTag:
			writeTag(&b, e.Name, e.Attrs, "")
		case model.CloseTag:
			b.WriteString("</")
			b.WriteString(e.Name)
			b.WriteByte('>')
		case model.StandaloneTag:
			suffix := ""
			if e.Minimized {
				suffix = "/"
			}
			writeTag(&b, e.Name, e.Attrs, suffix)
		case model.Text:
			b.WriteString(html.EscapeString(e.Data))
		case model.Comment:
			b.WriteString("<!--")
			b.WriteString(e.Data)
			b.WriteString("-->")
		case model.Other:
			b.WriteString(e.Data)
		}
	}
	return []byte(b.String())
}

func writeTag(b *strings.Builder, name string, attrs model.Attrs, suffix string) {
	b.WriteByte('<')
	b.WriteString(name)
	for _, a := range attrs {
		b.WriteByte(' ')
		b.WriteString(a.Name)
		if a.HasValue {
			b.WriteString(`="`)
			b.WriteString(html.EscapeString(a.Value))
			b.WriteByte('"')
		}
	}
	b.WriteString(suffix)
	b.WriteByte('>')
}
