package domain

import (
	"strconv"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Reference representa um campo que pode chegar do Payload tanto como identificador
// opaco quanto como sub-documento embutido (depth > 0).
type Reference struct {
	id          string
	document    map[string]any
	placeholder map[string]any
}

// NewIDReference cria a variante "identificador"
func NewIDReference(id string) Reference {
	return Reference{id: id}
}

// NewEmbeddedReference cria a variante "documento embutido"
func NewEmbeddedReference(document map[string]any) Reference {
	if document == nil {
		document = map[string]any{}
	}
	return Reference{document: document}
}

// ReferenceFromValue aplica a regra de discriminação: objeto é documento embutido,
// qualquer escalar é identificador. nil resulta numa referência vazia.
func ReferenceFromValue(value any) Reference {
	switch v := value.(type) {
	case nil:
		return Reference{}
	case map[string]any:
		return NewEmbeddedReference(v)
	case string:
		return NewIDReference(v)
	case float64:
		return NewIDReference(strconv.FormatFloat(v, 'f', -1, 64))
	case int:
		return NewIDReference(strconv.Itoa(v))
	case int64:
		return NewIDReference(strconv.FormatInt(v, 10))
	default:
		return NewIDReference(toString(v))
	}
}

// WithPlaceholder define o valor de exibição usado quando a referência é apenas um identificador
func (r Reference) WithPlaceholder(placeholder map[string]any) Reference {
	r.placeholder = placeholder
	return r
}

func (r Reference) IsEmbedded() bool {
	return r.document != nil
}

func (r Reference) IsZero() bool {
	return r.document == nil && r.id == ""
}

// ID retorna o identificador, lendo o campo "id" quando a referência é um documento embutido
func (r Reference) ID() string {
	if r.document != nil {
		return toString(r.document["id"])
	}
	return r.id
}

// Document retorna o documento embutido, ou nil na variante identificador
func (r Reference) Document() map[string]any {
	return r.document
}

// Display retorna o valor seguro para exibição: o documento embutido sem alterações,
// o placeholder configurado ou, na falta dele, o próprio identificador.
func (r Reference) Display() any {
	switch {
	case r.document != nil:
		return r.document
	case r.placeholder != nil:
		return r.placeholder
	case r.id != "":
		return r.id
	default:
		return nil
	}
}

func (r Reference) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Display())
}

func toString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return ""
		}
		return string(b)
	}
}
