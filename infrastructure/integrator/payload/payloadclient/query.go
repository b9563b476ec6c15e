package payloadclient

import (
	"fmt"
	"net/url"
	"strconv"
)

// Condition é um filtro where[Field][Operator]=Value
type Condition struct {
	Field    string
	Operator string
	Value    string
}

// Query descreve uma consulta de listagem numa coleção
type Query struct {
	Where []Condition
	Limit int
	Sort  string
	Depth *int
}

func (q Query) With(field, operator, value string) Query {
	where := make([]Condition, 0, len(q.Where)+1)
	where = append(where, q.Where...)
	q.Where = append(where, Condition{Field: field, Operator: operator, Value: value})
	return q
}

// Values codifica a consulta no formato de query string do Payload
func (q Query) Values() url.Values {
	values := url.Values{}

	for _, c := range q.Where {
		values.Add(fmt.Sprintf("where[%s][%s]", c.Field, c.Operator), c.Value)
	}

	if q.Limit > 0 {
		values.Set("limit", strconv.Itoa(q.Limit))
	}

	if q.Sort != "" {
		values.Set("sort", q.Sort)
	}

	if q.Depth != nil {
		values.Set("depth", strconv.Itoa(*q.Depth))
	}

	return values
}
