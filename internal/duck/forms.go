// Package duck holds the create/update/delete contract for persisted duck
// records. The transport is external; this package validates and encodes
// form submissions and interprets responses.
package duck

import (
	"fmt"
	"net/url"
	"strings"
)

// Op is a duck record operation.
type Op string

const (
	OpCreate Op = "create"
	OpUpdate Op = "update"
	OpDelete Op = "delete"
)

func (o Op) pastTense() string {
	return string(o) + "d"
}

// Form field names.
const (
	FieldUserID  = "userid"
	FieldName    = "name"
	FieldDuckKey = "key"
	FieldJS      = "js"
	FieldXML     = "xml"
)

// FieldError names the first required field left blank. The form should
// focus that field.
type FieldError struct {
	Field string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s is required", e.Field)
}

// Request is a submittable duck form.
type Request interface {
	Op() Op
	Validate() error
	Encode() url.Values
}

// CreateForm creates a new duck from the current program.
type CreateForm struct {
	UserID string
	Name   string
	JS     string
	XML    string // empty when the program is text only
}

func (f CreateForm) Op() Op { return OpCreate }

func (f CreateForm) Validate() error {
	return firstBlank(f.UserID, FieldUserID, f.Name, FieldName)
}

func (f CreateForm) Encode() url.Values {
	return url.Values{
		FieldUserID: {f.UserID},
		FieldName:   {f.Name},
		FieldJS:     {f.JS},
		FieldXML:    {f.XML},
	}
}

// UpdateForm replaces the code of an existing duck.
type UpdateForm struct {
	DuckKey string
	UserID  string
	JS      string
	XML     string
}

func (f UpdateForm) Op() Op { return OpUpdate }

func (f UpdateForm) Validate() error {
	return firstBlank(f.DuckKey, FieldDuckKey, f.UserID, FieldUserID)
}

func (f UpdateForm) Encode() url.Values {
	return url.Values{
		FieldDuckKey: {f.DuckKey},
		FieldUserID:  {f.UserID},
		FieldJS:      {f.JS},
		FieldXML:     {f.XML},
	}
}

// DeleteForm deletes a duck.
type DeleteForm struct {
	DuckKey string
	UserID  string
}

func (f DeleteForm) Op() Op { return OpDelete }

func (f DeleteForm) Validate() error {
	return firstBlank(f.DuckKey, FieldDuckKey, f.UserID, FieldUserID)
}

func (f DeleteForm) Encode() url.Values {
	return url.Values{
		FieldDuckKey: {f.DuckKey},
		FieldUserID:  {f.UserID},
	}
}

// firstBlank takes value/name pairs in check order.
func firstBlank(pairs ...string) error {
	for i := 0; i+1 < len(pairs); i += 2 {
		if strings.TrimSpace(pairs[i]) == "" {
			return &FieldError{Field: pairs[i+1]}
		}
	}
	return nil
}
