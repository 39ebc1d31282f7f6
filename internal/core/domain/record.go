package domain

import (
	"errors"
	"strings"
)

var ErrEmptyQuery = errors.New("no search field populated")
var ErrRecordNotFound = errors.New("record not found")
var ErrNoID = errors.New("record has no server-assigned id")
var ErrBusy = errors.New("another submission is already in flight")
var ErrUnauthorized = errors.New("not signed in")
var ErrForbidden = errors.New("access forbidden")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrPasswordMismatch = errors.New("passwords do not match")
var ErrInvalidRole = errors.New("permissao must be user or admin")

// Record is one circuit provisioning entry. The id is assigned by the remote
// store on creation and echoed back unchanged on update; it is never generated
// client-side. All other fields are free text and required on submission.
//
// JSON names follow the wire contract. The canonical spelling is atpOsx.
type Record struct {
	ID      string `json:"id,omitempty"`
	Cliente string `json:"cliente" validate:"notblank"`
	SIP     string `json:"sip" validate:"notblank"`
	DDR     string `json:"ddr" validate:"notblank"`
	LP      string `json:"lp" validate:"notblank"`
	AtpOsx  string `json:"atpOsx" validate:"notblank"`
	Cabo    string `json:"cabo" validate:"notblank"`
	Fibras  string `json:"fibras" validate:"notblank"`
	Enlace  string `json:"enlace" validate:"notblank"`
	Porta   string `json:"porta" validate:"notblank"`
}

// ValidationError reports the required fields a submission left empty.
// It is resolved locally; a submission carrying one never reaches the wire.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "missing required fields: " + strings.Join(e.Fields, ", ")
}

// OpError reports a failed remote operation together with the reason the
// service gave, when it gave one.
type OpError struct {
	Op     string // search, create, update, delete, login, register
	Reason string // server-provided message, verbatim
	Err    error  // underlying transport or decode error, when any
}

func (e *OpError) Error() string {
	switch {
	case e.Reason != "":
		return e.Op + " failed: " + e.Reason
	case e.Err != nil:
		return e.Op + " failed: " + e.Err.Error()
	default:
		return e.Op + " failed"
	}
}

func (e *OpError) Unwrap() error { return e.Err }
