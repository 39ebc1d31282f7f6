package service

import (
	"reflect"
	"testing"

	"github.com/fiberops/circuitdesk/internal/core/domain"
)

func validRecord() domain.Record {
	return domain.Record{
		Cliente: "Empresa ABC Ltda",
		SIP:     "1001",
		DDR:     "4733001001",
		LP:      "LP001",
		AtpOsx:  "ATP123",
		Cabo:    "Cabo-01",
		Fibras:  "12F",
		Enlace:  "1500",
		Porta:   "P1",
	}
}

func TestMissingFields_Submittable(t *testing.T) {
	if got := MissingFields(validRecord()); len(got) != 0 {
		t.Errorf("expected no missing fields, got %v", got)
	}
}

func TestMissingFields_IDNeverChecked(t *testing.T) {
	r := validRecord()
	r.ID = "" // absent on create
	if got := MissingFields(r); len(got) != 0 {
		t.Errorf("id must not be validated, got %v", got)
	}
}

func TestMissingFields_AllEmpty(t *testing.T) {
	want := []string{"cliente", "sip", "ddr", "lp", "atpOsx", "cabo", "fibras", "enlace", "porta"}
	got := MissingFields(domain.Record{})
	if !reflect.DeepEqual(got, want) {
		t.Errorf("want %v, got %v", want, got)
	}
}

func TestMissingFields_ReportsExactlyTheMissingOnes(t *testing.T) {
	r := validRecord()
	r.Cliente = ""
	r.Fibras = ""

	got := MissingFields(r)
	want := []string{"cliente", "fibras"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("want %v, got %v", want, got)
	}
}

func TestMissingFields_WhitespaceCountsAsEmpty(t *testing.T) {
	r := validRecord()
	r.Porta = "   "
	r.AtpOsx = "\t"

	got := MissingFields(r)
	want := []string{"atpOsx", "porta"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("want %v, got %v", want, got)
	}
}
