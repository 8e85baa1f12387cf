package http

import (
	"errors"
	"strings"
	"testing"
)

func TestDec2Validation(t *testing.T) {
	type P struct {
		Amt float64 `validate:"dec2"`
	}
	cv := NewValidator()

	for _, v := range []float64{100, 1.29, 2.00, 0.9, -3.5} {
		if err := cv.Validate(P{Amt: v}); err != nil {
			t.Fatalf("expected dec2 OK for %v, got %v", v, err)
		}
	}
	for _, v := range []float64{1.234, 2.9999} {
		err := cv.Validate(P{Amt: v})
		if err == nil {
			t.Fatalf("expected dec2 error for %v", v)
		}
		fe := ToFieldErrors(err)
		if !containsFieldMsg(fe, "Amt", "at most 2 decimal places") {
			t.Fatalf("expected 'at most 2 decimal places' for %v, got %+v", v, fe)
		}
	}
}

func TestDec2Validation_Pointer(t *testing.T) {
	type P struct {
		Amt *float64 `validate:"required,dec2"`
	}
	cv := NewValidator()

	ok := 10.5
	if err := cv.Validate(P{Amt: &ok}); err != nil {
		t.Fatalf("expected valid, got %v", err)
	}
	fe := ToFieldErrors(cv.Validate(P{}))
	if !containsFieldMsg(fe, "Amt", "is required") {
		t.Fatalf("missing 'is required' for nil Amt: %+v", fe)
	}
}

func TestFieldNamesFollowJSONTags(t *testing.T) {
	type P struct {
		CompCode string `json:"comp_code" validate:"required"`
		Name     string `json:"name,omitempty" validate:"required"`
		Plain    string `validate:"required"`
	}
	fe := ToFieldErrors(NewValidator().Validate(P{}))

	for _, want := range []string{"comp_code", "name", "Plain"} {
		if !containsFieldMsg(fe, want, "is required") {
			t.Fatalf("missing field %q in %+v", want, fe)
		}
	}
}

func TestRequiredAndBoundsMapping(t *testing.T) {
	type P struct {
		Name string  `validate:"required"`
		Code string  `validate:"max=4"`
		Min  int     `validate:"gte=10"`
		Max  int     `validate:"lte=5"`
		Amt  float64 `validate:"dec2"`
	}
	cv := NewValidator()

	err := cv.Validate(P{
		Name: "",
		Code: strings.Repeat("x", 5),
		Min:  9,
		Max:  6,
		Amt:  1.333,
	})
	if err == nil {
		t.Fatalf("expected validation errors")
	}
	fe := ToFieldErrors(err)

	if !containsFieldMsg(fe, "Name", "is required") {
		t.Fatalf("missing 'is required' for Name: %+v", fe)
	}
	if !containsFieldMsg(fe, "Code", "at most 4 characters") {
		t.Fatalf("missing max message for Code: %+v", fe)
	}
	if !containsFieldMsg(fe, "Min", "greater than or equal to 10") {
		t.Fatalf("missing gte message for Min: %+v", fe)
	}
	if !containsFieldMsg(fe, "Max", "less than or equal to 5") {
		t.Fatalf("missing lte message for Max: %+v", fe)
	}
	if !containsFieldMsg(fe, "Amt", "at most 2 decimal places") {
		t.Fatalf("missing dec2 message for Amt: %+v", fe)
	}
}

func TestToFieldErrors_NonValidation(t *testing.T) {
	err := errors.New("boom")
	fe := ToFieldErrors(err)
	if len(fe) != 1 {
		t.Fatalf("expected 1 field error, got %d", len(fe))
	}
	if fe[0].Field != "_" || fe[0].Message != "boom" {
		t.Fatalf("unexpected mapping: %+v", fe[0])
	}
}
