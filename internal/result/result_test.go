package result

import (
	"errors"
	"testing"
)

func TestSuccess_CarriesValue(t *testing.T) {
	r := Success(42)

	if !r.IsSuccess() {
		t.Fatal("Success() should report IsSuccess")
	}
	if r.IsFailure() {
		t.Error("Success() should not report IsFailure")
	}
	if r.Value() != 42 {
		t.Errorf("Value() = %d, want 42", r.Value())
	}
}

func TestSuccess_ErrorFieldsEmpty(t *testing.T) {
	r := Success("payload")

	if r.Code() != "" {
		t.Errorf("Code() = %q, want empty", r.Code())
	}
	if r.Message() != "" {
		t.Errorf("Message() = %q, want empty", r.Message())
	}
	if r.Cause() != nil {
		t.Errorf("Cause() = %v, want nil", r.Cause())
	}
}

func TestFailure_CarriesCodeAndMessage(t *testing.T) {
	r := Failure[string](CodeNotFound, "no booklet at path")

	if r.IsSuccess() {
		t.Fatal("Failure() should not report IsSuccess")
	}
	if r.Code() != CodeNotFound {
		t.Errorf("Code() = %q, want %q", r.Code(), CodeNotFound)
	}
	if r.Message() != "no booklet at path" {
		t.Errorf("Message() = %q", r.Message())
	}
}

func TestFailure_ValueIsZero(t *testing.T) {
	r := Failure[int](CodeInvalidInput, "bad input")
	if r.Value() != 0 {
		t.Errorf("failure Value() = %d, want zero value", r.Value())
	}

	rs := Failure[[]string](CodeListError, "boom")
	if rs.Value() != nil {
		t.Errorf("failure Value() = %v, want nil slice", rs.Value())
	}
}

func TestFailureWithCause_PreservesCause(t *testing.T) {
	underlying := errors.New("disk full")
	r := FailureWithCause[bool](CodeSaveError, "save failed", underlying)

	if !errors.Is(r.Cause(), underlying) {
		t.Errorf("Cause() = %v, want %v", r.Cause(), underlying)
	}
}

func TestIsCode(t *testing.T) {
	tests := []struct {
		name string
		r    Result[int]
		code string
		want bool
	}{
		{"matching code", Failure[int](CodeNotFound, "gone"), CodeNotFound, true},
		{"different code", Failure[int](CodeNotFound, "gone"), CodeSaveError, false},
		{"success never matches", Success(1), CodeNotFound, false},
		{"success never matches empty", Success(1), "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.IsCode(tt.code); got != tt.want {
				t.Errorf("IsCode(%q) = %v, want %v", tt.code, got, tt.want)
			}
		})
	}
}

func TestString(t *testing.T) {
	if got := Success("x").String(); got != "Success" {
		t.Errorf("String() = %q, want %q", got, "Success")
	}
	if got := Failure[string](CodeLoadError, "read failed").String(); got != "Failure(LOAD_ERROR: read failed)" {
		t.Errorf("String() = %q", got)
	}
	if got := Failure[string](CodeDeleteError, "").String(); got != "Failure(DELETE_ERROR)" {
		t.Errorf("String() = %q", got)
	}
}
