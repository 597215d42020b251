package wire

import (
	"encoding/json"
	"testing"
)

func TestResultAccessors(t *testing.T) {
	var r Result
	if err := json.Unmarshal([]byte(`{
		"error": "no_error",
		"email": "a@b.com",
		"expiration": 1700000000,
		"refresh_left": 3,
		"session_token": "tok1"
	}`), &r); err != nil {
		t.Fatal(err)
	}

	if !r.OK() || r.Code() != CodeNoError {
		t.Fatalf("code = %q", r.Code())
	}
	if r.Email() != "a@b.com" || r.SessionToken() != "tok1" {
		t.Fatalf("string fields = %q %q", r.Email(), r.SessionToken())
	}
	if r.Expiration() != 1700000000 || r.RefreshLeft() != 3 {
		t.Fatalf("numeric fields = %d %d", r.Expiration(), r.RefreshLeft())
	}
}

func TestResultAbsentFields(t *testing.T) {
	r := Result{}
	if r.OK() {
		t.Fatal("empty result must not read as success")
	}
	if r.Code() != "" || r.Email() != "" || r.SessionToken() != "" {
		t.Fatal("absent string fields must read empty")
	}
	if r.Expiration() != 0 || r.RefreshLeft() != 0 {
		t.Fatal("absent numeric fields must read zero")
	}
}

func TestResultNumericTypes(t *testing.T) {
	// Redis round-trips re-decode numbers as float64; direct construction
	// may use Go ints. Both must read back.
	for _, v := range []any{float64(7), int64(7), int(7)} {
		r := Result{FieldRefreshLeft: v}
		if r.RefreshLeft() != 7 {
			t.Fatalf("refresh_left(%T) = %d, want 7", v, r.RefreshLeft())
		}
	}
}

func TestResultWrongTypes(t *testing.T) {
	r := Result{FieldError: 42, FieldSessionToken: true, FieldRefreshLeft: "many"}
	if r.Code() != "" || r.SessionToken() != "" || r.RefreshLeft() != 0 {
		t.Fatalf("mistyped fields must read as zero values: %v", r)
	}
}

func TestConnectionError(t *testing.T) {
	r := ConnectionError()
	if r.Code() != CodeConnectionError {
		t.Fatalf("code = %q", r.Code())
	}
	if len(r) != 1 {
		t.Fatalf("payload = %v, want only the error field", r)
	}
}
