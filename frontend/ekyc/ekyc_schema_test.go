package ekyc

import (
	"testing"
	"time"
)

func validRecord() Record {
	return Record{
		Salutation:   "Mr",
		FirstName:    "Ravi",
		LastName:     "Menon",
		DateOfBirth:  "1990-04-12",
		Mobile:       "9876543210",
		Email:        "ravi.menon@example.com",
		HouseNumber:  "12B",
		Street:       "Temple Road",
		City:         "Kochi",
		District:     "Ernakulam",
		State:        "Kerala",
		Pincode:      "682001",
		AadhaarLast4: "4821",
		RationCardNo: "",
	}
}

func fixedNow() time.Time {
	return time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)
}

func TestValidate_AcceptsCompleteRecord(t *testing.T) {
	problems := Validate(newValidatorAt(fixedNow), validRecord())
	if len(problems) != 0 {
		t.Fatalf("problems = %v, want none", problems)
	}
}

func TestValidate_AgeThreshold(t *testing.T) {
	v := newValidatorAt(fixedNow)

	// Born exactly 18 years before today: eligible.
	rec := validRecord()
	rec.DateOfBirth = "2008-08-31"
	if problems := Validate(v, rec); len(problems) != 0 {
		t.Fatalf("exactly 18 rejected: %v", problems)
	}

	// One day younger: rejected.
	rec.DateOfBirth = "2008-09-01"
	problems := Validate(v, rec)
	if _, ok := problems["DateOfBirth"]; !ok {
		t.Fatalf("17 years 364 days accepted, problems = %v", problems)
	}
}

func TestValidate_RationCardConditional(t *testing.T) {
	v := newValidatorAt(fixedNow)

	rec := validRecord()
	rec.RationCardNo = ""
	if problems := Validate(v, rec); len(problems) != 0 {
		t.Fatalf("empty ration card rejected: %v", problems)
	}

	rec.RationCardNo = "123456789012"
	if problems := Validate(v, rec); len(problems) != 0 {
		t.Fatalf("12-digit ration card rejected: %v", problems)
	}

	rec.RationCardNo = "12345"
	if problems := Validate(v, rec); problems["RationCardNo"] == "" {
		t.Fatal("short ration card accepted")
	}
	rec.RationCardNo = "12345678901X"
	if problems := Validate(v, rec); problems["RationCardNo"] == "" {
		t.Fatal("non-numeric ration card accepted")
	}
}

func TestValidate_FieldBounds(t *testing.T) {
	v := newValidatorAt(fixedNow)
	cases := []struct {
		name   string
		mutate func(*Record)
		field  string
	}{
		{"unknown salutation", func(r *Record) { r.Salutation = "Mx" }, "Salutation"},
		{"one-letter first name", func(r *Record) { r.FirstName = "R" }, "FirstName"},
		{"nine-digit mobile", func(r *Record) { r.Mobile = "987654321" }, "Mobile"},
		{"alphabetic mobile", func(r *Record) { r.Mobile = "98765432ab" }, "Mobile"},
		{"malformed email", func(r *Record) { r.Email = "not-an-email" }, "Email"},
		{"five-digit pincode", func(r *Record) { r.Pincode = "68200" }, "Pincode"},
		{"missing street", func(r *Record) { r.Street = "" }, "Street"},
		{"unparseable dob", func(r *Record) { r.DateOfBirth = "31-08-1990" }, "DateOfBirth"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := validRecord()
			tc.mutate(&rec)
			problems := Validate(v, rec)
			if problems[tc.field] == "" {
				t.Fatalf("problems = %v, want one on %s", problems, tc.field)
			}
		})
	}
}

func TestValidate_EmailOptional(t *testing.T) {
	rec := validRecord()
	rec.Email = ""
	if problems := Validate(newValidatorAt(fixedNow), rec); len(problems) != 0 {
		t.Fatalf("empty email rejected: %v", problems)
	}
}
