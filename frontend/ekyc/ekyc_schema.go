package ekyc

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
)

// Salutations is the fixed enum offered by the capture form; the oneof tag
// below must stay in step with it.
var Salutations = []string{"Mr", "Mrs", "Ms", "Dr"}

// Record is the eKYC capture payload. The max lengths mirror the fixed-width
// record layout of the distributor backend, so they are hard limits rather
// than advisory.
type Record struct {
	Salutation   string `form:"salutation" validate:"required,oneof=Mr Mrs Ms Dr"`
	FirstName    string `form:"first_name" validate:"required,min=2,max=30"`
	LastName     string `form:"last_name" validate:"required,min=1,max=30"`
	DateOfBirth  string `form:"date_of_birth" validate:"required,adult"`
	Mobile       string `form:"mobile" validate:"required,len=10,numeric"`
	Email        string `form:"email" validate:"omitempty,email,max=50"`
	HouseNumber  string `form:"house_number" validate:"required,max=20"`
	Street       string `form:"street" validate:"required,max=40"`
	City         string `form:"city" validate:"required,max=30"`
	District     string `form:"district" validate:"required,max=30"`
	State        string `form:"state" validate:"required,max=30"`
	Pincode      string `form:"pincode" validate:"required,len=6,numeric"`
	AadhaarLast4 string `form:"aadhaar_last4" validate:"required,len=4,numeric"`
	RationCardNo string `form:"ration_card_no" validate:"omitempty,len=12,numeric"`
}

const dobLayout = "2006-01-02"

// NewValidator returns the schema validator with the adult rule registered.
func NewValidator() *validator.Validate {
	return newValidatorAt(time.Now)
}

func newValidatorAt(now func() time.Time) *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("adult", adultAt(now))
	return v
}

// adultAt checks the birth date against today minus 18 years. The rule is
// threshold-based, not a day-granular age computation, so the leap-year edge
// follows whatever AddDate yields for Feb 29 thresholds.
func adultAt(now func() time.Time) validator.Func {
	return func(fl validator.FieldLevel) bool {
		dob, err := time.Parse(dobLayout, fl.Field().String())
		if err != nil {
			return false
		}
		threshold := now().AddDate(-18, 0, 0)
		return !dob.After(threshold)
	}
}

// fieldMessages maps struct fields to operator-facing messages. Unlisted
// failures fall back to a generic per-field message.
var fieldMessages = map[string]string{
	"Salutation":   "select a salutation",
	"FirstName":    "first name must be 2 to 30 characters",
	"LastName":     "last name must be 1 to 30 characters",
	"DateOfBirth":  "customer must be at least 18 years old",
	"Mobile":       "mobile must be exactly 10 digits",
	"Email":        "email must be valid and at most 50 characters",
	"HouseNumber":  "house number is required, at most 20 characters",
	"Street":       "street is required, at most 40 characters",
	"City":         "city is required, at most 30 characters",
	"District":     "district is required, at most 30 characters",
	"State":        "state is required, at most 30 characters",
	"Pincode":      "pincode must be exactly 6 digits",
	"AadhaarLast4": "enter the last 4 digits of the Aadhaar number",
	"RationCardNo": "ration card number must be exactly 12 digits",
}

// Validate runs the schema and returns per-field messages keyed by struct
// field name. An empty map means the record passed.
func Validate(v *validator.Validate, record Record) map[string]string {
	err := v.Struct(record)
	if err == nil {
		return map[string]string{}
	}
	problems := make(map[string]string)
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		problems[""] = "validation failed"
		return problems
	}
	for _, fe := range validationErrs {
		msg, ok := fieldMessages[fe.Field()]
		if !ok {
			msg = "invalid value"
		}
		problems[fe.Field()] = msg
	}
	return problems
}
