// Package validate registers the custom validation tags used by request
// payloads and translates validation failures into field-level messages.
package validate

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"
	"unicode"

	"github.com/badoux/checkmail"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/shopspring/decimal"
)

// MaxAmount is the largest amount that fits a DECIMAL(10,2) column.
var MaxAmount = decimal.RequireFromString("99999999.99")

var (
	minAmount = decimal.RequireFromString("0.01")
	hexColor  = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

	once        sync.Once
	registerErr error
)

// Register adds the custom tags to the validator engine used by gin's binding.
// It is safe to call more than once.
func Register() error {
	once.Do(func() {
		registerErr = register()
	})

	return registerErr
}

func register() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("gin binding does not use go-playground/validator")
	}

	v.RegisterTagNameFunc(fieldName)
	v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})

	tags := map[string]validator.Func{
		"password":   Password,
		"hexcolor6":  HexColor,
		"mailformat": MailFormat,
		"money":      Money,
		"notblank":   validators.NotBlank,
	}

	for tag, fn := range tags {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("registering validation %s: %w", tag, err)
		}
	}

	return nil
}

// fieldName reports fields by the name the client uses for them.
func fieldName(f reflect.StructField) string {
	for _, tag := range []string{"json", "form", "uri"} {
		name, _, _ := strings.Cut(f.Tag.Get(tag), ",")
		if name != "" && name != "-" {
			return name
		}
	}

	return f.Name
}

// decimalValue makes decimals validate as their string representation.
func decimalValue(field reflect.Value) any {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		return d.String()
	}

	return nil
}

// MaxPasswordBytes is the longest password bcrypt can hash.
const MaxPasswordBytes = 72

// Password requires at least 8 characters with an upper-case letter,
// a lower-case letter and a digit, and at most MaxPasswordBytes bytes.
func Password(fl validator.FieldLevel) bool {
	password := fl.Field().String()
	if len([]rune(password)) < 8 || len(password) > MaxPasswordBytes {
		return false
	}

	var upper, lower, digit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		}
	}

	return upper && lower && digit
}

// HexColor requires a color in #RRGGBB notation.
func HexColor(fl validator.FieldLevel) bool {
	return hexColor.MatchString(fl.Field().String())
}

// MailFormat requires a syntactically valid email address.
// The domain is not resolved.
func MailFormat(fl validator.FieldLevel) bool {
	return checkmail.ValidateFormat(strings.TrimSpace(fl.Field().String())) == nil
}

// Money requires an amount between 0.01 and MaxAmount with at most two
// decimal places.
func Money(fl validator.FieldLevel) bool {
	d, err := decimal.NewFromString(fl.Field().String())
	if err != nil {
		return false
	}

	return d.GreaterThanOrEqual(minAmount) && d.LessThanOrEqual(MaxAmount) && d.Equal(d.Round(2))
}
