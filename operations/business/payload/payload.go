// Package payload decodes and validates operation payloads for handlers.
package payload

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"encore.dev/beta/errs"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Decode strictly decodes raw into v and validates its `validate` tags.
// Unknown fields are rejected so a typo never silently changes the operation.
func Decode(raw json.RawMessage, v any) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: fmt.Sprintf("invalid payload: %v", err)}
	}
	if err := validate.Struct(v); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}
	return nil
}

var amountPattern = regexp.MustCompile(`^(0|[1-9][0-9]*)(\.[0-9]{1,2})?$`)

// ParseAmountCents converts a decimal amount with at most two fractional digits
// into integer cents. Exponent notation and negative amounts are rejected.
func ParseAmountCents(amount json.Number) (int64, error) {
	s := amount.String()
	if !amountPattern.MatchString(s) {
		return 0, &errs.Error{Code: errs.InvalidArgument, Message: "amount must be a positive decimal with at most two fractional digits"}
	}

	whole, frac, _ := strings.Cut(s, ".")
	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil || units > math.MaxInt64/100-1 {
		return 0, &errs.Error{Code: errs.InvalidArgument, Message: "amount is too large"}
	}

	var cents int64
	if frac != "" {
		if len(frac) == 1 {
			frac += "0"
		}
		cents, _ = strconv.ParseInt(frac, 10, 64)
	}

	total := units*100 + cents
	if total <= 0 {
		return 0, &errs.Error{Code: errs.InvalidArgument, Message: "amount must be greater than zero"}
	}
	return total, nil
}
