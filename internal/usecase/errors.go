package usecase

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrCustomerNotFound        = errors.New("customer not found")
	ErrPaymentProfileMissing   = errors.New("customer payment profile missing")
	ErrProductNotFound         = errors.New("product not found")
	ErrItemsNotFound           = errors.New("items not found")
	ErrInvalidQuantity         = errors.New("invalid item quantity")
	ErrInvalidProductPrice     = errors.New("invalid product price")
	ErrMalformedDiscount       = errors.New("malformed discount")
	ErrInvoiceAllocationFailed = errors.New("invoice number allocation failed")
	ErrChargeFailed            = errors.New("charge failed")
	ErrOrderCommitFailed       = errors.New("order commit failed after charge")
	ErrRefundFailed            = errors.New("refund failed")
	ErrRefundExceedsOrder      = errors.New("refund exceeds order")
	ErrOrderNotFound           = errors.New("order not found")
	ErrOrderNotCancelable      = errors.New("order not cancelable")
	ErrPlanNotFound            = errors.New("flex plan not found")
	ErrPlanNotResumable        = errors.New("flex plan not resumable")
	ErrFlexDefaultMissing      = errors.New("flex default not configured")
	ErrInvalidCustomerID       = errors.New("invalid customer id")
	ErrInvalidPlanID           = errors.New("invalid flex plan id")
	ErrInvalidInvoiceNumber    = errors.New("invalid invoice number")
)

// DomainError tags a failure with its kind and the key of the record an
// operator needs to locate (invoice number, plan id, customer id...).
//
// errors.Is matches both the kind and the underlying cause.
type DomainError struct {
	Kind  error
	Key   string
	Value string
	Err   error
}

func (e *DomainError) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.Error())
	if e.Key != "" {
		fmt.Fprintf(&b, " %s=%s", e.Key, e.Value)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *DomainError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func newDomainError(kind error, key, value string, cause error) *DomainError {
	return &DomainError{Kind: kind, Key: key, Value: value, Err: cause}
}

// ErrorKey returns the identifying key carried by err, if any.
func ErrorKey(err error) (key, value string, ok bool) {
	var de *DomainError
	if errors.As(err, &de) && de.Key != "" {
		return de.Key, de.Value, true
	}
	return "", "", false
}

// ItemsNotFoundError lists the skus missing from the catalog.
type ItemsNotFoundError struct {
	SKUs []string
}

func (e *ItemsNotFoundError) Error() string {
	return fmt.Sprintf("%s: %s", ErrItemsNotFound.Error(), strings.Join(e.SKUs, ","))
}

func (e *ItemsNotFoundError) Is(target error) bool {
	return target == ErrItemsNotFound
}
