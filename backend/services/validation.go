// ABOUTME: Input validation for service and placement sequences
// ABOUTME: Collects every problem before any engine state is touched

package services

import (
	"fmt"

	"go.uber.org/multierr"

	"github.com/luismiguelsb/Placement-and-Chaining-of-VNFs/backend/models"
)

// ValidatePlacement checks a service/placement pair against the capacity model.
// Every entry must hold a valid index. Entries past serviceLength are padding and may
// also hold the sentinel VNF type. The returned error wraps ErrInvalidInput.
func ValidatePlacement(model *models.CapacityModel, serviceLength int, service, placement []int) error {
	var errs error

	if len(service) != len(placement) {
		errs = multierr.Append(errs, fmt.Errorf("service has %d entries but placement has %d",
			len(service), len(placement)))
	}
	if serviceLength <= 0 {
		errs = multierr.Append(errs, fmt.Errorf("service length must be positive, got %d", serviceLength))
	}
	if serviceLength > len(service) || serviceLength > len(placement) {
		errs = multierr.Append(errs, fmt.Errorf("service length %d exceeds sequence length %d",
			serviceLength, min(len(service), len(placement))))
	}

	for i, vnf := range service {
		switch {
		case i < serviceLength && !model.ValidVNF(vnf):
			errs = multierr.Append(errs, fmt.Errorf("service[%d]: VNF type %d out of range [1, %d]",
				i, vnf, model.NumVNFTypes()))
		case i >= serviceLength && vnf != 0 && !model.ValidVNF(vnf):
			errs = multierr.Append(errs, fmt.Errorf("service[%d]: padding VNF type %d out of range [0, %d]",
				i, vnf, model.NumVNFTypes()))
		}
	}
	for i := range placement {
		if !model.ValidNode(placement[i]) {
			errs = multierr.Append(errs, fmt.Errorf("placement[%d]: node %d out of range [0, %d]",
				i, placement[i], model.NumNodes()-1))
		}
	}

	if errs != nil {
		return fmt.Errorf("%w: %w", models.ErrInvalidInput, errs)
	}
	return nil
}

// ValidationProblems splits a validation error into its individual messages
func ValidationProblems(err error) []string {
	if err == nil {
		return nil
	}
	var problems []string
	for _, e := range multierr.Errors(unwrapInvalid(err)) {
		problems = append(problems, e.Error())
	}
	return problems
}

// unwrapInvalid strips the ErrInvalidInput wrapper added by ValidatePlacement
func unwrapInvalid(err error) error {
	if u, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range u.Unwrap() {
			if e != models.ErrInvalidInput {
				return e
			}
		}
	}
	return err
}
