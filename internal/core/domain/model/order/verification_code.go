package order

import (
	"fmt"
	"math/rand/v2"

	"fishmarket/internal/pkg/errs"
)

// VerificationCode is the short numeric code a customer relays to the
// delivery agent to confirm receipt. It is a 4-digit string drawn uniformly
// from [1000, 9999] and serialized as a string to preserve leading zeros in
// any stored data that predates the current range.
//
// Known limitation: the code is operational, not a secret. ~9000 possible
// values, no expiry, and no lockout on repeated mismatches. It exists so a
// delivery person can ask for something a customer reads aloud, nothing more.
type VerificationCode string

// NewVerificationCode validates a stored or entered code.
func NewVerificationCode(s string) (VerificationCode, error) {
	code := VerificationCode(s)
	if err := code.Validate(); err != nil {
		return "", err
	}
	return code, nil
}

// Validate checks the 4-digit numeric shape.
func (c VerificationCode) Validate() error {
	if len(c) != 4 {
		return errs.NewValueIsInvalidErrorWithCause("verification code",
			fmt.Errorf("%q is not a 4-digit code", string(c)))
	}
	for _, r := range c {
		if r < '0' || r > '9' {
			return errs.NewValueIsInvalidErrorWithCause("verification code",
				fmt.Errorf("%q is not numeric", string(c)))
		}
	}
	return nil
}

// String returns the code as entered by the customer.
func (c VerificationCode) String() string {
	return string(c)
}

// CodeGenerator produces one-time delivery verification codes. The state
// machine handler takes it as a dependency so tests can pin the value.
type CodeGenerator interface {
	Generate() VerificationCode
}

// RandomCodeGenerator is the production CodeGenerator, uniform over
// [1000, 9999] via math/rand. Cryptographic strength is deliberately not a
// goal here.
type RandomCodeGenerator struct{}

// NewRandomCodeGenerator creates the default generator.
func NewRandomCodeGenerator() RandomCodeGenerator {
	return RandomCodeGenerator{}
}

// Generate returns a fresh zero-padded 4-digit code.
func (RandomCodeGenerator) Generate() VerificationCode {
	return VerificationCode(fmt.Sprintf("%04d", 1000+rand.IntN(9000)))
}
