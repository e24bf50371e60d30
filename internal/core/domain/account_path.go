package domain

import "strings"

// AccountSeparator joins the segments of a hierarchical account path.
const AccountSeparator = ":"

// Well-known accounts touched by the tip accrual rule.
const (
	AccountTipRevenueStaff = "entrada:vendas:10% funcionarios"
	AccountCash            = "bens:caixa"
	AccountTipExpenseStaff = "gastos:funcionarios:10%"
	AccountTipPayable      = "dividas:contas a pagar:10%"
)

// JoinAccountPath concatenates segments with AccountSeparator.
// A segment may itself be a path ("bens:caixa"); the result is validated as a whole.
func JoinAccountPath(segments ...string) (string, error) {
	if len(segments) == 0 {
		return "", ErrEmptyAccountPath
	}
	path := strings.Join(segments, AccountSeparator)
	if err := ValidateAccountPath(path); err != nil {
		return "", err
	}
	return path, nil
}

// MustJoinAccountPath is JoinAccountPath for constant inputs. It panics on error.
func MustJoinAccountPath(segments ...string) string {
	path, err := JoinAccountPath(segments...)
	if err != nil {
		panic(err)
	}
	return path
}

// SplitAccountPath is the inverse of JoinAccountPath. An empty path yields no segments.
func SplitAccountPath(path string) []string {
	if path == "" {
		return nil
	}
	return strings.Split(path, AccountSeparator)
}

// ValidateAccountPath rejects the empty path and paths containing an empty segment.
func ValidateAccountPath(path string) error {
	if path == "" {
		return ErrEmptyAccountPath
	}
	for _, segment := range strings.Split(path, AccountSeparator) {
		if segment == "" {
			return ErrInvalidAccountPath
		}
	}
	return nil
}
