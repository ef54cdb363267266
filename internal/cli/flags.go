package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/freeflow/internal/smart"
	"github.com/spf13/pflag"
)

// amountValue is a flag holding a dotted amount such as 1.500.000.
// Unlike smart.ParseNumber it rejects input that is not a number.
type amountValue int64

var _ pflag.Value = (*amountValue)(nil)

func (a *amountValue) Set(s string) error {
	n := smart.ParseNumber(s)
	if n == 0 && strings.Trim(s, "0. ") != "" {
		return fmt.Errorf("invalid amount %q", s)
	}
	if n < 0 {
		return fmt.Errorf("amount must be non-negative, got %q", s)
	}
	*a = amountValue(n)
	return nil
}

func (a *amountValue) String() string { return smart.FormatNumber(int64(*a)) }

func (a *amountValue) Type() string { return "amount" }
