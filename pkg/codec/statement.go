package codec

import "fmt"

// Statement is the write-path binding target. database/sql prepared
// statements take their parameters at execution time rather than through
// per-position setters, so the codec binds into this interface and the
// caller hands the collected arguments to ExecContext. Positions are
// 1-based and arrive in strictly increasing order.
type Statement interface {
	Bind(pos int, arg any) error
}

// Args collects bound arguments in position order for use with
// stmt.ExecContext(ctx, args...). The zero value is ready to use; Reset
// allows reuse across rows on the same statement.
type Args struct {
	args []any
}

// Bind implements Statement.
func (a *Args) Bind(pos int, arg any) error {
	if pos != len(a.args)+1 {
		return fmt.Errorf("bind position %d out of order, want %d", pos, len(a.args)+1)
	}
	a.args = append(a.args, arg)
	return nil
}

// Values returns the arguments bound so far, in position order.
func (a *Args) Values() []any { return a.args }

// Reset clears the collected arguments for the next row.
func (a *Args) Reset() { a.args = a.args[:0] }
