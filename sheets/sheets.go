package sheets

import (
	"context"
	"fmt"
	"regexp"
)

// Table is a snapshot of a rectangular sheet region - an ordered list of
// rows, each an ordered list of string cells. Rows may vary in width
// because trailing empty cells are omitted by the backends.
type Table [][]string

// Provider is the narrow interface to a spreadsheet backend. The account
// identity selects the credentials used for the call; everything else
// about authentication is the backend's problem.
type Provider interface {
	ReadRange(ctx context.Context, account, spreadsheet, area string) (Table, error)
	ClearRange(ctx context.Context, account, spreadsheet, area string) error
	UpdateRange(ctx context.Context, account, spreadsheet, anchor string, table Table) error
}

var rangeExpr = regexp.MustCompile(`^(.+?)!([A-Za-z]+)([0-9]+):([A-Za-z]+)([0-9]+)?$`)

// Anchor reduces a range to its top-left cell e.g. 'Sheet1!A1:BM50'
// becomes 'Sheet1!A1'. An update anchored at that cell expands to fit
// the shape of the payload.
func Anchor(area string) (string, error) {
	match := rangeExpr.FindStringSubmatch(area)
	if len(match) < 4 {
		return "", fmt.Errorf("invalid spreadsheet range '%s'", area)
	}

	return fmt.Sprintf("%s!%s%s", match[1], match[2], match[3]), nil
}

// ValidRange reports whether area looks like 'Sheet1!A1:BM50' (the
// bottom-right row may be open e.g. 'Class Data!A2:E').
func ValidRange(area string) bool {
	return rangeExpr.MatchString(area)
}
