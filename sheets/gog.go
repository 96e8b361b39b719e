package sheets

import (
	"context"
	"encoding/json"
	"fmt"
)

// Gog is a Provider backed by the 'gog' command line tool. Credential
// management is delegated entirely to gog - the account identity is
// passed through with -a and gog picks the matching OAuth tokens.
type Gog struct {
	binary string
	run    func(ctx context.Context, name string, args ...string) (string, error)
}

func NewGog(binary string) *Gog {
	return &Gog{
		binary: binary,
		run:    Run,
	}
}

func (g *Gog) ReadRange(ctx context.Context, account, spreadsheet, area string) (Table, error) {
	out, err := g.run(ctx, g.binary, "sheets", "get", "-a", account, "-j", "--results-only", spreadsheet, area)
	if err != nil {
		return nil, err
	}

	table := Table{}
	if err := json.Unmarshal([]byte(out), &table); err != nil {
		return nil, fmt.Errorf("invalid response from '%s sheets get' (%v)", g.binary, err)
	}

	return table, nil
}

func (g *Gog) ClearRange(ctx context.Context, account, spreadsheet, area string) error {
	_, err := g.run(ctx, g.binary, "sheets", "clear", "-a", account, "-y", spreadsheet, area)

	return err
}

func (g *Gog) UpdateRange(ctx context.Context, account, spreadsheet, anchor string, table Table) error {
	payload, err := json.Marshal(table)
	if err != nil {
		return err
	}

	_, err = g.run(ctx, g.binary, "sheets", "update", "-a", account, "-y", "--values-json", string(payload), spreadsheet, anchor)

	return err
}
