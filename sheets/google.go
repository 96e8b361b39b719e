package sheets

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	api "google.golang.org/api/sheets/v4"
)

// Google is a Provider that goes directly to the Sheets API instead of
// through the gog tool. Each account identity maps to an OAuth2
// credentials file; tokens are cached under the working directory.
type Google struct {
	credentials map[string]string
	workdir     string
}

func NewGoogle(credentials map[string]string, workdir string) *Google {
	return &Google{
		credentials: credentials,
		workdir:     workdir,
	}
}

func (g *Google) service(ctx context.Context, account string) (*api.Service, error) {
	credentials, ok := g.credentials[account]
	if !ok {
		return nil, fmt.Errorf("no credentials configured for account '%s'", account)
	}

	client, err := authorize(credentials, g.workdir)
	if err != nil {
		return nil, fmt.Errorf("authentication/authorization error (%v)", err)
	}

	google, err := api.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("unable to create new Sheets client (%v)", err)
	}

	return google, nil
}

func (g *Google) ReadRange(ctx context.Context, account, spreadsheet, area string) (Table, error) {
	google, err := g.service(ctx, account)
	if err != nil {
		return nil, err
	}

	response, err := google.Spreadsheets.Values.Get(spreadsheet, area).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve data from sheet (%v)", err)
	}

	table := make(Table, 0, len(response.Values))
	for _, row := range response.Values {
		record := make([]string, len(row))
		for i, v := range row {
			record[i] = fmt.Sprintf("%v", v)
		}

		table = append(table, record)
	}

	return table, nil
}

func (g *Google) ClearRange(ctx context.Context, account, spreadsheet, area string) error {
	google, err := g.service(ctx, account)
	if err != nil {
		return err
	}

	rq := api.BatchClearValuesRequest{
		Ranges: []string{area},
	}

	if _, err := google.Spreadsheets.Values.BatchClear(spreadsheet, &rq).Context(ctx).Do(); err != nil {
		return err
	}

	return nil
}

func (g *Google) UpdateRange(ctx context.Context, account, spreadsheet, anchor string, table Table) error {
	google, err := g.service(ctx, account)
	if err != nil {
		return err
	}

	rows := make([][]interface{}, len(table))
	for i, record := range table {
		row := make([]interface{}, len(record))
		for j, v := range record {
			row[j] = v
		}

		rows[i] = row
	}

	rq := api.ValueRange{
		Range:  anchor,
		Values: rows,
	}

	if _, err := google.Spreadsheets.Values.Update(spreadsheet, anchor, &rq).ValueInputOption("USER_ENTERED").Context(ctx).Do(); err != nil {
		return err
	}

	return nil
}
