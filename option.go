package bqshell

import "errors"

// Option is the type to replace default parameters.
// bqshell.New accepts any number of options (this is functional option pattern).
type Option func(console *Console) error

// OptionEndpoint to point the console at a different emulator endpoint.
func OptionEndpoint(endpoint string) Option {
	return func(c *Console) error {
		if endpoint == "" {
			return errors.New("endpoint must not be empty")
		}
		c.endpoint = endpoint
		return nil
	}
}

// OptionDataset to set the dataset listed at startup.
func OptionDataset(dataset string) Option {
	return func(c *Console) error {
		c.dataset = dataset
		return nil
	}
}

// OptionTable to set the table the fixed diagnostics query.
func OptionTable(table string) Option {
	return func(c *Console) error {
		c.table = table
		return nil
	}
}

// OptionDefaultLimit to use as the default limit of resulted records.
// Set 0 to fetch unlimited rows.
func OptionDefaultLimit(limit int) Option {
	return func(c *Console) error {
		if limit < 0 {
			return errors.New("limit must not be negative")
		}
		c.defaultLimit = limit
		return nil
	}
}
