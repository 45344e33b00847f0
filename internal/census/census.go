// Package census runs the discover → inspect pipeline over a directory and
// folds the per-file results into reportable aggregates.
package census

import (
	"errors"
	"fmt"
	"io"

	"db-census/internal/dialect"
	"db-census/internal/discover"
	"db-census/internal/schema"

	"github.com/sirupsen/logrus"
)

// Census inspects every database file below a root, one file at a time.
type Census struct {
	Dialect    dialect.Dialect
	Extensions []string
	Options    schema.Options

	// Out receives human-readable progress lines.
	Out io.Writer
	Log logrus.FieldLogger

	// OnResult, when set, is called after each file is inspected.
	OnResult func(schema.Result)
}

// Collect discovers database files under root and inspects them in discovery
// order. Only discovery failures are returned; inspection failures are logged
// and carried on the individual results.
func (c *Census) Collect(root string) ([]schema.Result, error) {
	paths, err := discover.Find(root, c.Extensions)
	if err != nil {
		return nil, err
	}
	c.printf("Found %d database files\n", len(paths))

	results := make([]schema.Result, 0, len(paths))
	for _, path := range paths {
		c.printf("\nProcessing database: %s\n", path)

		res := schema.Inspect(c.Dialect, path, c.Options)
		c.logErrors(res)
		if c.OnResult != nil {
			c.OnResult(res)
		}
		results = append(results, res)
	}
	return results, nil
}

func (c *Census) logErrors(res schema.Result) {
	if res.Err == nil || c.Log == nil {
		return
	}
	for _, err := range res.Errors() {
		entry := c.Log.WithField("file", res.Path)
		var ierr *schema.InspectionError
		if errors.As(err, &ierr) && ierr.Table != "" {
			entry = entry.WithField("table", ierr.Table)
		}
		if res.Partial {
			entry.WithError(err).Warn("skipping table")
		} else {
			entry.WithError(err).Error("failed to inspect database")
		}
	}
}

func (c *Census) printf(format string, args ...interface{}) {
	if c.Out == nil {
		return
	}
	fmt.Fprintf(c.Out, format, args...)
}
