// Package dataset loads regression datasets from delimited text.
//
// A Dataset holds a response column and a design matrix of feature columns,
// row-aligned and free of missing values, ready for ols.Fit or rolling.New.
//
// # Loading from CSV
//
//	opts := dataset.DefaultCSVOptions()
//	opts.ResponseColumn = "returns"
//	opts.FeatureColumns = []string{"market", "size"}
//	ds, err := dataset.LoadCSV("factors.csv", opts)
//
//	model, err := ols.Fit(ds.Response, ds.Design, ols.WithNames(ds.Features...))
//
// When FeatureColumns is empty every column except the response and the
// date column is used. Rows with an empty, NA, NaN, null or infinite value
// in any used column are skipped. The markers are matched regardless of case.
package dataset
