// Package storage provides the object storage client used to archive bulk
// upload reports.
//
// Every bulk upload (materials or users) produces an outcome report; when
// archiving is enabled the report is written as JSON to the configured
// bucket so failed spreadsheet imports can be audited later. The archive is
// best effort: a storage failure never changes the outcome of the upload
// itself.
package storage
