// SPDX-License-Identifier: MIT

// Package table describes the vector data source a column classification
// reads from and writes to: an attribute schema, per-field value reads that
// skip geometry, and an explicit edit transaction handle.
//
// Memory is an in-process implementation guarded by a mutex; at most one
// transaction may be open at a time. See package sqlitetable for a SQLite
// backed Table.
//
// Errors:
//
//   - ErrMissingField: field not present in the schema.
//   - ErrFieldExists: AddField on an existing name.
//   - ErrTxActive: Begin while another transaction is open.
//   - ErrTxDone: use of a committed or rolled back transaction.
//   - ErrEmptySample: the column holds no values.
package table
