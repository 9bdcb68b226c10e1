// Package cities implements the file collaborators around the optimizer:
// reading city coordinates, reading a previously saved visiting order, and
// writing the best visiting order back to disk.
//
// Formats are line-oriented plain text:
//
//   - coordinate files: one "x y" pair per line, whitespace-delimited,
//     blank lines ignored;
//   - route files: one city index per line.
//
// Malformed input is reported with the offending line number and wraps
// ErrBadFormat, so callers can match it with errors.Is.
package cities
