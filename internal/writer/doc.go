// Package writer serializes export records to delimited text.
//
// Output format:
//   - header row first, then one line per record
//   - every field double-quoted, embedded quotes doubled
//   - fields separated by ';', lines terminated by CRLF
//
// Records expose their values by column name; columns a record does not know
// render as empty quoted strings.
package writer
