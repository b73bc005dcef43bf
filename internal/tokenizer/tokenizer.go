// Package tokenizer splits raw statement text into ordered rows of raw string
// fields. It is a character-level scanner, not a strict CSV reader: human
// produced bank exports carry ragged rows, blank lines, and stray carriage
// returns that encoding/csv rejects, and all of those must pass through.
package tokenizer

import "strings"

// Row is an ordered sequence of raw text fields. Position is significant and
// no type coercion happens at this stage.
type Row []string

// Tokenize scans raw text into rows of fields.
//
// A '"' outside quotes opens a quoted field; inside quotes a doubled '""' is
// an escaped literal quote and a single '"' closes the region. Outside quotes
// ',' ends the field and '\n' ends the row; '\r' is ignored unconditionally so
// CRLF and CR-only line endings pass transparently. A field with an
// unterminated quote consumes the remainder of the input as field content;
// that is accepted, not an error. Rows whose fields are all blank are dropped.
func Tokenize(text string) []Row {
	var rows []Row
	var row Row
	var field strings.Builder
	inQuotes := false

	endField := func() {
		row = append(row, field.String())
		field.Reset()
	}
	endRow := func() {
		endField()
		if !isBlankRow(row) {
			rows = append(rows, row)
		}
		row = nil
	}

	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		ch := runes[i]
		switch {
		case ch == '\r':
			// Ignored everywhere, quoted or not.
		case inQuotes:
			if ch == '"' {
				if i+1 < len(runes) && runes[i+1] == '"' {
					field.WriteRune('"')
					i++
				} else {
					inQuotes = false
				}
			} else {
				field.WriteRune(ch)
			}
		case ch == '"':
			inQuotes = true
		case ch == ',':
			endField()
		case ch == '\n':
			endRow()
		default:
			field.WriteRune(ch)
		}
	}

	// Flush whatever is in progress at end of input.
	if field.Len() > 0 || len(row) > 0 {
		endRow()
	}

	return rows
}

func isBlankRow(row Row) bool {
	for _, f := range row {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
