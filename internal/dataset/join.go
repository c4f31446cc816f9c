package dataset

import "ferreteria.lasu.pe/internal/flatfile"

// Resolve returns the display field of the reference row whose id matches
// fk after string coercion, or the fallback literal when nothing matches
// or the reference set is empty. It is a pure function of its inputs and
// never fails.
func Resolve(fk any, ref []flatfile.Row, idField, displayField, fallback string) string {
	key := flatfile.String(fk)
	if key != "" {
		for _, row := range ref {
			if flatfile.String(row[idField]) == key {
				if display := flatfile.String(row[displayField]); display != "" {
					return display
				}
				return fallback
			}
		}
	}
	return fallback
}
