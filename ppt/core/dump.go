/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package core

import (
	"encoding/hex"
	"fmt"
	"io"
	"strings"
)

// dumpDataLen is the number of atom payload bytes shown by Dump.
const dumpDataLen = 16

// Dump writes an indented listing of `records` and their descendants to `w` for debugging.
func Dump(w io.Writer, records []*Record) error {
	var err error
	for _, rec := range records {
		rec.Walk(func(r *Record, depth int) bool {
			if err != nil {
				return false
			}
			line := strings.Repeat("  ", depth) + r.String()
			if !r.IsContainer() && len(r.Data) > 0 {
				data := r.Data
				suffix := ""
				if len(data) > dumpDataLen {
					data = data[:dumpDataLen]
					suffix = "..."
				}
				line += " " + hex.EncodeToString(data) + suffix
			}
			_, err = fmt.Fprintln(w, line)
			return err == nil
		})
		if err != nil {
			return err
		}
	}
	return nil
}
