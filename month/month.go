/*
Copyright © 2019 the InMAP authors.
This file is part of met.

met is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

met is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with met.  If not, see <http://www.gnu.org/licenses/>.
*/

// Package month converts month names to month numbers.
package month

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrUnrecognizedMonth is returned when a name does not match any month.
var ErrUnrecognizedMonth = errors.New("month: unrecognized month name")

// Options specify how names are matched to months.
type Options struct {
	// Length is the number of leading characters that are compared.
	// If zero or negative, whole names are compared.
	Length int

	// IgnoreCase specifies that matching is case-insensitive. Otherwise,
	// names must be capitalized ("January") or lower case ("january").
	IgnoreCase bool
}

// Num returns the two-digit number ("01" through "12") of the
// month matching name.
func Num(name string, o Options) (string, error) {
	for m := time.January; m <= time.December; m++ {
		if o.match(name, m.String()) || o.match(name, strings.ToLower(m.String())) {
			return fmt.Sprintf("%02d", int(m)), nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnrecognizedMonth, name)
}

// Number returns the two-digit month number of each of names.
func Number(names []string, o Options) ([]string, error) {
	nums := make([]string, len(names))
	for i, name := range names {
		n, err := Num(name, o)
		if err != nil {
			return nil, err
		}
		nums[i] = n
	}
	return nums, nil
}

func (o Options) match(name, month string) bool {
	if o.Length > 0 {
		name = truncate(name, o.Length)
		month = truncate(month, o.Length)
	}
	if o.IgnoreCase {
		return strings.EqualFold(name, month)
	}
	return name == month
}

// truncate returns the first n characters of s.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
