/*
 * Copyright 2025 Olake By Datazip
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package typeutils

import (
	"fmt"
	"strings"
	"time"

	"github.com/songminj/logtrack/constants"
)

// Date is a calendar date without a time of day or location.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf truncates t to its calendar date in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// ParseDate parses YYYY-MM-DD or any timestamp accepted by ReformatDate.
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(constants.DateLayout, s); err == nil {
		return DateOf(t), nil
	}
	t, err := parseStringTimestamp(s)
	if err != nil {
		return Date{}, fmt.Errorf("failed to parse date [%s]: %w", s, err)
	}
	return DateOf(t), nil
}

func (d Date) IsZero() bool {
	return d == Date{}
}

// Midnight returns the first instant of d in loc.
func (d Date) Midnight(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

// AddDays normalises across month and year boundaries.
func (d Date) AddDays(days int) Date {
	return DateOf(d.Midnight(time.UTC).AddDate(0, 0, days))
}

func (d Date) String() string {
	return d.Midnight(time.UTC).Format(constants.DateLayout)
}

// Before reports whether d falls on an earlier day than u
func (d Date) Before(u Date) bool {
	return d.Compare(u) < 0
}

// After reports whether d falls on a later day than u
func (d Date) After(u Date) bool {
	return d.Compare(u) > 0
}

// Equal reports whether d and u are the same calendar day
func (d Date) Equal(u Date) bool {
	return d == u
}

// Compare returns -1 if d is before u, +1 if d is after u and 0 on the same day.
func (d Date) Compare(u Date) int {
	switch {
	case d.Year != u.Year:
		return sign(d.Year - u.Year)
	case d.Month != u.Month:
		return sign(int(d.Month) - int(u.Month))
	default:
		return sign(d.Day - u.Day)
	}
}

func sign(n int) int {
	if n < 0 {
		return -1
	}
	if n > 0 {
		return 1
	}
	return 0
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON accepts quoted dates and timestamps
func (d *Date) UnmarshalJSON(b []byte) error {
	str := strings.Trim(string(b), "\"")
	parsed, err := ParseDate(str)
	if err != nil {
		return err
	}

	*d = parsed
	return nil
}

// DatePtr returns a pointer to a copy of d, for optional range bounds.
func DatePtr(d Date) *Date {
	return &d
}
