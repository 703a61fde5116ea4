// Copyright easylive1989, 2026. All rights reserved.

package notion

import "time"

// Filter is one node of a database query filter tree. The query API takes
// a compound of AND/OR groups over property conditions; these combinators
// build the exact JSON shape the endpoint expects.
type Filter map[string]any

const dateFmt = "2006-01-02"

// And groups conditions that must all hold.
func And(conds ...Filter) Filter {
	return Filter{"and": conds}
}

// Or groups conditions of which at least one must hold.
func Or(conds ...Filter) Filter {
	return Filter{"or": conds}
}

// DateOnOrAfter matches rows whose date property is on or after day.
func DateOnOrAfter(property string, day time.Time) Filter {
	return Filter{
		"property": property,
		"date":     map[string]string{"on_or_after": day.Format(dateFmt)},
	}
}

// DateOnOrBefore matches rows whose date property is on or before day.
func DateOnOrBefore(property string, day time.Time) Filter {
	return Filter{
		"property": property,
		"date":     map[string]string{"on_or_before": day.Format(dateFmt)},
	}
}

// SelectEquals matches rows whose select property has the given value.
func SelectEquals(property, value string) Filter {
	return Filter{
		"property": property,
		"select":   map[string]string{"equals": value},
	}
}
