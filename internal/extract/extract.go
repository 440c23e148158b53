// Package extract pulls labeled metadata fields out of artwork document
// text using a fixed table of pattern rules.
package extract

// Fields maps a field key to its captured value. A key missing from the
// map means the rule found no match in the document; callers decide how to
// report that.
type Fields map[string]string

// Extract runs every rule against the full document text and returns the
// captured fields plus the keys that matched nothing. Rules search the
// text independently (unanchored, first occurrence wins); when a rule's
// primary "v" group is empty the "v2" group carries the value, as in the
// combined date rule that binds "Año:" and "Fecha:" to different branches.
func Extract(text string, rules []Rule) (Fields, []string) {
	fields := make(Fields, len(rules))
	var missing []string

	for _, rule := range rules {
		m := rule.Pattern.FindStringSubmatch(text)
		if m == nil {
			missing = append(missing, rule.Key)
			continue
		}

		value := ""
		if i := rule.Pattern.SubexpIndex("v"); i >= 0 && i < len(m) {
			value = m[i]
		}
		if value == "" {
			if i := rule.Pattern.SubexpIndex("v2"); i >= 0 && i < len(m) {
				value = m[i]
			}
		}
		fields[rule.Key] = value
	}

	return fields, missing
}
