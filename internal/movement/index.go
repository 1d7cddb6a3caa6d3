package movement

import "sort"

// BuildIndexes derives the selection data for a record set in one linear
// pass per index: distinct non-empty product and warehouse names, sorted
// ascending, and the name-to-code map with first-seen-wins semantics.
func BuildIndexes(records []Record) Indexes {
	codes := make(map[string]string)
	for _, r := range records {
		if r.ProductName == "" || r.ProductCode == "" {
			continue
		}
		// Guarded insert keeps "first occurrence wins" visible in code.
		if _, seen := codes[r.ProductName]; seen {
			continue
		}
		codes[r.ProductName] = r.ProductCode
	}

	return Indexes{
		ProductNames:   distinctSorted(records, func(r Record) string { return r.ProductName }),
		WarehouseNames: distinctSorted(records, func(r Record) string { return r.WarehouseName }),
		ProductCodes:   codes,
	}
}

func distinctSorted(records []Record, field func(Record) string) []string {
	seen := make(map[string]struct{}, len(records))
	names := make([]string, 0, len(records))
	for _, r := range records {
		name := field(r)
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
