package movement

// Filter returns the records matching sel. It always evaluates against the
// full record set, never a previously filtered subset, so toggling one
// dimension cannot compound with a stale application of the other. A record
// passes when it matches both dimensions; an empty selection set matches
// everything on that dimension.
func Filter(records []Record, sel Selection) []Record {
	products := toSet(sel.Products)
	warehouses := toSet(sel.Warehouses)

	matched := make([]Record, 0, len(records))
	for _, r := range records {
		if len(products) > 0 {
			if _, ok := products[r.ProductName]; !ok {
				continue
			}
		}
		if len(warehouses) > 0 {
			if _, ok := warehouses[r.WarehouseName]; !ok {
				continue
			}
		}
		matched = append(matched, r)
	}
	return matched
}

func toSet(names []string) map[string]struct{} {
	if len(names) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(names))
	for _, name := range names {
		set[name] = struct{}{}
	}
	return set
}
