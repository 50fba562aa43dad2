package labels

// DriverTotals is the number of stops assigned to each driver. It is built
// once from the full row set before any page is drawn and never mutated
// afterwards.
type DriverTotals struct {
	counts map[string]int
}

// CountByDriver partitions stops by driver identifier.
func CountByDriver(stops []Stop) DriverTotals {
	counts := make(map[string]int)
	for _, stop := range stops {
		counts[stop.Driver]++
	}
	return DriverTotals{counts: counts}
}

// Total returns how many stops belong to driver, or 0 for an unknown driver.
func (t DriverTotals) Total(driver string) int {
	return t.counts[driver]
}

// Drivers returns the number of distinct drivers.
func (t DriverTotals) Drivers() int {
	return len(t.counts)
}
