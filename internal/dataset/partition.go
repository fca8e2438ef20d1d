// internal/dataset/partition.go
package dataset

// Partition splits records into aggregate rows and per-iteration rows,
// preserving input order. Every record lands in exactly one of the two slices.
func Partition(records []WordSearchRecord, marker string) (aggregates, iterations []WordSearchRecord) {
	aggregates = make([]WordSearchRecord, 0)
	iterations = make([]WordSearchRecord, 0, len(records))
	for _, record := range records {
		if IsAggregate(record.Iteration, marker) {
			aggregates = append(aggregates, record)
			continue
		}
		iterations = append(iterations, record)
	}
	return aggregates, iterations
}
