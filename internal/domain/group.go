package domain

// GroupByName partitions workouts into a map from exercise name to the
// entries logged under that name, preserving relative order within each
// group. An empty input yields an empty map.
func GroupByName(workouts []Workout) map[string][]Workout {
	grouped := make(map[string][]Workout)
	for _, w := range workouts {
		grouped[w.Name] = append(grouped[w.Name], w)
	}
	return grouped
}

// TypesPresent returns the distinct workout types appearing in the sequence,
// in order of first appearance.
func TypesPresent(workouts []Workout) []WorkoutType {
	seen := make(map[WorkoutType]bool)
	var types []WorkoutType
	for _, w := range workouts {
		if !seen[w.Type] {
			seen[w.Type] = true
			types = append(types, w.Type)
		}
	}
	return types
}
