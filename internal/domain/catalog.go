package domain

// exerciseCatalog maps each workout type to its fixed, ordered list of
// exercise names. The first name per type is the form default in the UI.
var exerciseCatalog = map[WorkoutType][]string{
	TypeBack: {
		"Deadlift",
		"Lat Pulldown",
		"Barbell Row",
		"Seated Cable Row",
		"Pull Up",
	},
	TypeBiceps: {
		"Barbell Curl",
		"Dumbbell Curl",
		"Hammer Curl",
		"Preacher Curl",
	},
	TypeChest: {
		"Bench Press",
		"Incline Dumbbell Press",
		"Cable Fly",
		"Chest Dip",
	},
	TypeLegs: {
		"Squat",
		"Leg Press",
		"Romanian Deadlift",
		"Leg Extension",
		"Leg Curl",
		"Calf Raise",
	},
	TypeShoulder: {
		"Overhead Press",
		"Lateral Raise",
		"Front Raise",
		"Rear Delt Fly",
		"Shrug",
	},
	TypeTriceps: {
		"Close Grip Bench Press",
		"Triceps Pushdown",
		"Skull Crusher",
		"Overhead Triceps Extension",
	},
}

// CatalogForType returns the fixed ordered exercise names for a workout type.
// Unknown types yield an empty list, not an error.
func CatalogForType(t WorkoutType) []string {
	names, ok := exerciseCatalog[t]
	if !ok {
		return nil
	}
	out := make([]string, len(names))
	copy(out, names)
	return out
}

// InCatalog reports whether name is a known exercise for the given type.
func InCatalog(t WorkoutType, name string) bool {
	for _, n := range exerciseCatalog[t] {
		if n == name {
			return true
		}
	}
	return false
}
