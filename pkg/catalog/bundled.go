package catalog

// Bundled returns the compiled-in exercise catalog. It is always
// available, never network-dependent, and is treated as ground truth
// when a remote row collides with one of these names.
//
// Callers get a fresh copy so a consumer sorting or mutating its slice
// cannot corrupt the canonical order other consumers rely on.
func Bundled() []Exercise {
	out := make([]Exercise, len(bundled))
	copy(out, bundled)
	return out
}

var bundled = []Exercise{
	{
		ID:         "ex-push-up",
		Name:       "Push-up",
		Muscle:     "Chest",
		Equipment:  "None",
		Video:      "https://www.youtube.com/embed/IODxDxX7oi4",
		Overview:   "A bodyweight staple that builds pressing strength through the chest, shoulders and triceps.",
		Steps:      []string{"Start in a high plank with hands under shoulders.", "Lower your chest to just above the floor, elbows at roughly 45 degrees.", "Press back up to the starting position."},
		Benefits:   []string{"Upper-body pressing strength", "Core stability", "No equipment required"},
		Difficulty: DifficultyBeginner,
		Calories:   7,
	},
	{
		ID:         "ex-squat",
		Name:       "Squat",
		Muscle:     "Legs",
		Equipment:  "None",
		Video:      "https://www.youtube.com/embed/aclHkVaku9U",
		Overview:   "The foundational lower-body movement pattern, loading the quads, glutes and hamstrings.",
		Steps:      []string{"Stand with feet shoulder-width apart.", "Sit back and down until thighs are parallel to the floor.", "Drive through the heels to stand."},
		Benefits:   []string{"Lower-body strength", "Hip mobility"},
		Difficulty: DifficultyBeginner,
		Calories:   8,
	},
	{
		ID:            "ex-deadlift",
		Name:          "Deadlift",
		Muscle:        "Back",
		Equipment:     "Barbell",
		EquipmentList: []string{"Barbell"},
		Video:         "https://www.youtube.com/embed/op9kVnSso6Q",
		Overview:      "A hip hinge under load; the heaviest pull most lifters will perform.",
		Steps:         []string{"Stand with the bar over mid-foot.", "Hinge at the hips and grip the bar just outside the knees.", "Brace, then stand up by driving the hips forward.", "Return the bar under control."},
		Benefits:      []string{"Posterior chain strength", "Grip strength"},
		Difficulty:    DifficultyIntermediate,
		Calories:      10,
	},
	{
		ID:            "ex-bench-press",
		Name:          "Bench Press",
		Muscle:        "Chest",
		Equipment:     "Barbell, Bench",
		EquipmentList: []string{"Barbell", "Bench"},
		Video:         "https://www.youtube.com/embed/rT7DgCr-3pg",
		Overview:      "The benchmark horizontal press for chest, front delts and triceps.",
		Steps:         []string{"Lie on the bench with eyes under the bar.", "Unrack and lower the bar to mid-chest.", "Press to lockout."},
		Difficulty:    DifficultyIntermediate,
		Calories:      6,
	},
	{
		ID:            "ex-pull-up",
		Name:          "Pull-up",
		Muscle:        "Back",
		Equipment:     "Pull-up Bar",
		EquipmentList: []string{"Pull-up Bar"},
		Video:         "https://www.youtube.com/embed/eGo4IYlbE5g",
		Overview:      "Vertical pulling with bodyweight; lats, biceps and mid-back.",
		Steps:         []string{"Hang from the bar with an overhand grip.", "Pull your chin over the bar.", "Lower under control to a dead hang."},
		Benefits:      []string{"Upper-back strength", "Grip endurance"},
		Difficulty:    DifficultyIntermediate,
		Calories:      9,
	},
	{
		ID:         "ex-plank",
		Name:       "Plank",
		Muscle:     "Core",
		Equipment:  "None",
		Video:      "https://www.youtube.com/embed/ASdvN_XEl_c",
		Overview:   "An isometric hold training the trunk to resist extension.",
		Steps:      []string{"Support yourself on forearms and toes.", "Keep a straight line from head to heels.", "Hold while breathing steadily."},
		Difficulty: DifficultyBeginner,
		Calories:   4,
	},
	{
		ID:            "ex-overhead-press",
		Name:          "Overhead Press",
		Muscle:        "Shoulders",
		Equipment:     "Barbell",
		EquipmentList: []string{"Barbell"},
		Video:         "https://www.youtube.com/embed/2yjwXTZQDDI",
		Overview:      "Strict standing press; shoulders, triceps and a braced core.",
		Steps:         []string{"Hold the bar at the front rack.", "Press overhead until elbows lock.", "Lower back to the shoulders."},
		Difficulty:    DifficultyIntermediate,
		Calories:      6,
	},
	{
		ID:            "ex-bent-over-row",
		Name:          "Bent-over Row",
		Muscle:        "Back",
		Equipment:     "Barbell",
		EquipmentList: []string{"Barbell"},
		Video:         "https://www.youtube.com/embed/FWJR5Ve8bnQ",
		Overview:      "Horizontal pulling for lats, rhomboids and rear delts.",
		Steps:         []string{"Hinge to roughly 45 degrees with the bar hanging.", "Row the bar to the lower ribs.", "Lower under control."},
		Difficulty:    DifficultyIntermediate,
		Calories:      7,
	},
	{
		ID:            "ex-lunge",
		Name:          "Lunge",
		Muscle:        "Legs",
		Equipment:     "None",
		Video:         "https://www.youtube.com/embed/QOVaHwm-Q6U",
		Overview:      "Single-leg pattern hitting quads and glutes while challenging balance.",
		Steps:         []string{"Step forward into a split stance.", "Lower the back knee toward the floor.", "Push off the front foot to return."},
		Benefits:      []string{"Single-leg stability", "Hip flexor mobility"},
		Difficulty:    DifficultyBeginner,
		Calories:      7,
	},
	{
		ID:         "ex-burpee",
		Name:       "Burpee",
		Muscle:     "Full Body",
		Equipment:  "None",
		Video:      "https://www.youtube.com/embed/TU8QYVW0gDU",
		Overview:   "A conditioning movement combining a squat thrust, push-up and jump.",
		Steps:      []string{"Squat down and place hands on the floor.", "Kick back to a plank and perform a push-up.", "Jump the feet forward and leap upward."},
		BPM:        140,
		Difficulty: DifficultyAdvanced,
		Calories:   12,
	},
	{
		ID:         "ex-mountain-climber",
		Name:       "Mountain Climber",
		Muscle:     "Core",
		Equipment:  "None",
		Video:      "https://www.youtube.com/embed/nmwgirgXLYM",
		Overview:   "Dynamic plank variation driving the knees alternately to the chest.",
		Steps:      []string{"Start in a high plank.", "Drive one knee toward the chest.", "Switch legs rhythmically."},
		BPM:        130,
		Difficulty: DifficultyBeginner,
		Calories:   9,
	},
	{
		ID:            "ex-kettlebell-swing",
		Name:          "Kettlebell Swing",
		Muscle:        "Glutes",
		Equipment:     "Kettlebell",
		EquipmentList: []string{"Kettlebell"},
		Video:         "https://www.youtube.com/embed/YSxHifyI6s8",
		Overview:      "A ballistic hinge producing hip power and conditioning in one movement.",
		Steps:         []string{"Hinge and hike the bell back between the legs.", "Snap the hips forward to float the bell to chest height.", "Let it swing back and repeat."},
		Benefits:      []string{"Hip power", "Conditioning"},
		BPM:           120,
		Difficulty:    DifficultyIntermediate,
		Calories:      11,
	},
}
