package domain

// Course is the full input bundle for one workload evaluation. Counts and
// durations are expected to be non-negative and ClassWeeks positive; callers
// enforce that before evaluating.
type Course struct {
	ClassWeeks int

	Reading    ReadingLoad
	Writing    WritingLoad
	Discussion DiscussionLoad
	Quizzes    QuizLoad
	Exams      ExamLoad
	Other      OtherLoad
	Media      MediaLoad
	Meetings   MeetingLoad
}

// Override is a manually supplied rate. It applies only when Manual is set;
// a nil Value falls back to the category's default.
type Override struct {
	Manual bool
	Value  *float64
}

// ReadingLoad is already weekly.
type ReadingLoad struct {
	WeeklyPages int
	Density     ReadingDensity
	Difficulty  ReadingDifficulty
	Purpose     ReadingPurpose
	Override    Override
}

// WritingLoad is a semester total.
type WritingLoad struct {
	SemesterPages int
	Density       WritingDensity
	Drafting      DraftingIntensity
	Genre         WritingGenre
	Override      Override
}

type DiscussionLoad struct {
	Basis        DiscussionBasis
	PostsPerWeek int
	TotalPosts   int
	Format       PostFormat
	TextWords    int
	AVMinutes    float64
	Override     Override
}

// PostCount returns the post count selected by Basis. An unrecognised basis
// resolves like any other axis miss, to the first value (total posts).
func (d DiscussionLoad) PostCount() int {
	if d.Basis.Index() == BasisTotalPosts.Index() {
		return d.TotalPosts
	}
	return d.PostsPerWeek
}

type QuizLoad struct {
	Count   int
	Minutes float64
}

type ExamLoad struct {
	Count         int
	LengthMinutes float64
	StudyHours    float64
	Proctored     bool
}

type OtherLoad struct {
	Count       int
	HoursEach   float64
	Independent bool
}

// MediaLoad covers assigned videos and podcasts.
type MediaLoad struct {
	WeeklyHours float64
}

// MeetingLoad covers synchronous class meetings.
type MeetingLoad struct {
	SessionsPerWeek int
	SessionHours    float64
}
