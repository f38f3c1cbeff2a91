package workload

import (
	"testing"

	"github.com/alexanderramin/courseload/internal/domain"
	"github.com/stretchr/testify/assert"
)

func emptyCourse() domain.Course {
	return domain.Course{ClassWeeks: 15}
}

func TestEstimate_EmptyCourseIsZero(t *testing.T) {
	result, b := Estimate(emptyCourse())

	assert.Equal(t, 0.0, result.TotalHoursPerWeek)
	assert.Equal(t, 0.0, result.SyncHoursPerWeek)
	assert.Equal(t, 67.0, b.PagesPerHour, "index-0 categoricals resolve to the first cell")
	assert.Equal(t, 0.75, b.HoursPerPage)
}

func TestEstimate_ReadingContribution(t *testing.T) {
	c := emptyCourse()
	c.Reading = domain.ReadingLoad{
		WeeklyPages: 20,
		Density:     domain.ReadingMonograph,
		Difficulty:  domain.DifficultyNoNewConcepts,
		Purpose:     domain.PurposeSurvey,
	}

	result, b := Estimate(c)

	assert.Equal(t, 47.0, b.PagesPerHour)
	assert.InDelta(t, 20.0/47.0, b.Reading, 1e-12)
	assert.Equal(t, 0.43, result.TotalHoursPerWeek)
}

func TestEstimate_WritingAmortisedOverTerm(t *testing.T) {
	c := emptyCourse()
	c.Writing = domain.WritingLoad{
		SemesterPages: 20,
		Density:       domain.WritingDoubleSpaced,
		Drafting:      domain.DraftingMinimal,
		Genre:         domain.GenreReflection,
	}

	result, b := Estimate(c)

	assert.Equal(t, 1.0, b.HoursPerPage)
	assert.InDelta(t, 20.0/15.0, b.Writing, 1e-12)
	assert.Equal(t, 1.33, result.TotalHoursPerWeek)
}

func TestEstimate_ProctoredExam(t *testing.T) {
	c := emptyCourse()
	c.Exams = domain.ExamLoad{Count: 1, LengthMinutes: 60, StudyHours: 5, Proctored: true}

	result, b := Estimate(c)

	assert.Equal(t, 6.25, b.ExamHoursEach)
	assert.InDelta(t, 6.25/15.0, b.Exams, 1e-12)
	assert.Equal(t, 0.42, result.TotalHoursPerWeek)
}

func TestEstimate_UnproctoredExamHasNoBonus(t *testing.T) {
	assert.Equal(t, 6.0, ExamHours(domain.ExamLoad{Count: 1, LengthMinutes: 60, StudyHours: 5}))
}

func TestEstimate_TextDiscussionNotAmortised(t *testing.T) {
	c := emptyCourse()
	c.Discussion = domain.DiscussionLoad{
		Basis:        domain.BasisPostsPerWeek,
		PostsPerWeek: 10,
		Format:       domain.PostText,
		TextWords:    250,
	}

	result, b := Estimate(c)

	assert.Equal(t, 10.0, b.Discussion)
	assert.Equal(t, 10.0, result.TotalHoursPerWeek)
}

func TestEstimate_QuizContribution(t *testing.T) {
	c := emptyCourse()
	c.Quizzes = domain.QuizLoad{Count: 15, Minutes: 30}

	result, _ := Estimate(c)

	assert.Equal(t, 0.5, result.TotalHoursPerWeek)
}

func TestEstimate_IndependentOtherExcluded(t *testing.T) {
	c := emptyCourse()
	c.Other = domain.OtherLoad{Count: 3, HoursEach: 5}

	result, b := Estimate(c)
	assert.Equal(t, 1.0, b.Other)
	assert.Equal(t, 1.0, result.TotalHoursPerWeek)

	c.Other.Independent = true
	result, b = Estimate(c)
	assert.Equal(t, 0.0, b.Other)
	assert.Equal(t, 0.0, result.TotalHoursPerWeek)
}

func TestEstimate_MediaAndMeetingsPassThrough(t *testing.T) {
	c := emptyCourse()
	c.Media = domain.MediaLoad{WeeklyHours: 1.5}
	c.Meetings = domain.MeetingLoad{SessionsPerWeek: 2, SessionHours: 1.25}

	result, b := Estimate(c)

	assert.Equal(t, 1.5, b.Media)
	assert.Equal(t, 2.5, b.Sync)
	assert.Equal(t, 2.5, result.SyncHoursPerWeek)
	assert.Equal(t, 4.0, result.TotalHoursPerWeek)
}

func TestEstimate_FullCourse(t *testing.T) {
	c := domain.Course{
		ClassWeeks: 15,
		Reading: domain.ReadingLoad{
			WeeklyPages: 30,
			Density:     domain.ReadingTextbook,
			Difficulty:  domain.DifficultySomeNewConcepts,
			Purpose:     domain.PurposeLearn,
		},
		Writing: domain.WritingLoad{
			SemesterPages: 10,
			Density:       domain.WritingSingleSpaced,
			Drafting:      domain.DraftingExtensive,
			Genre:         domain.GenreResearch,
		},
		Discussion: domain.DiscussionLoad{
			Basis:        domain.BasisPostsPerWeek,
			PostsPerWeek: 2,
			Format:       domain.PostText,
			TextWords:    350,
		},
		Quizzes:  domain.QuizLoad{Count: 10, Minutes: 20},
		Exams:    domain.ExamLoad{Count: 2, LengthMinutes: 60, StudyHours: 5, Proctored: true},
		Other:    domain.OtherLoad{Count: 3, HoursEach: 4},
		Media:    domain.MediaLoad{WeeklyHours: 1.5},
		Meetings: domain.MeetingLoad{SessionsPerWeek: 1, SessionHours: 1.5},
	}

	result, b := Estimate(c)

	assert.Equal(t, 13.0, b.PagesPerHour)
	assert.Equal(t, 8.0, b.HoursPerPage)
	assert.InDelta(t, 2.8, b.Discussion, 1e-12)
	assert.InDelta(t, 15.296581, b.Sum(), 1e-6)
	assert.Equal(t, 15.3, result.TotalHoursPerWeek)
	assert.Equal(t, 1.5, result.SyncHoursPerWeek)
}

func TestBreakdown_CategoriesCoverSum(t *testing.T) {
	b := Breakdown{Reading: 1, Writing: 2, Discussion: 3, Quizzes: 4, Exams: 5, Other: 6, Media: 7, Sync: 8, DiscussionOtherHours: 100}

	var total float64
	for _, c := range b.Categories() {
		total += c.Hours
	}
	assert.Equal(t, b.Sum(), total)
	assert.Equal(t, 36.0, total, "secondary discussion figure is not counted")
	assert.Len(t, b.Categories(), 8)
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 0.43, Round2(20.0/47.0))
	assert.Equal(t, 1.33, Round2(20.0/15.0))
	assert.Equal(t, 0.42, Round2(6.25/15.0))
	assert.Equal(t, 2.0, Round2(1.999))
	assert.Equal(t, 0.0, Round2(0.004))

	// Values just below a .xx5 boundary stay below it.
	assert.Equal(t, 2.67, Round2(2.675))
	assert.Equal(t, 1.11, Round2(1.115))
	// Exact ties go to even.
	assert.Equal(t, 0.12, Round2(0.125))
	assert.Equal(t, 2.62, Round2(2.625))
	assert.Equal(t, 0.38, Round2(0.375))
}

func TestEstimate_SyncRoundsTiesToEven(t *testing.T) {
	result, _ := Estimate(domain.Course{
		ClassWeeks: 15,
		Meetings:   domain.MeetingLoad{SessionsPerWeek: 1, SessionHours: 2.625},
	})
	assert.Equal(t, 2.62, result.SyncHoursPerWeek)
	assert.Equal(t, 2.62, result.TotalHoursPerWeek)
}
