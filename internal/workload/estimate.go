package workload

import (
	"strconv"

	"github.com/alexanderramin/courseload/internal/domain"
)

// ProctoringBonusMin is added to an exam's length when it is proctored.
const ProctoringBonusMin = 15.0

// Result is the pair of weekly figures reported for a course.
type Result struct {
	TotalHoursPerWeek float64 `json:"total_hours_per_week"`
	SyncHoursPerWeek  float64 `json:"sync_hours_per_week"`
}

// Breakdown holds the unrounded per-category contributions and the rates
// they were derived from. DiscussionOtherHours is computed alongside the
// discussion figure but is not part of the total.
type Breakdown struct {
	Reading    float64 `json:"reading"`
	Writing    float64 `json:"writing"`
	Discussion float64 `json:"discussion"`
	Quizzes    float64 `json:"quizzes"`
	Exams      float64 `json:"exams"`
	Other      float64 `json:"other"`
	Media      float64 `json:"media"`
	Sync       float64 `json:"sync"`

	PagesPerHour         float64 `json:"pages_per_hour"`
	HoursPerPage         float64 `json:"hours_per_page"`
	ExamHoursEach        float64 `json:"exam_hours_each"`
	DiscussionOtherHours float64 `json:"discussion_other_hours"`
}

// Category is one named weekly contribution.
type Category struct {
	Name  string
	Hours float64
}

// Categories lists the contributions in display order.
func (b Breakdown) Categories() []Category {
	return []Category{
		{"Reading", b.Reading},
		{"Writing", b.Writing},
		{"Discussion posts", b.Discussion},
		{"Quizzes", b.Quizzes},
		{"Exams", b.Exams},
		{"Other assignments", b.Other},
		{"Videos/podcasts", b.Media},
		{"Class meetings", b.Sync},
	}
}

// Sum adds every contribution that counts toward the weekly total.
func (b Breakdown) Sum() float64 {
	return b.Reading + b.Writing + b.Quizzes + b.Exams + b.Other + b.Discussion + b.Media + b.Sync
}

// Estimate evaluates a course. It never fails: unknown labels resolve to the
// first table position and the reading rate is floored before division.
// ClassWeeks must be positive.
func Estimate(c domain.Course) (Result, Breakdown) {
	weeks := float64(c.ClassWeeks)

	var b Breakdown
	b.PagesPerHour = ResolveReadingRate(c.Reading.Difficulty, c.Reading.Purpose, c.Reading.Density, c.Reading.Override)
	b.HoursPerPage = ResolveWritingRate(c.Writing.Density, c.Writing.Drafting, c.Writing.Genre, c.Writing.Override)
	b.ExamHoursEach = ExamHours(c.Exams)

	b.Reading = ReadingHours(c.Reading.WeeklyPages, b.PagesPerHour)
	b.Writing = b.HoursPerPage * float64(c.Writing.SemesterPages) / weeks
	b.Quizzes = float64(c.Quizzes.Count) * (c.Quizzes.Minutes / 60) / weeks
	b.Exams = float64(c.Exams.Count) * b.ExamHoursEach / weeks
	b.Other = OtherHours(c.Other) / weeks
	b.Discussion, b.DiscussionOtherHours = DiscussionHours(c.Discussion)
	b.Media = c.Media.WeeklyHours
	b.Sync = SyncHours(c.Meetings)

	return Result{
		TotalHoursPerWeek: Round2(b.Sum()),
		SyncHoursPerWeek:  Round2(b.Sync),
	}, b
}

// ReadingHours converts a weekly page count to hours at the given rate.
func ReadingHours(weeklyPages int, pagesPerHour float64) float64 {
	return float64(weeklyPages) / flooredReadingRate(pagesPerHour)
}

// ExamHours returns sitting time plus study time for a single exam.
func ExamHours(e domain.ExamLoad) float64 {
	minutes := e.LengthMinutes
	if e.Proctored {
		minutes += ProctoringBonusMin
	}
	return minutes/60 + e.StudyHours
}

// OtherHours returns the semester total for other assignments. Independent
// work is excluded.
func OtherHours(o domain.OtherLoad) float64 {
	if o.Independent {
		return 0
	}
	return float64(o.Count) * o.HoursEach
}

// SyncHours returns weekly time in live meetings.
func SyncHours(m domain.MeetingLoad) float64 {
	return float64(m.SessionsPerWeek) * m.SessionHours
}

// Round2 rounds v to two decimal places. The exact binary value is
// rounded, so 2.675 (stored as 2.67499...) gives 2.67, and exact ties go to
// the even digit.
func Round2(v float64) float64 {
	r, _ := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 2, 64), 64)
	return r
}
