package importer

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/courseload/internal/domain"
)

// Convert maps a course file onto the domain model. Categorical labels are
// parsed leniently; an unrecognised label becomes the axis's first value.
// Call ValidateCourseFile first; Convert assumes the numbers are valid.
func Convert(cf *CourseFile) domain.Course {
	return domain.Course{
		ClassWeeks: cf.ClassWeeks,
		Reading: domain.ReadingLoad{
			WeeklyPages: cf.Reading.WeeklyPages,
			Density:     domain.ParseReadingDensity(cf.Reading.Density),
			Difficulty:  domain.ParseReadingDifficulty(cf.Reading.Difficulty),
			Purpose:     domain.ParseReadingPurpose(cf.Reading.Purpose),
			Override:    convertOverride(cf.Reading.Override),
		},
		Writing: domain.WritingLoad{
			SemesterPages: cf.Writing.SemesterPages,
			Density:       domain.ParseWritingDensity(cf.Writing.Density),
			Drafting:      domain.ParseDraftingIntensity(cf.Writing.Drafting),
			Genre:         domain.ParseWritingGenre(cf.Writing.Genre),
			Override:      convertOverride(cf.Writing.Override),
		},
		Discussion: domain.DiscussionLoad{
			Basis:        domain.ParseDiscussionBasis(cf.Discussion.Basis),
			PostsPerWeek: cf.Discussion.PostsPerWeek,
			TotalPosts:   cf.Discussion.TotalPosts,
			Format:       domain.ParsePostFormat(cf.Discussion.Format),
			TextWords:    cf.Discussion.TextWords,
			AVMinutes:    cf.Discussion.AVMinutes,
			Override:     convertOverride(cf.Discussion.Override),
		},
		Quizzes: domain.QuizLoad{
			Count:   cf.Quizzes.Count,
			Minutes: cf.Quizzes.Minutes,
		},
		Exams: domain.ExamLoad{
			Count:         cf.Exams.Count,
			LengthMinutes: cf.Exams.LengthMinutes,
			StudyHours:    cf.Exams.StudyHours,
			Proctored:     cf.Exams.Proctored,
		},
		Other: domain.OtherLoad{
			Count:       cf.Other.Count,
			HoursEach:   cf.Other.HoursEach,
			Independent: cf.Other.Independent,
		},
		Media: domain.MediaLoad{WeeklyHours: cf.Media.WeeklyHours},
		Meetings: domain.MeetingLoad{
			SessionsPerWeek: cf.Meetings.SessionsPerWeek,
			SessionHours:    cf.Meetings.SessionHours,
		},
	}
}

func convertOverride(o OverrideFile) domain.Override {
	out := domain.Override{Manual: o.Manual}
	if o.Value != nil {
		v := *o.Value
		out.Value = &v
	}
	return out
}

// UnknownLabels lists categorical values that will fall back to the axis
// default. Blank values are not reported.
func UnknownLabels(cf *CourseFile) []string {
	checks := []struct {
		field string
		value string
		known func(string) bool
		label func(string) string
	}{
		{"reading.density", cf.Reading.Density, domain.KnownReadingDensity, func(s string) string { return string(domain.ParseReadingDensity(s)) }},
		{"reading.difficulty", cf.Reading.Difficulty, domain.KnownReadingDifficulty, func(s string) string { return string(domain.ParseReadingDifficulty(s)) }},
		{"reading.purpose", cf.Reading.Purpose, domain.KnownReadingPurpose, func(s string) string { return string(domain.ParseReadingPurpose(s)) }},
		{"writing.density", cf.Writing.Density, domain.KnownWritingDensity, func(s string) string { return string(domain.ParseWritingDensity(s)) }},
		{"writing.drafting", cf.Writing.Drafting, domain.KnownDraftingIntensity, func(s string) string { return string(domain.ParseDraftingIntensity(s)) }},
		{"writing.genre", cf.Writing.Genre, domain.KnownWritingGenre, func(s string) string { return string(domain.ParseWritingGenre(s)) }},
		{"discussion.basis", cf.Discussion.Basis, domain.KnownDiscussionBasis, func(s string) string { return string(domain.ParseDiscussionBasis(s)) }},
		{"discussion.format", cf.Discussion.Format, domain.KnownPostFormat, func(s string) string { return string(domain.ParsePostFormat(s)) }},
	}

	var warnings []string
	for _, c := range checks {
		if strings.TrimSpace(c.value) == "" || c.known(c.value) {
			continue
		}
		warnings = append(warnings, fmt.Sprintf("%s: unknown value %q, using %q", c.field, c.value, c.label(c.value)))
	}
	return warnings
}
