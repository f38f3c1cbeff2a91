package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/courseload/internal/domain"
	"github.com/alexanderramin/courseload/internal/importer"
	"github.com/spf13/pflag"
)

// overrideFlag turns on a manual rate when set. An unset flag leaves the
// override untouched so a value loaded from a course file survives.
type overrideFlag struct {
	o *importer.OverrideFile
}

func (f overrideFlag) String() string {
	if f.o == nil || !f.o.Manual || f.o.Value == nil {
		return ""
	}
	return strconv.FormatFloat(*f.o.Value, 'f', -1, 64)
}

func (f overrideFlag) Set(s string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return fmt.Errorf("not a number: %q", s)
	}
	f.o.Manual = true
	f.o.Value = &v
	return nil
}

func (overrideFlag) Type() string { return "float" }

func choices[T ~string](vals []T) string {
	keys := make([]string, len(vals))
	for i, v := range vals {
		keys[i] = string(v)
	}
	return strings.Join(keys, "|")
}

// bindCourseFlags registers one flag per course field on fs, bound to cf.
// Each flag's default is cf's current value.
func bindCourseFlags(fs *pflag.FlagSet, cf *importer.CourseFile) {
	fs.StringVar(&cf.Title, "title", cf.Title, "Course title shown in the report")
	fs.IntVar(&cf.ClassWeeks, "weeks", cf.ClassWeeks, "Number of class weeks in the term (default from config course.default_weeks)")

	r := &cf.Reading
	fs.IntVar(&r.WeeklyPages, "reading-pages", r.WeeklyPages, "Pages of reading per week")
	fs.StringVar(&r.Density, "reading-density", r.Density, "Page density: "+choices(domain.ReadingDensities()))
	fs.StringVar(&r.Difficulty, "reading-difficulty", r.Difficulty, "Difficulty: "+choices(domain.ReadingDifficulties()))
	fs.StringVar(&r.Purpose, "reading-purpose", r.Purpose, "Purpose: "+choices(domain.ReadingPurposes()))
	fs.Var(overrideFlag{&r.Override}, "reading-rate", "Manual reading rate in pages/hour (replaces the table value)")

	w := &cf.Writing
	fs.IntVar(&w.SemesterPages, "writing-pages", w.SemesterPages, "Pages of writing per term")
	fs.StringVar(&w.Density, "writing-density", w.Density, "Page density: "+choices(domain.WritingDensities()))
	fs.StringVar(&w.Drafting, "writing-drafting", w.Drafting, "Drafting: "+choices(domain.DraftingIntensities()))
	fs.StringVar(&w.Genre, "writing-genre", w.Genre, "Genre: "+choices(domain.WritingGenres()))
	fs.Var(overrideFlag{&w.Override}, "writing-rate", "Extra hours per page (added to the table value)")

	d := &cf.Discussion
	fs.StringVar(&d.Basis, "posts-basis", d.Basis, "How posts are counted: "+choices(domain.DiscussionBases()))
	fs.IntVar(&d.PostsPerWeek, "posts-per-week", d.PostsPerWeek, "Discussion posts per week")
	fs.IntVar(&d.TotalPosts, "posts-total", d.TotalPosts, "Discussion posts per term")
	fs.StringVar(&d.Format, "post-format", d.Format, "Post format: "+choices(domain.PostFormats()))
	fs.IntVar(&d.TextWords, "post-words", d.TextWords, "Words per text post")
	fs.Float64Var(&d.AVMinutes, "post-minutes", d.AVMinutes, "Minutes per audio/video post")
	fs.Var(overrideFlag{&d.Override}, "discussion-hours", "Manual discussion hours (replaces the computed value)")

	fs.IntVar(&cf.Quizzes.Count, "quizzes", cf.Quizzes.Count, "Quizzes per term")
	fs.Float64Var(&cf.Quizzes.Minutes, "quiz-minutes", cf.Quizzes.Minutes, "Minutes per quiz")

	e := &cf.Exams
	fs.IntVar(&e.Count, "exams", e.Count, "Exams per term")
	fs.Float64Var(&e.LengthMinutes, "exam-minutes", e.LengthMinutes, "Minutes per exam")
	fs.Float64Var(&e.StudyHours, "exam-study-hours", e.StudyHours, "Study hours per exam")
	fs.BoolVar(&e.Proctored, "exam-proctored", e.Proctored, "Exams are proctored")

	o := &cf.Other
	fs.IntVar(&o.Count, "other-count", o.Count, "Other assignments per term")
	fs.Float64Var(&o.HoursEach, "other-hours", o.HoursEach, "Hours per other assignment")
	fs.BoolVar(&o.Independent, "other-independent", o.Independent, "Other assignments are done independently (excluded from the total)")

	fs.Float64Var(&cf.Media.WeeklyHours, "media-hours", cf.Media.WeeklyHours, "Hours of video/podcasts per week")

	m := &cf.Meetings
	fs.IntVar(&m.SessionsPerWeek, "meetings-per-week", m.SessionsPerWeek, "Live class sessions per week")
	fs.Float64Var(&m.SessionHours, "meeting-hours", m.SessionHours, "Hours per live session")
}

// applyChangedFlags copies every course flag the user set on src onto cf,
// leaving fields with unset flags as they are.
func applyChangedFlags(src *pflag.FlagSet, cf *importer.CourseFile) error {
	overlay := pflag.NewFlagSet("course", pflag.ContinueOnError)
	bindCourseFlags(overlay, cf)

	var err error
	src.Visit(func(f *pflag.Flag) {
		if err != nil || overlay.Lookup(f.Name) == nil {
			return
		}
		if setErr := overlay.Set(f.Name, f.Value.String()); setErr != nil {
			err = fmt.Errorf("--%s: %w", f.Name, setErr)
		}
	})
	return err
}
