package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/courseload/internal/domain"
	"github.com/alexanderramin/courseload/internal/importer"
	"github.com/charmbracelet/huh"
)

// courseFormValues holds the form's text inputs. Numbers stay strings
// until apply so huh can validate them as they are typed.
type courseFormValues struct {
	Title string
	Weeks string

	ReadingPages      string
	ReadingDensity    string
	ReadingDifficulty string
	ReadingPurpose    string
	ReadingRate       string

	WritingPages    string
	WritingDensity  string
	WritingDrafting string
	WritingGenre    string
	WritingRate     string

	PostBasis       string
	PostCount       string
	PostFormat      string
	PostWords       string
	PostMinutes     string
	DiscussionHours string

	Quizzes       string
	QuizMinutes   string
	Exams         string
	ExamMinutes   string
	ExamStudy     string
	ExamProctored bool

	OtherCount       string
	OtherHours       string
	OtherIndependent bool
	MediaHours       string
	MeetingsPerWeek  string
	MeetingHours     string
}

func newCourseFormValues(cf *importer.CourseFile) *courseFormValues {
	v := &courseFormValues{
		Title: cf.Title,
		Weeks: strconv.Itoa(cf.ClassWeeks),

		ReadingPages:      strconv.Itoa(cf.Reading.WeeklyPages),
		ReadingDensity:    string(domain.ParseReadingDensity(cf.Reading.Density)),
		ReadingDifficulty: string(domain.ParseReadingDifficulty(cf.Reading.Difficulty)),
		ReadingPurpose:    string(domain.ParseReadingPurpose(cf.Reading.Purpose)),
		ReadingRate:       overrideText(cf.Reading.Override),

		WritingPages:    strconv.Itoa(cf.Writing.SemesterPages),
		WritingDensity:  string(domain.ParseWritingDensity(cf.Writing.Density)),
		WritingDrafting: string(domain.ParseDraftingIntensity(cf.Writing.Drafting)),
		WritingGenre:    string(domain.ParseWritingGenre(cf.Writing.Genre)),
		WritingRate:     overrideText(cf.Writing.Override),

		PostBasis:       string(domain.ParseDiscussionBasis(cf.Discussion.Basis)),
		PostFormat:      string(domain.ParsePostFormat(cf.Discussion.Format)),
		PostWords:       strconv.Itoa(cf.Discussion.TextWords),
		PostMinutes:     formatFloat(cf.Discussion.AVMinutes),
		DiscussionHours: overrideText(cf.Discussion.Override),

		Quizzes:       strconv.Itoa(cf.Quizzes.Count),
		QuizMinutes:   formatFloat(cf.Quizzes.Minutes),
		Exams:         strconv.Itoa(cf.Exams.Count),
		ExamMinutes:   formatFloat(cf.Exams.LengthMinutes),
		ExamStudy:     formatFloat(cf.Exams.StudyHours),
		ExamProctored: cf.Exams.Proctored,

		OtherCount:       strconv.Itoa(cf.Other.Count),
		OtherHours:       formatFloat(cf.Other.HoursEach),
		OtherIndependent: cf.Other.Independent,
		MediaHours:       formatFloat(cf.Media.WeeklyHours),
		MeetingsPerWeek:  strconv.Itoa(cf.Meetings.SessionsPerWeek),
		MeetingHours:     formatFloat(cf.Meetings.SessionHours),
	}
	if v.PostBasis == string(domain.BasisTotalPosts) {
		v.PostCount = strconv.Itoa(cf.Discussion.TotalPosts)
	} else {
		v.PostCount = strconv.Itoa(cf.Discussion.PostsPerWeek)
	}
	return v
}

func overrideText(o importer.OverrideFile) string {
	if !o.Manual || o.Value == nil {
		return ""
	}
	return formatFloat(*o.Value)
}

func axisOptions[T interface {
	~string
	Label() string
}](vals []T) []huh.Option[string] {
	opts := make([]huh.Option[string], len(vals))
	for i, v := range vals {
		opts[i] = huh.NewOption(v.Label(), string(v))
	}
	return opts
}

func numberInput(title string, value *string, validate func(string) error) *huh.Input {
	return huh.NewInput().
		Title(title).
		Value(value).
		Validate(validate)
}

func selectInput(title string, opts []huh.Option[string], value *string) *huh.Select[string] {
	return huh.NewSelect[string]().
		Title(title).
		Options(opts...).
		Value(value)
}

// form builds one group per workload section.
func (v *courseFormValues) form() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Course Title").Placeholder("optional").Value(&v.Title),
			numberInput("Class Weeks", &v.Weeks, validatePositiveInt),
		).Title("Course"),
		huh.NewGroup(
			numberInput("Pages Per Week", &v.ReadingPages, validateNonNegativeInt),
			selectInput("Page Density", axisOptions(domain.ReadingDensities()), &v.ReadingDensity),
			selectInput("Difficulty", axisOptions(domain.ReadingDifficulties()), &v.ReadingDifficulty),
			selectInput("Purpose", axisOptions(domain.ReadingPurposes()), &v.ReadingPurpose),
			numberInput("Manual Rate (pages/hour, blank for table)", &v.ReadingRate, validateNonNegativeFloat),
		).Title("Reading"),
		huh.NewGroup(
			numberInput("Pages Per Term", &v.WritingPages, validateNonNegativeInt),
			selectInput("Page Density", axisOptions(domain.WritingDensities()), &v.WritingDensity),
			selectInput("Drafting", axisOptions(domain.DraftingIntensities()), &v.WritingDrafting),
			selectInput("Genre", axisOptions(domain.WritingGenres()), &v.WritingGenre),
			numberInput("Extra Hours Per Page (blank for none)", &v.WritingRate, validateNonNegativeFloat),
		).Title("Writing"),
		huh.NewGroup(
			selectInput("Posts Counted As", axisOptions(domain.DiscussionBases()), &v.PostBasis),
			numberInput("Number of Posts", &v.PostCount, validateNonNegativeInt),
			selectInput("Format", axisOptions(domain.PostFormats()), &v.PostFormat),
			numberInput("Words Per Text Post", &v.PostWords, validateNonNegativeInt),
			numberInput("Minutes Per Audio/Video Post", &v.PostMinutes, validateNonNegativeFloat),
			numberInput("Manual Discussion Hours (blank for computed)", &v.DiscussionHours, validateNonNegativeFloat),
		).Title("Discussion Posts"),
		huh.NewGroup(
			numberInput("Quizzes", &v.Quizzes, validateNonNegativeInt),
			numberInput("Minutes Per Quiz", &v.QuizMinutes, validateNonNegativeFloat),
			numberInput("Exams", &v.Exams, validateNonNegativeInt),
			numberInput("Minutes Per Exam", &v.ExamMinutes, validateNonNegativeFloat),
			numberInput("Study Hours Per Exam", &v.ExamStudy, validateNonNegativeFloat),
			huh.NewConfirm().Title("Proctored?").Affirmative("Yes").Negative("No").Value(&v.ExamProctored),
		).Title("Quizzes & Exams"),
		huh.NewGroup(
			numberInput("Other Assignments", &v.OtherCount, validateNonNegativeInt),
			numberInput("Hours Each", &v.OtherHours, validateNonNegativeFloat),
			huh.NewConfirm().Title("Done Independently?").Affirmative("Yes").Negative("No").Value(&v.OtherIndependent),
			numberInput("Video/Podcast Hours Per Week", &v.MediaHours, validateNonNegativeFloat),
			numberInput("Live Sessions Per Week", &v.MeetingsPerWeek, validateNonNegativeInt),
			numberInput("Hours Per Session", &v.MeetingHours, validateNonNegativeFloat),
		).Title("Other Work"),
	).WithTheme(courseloadHuhTheme()).WithShowHelp(false)
}

// apply parses the form's values onto cf.
func (v *courseFormValues) apply(cf *importer.CourseFile) error {
	p := formParser{}

	cf.Title = strings.TrimSpace(v.Title)
	cf.ClassWeeks = p.intField("class weeks", v.Weeks)

	cf.Reading.WeeklyPages = p.intField("reading pages", v.ReadingPages)
	cf.Reading.Density = v.ReadingDensity
	cf.Reading.Difficulty = v.ReadingDifficulty
	cf.Reading.Purpose = v.ReadingPurpose
	cf.Reading.Override = p.override("reading rate", v.ReadingRate)

	cf.Writing.SemesterPages = p.intField("writing pages", v.WritingPages)
	cf.Writing.Density = v.WritingDensity
	cf.Writing.Drafting = v.WritingDrafting
	cf.Writing.Genre = v.WritingGenre
	cf.Writing.Override = p.override("writing rate", v.WritingRate)

	cf.Discussion.Basis = v.PostBasis
	posts := p.intField("number of posts", v.PostCount)
	if domain.ParseDiscussionBasis(v.PostBasis) == domain.BasisTotalPosts {
		cf.Discussion.TotalPosts = posts
	} else {
		cf.Discussion.PostsPerWeek = posts
	}
	cf.Discussion.Format = v.PostFormat
	cf.Discussion.TextWords = p.intField("words per post", v.PostWords)
	cf.Discussion.AVMinutes = p.floatField("minutes per post", v.PostMinutes)
	cf.Discussion.Override = p.override("discussion hours", v.DiscussionHours)

	cf.Quizzes.Count = p.intField("quizzes", v.Quizzes)
	cf.Quizzes.Minutes = p.floatField("minutes per quiz", v.QuizMinutes)
	cf.Exams.Count = p.intField("exams", v.Exams)
	cf.Exams.LengthMinutes = p.floatField("minutes per exam", v.ExamMinutes)
	cf.Exams.StudyHours = p.floatField("study hours", v.ExamStudy)
	cf.Exams.Proctored = v.ExamProctored

	cf.Other.Count = p.intField("other assignments", v.OtherCount)
	cf.Other.HoursEach = p.floatField("hours each", v.OtherHours)
	cf.Other.Independent = v.OtherIndependent
	cf.Media.WeeklyHours = p.floatField("video hours", v.MediaHours)
	cf.Meetings.SessionsPerWeek = p.intField("sessions per week", v.MeetingsPerWeek)
	cf.Meetings.SessionHours = p.floatField("hours per session", v.MeetingHours)

	return p.err
}

// formParser keeps the first parse error so apply reads top to bottom.
type formParser struct {
	err error
}

func (p *formParser) intField(name, s string) int {
	n, err := parseNonNegativeInt(s)
	if err != nil && p.err == nil {
		p.err = fmt.Errorf("%s: %w", name, err)
	}
	return n
}

func (p *formParser) floatField(name, s string) float64 {
	f, err := parseNonNegativeFloat(s)
	if err != nil && p.err == nil {
		p.err = fmt.Errorf("%s: %w", name, err)
	}
	return f
}

func (p *formParser) override(name, s string) importer.OverrideFile {
	if strings.TrimSpace(s) == "" {
		return importer.OverrideFile{}
	}
	f := p.floatField(name, s)
	return importer.OverrideFile{Manual: true, Value: &f}
}

// runCourseForm shows the form prefilled from cf and writes the answers back.
func runCourseForm(ctx context.Context, cf *importer.CourseFile) error {
	values := newCourseFormValues(cf)
	if err := values.form().RunWithContext(ctx); err != nil {
		return err
	}
	return values.apply(cf)
}
