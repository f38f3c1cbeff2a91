package importer

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alexanderramin/courseload/internal/domain"
	"gopkg.in/yaml.v3"
)

// CourseFile is the on-disk and over-the-wire shape of a course. YAML and
// JSON share the same field names.
type CourseFile struct {
	Title      string         `json:"title,omitempty" yaml:"title,omitempty"`
	ClassWeeks int            `json:"classweeks" yaml:"classweeks" validate:"gt=0"`
	Reading    ReadingFile    `json:"reading" yaml:"reading"`
	Writing    WritingFile    `json:"writing" yaml:"writing"`
	Discussion DiscussionFile `json:"discussion" yaml:"discussion"`
	Quizzes    QuizFile       `json:"quizzes" yaml:"quizzes"`
	Exams      ExamFile       `json:"exams" yaml:"exams"`
	Other      OtherFile      `json:"other" yaml:"other"`
	Media      MediaFile      `json:"media" yaml:"media"`
	Meetings   MeetingFile    `json:"meetings" yaml:"meetings"`
}

// OverrideFile turns on a manual rate. Value may be omitted.
type OverrideFile struct {
	Manual bool     `json:"manual" yaml:"manual"`
	Value  *float64 `json:"value,omitempty" yaml:"value,omitempty" validate:"omitempty,gte=0"`
}

type ReadingFile struct {
	WeeklyPages int          `json:"weekly_pages" yaml:"weekly_pages" validate:"gte=0"`
	Density     string       `json:"density" yaml:"density"`
	Difficulty  string       `json:"difficulty" yaml:"difficulty"`
	Purpose     string       `json:"purpose" yaml:"purpose"`
	Override    OverrideFile `json:"override" yaml:"override"`
}

type WritingFile struct {
	SemesterPages int          `json:"semester_pages" yaml:"semester_pages" validate:"gte=0"`
	Density       string       `json:"density" yaml:"density"`
	Drafting      string       `json:"drafting" yaml:"drafting"`
	Genre         string       `json:"genre" yaml:"genre"`
	Override      OverrideFile `json:"override" yaml:"override"`
}

type DiscussionFile struct {
	Basis        string       `json:"basis" yaml:"basis"`
	PostsPerWeek int          `json:"posts_per_week" yaml:"posts_per_week" validate:"gte=0"`
	TotalPosts   int          `json:"total_posts" yaml:"total_posts" validate:"gte=0"`
	Format       string       `json:"format" yaml:"format"`
	TextWords    int          `json:"text_words" yaml:"text_words" validate:"gte=0"`
	AVMinutes    float64      `json:"av_minutes" yaml:"av_minutes" validate:"gte=0"`
	Override     OverrideFile `json:"override" yaml:"override"`
}

type QuizFile struct {
	Count   int     `json:"count" yaml:"count" validate:"gte=0"`
	Minutes float64 `json:"minutes" yaml:"minutes" validate:"gte=0"`
}

type ExamFile struct {
	Count         int     `json:"count" yaml:"count" validate:"gte=0"`
	LengthMinutes float64 `json:"length_minutes" yaml:"length_minutes" validate:"gte=0"`
	StudyHours    float64 `json:"study_hours" yaml:"study_hours" validate:"gte=0"`
	Proctored     bool    `json:"proctored" yaml:"proctored"`
}

type OtherFile struct {
	Count       int     `json:"count" yaml:"count" validate:"gte=0"`
	HoursEach   float64 `json:"hours_each" yaml:"hours_each" validate:"gte=0"`
	Independent bool    `json:"independent" yaml:"independent"`
}

type MediaFile struct {
	WeeklyHours float64 `json:"weekly_hours" yaml:"weekly_hours" validate:"gte=0"`
}

type MeetingFile struct {
	SessionsPerWeek int     `json:"sessions_per_week" yaml:"sessions_per_week" validate:"gte=0"`
	SessionHours    float64 `json:"session_hours" yaml:"session_hours" validate:"gte=0"`
}

// NewCourseFile returns a course with the estimator form's starting values:
// first label on every axis, posts counted per week, 350-word text posts,
// 20-minute quizzes and 60-minute exams with 5 study hours each.
func NewCourseFile(classWeeks int) CourseFile {
	return CourseFile{
		ClassWeeks: classWeeks,
		Reading: ReadingFile{
			Density:    string(domain.ReadingPaperback),
			Difficulty: string(domain.DifficultyNoNewConcepts),
			Purpose:    string(domain.PurposeSurvey),
		},
		Writing: WritingFile{
			Density:  string(domain.WritingDoubleSpaced),
			Drafting: string(domain.DraftingNone),
			Genre:    string(domain.GenreReflection),
		},
		Discussion: DiscussionFile{
			Basis:     string(domain.BasisPostsPerWeek),
			Format:    string(domain.PostText),
			TextWords: 350,
		},
		Quizzes: QuizFile{Minutes: 20},
		Exams:   ExamFile{LengthMinutes: 60, StudyHours: 5},
	}
}

// DecodeCourseFile decodes YAML or JSON from r over cf. Fields absent from
// the document keep their current values. Unknown fields are rejected.
func DecodeCourseFile(r io.Reader, cf *CourseFile) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cf); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("parsing course file: %w", err)
	}
	return nil
}

// LoadCourseFile reads a course file from disk over cf.
func LoadCourseFile(path string, cf *CourseFile) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening course file: %w", err)
	}
	defer f.Close()
	return DecodeCourseFile(f, cf)
}
