package domain

type ReadingDensity string

const (
	ReadingPaperback ReadingDensity = "paperback"
	ReadingMonograph ReadingDensity = "monograph"
	ReadingTextbook  ReadingDensity = "textbook"
)

type ReadingDifficulty string

const (
	DifficultyNoNewConcepts   ReadingDifficulty = "no_new_concepts"
	DifficultySomeNewConcepts ReadingDifficulty = "some_new_concepts"
	DifficultyManyNewConcepts ReadingDifficulty = "many_new_concepts"
)

type ReadingPurpose string

const (
	PurposeSurvey ReadingPurpose = "survey"
	PurposeLearn  ReadingPurpose = "learn"
	PurposeEngage ReadingPurpose = "engage"
)

type WritingDensity string

const (
	WritingDoubleSpaced WritingDensity = "double_spaced"
	WritingSingleSpaced WritingDensity = "single_spaced"
)

type DraftingIntensity string

const (
	DraftingNone      DraftingIntensity = "none"
	DraftingMinimal   DraftingIntensity = "minimal"
	DraftingExtensive DraftingIntensity = "extensive"
)

type WritingGenre string

const (
	GenreReflection WritingGenre = "reflection"
	GenreArgument   WritingGenre = "argument"
	GenreResearch   WritingGenre = "research"
)

type PostFormat string

const (
	PostText       PostFormat = "text"
	PostAudioVideo PostFormat = "audio_video"
)

// DiscussionBasis selects whether the post count is a semester total or a
// weekly count.
type DiscussionBasis string

const (
	BasisTotalPosts   DiscussionBasis = "total_posts"
	BasisPostsPerWeek DiscussionBasis = "posts_per_week"
)

var (
	readingDensityAxis = newAxis(
		[]ReadingDensity{ReadingPaperback, ReadingMonograph, ReadingTextbook},
		[]string{"450 Words (Paperback)", "600 Words (Monograph)", "750 Words (Textbook)"},
	)
	readingDifficultyAxis = newAxis(
		[]ReadingDifficulty{DifficultyNoNewConcepts, DifficultySomeNewConcepts, DifficultyManyNewConcepts},
		[]string{"No New Concepts", "Some New Concepts", "Many New Concepts"},
	)
	readingPurposeAxis = newAxis(
		[]ReadingPurpose{PurposeSurvey, PurposeLearn, PurposeEngage},
		[]string{"Survey", "Learn", "Engage"},
	)
	writingDensityAxis = newAxis(
		[]WritingDensity{WritingDoubleSpaced, WritingSingleSpaced},
		[]string{"250 Words (D-Spaced)", "500 Words (S-Spaced)"},
	)
	draftingAxis = newAxis(
		[]DraftingIntensity{DraftingNone, DraftingMinimal, DraftingExtensive},
		[]string{"No Drafting", "Minimal Drafting", "Extensive Drafting"},
	)
	genreAxis = newAxis(
		[]WritingGenre{GenreReflection, GenreArgument, GenreResearch},
		[]string{"Reflection/Narrative", "Argument", "Research"},
	)
	postFormatAxis = newAxis(
		[]PostFormat{PostText, PostAudioVideo},
		[]string{"Text", "Audio/Video"},
	)
	discussionBasisAxis = newAxis(
		[]DiscussionBasis{BasisTotalPosts, BasisPostsPerWeek},
		[]string{"Total Posts (Semester)", "Posts Per Week"},
	)
)

func (d ReadingDensity) Index() int    { return readingDensityAxis.index(d) }
func (d ReadingDensity) Label() string { return readingDensityAxis.label(d) }

func (d ReadingDifficulty) Index() int    { return readingDifficultyAxis.index(d) }
func (d ReadingDifficulty) Label() string { return readingDifficultyAxis.label(d) }

func (p ReadingPurpose) Index() int    { return readingPurposeAxis.index(p) }
func (p ReadingPurpose) Label() string { return readingPurposeAxis.label(p) }

func (d WritingDensity) Index() int    { return writingDensityAxis.index(d) }
func (d WritingDensity) Label() string { return writingDensityAxis.label(d) }

func (d DraftingIntensity) Index() int    { return draftingAxis.index(d) }
func (d DraftingIntensity) Label() string { return draftingAxis.label(d) }

func (g WritingGenre) Index() int    { return genreAxis.index(g) }
func (g WritingGenre) Label() string { return genreAxis.label(g) }

func (f PostFormat) Index() int    { return postFormatAxis.index(f) }
func (f PostFormat) Label() string { return postFormatAxis.label(f) }

func (b DiscussionBasis) Index() int    { return discussionBasisAxis.index(b) }
func (b DiscussionBasis) Label() string { return discussionBasisAxis.label(b) }

// ParseReadingDensity accepts a key ("monograph") or a display label
// ("600 Words (Monograph)"). Anything else yields the first value.
func ParseReadingDensity(s string) ReadingDensity       { return readingDensityAxis.parse(s) }
func ParseReadingDifficulty(s string) ReadingDifficulty { return readingDifficultyAxis.parse(s) }
func ParseReadingPurpose(s string) ReadingPurpose       { return readingPurposeAxis.parse(s) }
func ParseWritingDensity(s string) WritingDensity       { return writingDensityAxis.parse(s) }
func ParseDraftingIntensity(s string) DraftingIntensity { return draftingAxis.parse(s) }
func ParseWritingGenre(s string) WritingGenre           { return genreAxis.parse(s) }
func ParsePostFormat(s string) PostFormat               { return postFormatAxis.parse(s) }
func ParseDiscussionBasis(s string) DiscussionBasis     { return discussionBasisAxis.parse(s) }

// KnownReadingDensity reports whether s names a value on the axis, either by
// key or by display label.
func KnownReadingDensity(s string) bool    { return readingDensityAxis.known(s) }
func KnownReadingDifficulty(s string) bool { return readingDifficultyAxis.known(s) }
func KnownReadingPurpose(s string) bool    { return readingPurposeAxis.known(s) }
func KnownWritingDensity(s string) bool    { return writingDensityAxis.known(s) }
func KnownDraftingIntensity(s string) bool { return draftingAxis.known(s) }
func KnownWritingGenre(s string) bool      { return genreAxis.known(s) }
func KnownPostFormat(s string) bool        { return postFormatAxis.known(s) }
func KnownDiscussionBasis(s string) bool   { return discussionBasisAxis.known(s) }

// ReadingDensities returns the axis values in table order.
func ReadingDensities() []ReadingDensity       { return readingDensityAxis.values() }
func ReadingDifficulties() []ReadingDifficulty { return readingDifficultyAxis.values() }
func ReadingPurposes() []ReadingPurpose        { return readingPurposeAxis.values() }
func WritingDensities() []WritingDensity       { return writingDensityAxis.values() }
func DraftingIntensities() []DraftingIntensity { return draftingAxis.values() }
func WritingGenres() []WritingGenre            { return genreAxis.values() }
func PostFormats() []PostFormat                { return postFormatAxis.values() }
func DiscussionBases() []DiscussionBasis       { return discussionBasisAxis.values() }
