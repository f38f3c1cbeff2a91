package cli

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/courseload/internal/app"
	"github.com/alexanderramin/courseload/internal/config"
	"github.com/alexanderramin/courseload/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

const courseFile = "../importer/testdata/course.yaml"

// testApp wires an App with real services and default config.
func testApp(t *testing.T) *App {
	t.Helper()
	cfg := config.Default()
	return &App{
		Estimator: service.NewEstimateService(),
		Rates:     service.NewRateService(),
		Config:    &cfg,
		Logger:    slog.New(slog.DiscardHandler),
		Version:   "1.2.3",
	}
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func decodeResponse(t *testing.T, out string) app.EstimateResponse {
	t.Helper()
	var resp app.EstimateResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp), out)
	return resp
}

func TestEstimateCmd_Flags(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "estimate",
		"--reading-pages", "30",
		"--reading-density", "textbook",
		"--reading-difficulty", "some_new_concepts",
		"--reading-purpose", "learn",
		"--meetings-per-week", "1",
		"--meeting-hours", "1.5",
	)
	require.NoError(t, err)

	assert.Contains(t, out, "3.81h / week")
	assert.Contains(t, out, "1.50h / week")
	assert.Contains(t, out, "13 pages/hour")
	assert.Contains(t, out, "BREAKDOWN (15 WEEKS)")
}

func TestEstimateCmd_FileAsJSON(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "estimate", "--file", courseFile, "--json")
	require.NoError(t, err)

	resp := decodeResponse(t, out)
	assert.Equal(t, "ENGL 1301", resp.Title)
	assert.Equal(t, 15, resp.ClassWeeks)
	assert.Equal(t, 15.3, resp.Result.TotalHoursPerWeek)
	assert.Equal(t, 1.5, resp.Result.SyncHoursPerWeek)
}

func TestEstimateCmd_FlagsOverrideFile(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "estimate", "-f", courseFile, "--meetings-per-week", "0", "--title", "ENGL 1302", "--json")
	require.NoError(t, err)

	resp := decodeResponse(t, out)
	assert.Equal(t, "ENGL 1302", resp.Title)
	assert.Equal(t, 0.0, resp.Result.SyncHoursPerWeek)
	assert.Equal(t, 13.8, resp.Result.TotalHoursPerWeek)
	assert.Equal(t, 13.0, resp.Breakdown.PagesPerHour, "file values without flags survive")
}

func TestEstimateCmd_ReadingRateOverride(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "estimate", "--reading-pages", "20", "--reading-rate", "40", "--json")
	require.NoError(t, err)

	resp := decodeResponse(t, out)
	assert.Equal(t, 40.0, resp.Breakdown.PagesPerHour)
	assert.Equal(t, 0.5, resp.Result.TotalHoursPerWeek)
}

func TestEstimateCmd_UnknownLabelWarning(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "estimate", "--reading-density", "broadsheet")
	require.NoError(t, err)
	assert.Contains(t, out, `reading.density: unknown value "broadsheet", using "paperback"`)
}

func TestEstimateCmd_Invalid(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "estimate", "--weeks", "0", "--quizzes", "-2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid course")
	assert.Contains(t, err.Error(), "classweeks")
	assert.Contains(t, err.Error(), "quizzes.count")
}

func TestEstimateCmd_BadOverride(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "estimate", "--writing-rate", "lots")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "writing-rate")
}

func TestEstimateCmd_MissingFile(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "estimate", "--file", "nope.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "opening course file")
}

func TestEstimateCmd_InteractiveNeedsTerminal(t *testing.T) {
	a := testApp(t)
	a.IsInteractive = func() bool { return false }

	_, err := executeCmd(t, a, "estimate", "--interactive")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "terminal")
}

func TestEstimateCmd_WritesWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "estimate.xlsx")

	out, err := executeCmd(t, testApp(t), "estimate", "--file", courseFile, "--xlsx", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote "+path)

	wb, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer wb.Close()
	total, err := wb.GetCellValue("Estimate", "B14")
	require.NoError(t, err)
	assert.Equal(t, "15.3", total)
}

func TestEstimateCmd_HelpWeeksDefaultFromConfig(t *testing.T) {
	a := testApp(t)
	a.Config.Course.DefaultWeeks = 12

	out, err := executeCmd(t, a, "estimate", "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "default from config course.default_weeks")
	assert.NotContains(t, out, "(default 15)")

	out, err = executeCmd(t, a, "estimate", "--json")
	require.NoError(t, err)
	assert.Equal(t, 12, decodeResponse(t, out).ClassWeeks)
}

func TestRatesCmd(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "rates")
	require.NoError(t, err)
	assert.Contains(t, out, "READING RATES (PAGES/HOUR)")
	assert.Contains(t, out, "Extensive Drafting")

	out, err = executeCmd(t, testApp(t), "rates", "--json")
	require.NoError(t, err)
	var tables map[string]struct {
		Values [][][]float64 `json:"values"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &tables))
	assert.Equal(t, 5.0, tables["reading"].Values[2][2][2])
}

func TestRootCmd_Version(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "1.2.3")
}

func TestRootCmd_LoadsConfigWhenUnset(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("COURSELOAD_COURSE_DEFAULT_WEEKS", "8")

	a := &App{}
	out, err := executeCmd(t, a, "estimate", "--json")
	require.NoError(t, err)
	require.NoError(t, a.Close())

	assert.Equal(t, 8, decodeResponse(t, out).ClassWeeks)
	assert.NotNil(t, a.Logger)
	assert.NotNil(t, a.Rates)
}

func TestRootCmd_VerboseLogsUseCase(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	logPath := filepath.Join(t.TempDir(), "courseload.log")
	t.Setenv("COURSELOAD_LOG_FILE", logPath)
	t.Setenv("COURSELOAD_LOG_LEVEL", "debug")

	a := &App{}
	_, err := executeCmd(t, a, "estimate", "--weeks", "10")
	require.NoError(t, err)
	require.NoError(t, a.Close())

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "service_use_case")
	assert.Contains(t, string(data), "use_case=estimate")
}
