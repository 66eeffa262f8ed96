package document

import (
	"testing"

	"github.com/jonathan/resume-curator/internal/sections"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTemplate(t *testing.T) {
	tests := []struct {
		input   string
		want    Template
		wantErr bool
	}{
		{"single-column", SingleColumn, false},
		{"Bengt", SingleColumn, false},
		{"two-column", TwoColumn, false},
		{" deedy ", TwoColumn, false},
		{"three-column", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseTemplate(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTwoColumn_FitsWithoutTrimming(t *testing.T) {
	// Left: four education entries at 2 lines each. Right: two experiences at 10 lines each.
	education := []*sections.Education{newEducation(t), newEducation(t), newEducation(t), newEducation(t)}
	experiences := []*sections.Experience{newExperience(t, "A", "2020", 9), newExperience(t, "B", "2019", 9)}

	l, err := LayoutFor(TwoColumn)
	require.NoError(t, err)
	d, err := NewWithBudget(Content{
		Header:      newHeader(t),
		Experiences: experiences,
		Education:   education,
		Skills:      emptySkills(),
	}, l, 25)
	require.NoError(t, err)

	assert.Equal(t, 22, d.LineLength())
	assert.True(t, d.Fits())

	report := d.Optimize()
	assert.False(t, report.Changed())
	assert.Equal(t, 22, d.LineLength())

	status := d.Status()
	assert.Equal(t, 8, status.LeftColumn)
	assert.Equal(t, 20, status.RightColumn)
	assert.Equal(t, TwoColumn, status.Template)
}

func TestTwoColumn_TallerColumnDominates(t *testing.T) {
	l, err := LayoutFor(TwoColumn)
	require.NoError(t, err)

	content := Content{
		Header:    newHeader(t),
		Education: []*sections.Education{newEducation(t), newEducation(t), newEducation(t)},
		Projects:  []*sections.Project{newProject(t, "P", 10)},
		Skills:    emptySkills(),
	}
	assert.Equal(t, 2+6, l.TotalCost(&content))

	single, err := LayoutFor(SingleColumn)
	require.NoError(t, err)
	assert.Equal(t, 2+6+2, single.TotalCost(&content))
}

func TestTwoColumn_OptimizeTrimsTallerRightColumn(t *testing.T) {
	// Left: two education entries, 4 lines. Right: two 6-line experiences and
	// projects costing 3 and 2 lines, 17 lines. Total 2 + 17 = 19 against 12.
	l, err := LayoutFor(TwoColumn)
	require.NoError(t, err)
	d, err := NewWithBudget(Content{
		Header:      newHeader(t),
		Experiences: []*sections.Experience{newExperience(t, "A", "2021", 5), newExperience(t, "B", "2020", 5)},
		Education:   []*sections.Education{newEducation(t), newEducation(t)},
		Projects:    []*sections.Project{newProject(t, "Long", 160), newProject(t, "Short", 20)},
		Skills:      emptySkills(),
	}, l, 12)
	require.NoError(t, err)
	require.Equal(t, 19, d.LineLength())

	report := d.Optimize()

	assert.Equal(t, []string{"Long"}, report.ProjectsTruncated)
	assert.Equal(t, []string{"Short", "Long"}, report.ProjectsDropped)
	assert.Equal(t, 2, report.BulletsRemoved)

	status := d.Status()
	assert.Equal(t, "fitted", status.State)
	assert.True(t, status.Fits)
	assert.Equal(t, 0, status.Shortfall)
	assert.Equal(t, 4, status.LeftColumn)
	assert.Equal(t, 10, status.RightColumn)
	assert.Equal(t, 2+max(status.LeftColumn, status.RightColumn), status.LineLength)
	assert.LessOrEqual(t, status.LineLength, d.Budget())

	exps := d.Content().Experiences
	assert.Len(t, exps[0].Bullets(), 3, "first ranked experience absorbs the overflow")
	assert.Len(t, exps[1].Bullets(), 5)
}

func TestTwoColumn_OptimizeCannotShrinkTallerLeftColumn(t *testing.T) {
	// Left: four education entries, 8 lines, never trimmed. Right: a 4-line
	// experience and a 2-line project. Total 2 + 8 = 10 against 9.
	l, err := LayoutFor(TwoColumn)
	require.NoError(t, err)
	d, err := NewWithBudget(Content{
		Header:      newHeader(t),
		Experiences: []*sections.Experience{newExperience(t, "A", "2021", 3)},
		Education:   []*sections.Education{newEducation(t), newEducation(t), newEducation(t), newEducation(t)},
		Projects:    []*sections.Project{newProject(t, "P", 10)},
		Skills:      emptySkills(),
	}, l, 9)
	require.NoError(t, err)
	require.Equal(t, 10, d.LineLength())

	report := d.Optimize()

	assert.Empty(t, report.ProjectsTruncated)
	assert.Equal(t, []string{"P"}, report.ProjectsDropped)
	assert.Equal(t, 1, report.BulletsRemoved)

	status := d.Status()
	assert.Equal(t, "fitted", status.State)
	assert.False(t, status.Fits)
	assert.Equal(t, 10, status.LineLength)
	assert.Equal(t, 1, status.Shortfall)
	assert.Equal(t, 8, status.LeftColumn)
	assert.Equal(t, 3, status.RightColumn)
	assert.Len(t, d.Content().Education, 4)
}
