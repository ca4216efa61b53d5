package analyzer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"resume-analyzer-go/internal/types"
)

func TestCalculateScoreBounds(t *testing.T) {
	score := CalculateScore("", nil, types.ExperienceInfo{}, types.EducationInfo{})
	assert.Equal(t, 0, score, "空文本的得分应为0")

	rich := "John Smith\njohn@example.com\n0412 345 678\nMelbourne, VIC\n\nSummary\nSenior engineer.\n\nExperience\nwork history\n" +
		strings.Repeat("word ", 450)
	skills := []string{"Python", "Java", "React", "Docker", "AWS", "SQL", "Git", "Linux", "Redis", "Kafka"}
	exp := types.ExperienceInfo{Years: 8, JobTitles: []string{"Senior Engineer"}, Level: types.LevelSenior}
	edu := types.EducationInfo{HighestDegree: "PhD"}
	score = CalculateScore(rich, skills, exp, edu)
	assert.Equal(t, 100, score, "完整简历的得分应封顶在100")
}

func TestCalculateScoreContactSignals(t *testing.T) {
	base := CalculateScore("plain words only", nil, types.ExperienceInfo{}, types.EducationInfo{})
	withEmail := CalculateScore("plain words only test@example.com", nil, types.ExperienceInfo{}, types.EducationInfo{})
	assert.Equal(t, base+8, withEmail, "出现邮箱形状应加8分")

	withPhone := CalculateScore("plain words only 0412 345 678", nil, types.ExperienceInfo{}, types.EducationInfo{})
	assert.Equal(t, base+8, withPhone, "出现电话形状应加8分")
}

func TestSkillCountBonusTiers(t *testing.T) {
	// 学生档位更宽松
	assert.Equal(t, 25, skillCountBonus(5, types.LevelStudent))
	assert.Equal(t, 20, skillCountBonus(3, types.LevelStudent))
	assert.Equal(t, 15, skillCountBonus(1, types.LevelStudent))
	assert.Equal(t, 0, skillCountBonus(0, types.LevelStudent))

	assert.Equal(t, 25, skillCountBonus(10, types.LevelMid))
	assert.Equal(t, 20, skillCountBonus(5, types.LevelMid))
	assert.Equal(t, 15, skillCountBonus(2, types.LevelMid))
	assert.Equal(t, 0, skillCountBonus(1, types.LevelMid), "非学生1项技能不加分")
}

func TestExperienceBonusTiers(t *testing.T) {
	student := types.ExperienceInfo{Level: types.LevelStudent, JobTitles: []string{"Volunteer"}, Years: 1}
	assert.Equal(t, 20, experienceBonus(student), "学生头衔15分加年限5分")

	senior := types.ExperienceInfo{Level: types.LevelSenior, Years: 6, JobTitles: []string{"Lead"}}
	assert.Equal(t, 20, experienceBonus(senior), "5年以上15分加头衔5分")

	junior := types.ExperienceInfo{Level: types.LevelJunior, Years: 1}
	assert.Equal(t, 8, experienceBonus(junior))
}

func TestDegreeBonus(t *testing.T) {
	assert.Equal(t, 10, degreeBonus("PhD"))
	assert.Equal(t, 9, degreeBonus("Masters"))
	assert.Equal(t, 8, degreeBonus("Bachelors"))
	assert.Equal(t, 6, degreeBonus("High School"))
	assert.Equal(t, 5, degreeBonus("Trade Qualification"), "未知学位给保底5分")
	assert.Equal(t, 0, degreeBonus(""), "无学位不加分")
}
