package routine

import (
	"fmt"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// checkSchedule asserts that every course of regs is examined exactly once
// and that no student sits two exams on the same day.
func checkSchedule(t *testing.T, regs []CourseRegistration, sch Schedule) {
	t.Helper()

	require.Len(t, sch.ExamDays, sch.NumDays)
	seen := make(map[int]int)
	for day := 0; day < sch.NumDays; day++ {
		require.NotEmpty(t, sch.ExamDays[day], "day %d is empty", day)
		for _, c := range sch.ExamDays[day] {
			_, dup := seen[c.ID]
			require.False(t, dup, "course %d scheduled twice", c.ID)
			seen[c.ID] = day
		}
	}

	studentDays := make(map[[2]int]int) // (student, day) -> course
	for _, r := range regs {
		day, ok := seen[r.CourseID]
		require.True(t, ok, "course %d not scheduled", r.CourseID)
		key := [2]int{r.StudentID, day}
		if other, ok := studentDays[key]; ok && other != r.CourseID {
			t.Fatalf("student %d has courses %d and %d on day %d", r.StudentID, other, r.CourseID, day)
		}
		studentDays[key] = r.CourseID
	}
}

// dayOf returns the day course id is examined on.
func dayOf(sch Schedule, id int) (int, bool) {
	for day, courses := range sch.ExamDays {
		for _, c := range courses {
			if c.ID == id {
				return day, true
			}
		}
	}
	return 0, false
}

// partition returns the days as sorted course ID sets, sorted.
func partition(sch Schedule) [][]int {
	days := make([][]int, 0, sch.NumDays)
	for _, courses := range sch.ExamDays {
		ids := make([]int, 0, len(courses))
		for _, c := range courses {
			ids = append(ids, c.ID)
		}
		sort.Ints(ids)
		days = append(days, ids)
	}
	sort.Slice(days, func(i, j int) bool { return days[i][0] < days[j][0] })
	return days
}

func TestGenerateExamSchedule(t *testing.T) {
	t.Run("single course", func(t *testing.T) {
		sch, err := GenerateExamSchedule([]CourseRegistration{reg(1, 10, "A")})
		require.NoError(t, err)
		assert.Equal(t, Schedule{NumDays: 1, ExamDays: map[int][]Course{0: {{10, "A"}}}}, sch)
	})

	t.Run("two courses sharing a student", func(t *testing.T) {
		regs := []CourseRegistration{reg(1, 10, "A"), reg(1, 20, "B")}
		sch, err := GenerateExamSchedule(regs)
		require.NoError(t, err)
		checkSchedule(t, regs, sch)
		assert.Equal(t, 2, sch.NumDays)
		assert.Len(t, sch.ExamDays[0], 1)
		assert.Len(t, sch.ExamDays[1], 1)
	})

	t.Run("triangle, any arrival order", func(t *testing.T) {
		base := []CourseRegistration{
			reg(1, 10, "A"), reg(1, 20, "B"),
			reg(2, 20, "B"), reg(2, 30, "C"),
			reg(3, 30, "C"), reg(3, 10, "A"),
		}
		orders := [][]int{{0, 1, 2, 3, 4, 5}, {5, 4, 3, 2, 1, 0}, {2, 5, 0, 3, 1, 4}, {3, 0, 4, 1, 5, 2}}
		for _, order := range orders {
			regs := make([]CourseRegistration, 0, len(base))
			for _, i := range order {
				regs = append(regs, base[i])
			}
			t.Run(fmt.Sprint(order), func(t *testing.T) {
				sch, err := GenerateExamSchedule(regs)
				require.NoError(t, err)
				checkSchedule(t, regs, sch)
				assert.Equal(t, 3, sch.NumDays)
				for day := 0; day < 3; day++ {
					assert.Len(t, sch.ExamDays[day], 1)
				}
			})
		}
	})

	t.Run("conflict-free courses share a day", func(t *testing.T) {
		// A conflicts with B, C and D; B, C and D never meet
		regs := []CourseRegistration{
			reg(1, 10, "A"), reg(1, 20, "B"),
			reg(2, 10, "A"), reg(2, 30, "C"),
			reg(3, 10, "A"), reg(3, 40, "D"),
		}
		sch, err := GenerateExamSchedule(regs)
		require.NoError(t, err)
		checkSchedule(t, regs, sch)
		assert.Equal(t, 2, sch.NumDays)
		assert.Equal(t, []Course{{10, "A"}}, sch.ExamDays[0])
		assert.Equal(t, []Course{{20, "B"}, {30, "C"}, {40, "D"}}, sch.ExamDays[1])
	})

	t.Run("isolated course joins the first day", func(t *testing.T) {
		// A conflicts with B and C; D has no conflict at all
		regs := []CourseRegistration{
			reg(1, 10, "A"), reg(1, 20, "B"),
			reg(2, 10, "A"), reg(2, 30, "C"),
			reg(3, 40, "D"),
		}
		sch, err := GenerateExamSchedule(regs)
		require.NoError(t, err)
		checkSchedule(t, regs, sch)
		assert.Equal(t, 2, sch.NumDays)

		dayA, _ := dayOf(sch, 10)
		dayB, _ := dayOf(sch, 20)
		dayC, _ := dayOf(sch, 30)
		dayD, _ := dayOf(sch, 40)
		assert.Equal(t, dayB, dayC)
		assert.NotEqual(t, dayA, dayB)
		assert.Equal(t, 0, dayD)
		assert.Equal(t, []Course{{10, "A"}, {40, "D"}}, sch.ExamDays[0])
	})

	t.Run("schedule comes with its conflict graph", func(t *testing.T) {
		regs := []CourseRegistration{
			reg(1, 10, "A"), reg(1, 20, "B"),
			reg(2, 10, "A"), reg(2, 30, "C"),
			reg(3, 40, "D"),
		}
		sch, g, err := generate(regs)
		require.NoError(t, err)
		assert.Equal(t, 4, g.Len())
		assert.Equal(t, 2, g.EdgeCount())
		assert.Equal(t, 2, sch.NumDays)

		_, g, err = generate(nil)
		assert.Equal(t, ErrNothingToSchedule, err)
		assert.Nil(t, g)
	})

	t.Run("empty input", func(t *testing.T) {
		sch, err := GenerateExamSchedule(nil)
		assert.Equal(t, ErrNothingToSchedule, err)
		assert.Equal(t, Schedule{}, sch)

		_, err = GenerateExamSchedule([]CourseRegistration{})
		assert.Equal(t, ErrNothingToSchedule, err)
	})
}

func TestGenerateExamSchedule_properties(t *testing.T) {
	regs := []CourseRegistration{
		reg(1, 10, "CSE 1101"), reg(1, 11, "CSE 1102"), reg(1, 12, "MATH 1101"),
		reg(2, 11, "CSE 1102"), reg(2, 13, "PHY 1101"),
		reg(3, 12, "MATH 1101"), reg(3, 13, "PHY 1101"), reg(3, 14, "CHEM 1101"),
		reg(4, 15, "HUM 1101"),
		reg(5, 14, "CHEM 1101"), reg(5, 10, "CSE 1101"), reg(5, 16, "EEE 1151"),
		reg(6, 16, "EEE 1151"), reg(6, 11, "CSE 1102"),
	}

	first, err := GenerateExamSchedule(regs)
	require.NoError(t, err)
	checkSchedule(t, regs, first)
	assert.Equal(t, 7, first.CourseCount())

	t.Run("deterministic", func(t *testing.T) {
		for i := 0; i < 20; i++ {
			again, err := GenerateExamSchedule(regs)
			require.NoError(t, err)
			assert.Equal(t, first, again)
		}
	})

	t.Run("reversed input stays valid", func(t *testing.T) {
		reversed := make([]CourseRegistration, len(regs))
		for i, r := range regs {
			reversed[len(regs)-1-i] = r
		}
		sch, err := GenerateExamSchedule(reversed)
		require.NoError(t, err)
		checkSchedule(t, reversed, sch)
		assert.Equal(t, 7, sch.CourseCount())
	})

	t.Run("reordered input keeps the grouping", func(t *testing.T) {
		tests := []struct {
			name string
			regs []CourseRegistration
		}{
			{
				name: "triangle",
				regs: []CourseRegistration{
					reg(1, 10, "A"), reg(1, 20, "B"),
					reg(2, 20, "B"), reg(2, 30, "C"),
					reg(3, 30, "C"), reg(3, 10, "A"),
				},
			},
			{
				name: "star",
				regs: []CourseRegistration{
					reg(1, 10, "A"), reg(1, 20, "B"),
					reg(2, 10, "A"), reg(2, 30, "C"),
					reg(3, 10, "A"), reg(3, 40, "D"),
				},
			},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				first, err := GenerateExamSchedule(tt.regs)
				require.NoError(t, err)

				reversed := make([]CourseRegistration, len(tt.regs))
				for i, r := range tt.regs {
					reversed[len(tt.regs)-1-i] = r
				}
				rotated := append(append([]CourseRegistration{}, tt.regs[3:]...), tt.regs[:3]...)

				for _, regs := range [][]CourseRegistration{reversed, rotated} {
					sch, err := GenerateExamSchedule(regs)
					require.NoError(t, err)
					checkSchedule(t, regs, sch)
					assert.Equal(t, partition(first), partition(sch))
				}
			})
		}
	})

	t.Run("duplicate rows change nothing", func(t *testing.T) {
		sch, err := GenerateExamSchedule(append(append([]CourseRegistration{}, regs...), regs...))
		require.NoError(t, err)
		assert.Equal(t, partition(first), partition(sch))
	})
}
